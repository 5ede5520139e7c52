package freqdist

import "sort"

// Dist counts occurrences of discrete feature values (word lengths, tags, words).
// It remembers the order in which values were first seen so ranking is reproducible.
type Dist[K comparable] struct {
	counts map[K]int64
	order  []K
	total  int64
}

// Entry is one feature value and its count.
type Entry[K comparable] struct {
	Value K
	Count int64
}

// New creates an empty distribution.
func New[K comparable]() *Dist[K] {
	return &Dist[K]{counts: make(map[K]int64)}
}

// FromSlice builds a distribution over values.
func FromSlice[K comparable](values []K) *Dist[K] {
	d := New[K]()
	for _, v := range values {
		d.Add(v)
	}
	return d
}

// Add records one occurrence of v.
func (d *Dist[K]) Add(v K) {
	if _, ok := d.counts[v]; !ok {
		d.order = append(d.order, v)
	}
	d.counts[v]++
	d.total++
}

// Count returns the number of occurrences of v.
func (d *Dist[K]) Count(v K) int64 {
	return d.counts[v]
}

// Total returns the number of observations.
func (d *Dist[K]) Total() int64 {
	return d.total
}

// Distinct returns the number of distinct values.
func (d *Dist[K]) Distinct() int {
	return len(d.order)
}

// MostCommon returns up to n entries ranked by count, highest first.
// Ties keep first-occurrence order. n <= 0 returns every entry.
func (d *Dist[K]) MostCommon(n int) []Entry[K] {
	entries := make([]Entry[K], len(d.order))
	for i, v := range d.order {
		entries[i] = Entry[K]{Value: v, Count: d.counts[v]}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
