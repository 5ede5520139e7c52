package memstore

import (
	"context"
	"testing"

	"github.com/cognicore/stylo/pkg/stylo/store"
)

var _ store.Store = (*Store)(nil)

func TestMemStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := New()
	defer st.Close()

	if err := st.UpsertCorpus(ctx, store.Corpus{Author: "wells", Body: "the martians"}); err != nil {
		t.Fatalf("UpsertCorpus: %v", err)
	}
	if err := st.UpsertCorpus(ctx, store.Corpus{Author: "doyle", Body: "the hound"}); err != nil {
		t.Fatalf("UpsertCorpus: %v", err)
	}

	got, found, err := st.GetCorpus(ctx, "wells")
	if err != nil || !found {
		t.Fatalf("GetCorpus: found=%v err=%v", found, err)
	}
	if got.Body != "the martians" {
		t.Errorf("Body = %q", got.Body)
	}

	list, err := st.ListCorpora(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].Author != "doyle" {
		t.Errorf("ListCorpora should be sorted: %+v", list)
	}
	if list[0].Bytes != len("the hound") {
		t.Errorf("Bytes = %d", list[0].Bytes)
	}

	if err := st.DeleteCorpus(ctx, "wells"); err != nil {
		t.Fatal(err)
	}
	if _, found, _ := st.GetCorpus(ctx, "wells"); found {
		t.Error("deleted corpus should be gone")
	}
}

func TestMemStoreRejectsEmptyAuthor(t *testing.T) {
	if err := New().UpsertCorpus(context.Background(), store.Corpus{}); err == nil {
		t.Error("expected error for empty author")
	}
}
