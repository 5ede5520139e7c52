package textload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// DefaultEncoding matches the encoding of Project Gutenberg plain-text releases.
const DefaultEncoding = "ISO-8859-1"

// Loader reads corpus files into strings using a fixed text encoding.
type Loader struct {
	name string
	enc  encoding.Encoding
}

// New creates a loader for the named IANA encoding ("" selects DefaultEncoding).
func New(encodingName string) (*Loader, error) {
	if encodingName == "" {
		encodingName = DefaultEncoding
	}
	enc, err := ianaindex.IANA.Encoding(encodingName)
	if err != nil {
		return nil, fmt.Errorf("encoding %q: %w", encodingName, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("encoding %q is not supported", encodingName)
	}
	return &Loader{name: encodingName, enc: enc}, nil
}

// Encoding returns the configured encoding name.
func (l *Loader) Encoding() string {
	return l.name
}

// Load returns the full decoded content of path. Files ending in .html or .htm are
// reduced to their visible text.
func (l *Loader) Load(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(transform.NewReader(f, l.enc.NewDecoder()))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	text := string(data)
	if isHTML(path) {
		return extractText(text)
	}
	return text, nil
}

func isHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}

// extractText concatenates the document's text nodes, skipping script and style.
func extractText(s string) (string, error) {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style) {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.TrimSpace(buf.String()), nil
}
