// Package markdown extracts section structure from the bundled topic
// documents.
package markdown

import (
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/toc"
)

// Section is one heading of a topic document.
type Section struct {
	Title string
	Level int // 1 for H1, 2 for H2
}

// Outliner lists H1/H2 sections of markdown documents.
type Outliner struct {
	parser goldmark.Markdown
}

// NewOutliner creates an Outliner configured with a goldmark parser.
func NewOutliner() *Outliner {
	md := goldmark.New(
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
	return &Outliner{parser: md}
}

// Outline returns the H1 and H2 headings of source in document order.
// A document without headings yields an empty outline, not an error.
func (o *Outliner) Outline(source []byte) ([]Section, error) {
	reader := text.NewReader(source)
	doc := o.parser.Parser().Parse(reader)

	tree, err := toc.Inspect(doc, source,
		toc.MinDepth(1),
		toc.MaxDepth(2),
		toc.Compact(true),
	)
	if err != nil {
		return nil, fmt.Errorf("inspect TOC: %w", err)
	}

	var sections []Section
	collectSections(tree.Items, 1, &sections)
	return sections, nil
}

func collectSections(items toc.Items, level int, out *[]Section) {
	for _, item := range items {
		*out = append(*out, Section{
			Title: string(item.Title),
			Level: level,
		})
		if len(item.Items) > 0 {
			collectSections(item.Items, level+1, out)
		}
	}
}
