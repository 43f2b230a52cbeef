package docs

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultMaxContentLength caps extracted text when no limit is configured.
const DefaultMaxContentLength = 4000

// nonContentSelector matches elements that never carry documentation text.
const nonContentSelector = "script, style, noscript, nav, header, footer, aside, iframe, form"

// ExtractedContent is normalized plain text derived from raw markup.
// Text holds at most the configured maximum number of characters;
// Truncated is true iff OriginalLength exceeds that maximum. Lengths are
// measured in runes so truncation never splits a multi-byte character.
type ExtractedContent struct {
	Text           string
	Truncated      bool
	OriginalLength int
}

// Extractor converts raw HTML into normalized, length-bounded plain text.
// Extraction is deterministic: the same body always yields the same result.
type Extractor struct {
	maxLen int
}

// NewExtractor creates an Extractor with the given content length cap.
// Non-positive values fall back to DefaultMaxContentLength.
func NewExtractor(maxLen int) *Extractor {
	if maxLen <= 0 {
		maxLen = DefaultMaxContentLength
	}
	return &Extractor{maxLen: maxLen}
}

// Extract parses rawBody, strips non-content elements, and returns the
// visible text in document order with whitespace collapsed. It fails with
// *ExtractionError for empty or non-HTML payloads and for bodies that
// normalize to an empty string: empty live content must never win over
// the static fallback.
func (e *Extractor) Extract(rawBody string) (*ExtractedContent, error) {
	if strings.TrimSpace(rawBody) == "" {
		return nil, &ExtractionError{Reason: "empty body"}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawBody))
	if err != nil {
		return nil, &ExtractionError{Reason: "unparseable markup: " + err.Error()}
	}

	doc.Find(nonContentSelector).Remove()

	root := contentRoot(doc)
	// The html5 parser accepts nearly anything, so a root without any
	// element nodes is the signal for a non-HTML payload (plain text,
	// JSON, binary junk).
	if root.Find("*").Length() == 0 {
		return nil, &ExtractionError{Reason: "no content elements in body"}
	}

	text := strings.Join(strings.Fields(root.Text()), " ")
	if text == "" {
		return nil, &ExtractionError{Reason: "empty after normalization"}
	}

	runes := []rune(text)
	content := &ExtractedContent{
		Text:           text,
		OriginalLength: len(runes),
	}
	if len(runes) > e.maxLen {
		content.Text = string(runes[:e.maxLen])
		content.Truncated = true
	}
	return content, nil
}

// contentRoot picks the most specific main-content container present,
// in the same preference order the docs site renders: main, article,
// div.content, then the whole body.
func contentRoot(doc *goquery.Document) *goquery.Selection {
	for _, selector := range []string{"main", "article", "div.content"} {
		if sel := doc.Find(selector); sel.Length() > 0 {
			return sel.First()
		}
	}
	return doc.Find("body")
}
