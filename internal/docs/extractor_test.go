package docs

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

// TestExtract_StripsNonContent covers the acceptance scenario: navigation
// is dropped and visible text survives with normalized whitespace.
func TestExtract_StripsNonContent(t *testing.T) {
	raw := "<html><body><nav>skip</nav><p>Core components: mainchain, pallets.</p></body></html>"

	e := NewExtractor(DefaultMaxContentLength)
	content, err := e.Extract(raw)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if content.Text != "Core components: mainchain, pallets." {
		t.Errorf("unexpected text: %q", content.Text)
	}
	if content.Truncated {
		t.Error("short content should not be truncated")
	}
}

func TestExtract_PrefersMainContent(t *testing.T) {
	raw := `<html><body>
		<div class="sidebar">sidebar junk</div>
		<main><h1>Verification Pallets</h1><p>One pallet per proof system.</p></main>
		<footer>footer junk</footer>
	</body></html>`

	e := NewExtractor(DefaultMaxContentLength)
	content, err := e.Extract(raw)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if strings.Contains(content.Text, "sidebar junk") || strings.Contains(content.Text, "footer junk") {
		t.Errorf("boilerplate leaked into extraction: %q", content.Text)
	}
	if !strings.Contains(content.Text, "One pallet per proof system.") {
		t.Errorf("main content missing: %q", content.Text)
	}
}

func TestExtract_RemovesScriptsAndStyles(t *testing.T) {
	raw := `<html><body>
		<script>var tracked = true;</script>
		<style>.hidden { display: none }</style>
		<p>Block time is   6
		seconds.</p>
	</body></html>`

	e := NewExtractor(DefaultMaxContentLength)
	content, err := e.Extract(raw)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if content.Text != "Block time is 6 seconds." {
		t.Errorf("unexpected text: %q", content.Text)
	}
}

func TestExtract_Deterministic(t *testing.T) {
	raw := "<html><body><main><p>Same   input, same\noutput.</p></main></body></html>"

	e := NewExtractor(DefaultMaxContentLength)
	first, err := e.Extract(raw)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	second, err := e.Extract(raw)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if first.Text != second.Text || first.Truncated != second.Truncated ||
		first.OriginalLength != second.OriginalLength {
		t.Errorf("extraction not deterministic: %+v vs %+v", first, second)
	}
}

// TestExtract_TruncationLaw verifies the exact-length cut: text longer
// than the cap is truncated to exactly the cap, counted in runes.
func TestExtract_TruncationLaw(t *testing.T) {
	body := strings.Repeat("word ", 100) // 499 runes after normalization
	raw := "<html><body><p>" + body + "</p></body></html>"

	e := NewExtractor(100)
	content, err := e.Extract(raw)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if !content.Truncated {
		t.Error("expected truncated content")
	}
	if got := utf8.RuneCountInString(content.Text); got != 100 {
		t.Errorf("expected exactly 100 runes, got %d", got)
	}
	if content.OriginalLength != 499 {
		t.Errorf("expected original length 499, got %d", content.OriginalLength)
	}
}

func TestExtract_TruncationRespectsRuneBoundaries(t *testing.T) {
	// Multi-byte content: each rune is 3 bytes in UTF-8.
	body := strings.Repeat("证", 50)
	raw := "<html><body><p>" + body + "</p></body></html>"

	e := NewExtractor(10)
	content, err := e.Extract(raw)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if !utf8.ValidString(content.Text) {
		t.Error("truncation split a multi-byte character")
	}
	if got := utf8.RuneCountInString(content.Text); got != 10 {
		t.Errorf("expected 10 runes, got %d", got)
	}
	if !content.Truncated {
		t.Error("expected truncated content")
	}
}

func TestExtract_ExactCapIsNotTruncated(t *testing.T) {
	raw := "<html><body><p>abcde</p></body></html>"

	e := NewExtractor(5)
	content, err := e.Extract(raw)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if content.Truncated {
		t.Error("content at exactly the cap must not be marked truncated")
	}
	if content.Text != "abcde" {
		t.Errorf("unexpected text: %q", content.Text)
	}
}

func TestExtract_Failures(t *testing.T) {
	e := NewExtractor(DefaultMaxContentLength)

	tests := []struct {
		name string
		raw  string
	}{
		{"empty body", ""},
		{"whitespace only", "   \n\t  "},
		{"plain text payload", "just some plain text, no markup"},
		{"json payload", `{"error": "not found"}`},
		{"markup with no visible text", "<html><body><nav>menu</nav><script>x()</script></body></html>"},
		{"only whitespace text nodes", "<html><body><div>   \n  </div></body></html>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Extract(tt.raw)
			if err == nil {
				t.Fatal("expected extraction error")
			}
			var extractErr *ExtractionError
			if !errors.As(err, &extractErr) {
				t.Errorf("expected *ExtractionError, got %T", err)
			}
		})
	}
}
