package docs

import (
	"strings"
	"testing"

	"github.com/zkverify-community/docs-mcp/internal/catalog"
)

var formatterTopic = catalog.Topic{
	ID:         "architecture",
	Title:      "zkVerify Architecture",
	RemotePath: "architecture/core-architecture",
}

func TestFormat_Live(t *testing.T) {
	answer := &ResolvedAnswer{
		Source:    SourceLive,
		Text:      "Core components: mainchain, pallets.",
		SourceURL: "https://docs.zkverify.io/architecture/core-architecture",
	}

	out := Format(answer, formatterTopic)

	if !strings.HasPrefix(out, "# zkVerify Architecture (Live from docs.zkverify.io)") {
		t.Errorf("missing live banner: %q", out)
	}
	if !strings.Contains(out, "Core components: mainchain, pallets.") {
		t.Errorf("missing body: %q", out)
	}
	if !strings.Contains(out, "Source: https://docs.zkverify.io/architecture/core-architecture") {
		t.Errorf("missing source URL: %q", out)
	}
	if strings.Contains(out, "truncated") {
		t.Errorf("unexpected truncation notice: %q", out)
	}
}

func TestFormat_Cached(t *testing.T) {
	answer := &ResolvedAnswer{
		Source: SourceCached,
		Text:   "Static architecture text.",
	}

	out := Format(answer, formatterTopic)

	if !strings.Contains(out, "(Cached/offline data)") {
		t.Errorf("missing cached banner: %q", out)
	}
	if strings.Contains(out, "Source: http") {
		t.Errorf("cached answers must not carry a source URL: %q", out)
	}
}

func TestFormat_TruncationNotice(t *testing.T) {
	answer := &ResolvedAnswer{
		Source:    SourceLive,
		Text:      "cut",
		Truncated: true,
		SourceURL: "https://docs.zkverify.io/tutorials",
	}

	out := Format(answer, formatterTopic)

	if !strings.Contains(out, "... (content truncated)") {
		t.Errorf("missing truncation notice: %q", out)
	}
}

// TestFormat_Pure: identical inputs produce identical output.
func TestFormat_Pure(t *testing.T) {
	answer := &ResolvedAnswer{Source: SourceCached, Text: "same"}

	if Format(answer, formatterTopic) != Format(answer, formatterTopic) {
		t.Error("Format is not deterministic")
	}
}
