package docs

import (
	"strings"

	"github.com/zkverify-community/docs-mcp/internal/catalog"
)

// Source banners shown at the top of every response.
const (
	liveBanner   = "Live from docs.zkverify.io"
	cachedBanner = "Cached/offline data"
)

// Format renders a resolved answer into the final response string: topic
// title, source banner, content body, then a truncation notice and the
// originating URL when applicable. Pure function of its inputs.
func Format(answer *ResolvedAnswer, topic catalog.Topic) string {
	var b strings.Builder

	banner := cachedBanner
	if answer.Source == SourceLive {
		banner = liveBanner
	}
	b.WriteString("# " + topic.Title + " (" + banner + ")\n\n")
	b.WriteString(answer.Text)

	if answer.Truncated {
		b.WriteString("\n\n... (content truncated)")
	}

	if answer.Source == SourceLive {
		b.WriteString("\n\nSource: " + answer.SourceURL)
	} else {
		b.WriteString("\n\nNote: served from bundled documentation. For the latest version visit https://docs.zkverify.io/")
	}

	return b.String()
}
