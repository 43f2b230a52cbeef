package docs

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/zkverify-community/docs-mcp/internal/catalog"
)

// Source tags which tier of the cascade served an answer.
type Source string

// Source values for ResolvedAnswer.
const (
	SourceLive   Source = "live"
	SourceCached Source = "cached"
)

// ResolvedAnswer is the resolver's output. Source is "live" only when the
// whole live path succeeded; any failure forces "cached" with the text
// taken verbatim from the static catalog, never partially mixed.
type ResolvedAnswer struct {
	Source    Source
	Text      string
	Truncated bool
	SourceURL string // set only for live answers
}

// Resolver orchestrates the fetcher, extractor and static catalog for a
// topic using a strict two-tier cascade: at most one network round trip,
// then the bundled copy. It holds no per-request state and is safe for
// concurrent use.
type Resolver struct {
	store     *catalog.Store
	fetcher   *Fetcher
	extractor *Extractor
	log       zerolog.Logger
}

// NewResolver wires a resolver from its injected dependencies.
func NewResolver(store *catalog.Store, fetcher *Fetcher, extractor *Extractor, log zerolog.Logger) *Resolver {
	return &Resolver{
		store:     store,
		fetcher:   fetcher,
		extractor: extractor,
		log:       log,
	}
}

// Resolve returns an answer for the topic. It never fails: the catalog's
// startup completeness check guarantees a static entry for every topic,
// so every live-path failure degrades to a cached answer.
func (r *Resolver) Resolve(ctx context.Context, topic catalog.Topic) *ResolvedAnswer {
	log := r.log.With().
		Str("request_id", uuid.NewString()).
		Str("topic", topic.ID).
		Logger()

	if topic.RemotePath == "" {
		log.Debug().Msg("topic has no remote path, serving static copy")
		return r.cached(topic)
	}

	doc, err := r.fetcher.Fetch(ctx, topic.RemotePath)
	if err != nil {
		log.Warn().Err(err).Msg("live fetch failed, falling back to static copy")
		return r.cached(topic)
	}

	content, err := r.extractor.Extract(doc.RawBody)
	if err != nil {
		log.Warn().Err(err).Str("url", doc.SourceURL).
			Msg("extraction failed, falling back to static copy")
		return r.cached(topic)
	}

	log.Debug().Str("url", doc.SourceURL).
		Int("length", content.OriginalLength).
		Bool("truncated", content.Truncated).
		Msg("serving live content")

	return &ResolvedAnswer{
		Source:    SourceLive,
		Text:      content.Text,
		Truncated: content.Truncated,
		SourceURL: doc.SourceURL,
	}
}

// ResolveTopic resolves a raw topic identifier to the final formatted
// response string. This is the single entry point the request router
// calls; the only error it can return is an unknown identifier.
func (r *Resolver) ResolveTopic(ctx context.Context, topicID string) (string, error) {
	topic, err := r.store.Lookup(topicID)
	if err != nil {
		return "", err
	}
	return Format(r.Resolve(ctx, topic), topic), nil
}

// Origin reports the documentation origin, for health and status output.
func (r *Resolver) Origin() string {
	return r.fetcher.Origin()
}

// Topics exposes the underlying catalog.
func (r *Resolver) Topics() []catalog.Topic {
	return r.store.Topics()
}

// StaticText exposes the bundled copy for a topic.
func (r *Resolver) StaticText(topic catalog.Topic) string {
	return r.store.StaticText(topic)
}

// Lookup resolves a topic identifier against the catalog.
func (r *Resolver) Lookup(topicID string) (catalog.Topic, error) {
	return r.store.Lookup(topicID)
}

func (r *Resolver) cached(topic catalog.Topic) *ResolvedAnswer {
	return &ResolvedAnswer{
		Source: SourceCached,
		Text:   r.store.StaticText(topic),
	}
}
