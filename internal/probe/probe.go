// Package probe checks live reachability of every catalog topic. It backs
// the doccheck CLI; the serving path never retries, but an operator
// running a probe wants a few attempts before calling a page unreachable.
package probe

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/zkverify-community/docs-mcp/internal/catalog"
	"github.com/zkverify-community/docs-mcp/internal/docs"
)

// TopicStatus is the probe outcome for one topic.
type TopicStatus struct {
	TopicID    string
	RemotePath string
	Live       bool   // fetch + extraction succeeded
	StaticOnly bool   // topic has no remote path
	Length     int    // extracted length when live
	Reason     string // failure reason when not live
}

// Result aggregates a full catalog probe.
type Result struct {
	Statuses []TopicStatus
	Live     int
	Fallback int
	Duration time.Duration
}

// Prober probes each topic's live path with bounded retries.
type Prober struct {
	store     *catalog.Store
	fetcher   *docs.Fetcher
	extractor *docs.Extractor
	log       zerolog.Logger
}

// New creates a Prober from the same components the resolver uses.
func New(store *catalog.Store, fetcher *docs.Fetcher, extractor *docs.Extractor, log zerolog.Logger) *Prober {
	return &Prober{
		store:     store,
		fetcher:   fetcher,
		extractor: extractor,
		log:       log,
	}
}

// ProbeAll walks the catalog and reports which topics currently resolve
// live and which would fall back to the bundled copy.
func (p *Prober) ProbeAll(ctx context.Context) *Result {
	start := time.Now()
	result := &Result{}

	for _, topic := range p.store.Topics() {
		status := p.probeTopic(ctx, topic)
		result.Statuses = append(result.Statuses, status)
		if status.Live {
			result.Live++
		} else {
			result.Fallback++
		}
	}

	result.Duration = time.Since(start)
	return result
}

// probeTopic fetches and extracts one topic with exponential backoff.
// Non-2xx responses below 500 are permanent: the page is missing, not
// flaky, so retrying will not change the outcome.
func (p *Prober) probeTopic(ctx context.Context, topic catalog.Topic) TopicStatus {
	status := TopicStatus{TopicID: topic.ID, RemotePath: topic.RemotePath}

	if topic.RemotePath == "" {
		status.StaticOnly = true
		status.Reason = "no remote path configured"
		return status
	}

	var length int
	operation := func() error {
		doc, err := p.fetcher.Fetch(ctx, topic.RemotePath)
		if err != nil {
			var fetchErr *docs.FetchError
			if errors.As(err, &fetchErr) && fetchErr.StatusCode >= 400 && fetchErr.StatusCode < 500 {
				return backoff.Permanent(err)
			}
			return err
		}
		content, err := p.extractor.Extract(doc.RawBody)
		if err != nil {
			return backoff.Permanent(err)
		}
		length = content.OriginalLength
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = 20 * time.Second

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		p.log.Warn().Err(err).Str("topic", topic.ID).Msg("probe failed, topic would serve cached")
		status.Reason = err.Error()
		return status
	}

	status.Live = true
	status.Length = length
	return status
}
