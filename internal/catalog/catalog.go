// Package catalog defines the fixed set of documentation topics and the
// bundled static content served when live retrieval fails.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"strings"
)

//go:embed static/*.md
var staticFS embed.FS

// ErrUnknownTopic is returned when a topic identifier is not in the catalog.
var ErrUnknownTopic = errors.New("unknown topic")

// ConfigError indicates the bundled content does not cover the catalog.
// It is fatal: the server must not start without a complete static store.
type ConfigError struct {
	TopicID string
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("catalog misconfigured for topic %q: %s", e.TopicID, e.Reason)
}

// Topic is one documentation subject the server can answer about.
// Topics are defined at startup and immutable for the process lifetime.
type Topic struct {
	// ID is the identifier clients request, e.g. "architecture".
	ID string
	// Title is the human-readable name used in formatted responses.
	Title string
	// RemotePath is the path under the docs origin for live retrieval.
	// Empty means the topic is served from the static copy only.
	RemotePath string
}

// topics is the fixed catalog, mirroring the sections of docs.zkverify.io.
var topics = []Topic{
	{ID: "overview", Title: "zkVerify Overview", RemotePath: "overview/what-is-zkverify"},
	{ID: "architecture", Title: "zkVerify Architecture", RemotePath: "architecture/core-architecture"},
	// SDK docs ship only as a bundled copy with runnable zkverifyjs
	// snippets; the live site restructures its SDK pages too often to
	// pin a remote path.
	{ID: "sdk", Title: "zkVerify SDK", RemotePath: ""},
	{ID: "tutorials", Title: "zkVerify Tutorials", RemotePath: "tutorials"},
	{ID: "testnet", Title: "zkVerify Testnet", RemotePath: "incentivizedtestnet/getting_started"},
	{ID: "node-operators", Title: "zkVerify Node Operators", RemotePath: "node-operators/getting_started"},
	// Contract docs ship only as a bundled copy; there is no stable
	// remote page to fetch them from yet.
	{ID: "contracts", Title: "zkVerify Contracts", RemotePath: ""},
}

// Store is the read-only topic catalog with its static content.
// Safe for unsynchronized concurrent reads after construction.
type Store struct {
	topics []Topic
	static map[string]string
}

// New builds the catalog and verifies that every topic has non-empty
// static content. A *ConfigError here must abort process startup.
func New() (*Store, error) {
	s := &Store{
		topics: topics,
		static: make(map[string]string, len(topics)),
	}
	for _, t := range s.topics {
		data, err := staticFS.ReadFile("static/" + t.ID + ".md")
		if err != nil {
			return nil, &ConfigError{TopicID: t.ID, Reason: "no static content file"}
		}
		text := strings.TrimSpace(string(data))
		if text == "" {
			return nil, &ConfigError{TopicID: t.ID, Reason: "static content is empty"}
		}
		s.static[t.ID] = text
	}
	return s, nil
}

// Topics returns the catalog in definition order.
func (s *Store) Topics() []Topic {
	out := make([]Topic, len(s.topics))
	copy(out, s.topics)
	return out
}

// Lookup resolves a topic identifier. Returns ErrUnknownTopic when the
// identifier is not in the catalog.
func (s *Store) Lookup(id string) (Topic, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, t := range s.topics {
		if t.ID == id {
			return t, nil
		}
	}
	return Topic{}, fmt.Errorf("%w: %q", ErrUnknownTopic, id)
}

// StaticText returns the bundled content for a topic. The completeness
// check in New guarantees an entry exists for every catalog topic.
func (s *Store) StaticText(t Topic) string {
	return s.static[t.ID]
}

// TopicIDs returns all topic identifiers, for error messages and listings.
func (s *Store) TopicIDs() []string {
	ids := make([]string, len(s.topics))
	for i, t := range s.topics {
		ids[i] = t.ID
	}
	return ids
}
