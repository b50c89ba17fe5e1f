package memory

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/jbeshir/feed-ranking/internal/domain"
)

// Fixture is the on-disk seed format for a memory Repository.
type Fixture struct {
	Posts   []FixturePost `json:"posts"`
	Follows []FixtureEdge `json:"follows"`
	Likes   []FixtureEdge `json:"likes"`
	Views   []FixtureEdge `json:"views"`
}

type FixturePost struct {
	domain.ContentItem
	Hashtags []string `json:"hashtags,omitempty"`
}

// FixtureEdge is a follow (from follows to) or an interaction (from liked or
// viewed to).
type FixtureEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Load decodes a fixture from r and adds it to the repository.
func (r *Repository) Load(reader io.Reader) error {
	var fixture Fixture
	if err := json.NewDecoder(reader).Decode(&fixture); err != nil {
		return fmt.Errorf("decoding fixture: %w", err)
	}

	for _, post := range fixture.Posts {
		r.AddPost(post.ContentItem, post.Hashtags...)
	}
	for _, edge := range fixture.Follows {
		r.Follow(edge.From, edge.To)
	}
	for _, edge := range fixture.Likes {
		r.Like(edge.From, edge.To)
	}
	for _, edge := range fixture.Views {
		r.View(edge.From, edge.To)
	}

	return nil
}

func (r *Repository) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening fixture: %w", err)
	}
	defer func() { _ = f.Close() }()

	return r.Load(f)
}
