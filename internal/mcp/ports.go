package mcp

import (
	"context"

	"github.com/kelime-lab/turkce"
	"github.com/kelime-lab/turkce/internal/tagger"
)

// TagService tags one sentence.
type TagService interface {
	Tag(ctx context.Context, sentence string) ([]tagger.TaggedWord, error)
}

// Glossary lists the morpheme tags.
type Glossary interface {
	Glossary() []turkce.TagInfo
}

// Ports aggregates the services the MCP server calls.
type Ports struct {
	// Tagger tags sentences.
	Tagger TagService

	// Tags describes the tag set. Optional.
	Tags Glossary
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Tagger == nil {
		return ErrMissingTagger
	}
	return nil
}
