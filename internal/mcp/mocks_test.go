package mcp

import (
	"context"

	"github.com/kelime-lab/turkce"
	"github.com/kelime-lab/turkce/internal/tagger"
)

type mockTagService struct {
	words []tagger.TaggedWord
	err   error
	last  string
}

func (m *mockTagService) Tag(_ context.Context, sentence string) ([]tagger.TaggedWord, error) {
	m.last = sentence
	return m.words, m.err
}

type mockGlossary struct {
	tags []turkce.TagInfo
}

func (m *mockGlossary) Glossary() []turkce.TagInfo {
	return m.tags
}
