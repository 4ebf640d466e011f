package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// TagInput is the input schema for the tag_sentence tool.
type TagInput struct {
	Sentence string `json:"sentence" jsonschema:"the Turkish sentence to tag"`
}

// TagOutput is the output schema for the tag_sentence tool.
type TagOutput struct {
	Words []WordOutput `json:"words"`
	Count int          `json:"count"`
}

// WordOutput is one tagged word, morphemes in surface order.
type WordOutput struct {
	Surface   string           `json:"surface"`
	Morphemes []MorphemeOutput `json:"morphemes"`
}

// MorphemeOutput is one morpheme surface and its tag.
type MorphemeOutput struct {
	Surface string `json:"surface"`
	Tag     string `json:"tag"`
}

// ListTagsInput is the (empty) input schema for the list_tags tool.
type ListTagsInput struct{}

// ListTagsOutput is the output schema for the list_tags tool.
type ListTagsOutput struct {
	Tags []TagInfoOutput `json:"tags"`
}

// TagInfoOutput describes one morpheme tag.
type TagInfoOutput struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "tag_sentence",
		Description: "Split each word of a Turkish sentence into morphemes and tag them",
	}, s.handleTag)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_tags",
		Description: "List the morpheme tags the tagger can emit",
	}, s.handleListTags)
}

func (s *Server) handleTag(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TagInput,
) (*mcp.CallToolResult, TagOutput, error) {
	words, err := s.ports.Tagger.Tag(ctx, input.Sentence)
	if err != nil {
		return nil, TagOutput{}, err
	}

	output := TagOutput{
		Words: make([]WordOutput, len(words)),
		Count: len(words),
	}
	for i, w := range words {
		out := WordOutput{Surface: w.Surface(), Morphemes: make([]MorphemeOutput, 0, len(w.Morphemes))}
		for _, m := range w.Morphemes {
			out.Morphemes = append(out.Morphemes, MorphemeOutput{Surface: m.Surface, Tag: m.Tag})
		}
		output.Words[i] = out
	}

	return nil, output, nil
}

func (s *Server) handleListTags(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListTagsInput,
) (*mcp.CallToolResult, ListTagsOutput, error) {
	if s.ports.Tags == nil {
		return nil, ListTagsOutput{}, ErrNoGlossary
	}

	infos := s.ports.Tags.Glossary()
	output := ListTagsOutput{Tags: make([]TagInfoOutput, len(infos))}
	for i, t := range infos {
		output.Tags[i] = TagInfoOutput{ID: t.ID, Name: t.Name, Description: t.Description}
	}

	return nil, output, nil
}
