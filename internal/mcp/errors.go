// Package mcp exposes the tagger as Model Context Protocol tools, so that
// assistants can tag Turkish sentences over stdio.
package mcp

import "errors"

var (
	// ErrMissingTagger is returned when the tagging service is not provided.
	ErrMissingTagger = errors.New("mcp: tagger is required")
	// ErrNoGlossary is returned by list_tags when no glossary is configured.
	ErrNoGlossary = errors.New("mcp: tag glossary not available")
)
