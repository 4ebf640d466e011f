package tagger

import (
	"context"
	"time"
)

// SentenceTagger tags one sentence synchronously.
type SentenceTagger interface {
	Tag(sentence string) ([]TaggedWord, error)
}

// Service runs tagging calls on a worker pool with a time limit, so
// that slow analyses do not hold the caller's goroutine.
type Service struct {
	tagger  SentenceTagger
	pool    *Pool
	timeout time.Duration
}

// NewService creates a Service. A timeout <= 0 disables the limit.
func NewService(t SentenceTagger, pool *Pool, timeout time.Duration) *Service {
	return &Service{tagger: t, pool: pool, timeout: timeout}
}

// Tag tags sentence on the pool. It returns context.DeadlineExceeded
// when the analysis outlives the timeout.
func (s *Service) Tag(ctx context.Context, sentence string) ([]TaggedWord, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var out []TaggedWord
	err := s.pool.Submit(ctx, func() error {
		var err error
		out, err = s.tagger.Tag(sentence)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Close shuts the pool down.
func (s *Service) Close() {
	s.pool.Close()
}
