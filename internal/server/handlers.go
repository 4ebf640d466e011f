package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/kelime-lab/turkce/internal/logger"
	"github.com/kelime-lab/turkce/internal/tagger"
)

type tagResponse struct {
	Tokens []tagger.TaggedWord `json:"tokens"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// statusFor maps a tagging error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, tagger.ErrPoolClosed), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

var errTrailingData = errors.New("unexpected data after JSON object")

// decodeBody reads exactly one JSON value from r; anything after it but
// white space is an error.
func decodeBody(r io.Reader) (map[string]json.RawMessage, error) {
	dec := json.NewDecoder(r)
	var body map[string]json.RawMessage
	if err := dec.Decode(&body); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errTrailingData
		}
		return nil, err
	}
	return body, nil
}

func handleTag(svc TagService, maxBody int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBody)

		body, err := decodeBody(r.Body)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			writeError(w, http.StatusBadRequest, "body must be a single JSON object")
			return
		}
		raw, ok := body["sentence"]
		if !ok {
			writeError(w, http.StatusUnprocessableEntity, "missing 'sentence' field")
			return
		}
		var sentence *string
		if err := json.Unmarshal(raw, &sentence); err != nil || sentence == nil {
			writeError(w, http.StatusUnprocessableEntity, "'sentence' must be a string")
			return
		}

		words, err := svc.Tag(r.Context(), *sentence)
		if err != nil {
			status := statusFor(err)
			logger.Warn("tag failed id=%s status=%d: %v", RequestID(r.Context()), status, err)
			writeError(w, status, http.StatusText(status))
			return
		}
		if words == nil {
			words = []tagger.TaggedWord{}
		}
		writeJSON(w, http.StatusOK, tagResponse{Tokens: words})
	}
}
