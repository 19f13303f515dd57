// Package openai implements embedding and answer generation using the
// OpenAI API.
package openai

import (
	"errors"
	"net/http"

	webrag "github.com/GH05TCREW/WebRAG"
	openai "github.com/sashabaranov/go-openai"
)

// mapError translates OpenAI API failures into domain errors.
// Authentication and quota failures are surfaced as EUNAUTHORIZED so
// callers can abort a batch instead of retrying every source.
func mapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized, http.StatusForbidden, http.StatusTooManyRequests:
			return webrag.Errorf(webrag.EUNAUTHORIZED, "openai: %v", apiErr.Message)
		}
	}
	return err
}
