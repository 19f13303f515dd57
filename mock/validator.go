package mock

import (
	"context"

	webrag "github.com/GH05TCREW/WebRAG"
)

var _ webrag.URLValidator = (*URLValidator)(nil)

// URLValidator is a mock implementation of webrag.URLValidator.
type URLValidator struct {
	ValidateFn func(ctx context.Context, rawURL string) (string, error)
}

func (v *URLValidator) Validate(ctx context.Context, rawURL string) (string, error) {
	return v.ValidateFn(ctx, rawURL)
}
