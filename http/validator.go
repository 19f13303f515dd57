package http

import (
	"context"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	webrag "github.com/GH05TCREW/WebRAG"
)

// DefaultValidateTimeout bounds the liveness probe.
const DefaultValidateTimeout = 10 * time.Second

var schemeRe = regexp.MustCompile(`^https?://`)

// Ensure Validator implements webrag.URLValidator at compile time.
var _ webrag.URLValidator = (*Validator)(nil)

// Validator canonicalizes seed URLs and verifies reachability with a
// HEAD probe, falling back to GET when the server rejects HEAD.
type Validator struct {
	client *http.Client
}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{
		client: &http.Client{
			Timeout: DefaultValidateTimeout,
		},
	}
}

// Validate canonicalizes the URL and confirms the host answers.
func (v *Validator) Validate(ctx context.Context, rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", webrag.Errorf(webrag.EINVALID, "URL is empty")
	}

	// Add a default scheme if missing.
	if !schemeRe.MatchString(rawURL) {
		rawURL = "http://" + rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", webrag.Errorf(webrag.EINVALID, "invalid URL format: %q", rawURL)
	}

	status, err := v.probe(ctx, http.MethodHead, rawURL)
	if err != nil {
		return "", webrag.Errorf(webrag.EUNREACHABLE, "cannot access %s: %v", rawURL, err)
	}
	if status == http.StatusMethodNotAllowed {
		status, err = v.probe(ctx, http.MethodGet, rawURL)
		if err != nil {
			return "", webrag.Errorf(webrag.EUNREACHABLE, "cannot access %s: %v", rawURL, err)
		}
	}
	if status >= 400 {
		return "", webrag.Errorf(webrag.EUNREACHABLE, "URL not accessible (HTTP %d): %s", status, rawURL)
	}

	return rawURL, nil
}

func (v *Validator) probe(ctx context.Context, method, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := v.client.Do(req)
	if err != nil {
		return 0, err
	}
	// The body is irrelevant for a liveness check.
	resp.Body.Close()

	return resp.StatusCode, nil
}
