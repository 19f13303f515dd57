package webrag

import (
	"context"
	"net/url"
	"strings"
)

// URLValidator verifies that a URL is well-formed and reachable.
type URLValidator interface {
	// Validate canonicalizes the URL (adding a default scheme if missing)
	// and confirms it responds to an HTTP request. Returns the canonical
	// URL on success, EINVALID for malformed input, or EUNREACHABLE when
	// the host cannot be reached or answers with status >= 400.
	Validate(ctx context.Context, rawURL string) (string, error)
}

// NormalizeURL canonicalizes a URL for storage and deduplication.
// The fragment and query string are stripped and a trailing slash removed,
// so URLs differing only by those parts normalize identically. The
// function is idempotent: NormalizeURL(NormalizeURL(u)) == NormalizeURL(u).
func NormalizeURL(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return strings.TrimSpace(rawURL)
	}
	u.Fragment = ""
	u.RawQuery = ""
	normalized := u.String()
	return strings.TrimSuffix(normalized, "/")
}

// Domain extracts the host portion of a URL.
// Returns an empty string if the URL cannot be parsed.
func Domain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}

// ExtractURLs parses free-text URL input. URLs may be separated by
// newlines, commas, or spaces; lines starting with '#' are skipped.
func ExtractURLs(text string) []string {
	var urls []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, field := range strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		}) {
			if field = strings.TrimSpace(field); field != "" {
				urls = append(urls, field)
			}
		}
	}
	return urls
}
