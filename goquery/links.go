package goquery

import (
	"net/url"
	"strings"

	webrag "github.com/GH05TCREW/WebRAG"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/publicsuffix"
)

// binaryExtensions are link targets excluded from crawling.
var binaryExtensions = []string{".pdf", ".jpg", ".png", ".gif", ".css", ".js"}

// extractInternalLinks collects same-registrable-domain links from the
// document, normalized and deduplicated in document order. Links carrying
// fragments and links to binary assets are skipped.
func extractInternalLinks(doc *goquery.Document, baseURL string) []string {
	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil
	}
	baseDomain := registrableDomain(base.Hostname())

	seen := make(map[string]bool)
	var links []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || isNonHTTPLink(href) {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref)

		if resolved.Fragment != "" {
			return
		}
		if registrableDomain(resolved.Hostname()) != baseDomain {
			return
		}
		if hasBinaryExtension(resolved.Path) {
			return
		}

		normalized := webrag.NormalizeURL(resolved.String())
		if normalized == "" || seen[normalized] {
			return
		}
		seen[normalized] = true
		links = append(links, normalized)
	})

	return links
}

// registrableDomain returns the eTLD+1 for a hostname, falling back to
// the hostname itself for IPs and other names without a public suffix.
func registrableDomain(hostname string) string {
	domain, err := publicsuffix.EffectiveTLDPlusOne(hostname)
	if err != nil {
		return hostname
	}
	return domain
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(href)
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}

// hasBinaryExtension checks if a URL path points at a binary asset.
func hasBinaryExtension(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range binaryExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
