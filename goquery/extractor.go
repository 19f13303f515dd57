// Package goquery implements content extraction and internal link
// discovery on top of CSS-selector HTML traversal.
package goquery

import (
	"regexp"
	"strings"

	webrag "github.com/GH05TCREW/WebRAG"
	"github.com/PuerkitoBio/goquery"
)

// Extraction thresholds. A container is only accepted when its stripped
// text is substantial enough to be worth indexing.
const (
	maxTitleLength       = 200
	minTitleLength       = 3
	substantialTextLen   = 500 // selector-matched containers
	fallbackScanTextLen  = 200 // longest-text fallback scan
	minExtractedTextLen  = 100 // below this, degrade to paragraph concatenation
	minParagraphTextLen  = 20
	minContentLineLength = 3
)

// unwantedTags are removed outright before content selection.
var unwantedTags = []string{
	"script", "style", "nav", "header", "footer", "aside",
	"iframe", "object", "embed", "form", "fieldset",
	"button", "input", "select", "textarea",
}

// unwantedPatterns match class or id fragments of boilerplate elements.
var unwantedPatterns = []string{
	"advertisement", "ad-", "ads", "banner", "popup", "modal",
	"cookie", "gdpr", "newsletter", "subscription", "social-share",
	"related-posts", "comments", "sidebar", "widget", "menu",
	"navigation", "breadcrumb",
}

// titleSelectors is the ordered title candidate cascade. Attribute
// selectors read the content attribute; the rest use element text.
var titleSelectors = []string{
	"title",
	"h1",
	`meta[property="og:title"]`,
	`meta[name="twitter:title"]`,
	".title",
	".headline",
	"h2",
}

// contentSelectors is the ordered container cascade: site-specific
// selectors for common content management systems first, then semantic
// HTML5, then conventional content class and id names.
var contentSelectors = []string{
	// Content-management specific
	"#mw-content-text",
	".mw-parser-output",
	".repository-content",
	".markdown-body",

	// Semantic HTML5
	"main",
	"article",
	`[role="main"]`,

	// Common content classes and ids
	".main-content",
	".content",
	".post-content",
	".entry-content",
	".article-content",
	".page-content",
	"#main-content",
	"#content",
	".container .content",
}

// skipContainerPatterns disqualify candidates in the longest-text scan.
var skipContainerPatterns = []string{"nav", "sidebar", "menu", "footer", "header", "ad"}

// boilerplatePhrases are removed from extracted text.
var boilerplatePhrases = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Cookies? (?:Policy|Notice|Settings)`),
	regexp.MustCompile(`(?i)Privacy Policy`),
	regexp.MustCompile(`(?i)Terms (?:of )?(?:Service|Use)`),
	regexp.MustCompile(`(?i)Accept (?:All )?Cookies`),
	regexp.MustCompile(`(?i)Manage Cookies`),
	regexp.MustCompile(`(?i)(?:Share|Follow) (?:on|us on) (?:Twitter|Facebook|LinkedIn|Instagram)`),
	regexp.MustCompile(`(?i)Subscribe to our newsletter`),
}

// navLabelRe matches lines that are bare navigation labels.
var navLabelRe = regexp.MustCompile(`(?i)^(Home|About|Contact|Menu|Search|Login|Sign up)$`)

// symbolLineRe matches lines containing only symbols and digits.
var symbolLineRe = regexp.MustCompile(`^[\W\d]*$`)

var (
	multiBlankRe = regexp.MustCompile(`\n\s*\n\s*\n+`)
	multiSpaceRe = regexp.MustCompile(`[ \t]+`)
)

// Ensure Extractor implements webrag.Extractor at compile time.
var _ webrag.Extractor = (*Extractor)(nil)

// Extractor isolates main page content using an ordered heuristic cascade.
type Extractor struct {
	converter webrag.Converter
}

// NewExtractor creates an Extractor that renders selected containers to
// plain text with the given converter.
func NewExtractor(converter webrag.Converter) *Extractor {
	return &Extractor{converter: converter}
}

// Extract processes raw HTML and returns the title, main text, page
// metadata, and discovered internal links. A parse failure yields an
// empty Text rather than an error; callers treat empty text as an
// extraction failure.
func (e *Extractor) Extract(html string, sourceURL string) (*webrag.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return &webrag.ExtractResult{Title: "Untitled"}, nil
	}

	result := &webrag.ExtractResult{
		Title:    extractTitle(doc),
		Metadata: extractMetadata(doc),
		Links:    extractInternalLinks(doc, sourceURL),
	}

	removeUnwanted(doc)

	container := selectContainer(doc)
	result.Text = e.containerText(container)

	// Degraded path: concatenate substantial paragraphs and headings.
	if len(strings.TrimSpace(result.Text)) < minExtractedTextLen {
		result.Text = paragraphFallback(doc)
	}

	return result, nil
}

// extractTitle walks the title cascade and returns the first candidate
// longer than minTitleLength, truncated to maxTitleLength.
func extractTitle(doc *goquery.Document) string {
	for _, selector := range titleSelectors {
		title := ""
		doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			candidate := ""
			if strings.HasPrefix(selector, "meta") {
				candidate, _ = sel.Attr("content")
			} else {
				candidate = sel.Text()
			}
			candidate = strings.TrimSpace(candidate)
			if len(candidate) > minTitleLength {
				title = candidate
				return false
			}
			return true
		})
		if title != "" {
			if len(title) > maxTitleLength {
				title = title[:maxTitleLength]
			}
			return title
		}
	}
	return "Untitled"
}

// extractMetadata reads descriptive metadata from head meta tags.
func extractMetadata(doc *goquery.Document) webrag.PageMetadata {
	meta := webrag.PageMetadata{
		Description: firstMetaContent(doc,
			`meta[name="description"]`,
			`meta[property="og:description"]`,
			`meta[name="twitter:description"]`),
		Author: firstMetaContent(doc,
			`meta[name="author"]`,
			`meta[property="article:author"]`),
		Language: firstMetaContent(doc,
			`meta[http-equiv="content-language"]`,
			`meta[name="language"]`),
	}
	if meta.Language == "" {
		meta.Language, _ = doc.Find("html").Attr("lang")
	}
	return meta
}

func firstMetaContent(doc *goquery.Document, selectors ...string) string {
	for _, selector := range selectors {
		if content, ok := doc.Find(selector).Attr("content"); ok {
			if content = strings.TrimSpace(content); content != "" {
				return content
			}
		}
	}
	return ""
}

// removeUnwanted strips non-content elements and anything whose class or
// id matches a boilerplate pattern.
func removeUnwanted(doc *goquery.Document) {
	doc.Find(strings.Join(unwantedTags, ", ")).Remove()

	doc.Find("[class], [id]").Each(func(_ int, sel *goquery.Selection) {
		class, _ := sel.Attr("class")
		id, _ := sel.Attr("id")
		haystack := strings.ToLower(class + " " + id)
		for _, pattern := range unwantedPatterns {
			if strings.Contains(haystack, pattern) {
				sel.Remove()
				return
			}
		}
	})
}

// selectContainer picks the main-content container: the first cascade
// selector with substantial text, then the densest generic container,
// then body, then the whole document.
func selectContainer(doc *goquery.Document) *goquery.Selection {
	for _, selector := range contentSelectors {
		var found *goquery.Selection
		doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if len(strings.TrimSpace(sel.Text())) > substantialTextLen {
				found = sel
				return false
			}
			return true
		})
		if found != nil {
			return found
		}
	}

	if sel := longestTextContainer(doc); sel != nil {
		return sel
	}

	if body := doc.Find("body"); body.Length() > 0 {
		return body
	}
	return doc.Selection
}

// longestTextContainer scans generic containers for the one with the most
// stripped text above the fallback floor.
func longestTextContainer(doc *goquery.Document) *goquery.Selection {
	var best *goquery.Selection
	maxLen := fallbackScanTextLen

	doc.Find("div, section, article, main").Each(func(_ int, sel *goquery.Selection) {
		class, _ := sel.Attr("class")
		id, _ := sel.Attr("id")
		haystack := strings.ToLower(class + " " + id)
		for _, pattern := range skipContainerPatterns {
			if strings.Contains(haystack, pattern) {
				return
			}
		}

		if textLen := len(strings.TrimSpace(sel.Text())); textLen > maxLen {
			maxLen = textLen
			best = sel
		}
	})

	return best
}

// containerText renders the container to plain text and post-cleans it.
func (e *Extractor) containerText(container *goquery.Selection) string {
	html, err := goquery.OuterHtml(container)
	if err != nil || strings.TrimSpace(html) == "" {
		return ""
	}

	text, err := e.converter.Convert(html)
	if err != nil {
		return ""
	}

	return cleanText(text)
}

// cleanText collapses whitespace, strips boilerplate phrases, and drops
// navigational and near-empty lines while preserving paragraph breaks.
func cleanText(text string) string {
	text = multiBlankRe.ReplaceAllString(text, "\n\n")
	text = multiSpaceRe.ReplaceAllString(text, " ")

	for _, re := range boilerplatePhrases {
		text = re.ReplaceAllString(text, "")
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			// Keep a single blank line as a paragraph separator.
			if len(lines) > 0 && lines[len(lines)-1] != "" {
				lines = append(lines, "")
			}
			continue
		}
		if len(line) < minContentLineLength {
			continue
		}
		if symbolLineRe.MatchString(line) || navLabelRe.MatchString(line) {
			continue
		}
		lines = append(lines, line)
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// paragraphFallback concatenates substantial paragraph and heading
// elements when the cascade produced too little text.
func paragraphFallback(doc *goquery.Document) string {
	var parts []string
	doc.Find("p, h1, h2, h3, h4, h5, h6, li").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); len(text) > minParagraphTextLen {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, "\n\n")
}
