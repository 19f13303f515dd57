// Package htmltomarkdown renders HTML fragments to Markdown text
// suitable for chunking and embedding.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	webrag "github.com/GH05TCREW/WebRAG"
)

// imageRe matches Markdown image syntax. Images carry no indexable text,
// so they are stripped from the converted output.
var imageRe = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)

// Ensure Converter implements webrag.Converter at compile time.
var _ webrag.Converter = (*Converter)(nil)

// Converter renders HTML to Markdown, preserving headings, lists, code
// blocks, and tables so chunk boundaries can follow document structure.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown text.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", webrag.Errorf(webrag.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return imageRe.ReplaceAllString(result, ""), nil
}
