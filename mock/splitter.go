package mock

import webrag "github.com/GH05TCREW/WebRAG"

var _ webrag.Splitter = (*Splitter)(nil)

// Splitter is a mock implementation of webrag.Splitter.
type Splitter struct {
	SplitFn func(text string) []string
}

func (s *Splitter) Split(text string) []string {
	return s.SplitFn(text)
}
