package main

import (
	"context"
	"io"

	webrag "github.com/GH05TCREW/WebRAG"
	"github.com/GH05TCREW/WebRAG/crawl"
	"github.com/GH05TCREW/WebRAG/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Config    webrag.Config
	Configs   webrag.ConfigService
	Index     webrag.VectorIndex
	Answers   webrag.AnswerLog
	Embedder  webrag.Embedder
	Ingestor  *crawl.Ingestor
	Retriever *webrag.Retriever
	Answerer  webrag.Answerer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Add     AddCmd     `cmd:"" help:"Crawl and index content starting from one or more URLs"`
	Ask     AskCmd     `cmd:"" help:"Ask a question about indexed content"`
	Sources SourcesCmd `cmd:"" help:"List indexed sources"`
	History HistoryCmd `cmd:"" help:"Show recent questions and answers"`
	Delete  DeleteCmd  `cmd:"" help:"Delete an indexed source"`
	Reset   ResetCmd   `cmd:"" help:"Delete all indexed content"`
	Config  ConfigCmd  `cmd:"" help:"Get or set configuration options"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	URLs     []string `arg:"" optional:"" help:"URLs to crawl and index"`
	File     string   `short:"f" help:"Read URLs from a file (newline, comma, or space separated; # comments)"`
	MaxPages int      `help:"Override the per-run page cap"`
	MaxDepth int      `help:"Override the crawl depth limit"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to ask about indexed content"`
}

// SourcesCmd is the "sources" subcommand.
type SourcesCmd struct {
	ByDomain bool `help:"Group sources by domain"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit int `default:"10" help:"Number of answers to show"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	URL string `arg:"" help:"Source URL to delete"`
}

// ResetCmd is the "reset" subcommand.
type ResetCmd struct {
	Force bool `help:"Confirm deletion of all indexed content"`
}

// ConfigCmd is the "config" subcommand.
type ConfigCmd struct {
	Get ConfigGetCmd `cmd:"" default:"1" help:"Show configuration"`
	Set ConfigSetCmd `cmd:"" help:"Set a configuration option"`
}

// ConfigGetCmd shows the current configuration.
type ConfigGetCmd struct{}

// ConfigSetCmd sets one configuration option.
type ConfigSetCmd struct {
	Key   string `arg:"" help:"Option name (e.g. chunk_size)"`
	Value string `arg:"" help:"New value"`
}
