package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	webrag "github.com/GH05TCREW/WebRAG"
	"github.com/GH05TCREW/WebRAG/crawl"
	"github.com/GH05TCREW/WebRAG/fs"
	"github.com/GH05TCREW/WebRAG/goquery"
	"github.com/GH05TCREW/WebRAG/htmltomarkdown"
	webraghttp "github.com/GH05TCREW/WebRAG/http"
	webragopenai "github.com/GH05TCREW/WebRAG/openai"
	webragslog "github.com/GH05TCREW/WebRAG/slog"
	"github.com/GH05TCREW/WebRAG/sqlite"
	openai "github.com/sashabaranov/go-openai"
)

// crawlRequestsPerSecond is the per-domain politeness limit.
const crawlRequestsPerSecond = 1.0

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Page cache directory. Set before calling Run().
	CacheDir string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	Index         webrag.VectorIndex
	ConfigService webrag.ConfigService
	AnswerLog     webrag.AnswerLog
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:   defaultDBPath(),
		CacheDir: defaultCacheDir(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("webrag"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'webrag --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set WEBRAG_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.Index = webragslog.NewLoggingIndex(sqlite.NewVectorIndex(m.DB), logger)
	m.ConfigService = sqlite.NewConfigService(m.DB)
	m.AnswerLog = sqlite.NewAnswerLog(m.DB)

	cfg, err := m.ConfigService.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	deps.DB = m.DB
	deps.Config = cfg
	deps.Configs = m.ConfigService
	deps.Index = m.Index
	deps.Answers = m.AnswerLog

	// Wire command-specific dependencies based on command
	if cmd == "add" || cmd == "ask" {
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "OPENAI_API_KEY environment variable not set. Get an API key at https://platform.openai.com/api-keys")
			return fmt.Errorf("OPENAI_API_KEY not set")
		}
		client := openai.NewClient(apiKey)
		deps.Embedder = webragopenai.NewEmbedder(client, cfg.EmbeddingModel)

		if cmd == "add" {
			deps.Ingestor = &crawl.Ingestor{
				Validator: webraghttp.NewValidator(),
				Crawler: &crawl.Crawler{
					Fetcher:   webragslog.NewLoggingFetcher(webraghttp.NewFetcher(), logger),
					Extractor: goquery.NewExtractor(htmltomarkdown.NewConverter()),
					Cache:     fs.NewPageCache(m.CacheDir),
					Limiter:   crawl.NewDomainLimiter(crawlRequestsPerSecond),
				},
				Splitter: webrag.NewTextSplitter(cfg.ChunkSize, cfg.ChunkOverlap),
				Embedder: deps.Embedder,
				Index:    m.Index,
			}
		}

		if cmd == "ask" {
			deps.Retriever = &webrag.Retriever{Embedder: deps.Embedder, Index: m.Index}
			deps.Answerer = webragopenai.NewAnswerer(client, cfg.ChatModel, cfg.Temperature)
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("WEBRAG_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "webrag.db"
	}
	dir := filepath.Join(home, ".webrag")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "webrag.db")
}

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "webrag-cache"
	}
	return filepath.Join(home, ".webrag", "cache")
}
