package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/kagi"
	"github.com/fwojciec/kagi/fs"
	"github.com/fwojciec/kagi/goquery"
	"github.com/fwojciec/kagi/htmltomarkdown"
	kagihttp "github.com/fwojciec/kagi/http"
	"github.com/fwojciec/kagi/readability"
	kagislog "github.com/fwojciec/kagi/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Path of the token file used when no token is given. Set before calling Run().
	TokenPath string

	// Token source override. When nil, the token comes from --token or the token file.
	Tokens kagi.TokenSource

	// Services for end-to-end testing. When nil, Run wires the HTTP client.
	Searcher   kagi.Searcher
	Summarizer kagi.Summarizer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		TokenPath: fs.DefaultTokenPath(),
	}
}

// Run executes the CLI with the given arguments. Failures are written to
// stderr as a JSON {"error": message} object and returned.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) (err error) {
	defer func() {
		if err != nil {
			writeError(stderr, err)
		}
	}()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Kong reports a handled --help through Exit.
	var helped bool
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("kagi"),
		kong.Description("Search Kagi.com using session tokens and return structured JSON results matching the Kagi API format"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { helped = true }),
		kong.Vars{"token_file": m.TokenPath},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	switch args[0] {
	case "help":
		return showHelp(parser, args[1:])
	case "--help", "-h":
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if helped {
		return nil
	}
	if err != nil {
		return err
	}

	// stderr carries only the JSON error unless logging is requested.
	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	if m.Searcher == nil || m.Summarizer == nil {
		tokens := m.Tokens
		if tokens == nil {
			tokens = fs.NewTokenFile(cli.TokenFile, cli.Token)
		}
		token, err := tokens.Token()
		if err != nil {
			return err
		}

		opts := []kagihttp.Option{
			kagihttp.WithBaseURL(cli.BaseURL),
			kagihttp.WithTimeout(cli.Timeout),
			kagihttp.WithRetryDelays(retryDelays(cli.Retries)),
		}
		if cli.RateLimit > 0 {
			// Concurrent searches start together, then share the rate.
			opts = append(opts, kagihttp.WithRateLimit(cli.RateLimit, max(cli.Search.Concurrency, 1)))
		}

		client, err := kagihttp.NewClient(token, goquery.NewParser(), opts...)
		if err != nil {
			return err
		}
		if m.Searcher == nil {
			m.Searcher = client
		}
		if m.Summarizer == nil {
			m.Summarizer = client
		}
	}

	deps.Searcher = kagislog.NewLoggingSearcher(m.Searcher, logger)
	deps.Summarizer = kagislog.NewLoggingSummarizer(m.Summarizer, logger)
	deps.Extractor = readability.NewExtractor()
	deps.Converter = htmltomarkdown.NewConverter()

	return kongCtx.Run(deps)
}

// showHelp prints help for the whole program or for a single command.
func showHelp(parser *kong.Kong, args []string) error {
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}
	for _, node := range parser.Model.Children {
		if node.Name == args[0] {
			_, _ = parser.Parse([]string{args[0], "--help"})
			return nil
		}
	}
	return kagi.Errorf(kagi.EINVALID, "Unknown command: %s. Available commands: search, summarize, help", args[0])
}

// retryDelays returns the first n default backoff delays.
func retryDelays(n int) []time.Duration {
	delays := kagihttp.DefaultRetryDelays()
	if n <= 0 {
		return nil
	}
	if n > len(delays) {
		n = len(delays)
	}
	return delays[:n]
}

// writeJSON pretty-prints v the way every command reports its result.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// writeError reports err as {"error": message}. Application errors carry
// a user-facing message; anything else is shown verbatim.
func writeError(w io.Writer, err error) {
	msg := kagi.ErrorMessage(err)
	if kagi.ErrorCode(err) == kagi.EINTERNAL {
		msg = err.Error()
	}
	_ = writeJSON(w, map[string]string{"error": msg})
}
