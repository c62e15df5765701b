package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/kagi"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Searcher   kagi.Searcher
	Summarizer kagi.Summarizer
	Extractor  kagi.ArticleExtractor
	Converter  kagi.MarkdownConverter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Token     string        `help:"Kagi session token for authentication" env:"KAGI_SESSION_TOKEN"`
	TokenFile string        `name:"token-file" default:"${token_file}" help:"File holding the session token, read when --token is not set"`
	BaseURL   string        `name:"base-url" default:"https://kagi.com" env:"KAGI_BASE_URL" hidden:""`
	Timeout   time.Duration `default:"30s" help:"Timeout for each request to Kagi"`
	Retries   int           `default:"1" help:"Retries for network failures and 5xx responses (max 3)"`
	RateLimit float64       `name:"rate-limit" default:"2" help:"Sustained requests per second to Kagi; search bursts up to --concurrency (0 disables the limit)"`
	Verbose   bool          `short:"v" help:"Log requests to stderr"`

	Search    SearchCmd    `cmd:"" help:"Search Kagi.com and return JSON results"`
	Summarize SummarizeCmd `cmd:"" help:"Summarize content from URL or text using Kagi's summarizer"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Queries     []string `arg:"" name:"query" help:"Search query to execute; several queries run concurrently"`
	Concurrency int      `short:"c" default:"3" help:"Concurrent searches when several queries are given; also the rate limiter burst"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	URL      string `name:"url" help:"URL to summarize"`
	Text     string `help:"Text content to summarize"`
	File     string `help:"Local file to summarize; HTML files are reduced to their article text"`
	Language string `default:"EN" help:"Target language (2-character code, e.g., EN, DE)"`
	Type     string `default:"summary" help:"Summary type: 'summary' or 'takeaway'"`
}
