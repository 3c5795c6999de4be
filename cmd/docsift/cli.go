package main

import (
	"context"
	"io"

	"github.com/docsift/docsift"
	"github.com/docsift/docsift/crawl"
	"github.com/docsift/docsift/sqlite"
)

// Dependencies holds all services and configuration for command
// execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	DB      *sqlite.DB
	Manager *sqlite.DocumentManager
	Crawler *crawl.Crawler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Crawl  CrawlCmd  `cmd:"" help:"Crawl a documentation site into the index"`
	Docs   DocsCmd   `cmd:"" help:"List documents ingested by a crawl session"`
	Delete DeleteCmd `cmd:"" help:"Delete a crawl session and its documents"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL        string `arg:"" help:"Seed URL of the documentation site"`
	MaxPages   int    `short:"n" default:"100" help:"Maximum number of pages to ingest"`
	MaxDepth   int    `short:"d" default:"3" help:"Maximum link traversal depth"`
	AllDomains bool   `help:"Follow links to other domains"`
	TimeoutMS  int    `name:"timeout-ms" env:"DOCSIFT_TIMEOUT_MS" default:"15000" help:"Per-request timeout in milliseconds"`
	MaxBytes   int64  `name:"max-bytes" env:"DOCSIFT_MAX_BYTES" default:"5242880" help:"Maximum response size in bytes"`
	DelayMS    int    `name:"delay-ms" env:"DOCSIFT_DELAY_MS" default:"0" help:"Politeness delay between requests in milliseconds"`
	Verbose    bool   `short:"v" help:"Log each fetch"`
}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	CrawlID string `arg:"" help:"Crawl session ID"`
	Full    bool   `help:"Show full document content"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	CrawlID string `arg:"" help:"Crawl session ID"`
}

// crawlOptions converts command flags to domain options.
func (c *CrawlCmd) crawlOptions() docsift.CrawlOptions {
	return docsift.CrawlOptions{
		SeedURL:        c.URL,
		MaxPages:       c.MaxPages,
		MaxDepth:       c.MaxDepth,
		SameDomainOnly: !c.AllDomains,
	}
}
