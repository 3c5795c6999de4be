package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/docsift/docsift"
	"github.com/docsift/docsift/crawl"
	docslog "github.com/docsift/docsift/slog"

	"github.com/docsift/docsift/goquery"
	dochttp "github.com/docsift/docsift/http"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	client := &http.Client{Timeout: time.Duration(c.TimeoutMS) * time.Millisecond}

	var fetcher docsift.Fetcher = dochttp.NewFetcher(
		dochttp.WithTimeout(time.Duration(c.TimeoutMS)*time.Millisecond),
		dochttp.WithMaxBodySize(c.MaxBytes),
	)
	var robots docsift.RobotsService = dochttp.NewRobotsService(client)
	var sitemaps docsift.SitemapService = dochttp.NewSitemapService(client)
	var manager docsift.DocumentManager = deps.Manager

	if c.Verbose {
		logger := slog.New(slog.NewTextHandler(deps.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		fetcher = docslog.NewLoggingFetcher(fetcher, logger)
		robots = docslog.NewLoggingRobotsService(robots, logger)
		sitemaps = docslog.NewLoggingSitemapService(sitemaps, logger)
		manager = docslog.NewLoggingDocumentManager(manager, logger)
	}

	crawler := &crawl.Crawler{
		Robots:    robots,
		Sitemaps:  sitemaps,
		Fetcher:   fetcher,
		Extractor: goquery.NewExtractor(),
		Manager:   manager,
		Limiter:   crawl.NewDomainLimiter(time.Duration(c.DelayMS) * time.Millisecond),
	}

	result, err := crawler.Run(deps.Ctx, c.crawlOptions())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsift.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Crawl %s finished: %d ingested, %d skipped, %d errors\n",
		result.CrawlID, result.PagesIngested, result.PagesSkipped, len(result.Errors))
	for _, e := range result.Errors {
		fmt.Fprintf(deps.Stderr, "  %s: %s\n", e.URL, e.Error)
	}

	return nil
}
