package main

import (
	"fmt"

	"github.com/docsift/docsift"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	docs, err := deps.Manager.FindDocumentsByCrawlID(deps.Ctx, c.CrawlID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsift.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found for this crawl session.")
		return nil
	}

	for _, d := range docs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", d.ID, d.Title, d.SourceURL)
		if c.Full {
			fmt.Fprintln(deps.Stdout, d.Content)
			fmt.Fprintln(deps.Stdout)
		}
	}

	return nil
}
