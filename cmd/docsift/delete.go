package main

import (
	"fmt"

	"github.com/docsift/docsift"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	n, err := deps.Manager.DeleteByCrawlID(deps.Ctx, c.CrawlID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsift.ErrorMessage(err))
		return err
	}

	if n == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found for this crawl session.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Deleted %d documents from crawl %s\n", n, c.CrawlID)
	return nil
}
