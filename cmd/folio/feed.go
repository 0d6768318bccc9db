// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.


package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"folio/internal/catalog"
	"folio/internal/config"
	"folio/internal/models"
)

var (
	feedQuery  string
	feedFilter string
	feedPages  int
)

func newFeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Print the merged content feed",
		Long: `Print the merged blog and project feed, newest first, one page at a time.

Examples:
  # First page of everything
  folio feed

  # Two pages of design work matching "figma"
  folio feed --filter design --query figma --pages 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			slog.SetDefault(newLogger(os.Stderr, cfg.Log))

			b, err := openBackend(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer b.Close()

			posts, err := b.store.ListBlogPosts(cmd.Context())
			if err != nil {
				return fmt.Errorf("list blog posts: %w", err)
			}
			projects, err := b.store.ListProjects(cmd.Context())
			if err != nil {
				return fmt.Errorf("list projects: %w", err)
			}

			feed := catalog.Feed(posts, projects, feedQuery, feedFilter)
			return printFeed(cmd.OutOrStdout(), feed, feedPages)
		},
	}
	cmd.Flags().StringVarP(&feedQuery, "query", "q", "", "search query")
	cmd.Flags().StringVarP(&feedFilter, "filter", "f", catalog.FilterAll, `"all", "blog", "project" or a category name`)
	cmd.Flags().IntVarP(&feedPages, "pages", "p", 1, "number of pages to print")
	return cmd
}

// printFeed walks the feed with a cursor, writing up to pages windows.
func printFeed(w io.Writer, feed []models.Item, pages int) error {
	if len(feed) == 0 {
		_, err := fmt.Fprintln(w, "No content found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	cur := catalog.NewCursor()
	printed := 0
	for page := 1; page <= pages; page++ {
		window := cur.Window(feed)
		for _, it := range window[printed:] {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d views\n",
				it.PublishedAt().Format("2006-01-02"), it.Type, it.Slug(), it.Category(), it.Views())
		}
		printed = len(window)
		if !cur.HasMore(feed) {
			break
		}
		cur.Advance()
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%d of %d items\n", printed, len(feed))
	return err
}
