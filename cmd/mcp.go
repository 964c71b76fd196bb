package main

import (
	"context"
	"toolserver/internal/config"
	"toolserver/internal/docindex"
	"toolserver/internal/fetcher"
	"toolserver/internal/safeurl"
	"toolserver/internal/tools"
	"toolserver/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const version = "1.0.0"

// mcpCommand constructs the 'mcp' subcommand that builds the documentation
// search index and then serves the agent tools over stdio.
func mcpCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serves agent tools over the Model Context Protocol on stdio",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			logger.Info(ctx, "downloading documentation archive...",
				zap.String("url", cfg.Docs.ArchiveURL))
			docs, err := docindex.FetchDocuments(ctx, cfg.Docs.ArchiveURL, cfg.Docs.DownloadTimeout)
			if err != nil {
				logger.Fatal(ctx, "could not fetch documentation", zap.Error(err))
			}

			index, err := docindex.New(docs, docindex.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not build search index", zap.Error(err))
			}
			defer func() { _ = index.Close() }()
			logger.Info(ctx, "documentation indexed", zap.Int("documents", len(docs)))

			validator := safeurl.New(safeurl.Options{Allowlist: cfg.Fetcher.AllowedHosts})
			pageFetcher := fetcher.New(validator, fetcher.NewOptions(cfg))

			srv := tools.New(version, pageFetcher, index)
			if err := srv.Serve(ctx); err != nil {
				logger.Fatal(ctx, "could not serve tools", zap.Error(err))
			}
		},
	}

	return cmd
}
