package main

import (
	"fmt"

	"github.com/custodia-labs/eat-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/eat-cli/internal/adapters/driven/fetch"
	"github.com/custodia-labs/eat-cli/internal/adapters/driven/openmensa"
	storagefile "github.com/custodia-labs/eat-cli/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/eat-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/eat-cli/internal/core/services"
	"github.com/custodia-labs/eat-cli/internal/logger"
	"github.com/custodia-labs/eat-cli/internal/parsers"
)

// bootstrap wires the adapters for one command invocation.
func bootstrap(opts cli.Options) (*cli.App, error) {
	config, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	settings := file.LoadSettings(config)

	outputDir := settings.OutputDir
	if opts.OutputDir != "" {
		outputDir = opts.OutputDir
	}
	logger.Debug("Config: %s, output: %s", config.Path(), outputDir)

	store, err := storagefile.NewMenuStore(outputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open output directory: %w", err)
	}

	menu := services.NewMenuService(parsers.NewDefaultRegistry(), store, store)
	menu.SetFetcher(
		fetch.NewHTTPFetcher(fetch.Config{
			Rate:      settings.FetchRate,
			Timeout:   settings.FetchTimeout,
			UserAgent: settings.FetchUserAgent,
		}),
		fetch.NewPdftotext(settings.Pdftotext),
		services.FetchConfig{
			StudentenwerkURL: settings.FetchBaseURL,
			TextURLs:         settings.TextURLs,
		},
	)
	if opts.OpenMensa || settings.OutputOpenMensa {
		menu.SetFeedExporter(openmensa.NewExporter(outputDir))
	}

	return &cli.App{
		Menu:      menu,
		Config:    config,
		OutputDir: outputDir,
	}, nil
}
