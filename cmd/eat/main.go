// Command eat normalises the weekly menu publications of the Munich
// university canteens into one JSON schema.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/eat-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/eat-cli/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(ctx); err != nil {
		logger.Debug("exit: %v", err)
		stop()
		os.Exit(1)
	}
}
