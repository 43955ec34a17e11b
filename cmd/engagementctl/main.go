// Command engagementctl is the operator CLI for the Fritter engagement store.
// It reads the same DATABASE_*, EVENTS_* and NOTIFICATIONS_* environment
// variables as the API server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jbeshir/fritter-engagement/internal/app"
	"github.com/jbeshir/fritter-engagement/internal/cli"
)

import _ "github.com/joho/godotenv/autoload"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand(app.SetupDependencies).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
