// Command assess evaluates accident severity scenarios against the model
// and catalog artifacts without starting the web service.
//
// Usage:
//
//	go run ./cmd/assess run \
//	  --set Light_conditions="Darkness - no lighting" \
//	  --set Type_of_collision=Rollover
//	go run ./cmd/assess fields
//	go run ./cmd/assess check
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
