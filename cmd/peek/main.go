package main

import (
	"context"
	"log"
	"os"

	"github.com/go-sif/peek/internal/app"
)

func main() {
	if err := app.Run(context.Background(), app.DefaultConfig(), os.Stdout); err != nil {
		log.Fatalf("peek: %v", err)
	}
}
