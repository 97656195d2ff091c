package main

import (
	"os"

	"github.com/MikeBiancalana/widgetkit/internal/cli"
	"github.com/MikeBiancalana/widgetkit/internal/logger"
)

func main() {
	if err := cli.Execute(); err != nil {
		logger.Close()
		os.Exit(1)
	}
	logger.Close()
}
