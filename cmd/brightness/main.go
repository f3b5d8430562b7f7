// Command brightness classifies wallpaper images as dark or light and prints
// a path→result JSON object. Paths that cannot be analyzed are omitted from
// the output, matching the analyzer's best-effort contract.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"go-wallpaper-brightness/internal/analyzer"
	"go-wallpaper-brightness/internal/config"
	"go-wallpaper-brightness/internal/logger"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load config")
	}

	workers := flag.Int("workers", cfg.MaxWorkers, "maximum concurrent analyses (0 = logical CPU count)")
	quiet := flag.Bool("quiet", !cfg.ShowProgress, "suppress progress logging")
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		logger.Error("no image paths given")
		flag.Usage()
		os.Exit(2)
	}

	// Ctrl-C stops dispatching new analyses; in-flight ones finish and their
	// results are still printed.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var progress analyzer.ProgressFunc
	if !*quiet {
		progress = func(percent int) {
			logger.WithField("percent", percent).Info("analyzing wallpapers")
		}
	}

	opts := analyzer.DefaultOptions().WithMaxWorkers(*workers)
	results := analyzer.AnalyzeBatchWithOptions(ctx, paths, progress, opts)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		logger.WithError(err).Fatal("Failed to encode results")
	}

	if len(results) < len(paths) {
		logger.WithFields(logrus.Fields{
			"analyzed":  len(results),
			"requested": len(paths),
		}).Warn("some images could not be analyzed")
	}
}
