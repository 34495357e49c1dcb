// Command shaderbindcook watches a directory of reflection documents and
// recooks their binding-manifest blobs as they change.
//
// Usage:
//
//	shaderbindcook [options] <dir>
//	shaderbindcook -config cooker.toml
//
// Examples:
//
//	shaderbindcook assets/shaders            # Watch with defaults
//	shaderbindcook -once assets/shaders      # Cook everything and exit
//	shaderbindcook -workers 12 assets        # Larger worker pool
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/shaderbind/cooker"
)

var (
	configPath = flag.String("config", "", "TOML config file (flags below override it)")
	outDir     = flag.String("out", "", "artifact output directory (default: alongside each document)")
	workers    = flag.Int("workers", 0, "worker pool size (default: 6)")
	target     = flag.String("target", "", "target profile (default: spirv)")
	once       = flag.Bool("once", false, "cook every document once and exit instead of watching")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	cfg := cooker.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = cooker.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if args := flag.Args(); len(args) > 0 {
		cfg.Root = args[0]
	}
	if *outDir != "" {
		cfg.OutDir = *outDir
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *target != "" {
		cfg.Target = *target
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	c, err := cooker.New(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *once {
		err = c.CookAll(ctx)
	} else {
		err = c.Watch(ctx)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: shaderbindcook [options] <dir>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  shaderbindcook assets/shaders          Watch with defaults\n")
	fmt.Fprintf(os.Stderr, "  shaderbindcook -once assets/shaders    Cook everything and exit\n")
}
