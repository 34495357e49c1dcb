// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package cooker watches a directory of reflection documents and recooks
// their binding-manifest blobs whenever they change.
//
// The cooker is supporting tooling around the core pipeline: each cook
// invocation is one single-threaded shaderbind.Build call, and invocations
// never share state. Concurrency exists only between cooks of different
// files, bounded by a worker pool.
package cooker

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/shaderbind"
	"github.com/gogpu/shaderbind/reflection"
)

// DocumentExt is the extension of reflection documents the cooker picks up.
const DocumentExt = ".refl.yaml"

// ArtifactExt is the extension of cooked manifest blobs.
const ArtifactExt = ".sbm"

// Cooker cooks reflection documents under one root directory.
type Cooker struct {
	cfg    Config
	target shaderbind.TargetAPI
	log    *slog.Logger
}

// New validates the configuration and creates a Cooker. A nil logger
// discards all output.
func New(cfg Config, log *slog.Logger) (*Cooker, error) {
	if cfg.Root == "" {
		return nil, fmt.Errorf("cooker: no root directory configured")
	}
	if cfg.Workers <= 0 {
		return nil, fmt.Errorf("cooker: worker count must be positive, got %d", cfg.Workers)
	}
	target, err := shaderbind.TargetFromProfile(cfg.Target)
	if err != nil {
		return nil, fmt.Errorf("cooker: %w", err)
	}
	if cfg.OutDir != "" {
		if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
			return nil, fmt.Errorf("cooker: creating output directory: %w", err)
		}
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Cooker{cfg: cfg, target: target, log: log}, nil
}

// IsDocument reports whether path names a reflection document.
func IsDocument(path string) bool {
	return strings.HasSuffix(path, DocumentExt)
}

// ArtifactPath returns the blob path a document cooks to.
func (c *Cooker) ArtifactPath(docPath string) string {
	name := strings.TrimSuffix(filepath.Base(docPath), DocumentExt) + ArtifactExt
	if c.cfg.OutDir != "" {
		return filepath.Join(c.cfg.OutDir, name)
	}
	return filepath.Join(filepath.Dir(docPath), name)
}

// CookFile cooks one reflection document and writes its manifest blob.
// It returns the artifact path. Nothing is written if any pipeline stage
// fails.
func (c *Cooker) CookFile(docPath string) (string, error) {
	data, err := os.ReadFile(docPath)
	if err != nil {
		return "", fmt.Errorf("cooker: reading %s: %w", docPath, err)
	}
	module, err := reflection.DecodeDocument(data)
	if err != nil {
		return "", fmt.Errorf("cooker: %s: %w", docPath, err)
	}
	artifact, err := shaderbind.Build(module, shaderbind.Options{
		Target:   c.target,
		Assemble: c.cfg.assembleOptions(),
	})
	if err != nil {
		return "", fmt.Errorf("cooker: %s: %w", docPath, err)
	}

	outPath := c.ArtifactPath(docPath)
	if err := os.WriteFile(outPath, artifact, 0o644); err != nil {
		return "", fmt.Errorf("cooker: writing %s: %w", outPath, err)
	}
	c.log.Info("cooked manifest", "doc", docPath, "artifact", outPath, "bytes", len(artifact))
	return outPath, nil
}

// CookAll cooks every document under the root once, using the worker
// pool. The first failed cook cancels the rest and is returned.
func (c *Cooker) CookAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.Workers)

	err := filepath.WalkDir(c.cfg.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsDocument(path) {
			return nil
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			_, err := c.CookFile(path)
			return err
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("cooker: walking %s: %w", c.cfg.Root, err)
	}
	return g.Wait()
}

// Watch cooks every existing document, then recooks documents as they are
// created or modified, until the context is cancelled. A failed cook is
// logged and does not stop the watch; new subdirectories are picked up as
// they appear.
func (c *Cooker) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("cooker: creating watcher: %w", err)
	}
	defer watcher.Close()

	err = filepath.WalkDir(c.cfg.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("cooker: watching %s: %w", c.cfg.Root, err)
	}

	if err := c.CookAll(ctx); err != nil {
		c.log.Error("initial cook failed", "err", err)
	}

	var g errgroup.Group
	g.SetLimit(c.cfg.Workers)

	c.log.Info("watching", "root", c.cfg.Root, "workers", c.cfg.Workers)
	for {
		select {
		case <-ctx.Done():
			werr := g.Wait()
			if werr != nil {
				return werr
			}
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return g.Wait()
			}
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watcher.Add(event.Name); err != nil {
						c.log.Error("watching new directory failed", "dir", event.Name, "err", err)
					}
					continue
				}
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}
			if !IsDocument(event.Name) {
				continue
			}
			doc := event.Name
			g.Go(func() error {
				if _, err := c.CookFile(doc); err != nil {
					c.log.Error("cook failed", "err", err)
				}
				return nil
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return g.Wait()
			}
			c.log.Error("watcher error", "err", err)
		}
	}
}
