// SPDX-License-Identifier: MPL-2.0

// Package diagram renders standalone .puml diagrams, skipping sources that
// did not change since the previous run.
package diagram

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-zglob"

	"pumlgen/pkg/fsutil"
	"pumlgen/pkg/workpool"
)

// watermarkFile stores the timestamp of the previous run, as nanoseconds
// since the epoch.
const watermarkFile = "LAST_GENERATION"

// Renderer turns a .puml source into its image.
type Renderer interface {
	Render(ctx context.Context, sourcePath string, extraArgs ...string) error
}

// renderUnit renders one .puml source. Sources are independent, the pool
// renders them concurrently.
type renderUnit struct {
	ctx       context.Context
	renderer  Renderer
	source    string
	extraArgs []string
}

func (u *renderUnit) Identifier() string {
	return u.source
}

func (u *renderUnit) Execute() error {
	return u.renderer.Render(u.ctx, u.source, u.extraArgs...)
}

// Run discovers the .puml files under cfg.SourceDirectory and renders the
// ones modified since the previous run. force renders all of them.
func Run(ctx context.Context, cfg Config, renderer Renderer, force bool, extraArgs ...string) error {
	watermarkPath := filepath.Join(cfg.CacheDirectory, watermarkFile)
	if err := fsutil.CreateParentDirectory(watermarkPath); err != nil {
		return err
	}
	lastGeneration, err := readWatermark(watermarkPath)
	if err != nil {
		return err
	}

	sourcePaths, err := discoverSources(cfg)
	if err != nil {
		return err
	}

	var units []workpool.Unit
	for _, sourcePath := range sourcePaths {
		lastModification, err := lastModified(sourcePath)
		if err != nil {
			return err
		}
		if !force && lastModification <= lastGeneration {
			log.Debug("skip unchanged diagram", "source", sourcePath)
			continue
		}
		log.Info("generate", "source", sourcePath)
		units = append(units, &renderUnit{
			ctx:       ctx,
			renderer:  renderer,
			source:    sourcePath,
			extraArgs: extraArgs,
		})
	}

	pool := workpool.NewPool(workpool.ConfigFromEnv())
	if err := pool.Execute(units); err != nil {
		return err
	}

	return saveWatermark(watermarkPath)
}

// discoverSources resolves the comma-separated glob patterns relative to the
// source directory. A file matched by several patterns is returned once.
func discoverSources(cfg Config) ([]string, error) {
	patterns := cfg.SourcePatterns
	if patterns == "" {
		patterns = DefaultSourcePatterns
	}
	seen := map[string]bool{}
	var sources []string
	for _, pattern := range strings.Split(patterns, ",") {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		pattern = filepath.Join(cfg.SourceDirectory, pattern)
		matches, err := zglob.Glob(pattern)
		if err != nil {
			// a missing source directory discovers nothing
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("unable to discover the sources with %s: %w", pattern, err)
		}
		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				sources = append(sources, match)
			}
		}
	}
	sort.Strings(sources)
	return sources, nil
}

func lastModified(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("unable to get metadata for %s: %w", path, err)
	}
	return info.ModTime().UnixNano(), nil
}

func readWatermark(path string) (int64, error) {
	content, err := fsutil.ReadFile(path)
	if err != nil {
		return 0, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return 0, nil
	}
	value, err := strconv.ParseInt(content, 10, 64)
	if err != nil {
		// an unreadable watermark regenerates everything
		return 0, nil
	}
	return value, nil
}

func saveWatermark(path string) error {
	value := strconv.FormatInt(time.Now().UnixNano(), 10)
	log.Debug("save the generation watermark", "value", value)
	if err := os.WriteFile(path, []byte(value), 0o644); err != nil {
		return fmt.Errorf("unable to write %s: %w", path, err)
	}
	return nil
}
