// SPDX-License-Identifier: MPL-2.0

// Package imaging produces the icon images: raster sources are resized with
// an in-process scaler, SVG sources are delegated to inkscape.
package imaging

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	xdraw "golang.org/x/image/draw"

	"pumlgen/pkg/fsutil"

	_ "image/gif"
	_ "image/jpeg"
)

// DefaultInkscapeBinary is the command used to render SVG sources.
const DefaultInkscapeBinary = "inkscape"

// Scaler converts a source image into a destination image of a given height.
type Scaler struct {
	inkscapeBinary string
}

// NewScaler returns a Scaler. An empty binary falls back to the default.
func NewScaler(inkscapeBinary string) *Scaler {
	if inkscapeBinary == "" {
		inkscapeBinary = DefaultInkscapeBinary
	}
	return &Scaler{inkscapeBinary: inkscapeBinary}
}

// Scale produces the destination image from the source, keeping the aspect
// ratio for the requested height. SVG sources go through inkscape, raster
// sources through the built-in scaler.
func (s *Scaler) Scale(ctx context.Context, sourcePath, destinationPath string, height int) error {
	if err := fsutil.CreateParentDirectory(destinationPath); err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(sourcePath), ".svg") {
		return s.scaleWithInkscape(ctx, sourcePath, destinationPath, height)
	}
	return scaleWithBuiltin(sourcePath, destinationPath, height)
}

func (s *Scaler) scaleWithInkscape(ctx context.Context, sourcePath, destinationPath string, height int) error {
	log.Debug("scale with inkscape", "source", sourcePath, "destination", destinationPath)
	cmd := exec.CommandContext(ctx, s.inkscapeBinary,
		sourcePath,
		fmt.Sprintf("--export-filename=%s", destinationPath),
		fmt.Sprintf("--export-height=%d", height),
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("unable to generate %s: %w", destinationPath, err)
	}
	return nil
}

func scaleWithBuiltin(sourcePath, destinationPath string, height int) error {
	log.Debug("scale with the built-in scaler", "source", sourcePath, "destination", destinationPath)
	sourceFile, err := os.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("unable to open %s: %w", sourcePath, err)
	}
	defer sourceFile.Close()
	source, _, err := image.Decode(sourceFile)
	if err != nil {
		return fmt.Errorf("unable to decode %s: %w", sourcePath, err)
	}

	bounds := source.Bounds()
	width := height * bounds.Dx() / bounds.Dy()
	destination := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(destination, destination.Bounds(), source, bounds, xdraw.Over, nil)

	destinationFile, err := os.Create(destinationPath)
	if err != nil {
		return fmt.Errorf("unable to create %s: %w", destinationPath, err)
	}
	defer destinationFile.Close()
	if err := png.Encode(destinationFile, destination); err != nil {
		return fmt.Errorf("unable to encode %s: %w", destinationPath, err)
	}
	return nil
}
