// SPDX-License-Identifier: MPL-2.0

package tasks

import (
	"context"
	"path/filepath"

	"github.com/charmbracelet/log"

	"pumlgen/internal/generate"
	"pumlgen/internal/imaging"
	"pumlgen/internal/manifest"
	"pumlgen/pkg/fsutil"
)

// spriteIconTask produces the intermediate image a sprite value is encoded
// from, cached per sprite size.
type spriteIconTask struct {
	generate.NoopTask

	itemUrn             string
	fullSourceIcon      string
	fullDestinationIcon string
	iconHeight          int
	scaler              *imaging.Scaler
}

func newSpriteIconTask(cfg generate.Config, item *manifest.Item, icon *manifest.Icon, fullSourceIcon string, size manifest.SpriteSize, scaler *imaging.Scaler) *spriteIconTask {
	return &spriteIconTask{
		itemUrn:             item.Urn.Value,
		fullSourceIcon:      fullSourceIcon,
		fullDestinationIcon: filepath.Join(cfg.CacheDirectory, icon.SpriteImagePath(item.Urn, size.Name)),
		iconHeight:          size.Height,
		scaler:              scaler,
	}
}

func (t *spriteIconTask) Cleanup(scopes []generate.CleanupScope) error {
	log.Debug("spriteIconTask - cleanup", "item", t.itemUrn, "destination", t.fullDestinationIcon)
	if generate.ScopeSpriteIcon.IncludedIn(scopes) {
		return fsutil.DeleteFile(t.fullDestinationIcon)
	}
	return nil
}

func (t *spriteIconTask) CreateResources(ctx context.Context) error {
	log.Debug("spriteIconTask - create resources", "item", t.itemUrn, "destination", t.fullDestinationIcon)
	if fsutil.FileExists(t.fullDestinationIcon) {
		return nil
	}
	return t.scaler.Scale(ctx, t.fullSourceIcon, t.fullDestinationIcon, t.iconHeight)
}
