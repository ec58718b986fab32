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

// itemIconTask produces the distributed icon of an item from its source
// image.
type itemIconTask struct {
	generate.NoopTask

	itemUrn              string
	fullSourceImage      string
	fullDestinationImage string
	iconHeight           int
	scaler               *imaging.Scaler
}

func newItemIconTask(cfg generate.Config, library *manifest.Library, item *manifest.Item, icon *manifest.Icon, scaler *imaging.Scaler) *itemIconTask {
	return &itemIconTask{
		itemUrn:              item.Urn.Value,
		fullSourceImage:      icon.Source,
		fullDestinationImage: filepath.Join(cfg.OutputDirectory, icon.IconPath(item.Urn, library.Customization.IconFormat)),
		iconHeight:           library.Customization.IconHeight,
		scaler:               scaler,
	}
}

func (t *itemIconTask) Cleanup(scopes []generate.CleanupScope) error {
	log.Debug("itemIconTask - cleanup", "item", t.itemUrn)
	if generate.ScopeItemIcon.IncludedIn(scopes) {
		return fsutil.DeleteFile(t.fullDestinationImage)
	}
	return nil
}

func (t *itemIconTask) CreateResources(ctx context.Context) error {
	log.Debug("itemIconTask - create resources", "item", t.itemUrn)
	if fsutil.FileExists(t.fullDestinationImage) {
		return nil
	}
	return t.scaler.Scale(ctx, t.fullSourceImage, t.fullDestinationImage, t.iconHeight)
}
