// SPDX-License-Identifier: MPL-2.0

package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"pumlgen/internal/generate"
	"pumlgen/internal/manifest"
	"pumlgen/internal/plantuml"
	"pumlgen/pkg/fsutil"
)

// spriteValueTask encodes a cached sprite image into its PlantUML sprite
// definition.
type spriteValueTask struct {
	generate.NoopTask

	itemUrn             string
	fullSourceIcon      string
	fullDestinationText string
	uml                 *plantuml.PlantUML
}

func newSpriteValueTask(cfg generate.Config, item *manifest.Item, icon *manifest.Icon, fullSourceIcon, sizeName string, uml *plantuml.PlantUML) *spriteValueTask {
	return &spriteValueTask{
		itemUrn:             item.Urn.Value,
		fullSourceIcon:      fullSourceIcon,
		fullDestinationText: filepath.Join(cfg.CacheDirectory, icon.SpriteValuePath(item.Urn, sizeName)),
		uml:                 uml,
	}
}

func (t *spriteValueTask) Cleanup(scopes []generate.CleanupScope) error {
	log.Debug("spriteValueTask - cleanup", "item", t.itemUrn, "destination", t.fullDestinationText)
	if generate.ScopeSpriteValue.IncludedIn(scopes) {
		return fsutil.DeleteFile(t.fullDestinationText)
	}
	return nil
}

func (t *spriteValueTask) CreateResources(ctx context.Context) error {
	log.Debug("spriteValueTask - create resources", "item", t.itemUrn, "destination", t.fullDestinationText)
	if fsutil.FileExists(t.fullDestinationText) {
		return nil
	}
	if err := fsutil.CreateParentDirectory(t.fullDestinationText); err != nil {
		return err
	}
	sprite, err := t.uml.EncodeSprite(ctx, t.fullSourceIcon)
	if err != nil {
		return err
	}
	if err := os.WriteFile(t.fullDestinationText, sprite, 0o644); err != nil {
		return fmt.Errorf("unable to write %s: %w", t.fullDestinationText, err)
	}
	return nil
}
