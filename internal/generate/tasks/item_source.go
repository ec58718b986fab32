// SPDX-License-Identifier: MPL-2.0

package tasks

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"pumlgen/internal/generate"
	"pumlgen/internal/manifest"
	"pumlgen/internal/template"
	"pumlgen/pkg/fsutil"
)

type itemSourceElement struct {
	Kind           string
	ProcedureName  string
	IconUrn        string
	SpriteName     string
	StereotypeName string
	FamilyName     string
	DefaultLabel   string
	Properties     map[string]any
}

type itemSourceData struct {
	ItemUrn  string
	Sprites  []string
	Elements []itemSourceElement
}

// itemSourceTask generates `<output>/<item>.puml`: the sprites and the
// element procedures of an item.
type itemSourceTask struct {
	generate.NoopTask

	itemUrn           string
	cachedSpritePaths []string
	elements          []itemSourceElement
	outputDirectory   string
	template          string
}

func newItemSourceTask(cfg generate.Config, item *manifest.Item) *itemSourceTask {
	var cachedSpritePaths []string
	spriteName := ""
	if item.Icon != nil {
		for _, size := range manifest.SpriteSizes {
			cachedSpritePaths = append(cachedSpritePaths, filepath.Join(cfg.CacheDirectory, item.Icon.SpriteValuePath(item.Urn, size)))
		}
		spriteName = item.Icon.SpriteName(item.Urn, manifest.SpriteLG)
	}
	elements := make([]itemSourceElement, 0, len(item.Elements))
	for i := range item.Elements {
		shape := &item.Elements[i].Shape
		elements = append(elements, itemSourceElement{
			Kind:           shape.Kind,
			ProcedureName:  shape.ElementName(item.Urn),
			IconUrn:        item.Urn.Value,
			SpriteName:     spriteName,
			StereotypeName: shape.StereotypeName,
			FamilyName:     item.Family,
			DefaultLabel:   item.Urn.Label,
			Properties:     shape.Properties,
		})
	}
	return &itemSourceTask{
		itemUrn:           item.Urn.Value,
		cachedSpritePaths: cachedSpritePaths,
		elements:          elements,
		outputDirectory:   cfg.OutputDirectory,
		template:          item.Templates.Source,
	}
}

func (t *itemSourceTask) destinationPath() string {
	return filepath.Join(t.outputDirectory, t.itemUrn+".puml")
}

func (t *itemSourceTask) Cleanup(scopes []generate.CleanupScope) error {
	log.Debug("itemSourceTask - cleanup", "item", t.itemUrn)
	if generate.ScopeItemSource.IncludedIn(scopes) {
		return fsutil.DeleteFile(t.destinationPath())
	}
	return nil
}

func (t *itemSourceTask) RenderAtomicTemplates(engine *template.Engine) error {
	log.Debug("itemSourceTask - render templates", "item", t.itemUrn)

	destination := t.destinationPath()
	if fsutil.FileExists(destination) {
		return nil
	}

	// sprite values are produced by the resource phase of the same run
	sprites := make([]string, 0, len(t.cachedSpritePaths))
	for _, path := range t.cachedSpritePaths {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("unable to read the cached sprite file %s: %w", path, err)
		}
		sprites = append(sprites, strings.TrimSpace(string(content)))
	}

	data := itemSourceData{
		ItemUrn:  t.itemUrn,
		Sprites:  sprites,
		Elements: t.elements,
	}
	return engine.RenderToFile(t.template, data, destination)
}
