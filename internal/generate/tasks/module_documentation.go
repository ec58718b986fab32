// SPDX-License-Identifier: MPL-2.0

package tasks

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"pumlgen/internal/generate"
	"pumlgen/internal/manifest"
	"pumlgen/internal/template"
	"pumlgen/pkg/fsutil"
)

type moduleDocumentationItem struct {
	ItemUrn      string
	Illustration string
}

type moduleDocumentationFamily struct {
	Name   string
	Anchor string
	Items  []moduleDocumentationItem
}

// moduleDocumentationTask generates `<output>/<module>/README.md`.
type moduleDocumentationTask struct {
	generate.NoopTask

	ModuleUrn          string
	ModuleName         string
	PathToBase         string
	NbrItems           int
	ItemsWithoutFamily []moduleDocumentationItem
	Families           []moduleDocumentationFamily

	outputDirectory string
	template        string
}

// resolveIllustration picks the image shown next to an item: its icon when
// it has one, the local snippet of its first element otherwise.
func resolveIllustration(library *manifest.Library, item *manifest.Item) string {
	if item.Icon != nil {
		return item.Icon.IconPath(item.Urn, library.Customization.IconFormat)
	}
	return item.Elements[0].Shape.LocalSnippetImagePath(item.Urn, library.Customization.IconFormat)
}

func newModuleDocumentationTask(cfg generate.Config, library *manifest.Library, module *manifest.Module) *moduleDocumentationTask {
	var withoutFamily []moduleDocumentationItem
	byFamily := map[string][]moduleDocumentationItem{}
	for i := range module.Items {
		item := &module.Items[i]
		entry := moduleDocumentationItem{
			ItemUrn:      item.Urn.Value,
			Illustration: resolveIllustration(library, item),
		}
		if item.Family == "" {
			withoutFamily = append(withoutFamily, entry)
		} else {
			byFamily[item.Family] = append(byFamily[item.Family], entry)
		}
	}
	sort.Slice(withoutFamily, func(i, j int) bool {
		return withoutFamily[i].ItemUrn < withoutFamily[j].ItemUrn
	})

	familyNames := make([]string, 0, len(byFamily))
	for name := range byFamily {
		familyNames = append(familyNames, name)
	}
	sort.Strings(familyNames)
	families := make([]moduleDocumentationFamily, 0, len(familyNames))
	for _, name := range familyNames {
		items := byFamily[name]
		sort.Slice(items, func(i, j int) bool { return items[i].ItemUrn < items[j].ItemUrn })
		families = append(families, moduleDocumentationFamily{
			Name:   name,
			Anchor: strings.ToLower(name),
			Items:  items,
		})
	}

	return &moduleDocumentationTask{
		ModuleUrn:          module.Urn.Value,
		ModuleName:         module.Urn.Name,
		PathToBase:         module.Urn.PathToBase,
		NbrItems:           len(module.Items),
		ItemsWithoutFamily: withoutFamily,
		Families:           families,
		outputDirectory:    cfg.OutputDirectory,
		template:           module.Templates.Documentation,
	}
}

func (t *moduleDocumentationTask) destinationPath() string {
	return filepath.Join(t.outputDirectory, t.ModuleUrn, "README.md")
}

func (t *moduleDocumentationTask) Cleanup([]generate.CleanupScope) error {
	log.Debug("moduleDocumentationTask - cleanup", "module", t.ModuleUrn)
	return fsutil.DeleteFile(t.destinationPath())
}

func (t *moduleDocumentationTask) RenderAtomicTemplates(engine *template.Engine) error {
	log.Debug("moduleDocumentationTask - render templates", "module", t.ModuleUrn)
	return renderIfMissing(engine, t.template, t, t.destinationPath())
}
