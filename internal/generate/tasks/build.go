// SPDX-License-Identifier: MPL-2.0

package tasks

import (
	"github.com/charmbracelet/log"

	"pumlgen/internal/generate"
	"pumlgen/internal/imaging"
	"pumlgen/internal/manifest"
	"pumlgen/internal/plantuml"
	"pumlgen/internal/urn"
)

// Build walks the manifest tree and returns the tasks to execute. The URN
// filter prunes packages, modules and items; an empty filter keeps all of
// them. Library-level tasks are always produced.
func Build(cfg generate.Config, library *manifest.Library, urns []urn.Urn, scaler *imaging.Scaler, uml *plantuml.PlantUML) []generate.Task {
	tasks := parseLibrary(cfg, library)
	for i := range library.Packages {
		pkg := &library.Packages[i]
		if !pkg.Urn.IncludedIn(urns) {
			continue
		}
		tasks = append(tasks, parsePackage(cfg, library, pkg)...)
		for j := range pkg.Modules {
			module := &pkg.Modules[j]
			if !module.Urn.IncludedIn(urns) {
				continue
			}
			tasks = append(tasks, parseModule(cfg, library, module)...)
			for k := range module.Items {
				item := &module.Items[k]
				if !item.Urn.IncludedIn(urns) {
					continue
				}
				tasks = append(tasks, parseItem(cfg, library, pkg, item, scaler, uml)...)
			}
		}
	}
	return tasks
}

func parseLibrary(cfg generate.Config, library *manifest.Library) []generate.Task {
	log.Debug("parse library", "name", library.Name)
	return []generate.Task{
		newLibraryBootstrapTask(cfg, library),
		newLibraryDocumentationTask(cfg, library),
		newLibrarySummaryTask(cfg, library),
	}
}

func parsePackage(cfg generate.Config, library *manifest.Library, pkg *manifest.Package) []generate.Task {
	log.Debug("parse package", "urn", pkg.Urn.Value)
	var tasks []generate.Task
	for _, example := range pkg.Examples {
		tasks = append(tasks, newPackageExampleTask(cfg, library, pkg, example))
	}
	tasks = append(tasks, newPackageBootstrapTask(cfg, pkg))
	if !pkg.Rendering.SkipEmbedded {
		tasks = append(tasks,
			newPackageEmbeddedTask(cfg, pkg, embeddedSingle),
			newPackageEmbeddedTask(cfg, pkg, embeddedFull),
		)
	}
	tasks = append(tasks, newPackageDocumentationTask(cfg, library, pkg))
	return tasks
}

func parseModule(cfg generate.Config, library *manifest.Library, module *manifest.Module) []generate.Task {
	log.Debug("parse module", "urn", module.Urn.Value)
	return []generate.Task{newModuleDocumentationTask(cfg, library, module)}
}

func parseItem(cfg generate.Config, library *manifest.Library, pkg *manifest.Package, item *manifest.Item, scaler *imaging.Scaler, uml *plantuml.PlantUML) []generate.Task {
	log.Debug("parse item", "urn", item.Urn.Value)
	var tasks []generate.Task

	if icon := item.Icon; icon != nil && icon.Kind == manifest.IconKindSource {
		iconTask := newItemIconTask(cfg, library, item, icon, scaler)
		tasks = append(tasks, iconTask)
		for _, size := range library.Customization.ListSpriteSizes() {
			spriteIconTask := newSpriteIconTask(cfg, item, icon, iconTask.fullDestinationImage, size, scaler)
			spriteValueTask := newSpriteValueTask(cfg, item, icon, spriteIconTask.fullDestinationIcon, size.Name, uml)
			tasks = append(tasks, spriteIconTask, spriteValueTask)
		}
	}

	for i := range item.Elements {
		element := &item.Elements[i]
		tasks = append(tasks,
			newElementSnippetTask(cfg, library, pkg, item, element, snippetLocal),
			newElementSnippetTask(cfg, library, pkg, item, element, snippetRemote),
		)
	}

	tasks = append(tasks,
		newItemDocumentationTask(cfg, library, item),
		newItemSourceTask(cfg, item),
	)
	return tasks
}
