// SPDX-License-Identifier: MPL-2.0

package tasks

import (
	"path/filepath"

	"github.com/charmbracelet/log"

	"pumlgen/internal/generate"
	"pumlgen/internal/manifest"
	"pumlgen/internal/template"
	"pumlgen/pkg/fsutil"
)

type itemDocumentationObject struct {
	Name             string
	IllustrationPath string
}

type itemDocumentationElement struct {
	Name                  string
	FullSnippetLocalPath  string
	FullSnippetRemotePath string
}

// itemDocumentationTask generates `<output>/<item>.md`.
type itemDocumentationTask struct {
	generate.NoopTask

	ItemUrn    string
	ItemName   string
	PathToBase string
	HasIcon    bool
	Objects    []itemDocumentationObject
	Elements   []itemDocumentationElement

	outputDirectory string
	template        string
}

func newItemDocumentationTask(cfg generate.Config, library *manifest.Library, item *manifest.Item) *itemDocumentationTask {
	var objects []itemDocumentationObject
	var elements []itemDocumentationElement
	if item.Icon != nil {
		objects = append(objects, itemDocumentationObject{
			Name:             "Illustration",
			IllustrationPath: item.Icon.IconPath(item.Urn, library.Customization.IconFormat),
		})
	}
	for i := range item.Elements {
		shape := &item.Elements[i].Shape
		objects = append(objects, itemDocumentationObject{
			Name:             shape.ElementName(item.Urn),
			IllustrationPath: shape.LocalSnippetImagePath(item.Urn, library.Customization.IconFormat),
		})
		elements = append(elements, itemDocumentationElement{
			Name:                  shape.ElementName(item.Urn),
			FullSnippetLocalPath:  filepath.Join(cfg.OutputDirectory, shape.LocalSnippetSourcePath(item.Urn)),
			FullSnippetRemotePath: filepath.Join(cfg.OutputDirectory, shape.RemoteSnippetSourcePath(item.Urn)),
		})
	}
	return &itemDocumentationTask{
		ItemUrn:         item.Urn.Value,
		ItemName:        item.Urn.Name,
		PathToBase:      item.Urn.Parent().PathToBase,
		HasIcon:         item.Icon != nil,
		Objects:         objects,
		Elements:        elements,
		outputDirectory: cfg.OutputDirectory,
		template:        item.Templates.Documentation,
	}
}

func (t *itemDocumentationTask) destinationPath() string {
	return filepath.Join(t.outputDirectory, t.ItemUrn+".md")
}

func (t *itemDocumentationTask) Cleanup([]generate.CleanupScope) error {
	log.Debug("itemDocumentationTask - cleanup", "item", t.ItemUrn)
	return fsutil.DeleteFile(t.destinationPath())
}

func (t *itemDocumentationTask) RenderAtomicTemplates(engine *template.Engine) error {
	log.Debug("itemDocumentationTask - render templates", "item", t.ItemUrn)
	return renderIfMissing(engine, t.template, t, t.destinationPath())
}
