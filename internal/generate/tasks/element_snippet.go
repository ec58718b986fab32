// SPDX-License-Identifier: MPL-2.0

package tasks

import (
	"context"
	"path/filepath"

	"github.com/charmbracelet/log"

	"pumlgen/internal/generate"
	"pumlgen/internal/manifest"
	"pumlgen/internal/plantuml"
	"pumlgen/internal/template"
	"pumlgen/pkg/fsutil"
)

type snippetMode string

const (
	snippetLocal  snippetMode = "Local"
	snippetRemote snippetMode = "Remote"
)

// elementSnippetTask generates the snippet source of an element and, for the
// local mode, renders it into the illustration image.
type elementSnippetTask struct {
	generate.NoopTask

	RemoteURL     string
	PackageUrn    string
	ItemUrn       string
	PathToBase    string
	ElementKind   string
	SnippetMode   string
	ProcedureName string
	VariableName  string
	PrimaryLabel  string
	Properties    map[string]any

	template                 string
	fullDestinationSource    string
	fullDestinationImagePath string
}

func newElementSnippetTask(cfg generate.Config, library *manifest.Library, pkg *manifest.Package, item *manifest.Item, element *manifest.Element, mode snippetMode) *elementSnippetTask {
	shape := &element.Shape
	procedureName := shape.ElementName(item.Urn)

	sourcePath := shape.LocalSnippetSourcePath(item.Urn)
	imagePath := shape.LocalSnippetImagePath(item.Urn, library.Customization.IconFormat)
	if mode == snippetRemote {
		sourcePath = shape.RemoteSnippetSourcePath(item.Urn)
		imagePath = shape.RemoteSnippetImagePath(item.Urn, library.Customization.IconFormat)
	}

	var properties map[string]any
	if shape.Kind == manifest.ShapeCustom {
		properties = shape.Properties
	}

	return &elementSnippetTask{
		RemoteURL:                library.RemoteURL,
		PackageUrn:               pkg.Urn.Value,
		ItemUrn:                  item.Urn.Value,
		PathToBase:               item.Urn.Parent().PathToBase,
		ElementKind:              shape.Kind,
		SnippetMode:              string(mode),
		ProcedureName:            procedureName,
		VariableName:             upperCamelCase(procedureName),
		PrimaryLabel:             titleCase(procedureName),
		Properties:               properties,
		template:                 item.Templates.Snippet,
		fullDestinationSource:    filepath.Join(cfg.OutputDirectory, sourcePath),
		fullDestinationImagePath: filepath.Join(cfg.OutputDirectory, imagePath),
	}
}

func (t *elementSnippetTask) Cleanup(scopes []generate.CleanupScope) error {
	log.Debug("elementSnippetTask - cleanup", "item", t.ItemUrn, "shape", t.ElementKind, "mode", t.SnippetMode)
	if generate.ScopeSnippetSource.IncludedIn(scopes) {
		if err := fsutil.DeleteFile(t.fullDestinationSource); err != nil {
			return err
		}
	}
	if generate.ScopeSnippetImage.IncludedIn(scopes) {
		return fsutil.DeleteFile(t.fullDestinationImagePath)
	}
	return nil
}

func (t *elementSnippetTask) RenderAtomicTemplates(engine *template.Engine) error {
	log.Debug("elementSnippetTask - render templates", "item", t.ItemUrn, "shape", t.ElementKind, "mode", t.SnippetMode)
	return renderIfMissing(engine, t.template, t, t.fullDestinationSource)
}

func (t *elementSnippetTask) RenderSources(ctx context.Context, uml *plantuml.PlantUML) error {
	// remote snippets reference the published library, they cannot render
	// against the working tree
	if t.SnippetMode == string(snippetRemote) {
		return nil
	}
	log.Debug("elementSnippetTask - render sources", "item", t.ItemUrn, "shape", t.ElementKind)
	if fsutil.FileExists(t.fullDestinationImagePath) {
		return nil
	}
	return uml.Render(ctx, t.fullDestinationSource)
}
