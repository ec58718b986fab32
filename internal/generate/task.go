// SPDX-License-Identifier: MPL-2.0

package generate

import (
	"context"

	"pumlgen/internal/plantuml"
	"pumlgen/internal/template"
)

// Task produces a coherent set of artifacts. Every phase must be idempotent:
// a task finding its artifact already present skips the work.
type Task interface {
	// Cleanup deletes the artifacts covered by the requested scopes.
	Cleanup(scopes []CleanupScope) error
	// CreateResources produces the non-template artifacts, like icons and
	// cached sprite values.
	CreateResources(ctx context.Context) error
	// RenderAtomicTemplates renders the artifacts which depend on no other
	// generated file.
	RenderAtomicTemplates(engine *template.Engine) error
	// RenderComposedTemplates renders the artifacts assembled from files
	// produced by the atomic phase.
	RenderComposedTemplates(engine *template.Engine) error
	// RenderSources renders the generated PlantUML sources into images.
	RenderSources(ctx context.Context, uml *plantuml.PlantUML) error
}

// NoopTask implements every phase as a no-op. Tasks embed it and override
// the phases they participate in.
type NoopTask struct{}

func (NoopTask) Cleanup([]CleanupScope) error                     { return nil }
func (NoopTask) CreateResources(context.Context) error            { return nil }
func (NoopTask) RenderAtomicTemplates(*template.Engine) error     { return nil }
func (NoopTask) RenderComposedTemplates(*template.Engine) error   { return nil }
func (NoopTask) RenderSources(context.Context, *plantuml.PlantUML) error {
	return nil
}
