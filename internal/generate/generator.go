// SPDX-License-Identifier: MPL-2.0

package generate

import (
	"context"

	"github.com/charmbracelet/log"

	"pumlgen/internal/plantuml"
	"pumlgen/internal/template"
)

// Generator runs a list of tasks through the five generation phases. The
// phases are sequential and fail fast: the first error interrupts the run.
type Generator struct {
	tasks []Task
}

// NewGenerator returns a Generator over the given tasks.
func NewGenerator(tasks []Task) *Generator {
	return &Generator{tasks: tasks}
}

// Len returns the number of tasks.
func (g *Generator) Len() int {
	return len(g.tasks)
}

// Generate runs every phase over every task.
func (g *Generator) Generate(ctx context.Context, scopes []CleanupScope, engine *template.Engine, uml *plantuml.PlantUML) error {
	if err := g.cleanup(scopes); err != nil {
		return err
	}
	if err := g.createResources(ctx); err != nil {
		return err
	}
	if err := g.renderAtomicTemplates(engine); err != nil {
		return err
	}
	if err := g.renderComposedTemplates(engine); err != nil {
		return err
	}
	return g.renderSources(ctx, uml)
}

func (g *Generator) cleanup(scopes []CleanupScope) error {
	log.Info("start the Cleanup phase")
	for _, task := range g.tasks {
		if err := task.Cleanup(scopes); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) createResources(ctx context.Context) error {
	log.Info("start the Create Resources phase")
	counter := StartCounter(len(g.tasks))
	for _, task := range g.tasks {
		if err := task.CreateResources(ctx); err != nil {
			return err
		}
		counter.Increase()
	}
	counter.Stop()
	return nil
}

func (g *Generator) renderAtomicTemplates(engine *template.Engine) error {
	log.Info("start the Render Atomic Templates phase")
	counter := StartCounter(len(g.tasks))
	for _, task := range g.tasks {
		if err := task.RenderAtomicTemplates(engine); err != nil {
			return err
		}
		counter.Increase()
	}
	counter.Stop()
	return nil
}

func (g *Generator) renderComposedTemplates(engine *template.Engine) error {
	log.Info("start the Render Composed Templates phase")
	counter := StartCounter(len(g.tasks))
	for _, task := range g.tasks {
		if err := task.RenderComposedTemplates(engine); err != nil {
			return err
		}
		counter.Increase()
	}
	counter.Stop()
	return nil
}

func (g *Generator) renderSources(ctx context.Context, uml *plantuml.PlantUML) error {
	log.Info("start the Render Sources phase")
	counter := StartCounter(len(g.tasks))
	for _, task := range g.tasks {
		if err := task.RenderSources(ctx, uml); err != nil {
			return err
		}
		counter.Increase()
	}
	counter.Stop()
	return nil
}
