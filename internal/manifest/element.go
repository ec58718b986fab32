// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"pumlgen/internal/urn"
)

// Shape kinds.
const (
	ShapeIcon      = "Icon"
	ShapeIconCard  = "IconCard"
	ShapeIconGroup = "IconGroup"
	ShapeGroup     = "Group"
	ShapeCustom    = "Custom"
)

// Element is a visual element provided by an item.
type Element struct {
	// Shape of the element and its related configuration.
	Shape Shape `yaml:"shape" json:"shape" jsonschema:"required"`
}

// Shape describes how an element renders: a stereotyped procedure for the
// well-known kinds, or free-form properties for the Custom kind.
type Shape struct {
	// Kind is one of Icon, IconCard, IconGroup, Group or Custom.
	Kind string `yaml:"type" json:"type" jsonschema:"enum=Icon,enum=IconCard,enum=IconGroup,enum=Group,enum=Custom"`
	// StereotypeName of the element. Unused by the Custom kind.
	StereotypeName string `yaml:"stereotype_name" json:"stereotype_name,omitempty"`
	// Properties forwarded to the snippet template.
	Properties map[string]any `yaml:"properties" json:"properties,omitempty"`
}

// UnmarshalYAML validates the kind tag.
func (s *Shape) UnmarshalYAML(node *yaml.Node) error {
	type raw Shape
	var value raw
	if err := node.Decode(&value); err != nil {
		return err
	}
	switch value.Kind {
	case ShapeIcon, ShapeIconCard, ShapeIconGroup, ShapeGroup, ShapeCustom:
	default:
		return fmt.Errorf("unknown shape type %q", value.Kind)
	}
	*s = Shape(value)
	return nil
}

func (s *Shape) applyDefaults() {
	if s.StereotypeName != "" {
		return
	}
	switch s.Kind {
	case ShapeIcon:
		s.StereotypeName = DefaultIconStereotype
	case ShapeIconCard:
		s.StereotypeName = DefaultIconCardStereotype
	case ShapeIconGroup:
		s.StereotypeName = DefaultIconGroupStereotype
	case ShapeGroup:
		s.StereotypeName = DefaultGroupStereotype
	}
}

// ElementName derives the PlantUML procedure name from the item URN.
func (s *Shape) ElementName(itemUrn urn.Urn) string {
	switch s.Kind {
	case ShapeIconCard:
		return itemUrn.Name + "Card"
	case ShapeIconGroup:
		return itemUrn.Name + "Group"
	default:
		return itemUrn.Name
	}
}

// LocalSnippetSourcePath returns the path of the local snippet source,
// relative to the distribution directory.
func (s *Shape) LocalSnippetSourcePath(itemUrn urn.Urn) string {
	return fmt.Sprintf("%s/%s.Local.puml", itemUrn.Parent().Value, s.ElementName(itemUrn))
}

// LocalSnippetImagePath returns the path of the rendered local snippet,
// relative to the distribution directory.
func (s *Shape) LocalSnippetImagePath(itemUrn urn.Urn, iconFormat string) string {
	return fmt.Sprintf("%s/%s.Local.%s", itemUrn.Parent().Value, s.ElementName(itemUrn), iconFormat)
}

// RemoteSnippetSourcePath returns the path of the remote snippet source,
// relative to the distribution directory.
func (s *Shape) RemoteSnippetSourcePath(itemUrn urn.Urn) string {
	return fmt.Sprintf("%s/%s.Remote.puml", itemUrn.Parent().Value, s.ElementName(itemUrn))
}

// RemoteSnippetImagePath returns the path of the rendered remote snippet,
// relative to the distribution directory.
func (s *Shape) RemoteSnippetImagePath(itemUrn urn.Urn, iconFormat string) string {
	return fmt.Sprintf("%s/%s.Remote.%s", itemUrn.Parent().Value, s.ElementName(itemUrn), iconFormat)
}
