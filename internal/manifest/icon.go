// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"pumlgen/internal/urn"
)

// Icon kinds.
const (
	IconKindSource    = "Source"
	IconKindReference = "Reference"
)

// Icon is either a source image provided by the library repository or a
// reference to the icon of another item.
type Icon struct {
	// Kind is either Source or Reference.
	Kind string `yaml:"type" json:"type" jsonschema:"enum=Source,enum=Reference"`
	// Source is the path of the source image, relative to the source
	// directory. Set when Kind is Source.
	Source string `yaml:"source" json:"source,omitempty"`
	// Urn of the item providing the icon. Set when Kind is Reference.
	Urn urn.Urn `yaml:"urn" json:"urn,omitempty"`
}

// UnmarshalYAML validates the tagged union.
func (i *Icon) UnmarshalYAML(node *yaml.Node) error {
	type raw Icon
	var value raw
	if err := node.Decode(&value); err != nil {
		return err
	}
	switch value.Kind {
	case IconKindSource:
		if value.Source == "" {
			return fmt.Errorf("a Source icon requires a source")
		}
	case IconKindReference:
		if value.Urn.Value == "" {
			return fmt.Errorf("a Reference icon requires an urn")
		}
	default:
		return fmt.Errorf("unknown icon type %q", value.Kind)
	}
	*i = Icon(value)
	return nil
}

// target resolves the URN the icon artifacts belong to: the item itself for
// a Source icon, the referenced item otherwise.
func (i *Icon) target(itemUrn urn.Urn) urn.Urn {
	if i.Kind == IconKindReference {
		return i.Urn
	}
	return itemUrn
}

// IconPath returns the path of the generated icon, relative to the
// distribution directory.
func (i *Icon) IconPath(itemUrn urn.Urn, iconFormat string) string {
	return fmt.Sprintf("%s.%s", i.target(itemUrn).Value, iconFormat)
}

// SpriteName returns the PlantUML sprite name for the given size.
func (i *Icon) SpriteName(itemUrn urn.Urn, size string) string {
	return fmt.Sprintf("%s%s", i.target(itemUrn).Name, capitalize(size))
}

// SpriteImagePath returns the path of the resized sprite image, relative to
// the cache directory.
func (i *Icon) SpriteImagePath(itemUrn urn.Urn, size string) string {
	return fmt.Sprintf("%s%s.png", i.target(itemUrn).Value, capitalize(size))
}

// SpriteValuePath returns the path of the encoded sprite value, relative to
// the cache directory.
func (i *Icon) SpriteValuePath(itemUrn urn.Urn, size string) string {
	return fmt.Sprintf("%s%s.puml", i.target(itemUrn).Value, capitalize(size))
}
