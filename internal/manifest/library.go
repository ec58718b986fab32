// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Library is the root of the manifest tree.
type Library struct {
	// Name of the library.
	Name string `yaml:"name" json:"name" jsonschema:"required"`
	// RemoteURL is the URL used to fetch the library remotely.
	RemoteURL string `yaml:"remote_url" json:"remote_url" jsonschema:"required"`
	// Packages provided by the library.
	Packages []Package `yaml:"packages" json:"packages,omitempty"`
	// Templates overrides the library-level template names.
	Templates LibraryTemplates `yaml:"templates" json:"templates,omitempty"`
	// Customization of the rendered resources.
	Customization Customization `yaml:"customization" json:"customization,omitempty"`
	// TemplateDiscoveryPattern optionally points at user-provided templates.
	TemplateDiscoveryPattern string `yaml:"template_discovery_pattern" json:"template_discovery_pattern,omitempty"`
}

// LibraryTemplates names the templates of the library-level artifacts.
type LibraryTemplates struct {
	// Bootstrap generates `bootstrap.puml`.
	Bootstrap string `yaml:"bootstrap" json:"bootstrap,omitempty"`
	// Documentation generates `README.md`.
	Documentation string `yaml:"documentation" json:"documentation,omitempty"`
	// Summary generates `SUMMARY.md`.
	Summary string `yaml:"summary" json:"summary,omitempty"`
}

// Customization tunes the visual output of the generated resources.
type Customization struct {
	// IconFormat is the image format of the generated icons.
	IconFormat string `yaml:"icon_format" json:"icon_format,omitempty"`
	// IconHeight is the height of the generated icons, in pixels.
	IconHeight int `yaml:"icon_height" json:"icon_height,omitempty"`
	// TextWidthMax is the max width for text.
	TextWidthMax int `yaml:"text_width_max" json:"text_width_max,omitempty"`
	// MsgWidthMax is the max width for messages.
	MsgWidthMax int `yaml:"msg_width_max" json:"msg_width_max,omitempty"`
	// FontSizeXS is the extra-small font size.
	FontSizeXS int `yaml:"font_size_xs" json:"font_size_xs,omitempty"`
	// FontSizeSM is the small font size.
	FontSizeSM int `yaml:"font_size_sm" json:"font_size_sm,omitempty"`
	// FontSizeMD is the medium font size.
	FontSizeMD int `yaml:"font_size_md" json:"font_size_md,omitempty"`
	// FontSizeLG is the large font size.
	FontSizeLG int `yaml:"font_size_lg" json:"font_size_lg,omitempty"`
	// FontColor is the default font color.
	FontColor string `yaml:"font_color" json:"font_color,omitempty"`
	// FontColorLight is a lighter font color.
	FontColorLight string `yaml:"font_color_light" json:"font_color_light,omitempty"`
}

// SpriteSize pairs a sprite size name with its pixel height.
type SpriteSize struct {
	Name   string
	Height int
}

// ListSpriteSizes returns every sprite size with its configured height.
func (c Customization) ListSpriteSizes() []SpriteSize {
	return []SpriteSize{
		{Name: SpriteXS, Height: c.FontSizeXS},
		{Name: SpriteSM, Height: c.FontSizeSM},
		{Name: SpriteMD, Height: c.FontSizeMD},
		{Name: SpriteLG, Height: c.FontSizeLG},
	}
}

// Load reads and parses a library manifest file.
func Load(path string) (*Library, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", path, err)
	}
	return Parse(content)
}

// Parse parses a library manifest and applies the defaults.
func Parse(content []byte) (*Library, error) {
	var library Library
	if err := yaml.Unmarshal(content, &library); err != nil {
		return nil, fmt.Errorf("unable to parse the manifest: %w", err)
	}
	library.applyDefaults()
	return &library, nil
}

func (l *Library) applyDefaults() {
	setDefault(&l.Templates.Bootstrap, DefaultTemplateLibraryBootstrap)
	setDefault(&l.Templates.Documentation, DefaultTemplateLibraryDocumentation)
	setDefault(&l.Templates.Summary, DefaultTemplateLibrarySummary)
	l.Customization.applyDefaults()
	for i := range l.Packages {
		l.Packages[i].applyDefaults()
	}
}

func (c *Customization) applyDefaults() {
	setDefault(&c.IconFormat, DefaultIconFormat)
	setDefaultInt(&c.IconHeight, DefaultIconHeight)
	setDefaultInt(&c.TextWidthMax, DefaultTextWidthMax)
	setDefaultInt(&c.MsgWidthMax, DefaultMsgWidthMax)
	setDefaultInt(&c.FontSizeXS, DefaultFontSizeXS)
	setDefaultInt(&c.FontSizeSM, DefaultFontSizeSM)
	setDefaultInt(&c.FontSizeMD, DefaultFontSizeMD)
	setDefaultInt(&c.FontSizeLG, DefaultFontSizeLG)
	setDefault(&c.FontColor, DefaultFontColor)
	setDefault(&c.FontColorLight, DefaultFontColorLight)
}

func setDefault(target *string, value string) {
	if *target == "" {
		*target = value
	}
}

func setDefaultInt(target *int, value int) {
	if *target == 0 {
		*target = value
	}
}
