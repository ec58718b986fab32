// SPDX-License-Identifier: MPL-2.0

package manifest

// Default customization values applied when the manifest leaves them out.
const (
	DefaultIconFormat   = "png"
	DefaultIconHeight   = 50
	DefaultTextWidthMax = 200
	DefaultMsgWidthMax  = 150

	DefaultFontSizeXS = 10
	DefaultFontSizeSM = 12
	DefaultFontSizeMD = 16
	DefaultFontSizeLG = 20

	DefaultFontColor      = "#212121"
	DefaultFontColorLight = "#757575"
)

// Default element stereotypes per shape kind.
const (
	DefaultIconStereotype      = "IconElement"
	DefaultIconCardStereotype  = "IconCardElement"
	DefaultIconGroupStereotype = "IconGroupElement"
	DefaultGroupStereotype     = "GroupElement"
)

// Default template names per artifact kind.
const (
	DefaultTemplateLibraryBootstrap     = "library_bootstrap.tmpl"
	DefaultTemplateLibraryDocumentation = "library_documentation.tmpl"
	DefaultTemplateLibrarySummary       = "library_summary.tmpl"
	DefaultTemplatePackageBootstrap     = "package_bootstrap.tmpl"
	DefaultTemplatePackageEmbedded      = "package_embedded.tmpl"
	DefaultTemplatePackageDocumentation = "package_documentation.tmpl"
	DefaultTemplatePackageExample       = "package_example.tmpl"
	DefaultTemplateModuleDocumentation  = "module_documentation.tmpl"
	DefaultTemplateItemDocumentation    = "item_documentation.tmpl"
	DefaultTemplateItemSource           = "item_source.tmpl"
	DefaultTemplateItemSnippet          = "item_snippet.tmpl"
)

// Sprite size names, ordered from the smallest to the largest.
const (
	SpriteXS = "xs"
	SpriteSM = "sm"
	SpriteMD = "md"
	SpriteLG = "lg"
)

// SpriteSizes lists every sprite size name.
var SpriteSizes = []string{SpriteXS, SpriteSM, SpriteMD, SpriteLG}
