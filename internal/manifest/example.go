// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"fmt"

	"pumlgen/internal/urn"
)

// Example is a package-level diagram demonstrating the package elements.
type Example struct {
	// Name of the example.
	Name string `yaml:"name" json:"name" jsonschema:"required"`
	// Template rendering the example source.
	Template string `yaml:"template" json:"template" jsonschema:"required"`
}

// SourcePath returns the path of the example source, relative to the
// distribution directory.
func (e Example) SourcePath(packageUrn urn.Urn) string {
	return fmt.Sprintf("%s/%s.puml", packageUrn.Value, snakeCase(e.Name))
}

// DestinationPath returns the path of the rendered example, relative to the
// distribution directory.
func (e Example) DestinationPath(packageUrn urn.Urn, iconFormat string) string {
	return fmt.Sprintf("%s/%s.%s", packageUrn.Value, snakeCase(e.Name), iconFormat)
}
