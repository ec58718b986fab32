// SPDX-License-Identifier: MPL-2.0

// Package manifest defines the declarative description of a PlantUML library:
// a tree of packages, modules, items and visual elements, parsed from YAML.
// Every node is addressed by a urn.Urn and carries overridable template names
// so the generation can be customized per artifact.
package manifest
