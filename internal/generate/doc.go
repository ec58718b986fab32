// SPDX-License-Identifier: MPL-2.0

// Package generate orchestrates the production of a library distribution.
// The manifest tree is turned into a flat list of tasks, then every task goes
// through five ordered phases: cleanup, resource creation, atomic template
// rendering, composed template rendering and source rendering.
package generate
