// SPDX-License-Identifier: MPL-2.0

// Package tasks turns a manifest tree into the flat list of generation tasks
// consumed by the generator: one task per artifact family, from the library
// bootstrap down to the per-element snippets.
package tasks
