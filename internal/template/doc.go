// SPDX-License-Identifier: MPL-2.0

// Package template renders the generated artifacts from named templates.
// A built-in set covers every artifact kind; a library manifest can override
// any of them through its template discovery pattern.
package template
