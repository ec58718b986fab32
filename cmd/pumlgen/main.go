// SPDX-License-Identifier: MPL-2.0

// pumlgen generates PlantUML libraries from YAML manifests and batch
// renders standalone .puml diagrams.
package main

import "pumlgen/internal/cli"

func main() {
	cli.Execute()
}
