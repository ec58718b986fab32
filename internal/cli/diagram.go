// SPDX-License-Identifier: MPL-2.0

package cli

import "github.com/spf13/cobra"

// newDiagramCommand creates the `pumlgen diagram` command tree.
func newDiagramCommand() *cobra.Command {
	diagramCmd := &cobra.Command{
		Use:   "diagram",
		Short: "Manage standalone diagrams",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	diagramCmd.AddCommand(newDiagramGenerateCommand())
	return diagramCmd
}
