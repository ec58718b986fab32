// SPDX-License-Identifier: MPL-2.0

package cli

import "github.com/spf13/cobra"

// newLibraryCommand creates the `pumlgen library` command tree.
func newLibraryCommand() *cobra.Command {
	libraryCmd := &cobra.Command{
		Use:   "library",
		Short: "Manage PlantUML libraries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	libraryCmd.AddCommand(newLibraryGenerateCommand())
	libraryCmd.AddCommand(newLibrarySchemaCommand())
	return libraryCmd
}
