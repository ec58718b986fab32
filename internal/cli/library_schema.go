// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pumlgen/internal/manifest"
)

// newLibrarySchemaCommand creates the `pumlgen library schema` command.
func newLibrarySchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Generate the JSON Schema of the library manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := manifest.Schema()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(schema))
			return nil
		},
	}
}
