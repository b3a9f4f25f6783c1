// Version command for the contacts CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/pkg/contacts"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the contacts version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "contacts", contacts.Version)
	},
}
