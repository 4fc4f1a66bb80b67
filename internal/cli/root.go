// Package cli wires configuration, storage and the HTTP server behind the
// usersvc command tree.
package cli

import (
	"github.com/spf13/cobra"
)

func NewRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "usersvc",
		Short:         "User account service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewUserCmd())
	return cmd
}
