package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// VERSION is set at build time with -ldflags "-X main.VERSION=...".
var VERSION = "dev"

func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "wanderer", VERSION)
		},
	}
}
