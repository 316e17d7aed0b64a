package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/passgenx"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of passgenx",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "passgenx version %s (algorithm %s)\n",
				strings.TrimSpace(passgenx.Version), passgenx.AlgorithmVersion)
		},
	}
}
