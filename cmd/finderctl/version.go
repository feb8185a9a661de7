package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/finderctl"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of finderctl",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("finderctl version %s\n", strings.TrimSpace(finderctl.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
