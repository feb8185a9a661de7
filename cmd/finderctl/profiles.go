package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/finderctl/internal/config"
)

// profilesCmd represents the profiles command
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List available launch profiles",
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		configFile, _ := cmd.Flags().GetString("config")

		if !filepath.IsAbs(configFile) {
			configFile = filepath.Join(dir, configFile)
		}
		profiles, err := config.Load(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		names, err := config.Names(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		for _, name := range names {
			p := profiles[name]
			marker := " "
			if name == config.DefaultProfile {
				marker = "*"
			}
			fmt.Printf("%s %-12s port %-5d %s\n", marker, p.Name, p.DefaultPort, p.Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}
