package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "finderctl",
	Short: "finderctl bootstraps and launches the finder diagnostic UI",
	Long: `finderctl prepares an isolated Python environment for the finder web UI
and launches it: system dependency check, virtualenv creation, requirements
install, then the UI process in the foreground.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", ".", "Directory containing requirements.txt and the UI entrypoint")
	rootCmd.PersistentFlags().String("profile", "streamlit", "Launch profile (streamlit, gradio, or one from finderctl.yaml)")
	rootCmd.PersistentFlags().String("config", "finderctl.yaml", "Profile overlay file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}
