package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/finderctl/internal/config"
	"github.com/aretw0/finderctl/internal/manifest"
	"github.com/aretw0/finderctl/internal/presentation/tui"
	"github.com/aretw0/finderctl/internal/steps/sysdep"
	"github.com/aretw0/finderctl/pkg/adapters/process"
	"github.com/aretw0/finderctl/pkg/ports"
)

// doctorCmd represents the doctor command
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Report host readiness without changing anything",
	Long: `Checks everything 'up' will need — interpreter, package manager, system
dependency, environment, manifest — and prints a report. Read-only: doctor
never installs or creates anything.`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		profileName, _ := cmd.Flags().GetString("profile")
		configFile, _ := cmd.Flags().GetString("config")

		if !filepath.IsAbs(configFile) {
			configFile = filepath.Join(dir, configFile)
		}
		profile, err := config.Resolve(profileName, configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		exec := process.New()
		ctx := context.Background()
		failed := false

		var b strings.Builder
		fmt.Fprintf(&b, "# finderctl doctor\n\nProfile: **%s** (port %d)\n\n", profile.Name, profile.DefaultPort)

		// Interpreter
		if out, err := exec.Capture(ctx, ports.Command{Name: config.DefaultPython, Args: []string{"--version"}}); err == nil {
			fmt.Fprintf(&b, "- ✅ interpreter: %s\n", out)
		} else {
			fmt.Fprintf(&b, "- ❌ interpreter: %s not found\n", config.DefaultPython)
			failed = true
		}

		// Package manager (informational: its absence only disables the
		// best-effort system dependency install)
		manager := ""
		for _, m := range sysdep.Defaults() {
			if _, err := exec.LookPath(m.Name); err == nil {
				manager = m.Name
				break
			}
		}
		if manager != "" {
			fmt.Fprintf(&b, "- ✅ package manager: %s\n", manager)
		} else {
			fmt.Fprintf(&b, "- ⚠️ package manager: none found (system dependency install will be skipped)\n")
		}

		// System precondition
		if pre := profile.Precondition; pre != nil {
			if path, err := exec.LookPath(pre.Binary); err == nil {
				fmt.Fprintf(&b, "- ✅ %s: %s\n", pre.Binary, path)
			} else if pkg := pre.PackageFor(manager); manager != "" && pkg != "" {
				fmt.Fprintf(&b, "- ⚠️ %s: missing, 'up' will install %s via %s\n", pre.Binary, pkg, manager)
			} else {
				fmt.Fprintf(&b, "- ❌ %s: missing and not installable on this host\n", pre.Binary)
				failed = true
			}
		} else {
			fmt.Fprintf(&b, "- ✅ system dependency: none required\n")
		}

		// Environment
		venv := filepath.Join(dir, config.VenvDir)
		if _, err := os.Stat(filepath.Join(venv, "pyvenv.cfg")); err == nil {
			fmt.Fprintf(&b, "- ✅ environment: %s (will be reused)\n", venv)
		} else {
			fmt.Fprintf(&b, "- ⚠️ environment: %s absent (will be created)\n", venv)
		}

		// Manifest
		reqs, err := manifest.Load(filepath.Join(dir, config.ManifestFile))
		if err != nil {
			fmt.Fprintf(&b, "- ❌ manifest: %v\n", err)
			failed = true
		} else {
			names := make([]string, len(reqs))
			for i, r := range reqs {
				names[i] = r.Name
			}
			fmt.Fprintf(&b, "- ✅ manifest: %d packages (%s)\n", len(reqs), strings.Join(names, ", "))
		}

		// Entrypoint
		entry := filepath.Join(dir, profile.Entrypoint)
		if _, err := os.Stat(entry); err == nil {
			fmt.Fprintf(&b, "- ✅ entrypoint: %s\n", profile.Entrypoint)
		} else {
			fmt.Fprintf(&b, "- ❌ entrypoint: %s not found\n", profile.Entrypoint)
			failed = true
		}

		fmt.Print(tui.RenderMarkdown(b.String()))
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
