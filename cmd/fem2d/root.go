// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fem2d implements the engine's command-line front end, grounded on
// the retrieved gorcb CLI's cobra layout (package-level command vars, flags
// registered in init(), a banner Run on the bare root command).
package fem2d

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fem2d",
	Short: "2D frame/truss/plate structural analysis to NEN-EN 1993",
	Long: `fem2d - Open FEM2D Studio

A CLI tool for 2D structural analysis of frames, trusses and plates,
with member and connection checks to NEN-EN 1993-1-1 and NEN-EN 1993-1-8.

This tool helps structural engineers:
  - solve a frame/truss/plate model under one or more load cases
  - recover internal-force diagrams and reactions
  - check steel members against NEN-EN 1993-1-1 §6.2/§6.3
  - design bolted end-plate moment connections to NEN-EN 1993-1-8 §6 (component method)
  - search the profile catalog for the lightest member that still passes`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  Open FEM2D Studio")
		fmt.Printf("  v%s\n", Version)
		fmt.Println("  2D frame/truss/plate analysis to NEN-EN 1993")
		fmt.Println()
		fmt.Println("  Use 'fem2d --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
