// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem2d

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the engine's release version, overridable at link time via
// -ldflags "-X .../cmd/fem2d.Version=...".
var Version = "0.1.0-dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the fem2d version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fem2d v%s\n", Version)
		fmt.Println("2D frame/truss/plate analysis to NEN-EN 1993-1-1/1993-1-8")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
