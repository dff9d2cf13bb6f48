// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem2d

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect a profile catalog",
}

var (
	catalogListPath   string
	catalogListSeries string
)

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every profile in a catalog file, ascending by I_y",
	RunE:  runCatalogList,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd)

	catalogListCmd.Flags().StringVar(&catalogListPath, "catalog", "", "path to the profile-catalog JSON file [required]")
	catalogListCmd.Flags().StringVar(&catalogListSeries, "series", "", "restrict to a series prefix, e.g. IPE")
	catalogListCmd.MarkFlagRequired("catalog")
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	db, err := loadCatalog(catalogListPath)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "name\tshape\tA (mm^2)\tIy (mm^4)")
	for _, p := range db.AscendingByI(catalogListSeries) {
		fmt.Fprintf(w, "%s\t%s\t%.0f\t%.0f\n", p.Name, p.ShapeName, p.Section.A*1e6, p.Section.Iy*1e12)
	}
	return w.Flush()
}
