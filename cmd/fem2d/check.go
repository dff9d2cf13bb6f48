// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem2d

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/fem"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/steel"
)

var (
	checkModelPath     string
	checkLoadsPath     string
	checkCombo         string
	checkCaseID        uint32
	checkGradeName     string
	checkDeflectionDiv float64
	checkIntervalMM    float64
	checkUnbracedLen   float64
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Solve a model and verify every beam against NEN-EN 1993-1-1",
	Long: `Check solves the model exactly as 'solve' does, then runs every beam's
recovered internal forces through the §6.2.4-6.2.10 cross-section checks
and the L/<divisor> serviceability deflection limit, printing the
governing unity check per beam.

Example:
  fem2d check --model portal.json --loads loads.json --case 1 --grade S235`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkModelPath, "model", "", "path to the model JSON file [required]")
	checkCmd.Flags().StringVar(&checkLoadsPath, "loads", "", "path to the load-case JSON file [required]")
	checkCmd.Flags().StringVar(&checkCombo, "combo", "", "named combination inside the load-case file to solve")
	checkCmd.Flags().Uint32Var(&checkCaseID, "case", 0, "id of the single load case to solve, if the file has more than one and no --combo is given")
	checkCmd.Flags().StringVar(&checkGradeName, "grade", "S235", "steel grade to check against")
	checkCmd.Flags().Float64Var(&checkDeflectionDiv, "deflection-limit", 250, "SLS deflection limit divisor (L/divisor); 0 disables the check")
	checkCmd.Flags().Float64Var(&checkIntervalMM, "station-interval", 100, "station spacing for the governing-check search, mm")
	checkCmd.Flags().Float64Var(&checkUnbracedLen, "unbraced-length", 0, "unbraced length for 6.3.1/6.3.2 member buckling and LTB, m; 0 disables those checks")

	checkCmd.MarkFlagRequired("model")
	checkCmd.MarkFlagRequired("loads")
}

func runCheck(cmd *cobra.Command, args []string) error {
	m, err := loadModel(checkModelPath)
	if err != nil {
		return err
	}
	loadFile, err := loadLoadFile(checkLoadsPath)
	if err != nil {
		return err
	}
	combo, err := resolveCombination(loadFile, checkCombo)
	if err != nil {
		return err
	}
	cases, err := selectCases(loadFile, combo, checkCaseID)
	if err != nil {
		return err
	}
	grade, err := resolveGrade(checkGradeName)
	if err != nil {
		return err
	}

	res, err := fem.Solve(m, cases, combo, fem.Options{})
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}

	results, err := steel.CheckAllBeams(m, res, grade, checkDeflectionDiv, checkIntervalMM, checkUnbracedLen)
	if err != nil {
		return fmt.Errorf("checking beams: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "beam\tUC_max\tgoverning\tat\tdeflection (mm)\tdeflection OK")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%.3f\t%s\t%s\t%.2f\t%v\n", r.Beam, r.UCMax, r.Governing, r.GoverningLocation, r.MaxDeflection*1000, r.DeflectionOK)
	}
	return w.Flush()
}
