// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem2d

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/fem"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/out"
)

var (
	solveModelPath string
	solveLoadsPath string
	solveCombo     string
	solveCaseID    uint32
	solvePenalty   bool
	solveASCII     bool
	solvePNGDir    string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a frame/truss/plate model under a load case or combination",
	Long: `Solve reads a mesh model and a load-case file, runs the direct-stiffness
solve (with tension/compression-only contact iteration where the model
carries such end releases), and prints a plain-text summary of the
governing internal forces and reactions.

Examples:
  fem2d solve --model portal.json --loads loads.json --case 1
  fem2d solve --model portal.json --loads loads.json --combo uls-1 --ascii`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVar(&solveModelPath, "model", "", "path to the model JSON file [required]")
	solveCmd.Flags().StringVar(&solveLoadsPath, "loads", "", "path to the load-case JSON file [required]")
	solveCmd.Flags().StringVar(&solveCombo, "combo", "", "named combination inside the load-case file to solve")
	solveCmd.Flags().Uint32Var(&solveCaseID, "case", 0, "id of the single load case to solve, if the file has more than one and no --combo is given")
	solveCmd.Flags().BoolVar(&solvePenalty, "penalty-bc", false, "apply supports by penalty instead of elimination")
	solveCmd.Flags().BoolVar(&solveASCII, "ascii", false, "print ASCII N/V/M diagrams for every beam")
	solveCmd.Flags().StringVar(&solvePNGDir, "png-dir", "", "directory to write per-beam N/V/M diagram PNGs into")

	solveCmd.MarkFlagRequired("model")
	solveCmd.MarkFlagRequired("loads")
}

func runSolve(cmd *cobra.Command, args []string) error {
	m, err := loadModel(solveModelPath)
	if err != nil {
		return err
	}
	loadFile, err := loadLoadFile(solveLoadsPath)
	if err != nil {
		return err
	}
	combo, err := resolveCombination(loadFile, solveCombo)
	if err != nil {
		return err
	}
	cases, err := selectCases(loadFile, combo, solveCaseID)
	if err != nil {
		return err
	}

	opts := fem.Options{}
	if solvePenalty {
		opts.BCMethod = fem.PenaltyBC
	}

	res, err := fem.Solve(m, cases, combo, opts)
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}

	report := out.NewReport(res)
	fmt.Print(report.Summary())

	if solveASCII {
		fmt.Println()
		for _, id := range report.BeamIDs {
			fmt.Printf("--- beam %d ---\n", id)
			fmt.Println(out.ASCIIAllDiagrams(id, res.BeamForces[id]))
		}
	}

	if solvePNGDir != "" {
		if err := os.MkdirAll(solvePNGDir, 0o755); err != nil {
			return fmt.Errorf("creating png directory: %w", err)
		}
		for _, id := range report.BeamIDs {
			bf := res.BeamForces[id]
			for _, kind := range []out.Diagram{out.DiagramN, out.DiagramV, out.DiagramM} {
				path := filepath.Join(solvePNGDir, fmt.Sprintf("beam-%d-%s.png", id, kind))
				if err := out.SaveBeamDiagramPNG(int(id), bf, kind, path); err != nil {
					return fmt.Errorf("writing %s: %w", path, err)
				}
			}
		}
		fmt.Printf("\nwrote diagrams to %s\n", solvePNGDir)
	}

	return nil
}
