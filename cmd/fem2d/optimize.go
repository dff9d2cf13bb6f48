// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem2d

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/catalog"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/mesh"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/optimize"
)

var (
	optModelPath     string
	optLoadsPath     string
	optCatalogPath   string
	optCaseID        uint32
	optBeamID        uint32
	optSeriesPrefix  string
	optGradeName     string
	optDensity       float64
	optMaxUC         float64
	optDeflectionDiv float64
	optUnbracedLen   float64
	optCriterionName string
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Search the profile catalog for the lightest section that still passes",
	Long: `Optimize re-solves the model once per catalog candidate (ascending by
I_y, optionally restricted to a series such as "IPE"), substituting the
candidate onto the target beam each time, and reports the first/optimal
feasible profile per the chosen criterion (weight, deflection, UC or
stress). The model's original section is restored once the search ends,
on every exit path.

Example:
  fem2d optimize --model portal.json --loads loads.json --case 1 \
    --catalog profiles.json --beam 3 --series IPE --grade S235 --criterion weight`,
	RunE: runOptimize,
}

func init() {
	rootCmd.AddCommand(optimizeCmd)

	optimizeCmd.Flags().StringVar(&optModelPath, "model", "", "path to the model JSON file [required]")
	optimizeCmd.Flags().StringVar(&optLoadsPath, "loads", "", "path to the load-case JSON file [required]")
	optimizeCmd.Flags().StringVar(&optCatalogPath, "catalog", "", "path to the profile-catalog JSON file [required]")
	optimizeCmd.Flags().Uint32Var(&optCaseID, "case", 0, "id of the single load case to solve, if the file has more than one")
	optimizeCmd.Flags().Uint32Var(&optBeamID, "beam", 0, "id of the beam to optimize [required]")
	optimizeCmd.Flags().StringVar(&optSeriesPrefix, "series", "", "restrict candidates to a catalog series prefix, e.g. IPE")
	optimizeCmd.Flags().StringVar(&optGradeName, "grade", "S235", "steel grade to check candidates against")
	optimizeCmd.Flags().Float64Var(&optDensity, "density", 7850, "material density used by the weight/stress criteria, kg/m^3")
	optimizeCmd.Flags().Float64Var(&optMaxUC, "max-uc", 1.0, "maximum allowed unity check")
	optimizeCmd.Flags().Float64Var(&optDeflectionDiv, "deflection-limit", 250, "SLS deflection limit divisor (L/divisor)")
	optimizeCmd.Flags().Float64Var(&optUnbracedLen, "unbraced-length", 0, "unbraced length for 6.3.1/6.3.2 member buckling and LTB, m; 0 disables those checks")
	optimizeCmd.Flags().StringVar(&optCriterionName, "criterion", "weight", "selection criterion: weight, deflection, uc or stress")

	optimizeCmd.MarkFlagRequired("model")
	optimizeCmd.MarkFlagRequired("loads")
	optimizeCmd.MarkFlagRequired("catalog")
	optimizeCmd.MarkFlagRequired("beam")
}

func parseCriterion(name string) (optimize.Criterion, error) {
	switch name {
	case "weight":
		return optimize.CriterionWeight, nil
	case "deflection":
		return optimize.CriterionDeflection, nil
	case "uc":
		return optimize.CriterionUC, nil
	case "stress":
		return optimize.CriterionStress, nil
	default:
		return 0, fmt.Errorf("unknown criterion %q (want weight, deflection, uc or stress)", name)
	}
}

func runOptimize(cmd *cobra.Command, args []string) error {
	m, err := loadModel(optModelPath)
	if err != nil {
		return err
	}
	loadFile, err := loadLoadFile(optLoadsPath)
	if err != nil {
		return err
	}
	cases, err := selectCases(loadFile, nil, optCaseID)
	if err != nil {
		return err
	}
	if len(cases) != 1 {
		return fmt.Errorf("optimize requires exactly one load case, got %d", len(cases))
	}

	db, err := loadCatalog(optCatalogPath)
	if err != nil {
		return err
	}
	grade, err := resolveGrade(optGradeName)
	if err != nil {
		return err
	}
	criterion, err := parseCriterion(optCriterionName)
	if err != nil {
		return err
	}

	beamID := mesh.BeamID(optBeamID)
	beam, ok := m.Beam(beamID)
	if !ok {
		return fmt.Errorf("model has no beam with id %d", optBeamID)
	}
	n1, _ := m.Node(beam.N1)
	n2, _ := m.Node(beam.N2)
	length := nodeDistance(n1, n2)

	applyFn := func(ms *mesh.Store, p *catalog.Profile) error {
		sec := p.Section
		return ms.UpdateBeam(beamID, mesh.BeamPatch{Section: &sec})
	}

	cons := optimize.Constraints{
		Catalog:                db,
		SeriesPrefix:           optSeriesPrefix,
		Grade:                  grade,
		Density:                optDensity,
		MaxUC:                  optMaxUC,
		DeflectionLimitDivisor: optDeflectionDiv,
		MemberLength:           length,
		UnbracedLength:         optUnbracedLen,
	}

	onProgress := func(index, total int, p *catalog.Profile) {
		fmt.Printf("\rtrying %d/%d: %s", index+1, total, p.Name)
	}

	result, err := optimize.OptimizeProfile(m, cases[0], applyFn, &beamID, criterion, cons, onProgress, nil)
	fmt.Println()
	if err != nil {
		return fmt.Errorf("optimize failed: %w", err)
	}

	fmt.Printf("tried %d candidates\n", len(result.Tried))
	if !result.Feasible {
		fmt.Println("no feasible candidate found")
		return nil
	}
	fmt.Printf("chosen profile: %s\n", result.Chosen.Name)
	return nil
}

func nodeDistance(a, b mesh.Node) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
