// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem2d

import (
	"fmt"
	"os"

	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/catalog"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/loadcase"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/mesh"
)

// loadModel reads a mesh.Store from the JSON file at path (spec §6's
// canonical model shape, mesh/json.go's wire format).
func loadModel(path string) (*mesh.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model file: %w", err)
	}
	m := mesh.NewStore()
	if err := m.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("parsing model file %s: %w", path, err)
	}
	return m, nil
}

// loadLoadFile reads a loadcase.File from the JSON file at path.
func loadLoadFile(path string) (*loadcase.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading load-case file: %w", err)
	}
	f := &loadcase.File{}
	if err := f.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("parsing load-case file %s: %w", path, err)
	}
	return f, nil
}

// loadCatalog reads a catalog.DB from the JSON file at path.
func loadCatalog(path string) (*catalog.DB, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	db, err := catalog.Load(data)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
	}
	return db, nil
}

// resolveCombination picks the requested named combination out of a
// load-case file, or nil if none was requested (a bare single-case solve).
func resolveCombination(f *loadcase.File, name string) (*loadcase.Combination, error) {
	if name == "" {
		return nil, nil
	}
	combo, ok := f.Combinations[name]
	if !ok {
		return nil, fmt.Errorf("load-case file has no combination named %q", name)
	}
	return combo, nil
}

// selectCases picks which cases from a load-case file participate in a
// solve: every case if a combination was requested (it weighs each one by
// its own factor, zero for cases it omits), or the single case named by
// --case when no combination was given.
func selectCases(f *loadcase.File, combo *loadcase.Combination, caseID uint32) ([]*loadcase.Case, error) {
	if combo != nil {
		return f.Cases, nil
	}
	if len(f.Cases) == 1 {
		return f.Cases, nil
	}
	for _, c := range f.Cases {
		if uint32(c.ID) == caseID {
			return []*loadcase.Case{c}, nil
		}
	}
	return nil, fmt.Errorf("load-case file has more than one case; pass --case <id> or --combo <name>")
}

func resolveGrade(name string) (catalog.Grade, error) {
	g, ok := catalog.FindGrade(name)
	if !ok {
		return catalog.Grade{}, fmt.Errorf("unknown steel grade %q", name)
	}
	return g, nil
}
