// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

// Grade holds a steel grade's resistance properties per NEN-EN 1993-1-1 NL,
// spec §4.6. The partial factors are fixed by the Dutch national annex and
// therefore carried on every grade rather than configured per-check.
type Grade struct {
	Name   string
	Fy     float64 // yield strength, Pa
	Fu     float64 // ultimate tensile strength, Pa
	GammaM0 float64
	GammaM1 float64
	GammaM2 float64
}

// Grades is the module-level, read-only table of steel grades S235…S460,
// constructed once at initialisation per spec §9's "global mutable state in
// the original" design note ("expose these as a module-level constant
// table... read-only thereafter").
var Grades = map[string]Grade{
	"S235": {Name: "S235", Fy: 235e6, Fu: 360e6, GammaM0: 1.0, GammaM1: 1.0, GammaM2: 1.25},
	"S275": {Name: "S275", Fy: 275e6, Fu: 430e6, GammaM0: 1.0, GammaM1: 1.0, GammaM2: 1.25},
	"S355": {Name: "S355", Fy: 355e6, Fu: 490e6, GammaM0: 1.0, GammaM1: 1.0, GammaM2: 1.25},
	"S420": {Name: "S420", Fy: 420e6, Fu: 520e6, GammaM0: 1.0, GammaM1: 1.0, GammaM2: 1.25},
	"S460": {Name: "S460", Fy: 460e6, Fu: 540e6, GammaM0: 1.0, GammaM1: 1.0, GammaM2: 1.25},
}

// FindGrade looks a steel grade up by name. ok is false for an unknown
// grade; callers wrap that into an errs.CatalogMiss error.
func FindGrade(name string) (Grade, bool) {
	g, ok := Grades[name]
	return g, ok
}
