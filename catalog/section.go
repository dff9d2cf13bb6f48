// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catalog implements spec component C2: material/section
// properties and the read-only steel-profile catalog. Parameters are
// bound through gosl/fun.Prms the way the teacher's mdl/sld.OnedLinElast
// binds E, A, I22, I11 — a single connection point instead of a field-by-
// field copy, so a new section parameter only needs to be added in one
// place.
package catalog

import "github.com/cpmech/gosl/fun"

// Section holds the cross-section properties spec.md §3 requires on a
// beam element. b, Tw, Tf are optional (zero when the profile carries no
// flange/web split, e.g. a solid rectangle or a generic bar).
type Section struct {
	A     float64 // cross-sectional area, m²
	Iy    float64 // second moment of area about the strong axis, m⁴
	Iz    float64 // second moment of area about the weak axis, m⁴
	WelY  float64 // elastic section modulus about y, m³
	WelZ  float64
	WplY  float64 // plastic section modulus about y, m³ (class 1/2 only)
	WplZ  float64
	H     float64 // overall depth, m
	B     float64 // overall width, m (0 if not applicable)
	Tw    float64 // web thickness, m (0 if not applicable)
	Tf    float64 // flange thickness, m (0 if not applicable)
	Root  float64 // root radius, m (0 if not applicable)
	Class int     // cross-section class 1..4, 0 if not classified
}

// Bind connects the section's fields to a parameter table the way
// mdl/sld.OnedLinElast.Init binds its fields from fun.Prms, so a section
// can also be loaded from the same parameter-table persistence path as a
// material model.
func (s *Section) Bind(prms fun.Prms) {
	prms.Connect(&s.A, "A", "section")
	prms.Connect(&s.Iy, "Iy", "section")
	prms.Connect(&s.Iz, "Iz", "section")
	prms.Connect(&s.WelY, "WelY", "section")
	prms.Connect(&s.WelZ, "WelZ", "section")
	prms.Connect(&s.WplY, "WplY", "section")
	prms.Connect(&s.WplZ, "WplZ", "section")
	prms.Connect(&s.H, "H", "section")
	prms.Connect(&s.B, "B", "section")
	prms.Connect(&s.Tw, "Tw", "section")
	prms.Connect(&s.Tf, "Tf", "section")
}

// ShearArea returns A_v per spec §4.6: h_w·t_w for I-sections when the web
// thickness is known, falling back to 0.6·A otherwise.
func (s Section) ShearArea() float64 {
	if s.Tw > 0 && s.H > 0 {
		hw := s.H
		if s.Tf > 0 {
			hw = s.H - 2*s.Tf
		}
		return hw * s.Tw
	}
	return 0.6 * s.A
}

// Material holds E, ν, ρ as spec.md §3 requires, plus the coefficient of
// thermal expansion needed to turn a §3 thermal load into an initial
// strain (SPEC_FULL.md supplement — the distilled spec names thermal
// loads but never states what material property they act through).
type Material struct {
	E     float64 // Young's modulus, Pa
	Nu    float64 // Poisson's ratio
	Rho   float64 // density, kg/m³
	Alpha float64 // coefficient of thermal expansion, 1/K
}

// G returns the shear modulus derived from E and ν.
func (m Material) G() float64 { return m.E / (2 * (1 + m.Nu)) }
