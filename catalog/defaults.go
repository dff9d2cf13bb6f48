// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

// DefaultMaterial is the module's default structural steel material,
// constructed once and read-only thereafter (spec §9 "global mutable
// state in the original... expose these as a module-level constant
// table").
var DefaultMaterial = Material{E: 210e9, Nu: 0.3, Rho: 7850, Alpha: 1.2e-5}

// DefaultSections is a tiny built-in table of common IPE/HEA sections used
// by tests; the CLI always reads its profiles from a catalog file. A real
// deployment loads the full catalog via Load; this table exists purely so
// the engine has something sane to fall back on, the way the teacher ships
// baked-in default materials in mdl/sld.
var DefaultSections = map[string]Section{
	"IPE 200": iSectionProps(0.200, 0.100, 0.0056, 0.0085, 0.012),
	"IPE 220": iSectionProps(0.220, 0.110, 0.0059, 0.0092, 0.012),
	"IPE 240": iSectionProps(0.240, 0.120, 0.0062, 0.0098, 0.015),
	"HEA 200": iSectionProps(0.190, 0.200, 0.0065, 0.0100, 0.018),
}
