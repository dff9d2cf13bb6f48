// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
)

// String renders a Report the way the teacher's Points/ResultsMap dumped a
// JSON-like inline structure for quick inspection in a REPL or log line,
// rebuilt around fem.BeamForces/PlateForces instead of an integration-point
// results map.
func (r *Report) String() string {
	l := "{\n"
	l += io.Sf("  \"kind\": %q,\n", r.Result.Kind)
	l += io.Sf("  \"equilibriumResidual\": %g,\n", r.Result.EquilibriumResidual)
	l += io.Sf("  \"contactIterations\": %d,\n", r.Result.ContactIterations)
	l += "  \"beams\": [\n"
	for i, id := range r.BeamIDs {
		if i > 0 {
			l += ",\n"
		}
		bf := r.Result.BeamForces[id]
		l += io.Sf("    {\"id\":%d, \"Nmax\":%g, \"Vmax\":%g, \"Mmax\":%g}", id, bf.NMax, bf.VMax, bf.MMax)
	}
	if len(r.BeamIDs) > 0 {
		l += "\n"
	}
	l += "  ],\n"
	l += "  \"plates\": [\n"
	for i, id := range r.PlateIDs {
		if i > 0 {
			l += ",\n"
		}
		pf := r.Result.PlateForces[id]
		l += io.Sf("    {\"id\":%d, \"Mx\":%g, \"My\":%g, \"Mxy\":%g}", id, pf.Mx, pf.My, pf.Mxy)
	}
	if len(r.PlateIDs) > 0 {
		l += "\n"
	}
	l += "  ]\n"
	l += "}"
	return l
}
