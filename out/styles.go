// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

// GetTexLabel builds a TeX-style axis label for one of this engine's
// internal-force quantities, the way the teacher's GetTexLabel switched on
// a continuum field key (ux, sx, pl, ...) to build a matplotlib label.
func GetTexLabel(key, unit string) string {
	l := "$"
	switch key {
	case "N":
		l += "N"
	case "V":
		l += "V"
	case "M":
		l += "M"
	case "Mx":
		l += "M_x"
	case "My":
		l += "M_y"
	case "Mxy":
		l += "M_{xy}"
	case "ux":
		l += "u_x"
	case "uy":
		l += "u_y"
	case "rz":
		l += "\\theta_z"
	default:
		l += key
	}
	if unit != "" {
		l += "\\;" + unit
	}
	l += "$"
	return l
}
