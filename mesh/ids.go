// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh implements spec component C3: the mesh store. It is the
// sole owner of nodes, beams, plates and materials; every other package
// holds numeric ids, never long-lived pointers into the store, per spec
// §9's arena-plus-stable-id design note — the same relationship the
// teacher's fem.Domain has with inp.Mesh, except here the store also owns
// mutation (AddNode/AddBeam/...) instead of being read-only input data.
package mesh

// NodeID, BeamID, PlateID, MaterialID identify entities owned by a Store.
// Values are stable until the next Clear, which resets the counters so
// numbering starts again at 1.
type (
	NodeID        uint32
	BeamID        uint32
	PlateID       uint32
	MaterialID    uint32
)
