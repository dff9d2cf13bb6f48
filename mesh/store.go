// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"math"
	"sort"

	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/catalog"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/errs"
)

// Support is a node's restraint mask (spec §3).
type Support struct {
	X, Y, Rotation bool
}

// Node is a mesh vertex with optional support and nodal load.
type Node struct {
	ID          NodeID
	X, Y        float64
	Support     Support
	Fx, Fy, Mz  float64 // nodal load components, zero if unset
}

// Beam is a 2D Euler-Bernoulli element connecting two nodes.
type Beam struct {
	ID          BeamID
	N1, N2      NodeID
	Material    MaterialID
	Section     catalog.Section
	ProfileName string // optional catalog profile name, "" if bespoke
	Ends        EndConnection
	Load        *DistributedLoad // optional attached per-beam distributed load
}

// DistributedLoad is the trapezoidal transverse/axial load attached
// directly to a beam element (as opposed to one introduced through a load
// case — both paths funnel into the same equivalent-load machinery, spec
// §4.1/§4.3).
type DistributedLoad struct {
	QyStart, QyEnd float64
	QxStart, QxEnd float64
	T0, T1         float64 // fractional range [0,1]
	Local          bool    // true: local frame, false: global frame
}

// Plate is a Kirchhoff (DKT) triangular plate element.
type Plate struct {
	ID        PlateID
	N1, N2, N3 NodeID
	Material  MaterialID
	Thickness float64
	Membrane  bool // optional membrane (in-plane) activation
}

// AnalysisKind selects the DOFs-per-node used by the assembler (spec §3).
type AnalysisKind int

const (
	Frame AnalysisKind = iota // 3 DOF/node: ux, uy, rz
	Truss                     // 2 DOF/node: ux, uy
	PlateBending              // 3 DOF/node: w, θx, θy (DKT bending DOFs)
)

// Store owns every entity in a model exclusively; external callers hold
// ids, never references, per spec §9's arena-plus-stable-id design note.
// Mutating calls bump Revision, letting downstream caches invalidate.
type Store struct {
	nodes     map[NodeID]*Node
	beams     map[BeamID]*Beam
	plates    map[PlateID]*Plate
	materials map[MaterialID]*catalog.Material
	nextNode  NodeID
	nextBeam  BeamID
	nextPlate PlateID
	nextMat   MaterialID
	revision  uint64
}

// NewStore returns an empty mesh store.
func NewStore() *Store {
	return &Store{
		nodes:     make(map[NodeID]*Node),
		beams:     make(map[BeamID]*Beam),
		plates:    make(map[PlateID]*Plate),
		materials: make(map[MaterialID]*catalog.Material),
	}
}

// Revision returns the store's monotonically increasing mutation counter.
func (s *Store) Revision() uint64 { return s.revision }

func (s *Store) bump() { s.revision++ }

// AddMaterial registers a material and returns its id.
func (s *Store) AddMaterial(m catalog.Material) (MaterialID, error) {
	if !finite2(m.E) || m.E <= 0 {
		return 0, errs.New(errs.InvalidInput, "material E must be a positive finite number, got %v", m.E)
	}
	s.nextMat++
	id := s.nextMat
	cp := m
	s.materials[id] = &cp
	s.bump()
	return id, nil
}

// AddNode inserts a node at (x,y) and returns its id.
func (s *Store) AddNode(x, y float64) (NodeID, error) {
	if !finite2(x) || !finite2(y) {
		return 0, errs.New(errs.InvalidInput, "node coordinates must be finite, got (%v, %v)", x, y)
	}
	s.nextNode++
	id := s.nextNode
	s.nodes[id] = &Node{ID: id, X: x, Y: y}
	s.bump()
	return id, nil
}

// SetSupport sets a node's restraint mask.
func (s *Store) SetSupport(id NodeID, rx, ry, rrot bool) error {
	n, ok := s.nodes[id]
	if !ok {
		return errs.New(errs.InvalidInput, "unknown node id %d", id)
	}
	n.Support = Support{X: rx, Y: ry, Rotation: rrot}
	s.bump()
	return nil
}

// SetNodalLoad sets a node's concentrated load.
func (s *Store) SetNodalLoad(id NodeID, fx, fy, mz float64) error {
	n, ok := s.nodes[id]
	if !ok {
		return errs.New(errs.InvalidInput, "unknown node id %d", id)
	}
	n.Fx, n.Fy, n.Mz = fx, fy, mz
	s.bump()
	return nil
}

// Node returns a copy of the node with the given id.
func (s *Store) Node(id NodeID) (Node, bool) {
	n, ok := s.nodes[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// AddBeam connects n1 and n2 with the given material and section. The two
// node ids must differ and resolve, and the resulting length must be
// positive (spec §3 invariants).
func (s *Store) AddBeam(n1, n2 NodeID, mat MaterialID, sec catalog.Section, profile string) (BeamID, error) {
	if n1 == n2 {
		return 0, errs.New(errs.InvalidInput, "beam start and end node must differ, got %d twice", n1)
	}
	a, ok1 := s.nodes[n1]
	b, ok2 := s.nodes[n2]
	if !ok1 || !ok2 {
		return 0, errs.New(errs.InvalidInput, "beam references unknown node(s) %d, %d", n1, n2)
	}
	if _, ok := s.materials[mat]; !ok {
		return 0, errs.New(errs.InvalidInput, "beam references unknown material %d", mat)
	}
	L := math.Hypot(b.X-a.X, b.Y-a.Y)
	if L <= 0 {
		return 0, errs.New(errs.InvalidInput, "beam length must be positive, got %v", L)
	}
	s.nextBeam++
	id := s.nextBeam
	s.beams[id] = &Beam{ID: id, N1: n1, N2: n2, Material: mat, Section: sec, ProfileName: profile}
	s.bump()
	return id, nil
}

// BeamPatch describes a partial update to a beam, applied by UpdateBeam.
// Nil fields are left unchanged.
type BeamPatch struct {
	Section *catalog.Section
	Ends    *EndConnection
	Load    *DistributedLoad
}

// UpdateBeam applies patch to the given beam in place and bumps Revision.
// This is the optimizer's primary entry point for substituting a candidate
// section (spec §4.7 C10).
func (s *Store) UpdateBeam(id BeamID, patch BeamPatch) error {
	b, ok := s.beams[id]
	if !ok {
		return errs.New(errs.InvalidInput, "unknown beam id %d", id)
	}
	if patch.Section != nil {
		b.Section = *patch.Section
	}
	if patch.Ends != nil {
		b.Ends = *patch.Ends
	}
	if patch.Load != nil {
		b.Load = patch.Load
	}
	s.bump()
	return nil
}

// Beam returns a copy of the beam with the given id.
func (s *Store) Beam(id BeamID) (Beam, bool) {
	b, ok := s.beams[id]
	if !ok {
		return Beam{}, false
	}
	return *b, true
}

// AddPlate inserts a triangular plate element. The three node ids must
// describe a nonzero signed area (spec §3 invariant); either orientation,
// CCW or CW, is accepted.
func (s *Store) AddPlate(n1, n2, n3 NodeID, mat MaterialID, thickness float64) (PlateID, error) {
	a, ok1 := s.nodes[n1]
	b, ok2 := s.nodes[n2]
	c, ok3 := s.nodes[n3]
	if !ok1 || !ok2 || !ok3 {
		return 0, errs.New(errs.InvalidInput, "plate references unknown node(s)")
	}
	area2 := (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
	if area2 == 0 {
		return 0, errs.New(errs.InvalidInput, "plate nodes are collinear (zero signed area)")
	}
	if thickness <= 0 {
		return 0, errs.New(errs.InvalidInput, "plate thickness must be positive, got %v", thickness)
	}
	s.nextPlate++
	id := s.nextPlate
	s.plates[id] = &Plate{ID: id, N1: n1, N2: n2, N3: n3, Material: mat, Thickness: thickness}
	s.bump()
	return id, nil
}

// Plate returns a copy of the plate with the given id.
func (s *Store) Plate(id PlateID) (Plate, bool) {
	p, ok := s.plates[id]
	if !ok {
		return Plate{}, false
	}
	return *p, true
}

// Material returns a copy of the material with the given id.
func (s *Store) Material(id MaterialID) (catalog.Material, bool) {
	m, ok := s.materials[id]
	if !ok {
		return catalog.Material{}, false
	}
	return *m, true
}

// Clear empties the store and bumps Revision.
func (s *Store) Clear() {
	s.nodes = make(map[NodeID]*Node)
	s.beams = make(map[BeamID]*Beam)
	s.plates = make(map[PlateID]*Plate)
	s.materials = make(map[MaterialID]*catalog.Material)
	s.nextNode, s.nextBeam, s.nextPlate, s.nextMat = 0, 0, 0, 0
	s.bump()
}

// SortedNodeIDs returns every node id in ascending order. DOF indexing in
// package fem is defined over this exact ordering (spec §4.4: "this
// ordering must be stable across calls for a given model revision" —
// testable property 4).
func (s *Store) SortedNodeIDs() []NodeID {
	ids := make([]NodeID, 0, len(s.nodes))
	for id := range s.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// SortedBeamIDs returns every beam id in ascending order.
func (s *Store) SortedBeamIDs() []BeamID {
	ids := make([]BeamID, 0, len(s.beams))
	for id := range s.beams {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// SortedPlateIDs returns every plate id in ascending order.
func (s *Store) SortedPlateIDs() []PlateID {
	ids := make([]PlateID, 0, len(s.plates))
	for id := range s.plates {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// InferAnalysisKind picks Frame, Truss or PlateBending for the current
// model contents: a frame as soon as any beam keeps a moment-carrying end,
// a truss when every beam is hinge-released at both ends, plate-only when
// there are plates and no beams.
func (s *Store) InferAnalysisKind() AnalysisKind {
	if len(s.beams) == 0 && len(s.plates) > 0 {
		return PlateBending
	}
	for _, b := range s.beams {
		if !b.Ends.Start.ReleasesMoment() || !b.Ends.End.ReleasesMoment() {
			return Frame
		}
	}
	if len(s.beams) > 0 {
		return Truss
	}
	return Frame
}

func finite2(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
