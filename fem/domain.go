// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/catalog"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/ele"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/errs"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/mesh"
)

// domain is the assembled DOF map for one mesh revision: node ordering,
// DOFs-per-node, and the beam/plate elements built against that ordering.
// Rebuilt once per Solve call and, when contact ends are present, re-used
// across contact-iteration passes (only the axial on/off state changes,
// not the DOF layout).
type domain struct {
	kind        mesh.AnalysisKind
	dofsPerNode int
	nDOF        int

	nodeIndex map[mesh.NodeID]int
	nodeIDs   []mesh.NodeID
	beamIDs   []mesh.BeamID
	plateIDs  []mesh.PlateID

	beams     map[mesh.BeamID]*ele.Beam
	plates    map[mesh.PlateID]*ele.Plate
	beamNodes map[mesh.BeamID][2]mesh.NodeID

	// contactActive[beamID] reports whether a TensionOnly/CompressionOnly
	// member's axial stiffness is currently switched on.
	contactActive map[mesh.BeamID]bool
}

func buildDomain(m *mesh.Store, kind mesh.AnalysisKind) (*domain, error) {
	nodeIDs := m.SortedNodeIDs()
	if len(nodeIDs) == 0 {
		return nil, errs.New(errs.InvalidInput, "mesh has no nodes")
	}
	dofsPerNode := 3
	if kind == mesh.Truss {
		dofsPerNode = 2
	}

	d := &domain{
		kind:          kind,
		dofsPerNode:   dofsPerNode,
		nDOF:          len(nodeIDs) * dofsPerNode,
		nodeIndex:     make(map[mesh.NodeID]int, len(nodeIDs)),
		nodeIDs:       nodeIDs,
		beamIDs:       m.SortedBeamIDs(),
		plateIDs:      m.SortedPlateIDs(),
		beams:         make(map[mesh.BeamID]*ele.Beam),
		plates:        make(map[mesh.PlateID]*ele.Plate),
		beamNodes:     make(map[mesh.BeamID][2]mesh.NodeID),
		contactActive: make(map[mesh.BeamID]bool),
	}
	for i, id := range nodeIDs {
		d.nodeIndex[id] = i
	}

	for _, bid := range d.beamIDs {
		b, _ := m.Beam(bid)
		if err := d.addBeam(m, bid, b); err != nil {
			return nil, err
		}
	}
	for _, pid := range d.plateIDs {
		p, _ := m.Plate(pid)
		if err := d.addPlate(m, pid, p); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// dofAt returns the global DOF index for the given node's local dof
// (0=ux,1=uy,2=rz), or -1 if this analysis kind has no such DOF (e.g. the
// rotation DOF under Truss).
func (d *domain) dofAt(id mesh.NodeID, localDOF int) int {
	if localDOF >= d.dofsPerNode {
		return -1
	}
	return d.nodeIndex[id]*d.dofsPerNode + localDOF
}

func (d *domain) beamDOFMap(n1, n2 mesh.NodeID) []int {
	return []int{
		d.dofAt(n1, 0), d.dofAt(n1, 1), d.dofAt(n1, 2),
		d.dofAt(n2, 0), d.dofAt(n2, 1), d.dofAt(n2, 2),
	}
}

func (d *domain) addBeam(m *mesh.Store, id mesh.BeamID, b mesh.Beam) error {
	n1, ok1 := m.Node(b.N1)
	n2, ok2 := m.Node(b.N2)
	if !ok1 || !ok2 {
		return errs.New(errs.InvalidInput, "beam %d references unknown node", id)
	}
	mat, ok := m.Material(b.Material)
	if !ok {
		return errs.New(errs.InvalidInput, "beam %d references unknown material", id)
	}
	ends := b.Ends
	d.beamNodes[id] = [2]mesh.NodeID{b.N1, b.N2}
	isContact := ends.Start.IsContact() || ends.End.IsContact()
	if isContact {
		if _, seen := d.contactActive[id]; !seen {
			d.contactActive[id] = true // optimistic initial guess: fully active
		}
	}
	sec := b.Section
	if isContact && !d.contactActive[id] {
		sec = inactiveContactSection(sec)
	}
	elemEnds := releaseOnlyEnds(ends)
	el, err := ele.NewBeam(n1.X, n1.Y, n2.X, n2.Y, mat, sec, elemEnds, b.Load, d.beamDOFMap(b.N1, b.N2))
	if err != nil {
		return errs.Wrap(errs.InvalidInput, err, "beam %d", id)
	}
	d.beams[id] = el
	return nil
}

// releaseOnlyEnds passes TensionOnly/CompressionOnly ends through to
// ele.Beam as plain Fixed connections: those variants never release the
// moment DOF (spec §9), they only switch the member's axial stiffness on
// or off, which is modelled separately via inactiveContactSection.
func releaseOnlyEnds(ends mesh.EndConnection) mesh.EndConnection {
	conv := func(m mesh.ConnectionMode) mesh.ConnectionMode {
		if m.IsContact() {
			return mesh.Fixed
		}
		return m
	}
	return mesh.EndConnection{Start: conv(ends.Start), End: conv(ends.End)}
}

// contactInactiveAreaFactor scales a tension/compression-only member's
// area down by this factor while its contact state is "open": a true zero
// area would make the condensed axial block singular, so a negligible
// residual stiffness is kept instead of removing it entirely (spec §4.5).
const contactInactiveAreaFactor = 1e-9

// inactiveContactSection returns a near-zero-area copy of sec.
func inactiveContactSection(sec catalog.Section) catalog.Section {
	sec.A *= contactInactiveAreaFactor
	return sec
}

// rebuildBeam reconstructs a single beam's element against the domain's
// current contactActive state, used by the contact-iteration loop in
// solve.go after flipping a member's active flag.
func (d *domain) rebuildBeam(m *mesh.Store, id mesh.BeamID) error {
	b, ok := m.Beam(id)
	if !ok {
		return errs.New(errs.InvalidInput, "beam %d no longer exists", id)
	}
	return d.addBeam(m, id, b)
}

func (d *domain) addPlate(m *mesh.Store, id mesh.PlateID, p mesh.Plate) error {
	n1, ok1 := m.Node(p.N1)
	n2, ok2 := m.Node(p.N2)
	n3, ok3 := m.Node(p.N3)
	if !ok1 || !ok2 || !ok3 {
		return errs.New(errs.InvalidInput, "plate %d references unknown node", id)
	}
	mat, ok := m.Material(p.Material)
	if !ok {
		return errs.New(errs.InvalidInput, "plate %d references unknown material", id)
	}
	dofMap := []int{
		d.dofAt(p.N1, 0), d.dofAt(p.N1, 1), d.dofAt(p.N1, 2),
		d.dofAt(p.N2, 0), d.dofAt(p.N2, 1), d.dofAt(p.N2, 2),
		d.dofAt(p.N3, 0), d.dofAt(p.N3, 1), d.dofAt(p.N3, 2),
	}
	el, err := ele.NewPlate(n1.X, n1.Y, n2.X, n2.Y, n3.X, n3.Y, mat.E, mat.Nu, p.Thickness, dofMap)
	if err != nil {
		return errs.Wrap(errs.InvalidInput, err, "plate %d", id)
	}
	d.plates[id] = el
	return nil
}
