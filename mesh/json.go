// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"encoding/json"

	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/catalog"
)

// wireNode/wireBeam/wirePlate/wireMaterial are the canonical JSON shapes of
// spec §6, field-named in snake_case the way the retrieved pack's
// structural-model example (arx-os-arxos/structural_models.go) tags its
// domain JSON, since gofem's own inp package (the nearer teacher ancestor)
// never had to serialise a 2D frame mesh at all.
type wireNode struct {
	ID      uint32  `json:"id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Rx      bool    `json:"restrain_x,omitempty"`
	Ry      bool    `json:"restrain_y,omitempty"`
	Rrot    bool    `json:"restrain_rotation,omitempty"`
	Fx      float64 `json:"fx,omitempty"`
	Fy      float64 `json:"fy,omitempty"`
	Mz      float64 `json:"mz,omitempty"`
}

type wireBeam struct {
	ID          uint32          `json:"id"`
	N1          uint32          `json:"n1"`
	N2          uint32          `json:"n2"`
	Material    uint32          `json:"material_id"`
	Section     catalog.Section `json:"section"`
	ProfileName string          `json:"profile_name,omitempty"`
	StartMode   string          `json:"start_connection"`
	EndMode     string          `json:"end_connection"`
}

type wirePlate struct {
	ID        uint32  `json:"id"`
	N1        uint32  `json:"n1"`
	N2        uint32  `json:"n2"`
	N3        uint32  `json:"n3"`
	Material  uint32  `json:"material_id"`
	Thickness float64 `json:"thickness"`
	Membrane  bool    `json:"membrane,omitempty"`
}

type wireMaterial struct {
	ID  uint32  `json:"id"`
	E   float64 `json:"e"`
	Nu  float64 `json:"nu"`
	Rho float64 `json:"rho"`
}

type wireModel struct {
	Nodes     []wireNode     `json:"nodes"`
	Beams     []wireBeam     `json:"beams"`
	Plates    []wirePlate    `json:"plates"`
	Materials []wireMaterial `json:"materials"`
}

func modeToString(m ConnectionMode) string { return m.String() }

func stringToMode(s string) ConnectionMode {
	switch s {
	case "hinge":
		return Hinge
	case "tension-only":
		return TensionOnly
	case "compression-only":
		return CompressionOnly
	default:
		return Fixed
	}
}

// MarshalJSON serialises the store to the canonical shape of spec §6.
// No bit-exact wire protocol is mandated; round-trip identity is verified
// by the serialise→parse→serialise fixed point, not by byte equality.
func (s *Store) MarshalJSON() ([]byte, error) {
	w := wireModel{}
	for _, id := range s.SortedNodeIDs() {
		n := s.nodes[id]
		w.Nodes = append(w.Nodes, wireNode{
			ID: uint32(n.ID), X: n.X, Y: n.Y,
			Rx: n.Support.X, Ry: n.Support.Y, Rrot: n.Support.Rotation,
			Fx: n.Fx, Fy: n.Fy, Mz: n.Mz,
		})
	}
	for _, id := range s.SortedBeamIDs() {
		b := s.beams[id]
		w.Beams = append(w.Beams, wireBeam{
			ID: uint32(b.ID), N1: uint32(b.N1), N2: uint32(b.N2),
			Material: uint32(b.Material), Section: b.Section, ProfileName: b.ProfileName,
			StartMode: modeToString(b.Ends.Start), EndMode: modeToString(b.Ends.End),
		})
	}
	for _, id := range s.SortedPlateIDs() {
		p := s.plates[id]
		w.Plates = append(w.Plates, wirePlate{
			ID: uint32(p.ID), N1: uint32(p.N1), N2: uint32(p.N2), N3: uint32(p.N3),
			Material: uint32(p.Material), Thickness: p.Thickness, Membrane: p.Membrane,
		})
	}
	ids := make([]MaterialID, 0, len(s.materials))
	for id := range s.materials {
		ids = append(ids, id)
	}
	sortMatIDs(ids)
	for _, id := range ids {
		m := s.materials[id]
		w.Materials = append(w.Materials, wireMaterial{ID: uint32(id), E: m.E, Nu: m.Nu, Rho: m.Rho})
	}
	return json.Marshal(w)
}

func sortMatIDs(ids []MaterialID) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
}

// UnmarshalJSON rebuilds a store from the canonical shape of spec §6,
// preserving the original numeric ids.
func (s *Store) UnmarshalJSON(data []byte) error {
	var w wireModel
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	s.Clear()
	for _, m := range w.Materials {
		id := MaterialID(m.ID)
		s.materials[id] = &catalog.Material{E: m.E, Nu: m.Nu, Rho: m.Rho}
		if id > s.nextMat {
			s.nextMat = id
		}
	}
	for _, n := range w.Nodes {
		id := NodeID(n.ID)
		s.nodes[id] = &Node{ID: id, X: n.X, Y: n.Y,
			Support: Support{X: n.Rx, Y: n.Ry, Rotation: n.Rrot},
			Fx:      n.Fx, Fy: n.Fy, Mz: n.Mz}
		if id > s.nextNode {
			s.nextNode = id
		}
	}
	for _, b := range w.Beams {
		id := BeamID(b.ID)
		s.beams[id] = &Beam{ID: id, N1: NodeID(b.N1), N2: NodeID(b.N2),
			Material: MaterialID(b.Material), Section: b.Section, ProfileName: b.ProfileName,
			Ends: EndConnection{Start: stringToMode(b.StartMode), End: stringToMode(b.EndMode)}}
		if id > s.nextBeam {
			s.nextBeam = id
		}
	}
	for _, p := range w.Plates {
		id := PlateID(p.ID)
		s.plates[id] = &Plate{ID: id, N1: NodeID(p.N1), N2: NodeID(p.N2), N3: NodeID(p.N3),
			Material: MaterialID(p.Material), Thickness: p.Thickness, Membrane: p.Membrane}
		if id > s.nextPlate {
			s.nextPlate = id
		}
	}
	s.bump()
	return nil
}
