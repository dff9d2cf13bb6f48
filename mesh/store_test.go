// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"encoding/json"
	"testing"

	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/catalog"
)

func simplySupportedBeamStore(t *testing.T) (*Store, NodeID, NodeID, BeamID) {
	t.Helper()
	s := NewStore()
	mat, err := s.AddMaterial(catalog.DefaultMaterial)
	if err != nil {
		t.Fatalf("AddMaterial: %v", err)
	}
	n1, err := s.AddNode(0, 0)
	if err != nil {
		t.Fatalf("AddNode n1: %v", err)
	}
	n2, err := s.AddNode(6, 0)
	if err != nil {
		t.Fatalf("AddNode n2: %v", err)
	}
	if err := s.SetSupport(n1, true, true, false); err != nil {
		t.Fatalf("SetSupport n1: %v", err)
	}
	if err := s.SetSupport(n2, false, true, false); err != nil {
		t.Fatalf("SetSupport n2: %v", err)
	}
	sec := catalog.Section{A: 0.00285, Iy: 1.943e-5, WelY: 1.94e-4}
	b, err := s.AddBeam(n1, n2, mat, sec, "IPE 200")
	if err != nil {
		t.Fatalf("AddBeam: %v", err)
	}
	return s, n1, n2, b
}

func TestAddBeamRejectsSameNode(t *testing.T) {
	s := NewStore()
	mat, _ := s.AddMaterial(catalog.DefaultMaterial)
	n1, _ := s.AddNode(0, 0)
	if _, err := s.AddBeam(n1, n1, mat, catalog.Section{}, ""); err == nil {
		t.Fatal("expected error for beam with identical start/end node")
	}
}

func TestAddBeamRejectsUnknownNode(t *testing.T) {
	s := NewStore()
	mat, _ := s.AddMaterial(catalog.DefaultMaterial)
	n1, _ := s.AddNode(0, 0)
	if _, err := s.AddBeam(n1, NodeID(999), mat, catalog.Section{}, ""); err == nil {
		t.Fatal("expected error for beam referencing unknown node")
	}
}

func TestAddPlateRejectsCollinearNodes(t *testing.T) {
	s := NewStore()
	mat, _ := s.AddMaterial(catalog.DefaultMaterial)
	n1, _ := s.AddNode(0, 0)
	n2, _ := s.AddNode(1, 0)
	n3, _ := s.AddNode(2, 0)
	if _, err := s.AddPlate(n1, n2, n3, mat, 0.1); err == nil {
		t.Fatal("expected error for collinear plate nodes")
	}
}

func TestRevisionBumpsOnMutation(t *testing.T) {
	s, _, _, b := simplySupportedBeamStore(t)
	rev0 := s.Revision()
	newSec := catalog.Section{A: 1}
	if err := s.UpdateBeam(b, BeamPatch{Section: &newSec}); err != nil {
		t.Fatalf("UpdateBeam: %v", err)
	}
	if s.Revision() <= rev0 {
		t.Errorf("expected Revision to increase after UpdateBeam, got %d -> %d", rev0, s.Revision())
	}
}

func TestSortedNodeIDsStableOrdering(t *testing.T) {
	s, n1, n2, _ := simplySupportedBeamStore(t)
	ids := s.SortedNodeIDs()
	if len(ids) != 2 || ids[0] != minID(n1, n2) || ids[1] != maxID(n1, n2) {
		t.Errorf("SortedNodeIDs = %v, want ascending [%d %d]", ids, n1, n2)
	}
}

func minID(a, b NodeID) NodeID {
	if a < b {
		return a
	}
	return b
}
func maxID(a, b NodeID) NodeID {
	if a > b {
		return a
	}
	return b
}

func TestJSONRoundTripFixedPoint(t *testing.T) {
	s, _, _, _ := simplySupportedBeamStore(t)
	buf1, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("first marshal: %v", err)
	}
	s2 := NewStore()
	if err := json.Unmarshal(buf1, s2); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	buf2, err := json.Marshal(s2)
	if err != nil {
		t.Fatalf("second marshal: %v", err)
	}
	if string(buf1) != string(buf2) {
		t.Errorf("serialise->parse->serialise is not a fixed point:\n%s\nvs\n%s", buf1, buf2)
	}
}

func TestInferAnalysisKindTrussWhenFullyHinged(t *testing.T) {
	s, _, _, b := simplySupportedBeamStore(t)
	ends := EndConnection{Start: Hinge, End: Hinge}
	if err := s.UpdateBeam(b, BeamPatch{Ends: &ends}); err != nil {
		t.Fatalf("UpdateBeam: %v", err)
	}
	if got := s.InferAnalysisKind(); got != Truss {
		t.Errorf("InferAnalysisKind = %v, want Truss", got)
	}
}

func TestInferAnalysisKindFrameByDefault(t *testing.T) {
	s, _, _, _ := simplySupportedBeamStore(t)
	if got := s.InferAnalysisKind(); got != Frame {
		t.Errorf("InferAnalysisKind = %v, want Frame", got)
	}
}
