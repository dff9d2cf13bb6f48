// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/catalog"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/fem"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/loadcase"
	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/mesh"
)

func simplySupportedResult(t *testing.T) (*fem.Result, mesh.BeamID) {
	t.Helper()
	L := 6.0
	m := mesh.NewStore()
	matID, err := m.AddMaterial(catalog.DefaultMaterial)
	if err != nil {
		t.Fatalf("AddMaterial: %v", err)
	}
	n1, _ := m.AddNode(0, 0)
	n2, _ := m.AddNode(L, 0)
	if err := m.SetSupport(n1, true, true, false); err != nil {
		t.Fatalf("SetSupport: %v", err)
	}
	if err := m.SetSupport(n2, false, true, false); err != nil {
		t.Fatalf("SetSupport: %v", err)
	}
	sec := catalog.DefaultSections["IPE 200"]
	beamID, err := m.AddBeam(n1, n2, matID, sec, "IPE 200")
	if err != nil {
		t.Fatalf("AddBeam: %v", err)
	}

	c := loadcase.NewCase(loadcase.Live)
	c.AddPointLoad(loadcase.BeamTarget(beamID, 0.5), 0, -10000, 0)

	res, err := fem.Solve(m, []*loadcase.Case{c}, nil, fem.Options{})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	return res, beamID
}

func TestReportSummaryListsEachBeam(t *testing.T) {
	res, beamID := simplySupportedResult(t)
	r := NewReport(res)
	if len(r.BeamIDs) != 1 || r.BeamIDs[0] != beamID {
		t.Fatalf("BeamIDs = %v, want [%v]", r.BeamIDs, beamID)
	}
	summary := r.Summary()
	if !strings.Contains(summary, "analysis kind:") {
		t.Errorf("Summary() missing analysis kind line:\n%s", summary)
	}
	if !strings.Contains(summary, "beam") {
		t.Errorf("Summary() missing beam line:\n%s", summary)
	}
}

func TestReportStringIsValidLookingJSON(t *testing.T) {
	res, _ := simplySupportedResult(t)
	s := NewReport(res).String()
	if !strings.HasPrefix(s, "{\n") || !strings.HasSuffix(s, "}") {
		t.Errorf("String() does not look like a JSON object:\n%s", s)
	}
	if !strings.Contains(s, "\"beams\"") {
		t.Errorf("String() missing beams array:\n%s", s)
	}
}

func TestASCIIBeamDiagramRendersAllThreeKinds(t *testing.T) {
	res, beamID := simplySupportedResult(t)
	bf := res.BeamForces[beamID]
	for _, kind := range []Diagram{DiagramN, DiagramV, DiagramM} {
		chart := ASCIIBeamDiagram(beamID, bf, kind)
		if chart == "" {
			t.Errorf("ASCIIBeamDiagram(%v) returned empty string", kind)
		}
	}
	all := ASCIIAllDiagrams(beamID, bf)
	if !strings.Contains(all, "N diagram") || !strings.Contains(all, "M diagram") {
		t.Errorf("ASCIIAllDiagrams missing expected captions:\n%s", all)
	}
}

func TestSaveBeamDiagramPNGWritesFile(t *testing.T) {
	res, beamID := simplySupportedResult(t)
	bf := res.BeamForces[beamID]
	path := filepath.Join(t.TempDir(), "moment.png")
	if err := SaveBeamDiagramPNG(int(beamID), bf, DiagramM, path); err != nil {
		t.Fatalf("SaveBeamDiagramPNG: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat output file: %v", err)
	}
	if info.Size() == 0 {
		t.Errorf("output PNG is empty")
	}
}
