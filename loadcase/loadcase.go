// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package loadcase implements spec component C4: load cases and
// combinations as descriptor data. A case only records what was asked for
// (point/distributed/thermal loads, targeted at a node or a beam); turning
// those descriptors into a per-DOF global force vector and per-beam
// equivalent-load vectors is package fem's job (it alone knows the DOF
// indexing), consuming the element math of package ele — matching spec
// §2's stated data flow ("C4 emits a flat per-DOF load vector plus
// per-beam consistent-load descriptors → C6 assembles from C5 and
// solves").
package loadcase

import "github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/mesh"

// CaseType tags a load case's origin, used only for reporting/filtering —
// it has no effect on how a case is applied.
type CaseType int

const (
	Dead CaseType = iota
	Live
	Wind
	Snow
	Other
)

// LoadCaseID identifies a Case inside a Combination's factor map.
type LoadCaseID uint32

// Frame selects whether a distributed load's components are given in the
// beam's local frame or the global frame (spec §3).
type Frame int

const (
	Local Frame = iota
	Global
)

// Target is either a node or a fractional position along a beam.
type Target struct {
	Node    mesh.NodeID
	Beam    mesh.BeamID
	T       float64 // fractional position along Beam, 0..1; ignored unless OnBeam
	OnBeam  bool
}

// NodeTarget builds a Target pointing at a node.
func NodeTarget(id mesh.NodeID) Target { return Target{Node: id} }

// BeamTarget builds a Target pointing at a fractional position on a beam.
func BeamTarget(id mesh.BeamID, t float64) Target { return Target{Beam: id, T: t, OnBeam: true} }

// PointLoad is a concentrated load at a node, or at a fractional position
// along a beam (spec §3).
type PointLoad struct {
	Target Target
	Fx, Fy, Mz float64
}

// DistributedLoad is a (possibly trapezoidal, possibly partial-range)
// transverse/axial load on a beam, expressed in local or global frame
// (spec §3/§4.1).
type DistributedLoad struct {
	Beam           mesh.BeamID
	QyStart        float64
	QyEnd          *float64 // nil => uniform, equal to QyStart
	QxStart, QxEnd float64
	T0, T1         float64
	Frame          Frame
}

// ThermalLoad is a uniform or gradient temperature change applied to a
// beam, contributing an initial-strain fixed-end force vector (spec §4.3).
type ThermalLoad struct {
	Beam         mesh.BeamID
	DeltaT       float64 // uniform temperature change, K
	DeltaTGrad   float64 // through-depth gradient, K/m
}

// Case is one load case: a bag of point/distributed/thermal loads plus an
// opt-in automatic self-weight contribution (SPEC_FULL.md §4 supplement).
type Case struct {
	ID                LoadCaseID
	Kind              CaseType
	PointLoads        []PointLoad
	DistributedLoads  []DistributedLoad
	ThermalLoads      []ThermalLoad
	IncludeSelfWeight bool
}

// NewCase returns an empty case of the given kind.
func NewCase(kind CaseType) *Case { return &Case{Kind: kind} }

// AddPointLoad appends a point load to the case.
func (c *Case) AddPointLoad(target Target, fx, fy, mz float64) {
	c.PointLoads = append(c.PointLoads, PointLoad{Target: target, Fx: fx, Fy: fy, Mz: mz})
}

// AddDistributedLoad appends a (possibly trapezoidal, possibly partial)
// transverse distributed load to the case.
func (c *Case) AddDistributedLoad(beam mesh.BeamID, qYStart float64, qYEnd *float64, tStart, tEnd float64, frame Frame) {
	c.DistributedLoads = append(c.DistributedLoads, DistributedLoad{
		Beam: beam, QyStart: qYStart, QyEnd: qYEnd, T0: tStart, T1: tEnd, Frame: frame,
	})
}

// AddThermalLoad appends a thermal load to the case.
func (c *Case) AddThermalLoad(beam mesh.BeamID, deltaT, deltaTGrad float64) {
	c.ThermalLoads = append(c.ThermalLoads, ThermalLoad{Beam: beam, DeltaT: deltaT, DeltaTGrad: deltaTGrad})
}

// CombinationType distinguishes ultimate from serviceability combinations
// (spec §3/§4.6).
type CombinationType int

const (
	ULS CombinationType = iota
	SLS
)

// Combination is a named linear combination of load case factors.
type Combination struct {
	Kind    CombinationType
	Factors map[LoadCaseID]float64
}

// NewCombination builds a combination from a load-case-id → factor map.
func NewCombination(kind CombinationType, factors map[LoadCaseID]float64) *Combination {
	cp := make(map[LoadCaseID]float64, len(factors))
	for k, v := range factors {
		cp[k] = v
	}
	return &Combination{Kind: kind, Factors: cp}
}
