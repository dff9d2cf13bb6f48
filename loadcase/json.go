// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loadcase

import (
	"encoding/json"
	"strconv"

	"github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/mesh"
)

// wireTarget/wirePointLoad/wireDistributedLoad/wireThermalLoad/wireCase are
// the canonical JSON shapes of spec §6's load-case file, field-named in the
// same snake_case register as mesh's own wire types (mesh/json.go) so a
// model file and its load-case file read like siblings.
type wireTarget struct {
	Node   uint32  `json:"node,omitempty"`
	Beam   uint32  `json:"beam,omitempty"`
	T      float64 `json:"t,omitempty"`
	OnBeam bool    `json:"on_beam,omitempty"`
}

func (t Target) toWire() wireTarget {
	return wireTarget{Node: uint32(t.Node), Beam: uint32(t.Beam), T: t.T, OnBeam: t.OnBeam}
}

func (w wireTarget) toTarget() Target {
	return Target{Node: mesh.NodeID(w.Node), Beam: mesh.BeamID(w.Beam), T: w.T, OnBeam: w.OnBeam}
}

type wirePointLoad struct {
	Target wireTarget `json:"target"`
	Fx     float64    `json:"fx,omitempty"`
	Fy     float64    `json:"fy,omitempty"`
	Mz     float64    `json:"mz,omitempty"`
}

type wireDistributedLoad struct {
	Beam    uint32   `json:"beam"`
	QyStart float64  `json:"qy_start"`
	QyEnd   *float64 `json:"qy_end,omitempty"`
	QxStart float64  `json:"qx_start,omitempty"`
	QxEnd   float64  `json:"qx_end,omitempty"`
	T0      float64  `json:"t0,omitempty"`
	T1      float64  `json:"t1"`
	Frame   string   `json:"frame,omitempty"`
}

type wireThermalLoad struct {
	Beam       uint32  `json:"beam"`
	DeltaT     float64 `json:"delta_t,omitempty"`
	DeltaTGrad float64 `json:"delta_t_grad,omitempty"`
}

type wireCase struct {
	ID                uint32                `json:"id"`
	Kind              string                `json:"kind"`
	PointLoads        []wirePointLoad       `json:"point_loads,omitempty"`
	DistributedLoads  []wireDistributedLoad `json:"distributed_loads,omitempty"`
	ThermalLoads      []wireThermalLoad     `json:"thermal_loads,omitempty"`
	IncludeSelfWeight bool                  `json:"include_self_weight,omitempty"`
}

func kindToString(k CaseType) string {
	switch k {
	case Live:
		return "live"
	case Wind:
		return "wind"
	case Snow:
		return "snow"
	case Other:
		return "other"
	default:
		return "dead"
	}
}

func stringToKind(s string) CaseType {
	switch s {
	case "live":
		return Live
	case "wind":
		return Wind
	case "snow":
		return Snow
	case "other":
		return Other
	default:
		return Dead
	}
}

func frameToString(f Frame) string {
	if f == Global {
		return "global"
	}
	return "local"
}

func stringToFrame(s string) Frame {
	if s == "global" {
		return Global
	}
	return Local
}

// MarshalJSON serialises the case to the canonical shape of spec §6.
func (c *Case) MarshalJSON() ([]byte, error) {
	w := wireCase{ID: uint32(c.ID), Kind: kindToString(c.Kind), IncludeSelfWeight: c.IncludeSelfWeight}
	for _, p := range c.PointLoads {
		w.PointLoads = append(w.PointLoads, wirePointLoad{Target: p.Target.toWire(), Fx: p.Fx, Fy: p.Fy, Mz: p.Mz})
	}
	for _, d := range c.DistributedLoads {
		w.DistributedLoads = append(w.DistributedLoads, wireDistributedLoad{
			Beam: uint32(d.Beam), QyStart: d.QyStart, QyEnd: d.QyEnd,
			QxStart: d.QxStart, QxEnd: d.QxEnd, T0: d.T0, T1: d.T1, Frame: frameToString(d.Frame),
		})
	}
	for _, th := range c.ThermalLoads {
		w.ThermalLoads = append(w.ThermalLoads, wireThermalLoad{Beam: uint32(th.Beam), DeltaT: th.DeltaT, DeltaTGrad: th.DeltaTGrad})
	}
	return json.Marshal(w)
}

// UnmarshalJSON rebuilds a case from the canonical shape of spec §6.
func (c *Case) UnmarshalJSON(data []byte) error {
	var w wireCase
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	c.ID = LoadCaseID(w.ID)
	c.Kind = stringToKind(w.Kind)
	c.IncludeSelfWeight = w.IncludeSelfWeight
	c.PointLoads = nil
	for _, p := range w.PointLoads {
		c.PointLoads = append(c.PointLoads, PointLoad{Target: p.Target.toTarget(), Fx: p.Fx, Fy: p.Fy, Mz: p.Mz})
	}
	c.DistributedLoads = nil
	for _, d := range w.DistributedLoads {
		c.DistributedLoads = append(c.DistributedLoads, DistributedLoad{
			Beam: mesh.BeamID(d.Beam), QyStart: d.QyStart, QyEnd: d.QyEnd,
			QxStart: d.QxStart, QxEnd: d.QxEnd, T0: d.T0, T1: d.T1, Frame: stringToFrame(d.Frame),
		})
	}
	c.ThermalLoads = nil
	for _, th := range w.ThermalLoads {
		c.ThermalLoads = append(c.ThermalLoads, ThermalLoad{Beam: mesh.BeamID(th.Beam), DeltaT: th.DeltaT, DeltaTGrad: th.DeltaTGrad})
	}
	return nil
}

// wireCombination/wireFile are the canonical shapes for a load-case file
// holding every case plus its combinations in one document (spec §6).
type wireCombination struct {
	Kind    string             `json:"kind"`
	Factors map[string]float64 `json:"factors"`
}

func combKindToString(k CombinationType) string {
	if k == SLS {
		return "sls"
	}
	return "uls"
}

func stringToCombKind(s string) CombinationType {
	if s == "sls" {
		return SLS
	}
	return ULS
}

// File is the top-level JSON document loaded/saved by the CLI: every case
// the model needs plus any named combinations over them.
type File struct {
	Cases        []*Case
	Combinations map[string]*Combination
}

type wireFile struct {
	Cases        []*wireCase                 `json:"cases"`
	Combinations map[string]wireCombination  `json:"combinations,omitempty"`
}

// MarshalJSON serialises a File to the canonical shape of spec §6.
func (f *File) MarshalJSON() ([]byte, error) {
	w := wireFile{Combinations: make(map[string]wireCombination, len(f.Combinations))}
	for _, c := range f.Cases {
		raw, err := c.MarshalJSON()
		if err != nil {
			return nil, err
		}
		var wc wireCase
		if err := json.Unmarshal(raw, &wc); err != nil {
			return nil, err
		}
		w.Cases = append(w.Cases, &wc)
	}
	for name, comb := range f.Combinations {
		factors := make(map[string]float64, len(comb.Factors))
		for id, v := range comb.Factors {
			factors[idToKey(id)] = v
		}
		w.Combinations[name] = wireCombination{Kind: combKindToString(comb.Kind), Factors: factors}
	}
	return json.Marshal(w)
}

// UnmarshalJSON rebuilds a File from the canonical shape of spec §6.
func (f *File) UnmarshalJSON(data []byte) error {
	var w wireFile
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	f.Cases = nil
	for _, wc := range w.Cases {
		raw, err := json.Marshal(wc)
		if err != nil {
			return err
		}
		c := &Case{}
		if err := c.UnmarshalJSON(raw); err != nil {
			return err
		}
		f.Cases = append(f.Cases, c)
	}
	f.Combinations = make(map[string]*Combination, len(w.Combinations))
	for name, wc := range w.Combinations {
		factors := make(map[LoadCaseID]float64, len(wc.Factors))
		for key, v := range wc.Factors {
			factors[keyToID(key)] = v
		}
		f.Combinations[name] = NewCombination(stringToCombKind(wc.Kind), factors)
	}
	return nil
}

func idToKey(id LoadCaseID) string {
	return strconv.FormatUint(uint64(id), 10)
}

func keyToID(key string) LoadCaseID {
	v, _ := strconv.ParseUint(key, 10, 32)
	return LoadCaseID(v)
}
