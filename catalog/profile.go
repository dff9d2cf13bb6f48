// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"encoding/json"
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// rawEntry is one shape record inside a catalog profile's array, matching
// the wire format of spec §6: `{ "shape_coords": [...], "shape_name":
// "...", "synonyms": [...] }`.
type rawEntry struct {
	ShapeCoords []float64 `json:"shape_coords"`
	ShapeName   string    `json:"shape_name"`
	Synonyms    []string  `json:"synonyms"`
}

// Profile is a resolved catalog entry with derived Section properties, kept
// alongside the raw shape data for traceability.
type Profile struct {
	Name      string
	ShapeName string
	Synonyms  []string
	Section   Section
}

// DB is the process-wide, read-only, loaded-once steel-profile catalog
// (spec §5: "the steel-profile catalog is process-wide read-only").
type DB struct {
	profiles []*Profile
	byName   map[string]*Profile
}

// Load parses the catalog JSON file of spec §6: a list of single-key
// objects, each key a canonical profile name mapping to an array of shape
// records (almost always length 1). Uses stdlib encoding/json, matching
// the teacher's own inp package (no third-party JSON library appears
// anywhere in the retrieved pack).
func Load(data []byte) (*DB, error) {
	var raw []map[string][]rawEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, chk.Err("cannot parse profile catalog: %v", err)
	}
	db := &DB{byName: make(map[string]*Profile)}
	for _, obj := range raw {
		for name, entries := range obj {
			if len(entries) == 0 {
				continue
			}
			e := entries[0]
			for _, v := range e.ShapeCoords {
				if !finite(v) {
					return nil, chk.Err("profile %q: non-finite shape coordinate %v", name, e.ShapeCoords)
				}
			}
			sec, err := shapeToSection(e.ShapeName, e.ShapeCoords)
			if err != nil {
				return nil, chk.Err("profile %q: %v", name, err)
			}
			p := &Profile{Name: name, ShapeName: e.ShapeName, Synonyms: e.Synonyms, Section: sec}
			db.profiles = append(db.profiles, p)
			db.byName[name] = p
			for _, syn := range e.Synonyms {
				db.byName[syn] = p
			}
		}
	}
	sort.Slice(db.profiles, func(i, j int) bool {
		return db.profiles[i].Section.Iy < db.profiles[j].Section.Iy
	})
	return db, nil
}

// shapeToSection derives Section properties from a shape_coords array,
// keyed by shape_name per spec §6. "i-parallel-flange" is [h, b, t_w, t_f, r].
func shapeToSection(shapeName string, c []float64) (Section, error) {
	switch shapeName {
	case "i-parallel-flange", "I", "i-beam":
		if len(c) < 4 {
			return Section{}, chk.Err("i-parallel-flange shape needs [h,b,t_w,t_f,r], got %v", c)
		}
		h, b, tw, tf := c[0], c[1], c[2], c[3]
		r := 0.0
		if len(c) > 4 {
			r = c[4]
		}
		return iSectionProps(h, b, tw, tf, r), nil
	case "rectangle", "solid-rectangle":
		if len(c) < 2 {
			return Section{}, chk.Err("rectangle shape needs [h,b], got %v", c)
		}
		h, b := c[0], c[1]
		return rectSectionProps(h, b), nil
	default:
		return Section{}, chk.Err("unknown shape_name %q", shapeName)
	}
}

// iSectionProps computes A, Iy, Iz, Wel, Wpl for a doubly-symmetric
// parallel-flange I-section from its outer dimensions.
func iSectionProps(h, b, tw, tf, r float64) Section {
	hw := h - 2*tf
	a := b*h - hw*tw // ignores root-fillet area for a closed-form estimate
	// strong-axis second moment via outer-rectangle minus two web-side voids
	iy := b*h*h*h/12 - (b-tw)*hw*hw*hw/12
	iz := 2*tf*b*b*b/12 + hw*tw*tw*tw/12
	wely := iy / (h / 2)
	welz := iz / (b / 2)
	// plastic moduli for a doubly symmetric I: standard closed form
	wply := tw*hw*hw/4 + b*tf*(h-tf)
	wplz := tf*b*b/2 + hw*tw*tw/4
	return Section{A: a, Iy: iy, Iz: iz, WelY: wely, WelZ: welz, WplY: wply, WplZ: wplz, H: h, B: b, Tw: tw, Tf: tf, Root: r}
}

func rectSectionProps(h, b float64) Section {
	a := h * b
	iy := b * h * h * h / 12
	iz := h * b * b * b / 12
	return Section{A: a, Iy: iy, Iz: iz, WelY: iy / (h / 2), WelZ: iz / (b / 2), WplY: b * h * h / 4, WplZ: h * b * b / 4, H: h, B: b}
}

// Find resolves a profile by canonical name or synonym (testable property
//6: find_profile(name) and find_profile(synonym) return the same entry).
func (db *DB) Find(name string) (*Profile, bool) {
	p, ok := db.byName[name]
	return p, ok
}

// AscendingByI returns all profiles sorted ascending by I_y, optionally
// filtered to a series prefix (e.g. "IPE") and restarted lazily by the
// caller via a plain index — the optimizer drives this with an explicit
// cursor rather than buffering transformed copies (spec §9 "lazy iteration
// over profile catalog").
func (db *DB) AscendingByI(seriesPrefix string) []*Profile {
	if seriesPrefix == "" {
		return db.profiles
	}
	var out []*Profile
	for _, p := range db.profiles {
		if hasPrefix(p.Name, seriesPrefix) {
			out = append(out, p)
		}
	}
	return out
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

// finite reports whether a shape coordinate is a finite number.
func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
