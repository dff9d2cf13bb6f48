package catalog

import "testing"

const sampleCatalogJSON = `[
  { "HEA 200": [ { "shape_coords": [0.190, 0.200, 0.0065, 0.0100, 0.018], "shape_name": "i-parallel-flange", "synonyms": ["HE 200 A", "HEA200"] } ] },
  { "IPE 200": [ { "shape_coords": [0.200, 0.100, 0.0056, 0.0085, 0.012], "shape_name": "i-parallel-flange", "synonyms": ["IPE200"] } ] }
]`

func TestLoadAndFindByNameAndSynonym(t *testing.T) {
	db, err := Load([]byte(sampleCatalogJSON))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	byName, ok := db.Find("HEA 200")
	if !ok {
		t.Fatal("expected to find HEA 200 by canonical name")
	}
	bySyn, ok := db.Find("HE 200 A")
	if !ok {
		t.Fatal("expected to find HEA 200 by synonym")
	}
	if byName != bySyn {
		t.Errorf("name and synonym lookups returned different entries")
	}
}

func TestFindUnknownProfile(t *testing.T) {
	db, err := Load([]byte(sampleCatalogJSON))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := db.Find("UB 610x229x101"); ok {
		t.Fatal("expected unknown profile to miss")
	}
}

func TestAscendingByISorted(t *testing.T) {
	db, err := Load([]byte(sampleCatalogJSON))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	profiles := db.AscendingByI("")
	for i := 1; i < len(profiles); i++ {
		if profiles[i].Section.Iy < profiles[i-1].Section.Iy {
			t.Errorf("profiles not sorted ascending by Iy: %v", profiles)
		}
	}
}

func TestFindGradeKnownAndUnknown(t *testing.T) {
	g, ok := FindGrade("S235")
	if !ok || g.Fy != 235e6 {
		t.Fatalf("S235 lookup failed: %+v, %v", g, ok)
	}
	if _, ok := FindGrade("S999"); ok {
		t.Fatal("expected unknown grade to miss")
	}
}

func TestShearAreaFallback(t *testing.T) {
	s := Section{A: 1.0}
	if got := s.ShearArea(); got != 0.6 {
		t.Errorf("ShearArea fallback = %v, want 0.6", got)
	}
}
