package errs

import "testing"

func TestKindString(t *testing.T) {
	cases := []struct {
		k    Kind
		want string
	}{
		{InvalidInput, "InvalidInput"},
		{MechanismDetected, "MechanismDetected"},
		{IncompatibleReleases, "IncompatibleReleases"},
		{CatalogMiss, "CatalogMiss"},
		{ContactNonconvergent, "ContactNonconvergent"},
		{NumericalWarning, "NumericalWarning"},
	}
	for _, c := range cases {
		if got := c.k.String(); got != c.want {
			t.Errorf("Kind(%d).String() = %q, want %q", c.k, got, c.want)
		}
	}
}

func TestMechanismCarriesRank(t *testing.T) {
	err := Mechanism(17, "zero pivot at rank %d", 17)
	if !Is(err, MechanismDetected) {
		t.Fatalf("expected MechanismDetected kind")
	}
	var e *E
	if !As(err, &e) {
		t.Fatalf("expected *E")
	}
	if e.Rank != 17 {
		t.Errorf("Rank = %d, want 17", e.Rank)
	}
}

func As(err error, target **E) bool {
	e, ok := err.(*E)
	if !ok {
		return false
	}
	*target = e
	return true
}
