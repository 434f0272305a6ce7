package rules

import "testing"

func TestValidateGrowth(t *testing.T) {
	cases := []struct {
		name                  string
		lengthGain, girthGain int
		wantErr               bool
	}{
		{"both positive", 2, 3, false},
		{"both zero", 0, 0, false},
		{"negative length gain", -1, 0, true},
		{"negative girth gain", 0, -1, true},
	}

	for _, c := range cases {
		err := ValidateGrowth(c.lengthGain, c.girthGain)
		if c.wantErr && err == nil {
			t.Errorf("%s: expected an error, got nil", c.name)
		}
		if !c.wantErr && err != nil {
			t.Errorf("%s: expected nil, got %v", c.name, err)
		}
	}
}

func TestNextColorIndexWraps(t *testing.T) {
	cases := []struct {
		current, cycleLen, want int
	}{
		{0, 4, 1},
		{2, 4, 3},
		{3, 4, 0}, // wraparound
		{0, 1, 0},
		{5, 0, 0}, // degenerate cycle
	}

	for _, c := range cases {
		if got := NextColorIndex(c.current, c.cycleLen); got != c.want {
			t.Errorf("NextColorIndex(%d, %d): expected %d, got %d", c.current, c.cycleLen, c.want, got)
		}
	}
}

func TestColorIndexAfter(t *testing.T) {
	// Starting at index 1 of a 4-cycle, 7 feeds land on index 0.
	if got := ColorIndexAfter(1, 7, 4); got != 0 {
		t.Errorf("expected index 0, got %d", got)
	}
	// A full cycle returns to the start.
	if got := ColorIndexAfter(2, 4, 4); got != 2 {
		t.Errorf("expected index 2, got %d", got)
	}
	// Walking backwards still lands on a valid index.
	if got := ColorIndexAfter(0, -3, 4); got != 1 {
		t.Errorf("expected index 1, got %d", got)
	}
}

func TestProjectGrowth(t *testing.T) {
	length, girth := ProjectGrowth(5, 2, 4, 1, 1)
	if length != 9 || girth != 6 {
		t.Errorf("expected 9/6, got %d/%d", length, girth)
	}

	length, girth = ProjectGrowth(5, 2, 0, 3, 3)
	if length != 5 || girth != 2 {
		t.Errorf("zero feeds should not grow: got %d/%d", length, girth)
	}
}
