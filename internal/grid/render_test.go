package grid

import "testing"

func TestRender(t *testing.T) {
	g, err := NewGrid(referenceValues)
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}

	expected := "" +
		". . . . . G \n" +
		". . X X X X \n" +
		". . . . . . \n" +
		". . . . . . \n" +
		". . . . . . \n" +
		"X X . . X X \n" +
		"S . . . . . \n"

	if got := Render(g); got != expected {
		t.Errorf("Render() mismatch:\nexpected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestRenderRoundTrip(t *testing.T) {
	g, _ := NewGrid(referenceValues)
	marked := g.MarkPath([]Coord{C(6, 0), C(6, 1)})

	parsed := MustParse(Render(marked))
	if !parsed.Equal(marked) {
		t.Errorf("ParseRows(Render(g)) differs:\n%s", Render(parsed))
	}
}

func TestParseRowsRejectsUnknownCharacter(t *testing.T) {
	if _, err := ParseRows([]string{". ?"}); err == nil {
		t.Error("expected error for unknown character")
	}
}

func TestFormatPath(t *testing.T) {
	tests := []struct {
		name     string
		path     []Coord
		expected string
	}{
		{"empty", nil, ""},
		{"single", []Coord{C(2, 3)}, "(2, 3) "},
		{"several", []Coord{C(6, 0), C(6, 1), C(5, 1)}, "(6, 0) (6, 1) (5, 1) "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatPath(tc.path); got != tc.expected {
				t.Errorf("FormatPath() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestCoordDistances(t *testing.T) {
	a, b := C(6, 0), C(0, 5)
	if got := a.Manhattan(b); got != 11 {
		t.Errorf("Manhattan() = %d, expected 11", got)
	}
	if got := a.Chebyshev(b); got != 6 {
		t.Errorf("Chebyshev() = %d, expected 6", got)
	}
	if a.String() != "(6, 0)" {
		t.Errorf("String() = %q", a.String())
	}
}
