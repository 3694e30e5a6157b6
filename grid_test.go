package beeclust

import (
	"errors"
	"testing"
)

func TestNewGrid_Shape(t *testing.T) {
	g, err := NewGrid([][]int{{0, 1}, {2, 3}, {4, 5}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows, cols := g.Shape()
	if rows != 3 || cols != 2 {
		t.Fatalf("expected shape (3,2), got (%d,%d)", rows, cols)
	}
	if g.At(1, 1) != Cell(3) {
		t.Fatalf("expected At(1,1) == 3, got %d", g.At(1, 1))
	}
}

func TestNewGrid_RejectsEmpty(t *testing.T) {
	if _, err := NewGrid(nil); err == nil {
		t.Fatal("expected error for empty grid")
	}
	if _, err := NewGrid([][]int{}); err == nil {
		t.Fatal("expected error for zero-row grid")
	}
	if _, err := NewGrid([][]int{{}}); err == nil {
		t.Fatal("expected error for zero-column grid")
	}
}

func TestNewGrid_RejectsRagged(t *testing.T) {
	_, err := NewGrid([][]int{{0, 0}, {0, 0, 0}})
	if err == nil {
		t.Fatal("expected error for ragged grid")
	}
	var ve *ValueError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValueError, got %T: %v", err, err)
	}
}

func TestCell_IsBee(t *testing.T) {
	cases := map[Cell]bool{
		CellEmpty:   false,
		CellNorth:   true,
		CellEast:    true,
		CellSouth:   true,
		CellWest:    true,
		CellWall:    false,
		CellHeater:  false,
		CellCooler:  false,
		CellUnknown: true,
		Cell(-5):    true,
	}
	for v, want := range cases {
		if got := v.IsBee(); got != want {
			t.Errorf("Cell(%d).IsBee() = %v, want %v", v, got, want)
		}
	}
}

func TestCell_Direction(t *testing.T) {
	cases := []struct {
		v      Cell
		dr, dc int
	}{
		{CellNorth, -1, 0},
		{CellEast, 0, 1},
		{CellSouth, 1, 0},
		{CellWest, 0, -1},
	}
	for _, tc := range cases {
		dr, dc := tc.v.Direction()
		if dr != tc.dr || dc != tc.dc {
			t.Errorf("Cell(%d).Direction() = (%d,%d), want (%d,%d)", tc.v, dr, dc, tc.dr, tc.dc)
		}
	}
}

func TestGrid_CloneIsIndependent(t *testing.T) {
	g, _ := NewGrid([][]int{{0, 0}, {0, 0}})
	clone := g.Clone()
	clone.Set(0, 0, CellWall)
	if g.At(0, 0) == CellWall {
		t.Fatal("mutating clone affected original grid")
	}
	if !g.Equal(g.Clone()) {
		t.Fatal("a grid should equal its own clone")
	}
	if g.Equal(clone) {
		t.Fatal("grids with different contents should not be equal")
	}
}
