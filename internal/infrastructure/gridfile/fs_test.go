package gridfile

import (
	"path/filepath"
	"testing"

	"github.com/gridden/sudoku/internal/domain"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	var g domain.Grid
	g[0][0], g[4][4], g[8][8] = 5, 1, 9

	path := filepath.Join(t.TempDir(), "puzzle.txt")
	if err := Save(path, g); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != g {
		t.Fatalf("round trip changed the grid:\ngot  %v\nwant %v", got.Rows(), g.Rows())
	}
}

func TestParseSkipsCommentsAndBlanks(t *testing.T) {
	text := "# sample puzzle\n\n53..7....\n6..195...\n.98....6.\n8...6...3\n4..8.3..1\n7...2...6\n\n.6....28.\n...419..5\n....8..79\n"
	g, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if g[0][0] != 5 || g[8][8] != 9 {
		t.Fatalf("unexpected cells: %v", g.Rows())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("Load of a missing file succeeded")
	}
}
