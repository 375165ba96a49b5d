package gridfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/gridden/sudoku/internal/domain"
)

// Load reads a grid from a dot-encoded text file: nine lines of nine
// cells, digits '1'..'9' or '.'. Blank lines and '#' comment lines are
// ignored.
func Load(path string) (domain.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Grid{}, err
	}
	g, err := Parse(string(data))
	if err != nil {
		return domain.Grid{}, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Parse decodes dot-grid text, skipping blank and comment lines.
func Parse(text string) (domain.Grid, error) {
	rows := make([]string, 0, 9)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, line)
	}
	return domain.ParseRows(rows)
}

// Save writes the grid to path in the same encoding.
func Save(path string, g domain.Grid) error {
	return os.WriteFile(path, []byte(strings.Join(g.Rows(), "\n")+"\n"), 0o644)
}
