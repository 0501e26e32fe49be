package static

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderTable(t *testing.T) {
	t.Parallel()

	t.Run("no rows", func(t *testing.T) {
		t.Parallel()
		if got := RenderTable([]string{"NAME"}, nil); got != "" {
			t.Errorf("RenderTable() = %q, want empty", got)
		}
	})

	t.Run("aligned columns", func(t *testing.T) {
		t.Parallel()
		got := ansi.Strip(RenderTable(
			[]string{"NAME", "VARIANTS"},
			[][]string{
				{"default", "light, dark"},
				{"nord", "light, dark"},
				{"dracula", "dark"},
			},
		))

		lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
		if len(lines) != 4 {
			t.Fatalf("got %d lines, want 4:\n%s", len(lines), got)
		}
		col := strings.Index(lines[0], "VARIANTS")
		if col < 0 {
			t.Fatalf("header missing VARIANTS: %q", lines[0])
		}
		for _, line := range lines[1:] {
			if !strings.HasPrefix(line[col:], "light") && !strings.HasPrefix(line[col:], "dark") {
				t.Errorf("row %q not aligned at column %d", line, col)
			}
		}
		if !strings.HasSuffix(got, "\n") {
			t.Error("RenderTable() output should end with a newline")
		}
	})
}
