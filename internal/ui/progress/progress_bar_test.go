package progress

import (
	"bytes"
	"strings"
	"testing"

	"charm.land/bubbles/v2/progress"
	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/clack/internal/ui/styles"
	"github.com/raphi011/clack/internal/ui/theme"
)

var testTheme = theme.NewClack(styles.DefaultPalette, styles.ASCIISymbols())

func TestProgressBar_New(t *testing.T) {
	t.Parallel()

	pb := NewProgressBar(100, "Test message")
	if pb.Total() != 100 {
		t.Errorf("expected total 100, got %d", pb.Total())
	}
}

func TestProgressBar_SetProgressBeforeStart(t *testing.T) {
	t.Parallel()

	pb := NewProgressBar(10, "Test", WithTheme(testTheme))
	pb.SetProgress(5, "Updated")

	m := pb.newModel()
	if m.current != 5 || m.message != "Updated" {
		t.Errorf("model = %d %q, want 5 \"Updated\"", m.current, m.message)
	}
}

func TestProgressBar_StopBeforeStart(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	pb := NewProgressBar(10, "Test", WithOutput(&buf))
	pb.Stop("done")

	if buf.Len() != 0 {
		t.Errorf("Stop without Start wrote %q", buf.String())
	}
}

func TestProgressBarModel_Percent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		total   int
		current int
		want    float64
	}{
		{"half", 10, 5, 0.5},
		{"zero total", 0, 5, 0},
		{"overshoot clamps", 10, 20, 1},
		{"negative clamps", 10, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := progressBarModel{total: tt.total, current: tt.current}
			if got := m.percent(); got != tt.want {
				t.Errorf("percent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProgressBarModel_View(t *testing.T) {
	t.Parallel()

	m := progressBarModel{
		progress: progress.New(progress.WithWidth(10), progress.WithoutPercentage()),
		theme:    testTheme,
		total:    4,
		current:  1,
		message:  "Fetching",
	}

	got := ansi.Strip(testTheme.FormatProgress("x", "y"))
	if got != "|  x y" {
		t.Fatalf("FormatProgress() = %q", got)
	}

	view := ansi.Strip(m.theme.FormatProgress("bar  25%", m.message))
	if !strings.HasPrefix(view, "|  bar  25% Fetching") {
		t.Errorf("view = %q", view)
	}
	_ = m.View()
}

func TestProgressBar_Restart(t *testing.T) {
	t.Parallel()

	var out syncBuffer
	pb := NewProgressBar(2, "Copying", WithOutput(&out), WithTheme(testTheme))

	pb.Start()
	pb.SetProgress(1, "Copying a")
	pb.Stop("Copied a")

	pb.Start()
	pb.SetProgress(2, "Copying b")
	pb.Stop("")

	got := ansi.Strip(out.String())
	for _, want := range []string{"o  Copied a\n", "o  Copying b\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
