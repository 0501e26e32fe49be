package prompt

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestStaticOutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		write func(w io.Writer) error
		want  string
	}{
		{"intro", func(w io.Writer) error { return Intro(w, "create-app") }, "┌  create-app\n│\n"},
		{"outro", func(w io.Writer) error { return Outro(w, "You're all set!") }, "└  You're all set!\n"},
		{"outro cancel", func(w io.Writer) error { return OutroCancel(w, "Bye") }, "└  Bye\n"},
		{"info", func(w io.Writer) error { return LogInfo(w, "hello") }, "●  hello\n│  \n"},
		{"warning", func(w io.Writer) error { return LogWarning(w, "careful") }, "▲  careful\n│  \n"},
		{"error", func(w io.Writer) error { return LogError(w, "failed") }, "■  failed\n│  \n"},
		{"success", func(w io.Writer) error { return LogSuccess(w, "done") }, "◇  done\n│  \n"},
		{"step", func(w io.Writer) error { return LogStep(w, "next") }, "◆  next\n│  \n"},
		{"remark", func(w io.Writer) error { return LogRemark(w, "fyi") }, "├  fyi\n│  \n"},
		{"message", func(w io.Writer) error { return LogMessage(w, "a\nb") }, "│  a\n│  b\n│  \n"},
		{"note", func(w io.Writer) error { return Note(w, "Hi", "abc") }, "◇  Hi ───╮\n│        │\n│  abc   │\n│        │\n├────────╯\n│\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := tt.write(&buf); err != nil {
				t.Fatalf("write: %v", err)
			}
			if got := ansi.Strip(buf.String()); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}
