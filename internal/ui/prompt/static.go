package prompt

import (
	"io"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/clack/internal/ui/theme"
)

// The functions below print one themed frame and return. Colours are
// downsampled to what w supports, so plain writers get plain text.

// Intro prints the opening line of a prompt session.
func Intro(w io.Writer, title string) error {
	return write(w, theme.Current().FormatIntro(title))
}

// Outro prints the closing line of a prompt session.
func Outro(w io.Writer, message string) error {
	return write(w, theme.Current().FormatOutro(message))
}

// OutroCancel prints the closing line of a cancelled session.
func OutroCancel(w io.Writer, message string) error {
	return write(w, theme.Current().FormatOutroCancel(message))
}

// Note prints message in a box titled prompt.
func Note(w io.Writer, prompt, message string) error {
	return write(w, theme.Current().FormatNote(prompt, message))
}

// LogMessage prints text prefixed with a plain bar.
func LogMessage(w io.Writer, text string) error {
	th := theme.Current()
	return write(w, th.FormatLog(text, th.BarSymbol()))
}

func LogInfo(w io.Writer, text string) error {
	th := theme.Current()
	return write(w, th.FormatLog(text, th.InfoSymbol()))
}

func LogWarning(w io.Writer, text string) error {
	th := theme.Current()
	return write(w, th.FormatLog(text, th.WarningSymbol()))
}

func LogError(w io.Writer, text string) error {
	th := theme.Current()
	return write(w, th.FormatLog(text, th.ErrorSymbol()))
}

func LogSuccess(w io.Writer, text string) error {
	th := theme.Current()
	return write(w, th.FormatLog(text, th.SubmitSymbol()))
}

func LogStep(w io.Writer, text string) error {
	th := theme.Current()
	return write(w, th.FormatLog(text, th.ActiveSymbol()))
}

func LogRemark(w io.Writer, text string) error {
	th := theme.Current()
	return write(w, th.FormatLog(text, th.RemarkSymbol()))
}

func write(w io.Writer, frame string) error {
	_, err := lipgloss.Fprint(w, frame)
	return err
}
