package theme

import (
	"sync"

	"github.com/raphi011/clack/internal/config"
	"github.com/raphi011/clack/internal/ui/cursor"
	"github.com/raphi011/clack/internal/ui/styles"
)

// Theme renders the visual elements of prompts. All methods are pure:
// the same arguments always produce the same string.
type Theme interface {
	// FormatHeader renders the first line of a prompt (`◇  Input data`).
	FormatHeader(st State, prompt string) string
	// FormatFooter renders the last line of a prompt, including the
	// validation error or the cancellation notice.
	FormatFooter(st State) string
	// FormatInput renders the editable text line with its caret.
	FormatInput(st State, buf *cursor.Buffer) string
	// FormatPlaceholder renders placeholder text in place of an empty input.
	FormatPlaceholder(st State, buf *cursor.Buffer) string
	// FormatPassword renders the input line with every codepoint replaced
	// by mask.
	FormatPassword(st State, buf *cursor.Buffer, mask string) string
	// FormatSelectItem renders one row of a select list.
	FormatSelectItem(st State, selected bool, label, hint string) string
	// FormatMultiSelectItem renders one row of a multiselect list; selected
	// means checked, active means under the cursor.
	FormatMultiSelectItem(st State, selected, active bool, label, hint string) string
	// FormatConfirm renders the Yes / No choice.
	FormatConfirm(st State, confirm bool) string

	// FormatIntro renders the opening line of a session (`┌  title`).
	FormatIntro(title string) string
	// FormatOutro renders the closing line of a session (`└  message`).
	FormatOutro(message string) string
	// FormatOutroCancel renders the closing line after a cancellation.
	FormatOutroCancel(message string) string
	// FormatNote renders a boxed, multi-line note.
	FormatNote(prompt, message string) string
	// FormatLog renders a log message prefixed with symbol.
	FormatLog(text, symbol string) string

	// SpinnerFrames returns the spinner animation frames.
	SpinnerFrames() []string
	// FormatSpinnerStart renders a running spinner line for one frame.
	FormatSpinnerStart(frame, message string) string
	// FormatSpinnerStop renders the final line of a successful spinner.
	FormatSpinnerStop(message string) string
	// FormatSpinnerError renders the final line of a failed spinner.
	FormatSpinnerError(message string) string
	// FormatProgress renders a running progress bar line.
	FormatProgress(bar, message string) string

	// PasswordMask returns the default mask glyph for password prompts.
	PasswordMask() string

	BarSymbol() string
	InfoSymbol() string
	WarningSymbol() string
	ErrorSymbol() string
	RemarkSymbol() string
	ActiveSymbol() string
	SubmitSymbol() string
}

var (
	mu      sync.Mutex
	current Theme
)

// Current returns the process-wide theme, initializing it to [Default] on
// first use.
func Current() Theme {
	mu.Lock()
	defer mu.Unlock()

	if current == nil {
		current = Default()
	}
	return current
}

// Set replaces the process-wide theme. A nil theme restores the default.
func Set(t Theme) {
	mu.Lock()
	defer mu.Unlock()

	current = t
}

// Reset restores the default theme.
func Reset() {
	Set(nil)
}

// Default returns the clack theme with the default palette and unicode
// symbols.
func Default() *Clack {
	return NewClack(styles.DefaultPalette, styles.UnicodeSymbols())
}

// FromConfig initializes the shared styles from cfg and returns a clack
// theme drawn with them. A configured password mask replaces the
// symbol set's mask.
func FromConfig(cfg config.Config) *Clack {
	styles.Init(cfg)

	symbols := styles.CurrentSymbols()
	if cfg.Password.Mask != "" {
		symbols.PasswordMask = cfg.Password.Mask
	}
	return NewClack(styles.Current(), symbols)
}
