package theme

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/clack/internal/ui/cursor"
	"github.com/raphi011/clack/internal/ui/styles"
)

const (
	msgCancelled = "Operation cancelled."
	confirmYes   = "Yes"
	confirmNo    = "No"
)

// Clack is the default theme, drawn after @clack/prompts.
type Clack struct {
	palette styles.Palette
	symbols styles.Symbols
}

var _ Theme = (*Clack)(nil)

// NewClack returns a clack theme drawn with palette p and symbol set s.
func NewClack(p styles.Palette, s styles.Symbols) *Clack {
	return &Clack{palette: p, symbols: s}
}

// Palette returns the colours the theme draws with.
func (c *Clack) Palette() styles.Palette { return c.palette }

// Symbols returns the glyphs the theme draws with.
func (c *Clack) Symbols() styles.Symbols { return c.symbols }

// paint renders s with style, leaving empty strings untouched so no
// dangling escape sequences end up in a frame.
func paint(style lipgloss.Style, s string) string {
	if s == "" {
		return ""
	}
	return style.Render(s)
}

func fg(c color.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

var (
	dim    = lipgloss.NewStyle().Faint(true)
	struck = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	caret  = lipgloss.NewStyle().Reverse(true)
	plain  = lipgloss.NewStyle()
)

func (c *Clack) barColor(st State) color.Color {
	switch st.Status {
	case StatusCancel:
		return c.palette.Error
	case StatusSubmit:
		return c.palette.Muted
	case StatusError:
		return c.palette.Warning
	default:
		return c.palette.Primary
	}
}

func (c *Clack) stateSymbolColor(st State) color.Color {
	if st.Status == StatusSubmit {
		return c.palette.Success
	}
	return c.barColor(st)
}

func (c *Clack) bar(st State) string {
	return paint(fg(c.barColor(st)), c.symbols.Bar)
}

func (c *Clack) stateSymbol(st State) string {
	var sym string
	switch st.Status {
	case StatusCancel:
		sym = c.symbols.StepCancel
	case StatusSubmit:
		sym = c.symbols.StepSubmit
	case StatusError:
		sym = c.symbols.StepError
	default:
		sym = c.symbols.StepActive
	}
	return paint(fg(c.stateSymbolColor(st)), sym)
}

func (c *Clack) radioSymbol(st State, selected bool) string {
	switch {
	case st.Status == StatusActive && selected:
		return paint(fg(c.palette.Success), c.symbols.RadioActive)
	case st.Status == StatusActive:
		return paint(dim, c.symbols.RadioInactive)
	default:
		return ""
	}
}

func (c *Clack) checkboxSymbol(st State, selected, active bool) string {
	switch {
	case st.editable() && selected:
		return paint(fg(c.palette.Success), c.symbols.CheckboxSelected)
	case st.editable() && active:
		return paint(fg(c.palette.Primary), c.symbols.CheckboxActive)
	case st.editable():
		return paint(dim, c.symbols.CheckboxInactive)
	default:
		return ""
	}
}

func (c *Clack) inputStyle(st State) lipgloss.Style {
	switch st.Status {
	case StatusCancel:
		return struck
	case StatusSubmit:
		return dim
	default:
		return plain
	}
}

func (c *Clack) checkboxStyle(st State, selected, active bool) lipgloss.Style {
	switch {
	case st.Status == StatusCancel && selected:
		return struck
	case st.Status == StatusSubmit && selected:
		return dim
	case !active:
		return dim
	default:
		return plain
	}
}

// withCaret renders left and right with style and the caret in reverse
// video. A caret at the end of the text is drawn as a reversed space.
func withCaret(left, at, right string, style lipgloss.Style) string {
	if at == "" {
		at = " "
	}
	return paint(style, left) + paint(caret, at) + paint(style, right)
}

// FormatHeader renders `{symbol}  {prompt}`.
func (c *Clack) FormatHeader(st State, prompt string) string {
	return c.stateSymbol(st) + "  " + prompt + "\n"
}

// FormatFooter renders the closing line of a prompt in the bar colour.
func (c *Clack) FormatFooter(st State) string {
	var line string
	switch st.Status {
	case StatusCancel:
		line = c.symbols.BarEnd + "  " + msgCancelled
	case StatusSubmit:
		line = c.symbols.Bar
	case StatusError:
		line = c.symbols.BarEnd + "  " + st.Err
	default:
		line = c.symbols.BarEnd
	}
	return paint(fg(c.barColor(st)), line) + "\n"
}

// FormatInput renders `{bar}  {input}`. While editing, the caret is shown
// at the buffer position.
func (c *Clack) FormatInput(st State, buf *cursor.Buffer) string {
	var input string
	if st.editable() {
		left, at, right := buf.Split()
		input = withCaret(left, at, right, c.inputStyle(st))
	} else {
		input = paint(c.inputStyle(st), buf.String())
	}
	return c.inputLine(st, input)
}

// FormatPlaceholder renders the placeholder dimmed. It disappears once the
// prompt is cancelled.
func (c *Clack) FormatPlaceholder(st State, buf *cursor.Buffer) string {
	switch {
	case st.editable():
		left, at, right := buf.Split()
		return c.inputLine(st, withCaret(left, at, right, dim))
	case st.Status == StatusCancel:
		return c.inputLine(st, "")
	default:
		return c.inputLine(st, paint(dim, buf.String()))
	}
}

// FormatPassword renders the input line with one mask glyph per codepoint.
// The caret keeps its position within the masked text.
func (c *Clack) FormatPassword(st State, buf *cursor.Buffer, mask string) string {
	n, pos := buf.Len(), buf.Position()

	if !st.editable() {
		return c.inputLine(st, paint(c.inputStyle(st), strings.Repeat(mask, n)))
	}

	left := strings.Repeat(mask, pos)
	var at, right string
	if pos < n {
		at = mask
		right = strings.Repeat(mask, n-pos-1)
	}
	return c.inputLine(st, withCaret(left, at, right, c.inputStyle(st)))
}

func (c *Clack) inputLine(st State, input string) string {
	if input == "" {
		return c.bar(st) + "\n"
	}
	return c.bar(st) + "  " + input + "\n"
}

// FormatSelectItem renders a radio row. Once the prompt is finished only
// the selected row remains visible.
func (c *Clack) FormatSelectItem(st State, selected bool, label, hint string) string {
	if st.done() && !selected {
		return ""
	}
	return c.bar(st) + "  " + c.radioItem(st, selected, label, hint) + "\n"
}

func (c *Clack) radioItem(st State, selected bool, label, hint string) string {
	var b strings.Builder

	if sym := c.radioSymbol(st, selected); sym != "" {
		b.WriteString(sym)
		b.WriteString(" ")
	}

	switch {
	case st.done():
		b.WriteString(paint(c.inputStyle(st), label))
	case selected:
		b.WriteString(label)
	default:
		b.WriteString(paint(dim, label))
	}

	if hint != "" && selected && st.editable() {
		b.WriteString(" ")
		b.WriteString(paint(dim, "("+hint+")"))
	}
	return b.String()
}

// FormatMultiSelectItem renders a checkbox row. Once the prompt is finished
// only checked rows remain visible.
func (c *Clack) FormatMultiSelectItem(st State, selected, active bool, label, hint string) string {
	if st.done() && !selected {
		return ""
	}

	var b strings.Builder
	b.WriteString(c.bar(st))
	b.WriteString("  ")
	if sym := c.checkboxSymbol(st, selected, active); sym != "" {
		b.WriteString(sym)
		b.WriteString(" ")
	}
	b.WriteString(paint(c.checkboxStyle(st, selected, active), label))
	if hint != "" && active && st.editable() {
		b.WriteString(" ")
		b.WriteString(paint(dim, "("+hint+")"))
	}
	b.WriteString("\n")
	return b.String()
}

// FormatConfirm renders `● Yes / ○ No`. Once finished only the chosen
// answer remains.
func (c *Clack) FormatConfirm(st State, confirm bool) string {
	yes := c.radioItem(st, confirm, confirmYes, "")
	no := c.radioItem(st, !confirm, confirmNo, "")

	var line string
	switch {
	case st.editable():
		line = yes + " " + paint(dim, "/") + " " + no
	case confirm:
		line = yes
	default:
		line = no
	}
	return c.bar(st) + "  " + line + "\n"
}

// FormatIntro renders `┌  title` followed by a bar line.
func (c *Clack) FormatIntro(title string) string {
	bar := paint(fg(c.palette.Muted), c.symbols.Bar)
	return paint(fg(c.palette.Muted), c.symbols.BarStart) + "  " + title + "\n" + bar + "\n"
}

// FormatOutro renders `└  message`.
func (c *Clack) FormatOutro(message string) string {
	return paint(fg(c.palette.Muted), c.symbols.BarEnd) + "  " + message + "\n"
}

// FormatOutroCancel renders `└  message` with the message in the error
// colour.
func (c *Clack) FormatOutroCancel(message string) string {
	return paint(fg(c.palette.Muted), c.symbols.BarEnd) + "  " + paint(fg(c.palette.Error), message) + "\n"
}

// FormatNote renders message in a box titled prompt. The box is two columns
// wider than the widest of prompt and message lines.
func (c *Clack) FormatNote(prompt, message string) string {
	lines := append([]string{""}, strings.Split(message, "\n")...)
	lines = append(lines, "")

	width := ansi.StringWidth(prompt)
	for _, l := range lines {
		width = max(width, ansi.StringWidth(l))
	}
	width += 2

	muted := fg(c.palette.Muted)
	bar := paint(muted, c.symbols.Bar)

	var b strings.Builder
	b.WriteString(paint(fg(c.palette.Success), c.symbols.StepSubmit))
	b.WriteString("  ")
	b.WriteString(prompt)
	b.WriteString(" ")
	b.WriteString(paint(muted, strings.Repeat(c.symbols.BarH, width-ansi.StringWidth(prompt))+c.symbols.CornerTopRight))
	b.WriteString("\n")

	for _, l := range lines {
		b.WriteString(bar)
		b.WriteString("  ")
		b.WriteString(paint(dim, l))
		b.WriteString(strings.Repeat(" ", width-ansi.StringWidth(l)+1))
		b.WriteString(bar)
		b.WriteString("\n")
	}

	b.WriteString(paint(muted, c.symbols.ConnectLeft+strings.Repeat(c.symbols.BarH, width+3)+c.symbols.CornerBottomRight))
	b.WriteString("\n")
	b.WriteString(bar)
	b.WriteString("\n")
	return b.String()
}

// FormatLog renders text with symbol on the first line and a bar in front
// of every following line, then one trailing bar line. Empty text renders
// the symbol alone.
func (c *Clack) FormatLog(text, symbol string) string {
	bar := paint(fg(c.palette.Muted), c.symbols.Bar)

	// One trailing newline does not start another line.
	var lines []string
	if text != "" {
		lines = strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	}
	lines = append(lines, "")

	var b strings.Builder
	for i, l := range lines {
		if i == 0 {
			b.WriteString(symbol)
		} else {
			b.WriteString(bar)
		}
		b.WriteString("  ")
		b.WriteString(l)
		b.WriteString("\n")
	}
	return b.String()
}

// SpinnerFrames returns the spinner frames of the symbol set.
func (c *Clack) SpinnerFrames() []string {
	return append([]string(nil), c.symbols.Spinner...)
}

// FormatSpinnerStart renders `{frame}  {message}` without a line break.
func (c *Clack) FormatSpinnerStart(frame, message string) string {
	return paint(fg(c.palette.Accent), frame) + "  " + message
}

// FormatSpinnerStop renders the submitted symbol, the message and a bar line.
func (c *Clack) FormatSpinnerStop(message string) string {
	return c.SubmitSymbol() + "  " + message + "\n" + paint(fg(c.palette.Muted), c.symbols.Bar) + "\n"
}

// FormatSpinnerError renders the error symbol, the message and a bar line.
func (c *Clack) FormatSpinnerError(message string) string {
	return c.ErrorSymbol() + "  " + message + "\n" + paint(fg(c.palette.Muted), c.symbols.Bar) + "\n"
}

// FormatProgress renders `{bar}  {progress} {message}` without a line break.
func (c *Clack) FormatProgress(bar, message string) string {
	line := c.bar(Active) + "  " + bar
	if message != "" {
		line += " " + message
	}
	return line
}

// PasswordMask returns the mask glyph of the symbol set.
func (c *Clack) PasswordMask() string { return c.symbols.PasswordMask }

func (c *Clack) BarSymbol() string { return paint(fg(c.palette.Muted), c.symbols.Bar) }
func (c *Clack) InfoSymbol() string { return paint(fg(c.palette.Info), c.symbols.Info) }
func (c *Clack) WarningSymbol() string { return paint(fg(c.palette.Warning), c.symbols.Warning) }
func (c *Clack) ErrorSymbol() string { return paint(fg(c.palette.Error), c.symbols.Error) }
func (c *Clack) RemarkSymbol() string { return paint(fg(c.palette.Muted), c.symbols.ConnectLeft) }
func (c *Clack) ActiveSymbol() string { return paint(fg(c.palette.Success), c.symbols.StepActive) }
func (c *Clack) SubmitSymbol() string { return paint(fg(c.palette.Success), c.symbols.StepSubmit) }
