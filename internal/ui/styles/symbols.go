package styles

// Symbols holds the glyphs prompts are drawn with
type Symbols struct {
	StepActive string
	StepCancel string
	StepError  string
	StepSubmit string

	BarStart string
	Bar      string
	BarEnd   string
	BarH     string

	CornerTopRight    string
	ConnectLeft       string
	CornerBottomRight string

	RadioActive      string
	RadioInactive    string
	CheckboxActive   string
	CheckboxSelected string
	CheckboxInactive string
	PasswordMask     string

	Info    string
	Warning string
	Error   string

	Spinner []string
}

// Default symbols (box drawing and geometric shapes)
var unicodeSymbols = Symbols{
	StepActive: "◆",
	StepCancel: "■",
	StepError:  "▲",
	StepSubmit: "◇",

	BarStart: "┌",
	Bar:      "│",
	BarEnd:   "└",
	BarH:     "─",

	CornerTopRight:    "╮",
	ConnectLeft:       "├",
	CornerBottomRight: "╯",

	RadioActive:      "●",
	RadioInactive:    "○",
	CheckboxActive:   "◻",
	CheckboxSelected: "◼",
	CheckboxInactive: "◻",
	PasswordMask:     "▪",

	Info:    "●",
	Warning: "▲",
	Error:   "■",

	Spinner: []string{"◒", "◐", "◓", "◑"},
}

// ASCII fallbacks for terminals without unicode fonts
var asciiSymbols = Symbols{
	StepActive: "*",
	StepCancel: "x",
	StepError:  "x",
	StepSubmit: "o",

	BarStart: "T",
	Bar:      "|",
	BarEnd:   "—",
	BarH:     "-",

	CornerTopRight:    "+",
	ConnectLeft:       "+",
	CornerBottomRight: "+",

	RadioActive:      ">",
	RadioInactive:    " ",
	CheckboxActive:   "[•]",
	CheckboxSelected: "[+]",
	CheckboxInactive: "[ ]",
	PasswordMask:     "•",

	Info:    "•",
	Warning: "!",
	Error:   "x",

	Spinner: []string{"•", "o", "O", "0"},
}

// useASCII tracks whether ASCII symbols are enabled
var useASCII bool

// currentSymbols holds the active symbol set
var currentSymbols = unicodeSymbols

// SetASCII enables or disables the ASCII fallback symbols
func SetASCII(enabled bool) {
	useASCII = enabled
	if enabled {
		currentSymbols = asciiSymbols
	} else {
		currentSymbols = unicodeSymbols
	}
}

// ASCIIEnabled returns whether ASCII symbols are enabled
func ASCIIEnabled() bool {
	return useASCII
}

// CurrentSymbols returns the current symbol set
func CurrentSymbols() Symbols {
	return currentSymbols
}

// UnicodeSymbols returns the default symbol set
func UnicodeSymbols() Symbols {
	return unicodeSymbols
}

// ASCIISymbols returns the ASCII fallback symbol set
func ASCIISymbols() Symbols {
	return asciiSymbols
}
