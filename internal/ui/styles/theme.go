package styles

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-isatty"

	"github.com/raphi011/clack/internal/config"
)

// Palette defines the colours a theme draws with
type Palette struct {
	Primary color.Color // active prompt bar and symbol
	Accent  color.Color // spinner and highlights
	Success color.Color // submitted symbol
	Error   color.Color // cancelled prompt, error log
	Muted   color.Color // finished prompt bar, placeholders
	Normal  color.Color // standard text
	Info    color.Color // info log
	Warning color.Color // validation errors, warnings
}

// paletteFamily groups light and dark variants of a palette
type paletteFamily struct {
	Light *Palette // nil if no light variant
	Dark  *Palette // nil if no dark variant
}

// Preset palettes - Dark variants
var (
	// DefaultPalette uses the 16 basic ANSI colours, so it follows the
	// terminal's own colour scheme on light and dark backgrounds alike
	DefaultPalette = Palette{
		Primary: lipgloss.Cyan,
		Accent:  lipgloss.Magenta,
		Success: lipgloss.Green,
		Error:   lipgloss.Red,
		Muted:   lipgloss.BrightBlack,
		Normal:  lipgloss.NoColor{},
		Info:    lipgloss.Blue,
		Warning: lipgloss.Yellow,
	}

	// DraculaPalette is based on the Dracula color scheme (dark only)
	DraculaPalette = Palette{
		Primary: lipgloss.Color("#8be9fd"), // cyan
		Accent:  lipgloss.Color("#ff79c6"), // pink
		Success: lipgloss.Color("#50fa7b"), // green
		Error:   lipgloss.Color("#ff5555"), // red
		Muted:   lipgloss.Color("#6272a4"), // comment
		Normal:  lipgloss.Color("#f8f8f2"), // foreground
		Info:    lipgloss.Color("#bd93f9"), // purple
		Warning: lipgloss.Color("#f1fa8c"), // yellow
	}

	// NordPalette is based on the Nord color scheme (dark)
	NordPalette = Palette{
		Primary: lipgloss.Color("#88c0d0"), // nord8 (frost cyan)
		Accent:  lipgloss.Color("#b48ead"), // nord15 (aurora purple)
		Success: lipgloss.Color("#a3be8c"), // nord14 (aurora green)
		Error:   lipgloss.Color("#bf616a"), // nord11 (aurora red)
		Muted:   lipgloss.Color("#4c566a"), // nord3 (polar night)
		Normal:  lipgloss.Color("#eceff4"), // nord6 (snow storm)
		Info:    lipgloss.Color("#81a1c1"), // nord9 (frost blue)
		Warning: lipgloss.Color("#ebcb8b"), // nord13 (aurora yellow)
	}

	// GruvboxPalette is based on the Gruvbox color scheme (dark)
	GruvboxPalette = Palette{
		Primary: lipgloss.Color("#8ec07c"), // aqua
		Accent:  lipgloss.Color("#d3869b"), // purple
		Success: lipgloss.Color("#b8bb26"), // green
		Error:   lipgloss.Color("#fb4934"), // red
		Muted:   lipgloss.Color("#665c54"), // gray
		Normal:  lipgloss.Color("#ebdbb2"), // foreground
		Info:    lipgloss.Color("#83a598"), // blue
		Warning: lipgloss.Color("#fabd2f"), // yellow
	}

	// CatppuccinMochaPalette is based on Catppuccin Mocha (dark)
	CatppuccinMochaPalette = Palette{
		Primary: lipgloss.Color("#94e2d5"), // teal
		Accent:  lipgloss.Color("#f5c2e7"), // pink
		Success: lipgloss.Color("#a6e3a1"), // green
		Error:   lipgloss.Color("#f38ba8"), // red
		Muted:   lipgloss.Color("#6c7086"), // overlay0
		Normal:  lipgloss.Color("#cdd6f4"), // text
		Info:    lipgloss.Color("#89b4fa"), // blue
		Warning: lipgloss.Color("#f9e2af"), // yellow
	}

	// NonePalette renders without any colors (uses terminal defaults)
	// Formatting (dim/strikethrough/reverse) is preserved
	NonePalette = Palette{
		Primary: lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Muted:   lipgloss.NoColor{},
		Normal:  lipgloss.NoColor{},
		Info:    lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
	}
)

// Preset palettes - Light variants
var (
	// NordLightPalette is based on the Nord color scheme (light)
	NordLightPalette = Palette{
		Primary: lipgloss.Color("#5e81ac"), // nord10 (frost blue, darker)
		Accent:  lipgloss.Color("#b48ead"), // nord15 (aurora purple)
		Success: lipgloss.Color("#a3be8c"), // nord14 (aurora green)
		Error:   lipgloss.Color("#bf616a"), // nord11 (aurora red)
		Muted:   lipgloss.Color("#9a9a9a"), // gray
		Normal:  lipgloss.Color("#2e3440"), // nord0 (polar night)
		Info:    lipgloss.Color("#81a1c1"), // nord9 (frost blue)
		Warning: lipgloss.Color("#d08770"), // nord12 (aurora orange)
	}

	// GruvboxLightPalette is based on the Gruvbox color scheme (light)
	GruvboxLightPalette = Palette{
		Primary: lipgloss.Color("#427b58"), // aqua (dark for contrast)
		Accent:  lipgloss.Color("#8f3f71"), // purple (dark for contrast)
		Success: lipgloss.Color("#79740e"), // green (dark)
		Error:   lipgloss.Color("#9d0006"), // red (dark)
		Muted:   lipgloss.Color("#928374"), // gray
		Normal:  lipgloss.Color("#3c3836"), // foreground (dark)
		Info:    lipgloss.Color("#076678"), // blue (dark)
		Warning: lipgloss.Color("#b57614"), // yellow (dark)
	}

	// CatppuccinLattePalette is based on Catppuccin Latte (light)
	CatppuccinLattePalette = Palette{
		Primary: lipgloss.Color("#179299"), // teal
		Accent:  lipgloss.Color("#ea76cb"), // pink
		Success: lipgloss.Color("#40a02b"), // green
		Error:   lipgloss.Color("#d20f39"), // red
		Muted:   lipgloss.Color("#9ca0b0"), // overlay0
		Normal:  lipgloss.Color("#4c4f69"), // text
		Info:    lipgloss.Color("#1e66f5"), // blue
		Warning: lipgloss.Color("#df8e1d"), // yellow
	}
)

// paletteFamilies maps theme family names to their light/dark variants
var paletteFamilies = map[string]paletteFamily{
	"none":       {Light: &NonePalette, Dark: &NonePalette},                       // no colors
	"default":    {Light: &DefaultPalette, Dark: &DefaultPalette},                 // ANSI, both
	"dracula":    {Dark: &DraculaPalette},                                         // dark only
	"nord":       {Light: &NordLightPalette, Dark: &NordPalette},                  // both variants
	"gruvbox":    {Light: &GruvboxLightPalette, Dark: &GruvboxPalette},            // both variants
	"catppuccin": {Light: &CatppuccinLattePalette, Dark: &CatppuccinMochaPalette}, // both variants
}

// currentPalette holds the active palette
var currentPalette = DefaultPalette

// Current returns the current palette
func Current() Palette {
	return currentPalette
}

// Init initializes the palette and glyph set from config
// Call this after loading config and before displaying any UI
func Init(cfg config.Config) {
	p := selectPalette(cfg.Theme, hasDarkBackground)

	// Override individual colors if specified
	override := func(dst *color.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	override(&p.Primary, cfg.Theme.Primary)
	override(&p.Accent, cfg.Theme.Accent)
	override(&p.Success, cfg.Theme.Success)
	override(&p.Error, cfg.Theme.Error)
	override(&p.Muted, cfg.Theme.Muted)
	override(&p.Normal, cfg.Theme.Normal)
	override(&p.Info, cfg.Theme.Info)
	override(&p.Warning, cfg.Theme.Warning)

	currentPalette = p

	// Update the global style variables
	applyPalette(p)

	SetASCII(cfg.ASCII)
}

// hasDarkBackground queries the terminal only when both ends are a TTY;
// piped sessions are assumed dark.
func hasDarkBackground() bool {
	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stderr.Fd()) {
		return true
	}
	return lipgloss.HasDarkBackground(os.Stdin, os.Stderr)
}

// selectPalette picks the appropriate palette based on config and terminal background
func selectPalette(cfg config.ThemeConfig, isDark func() bool) Palette {
	// Default mode is "auto"
	mode := cfg.Mode
	if mode == "" {
		mode = "auto"
	}

	// Get family (default if not found)
	family, ok := paletteFamilies[cfg.Name]
	if !ok {
		if cfg.Name != "" {
			// Unknown theme name - log warning
			fmt.Fprintf(os.Stderr, "Warning: unknown theme %q, using default (available: %s)\n",
				cfg.Name, strings.Join(config.ValidThemeNames, ", "))
		}
		family = paletteFamilies["default"]
	}

	// Determine which variant to use based on mode
	var p *Palette
	switch mode {
	case "light":
		p = family.Light
	case "dark":
		p = family.Dark
	default:
		if mode != "auto" {
			fmt.Fprintf(os.Stderr, "Warning: unknown theme mode %q, using auto (available: %s)\n",
				mode, strings.Join(config.ValidThemeModes, ", "))
		}
		if isDark() {
			p = family.Dark
		} else {
			p = family.Light
		}
	}

	// Fall back if the requested variant doesn't exist
	if p == nil {
		if family.Dark != nil {
			p = family.Dark
		} else {
			p = family.Light
		}
	}

	return *p
}

// applyPalette updates all global style variables to use the given palette
func applyPalette(p Palette) {
	// Update color variables
	Primary = p.Primary
	Accent = p.Accent
	Success = p.Success
	Error = p.Error
	Muted = p.Muted
	Normal = p.Normal
	Info = p.Info
	Warning = p.Warning

	// Update style variables
	PrimaryStyle = lipgloss.NewStyle().Foreground(p.Primary)
	AccentStyle = lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(p.Success)
	ErrorStyle = lipgloss.NewStyle().Foreground(p.Error)
	MutedStyle = lipgloss.NewStyle().Foreground(p.Muted)
	NormalStyle = lipgloss.NewStyle().Foreground(p.Normal)
	InfoStyle = lipgloss.NewStyle().Foreground(p.Info)
	WarningStyle = lipgloss.NewStyle().Foreground(p.Warning)
}

// GetPreset returns a palette preset by name, or nil if not found
// For families with variants, returns the dark variant by default
func GetPreset(name string) *Palette {
	if family, ok := paletteFamilies[name]; ok {
		if family.Dark != nil {
			return family.Dark
		}
		return family.Light
	}
	return nil
}

// PresetNames returns a list of available preset names (theme families)
func PresetNames() []string {
	return config.ValidThemeNames
}

// PresetVariants returns the background variants ("light", "dark") a
// preset family provides.
func PresetVariants(name string) []string {
	family, ok := paletteFamilies[name]
	if !ok {
		return nil
	}
	var variants []string
	if family.Light != nil {
		variants = append(variants, "light")
	}
	if family.Dark != nil {
		variants = append(variants, "dark")
	}
	return variants
}
