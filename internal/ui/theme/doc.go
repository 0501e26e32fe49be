// Package theme defines how prompts look.
//
// A [Theme] is a set of pure formatting functions. Each one takes the
// rendering [State] of a prompt plus literal content and returns styled
// text fragments; prompts concatenate the fragments into a frame.
//
// [Clack] is the default implementation, modelled on @clack/prompts:
//
//	◆  What is your name?
//	│  Ferris█
//	└
//
// The active theme is process-wide. [Current] returns it, [Set] replaces
// it and [Reset] restores the default. Replacing the theme affects frames
// rendered afterwards, never frames already written. Prompts can also be
// given a theme explicitly, which bypasses the process-wide one.
//
// # Custom Themes
//
// Embed *Clack and override the methods that should change:
//
//	type shoutTheme struct{ *theme.Clack }
//
//	func (t shoutTheme) FormatHeader(st theme.State, prompt string) string {
//		return t.Clack.FormatHeader(st, strings.ToUpper(prompt))
//	}
//
//	theme.Set(shoutTheme{theme.Default()})
//
// Colours and glyphs come from a [styles.Palette] and [styles.Symbols],
// so most customisation only needs [NewClack] with a different palette.
package theme
