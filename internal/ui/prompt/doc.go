// Package prompt provides clack-style interactive prompts.
//
// Every prompt implements [Interaction]: On turns a key [Event] into the
// next [State], and Render draws the prompt for that state through the
// active theme. [Interact] drives a prompt on the terminal until it is
// submitted or cancelled, redrawing the whole frame after every key.
//
// Available prompts:
//   - [Password]: masked secret input
//   - [Input]: single-line text with cursor navigation
//   - [Confirm]: Yes/No choice
//   - [Select]: single choice from a list, optionally fuzzy filtered
//   - [MultiSelect]: any number of choices from a list
//
// Prompts are configured with chained calls and finished by Interact:
//
//	res, err := prompt.NewPassword("Provide a password").
//		Mask("*").
//		Validate(prompt.MinLength(3)).
//		Interact(ctx)
//	if err != nil {
//		return err
//	}
//	if res.Cancelled {
//		return nil
//	}
//
// Escape and ctrl+c cancel every prompt. Cancellation is reported through
// [Result], not as an error.
//
// [Intro], [Outro], [Note] and the Log functions print static frames
// that frame a prompt session.
package prompt
