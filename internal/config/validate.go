package config

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// Valid enum values for configuration fields.
var (
	ValidThemeNames = []string{"none", "default", "dracula", "nord", "gruvbox", "catppuccin"}
	ValidThemeModes = []string{"auto", "light", "dark"}
)

func isValidThemeName(name string) bool {
	return slices.Contains(ValidThemeNames, name)
}

// ValidateThemeName returns an error unless name is empty or a known theme.
func ValidateThemeName(name string) error {
	return validateEnum(name, "theme", ValidThemeNames)
}

// validate checks the values present in a parsed file.
func (r rawConfig) validate() error {
	if err := validateEnum(r.Theme.Name, "theme.name", ValidThemeNames); err != nil {
		return err
	}
	if err := validateEnum(r.Theme.Mode, "theme.mode", ValidThemeModes); err != nil {
		return err
	}
	if r.Password.Mask != "" && utf8.RuneCountInString(r.Password.Mask) != 1 {
		return fmt.Errorf("invalid password.mask %q: must be a single character", r.Password.Mask)
	}
	if r.Spinner.Interval.Duration < 0 {
		return fmt.Errorf("invalid spinner.interval %q: must not be negative", r.Spinner.Interval)
	}
	return nil
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
