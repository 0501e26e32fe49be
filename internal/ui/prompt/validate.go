package prompt

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validator checks the text of a prompt on submit. A non-nil error keeps
// the prompt open and shows the error message.
type Validator func(string) error

// Required rejects empty or whitespace-only text.
func Required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("Value is required")
	}
	return nil
}

// MinLength rejects text shorter than n characters.
func MinLength(n int) Validator {
	return func(s string) error {
		if utf8.RuneCountInString(s) < n {
			return fmt.Errorf("Must be at least %d characters", n)
		}
		return nil
	}
}

// MaxLength rejects text longer than n characters.
func MaxLength(n int) Validator {
	return func(s string) error {
		if utf8.RuneCountInString(s) > n {
			return fmt.Errorf("Must be at most %d characters", n)
		}
		return nil
	}
}

// Match rejects non-empty text that does not match pattern, reporting msg.
// It panics if pattern does not compile.
func Match(pattern, msg string) Validator {
	re := regexp.MustCompile(pattern)
	return func(s string) error {
		if s != "" && !re.MatchString(s) {
			return errors.New(msg)
		}
		return nil
	}
}

// All runs validators in order and returns the first error.
func All(vs ...Validator) Validator {
	return func(s string) error {
		for _, v := range vs {
			if v == nil {
				continue
			}
			if err := v(s); err != nil {
				return err
			}
		}
		return nil
	}
}

// run applies v, treating a nil validator as always passing.
func (v Validator) run(s string) error {
	if v == nil {
		return nil
	}
	return v(s)
}
