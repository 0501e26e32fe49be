package progress

import (
	"io"
	"os"
	"time"

	"github.com/raphi011/clack/internal/config"
	"github.com/raphi011/clack/internal/ui/theme"
)

type options struct {
	output   io.Writer
	theme    theme.Theme
	interval time.Duration
}

func newOptions(opts []Option) options {
	// stderr keeps stdout clean for piping
	o := options{output: os.Stderr, interval: config.DefaultSpinnerInterval}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) th() theme.Theme {
	if o.theme != nil {
		return o.theme
	}
	return theme.Current()
}

// Option configures a Spinner or ProgressBar.
type Option func(*options)

// WithOutput draws to w instead of stderr.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.output = w }
}

// WithTheme draws with t instead of the process-wide theme.
func WithTheme(t theme.Theme) Option {
	return func(o *options) { o.theme = t }
}

// WithInterval sets the time between spinner frames. Non-positive values
// keep the default.
func WithInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.interval = d
		}
	}
}
