// Package driver runs the interactive demonstration: a fixed report for the
// demo bounce count, then a single prompt for a user-chosen count.
package driver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/san-kum/bouncesim/internal/bounce"
)

const (
	DefaultDemoCount = 10
	DefaultPrecision = 6

	Prompt    = "enter bounce count n (positive integer):"
	Separator = "------------------------------------"

	MsgNonPositive = "n must be a positive integer."
	MsgMalformed   = "invalid input, please enter a positive integer."
)

var (
	// ErrNonPositiveInput is returned for an integer count <= 0.
	ErrNonPositiveInput = errors.New("driver: bounce count must be positive")

	// ErrMalformedInput is returned for input that is not an integer.
	ErrMalformedInput = errors.New("driver: bounce count is not an integer")
)

// ParseCount parses one line of user input into a bounce count. Underscores
// between digits and non-ASCII decimal digits are accepted, so "1_000" and
// "１０" are valid counts.
func ParseCount(line string) (int, error) {
	raw := strings.TrimSpace(line)
	s, ok := normalizeInt(raw)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMalformedInput, raw)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// out-of-range negatives are still non-positive integers
		if errors.Is(err, strconv.ErrRange) && strings.HasPrefix(s, "-") {
			return 0, fmt.Errorf("%w: %s", ErrNonPositiveInput, s)
		}
		return 0, fmt.Errorf("%w: %q", ErrMalformedInput, raw)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrNonPositiveInput, n)
	}
	return n, nil
}

// normalizeInt rewrites decimal digits to ASCII and drops underscores that
// sit between two digits. Anything else besides a leading sign is rejected.
func normalizeInt(s string) (string, bool) {
	var b strings.Builder
	prevDigit, trailing := false, false
	for i, r := range s {
		switch {
		case i == 0 && (r == '+' || r == '-'):
			b.WriteRune(r)
		case r == '_':
			if !prevDigit {
				return "", false
			}
			prevDigit, trailing = false, true
		case unicode.IsDigit(r):
			b.WriteByte(byte('0' + digitValue(r)))
			prevDigit, trailing = true, false
		default:
			return "", false
		}
	}
	return b.String(), !trailing
}

// digitValue returns the value of a decimal digit rune. Unicode assigns each
// script's digits as a contiguous run starting at zero.
func digitValue(r rune) int {
	zero := r
	for unicode.IsDigit(zero - 1) {
		zero--
	}
	return int(r-zero) % 10
}

// Message returns the user-facing text for a ParseCount error.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrNonPositiveInput):
		return MsgNonPositive
	case errors.Is(err, ErrMalformedInput):
		return MsgMalformed
	default:
		return err.Error()
	}
}

type Driver struct {
	in        *bufio.Reader
	out       io.Writer
	params    bounce.Params
	demoCount int
	precision int
	log       zerolog.Logger
}

type Option func(*Driver)

func WithParams(p bounce.Params) Option {
	return func(d *Driver) { d.params = p }
}

func WithDemoCount(n int) Option {
	return func(d *Driver) { d.demoCount = n }
}

func WithPrecision(digits int) Option {
	return func(d *Driver) { d.precision = digits }
}

func WithLogger(log zerolog.Logger) Option {
	return func(d *Driver) { d.log = log }
}

func New(in io.Reader, out io.Writer, opts ...Option) *Driver {
	d := &Driver{
		in:        bufio.NewReader(in),
		out:       out,
		params:    bounce.DefaultParams(),
		demoCount: DefaultDemoCount,
		precision: DefaultPrecision,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run prints the demo report, prompts once and reports on the answer.
// Invalid input is reported to the user and is not an error; only write
// failures are returned.
func (d *Driver) Run() error {
	demo := bounce.Compute(d.demoCount, d.params)
	d.log.Debug().
		Int("n", d.demoCount).
		Float64("height", d.params.Height).
		Float64("gravity", d.params.Gravity).
		Msg("demo computed")

	if _, err := fmt.Fprintf(d.out, "after drop and bounce number %d, at the apex:\n", d.demoCount); err != nil {
		return err
	}
	if err := d.report(demo); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(d.out, "\n%s\n\n%s ", Separator, Prompt); err != nil {
		return err
	}

	line, err := d.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		d.log.Debug().Err(err).Msg("no input read")
		line = ""
	}

	n, err := ParseCount(line)
	if err != nil {
		d.log.Debug().Err(err).Msg("rejected input")
		_, werr := fmt.Fprintf(d.out, "\n%s\n", Message(err))
		return werr
	}

	r := bounce.Compute(n, d.params)
	d.log.Debug().Int("n", n).Msg("user count computed")
	if _, err := fmt.Fprintf(d.out, "\nwhen n = %d:\n", n); err != nil {
		return err
	}
	return d.report(r)
}

func (d *Driver) report(r bounce.Result) error {
	return WriteReport(d.out, r, d.precision)
}

// WriteReport prints the three quantities of r with the given decimals.
func WriteReport(w io.Writer, r bounce.Result, precision int) error {
	_, err := fmt.Fprintf(w,
		"bounce height (m): %.*f\ntotal distance (m): %.*f\ntotal time (s): %.*f\n",
		precision, r.BounceHeight,
		precision, r.TotalDistance,
		precision, r.TotalTime,
	)
	return err
}
