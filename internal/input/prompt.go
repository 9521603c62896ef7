package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/san-kum/sumcalc/internal/locale"
	"github.com/san-kum/sumcalc/internal/ui"
)

// Options configures a Prompter. Zero fields take defaults: the Russian
// catalog, plain styles, no logging and the default float bounds.
type Options struct {
	Out      io.Writer
	Catalog  *locale.Catalog
	Styles   *ui.Styles
	Logger   *zerolog.Logger
	FloatMin float64
	FloatMax float64
}

// Prompter asks for values on one input stream and writes prompts,
// notices and validation messages to one output stream.
type Prompter struct {
	in       *bufio.Reader
	out      io.Writer
	cat      *locale.Catalog
	styles   *ui.Styles
	log      zerolog.Logger
	floatMin float64
	floatMax float64
	closed   bool
}

// NewPrompter wraps in with a line reader. Prompts and messages go to
// opts.Out.
func NewPrompter(in io.Reader, opts Options) *Prompter {
	p := &Prompter{
		in:       bufio.NewReader(in),
		out:      opts.Out,
		cat:      opts.Catalog,
		styles:   opts.Styles,
		log:      zerolog.Nop(),
		floatMin: opts.FloatMin,
		floatMax: opts.FloatMax,
	}
	if p.out == nil {
		p.out = io.Discard
	}
	if opts.Logger != nil {
		p.log = *opts.Logger
	}
	if p.cat == nil {
		p.cat = locale.Default()
	}
	if p.styles == nil {
		p.styles = ui.Plain(p.out)
	}
	if p.floatMin == 0 && p.floatMax == 0 {
		p.floatMin, p.floatMax = DefaultFloatMin, DefaultFloatMax
	}
	return p
}

// IsEmptyInput reports whether s is a cancellation and, if so, prints the
// cancellation notice.
func (p *Prompter) IsEmptyInput(s string) bool {
	if !IsEmpty(s) {
		return false
	}
	fmt.Fprintf(p.out, "\n%s\n", p.styles.Notice.Render(p.cat.Cancelled))
	return true
}

// Int prompts until an integer in [min, max] is entered. ok is false when
// the prompt was cancelled.
func (p *Prompter) Int(label string, min, max int) (int, bool, error) {
	for {
		raw, err := p.readLine(label)
		if err != nil {
			return 0, false, p.closedErr(err)
		}
		if p.IsEmptyInput(raw) {
			return 0, false, nil
		}
		n, err := ParseIntInRange(raw, min, max)
		if err == nil {
			return n, true, nil
		}
		p.report(err, false)
	}
}

// Float prompts for a real number within the configured bounds.
func (p *Prompter) Float(label string) (float64, bool, error) {
	return p.FloatInRange(label, p.floatMin, p.floatMax)
}

// FloatInRange prompts until a real number in [min, max] is entered. ok is
// false when the prompt was cancelled.
func (p *Prompter) FloatInRange(label string, min, max float64) (float64, bool, error) {
	for {
		raw, err := p.readLine(label)
		if err != nil {
			return 0, false, p.closedErr(err)
		}
		if p.IsEmptyInput(raw) {
			return 0, false, nil
		}
		v, err := ParseFloatInRange(raw, min, max)
		if err == nil {
			return v, true, nil
		}
		p.report(err, true)
	}
}

// String reads one trimmed line. ok is false when the line was empty.
func (p *Prompter) String(label string) (string, bool, error) {
	raw, err := p.readLine(label)
	if err != nil {
		return "", false, p.closedErr(err)
	}
	if p.IsEmptyInput(raw) {
		return "", false, nil
	}
	return raw, true, nil
}

func (p *Prompter) readLine(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return Trim(strings.TrimRight(line, "\r\n")), nil
}

// Closed reports whether the input stream has ended.
func (p *Prompter) Closed() bool {
	return p.closed
}

// closedErr prints the cancellation notice when the stream has ended, the
// same as for an empty line.
func (p *Prompter) closedErr(err error) error {
	if errors.Is(err, ErrInputClosed) {
		p.closed = true
		p.IsEmptyInput("")
		return err
	}
	p.log.Error().Err(err).Msg("read input")
	return fmt.Errorf("input: read: %w", err)
}

func (p *Prompter) report(err error, float bool) {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return
	}
	p.log.Debug().Str("kind", pe.Kind.String()).Str("input", pe.Input).Msg("input rejected")

	var msg string
	switch pe.Kind {
	case KindBelowMin:
		msg = fmt.Sprintf(p.cat.BelowMin, pe.Value, pe.Bound)
	case KindAboveMax:
		msg = fmt.Sprintf(p.cat.AboveMax, pe.Value, pe.Bound)
	case KindOutOfRange:
		msg = fmt.Sprintf(p.cat.OutOfRange, pe.Input)
	default:
		if float {
			msg = fmt.Sprintf(p.cat.FloatNotANumber, pe.Input)
		} else {
			msg = fmt.Sprintf(p.cat.IntNotANumber, pe.Input)
		}
	}
	fmt.Fprintf(p.out, "\n%s\n\n", p.styles.Error.Render(msg))
}
