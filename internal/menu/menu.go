// Package menu implements a numbered console menu.
//
// Entries are numbered from 1 in insertion order; 0 is reserved for exit.
// Each entry's action receives the state value passed to [Menu.Dispatch],
// so the shared state is explicit rather than captured.
package menu

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/san-kum/sumcalc/internal/locale"
	"github.com/san-kum/sumcalc/internal/ui"
)

// ExitID is the selection that ends the menu loop.
const ExitID = 0

// Action runs a menu entry against the shared state.
type Action[S any] func(state S) error

// Item is an unnumbered entry handed to Build.
type Item[S any] struct {
	Label  string
	Action Action[S]
}

// Entry is a numbered, immutable menu entry.
type Entry[S any] struct {
	id     int
	label  string
	action Action[S]
}

func (e Entry[S]) ID() int       { return e.id }
func (e Entry[S]) Label() string { return e.label }

// Outcome is the result of a dispatch.
type Outcome int

const (
	// Done means the action ran to completion.
	Done Outcome = iota
	// Exit means the exit entry was selected.
	Exit
	// Unknown means no entry has the selected id.
	Unknown
	// Failed means the action returned an error or panicked.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Done:
		return "done"
	case Exit:
		return "exit"
	case Unknown:
		return "unknown"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Options configures where a menu writes and how it labels the exit line.
type Options struct {
	Out     io.Writer
	Catalog *locale.Catalog
	Styles  *ui.Styles
	Logger  *zerolog.Logger
}

// Menu is an ordered, numbered list of actions over state of type S.
type Menu[S any] struct {
	entries []Entry[S]
	out     io.Writer
	cat     *locale.Catalog
	styles  *ui.Styles
	log     zerolog.Logger
}

// Build numbers items from 1 in the order given.
func Build[S any](opts Options, items ...Item[S]) *Menu[S] {
	m := &Menu[S]{
		entries: make([]Entry[S], 0, len(items)),
		out:     opts.Out,
		cat:     opts.Catalog,
		styles:  opts.Styles,
		log:     zerolog.Nop(),
	}
	if m.out == nil {
		m.out = io.Discard
	}
	if m.cat == nil {
		m.cat = locale.Default()
	}
	if m.styles == nil {
		m.styles = ui.Plain(m.out)
	}
	if opts.Logger != nil {
		m.log = *opts.Logger
	}
	for i, it := range items {
		m.entries = append(m.entries, Entry[S]{id: i + 1, label: it.Label, action: it.Action})
	}
	return m
}

// Len returns the number of entries, which is also the highest id.
func (m *Menu[S]) Len() int {
	return len(m.entries)
}

// Lookup finds the entry with the given id.
func (m *Menu[S]) Lookup(id int) (Entry[S], bool) {
	for _, e := range m.entries {
		if e.id == id {
			return e, true
		}
	}
	return Entry[S]{}, false
}

// Render prints every entry as "<id>. <label>", then the exit line.
func (m *Menu[S]) Render() {
	for _, e := range m.entries {
		fmt.Fprintf(m.out, "%s %s\n", m.styles.Label.Render(fmt.Sprintf("%d.", e.id)), e.label)
	}
	fmt.Fprintf(m.out, "%s %s\n\n\n", m.styles.Label.Render(fmt.Sprintf("%d.", ExitID)), m.cat.Exit)
}

// Dispatch runs the entry with the given id. Faults raised by the action,
// returned errors and panics alike, are reported and do not propagate.
// Unknown ids are ignored.
func (m *Menu[S]) Dispatch(state S, id int) Outcome {
	if id == ExitID {
		m.log.Debug().Msg("exit selected")
		return Exit
	}
	e, ok := m.Lookup(id)
	if !ok {
		m.log.Debug().Int("id", id).Msg("no menu entry")
		return Unknown
	}

	m.log.Debug().Int("id", e.id).Str("label", e.label).Msg("dispatch")
	if err := run(e, state); err != nil {
		m.log.Error().Err(err).Int("id", e.id).Msg("action failed")
		fmt.Fprint(m.out, m.styles.Error.Render(fmt.Sprintf(m.cat.ActionFailed, cause(err))))
		return Failed
	}
	return Done
}

func run[S any](e Entry[S], state S) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ActionError{ID: e.id, Label: e.label, Err: fmt.Errorf("%v", r), Panic: true}
		}
	}()
	if e.action == nil {
		return nil
	}
	if err := e.action(state); err != nil {
		return &ActionError{ID: e.id, Label: e.label, Err: err}
	}
	return nil
}
