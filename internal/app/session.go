// Package app runs the interactive calculator session.
package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/san-kum/sumcalc/internal/calc"
	"github.com/san-kum/sumcalc/internal/config"
	"github.com/san-kum/sumcalc/internal/input"
	"github.com/san-kum/sumcalc/internal/locale"
	"github.com/san-kum/sumcalc/internal/menu"
	"github.com/san-kum/sumcalc/internal/ui"
)

// State is passed to every menu action. Vars is mutated only by actions.
type State struct {
	Vars    calc.Vars
	Prompt  *input.Prompter
	Out     io.Writer
	Catalog *locale.Catalog
	Styles  *ui.Styles
}

// Session owns the shared state and the menu for one interactive run.
type Session struct {
	state *State
	menu  *menu.Menu[*State]
	log   zerolog.Logger
}

// New wires a session reading from in and writing the transcript to out.
// A nil cfg means the defaults.
func New(in io.Reader, out io.Writer, cfg *config.Config, log zerolog.Logger) *Session {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cat := locale.Match(cfg.Lang)
	styles := ui.New(ui.NewRenderer(out, cfg.Plain))

	prompt := input.NewPrompter(in, input.Options{
		Out:      out,
		Catalog:  cat,
		Styles:   styles,
		Logger:   &log,
		FloatMin: cfg.FloatMin,
		FloatMax: cfg.FloatMax,
	})
	m := menu.Build(menu.Options{
		Out:     out,
		Catalog: cat,
		Styles:  styles,
		Logger:  &log,
	}, Items(cat)...)

	return &Session{
		state: &State{
			Prompt:  prompt,
			Out:     out,
			Catalog: cat,
			Styles:  styles,
		},
		menu: m,
		log:  log,
	}
}

// Vars returns a snapshot of the shared numbers.
func (s *Session) Vars() calc.Vars {
	return s.state.Vars
}

// Run shows the menu and dispatches selections until exit is chosen or the
// input ends, including inside an action, then prints the copyright line. It only fails on read errors.
func (s *Session) Run() error {
	out := s.state.Out
	for {
		s.menu.Render()
		id, ok, err := s.state.Prompt.Int(s.state.Catalog.MenuPrompt, 0, s.menu.Len())
		if err != nil && !errors.Is(err, input.ErrInputClosed) {
			return err
		}
		fmt.Fprint(out, "\n\n")
		if err != nil {
			s.log.Debug().Msg("input closed")
			break
		}
		if !ok {
			continue
		}

		outcome := s.menu.Dispatch(s.state, id)
		fmt.Fprint(out, "\n\n\n")
		if outcome == menu.Exit {
			break
		}
		if s.state.Prompt.Closed() {
			s.log.Debug().Msg("input closed during action")
			break
		}
	}
	fmt.Fprintln(out, s.state.Catalog.Copyright)
	return nil
}
