package app

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/san-kum/sumcalc/internal/calc"
	"github.com/san-kum/sumcalc/internal/input"
	"github.com/san-kum/sumcalc/internal/locale"
	"github.com/san-kum/sumcalc/internal/menu"
)

// Items returns the calculator's menu: one assign entry per variable,
// followed by the two sum actions.
func Items(cat *locale.Catalog) []menu.Item[*State] {
	items := make([]menu.Item[*State], 0, len(calc.All)+2)
	for _, v := range calc.All {
		items = append(items, menu.Item[*State]{
			Label:  fmt.Sprintf(cat.AssignLabel, v),
			Action: Assign(v),
		})
	}
	return append(items,
		menu.Item[*State]{Label: cat.FractionLabel, Action: PrintSum},
		menu.Item[*State]{Label: cat.RoundLabel, Action: PrintRoundedSum},
	)
}

// Assign prompts for a real number and stores it into v. Cancelling, or
// reaching the end of input, leaves v unchanged.
func Assign(v calc.Var) menu.Action[*State] {
	return func(s *State) error {
		val, ok, err := s.Prompt.Float(fmt.Sprintf(s.Catalog.AssignPrompt, v))
		if err != nil && !errors.Is(err, input.ErrInputClosed) {
			return err
		}
		if ok {
			s.Vars.Set(v, val)
		}
		return nil
	}
}

// PrintSum prints x + y + z.
func PrintSum(s *State) error {
	fmt.Fprint(s.Out, s.Styles.Result.Render(locale.FormatFloat(s.Vars.Sum())))
	return nil
}

// PrintRoundedSum prints x + y + z rounded half away from zero.
func PrintRoundedSum(s *State) error {
	n := calc.RoundHalfAwayFromZero(s.Vars.Sum())
	fmt.Fprint(s.Out, s.Styles.Result.Render(strconv.FormatInt(n, 10)))
	return nil
}
