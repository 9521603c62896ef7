package locale

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Catalog is the complete set of strings a session prints. Fields ending in
// a verb take fmt arguments.
type Catalog struct {
	Tag language.Tag

	// Input validation.
	Cancelled       string
	BelowMin        string // value, bound
	AboveMax        string // value, bound
	IntNotANumber   string // raw input
	FloatNotANumber string // raw input
	OutOfRange      string // raw input

	// Menu.
	MenuPrompt   string
	Exit         string
	ActionFailed string // error text

	// Provided actions.
	AssignLabel   string // variable name
	AssignPrompt  string // variable name
	FractionLabel string
	RoundLabel    string

	Copyright string
}

const copyright = "© 2025 Fedor Kondakov"

var russian = Catalog{
	Tag:             language.Russian,
	Cancelled:       "[Отмена операции]",
	BelowMin:        "Вы ввели \"%s\" — значение должно быть не меньше \"%s\"",
	AboveMax:        "Вы ввели \"%s\" — значение должно быть не больше \"%s\"",
	IntNotANumber:   "Введённое значение \"%s\" не является числом!",
	FloatNotANumber: "Введённое вами значение \"%s\" не является числом!",
	OutOfRange:      "Число \"%s\" выходит за допустимый диапазон!",
	MenuPrompt:      "Пункт меню: ",
	Exit:            "Выход",
	ActionFailed:    "Ошибка: %s",
	AssignLabel:     "Ввести вещественное число %s;",
	AssignPrompt:    "Введите вещественное число %s: ",
	FractionLabel:   "Найти дробную часть суммы этих 3-х чисел;",
	RoundLabel:      "Округлить до ближайшего целого сумму этих 3-х чисел;",
	Copyright:       copyright,
}

var english = Catalog{
	Tag:             language.English,
	Cancelled:       "[Operation cancelled]",
	BelowMin:        "You entered \"%s\" — the value must be at least \"%s\"",
	AboveMax:        "You entered \"%s\" — the value must be at most \"%s\"",
	IntNotANumber:   "The value \"%s\" is not a number!",
	FloatNotANumber: "The value you entered \"%s\" is not a number!",
	OutOfRange:      "The number \"%s\" is out of the allowed range!",
	MenuPrompt:      "Menu item: ",
	Exit:            "Exit",
	ActionFailed:    "Error: %s",
	AssignLabel:     "Enter real number %s;",
	AssignPrompt:    "Enter real number %s: ",
	FractionLabel:   "Find the fractional part of the sum of these 3 numbers;",
	RoundLabel:      "Round the sum of these 3 numbers to the nearest integer;",
	Copyright:       copyright,
}

var (
	catalogs = []*Catalog{&russian, &english}
	matcher  = language.NewMatcher([]language.Tag{russian.Tag, english.Tag})
)

// Default returns the Russian catalog.
func Default() *Catalog {
	return catalogs[0]
}

// Match returns the catalog closest to the given language tag. Unknown or
// empty tags fall back to the default catalog.
func Match(tag string) *Catalog {
	tag = strings.ReplaceAll(strings.TrimSpace(tag), "_", "-")
	if tag == "" {
		return Default()
	}
	_, idx := language.MatchStrings(matcher, tag)
	if idx < 0 || idx >= len(catalogs) {
		return Default()
	}
	return catalogs[idx]
}

// Languages lists the base language of every available catalog.
func Languages() []string {
	out := make([]string, 0, len(catalogs))
	for _, c := range catalogs {
		base, _ := c.Tag.Base()
		out = append(out, base.String())
	}
	return out
}

// FormatFloat prints v with six significant digits in %g style.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
