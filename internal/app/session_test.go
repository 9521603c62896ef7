package app_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/san-kum/sumcalc/internal/app"
	"github.com/san-kum/sumcalc/internal/calc"
	"github.com/san-kum/sumcalc/internal/config"
	"github.com/san-kum/sumcalc/internal/locale"
)

const menuText = "1. Ввести вещественное число x;\n" +
	"2. Ввести вещественное число y;\n" +
	"3. Ввести вещественное число z;\n" +
	"4. Найти дробную часть суммы этих 3-х чисел;\n" +
	"5. Округлить до ближайшего целого сумму этих 3-х чисел;\n" +
	"0. Выход\n\n\n"

// result is how the transcript shows the output of an action selected at
// the menu prompt.
func result(s string) string {
	return "Пункт меню: \n\n" + s + "\n\n\n"
}

var _ = Describe("Session", func() {
	var (
		cfg     *config.Config
		out     *bytes.Buffer
		session *app.Session
	)

	BeforeEach(func() {
		cfg = config.DefaultConfig()
		cfg.Plain = true
		out = &bytes.Buffer{}
	})

	run := func(script string) string {
		session = app.New(strings.NewReader(script), out, cfg, zerolog.Nop())
		Expect(session.Run()).To(Succeed())
		return out.String()
	}

	It("exits on 0 and prints the copyright line", func() {
		transcript := run("0\n")

		Expect(transcript).To(HavePrefix(menuText + "Пункт меню: "))
		Expect(transcript).To(HaveSuffix("\n\n\n© 2025 Fedor Kondakov\n"))
		Expect(session.Vars()).To(Equal(calc.Vars{}))
	})

	It("sums and rounds whole values", func() {
		transcript := run("1\n1.5\n2\n2.5\n3\n1.0\n4\n5\n0\n")

		Expect(session.Vars()).To(Equal(calc.Vars{X: 1.5, Y: 2.5, Z: 1.0}))
		Expect(strings.Count(transcript, result("5"))).To(Equal(2))
		Expect(transcript).To(ContainSubstring("Введите вещественное число x: "))
		Expect(transcript).To(ContainSubstring("Введите вещественное число z: "))
	})

	It("rounds a fractional sum to the nearest integer", func() {
		transcript := run("1\n1.2\n2\n1.2\n3\n1.2\n4\n5\n0\n")

		Expect(transcript).To(ContainSubstring(result("3.6")))
		Expect(transcript).To(ContainSubstring(result("4")))
	})

	It("rounds negative ties away from zero", func() {
		transcript := run("1\n-2.5\n5\n0\n")

		Expect(transcript).To(ContainSubstring(result("-3")))
	})

	It("keeps a variable when its prompt is cancelled", func() {
		transcript := run("1\n4\n1\n   \n0\n")

		Expect(session.Vars().X).To(Equal(4.0))
		Expect(transcript).To(ContainSubstring("[Отмена операции]"))
	})

	It("re-prompts on invalid values without changing state", func() {
		transcript := run("2\nabc\n3000000000\n7\n0\n")

		Expect(session.Vars()).To(Equal(calc.Vars{Y: 7}))
		Expect(transcript).To(ContainSubstring("Введённое вами значение \"abc\" не является числом!"))
		Expect(transcript).To(ContainSubstring("Вы ввели \"3e+09\" — значение должно быть не больше \"2.14748e+09\""))
	})

	It("redisplays the menu when the selection is cancelled", func() {
		transcript := run("\n0\n")

		Expect(strings.Count(transcript, menuText)).To(Equal(2))
		Expect(transcript).To(ContainSubstring("[Отмена операции]"))
	})

	It("rejects selections outside the menu", func() {
		transcript := run("9\n-1\nfoo\n0\n")

		Expect(session.Vars()).To(Equal(calc.Vars{}))
		Expect(strings.Count(transcript, menuText)).To(Equal(1))
		Expect(transcript).To(ContainSubstring("Вы ввели \"9\" — значение должно быть не больше \"5\""))
		Expect(transcript).To(ContainSubstring("Вы ввели \"-1\" — значение должно быть не меньше \"0\""))
		Expect(transcript).To(ContainSubstring("Введённое значение \"foo\" не является числом!"))
	})

	It("ends the session when input runs out", func() {
		transcript := run("3\n2.5\n")

		Expect(session.Vars().Z).To(Equal(2.5))
		Expect(transcript).To(HaveSuffix("© 2025 Fedor Kondakov\n"))
	})

	It("ends the session when input runs out inside an action", func() {
		transcript := run("1\n")

		Expect(session.Vars()).To(Equal(calc.Vars{}))
		Expect(strings.Count(transcript, menuText)).To(Equal(1))
		Expect(strings.Count(transcript, "[Отмена операции]")).To(Equal(1))
		Expect(transcript).To(HaveSuffix("Введите вещественное число x: \n[Отмена операции]\n\n\n\n© 2025 Fedor Kondakov\n"))
	})

	Context("with the English catalog", func() {
		BeforeEach(func() {
			cfg.Lang = "en"
		})

		It("prints English labels", func() {
			transcript := run("1\n2\n5\n0\n")

			Expect(transcript).To(ContainSubstring("1. Enter real number x;"))
			Expect(transcript).To(ContainSubstring("0. Exit"))
			Expect(transcript).To(ContainSubstring("Menu item: \n\n2\n\n\n"))
			Expect(transcript).To(HaveSuffix("© 2025 Fedor Kondakov\n"))
		})
	})

	Context("with narrow float bounds", func() {
		BeforeEach(func() {
			cfg.FloatMin, cfg.FloatMax = -10, 10
		})

		It("enforces the configured bounds", func() {
			transcript := run("1\n11\n10\n0\n")

			Expect(session.Vars().X).To(Equal(10.0))
			Expect(transcript).To(ContainSubstring("Вы ввели \"11\" — значение должно быть не больше \"10\""))
		})
	})
})

var _ = Describe("Items", func() {
	It("builds five entries in menu order", func() {
		items := app.Items(locale.Default())

		Expect(items).To(HaveLen(5))
		Expect(items[0].Label).To(Equal("Ввести вещественное число x;"))
		Expect(items[2].Label).To(Equal("Ввести вещественное число z;"))
		Expect(items[4].Label).To(Equal("Округлить до ближайшего целого сумму этих 3-х чисел;"))
	})
})
