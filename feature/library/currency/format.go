package currency

import (
	"fmt"
	"math"

	"gamesync/feature/library/models"

	xcurrency "golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatMinorUnits renders an amount of minor units as a display string with
// the currency symbol, e.g. 1999 EUR -> "€ 19.99".
func FormatMinorUnits(amount int64, code string) string {
	unit, err := xcurrency.ParseISO(code)
	if err != nil {
		// Unknown code, fall back to a plain rendering.
		return fmt.Sprintf("%.2f %s", float64(amount)/100, code)
	}

	p := message.NewPrinter(language.English)
	return p.Sprintf("%v", xcurrency.Symbol(unit.Amount(float64(amount)/100)))
}

// ApplyRate converts a quote into the target currency in place, rewriting
// amounts, currency code, and formatted display strings. Rounding is to the
// nearest minor unit.
func ApplyRate(q *models.PriceQuote, rate float64, to string) {
	if q == nil || rate <= 0 {
		return
	}

	q.Initial = int64(math.Round(float64(q.Initial) * rate))
	q.Final = int64(math.Round(float64(q.Final) * rate))
	q.Currency = to
	q.InitialFormatted = FormatMinorUnits(q.Initial, to)
	q.FinalFormatted = FormatMinorUnits(q.Final, to)
}
