// Package currency renders major-unit amounts as locale-aware currency strings.
package currency

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// placement is where a locale's currency pattern puts the symbol.
type placement int

const (
	symbolBefore      placement = iota // ¤#,##0.00
	symbolBeforeSpace                  // ¤ #,##0.00
	symbolAfterSpace                   // #,##0.00 ¤
)

// nbsp separates symbol and number in the spaced CLDR patterns.
const nbsp = "\u00a0"

// placements follows the CLDR standard currency pattern. Keys are a base
// language, or language-region where a region differs from its language.
// Anything missing uses symbolBefore.
var placements = map[string]placement{
	"bg": symbolAfterSpace,
	"ca": symbolAfterSpace,
	"cs": symbolAfterSpace,
	"da": symbolAfterSpace,
	"de": symbolAfterSpace,
	"el": symbolAfterSpace,
	"es": symbolAfterSpace,
	"et": symbolAfterSpace,
	"fi": symbolAfterSpace,
	"fr": symbolAfterSpace,
	"hr": symbolAfterSpace,
	"hu": symbolAfterSpace,
	"it": symbolAfterSpace,
	"lt": symbolAfterSpace,
	"lv": symbolAfterSpace,
	"nb": symbolAfterSpace,
	"pl": symbolAfterSpace,
	"pt": symbolAfterSpace,
	"ro": symbolAfterSpace,
	"ru": symbolAfterSpace,
	"sk": symbolAfterSpace,
	"sl": symbolAfterSpace,
	"sv": symbolAfterSpace,
	"uk": symbolAfterSpace,
	"vi": symbolAfterSpace,
	"nl": symbolBeforeSpace,

	"de-AT": symbolBeforeSpace,
	"de-CH": symbolBeforeSpace,
	"it-CH": symbolBeforeSpace,
	"pt-BR": symbolBeforeSpace,
	"es-MX": symbolBefore,
	"es-US": symbolBefore,
}

// exactBelow is 2^53: float64 values at or above it carry no fractional
// digits, so minor-unit rounding is skipped.
const exactBelow = 1 << 53

// Formatter formats amounts for a single locale and currency.
type Formatter struct {
	tag       language.Tag
	unit      currency.Unit
	scale     int
	placement placement
	printer   *message.Printer
}

// New builds a Formatter for a BCP 47 locale such as "en-US". The currency is
// taken from the locale's region and falls back to USD when none is known.
func New(locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return ForTag(tag), nil
}

// ForTag builds a Formatter for an already-parsed tag.
func ForTag(tag language.Tag) *Formatter {
	unit, conf := currency.FromTag(tag)
	if conf == language.No {
		unit = currency.USD
	}

	scale, _ := currency.Standard.Rounding(unit)

	return &Formatter{
		tag:       tag,
		unit:      unit,
		scale:     scale,
		placement: placementFor(tag),
		printer:   message.NewPrinter(tag),
	}
}

func placementFor(tag language.Tag) placement {
	base, _ := tag.Base()
	region, _ := tag.Region()

	if p, ok := placements[base.String()+"-"+region.String()]; ok {
		return p
	}
	return placements[base.String()]
}

// FromAcceptLanguage returns a Formatter for the first usable tag in an
// Accept-Language header, or fallback.
func FromAcceptLanguage(header string, fallback *Formatter) *Formatter {
	if header == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	if _, conf := currency.FromTag(tags[0]); conf == language.No {
		return fallback
	}
	return ForTag(tags[0])
}

// Format rounds amount half away from zero to the currency's minor unit and
// prints it with the locale's symbol placement and digit grouping. NaN prints
// as zero and infinities as the largest finite float64.
func (f *Formatter) Format(amount float64) string {
	switch {
	case math.IsNaN(amount):
		amount = 0
	case math.IsInf(amount, 1):
		amount = math.MaxFloat64
	case math.IsInf(amount, -1):
		amount = -math.MaxFloat64
	}

	if math.Abs(amount) < exactBelow {
		amount = decimal.NewFromFloat(amount).Round(int32(f.scale)).InexactFloat64()
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	sym := f.printer.Sprint(currency.Symbol(f.unit))
	num := f.printer.Sprint(number.Decimal(amount, number.Scale(f.scale)))

	switch f.placement {
	case symbolAfterSpace:
		return sign + num + nbsp + sym
	case symbolBeforeSpace:
		return sign + sym + nbsp + num
	default:
		return sign + sym + num
	}
}

// Currency is the ISO 4217 code, e.g. "USD".
func (f *Formatter) Currency() string {
	return f.unit.String()
}

// Locale is the tag this Formatter was built for.
func (f *Formatter) Locale() string {
	return f.tag.String()
}

// Scale is the number of minor-unit digits printed.
func (f *Formatter) Scale() int {
	return f.scale
}
