package money

import "strconv"

// DefaultLocale is used when a store has no locale configured or an unknown
// locale is requested. The app targets Indonesian warung merchants first.
const DefaultLocale = "id-ID"

// localeSpec describes how a locale renders a currency amount.
type localeSpec struct {
	symbol       string
	symbolSpace  bool // space between symbol and digits
	thousandsSep byte
	decimalSep   byte
	decimals     int // digits after the decimal separator
}

var localeSpecs = map[string]localeSpec{
	"id-ID": {symbol: "Rp", thousandsSep: '.', decimalSep: ',', decimals: 0},
	"en-US": {symbol: "$", thousandsSep: ',', decimalSep: '.', decimals: 2},
	"en-KE": {symbol: "KSh", symbolSpace: true, thousandsSep: ',', decimalSep: '.', decimals: 2},
}

// FormatCurrency renders a non-negative amount as a localized display string,
// grouping thousands and placing the locale's currency symbol. Unknown locales
// deterministically fall back to DefaultLocale.
//
// This is a boundary-format function: it never panics for any valid Money;
// a negative amount returns ErrInvalidInput.
func FormatCurrency(amount Money, locale string) (string, error) {
	if amount < 0 {
		return "", ErrInvalidInput
	}

	spec, ok := localeSpecs[locale]
	if !ok {
		spec = localeSpecs[DefaultLocale]
	}

	major := int64(amount)
	minor := int64(0)
	if spec.decimals > 0 {
		div := int64(1)
		for i := 0; i < spec.decimals; i++ {
			div *= 10
		}
		major = int64(amount) / div
		minor = int64(amount) % div
	}

	var b []byte
	b = append(b, spec.symbol...)
	if spec.symbolSpace {
		b = append(b, ' ')
	}
	b = append(b, groupThousands(major, spec.thousandsSep)...)
	if spec.decimals > 0 {
		b = append(b, spec.decimalSep)
		b = append(b, padLeft(minor, spec.decimals)...)
	}
	return string(b), nil
}

func groupThousands(n int64, sep byte) string {
	digits := []byte(strconv.FormatInt(n, 10))
	if len(digits) <= 3 {
		return string(digits)
	}

	var out []byte
	lead := len(digits) % 3
	if lead > 0 {
		out = append(out, digits[:lead]...)
	}
	for i := lead; i < len(digits); i += 3 {
		if len(out) > 0 {
			out = append(out, sep)
		}
		out = append(out, digits[i:i+3]...)
	}
	return string(out)
}

func padLeft(n int64, width int) string {
	s := strconv.FormatInt(n, 10)
	for len(s) < width {
		s = "0" + s
	}
	return s
}
