// Package datefmt renders instants as localized display strings.
//
// The stdlib time package cannot localize month names, so the small set of
// locales the app supports is table-driven here. Formatting is deterministic
// and never fails for any valid instant; callers pass the timezone-adjusted
// time they want displayed.
package datefmt

import (
	"fmt"
	"time"
)

// Precision selects between a full date+time rendering and time-of-day only.
type Precision int

const (
	PrecisionDateTime Precision = iota
	PrecisionTimeOnly
)

// DefaultLocale mirrors pkg/money: Indonesian merchants first.
const DefaultLocale = "id-ID"

var monthsID = [...]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// Format renders t for the given locale. Unknown locales fall back to
// DefaultLocale deterministically.
//
//	id-ID: "02 Agu 2026 14:05" / "14:05"  (24-hour)
//	en-US: "Aug 02, 2026 2:05 PM" / "2:05 PM"  (12-hour)
func Format(t time.Time, locale string, precision Precision) string {
	switch locale {
	case "en-US", "en-KE":
		if precision == PrecisionTimeOnly {
			return t.Format("3:04 PM")
		}
		return t.Format("Jan 02, 2006 3:04 PM")
	default:
		if precision == PrecisionTimeOnly {
			return t.Format("15:04")
		}
		return fmt.Sprintf("%02d %s %d %s",
			t.Day(), monthsID[t.Month()-1], t.Year(), t.Format("15:04"))
	}
}
