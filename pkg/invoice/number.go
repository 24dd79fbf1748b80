// Package invoice formats human-readable invoice numbers from a template,
// the transaction's issue time, and a per-store daily sequence.
package invoice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultTemplate produces numbers like "INV-20260831-0042".
const DefaultTemplate = "INV-{YYYY}{MM}{DD}-{SEQ4}"

var seqPadRe = regexp.MustCompile(`\{SEQ(\d+)\}`)

// FormatNumber expands the date and sequence tokens of a template.
// Supported tokens: {YYYY} {YY} {MM} {DD} {SEQ} {SEQn} (zero-padded to n).
//
// Pure and deterministic: no side effects, no clock, no storage access.
func FormatNumber(template string, issuedAt time.Time, seq int64) (string, error) {
	if template == "" {
		return "", fmt.Errorf("invoice number template is empty")
	}
	if seq <= 0 {
		return "", fmt.Errorf("invalid invoice sequence: %d", seq)
	}

	out := template
	out = strings.ReplaceAll(out, "{YYYY}", issuedAt.Format("2006"))
	out = strings.ReplaceAll(out, "{YY}", issuedAt.Format("06"))
	out = strings.ReplaceAll(out, "{MM}", issuedAt.Format("01"))
	out = strings.ReplaceAll(out, "{DD}", issuedAt.Format("02"))
	out = strings.ReplaceAll(out, "{SEQ}", strconv.FormatInt(seq, 10))

	out = seqPadRe.ReplaceAllStringFunc(out, func(m string) string {
		match := seqPadRe.FindStringSubmatch(m)
		width, err := strconv.Atoi(match[1])
		if err != nil || width <= 0 {
			return m
		}
		return fmt.Sprintf("%0*d", width, seq)
	})

	if strings.ContainsAny(out, "{}") {
		return "", fmt.Errorf("unresolved token in invoice template: %s", out)
	}
	return out, nil
}
