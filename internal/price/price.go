package price

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Prices are integer amounts of the smallest currency unit. Keeping them
// decimal-free means repeated addition never accumulates rounding error.

var separatorStripper = strings.NewReplacer(",", "", " ", "", " ", "", " ", "")

// ToNumber parses a human-formatted price such as "320,000" into its
// numeric amount. Unparsable input yields 0 rather than an error: callers
// render invalid data as zero instead of failing the whole page.
func ToNumber(display string) int64 {
	s := strings.TrimSpace(separatorStripper.Replace(display))
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Formatter renders amounts with the thousands separators of one locale.
type Formatter struct {
	p *message.Printer
}

func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{p: message.NewPrinter(tag)}
}

// ToDisplay formats amount with locale-specific thousands separators,
// e.g. 320000 -> "320,000" under language.English.
func (f *Formatter) ToDisplay(amount int64) string {
	return f.p.Sprintf("%d", amount)
}
