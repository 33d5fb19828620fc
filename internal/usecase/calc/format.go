package calc

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var groupPrinter = message.NewPrinter(language.English)

// GroupDigits renders n with English thousands separators, e.g. 2,432,902,008,176,640,000.
func GroupDigits(n uint64) string {
	return groupPrinter.Sprintf("%d", n)
}
