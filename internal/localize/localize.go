// Package localize formats diagnostic and error strings through a
// locale-aware printer, so the assembler and interpreter never hand-roll
// fmt.Sprintf for user-facing text.
package localize

import (
	"log"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("emu502: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// F formats an en-US Sprintf-style reference through the active locale.
func F(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
