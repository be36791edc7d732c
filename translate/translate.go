// Package translate localizes the user-facing messages of the toolkit.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// fallback is used when the host reports no usable locale.
const fallback = "en-US"

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("wordisa: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{fallback}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Use switches the message printer to a specific language tag.
func Use(tag language.Tag) {
	printer = message.NewPrinter(tag)
}
