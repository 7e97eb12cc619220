package messages

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	English             = language.English
	BrazilianPortuguese = language.MustParse("pt-BR")
)

var supportedTags = []language.Tag{
	BrazilianPortuguese,
	English,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Default returns the default language tag.
func Default() language.Tag {
	return BrazilianPortuguese
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// Resolve parses value and matches it against the supported languages.
func Resolve(value string) (language.Tag, error) {
	parsed, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, fmt.Errorf("parse language %q: %w", value, err)
	}
	_, index, confidence := tagMatcher.Match(parsed)
	if confidence == language.No {
		return language.Tag{}, fmt.Errorf("unsupported language %q", value)
	}
	return supportedTags[index], nil
}
