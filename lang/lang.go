// Package lang holds the reply texts in every supported language.
package lang

import (
	"strings"

	"food-picker/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	Zh = "zh"
	En = "en"
)

var tags = map[string]language.Tag{
	Zh: language.Chinese,
	En: language.English,
}

var printers = mustBuildPrinters()

func mustBuildPrinters() map[string]*message.Printer {
	b := catalog.NewBuilder(catalog.Fallback(language.Chinese))
	for code, msgs := range messages {
		for key, msg := range msgs {
			if err := b.SetString(tags[code], key, msg); err != nil {
				panic("lang: " + code + "/" + key + ": " + err.Error())
			}
		}
	}
	out := make(map[string]*message.Printer, len(tags))
	for code, tag := range tags {
		out[code] = message.NewPrinter(tag, message.Catalog(b))
	}
	return out
}

// Supported reports whether code names a language with a catalog.
func Supported(code string) bool {
	_, ok := tags[code]
	return ok
}

// T formats the message for key in the given language, falling back to Chinese.
func T(code, key string, args ...interface{}) string {
	p, ok := printers[code]
	if !ok {
		p = printers[Zh]
	}
	return p.Sprintf(key, args...)
}

// MenuName is the display name of a menu type.
func MenuName(code string, t models.MenuType) string {
	return T(code, "menu_"+string(t))
}

// IsConfirm reports whether a reply confirms a destructive action.
func IsConfirm(text string) bool {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "确认", "confirm", "yes":
		return true
	}
	return false
}
