// Package locale holds the localized messages surfaced by the client.
package locale

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var messages = newCatalog()

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(Default.Tag()))
	for lang, table := range translations {
		for key, msg := range table {
			if err := b.SetString(lang.Tag(), key, msg); err != nil {
				panic("locale: " + err.Error())
			}
		}
	}
	return b
}

// Valid reports whether the language code is supported.
func (l Language) Valid() bool {
	for _, supported := range Languages {
		if l == supported {
			return true
		}
	}
	return false
}

func (l Language) Tag() language.Tag {
	return language.Make(string(l))
}

func (l Language) String() string {
	return string(l)
}

// Parse parses a language code. Input is case-insensitive and trimmed.
func Parse(s string) (Language, bool) {
	lang := Language(strings.TrimSpace(strings.ToLower(s)))
	if !lang.Valid() {
		return Default, false
	}
	return lang, true
}

// Messages formats the client's user-facing messages in one language.
type Messages struct {
	p *message.Printer
}

// For returns the messages of lang, falling back to Default for unsupported codes.
func For(lang Language) Messages {
	if !lang.Valid() {
		lang = Default
	}
	return Messages{p: message.NewPrinter(lang.Tag(), message.Catalog(messages))}
}

func (m Messages) MissingBaseURL() string {
	return m.p.Sprintf(keyMissingBaseURL)
}

func (m Messages) InvalidBaseURL(value string) string {
	return m.p.Sprintf(keyInvalidBaseURL, value)
}

func (m Messages) InvalidProtocol(value string) string {
	return m.p.Sprintf(keyInvalidProtocol, value)
}

func (m Messages) UnsupportedLanguage(value string) string {
	return m.p.Sprintf(keyUnsupportedLanguage, value)
}

func (m Messages) SessionExpired() string {
	return m.p.Sprintf(keySessionExpired)
}

func (m Messages) InvalidGetData(method string) string {
	return m.p.Sprintf(keyInvalidGetData, method)
}

func (m Messages) RequestFailed(status int) string {
	return m.p.Sprintf(keyRequestFailed, status)
}
