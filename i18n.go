package jsonschema

import (
	"embed"
	"strconv"

	"github.com/kaptinlin/go-i18n"
)

//go:embed locales/*.json
var localesFS embed.FS

// I18n returns an initialized internationalization bundle with the
// embedded locale catalogs (spec.md §3 ValidationMessage.Code is the
// lookup key every catalog entry is keyed by).
func I18n() (*i18n.I18n, error) {
	bundle := i18n.NewBundle(
		i18n.WithDefaultLocale("en"),
		i18n.WithLocales("en", "zh-Hans"),
	)

	if err := bundle.LoadFS(localesFS, "locales/*.json"); err != nil {
		return nil, err
	}
	return bundle, nil
}

// Localize renders m using localizer, keyed by m.Code. A nil localizer
// yields m.Message (the English template already rendered by newMessage);
// otherwise the result is whatever localizer.Get returns, and m.Message is
// not substituted when the locale has no entry for m.Code.
func (m ValidationMessage) Localize(localizer *i18n.Localizer) string {
	if localizer == nil {
		return m.Message
	}
	vars := map[string]any{"path": m.Path}
	for i, arg := range m.Arguments {
		vars["arg"+strconv.Itoa(i+1)] = arg
	}
	return localizer.Get(m.Code, i18n.Vars(vars))
}
