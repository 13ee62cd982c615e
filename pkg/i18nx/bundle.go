package i18nx

import (
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	lexdraft "gitlab.com/lexdraft/lexdraft-backend"
	"gitlab.com/lexdraft/lexdraft-backend/pkg/datex"
)

// NewBundle loads every embedded locales/*.toml file. English is the default
// language.
func NewBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	paths, err := fs.Glob(lexdraft.Locales, "locales/*.toml")
	if err != nil {
		return nil, fmt.Errorf("failed to list locales: %w", err)
	}

	for _, path := range paths {
		if _, err := bundle.LoadMessageFileFS(lexdraft.Locales, path); err != nil {
			return nil, fmt.Errorf("failed to load locale %s: %w", path, err)
		}
	}

	return bundle, nil
}

// Localize returns the message for key, or def when the localizer has no
// translation for it.
func Localize(l *i18n.Localizer, key string, data map[string]any, def string) string {
	if l == nil {
		return def
	}

	msg, err := l.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil || msg == "" {
		return def
	}

	return msg
}

// DateLabels localizes the sentinel labels used by datex. The date layout
// itself is not localized.
func DateLabels(l *i18n.Localizer) datex.Labels {
	return datex.Labels{
		NoDate:  Localize(l, KeyDateNoDate, nil, datex.DefaultLabels.NoDate),
		Invalid: Localize(l, KeyDateInvalid, nil, datex.DefaultLabels.Invalid),
		Year: func(year int) string {
			return Localize(l, KeyDateYear, map[string]any{ArgYear: year}, datex.DefaultLabels.Year(year))
		},
	}
}
