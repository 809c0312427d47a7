package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/goccy/go-json"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var locales embed.FS

type Service interface {
	T(lang string, key string, params map[string]any) string
}

type I18nService struct {
	bundle *i18n.Bundle
}

// NewInitI18nService lädt alle eingebetteten Sprachdateien. Englisch ist die Fallback-Sprache.
func NewInitI18nService() *I18nService {
	svc, err := newI18nService(locales)
	if err != nil {
		panic(err)
	}
	return svc
}

func newI18nService(fsys fs.FS) (*I18nService, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	files, err := fs.Glob(fsys, "locales/*.json")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("i18n: keine Sprachdateien gefunden")
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(fsys, file); err != nil {
			return nil, fmt.Errorf("i18n: %s: %w", file, err)
		}
	}

	return &I18nService{bundle: bundle}, nil
}

// T übersetzt key in lang. Unbekannte Schlüssel werden unverändert zurückgegeben.
func (g *I18nService) T(lang string, key string, params map[string]any) string {
	localizer := i18n.NewLocalizer(g.bundle, lang)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: params,
	})

	if err != nil {
		return key
	}

	return msg
}
