package middleware

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
)

// Unterstützte Sprachen, die erste ist der Fallback.
var languageMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.German,
})

// AcceptLanguageMiddleware wählt anhand des Accept-Language-Headers die passende
// unterstützte Sprache und legt deren Basiskürzel ("en", "de") unter c.Locals("lang") ab.
func AcceptLanguageMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("lang", resolveLanguage(c.Get(fiber.HeaderAcceptLanguage)))
		return c.Next()
	}
}

func resolveLanguage(header string) string {
	if header == "" {
		return "en"
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "en"
	}
	tag, _, _ := languageMatcher.Match(tags...)
	base, _ := tag.Base()
	return base.String()
}
