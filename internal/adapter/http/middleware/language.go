package middleware

import (
	"taskmanager/pkg/translator"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const langKey = "lang"

var supportedLanguages = language.NewMatcher([]language.Tag{
	language.English, // first entry is the fallback
	language.French,
})

// LanguageMiddleware resolves Accept-Language to one of the catalog languages.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(langKey, resolveLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get(langKey); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}

func resolveLanguage(header string) string {
	if header == "" {
		return translator.LanguageEn
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return translator.LanguageEn
	}
	_, index, _ := supportedLanguages.Match(tags...)
	if index == 1 {
		return translator.LanguageFr
	}
	return translator.LanguageEn
}
