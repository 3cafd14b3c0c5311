package translator

import (
	"embed"
	"io/fs"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed translation/*.toml
var embeddedTranslations embed.FS

var Translator *i18n.Bundle

type Config struct {
	// Files holds the message files; the embedded catalog is used when nil.
	Files              fs.FS
	TranslationFolder  string
	SupportedLanguages []string // List of supported languages
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"

	defaultTranslationFolder = "translation"
)

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files := cfg.Files
	folder := cfg.TranslationFolder
	if files == nil {
		files = embeddedTranslations
		folder = defaultTranslationFolder
	}
	if folder == "" {
		folder = "."
	}

	lstFiles, err := fs.ReadDir(files, folder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", folder), zap.Error(err))
		return
	}

	for _, f := range lstFiles {
		if f.IsDir() || !isSupported(f.Name(), cfg.SupportedLanguages) {
			continue
		}

		if _, err := Translator.LoadMessageFileFS(files, path.Join(folder, f.Name())); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}
}

// isSupported reports whether a file such as "fr.toml" belongs to one of the
// supported languages; an empty list accepts every file.
func isSupported(fileName string, supported []string) bool {
	if len(supported) == 0 {
		return true
	}
	lang := fileName[:len(fileName)-len(path.Ext(fileName))]
	for _, candidate := range supported {
		if candidate == lang {
			return true
		}
	}
	return false
}
