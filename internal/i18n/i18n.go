package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

// Language представляет поддерживаемый язык
type Language string

const (
	LangRussian Language = "ru"
	LangEnglish Language = "en"
	DefaultLang Language = LangRussian
)

// translations хранит все переводы
var translations = struct {
	sync.RWMutex
	data map[Language]map[string]string
}{data: make(map[Language]map[string]string)}

var loadOnce sync.Once

// Load загружает встроенные переводы. Повторные вызовы ничего не делают.
func Load() error {
	var loadErr error
	loadOnce.Do(func() {
		loadErr = load()
	})
	return loadErr
}

func load() error {
	translations.Lock()
	defer translations.Unlock()

	for _, lang := range []Language{LangRussian, LangEnglish} {
		data, err := embeddedLocales.ReadFile("locales/" + string(lang) + ".json")
		if err != nil {
			return fmt.Errorf("ошибка чтения файла локализации %s: %w", lang, err)
		}

		var langData map[string]string
		if err := json.Unmarshal(data, &langData); err != nil {
			return fmt.Errorf("ошибка парсинга файла локализации %s: %w", lang, err)
		}

		translations.data[lang] = langData
		log.Debug().Str("lang", string(lang)).Int("keys", len(langData)).Msg("Загружена локализация")
	}

	return nil
}

// T возвращает перевод для указанного ключа и языка
func T(key string, lang Language) string {
	if err := Load(); err != nil {
		log.Error().Err(err).Msg("Локализация не загружена")
		return key
	}

	translations.RLock()
	defer translations.RUnlock()

	if langData, ok := translations.data[lang]; ok {
		if text, ok := langData[key]; ok {
			return text
		}
	}

	// Fallback на русский
	if lang != DefaultLang {
		if langData, ok := translations.data[DefaultLang]; ok {
			if text, ok := langData[key]; ok {
				return text
			}
		}
	}

	log.Warn().Str("key", key).Str("lang", string(lang)).Msg("Перевод не найден")
	return key
}

// Tf возвращает форматированный перевод
func Tf(key string, lang Language, args ...interface{}) string {
	template := T(key, lang)
	if len(args) == 0 {
		return template
	}
	return fmt.Sprintf(template, args...)
}

// ParseLanguage преобразует строку в Language
func ParseLanguage(lang string) Language {
	switch Language(strings.ToLower(strings.TrimSpace(lang))) {
	case LangEnglish:
		return LangEnglish
	default:
		return LangRussian
	}
}

// Weekday возвращает название дня недели (1 - понедельник)
func Weekday(day int, lang Language) string {
	if day < 1 || day > 7 {
		return ""
	}
	return T(fmt.Sprintf("weekday.%d", day), lang)
}
