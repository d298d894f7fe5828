package programs

import (
	_ "embed"
	"fmt"
	"sort"

	"fitcoach/internal/models"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Key ключ шаблона в каталоге
type Key struct {
	Discipline models.Discipline
	Gender     models.Gender
	Tier       models.Tier
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s", k.Discipline, k.Gender, k.Tier)
}

// Catalog неизменяемый каталог шаблонов программ.
// Создаётся один раз при старте и безопасен для конкурентного чтения.
type Catalog struct {
	templates map[Key]*models.ProgramTemplate
}

// catalogFile формат файла каталога
type catalogFile struct {
	Programs []templateEntry `yaml:"programs"`
}

type templateEntry struct {
	Name       string `yaml:"name"`
	Discipline string `yaml:"discipline"`
	Gender     string `yaml:"gender"`
	Tier       string `yaml:"tier"`

	// Недельная структура или блочная - используется первая единица
	Weeks  []weekEntry  `yaml:"weeks,omitempty"`
	Blocks []blockEntry `yaml:"blocks,omitempty"`
}

type weekEntry struct {
	Days []models.TrainingDay `yaml:"days"`
}

type blockEntry struct {
	Name      string               `yaml:"name"`
	Trainings []models.TrainingDay `yaml:"trainings"`
}

// DefaultCatalog загружает встроенный каталог
func DefaultCatalog(log zerolog.Logger) (*Catalog, error) {
	return LoadCatalog(embeddedCatalog, log)
}

// LoadCatalog разбирает YAML каталога и проверяет его
func LoadCatalog(data []byte, log zerolog.Logger) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("не удалось распарсить каталог программ: %w", err)
	}

	c := &Catalog{templates: make(map[Key]*models.ProgramTemplate, len(file.Programs))}

	for i, entry := range file.Programs {
		key, err := entryKey(entry)
		if err != nil {
			return nil, fmt.Errorf("программа #%d (%s): %w", i+1, entry.Name, err)
		}
		if _, dup := c.templates[key]; dup {
			return nil, fmt.Errorf("программа %s задана дважды", key)
		}

		days := firstUnit(entry)
		if len(days) == 0 {
			return nil, fmt.Errorf("программа %s: нет тренировочных дней", key)
		}
		for d, day := range days {
			if len(day.Exercises) == 0 {
				return nil, fmt.Errorf("программа %s: день %d без упражнений", key, d+1)
			}
			for _, ex := range day.Exercises {
				if !ex.Volume.Valid() {
					log.Warn().
						Str("program", key.String()).
						Str("exercise", ex.Name).
						Str("volume", ex.Volume.Raw).
						Msg("Объём не распознан, будет использован без масштабирования")
				}
			}
		}

		c.templates[key] = &models.ProgramTemplate{
			Name:       entry.Name,
			Discipline: key.Discipline,
			Gender:     key.Gender,
			Tier:       key.Tier,
			Days:       days,
		}
	}

	log.Info().Int("templates", len(c.templates)).Msg("Каталог программ загружен")
	return c, nil
}

func entryKey(e templateEntry) (Key, error) {
	k := Key{
		Discipline: models.Discipline(e.Discipline),
		Gender:     models.Gender(e.Gender),
		Tier:       models.Tier(e.Tier),
	}
	switch k.Discipline {
	case models.DisciplineStrength, models.DisciplineBodybuilding:
	default:
		return k, fmt.Errorf("неизвестная дисциплина %q", e.Discipline)
	}
	switch k.Gender {
	case models.GenderMale, models.GenderFemale:
	default:
		return k, fmt.Errorf("неизвестный пол %q", e.Gender)
	}
	switch k.Tier {
	case models.TierBeginner, models.TierIntermediate, models.TierAdvanced:
	default:
		return k, fmt.Errorf("неизвестный уровень %q", e.Tier)
	}
	return k, nil
}

// firstUnit возвращает дни первой недели или тренировки первого блока
func firstUnit(e templateEntry) []models.TrainingDay {
	if len(e.Weeks) > 0 {
		return e.Weeks[0].Days
	}
	if len(e.Blocks) > 0 {
		return e.Blocks[0].Trainings
	}
	return nil
}

// Lookup возвращает шаблон. Шаблон только для чтения.
func (c *Catalog) Lookup(d models.Discipline, g models.Gender, t models.Tier) (*models.ProgramTemplate, bool) {
	tpl, ok := c.templates[Key{Discipline: d, Gender: g, Tier: t}]
	return tpl, ok
}

// Keys возвращает отсортированный список ключей каталога
func (c *Catalog) Keys() []Key {
	keys := make([]Key, 0, len(c.templates))
	for k := range c.templates {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
	return keys
}

// Len возвращает число шаблонов
func (c *Catalog) Len() int {
	return len(c.templates)
}
