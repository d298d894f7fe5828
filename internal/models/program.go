package models

import (
	"fmt"
	"strings"
)

// Discipline стиль тренировок, определяющий семейство шаблонов
type Discipline string

const (
	DisciplineStrength     Discipline = "strength"
	DisciplineBodybuilding Discipline = "bodybuilding"
)

// Gender ключ каталога по полу
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Tier уровень подготовки
type Tier string

const (
	TierBeginner     Tier = "beginner"
	TierIntermediate Tier = "intermediate"
	TierAdvanced     Tier = "advanced"
)

// Volume объём упражнения в формате "подходы x повторы" ("4x5", "3x8-12").
// В JSON и YAML представлен строкой.
type Volume struct {
	Sets     int
	RepsLow  int
	RepsHigh int // 0 - одно число повторов
	Raw      string
}

// Valid сообщает, удалось ли разобрать строку объёма
func (v Volume) Valid() bool {
	return v.Sets > 0 && v.RepsLow > 0
}

// String возвращает объём в каноническом виде
func (v Volume) String() string {
	if !v.Valid() {
		return v.Raw
	}
	if v.RepsHigh > 0 && v.RepsHigh != v.RepsLow {
		return fmt.Sprintf("%dx%d-%d", v.Sets, v.RepsLow, v.RepsHigh)
	}
	return fmt.Sprintf("%dx%d", v.Sets, v.RepsLow)
}

// MarshalText сериализует объём строкой
func (v Volume) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText разбирает объём из строки
func (v *Volume) UnmarshalText(text []byte) error {
	*v = ParseVolume(string(text))
	return nil
}

// ParseVolume разбирает строку вида "4x10", "3х8-12", "5×5".
// Нераспознанная строка сохраняется в Raw, Valid() вернёт false.
func ParseVolume(s string) Volume {
	raw := strings.TrimSpace(s)
	v := Volume{Raw: raw}

	normalized := strings.ToLower(raw)
	normalized = strings.NewReplacer("х", "x", "×", "x", " ", "").Replace(normalized)

	setsPart, repsPart, ok := strings.Cut(normalized, "x")
	if !ok {
		return v
	}
	sets, ok := parsePositive(setsPart)
	if !ok {
		return v
	}

	lowPart, highPart, isRange := strings.Cut(repsPart, "-")
	low, ok := parsePositive(lowPart)
	if !ok {
		return v
	}
	high := 0
	if isRange {
		high, ok = parsePositive(highPart)
		if !ok || high < low {
			return v
		}
	}

	v.Sets = sets
	v.RepsLow = low
	v.RepsHigh = high
	return v
}

func parsePositive(s string) (int, bool) {
	if s == "" || len(s) > 4 {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, n > 0
}

// Exercise упражнение шаблона
type Exercise struct {
	Name   string `json:"name" yaml:"name"`
	Volume Volume `json:"volume" yaml:"volume"`
	Load   string `json:"load,omitempty" yaml:"load,omitempty"` // вес или light/medium/heavy
}

// TrainingDay тренировочный день
type TrainingDay struct {
	Title     string     `json:"title" yaml:"title"`
	Weekday   int        `json:"weekday,omitempty" yaml:"-"` // 1-7, назначается при адаптации
	Exercises []Exercise `json:"exercises" yaml:"exercises"`
}

// ProgramTemplate заранее составленная программа
type ProgramTemplate struct {
	Name       string        `json:"name"`
	Discipline Discipline    `json:"discipline"`
	Gender     Gender        `json:"gender"`
	Tier       Tier          `json:"tier"`
	Days       []TrainingDay `json:"days"` // первая неделя или первый блок
}

// Substitution запись о замене упражнения
type Substitution struct {
	Day         int    `json:"day"`
	Original    string `json:"original"`
	Replacement string `json:"replacement"`
	Reason      string `json:"reason"` // equipment | injury
}

// AdaptationSummary параметры адаптации (для контекста генерации плана)
type AdaptationSummary struct {
	IntensityMultiplier float64        `json:"intensity_multiplier"`
	FitnessLevel        int            `json:"fitness_level"`
	AvailableDays       []int          `json:"available_days"`
	SessionDuration     string         `json:"session_duration"`
	Equipment           []string       `json:"equipment"`
	Injuries            []string       `json:"injuries"`
	PreferredExercises  []string       `json:"preferred_exercises,omitempty"`
	Substitutions       []Substitution `json:"substitutions,omitempty"`
}

// AdaptedProgram персонализированная программа
type AdaptedProgram struct {
	TemplateName string            `json:"template_name,omitempty"`
	Discipline   Discipline        `json:"discipline"`
	Tier         Tier              `json:"tier"`
	Gender       Gender            `json:"gender"`
	Days         []TrainingDay     `json:"days"`
	Summary      AdaptationSummary `json:"summary"`
}

// Empty сообщает, что шаблон не найден и персонализация невозможна
func (p *AdaptedProgram) Empty() bool {
	return len(p.Days) == 0
}

// ExerciseCount возвращает общее число упражнений
func (p *AdaptedProgram) ExerciseCount() int {
	n := 0
	for _, d := range p.Days {
		n += len(d.Exercises)
	}
	return n
}
