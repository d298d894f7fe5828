package models

import (
	"fmt"
	"sort"
	"strings"
)

// Цели, ведущие к силовому семейству шаблонов
const (
	GoalImproveStrength = "improve_strength"
	GoalPowerlifting    = "powerlifting"
)

// Значения по умолчанию для незаполненных полей анкеты
const (
	DefaultExperience      = "beginner"
	DefaultSessionDuration = "medium"
	DefaultFitnessLevel    = 5
)

// DefaultAvailableDays пн, ср, пт
var DefaultAvailableDays = []int{1, 3, 5}

// UserPreferences анкета пользователя для подбора программы.
// Любое поле может отсутствовать.
type UserPreferences struct {
	Goals              string   `json:"goals,omitempty"`
	Experience         string   `json:"experience,omitempty"`
	AvailableDays      []int    `json:"availableDays,omitempty"`
	SessionDuration    string   `json:"sessionDuration,omitempty"`
	Equipment          []string `json:"equipment,omitempty"`
	Injuries           []string `json:"injuries,omitempty"`
	FitnessLevel       int      `json:"fitnessLevel,omitempty"` // 1-10, 0 - не указан
	PreferredExercises []string `json:"preferredExercises,omitempty"`
	Gender             string   `json:"gender,omitempty"`
}

// WithDefaults возвращает копию анкеты с подставленными значениями по умолчанию
func (p UserPreferences) WithDefaults() UserPreferences {
	out := p
	if out.Experience == "" {
		out.Experience = DefaultExperience
	}
	if len(out.AvailableDays) == 0 {
		out.AvailableDays = append([]int(nil), DefaultAvailableDays...)
	} else {
		out.AvailableDays = append([]int(nil), p.AvailableDays...)
	}
	if out.SessionDuration == "" {
		out.SessionDuration = DefaultSessionDuration
	}
	out.Equipment = append([]string{}, p.Equipment...)
	out.Injuries = append([]string{}, p.Injuries...)
	if len(p.PreferredExercises) > 0 {
		out.PreferredExercises = append([]string(nil), p.PreferredExercises...)
	}
	if out.FitnessLevel == 0 {
		out.FitnessLevel = DefaultFitnessLevel
	}
	if out.Gender == "" {
		out.Gender = string(GenderMale)
	}
	return out
}

// Fingerprint детерминированный ключ анкеты (для кэша сгенерированных планов)
func (p UserPreferences) Fingerprint() string {
	d := p.WithDefaults()
	norm := func(items []string) string {
		c := make([]string, 0, len(items))
		for _, s := range items {
			c = append(c, strings.ToLower(strings.TrimSpace(s)))
		}
		sort.Strings(c)
		return strings.Join(c, ",")
	}
	return fmt.Sprintf("%s|%s|%d|%s|%v|%s|%s|%s|%s",
		d.Goals, d.Experience, d.FitnessLevel, d.Gender, d.AvailableDays,
		d.SessionDuration, norm(d.Equipment), norm(d.Injuries), norm(d.PreferredExercises))
}
