package programs

import "fitcoach/internal/models"

// Пороги уровня подготовки для повышения уровня программы
const (
	advancedLevelThreshold     = 8
	intermediateLevelThreshold = 5
)

// Selection результат подбора шаблона.
// Template == nil, если для комбинации нет шаблона в каталоге.
type Selection struct {
	Template   *models.ProgramTemplate
	Discipline models.Discipline
	Tier       models.Tier
	Gender     models.Gender
}

// DisciplineFor определяет дисциплину по цели
func DisciplineFor(goals string) models.Discipline {
	switch goals {
	case models.GoalImproveStrength, models.GoalPowerlifting:
		return models.DisciplineStrength
	default:
		return models.DisciplineBodybuilding
	}
}

// TierFor определяет уровень программы. Уровень подготовки и заявленный опыт
// равноправны: любой из них может повысить уровень, но не понизить.
func TierFor(experience string, fitnessLevel int) models.Tier {
	switch {
	case experience == string(models.TierAdvanced) || fitnessLevel >= advancedLevelThreshold:
		return models.TierAdvanced
	case experience == string(models.TierIntermediate) || fitnessLevel >= intermediateLevelThreshold:
		return models.TierIntermediate
	default:
		return models.TierBeginner
	}
}

// GenderFor возвращает ключ каталога по полу (по умолчанию мужской)
func GenderFor(gender string) models.Gender {
	if gender == string(models.GenderFemale) {
		return models.GenderFemale
	}
	return models.GenderMale
}

// SelectProgram подбирает шаблон программы по анкете.
// Незаполненные поля берутся по умолчанию (опыт beginner, уровень 5, пол male),
// неизвестные значения уходят в ветку по умолчанию, ошибок нет.
func (c *Catalog) SelectProgram(prefs models.UserPreferences) Selection {
	p := prefs.WithDefaults()
	sel := Selection{
		Discipline: DisciplineFor(p.Goals),
		Tier:       TierFor(p.Experience, p.FitnessLevel),
		Gender:     GenderFor(p.Gender),
	}
	if tpl, ok := c.Lookup(sel.Discipline, sel.Gender, sel.Tier); ok {
		sel.Template = tpl
	}
	return sel
}
