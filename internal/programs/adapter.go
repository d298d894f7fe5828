package programs

import "fitcoach/internal/models"

// Adapter персонализирует шаблон программы под анкету пользователя.
// Не имеет изменяемого состояния: один экземпляр обслуживает любые параллельные запросы.
type Adapter struct {
	catalog      *Catalog
	fallbackName string
}

// Option настройка адаптера
type Option func(*Adapter)

// WithFallbackName задаёт локализованное название упражнения-заглушки
func WithFallbackName(name string) Option {
	return func(a *Adapter) {
		if name != "" {
			a.fallbackName = name
		}
	}
}

// NewAdapter создаёт адаптер поверх каталога
func NewAdapter(catalog *Catalog, opts ...Option) *Adapter {
	a := &Adapter{
		catalog:      catalog,
		fallbackName: FallbackExerciseName,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Catalog возвращает каталог адаптера
func (a *Adapter) Catalog() *Catalog {
	return a.catalog
}

// Adapt подбирает шаблон и строит персональную программу:
//  1. выбор шаблона по цели, опыту, уровню и полу;
//  2. обрезка дней до числа доступных дней недели (лишние дни отбрасываются);
//  3. замена упражнений, недоступных по оборудованию или противопоказанных при травмах;
//  4. масштабирование объёма по уровню подготовки.
//
// Если шаблона нет, возвращается программа без дней с заполненными метаданными.
// Результат зависит только от анкеты и каталога.
func (a *Adapter) Adapt(prefs models.UserPreferences) models.AdaptedProgram {
	sel := a.catalog.SelectProgram(prefs)
	p := prefs.WithDefaults()
	level := clampLevel(p.FitnessLevel)

	out := models.AdaptedProgram{
		Discipline: sel.Discipline,
		Tier:       sel.Tier,
		Gender:     sel.Gender,
		Days:       []models.TrainingDay{},
		Summary: models.AdaptationSummary{
			IntensityMultiplier: float64(level) / 10,
			FitnessLevel:        level,
			AvailableDays:       p.AvailableDays,
			SessionDuration:     p.SessionDuration,
			Equipment:           p.Equipment,
			Injuries:            p.Injuries,
			PreferredExercises:  p.PreferredExercises,
		},
	}
	if sel.Template == nil {
		return out
	}
	out.TemplateName = sel.Template.Name

	days := sel.Template.Days
	if len(p.AvailableDays) < len(days) {
		days = days[:len(p.AvailableDays)]
	}

	owned := NewEquipmentSet(p.Equipment)
	injuries := NewInjurySet(p.Injuries)

	for i, day := range days {
		adapted := models.TrainingDay{
			Title:     day.Title,
			Weekday:   p.AvailableDays[i],
			Exercises: make([]models.Exercise, 0, len(day.Exercises)),
		}

		for _, ex := range day.Exercises {
			current := ex

			reason := ""
			if !IsAvailable(ex.Name, owned) {
				reason = ReasonEquipment
			} else if IsContraindicated(ex.Name, injuries) {
				reason = ReasonInjury
			}
			if reason != "" {
				current = Substitute(ex, owned, injuries, a.fallbackName)
				out.Summary.Substitutions = append(out.Summary.Substitutions, models.Substitution{
					Day:         i + 1,
					Original:    ex.Name,
					Replacement: current.Name,
					Reason:      reason,
				})
			}

			adapted.Exercises = append(adapted.Exercises, Scale(current, level))
		}

		out.Days = append(out.Days, adapted)
	}

	return out
}

// clampLevel ограничивает уровень подготовки шкалой 1-10
func clampLevel(level int) int {
	return min(10, max(1, level))
}
