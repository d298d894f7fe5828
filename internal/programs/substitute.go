package programs

import "fitcoach/internal/models"

// FallbackExerciseName название упражнения-заглушки по умолчанию
const FallbackExerciseName = "Bodyweight Exercise"

// FallbackVolume объём заглушки: больше повторов для работы без отягощения
const FallbackVolume = "3x10-15"

// Причины замены
const (
	ReasonEquipment = "equipment"
	ReasonInjury    = "injury"
)

// Alternatives возвращает замены упражнения в порядке предпочтения
func Alternatives(exerciseName string) []Alternative {
	return exerciseAlternatives[NormalizeKey(exerciseName)]
}

// Substitute подбирает первую выполнимую замену упражнения.
// Если замены нет, возвращает упражнение с собственным весом (fallbackName, 3x10-15).
// Всегда возвращает упражнение.
func Substitute(ex models.Exercise, owned EquipmentSet, injuries InjurySet, fallbackName string) models.Exercise {
	for _, alt := range Alternatives(ex.Name) {
		if !IsAvailable(alt.Name, owned) || IsContraindicated(alt.Name, injuries) {
			continue
		}

		out := models.Exercise{
			Name:   alt.Name,
			Volume: ex.Volume,
			Load:   qualitativeLoad(ex.Load),
		}
		if alt.Volume != "" {
			out.Volume = models.ParseVolume(alt.Volume)
		}
		return out
	}

	if fallbackName == "" {
		fallbackName = FallbackExerciseName
	}
	return models.Exercise{
		Name:   fallbackName,
		Volume: models.ParseVolume(FallbackVolume),
	}
}

// qualitativeLoad оставляет только качественную метку нагрузки:
// абсолютный вес для другого упражнения не имеет смысла.
func qualitativeLoad(load string) string {
	switch NormalizeKey(load) {
	case "light", "medium", "heavy", "легкая", "средняя", "тяжелая":
		return load
	}
	return ""
}
