package programs

import "fitcoach/internal/models"

// Границы шкалы уровня подготовки, вне которых объём масштабируется
const (
	lowLevelThreshold  = 3
	highLevelThreshold = 7
)

// Scale масштабирует подходы и повторы по уровню подготовки (1-10).
// При уровне < 3 объём снижается (не ниже 2x8), при уровне > 7 повышается (не выше 6x15),
// иначе упражнение возвращается без изменений. Масштабируется нижняя граница диапазона повторов.
// Нераспознанный объём и метка нагрузки не меняются.
func Scale(ex models.Exercise, fitnessLevel int) models.Exercise {
	v := ex.Volume
	if !v.Valid() {
		return ex
	}

	switch {
	case fitnessLevel < lowLevelThreshold:
		v.Sets = max(2, v.Sets*7/10)
		v.RepsLow = max(8, v.RepsLow*8/10)
	case fitnessLevel > highLevelThreshold:
		v.Sets = min(6, ceilDiv(v.Sets*12, 10))
		v.RepsLow = min(15, ceilDiv(v.RepsLow*11, 10))
	default:
		return ex
	}

	// диапазон схлопнулся в одно число
	if v.RepsHigh > 0 && v.RepsHigh <= v.RepsLow {
		v.RepsHigh = 0
	}
	v.Raw = v.String()

	ex.Volume = v
	return ex
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
