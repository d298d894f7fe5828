package programs

import "strings"

// NormalizeKey приводит название упражнения, оборудования или травмы к ключу таблиц:
// обрезает пробелы, схлопывает повторные пробелы, переводит в нижний регистр.
func NormalizeKey(s string) string {
	s = strings.ToLower(strings.Join(strings.Fields(s), " "))
	return strings.ReplaceAll(s, "ё", "е")
}

// equipmentAliases синонимы оборудования (в т.ч. русские названия из анкеты)
var equipmentAliases = map[string]string{
	"dumbbells":        EquipmentDumbbell,
	"гантели":          EquipmentDumbbell,
	"гантеля":          EquipmentDumbbell,
	"barbells":         EquipmentBarbell,
	"штанга":           EquipmentBarbell,
	"скамья":           EquipmentBench,
	"скамейка":         EquipmentBench,
	"турник":           EquipmentPullupBar,
	"pull-up bar":      EquipmentPullupBar,
	"pullup bar":       EquipmentPullupBar,
	"horizontal bar":   EquipmentPullupBar,
	"machines":         EquipmentMachine,
	"тренажеры":        EquipmentMachine,
	"тренажер":         EquipmentMachine,
	"gym":              EquipmentMachine,
	"kettlebells":      EquipmentKettlebell,
	"гиря":             EquipmentKettlebell,
	"гири":             EquipmentKettlebell,
	"band":             EquipmentBands,
	"resistance bands": EquipmentBands,
	"резинки":          EquipmentBands,
	"эспандер":         EquipmentBands,
	"cables":           EquipmentCable,
	"блоки":            EquipmentCable,
	"кроссовер":        EquipmentCable,
	"squat rack":       EquipmentRack,
	"power rack":       EquipmentRack,
	"стойка":           EquipmentRack,
	"силовая рама":     EquipmentRack,
	"none":             EquipmentBodyweight,
	"body weight":      EquipmentBodyweight,
	"собственный вес":  EquipmentBodyweight,
	"без оборудования": EquipmentBodyweight,
}

// injuryAliases синонимы зон травм
var injuryAliases = map[string]string{
	"knees":      InjuryKnee,
	"колено":     InjuryKnee,
	"колени":     InjuryKnee,
	"lower back": InjuryBack,
	"lower_back": InjuryBack,
	"spine":      InjuryBack,
	"спина":      InjuryBack,
	"поясница":   InjuryBack,
	"shoulders":  InjuryShoulder,
	"плечо":      InjuryShoulder,
	"плечи":      InjuryShoulder,
}

// NormalizeEquipment приводит тег оборудования к каноническому виду
func NormalizeEquipment(tag string) string {
	key := NormalizeKey(tag)
	if canonical, ok := equipmentAliases[key]; ok {
		return canonical
	}
	return key
}

// NormalizeInjury приводит тег травмы к каноническому виду
func NormalizeInjury(tag string) string {
	key := NormalizeKey(tag)
	if canonical, ok := injuryAliases[key]; ok {
		return canonical
	}
	return key
}

// EquipmentSet множество доступного оборудования
type EquipmentSet map[string]struct{}

// NewEquipmentSet строит множество из тегов анкеты
func NewEquipmentSet(tags []string) EquipmentSet {
	set := make(EquipmentSet, len(tags))
	for _, t := range tags {
		if key := NormalizeEquipment(t); key != "" {
			set[key] = struct{}{}
		}
	}
	return set
}

// Has проверяет наличие оборудования
func (s EquipmentSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// InjurySet множество травм/ограничений
type InjurySet map[string]struct{}

// NewInjurySet строит множество из тегов анкеты
func NewInjurySet(tags []string) InjurySet {
	set := make(InjurySet, len(tags))
	for _, t := range tags {
		if key := NormalizeInjury(t); key != "" {
			set[key] = struct{}{}
		}
	}
	return set
}
