package programs

// RequiredEquipment возвращает оборудование для упражнения.
// Для неизвестного упражнения - минимальный набор (гантели или собственный вес).
func RequiredEquipment(exerciseName string) []string {
	if req, ok := equipmentRequirements[NormalizeKey(exerciseName)]; ok {
		return req
	}
	return defaultRequirement
}

// IsAvailable проверяет, можно ли выполнить упражнение с имеющимся оборудованием.
// Собственный вес доступен всегда.
func IsAvailable(exerciseName string, owned EquipmentSet) bool {
	for _, tag := range RequiredEquipment(exerciseName) {
		if tag == EquipmentBodyweight || owned.Has(tag) {
			return true
		}
	}
	return false
}

// IsContraindicated проверяет, противопоказано ли упражнение при травмах пользователя
func IsContraindicated(exerciseName string, injuries InjurySet) bool {
	if len(injuries) == 0 {
		return false
	}
	key := NormalizeKey(exerciseName)
	for injury := range injuries {
		for _, banned := range contraindications[injury] {
			if banned == key {
				return true
			}
		}
	}
	return false
}
