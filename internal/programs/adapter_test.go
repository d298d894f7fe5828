package programs

import (
	"encoding/json"
	"reflect"
	"testing"

	"fitcoach/internal/models"
)

func TestAdapt_StrengthIntermediate(t *testing.T) {
	a := NewAdapter(mustCatalog(t))

	got := a.Adapt(models.UserPreferences{
		Goals:         "improve_strength",
		Experience:    "intermediate",
		FitnessLevel:  6,
		AvailableDays: []int{1, 3},
		Equipment:     []string{"barbell", "bench"},
		Injuries:      []string{},
		Gender:        "male",
	})

	if got.Discipline != models.DisciplineStrength || got.Gender != models.GenderMale || got.Tier != models.TierIntermediate {
		t.Fatalf("selection = %s/%s/%s", got.Discipline, got.Gender, got.Tier)
	}
	if len(got.Days) != 2 {
		t.Fatalf("days = %d, want 2", len(got.Days))
	}
	if len(got.Summary.Substitutions) != 0 {
		t.Errorf("unexpected substitutions: %+v", got.Summary.Substitutions)
	}

	tpl, _ := a.Catalog().Lookup(models.DisciplineStrength, models.GenderMale, models.TierIntermediate)
	for i, day := range got.Days {
		if day.Weekday != []int{1, 3}[i] {
			t.Errorf("day %d weekday = %d", i+1, day.Weekday)
		}
		for j, ex := range day.Exercises {
			want := tpl.Days[i].Exercises[j]
			if ex.Name != want.Name {
				t.Errorf("day %d exercise %d = %q, want %q", i+1, j+1, ex.Name, want.Name)
			}
			if ex.Volume.String() != want.Volume.String() {
				t.Errorf("%s volume = %s, want %s", ex.Name, ex.Volume, want.Volume)
			}
			if ex.Load != want.Load {
				t.Errorf("%s load = %q, want %q", ex.Name, ex.Load, want.Load)
			}
		}
	}
	if got.Summary.IntensityMultiplier != 0.6 {
		t.Errorf("IntensityMultiplier = %v, want 0.6", got.Summary.IntensityMultiplier)
	}
	if want := len(tpl.Days[0].Exercises) + len(tpl.Days[1].Exercises); got.ExerciseCount() != want {
		t.Errorf("ExerciseCount() = %d, want %d", got.ExerciseCount(), want)
	}
}

func TestAdapt_Defaults(t *testing.T) {
	a := NewAdapter(mustCatalog(t))
	got := a.Adapt(models.UserPreferences{})

	// уровень по умолчанию 5 повышает до среднего
	if got.Discipline != models.DisciplineBodybuilding || got.Tier != models.TierIntermediate || got.Gender != models.GenderMale {
		t.Fatalf("selection = %s/%s/%s", got.Discipline, got.Gender, got.Tier)
	}
	if len(got.Days) != 3 {
		t.Fatalf("days = %d, want 3", len(got.Days))
	}
	if !reflect.DeepEqual(got.Summary.AvailableDays, []int{1, 3, 5}) {
		t.Errorf("AvailableDays = %v", got.Summary.AvailableDays)
	}
	if got.Summary.SessionDuration != "medium" || got.Summary.FitnessLevel != 5 {
		t.Errorf("summary = %+v", got.Summary)
	}

	first := got.Days[0].Exercises
	want := []struct{ name, volume string }{
		{"Push-ups", "4x12-15"},
		{"Inverted Row", "3x10-12"},
		{"Pike Push-ups", "3x8-12"},
		{"Dips", "3x8-12"},
	}
	if len(first) != len(want) {
		t.Fatalf("day 1 exercises = %d, want %d", len(first), len(want))
	}
	for i, w := range want {
		if first[i].Name != w.name || first[i].Volume.String() != w.volume {
			t.Errorf("exercise %d = %s %s, want %s %s", i+1, first[i].Name, first[i].Volume, w.name, w.volume)
		}
	}

	for _, s := range got.Summary.Substitutions {
		if s.Reason != ReasonEquipment {
			t.Errorf("substitution %+v reason = %s", s, s.Reason)
		}
	}

	explicit := a.Adapt(models.UserPreferences{FitnessLevel: 5})
	if explicit.TemplateName != got.TemplateName {
		t.Errorf("level 5 template = %q, absent level template = %q", explicit.TemplateName, got.TemplateName)
	}
}

func TestAdapt_EmptyTemplate(t *testing.T) {
	a := NewAdapter(mustCatalog(t))
	got := a.Adapt(models.UserPreferences{Goals: "powerlifting", Gender: "female", FitnessLevel: 9})

	if !got.Empty() {
		t.Fatalf("expected empty program, got %d days", len(got.Days))
	}
	if got.Days == nil {
		t.Error("Days should be an empty slice, not nil")
	}
	if got.Discipline != models.DisciplineStrength || got.Tier != models.TierAdvanced || got.Gender != models.GenderFemale {
		t.Errorf("metadata = %s/%s/%s", got.Discipline, got.Gender, got.Tier)
	}
	if got.TemplateName != "" {
		t.Errorf("TemplateName = %q", got.TemplateName)
	}
	if got.Summary.IntensityMultiplier != 0.9 {
		t.Errorf("IntensityMultiplier = %v", got.Summary.IntensityMultiplier)
	}
}

func TestAdapt_ScalingAndInjuries(t *testing.T) {
	a := NewAdapter(mustCatalog(t), WithFallbackName("Упражнение с собственным весом"))
	got := a.Adapt(models.UserPreferences{
		Goals:         "improve_strength",
		Experience:    "beginner",
		FitnessLevel:  1,
		AvailableDays: []int{2, 4, 6},
		Equipment:     []string{"штанга", "турник"},
		Injuries:      []string{"колено"},
	})

	if got.Tier != models.TierBeginner {
		t.Fatalf("tier = %s", got.Tier)
	}
	day1 := got.Days[0].Exercises
	// Присед противопоказан: гоблет и присед без веса тоже, остаётся ягодичный мост
	if day1[0].Name != "Glute Bridge" {
		t.Errorf("squat replaced with %q, want Glute Bridge", day1[0].Name)
	}
	// 4x15 при уровне 1 -> 2x12
	if day1[0].Volume.String() != "2x12" {
		t.Errorf("Glute Bridge volume = %s, want 2x12", day1[0].Volume)
	}
	// Жим лёжа 3x5 -> 2x8
	if day1[1].Name != "Bench Press" || day1[1].Volume.String() != "2x8" {
		t.Errorf("bench = %s %s, want Bench Press 2x8", day1[1].Name, day1[1].Volume)
	}

	var injury int
	for _, s := range got.Summary.Substitutions {
		if s.Reason == ReasonInjury {
			injury++
		}
	}
	if injury != 2 {
		t.Errorf("injury substitutions = %d, want 2 (squat on days 1 and 3)", injury)
	}
	if got.Days[2].Weekday != 6 {
		t.Errorf("day 3 weekday = %d, want 6", got.Days[2].Weekday)
	}
}

func TestAdapt_Truncation(t *testing.T) {
	a := NewAdapter(mustCatalog(t))
	prefs := models.UserPreferences{Goals: "build_muscle", Experience: "intermediate", AvailableDays: []int{2}}

	got := a.Adapt(prefs)
	if len(got.Days) != 1 {
		t.Fatalf("days = %d, want 1", len(got.Days))
	}
	if got.Days[0].Title != "Верх A" {
		t.Errorf("kept day = %q, want first template day", got.Days[0].Title)
	}

	prefs.AvailableDays = []int{1, 2, 3, 4, 5, 6, 7}
	got = a.Adapt(prefs)
	if len(got.Days) != 4 {
		t.Errorf("days = %d, want all 4 template days", len(got.Days))
	}
}

func TestAdapt_Deterministic(t *testing.T) {
	a := NewAdapter(mustCatalog(t))
	prefs := models.UserPreferences{
		Goals:        "build_muscle",
		Gender:       "female",
		FitnessLevel: 8,
		Equipment:    []string{"dumbbells", "bands"},
		Injuries:     []string{"back", "shoulder"},
	}

	first, err := json.Marshal(a.Adapt(prefs))
	if err != nil {
		t.Fatal(err)
	}
	second, err := json.Marshal(a.Adapt(prefs))
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Errorf("Adapt is not deterministic:\n%s\n%s", first, second)
	}
}

func TestAdapt_DoesNotMutateCatalog(t *testing.T) {
	a := NewAdapter(mustCatalog(t))
	tpl, _ := a.Catalog().Lookup(models.DisciplineBodybuilding, models.GenderMale, models.TierBeginner)
	before, _ := json.Marshal(tpl)

	a.Adapt(models.UserPreferences{FitnessLevel: 10})
	a.Adapt(models.UserPreferences{FitnessLevel: 1, Equipment: []string{"machine"}})

	after, _ := json.Marshal(tpl)
	if string(before) != string(after) {
		t.Error("catalog template mutated by Adapt")
	}
}
