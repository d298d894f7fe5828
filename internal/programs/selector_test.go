package programs

import (
	"testing"

	"fitcoach/internal/models"

	"github.com/rs/zerolog"
)

func mustCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := DefaultCatalog(zerolog.Nop())
	if err != nil {
		t.Fatalf("DefaultCatalog() error = %v", err)
	}
	return c
}

func TestDisciplineFor(t *testing.T) {
	tests := []struct {
		goals string
		want  models.Discipline
	}{
		{"improve_strength", models.DisciplineStrength},
		{"powerlifting", models.DisciplineStrength},
		{"build_muscle", models.DisciplineBodybuilding},
		{"lose_weight", models.DisciplineBodybuilding},
		{"", models.DisciplineBodybuilding},
		{"Powerlifting", models.DisciplineBodybuilding},
		{"что-то непонятное", models.DisciplineBodybuilding},
	}

	for _, tt := range tests {
		t.Run(tt.goals, func(t *testing.T) {
			if got := DisciplineFor(tt.goals); got != tt.want {
				t.Errorf("DisciplineFor(%q) = %s, want %s", tt.goals, got, tt.want)
			}
		})
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		name       string
		experience string
		level      int
		want       models.Tier
	}{
		{"beginner level 4", "beginner", 4, models.TierBeginner},
		{"beginner level 5 promotes", "beginner", 5, models.TierIntermediate},
		{"beginner level 7", "beginner", 7, models.TierIntermediate},
		{"beginner level 8 promotes", "beginner", 8, models.TierAdvanced},
		{"beginner level 9", "beginner", 9, models.TierAdvanced},
		{"advanced label with low level", "advanced", 1, models.TierAdvanced},
		{"intermediate label with low level", "intermediate", 2, models.TierIntermediate},
		{"intermediate label with high level", "intermediate", 8, models.TierAdvanced},
		{"unknown label", "expert", 3, models.TierBeginner},
		{"absent everything", "", 0, models.TierBeginner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TierFor(tt.experience, tt.level); got != tt.want {
				t.Errorf("TierFor(%q, %d) = %s, want %s", tt.experience, tt.level, got, tt.want)
			}
		})
	}
}

func TestTierFor_NeverDemotes(t *testing.T) {
	rank := map[models.Tier]int{
		models.TierBeginner:     0,
		models.TierIntermediate: 1,
		models.TierAdvanced:     2,
	}
	for _, exp := range []string{"beginner", "intermediate", "advanced"} {
		prev := -1
		for level := 1; level <= 10; level++ {
			got := rank[TierFor(exp, level)]
			if got < prev {
				t.Errorf("TierFor(%q, %d) demoted tier", exp, level)
			}
			if got < rank[models.Tier(exp)] {
				t.Errorf("TierFor(%q, %d) below declared experience", exp, level)
			}
			prev = got
		}
	}
}

func TestGenderFor(t *testing.T) {
	if got := GenderFor("female"); got != models.GenderFemale {
		t.Errorf("GenderFor(female) = %s", got)
	}
	for _, g := range []string{"male", "", "other", "Female"} {
		if got := GenderFor(g); got != models.GenderMale {
			t.Errorf("GenderFor(%q) = %s, want male", g, got)
		}
	}
}

func TestSelectProgram(t *testing.T) {
	c := mustCatalog(t)

	tests := []struct {
		name         string
		prefs        models.UserPreferences
		wantKey      Key
		wantTemplate bool
	}{
		{
			name:         "empty preferences use default level 5",
			prefs:        models.UserPreferences{},
			wantKey:      Key{models.DisciplineBodybuilding, models.GenderMale, models.TierIntermediate},
			wantTemplate: true,
		},
		{
			name:         "explicit beginner level",
			prefs:        models.UserPreferences{FitnessLevel: 4},
			wantKey:      Key{models.DisciplineBodybuilding, models.GenderMale, models.TierBeginner},
			wantTemplate: true,
		},
		{
			name:         "strength intermediate male",
			prefs:        models.UserPreferences{Goals: "improve_strength", Experience: "intermediate", FitnessLevel: 6},
			wantKey:      Key{models.DisciplineStrength, models.GenderMale, models.TierIntermediate},
			wantTemplate: true,
		},
		{
			name:         "female bodybuilding advanced by level",
			prefs:        models.UserPreferences{Goals: "build_muscle", Gender: "female", FitnessLevel: 9},
			wantKey:      Key{models.DisciplineBodybuilding, models.GenderFemale, models.TierAdvanced},
			wantTemplate: true,
		},
		{
			name:         "female strength advanced is absent",
			prefs:        models.UserPreferences{Goals: "powerlifting", Gender: "female", Experience: "advanced"},
			wantKey:      Key{models.DisciplineStrength, models.GenderFemale, models.TierAdvanced},
			wantTemplate: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := c.SelectProgram(tt.prefs)
			got := Key{sel.Discipline, sel.Gender, sel.Tier}
			if got != tt.wantKey {
				t.Errorf("SelectProgram() key = %s, want %s", got, tt.wantKey)
			}
			if (sel.Template != nil) != tt.wantTemplate {
				t.Fatalf("SelectProgram() template present = %v, want %v", sel.Template != nil, tt.wantTemplate)
			}
			if sel.Template != nil && (sel.Template.Discipline != got.Discipline || sel.Template.Tier != got.Tier || sel.Template.Gender != got.Gender) {
				t.Errorf("template %s/%s/%s does not match selection %s",
					sel.Template.Discipline, sel.Template.Gender, sel.Template.Tier, got)
			}
		})
	}
}

func TestSelectProgram_AbsentLevelMatchesDefault(t *testing.T) {
	c := mustCatalog(t)

	absent := c.SelectProgram(models.UserPreferences{Goals: "build_muscle"})
	explicit := c.SelectProgram(models.UserPreferences{Goals: "build_muscle", FitnessLevel: 5})
	if absent.Tier != explicit.Tier || absent.Template != explicit.Template {
		t.Errorf("absent level selected %s, level 5 selected %s", absent.Tier, explicit.Tier)
	}
}
