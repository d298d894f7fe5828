package i18n

import (
	"encoding/json"
	"testing"
)

func TestT(t *testing.T) {
	if got := T("exercise.bodyweight_fallback", LangRussian); got != "Упражнение с собственным весом" {
		t.Errorf("T(ru) = %q", got)
	}
	if got := T("exercise.bodyweight_fallback", LangEnglish); got != "Bodyweight Exercise" {
		t.Errorf("T(en) = %q", got)
	}
	if got := T("no.such.key", LangEnglish); got != "no.such.key" {
		t.Errorf("T(missing) = %q, want key back", got)
	}
}

func TestLocalesHaveSameKeys(t *testing.T) {
	read := func(lang Language) map[string]string {
		data, err := embeddedLocales.ReadFile("locales/" + string(lang) + ".json")
		if err != nil {
			t.Fatal(err)
		}
		var m map[string]string
		if err := json.Unmarshal(data, &m); err != nil {
			t.Fatal(err)
		}
		return m
	}

	ru, en := read(LangRussian), read(LangEnglish)
	for key := range ru {
		if _, ok := en[key]; !ok {
			t.Errorf("en locale misses %q", key)
		}
	}
	for key := range en {
		if _, ok := ru[key]; !ok {
			t.Errorf("ru locale misses %q", key)
		}
	}
}

func TestWeekday(t *testing.T) {
	if got := Weekday(1, LangRussian); got != "Понедельник" {
		t.Errorf("Weekday(1) = %q", got)
	}
	if got := Weekday(7, LangEnglish); got != "Sunday" {
		t.Errorf("Weekday(7, en) = %q", got)
	}
	if got := Weekday(0, LangRussian); got != "" {
		t.Errorf("Weekday(0) = %q, want empty", got)
	}
}

func TestParseLanguage(t *testing.T) {
	tests := map[string]Language{"en": LangEnglish, " EN ": LangEnglish, "ru": LangRussian, "": LangRussian, "de": LangRussian}
	for in, want := range tests {
		if got := ParseLanguage(in); got != want {
			t.Errorf("ParseLanguage(%q) = %s, want %s", in, got, want)
		}
	}
}
