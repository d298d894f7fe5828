package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"fitcoach/internal/bot"
	"fitcoach/internal/excel"
	"fitcoach/internal/i18n"
	"fitcoach/internal/models"
	"fitcoach/internal/programs"

	"github.com/rs/zerolog"
)

func main() {
	goals := flag.String("goal", "", "Цель: improve_strength, powerlifting, build_muscle ...")
	experience := flag.String("experience", "", "Опыт: beginner, intermediate, advanced")
	level := flag.Int("level", 0, "Уровень подготовки 1-10 (0 - не указан)")
	gender := flag.String("gender", "", "Пол: male, female")
	days := flag.String("days", "", "Дни тренировок через запятую (1 - понедельник): 1,3,5")
	duration := flag.String("duration", "", "Длительность тренировки: short, medium, long")
	equipment := flag.String("equipment", "", "Оборудование через запятую: barbell,bench,dumbbell")
	injuries := flag.String("injuries", "", "Травмы через запятую: knee,back,shoulder")
	lang := flag.String("lang", "ru", "Язык вывода: ru, en")
	asJSON := flag.Bool("json", false, "Вывести программу в JSON")
	xlsx := flag.String("xlsx", "", "Сохранить программу в Excel файл")
	verbose := flag.Bool("v", false, "Подробный лог")
	flag.Parse()

	logLevel := zerolog.WarnLevel
	if *verbose {
		logLevel = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(logLevel)

	availableDays, err := parseDays(*days)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(2)
	}

	prefs := models.UserPreferences{
		Goals:           *goals,
		Experience:      *experience,
		FitnessLevel:    *level,
		Gender:          *gender,
		AvailableDays:   availableDays,
		SessionDuration: *duration,
		Equipment:       splitList(*equipment),
		Injuries:        splitList(*injuries),
	}

	language := i18n.ParseLanguage(*lang)
	catalog, err := programs.DefaultCatalog(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Каталог программ: %v\n", err)
		os.Exit(1)
	}
	adapter := programs.NewAdapter(catalog,
		programs.WithFallbackName(i18n.T("exercise.bodyweight_fallback", language)))

	program := adapter.Adapt(prefs)

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(program); err != nil {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Println(bot.FormatProgram(&program, language))
	}

	if *xlsx != "" {
		if err := excel.ExportProgram(*xlsx, &program, language); err != nil {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "✅ Сохранено: %s\n", *xlsx)
	}
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func parseDays(s string) ([]int, error) {
	var out []int
	for _, item := range splitList(s) {
		d, err := strconv.Atoi(item)
		if err != nil || d < 1 || d > 7 {
			return nil, fmt.Errorf("некорректный день недели %q (ожидается 1-7)", item)
		}
		out = append(out, d)
	}
	return out, nil
}
