package excel

import (
	"fmt"
	"strconv"
	"strings"

	"fitcoach/internal/i18n"
	"fitcoach/internal/models"

	"github.com/xuri/excelize/v2"
)

// ExportProgram сохраняет адаптированную программу в xlsx: лист с упражнениями и лист параметров
func ExportProgram(path string, program *models.AdaptedProgram, lang i18n.Language) error {
	f := BuildProgramWorkbook(program, lang)
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("ошибка сохранения файла: %w", err)
	}
	return nil
}

// BuildProgramWorkbook собирает книгу в памяти
func BuildProgramWorkbook(program *models.AdaptedProgram, lang i18n.Language) *excelize.File {
	f := excelize.NewFile()

	programSheet := i18n.T("excel.sheet_program", lang)
	summarySheet := i18n.T("excel.sheet_summary", lang)
	f.SetSheetName("Sheet1", programSheet)
	f.NewSheet(summarySheet)

	fillProgramSheet(f, programSheet, program, lang)
	fillSummarySheet(f, summarySheet, program, lang)

	f.SetActiveSheet(0)
	return f
}

func fillProgramSheet(f *excelize.File, sheet string, program *models.AdaptedProgram, lang i18n.Language) {
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"2E75B6"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	dayStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E2EFDA"}, Pattern: 1},
	})

	headers := []string{"excel.day", "excel.weekday", "excel.exercise", "excel.sets", "excel.reps", "excel.load"}
	for i, key := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, i18n.T(key, lang))
	}
	f.SetCellStyle(sheet, "A1", "F1", headerStyle)

	f.SetColWidth(sheet, "A", "A", 28)
	f.SetColWidth(sheet, "B", "B", 14)
	f.SetColWidth(sheet, "C", "C", 32)
	f.SetColWidth(sheet, "D", "E", 10)
	f.SetColWidth(sheet, "F", "F", 14)

	row := 2
	for i, day := range program.Days {
		first := row
		for _, ex := range day.Exercises {
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), ex.Name)
			if ex.Volume.Valid() {
				f.SetCellValue(sheet, fmt.Sprintf("D%d", row), ex.Volume.Sets)
			}
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), repsText(ex.Volume))
			if ex.Load != "" {
				f.SetCellValue(sheet, fmt.Sprintf("F%d", row), ex.Load)
			}
			row++
		}

		f.SetCellValue(sheet, fmt.Sprintf("A%d", first), fmt.Sprintf("%d. %s", i+1, day.Title))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", first), i18n.Weekday(day.Weekday, lang))
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", first), fmt.Sprintf("B%d", first), dayStyle)
	}
}

func fillSummarySheet(f *excelize.File, sheet string, program *models.AdaptedProgram, lang i18n.Language) {
	labelStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	s := program.Summary

	weekdays := make([]string, 0, len(s.AvailableDays))
	for _, d := range s.AvailableDays {
		weekdays = append(weekdays, i18n.Weekday(d, lang))
	}

	info := [][]string{
		{"excel.template", program.TemplateName},
		{"excel.discipline", i18n.T("discipline."+string(program.Discipline), lang)},
		{"excel.tier", i18n.T("tier."+string(program.Tier), lang)},
		{"excel.intensity", fmt.Sprintf("%.0f%%", s.IntensityMultiplier*100)},
		{"excel.weekday", strings.Join(weekdays, ", ")},
		{"excel.duration", s.SessionDuration},
		{"excel.equipment", strings.Join(s.Equipment, ", ")},
		{"excel.injuries", strings.Join(s.Injuries, ", ")},
	}
	for i, item := range info {
		row := i + 1
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), i18n.T(item[0], lang))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), item[1])
	}
	f.SetCellStyle(sheet, "A1", fmt.Sprintf("A%d", len(info)), labelStyle)
	f.SetColWidth(sheet, "A", "A", 18)
	f.SetColWidth(sheet, "B", "B", 40)
}

// repsText повторы из объёма; нераспознанный объём выводится как есть
func repsText(v models.Volume) string {
	if !v.Valid() {
		return v.Raw
	}
	if v.RepsHigh > v.RepsLow {
		return fmt.Sprintf("%d-%d", v.RepsLow, v.RepsHigh)
	}
	return strconv.Itoa(v.RepsLow)
}
