package utils

import (
	"fmt"
	"time"
)

var monthNamesPT = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

func MonthNamePT(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNamesPT[m-1]
}

// PeriodLabel renders the header period, e.g. "Agosto/2026".
func PeriodLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s/%d", MonthNamePT(month), year)
}

// ChecklistFileName follows the checklist_<year>_<month> convention,
// month unpadded.
func ChecklistFileName(year int, month time.Month) string {
	return fmt.Sprintf("checklist_%d_%d.xlsx", year, int(month))
}
