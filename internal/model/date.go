package model

import (
	"fmt"
	"time"
)

// Appointment dates are display labels in Peruvian Spanish, e.g.
// "lunes, 2 de enero". Appointments are always for the current day, so the
// label is computed once at creation and stored verbatim.

var spanishDays = [7]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

var spanishMonths = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// DateLabel formats t the way the dashboards display appointment dates.
func DateLabel(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s",
		spanishDays[t.Weekday()], t.Day(), spanishMonths[t.Month()-1])
}
