package inventory

import (
	"fmt"
	"regexp"
	"time"
)

var (
	fechaISORe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	fechaDMARe = regexp.MustCompile(`^(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})$`)
)

// NormalizarFecha acepta una fecha en formato ISO (YYYY-MM-DD) o en formato de
// pantalla (DD/MM/YYYY, también con guiones y día/mes de un dígito) y la
// devuelve normalizada a ISO. Fechas con desborde de día o mes (32/13/2026)
// se rechazan, nunca se "corrigen".
func NormalizarFecha(valor string) (string, bool) {
	if fechaISORe.MatchString(valor) {
		if _, err := time.Parse("2006-01-02", valor); err != nil {
			return "", false
		}
		return valor, true
	}
	m := fechaDMARe.FindStringSubmatch(valor)
	if m == nil {
		return "", false
	}
	iso := fmt.Sprintf("%s-%s-%s", m[3], pad2(m[2]), pad2(m[1]))
	if _, err := time.Parse("2006-01-02", iso); err != nil {
		return "", false
	}
	return iso, true
}

// ParseFechaVencimiento normaliza y parsea la fecha; devuelve false si el
// valor está vacío o es inválido.
func ParseFechaVencimiento(valor string) (time.Time, bool) {
	iso, ok := NormalizarFecha(valor)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// diasCalendario devuelve los días de calendario desde el inicio del día de
// hasta al inicio del día de fecha (positivo si fecha es futura).
func diasCalendario(fecha, hasta time.Time) int {
	a := time.Date(fecha.Year(), fecha.Month(), fecha.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(hasta.Year(), hasta.Month(), hasta.Day(), 0, 0, 0, 0, time.UTC)
	return int(a.Sub(b).Hours() / 24)
}
