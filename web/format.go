// file: web/format.go

package web

import (
	"html/template"
	"regexp"
	"strings"
	"time"
)

var (
	nonDigits        = regexp.MustCompile(`\D`)
	formattedCPF     = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	dateLayouts      = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}
	notAvailableText = "N/A"
)

// FuncMap holds the helpers available to every template.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"cpf":      FormatCPF,
		"data":     FormatDate,
		"dataHora": FormatDateTime,
		"add":      func(a, b int) int { return a + b },
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
	}
}

// FormatCPF renders a CPF as 000.000.000-00. Values that do not hold exactly
// eleven digits are returned unchanged.
func FormatCPF(cpf string) string {
	cpf = strings.TrimSpace(cpf)
	if formattedCPF.MatchString(cpf) {
		return cpf
	}
	digits := nonDigits.ReplaceAllString(cpf, "")
	if len(digits) != 11 {
		return cpf
	}
	return digits[:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:]
}

// FormatDate renders a backend date as dd/mm/yyyy. The wall clock of the
// value is kept; no zone conversion happens.
func FormatDate(value string) string {
	t, ok := parseDate(value)
	if !ok {
		return value
	}
	return t.Format("02/01/2006")
}

// FormatDateTime renders a backend timestamp as dd/mm/yyyy hh:mm, or N/A when empty.
func FormatDateTime(value *string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return notAvailableText
	}
	t, ok := parseDate(*value)
	if !ok {
		return *value
	}
	return t.Format("02/01/2006 15:04")
}

func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
