// file: web/format_test.go

package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCPF(t *testing.T) {
	assert.Equal(t, "123.456.789-00", FormatCPF("12345678900"))
	assert.Equal(t, "123.456.789-00", FormatCPF("123.456.789-00"))
	assert.Equal(t, "123.456.789-00", FormatCPF(" 123 456 789 00 "))
	assert.Equal(t, "1234", FormatCPF("1234"), "short values are left alone")
	assert.Equal(t, "", FormatCPF(""))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "01/05/2012", FormatDate("2012-05-01"))
	assert.Equal(t, "15/01/2025", FormatDate("2025-01-15T10:30:00"))
	assert.Equal(t, "ontem", FormatDate("ontem"))
}

func TestFormatDateTime(t *testing.T) {
	value := "2025-01-15T10:30:00"
	assert.Equal(t, "15/01/2025 10:30", FormatDateTime(&value))

	zoned := "2025-01-15T10:30:00-03:00"
	assert.Equal(t, "15/01/2025 10:30", FormatDateTime(&zoned))

	empty := ""
	assert.Equal(t, "N/A", FormatDateTime(&empty))
	assert.Equal(t, "N/A", FormatDateTime(nil))
}
