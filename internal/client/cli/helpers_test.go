package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dkrasnov/notable/internal/client/models"
)

func TestTruncate(t *testing.T) {
	long := strings.Repeat("x", 150)

	got := Truncate(long, 100)
	assert.Len(t, got, 103)
	assert.True(t, strings.HasSuffix(got, "..."))

	exact := strings.Repeat("x", 100)
	assert.Equal(t, exact, Truncate(exact, 100))

	assert.Equal(t, "short", Truncate("short", 100))
	assert.Equal(t, "", Truncate("", 100))
}

func TestTruncate_MultibyteRunes(t *testing.T) {
	text := strings.Repeat("я", 120)
	got := Truncate(text, 100)
	assert.Equal(t, 103, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 15, 4, 0, 0, time.UTC)
	assert.Equal(t, "Mar 5, 2024, 3:04 PM", FormatDate(ts))
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want models.Color
	}{
		{"blue", models.ColorBlue},
		{"BLUE", models.ColorBlue},
		{"grey", models.ColorGrey},
		{"gray", models.ColorGrey},
		{"yellow", models.ColorYellow},
		{"", models.ColorYellow},
		{"magenta", models.ColorYellow},
		{"  blue  ", models.ColorBlue},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, parseColor(tc.in), "input %q", tc.in)
	}
}

func TestRenderFieldErrors_StableOrder(t *testing.T) {
	var out bytes.Buffer
	a := &App{out: &out}

	a.renderFieldErrors(map[string]string{
		"password": "Password is required",
		"email":    "Email is required",
		"name":     "Name is required",
	})

	want := "email: Email is required\nname: Name is required\npassword: Password is required\n"
	assert.Equal(t, want, out.String())
}
