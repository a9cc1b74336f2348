// Package portfolio backs the personal site: the day/night theme and the
// resume downloads.
package portfolio

import (
	"coursework/internal/apperr"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Light hours are [dayStart, nightStart).
const (
	dayStart   = 6
	nightStart = 18
)

// ThemeAt picks the theme for a wall-clock time.
func ThemeAt(t time.Time) Theme {
	if h := t.Hour(); h >= dayStart && h < nightStart {
		return ThemeLight
	}
	return ThemeDark
}

// ParseTheme reads an "HH:MM" clock value and returns its theme.
func ParseTheme(clock string) (Theme, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(clock))
	if err != nil {
		return "", apperr.Validation(fmt.Sprintf("Invalid time %q, expected HH:MM.", clock))
	}
	return ThemeAt(t), nil
}

// Format is a resume rendition.
type Format string

const (
	FormatPDF Format = "pdf"
	FormatTeX Format = "tex"
)

// ParseFormat maps the query value to a rendition. Anything but "pdf" is the
// TeX source.
func ParseFormat(s string) Format {
	if strings.EqualFold(s, string(FormatPDF)) {
		return FormatPDF
	}
	return FormatTeX
}

// Resume locates resume files on disk.
type Resume struct {
	dir  string
	name string
}

func NewResume(dir, name string) *Resume {
	return &Resume{dir: dir, name: name}
}

// FileName is the download name of a rendition.
func (r *Resume) FileName(f Format) string {
	return r.name + "." + string(f)
}

// Path returns the file backing a rendition, or a NotFound error when it
// is missing.
func (r *Resume) Path(f Format) (string, error) {
	p := filepath.Join(r.dir, r.FileName(f))
	info, err := os.Stat(p)
	if err != nil || info.IsDir() {
		return "", apperr.NotFound("Resume not available.")
	}
	return p, nil
}
