// Package digits renders clock strings as large block glyphs for the
// terminal. Every glyph is a fixed 9-cell-wide, 5-row-tall grid so that any
// rendered clock lines up into an even rectangle.
package digits

import "fmt"

// Rows is the glyph height. Render always returns exactly this many rows.
const Rows = 5

var font = map[rune][Rows]string{
	'0': {
		" ██████  ",
		"██    ██ ",
		"██    ██ ",
		"██    ██ ",
		" ██████  ",
	},
	'1': {
		"   ██    ",
		" ████    ",
		"   ██    ",
		"   ██    ",
		" ██████  ",
	},
	'2': {
		" ██████  ",
		"      ██ ",
		" ██████  ",
		"██       ",
		"████████ ",
	},
	'3': {
		" ██████  ",
		"      ██ ",
		" ██████  ",
		"      ██ ",
		" ██████  ",
	},
	'4': {
		"██    ██ ",
		"██    ██ ",
		"████████ ",
		"      ██ ",
		"      ██ ",
	},
	'5': {
		"████████ ",
		"██       ",
		"███████  ",
		"      ██ ",
		"███████  ",
	},
	'6': {
		" ██████  ",
		"██       ",
		"███████  ",
		"██    ██ ",
		" ██████  ",
	},
	'7': {
		"████████ ",
		"      ██ ",
		"    ██   ",
		"  ██     ",
		"██       ",
	},
	'8': {
		" ██████  ",
		"██    ██ ",
		" ██████  ",
		"██    ██ ",
		" ██████  ",
	},
	'9': {
		" ██████  ",
		"██    ██ ",
		" ███████ ",
		"      ██ ",
		" ██████  ",
	},
	':': {
		"         ",
		"   ██    ",
		"         ",
		"   ██    ",
		"         ",
	},
}

// FormatTime renders whole seconds as a zero-padded MM:SS clock string.
// Minute counts past 99 widen the field rather than truncate. Negative
// inputs render as 00:00.
func FormatTime(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
}

// Render maps a clock string onto Rows glyph rows, concatenating the glyph
// for each input rune left to right. Runes outside the font fall back to
// the colon glyph, keeping the output rectangular for any input.
func Render(s string) []string {
	rows := make([]string, Rows)
	for _, r := range s {
		glyph, ok := font[r]
		if !ok {
			glyph = font[':']
		}
		for i, line := range glyph {
			rows[i] += line
		}
	}
	return rows
}
