package coloransi

import (
	"fmt"
	"strings"
)

// ColorCode represents ANSI color codes and RGB colors as a 32-bit integer.
// The lower 8 bits represent ANSI color codes, and the upper 24 bits represent RGB values.
type ColorCode uint32

// ANSI color codes
const (
	Black   ColorCode = 30
	Red     ColorCode = 31
	Green   ColorCode = 32
	Yellow  ColorCode = 33
	Blue    ColorCode = 34
	Magenta ColorCode = 35
	Cyan    ColorCode = 36
	White   ColorCode = 37

	// For bright colors, add 60
	BrightBlack   ColorCode = Black + 60
	BrightRed     ColorCode = Red + 60
	BrightGreen   ColorCode = Green + 60
	BrightYellow  ColorCode = Yellow + 60
	BrightBlue    ColorCode = Blue + 60
	BrightMagenta ColorCode = Magenta + 60
	BrightCyan    ColorCode = Cyan + 60

	// RGB color mask
	RGBMask ColorCode = 0xFFFFFF00
)

type TextStyle uint8

const (
	Plain     TextStyle = 0
	Bold      TextStyle = 1
	Dim       TextStyle = 2
	Italic    TextStyle = 3
	Underline TextStyle = 4
	Strike    TextStyle = 9
)

var ColorOrange ColorCode = RGB(255, 140, 0)
var ColorPurple ColorCode = RGB(128, 0, 128)
var ColorTeal ColorCode = RGB(0, 128, 128)

// RGB creates a ColorCode from RGB values
func RGB(r, g, b uint8) ColorCode {
	return ColorCode(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8)
}

// IsRGB checks if the ColorCode represents an RGB color
func (c ColorCode) IsRGB() bool {
	return c&RGBMask != 0
}

// Foreground formats the given text with the specified foreground color.
func Foreground(fg ColorCode, v ...interface{}) string {
	return Styled(fg, Plain, v...)
}

// Styled formats the given text with a foreground color and an optional text style.
func Styled(fg ColorCode, style TextStyle, v ...interface{}) string {
	styleCode := ""
	if style != Plain {
		styleCode = fmt.Sprintf("\033[%dm", style)
	}
	return fmt.Sprintf("%s%s%s%s", styleCode, OneForeground(fg), join(v), Reset())
}

// ColorFrom returns a color code based on the given item value.
// Related items (same group ID) always get the same color.
func ColorFrom(item uint64) ColorCode {
	colors := []ColorCode{
		Green,
		Blue,
		Magenta,
		Cyan,
		BrightGreen,
		BrightBlue,
		BrightMagenta,
		BrightCyan,
	}
	return colors[item%uint64(len(colors))]
}

// OneForeground returns the ANSI escape sequence for the given color code.
func OneForeground(code ColorCode) string {
	if code.IsRGB() {
		r := (code >> 24) & 0xFF
		g := (code >> 16) & 0xFF
		b := (code >> 8) & 0xFF
		return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
	}
	return fmt.Sprintf("\033[%dm", code)
}

// Reset returns the ANSI escape sequence to reset the text color.
func Reset() string {
	return "\033[0m"
}

// Strip removes ANSI escape sequences from s.
func Strip(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func join(v []interface{}) string {
	args := make([]string, len(v))
	for i, arg := range v {
		args[i] = fmt.Sprint(arg)
	}
	return strings.Join(args, " ")
}
