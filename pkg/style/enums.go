package style

import (
	"sort"

	ansierrors "github.com/alexisbeaulieu97/ansikit/pkg/errors"
)

// Enumeration names used in InvalidValue errors.
const (
	EnumForeground = "foreground"
	EnumBackground = "background"
	EnumFormat     = "format"
)

// Color is a foreground color code.
type Color int

// Foreground colors.
const (
	NoColor Color = 0

	Black   Color = 30
	Red     Color = 31
	Green   Color = 32
	Yellow  Color = 33
	Blue    Color = 34
	Magenta Color = 35
	Cyan    Color = 36
	White   Color = 37

	BrightBlack   Color = 90
	BrightRed     Color = 91
	BrightGreen   Color = 92
	BrightYellow  Color = 93
	BrightBlue    Color = 94
	BrightMagenta Color = 95
	BrightCyan    Color = 96
	BrightWhite   Color = 97
)

// Background is a background color code.
type Background int

// Background colors.
const (
	NoBackground Background = 0

	OnBlack   Background = 40
	OnRed     Background = 41
	OnGreen   Background = 42
	OnYellow  Background = 43
	OnBlue    Background = 44
	OnMagenta Background = 45
	OnCyan    Background = 46
	OnWhite   Background = 47

	OnBrightBlack   Background = 100
	OnBrightRed     Background = 101
	OnBrightGreen   Background = 102
	OnBrightYellow  Background = 103
	OnBrightBlue    Background = 104
	OnBrightMagenta Background = 105
	OnBrightCyan    Background = 106
	OnBrightWhite   Background = 107
)

// Format is a text attribute code.
type Format int

// Text formats.
const (
	Bold            Format = 1
	Faint           Format = 2
	Italic          Format = 3
	Underline       Format = 4
	Blink           Format = 5
	Reverse         Format = 7
	Conceal         Format = 8
	CrossedOut      Format = 9
	DoubleUnderline Format = 21
	Overline        Format = 53
)

var colorNames = map[string]Color{
	"black":          Black,
	"red":            Red,
	"green":          Green,
	"yellow":         Yellow,
	"blue":           Blue,
	"magenta":        Magenta,
	"cyan":           Cyan,
	"white":          White,
	"bright_black":   BrightBlack,
	"bright_red":     BrightRed,
	"bright_green":   BrightGreen,
	"bright_yellow":  BrightYellow,
	"bright_blue":    BrightBlue,
	"bright_magenta": BrightMagenta,
	"bright_cyan":    BrightCyan,
	"bright_white":   BrightWhite,
}

var backgroundNames = map[string]Background{
	"black":          OnBlack,
	"red":            OnRed,
	"green":          OnGreen,
	"yellow":         OnYellow,
	"blue":           OnBlue,
	"magenta":        OnMagenta,
	"cyan":           OnCyan,
	"white":          OnWhite,
	"bright_black":   OnBrightBlack,
	"bright_red":     OnBrightRed,
	"bright_green":   OnBrightGreen,
	"bright_yellow":  OnBrightYellow,
	"bright_blue":    OnBrightBlue,
	"bright_magenta": OnBrightMagenta,
	"bright_cyan":    OnBrightCyan,
	"bright_white":   OnBrightWhite,
}

var formatNames = map[string]Format{
	"bold":             Bold,
	"faint":            Faint,
	"italic":           Italic,
	"underline":        Underline,
	"blink":            Blink,
	"reverse":          Reverse,
	"conceal":          Conceal,
	"crossed_out":      CrossedOut,
	"double_underline": DoubleUnderline,
	"overline":         Overline,
}

var (
	colorByCode      = invert(colorNames)
	backgroundByCode = invert(backgroundNames)
	formatByCode     = invert(formatNames)
)

func invert[T ~int](names map[string]T) map[T]string {
	out := make(map[T]string, len(names))
	for name, code := range names {
		out[code] = name
	}
	return out
}

// namesInCodeOrder lists the names of an enumeration sorted by code.
func namesInCodeOrder[T ~int](names map[string]T) []string {
	out := make([]string, 0, len(names))
	for name := range names {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool {
		return names[out[i]] < names[out[j]]
	})
	return out
}

func lookup[T ~int](names map[string]T, name, enum string) (T, error) {
	code, ok := names[name]
	if !ok {
		return 0, ansierrors.NewInvalidValueError(name, enum)
	}
	return code, nil
}

// ParseColor resolves a case-sensitive foreground name.
func ParseColor(name string) (Color, error) {
	return lookup(colorNames, name, EnumForeground)
}

// ParseBackground resolves a case-sensitive background name.
func ParseBackground(name string) (Background, error) {
	return lookup(backgroundNames, name, EnumBackground)
}

// ParseFormat resolves a case-sensitive format name.
func ParseFormat(name string) (Format, error) {
	return lookup(formatNames, name, EnumFormat)
}

// ColorNames lists foreground names in code order.
func ColorNames() []string { return namesInCodeOrder(colorNames) }

// BackgroundNames lists background names in code order.
func BackgroundNames() []string { return namesInCodeOrder(backgroundNames) }

// FormatNames lists format names in code order.
func FormatNames() []string { return namesInCodeOrder(formatNames) }

func (c Color) String() string {
	if name, ok := colorByCode[c]; ok {
		return name
	}
	return ""
}

func (b Background) String() string {
	if name, ok := backgroundByCode[b]; ok {
		return name
	}
	return ""
}

func (f Format) String() string {
	if name, ok := formatByCode[f]; ok {
		return name
	}
	return ""
}
