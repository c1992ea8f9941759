package rendering

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-engine/internal/types"
)

// RGB is a renderer-native color
type RGB struct {
	R, G, B int
}

// FallbackColor is used for any color value that is not #RRGGBB
var FallbackColor = RGB{0, 0, 0}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ResolveColor converts a #RRGGBB string into an RGB triple.
// Any other input resolves to FallbackColor.
func ResolveColor(hex string) RGB {
	hex = strings.TrimSpace(hex)
	if !hexColor.MatchString(hex) {
		return FallbackColor
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return FallbackColor
	}
	return RGB{R: int(v >> 16 & 0xFF), G: int(v >> 8 & 0xFF), B: int(v & 0xFF)}
}

// Tint mixes c toward white; amount 0 keeps c, 1 yields white.
func Tint(c RGB, amount float64) RGB {
	amount = min(max(amount, 0), 1)
	mix := func(v int) int {
		return v + int(float64(255-v)*amount+0.5)
	}
	return RGB{R: mix(c.R), G: mix(c.G), B: mix(c.B)}
}

// FontID is one of the renderer-supported font families
type FontID string

// Core PDF font families
const (
	FontHelvetica FontID = "helvetica"
	FontTimes     FontID = "times"
	FontCourier   FontID = "courier"
)

// FontRole is the visual role a font is resolved for
type FontRole int

const (
	RoleHeading FontRole = iota
	RoleBody
)

// FontClass is a broad family class
type FontClass int

const (
	ClassSans FontClass = iota
	ClassSerif
	ClassMono
)

// fontTable maps lower-case family names to core fonts.
var fontTable = map[string]FontID{
	"helvetica":         FontHelvetica,
	"arial":             FontHelvetica,
	"inter":             FontHelvetica,
	"roboto":            FontHelvetica,
	"open sans":         FontHelvetica,
	"lato":              FontHelvetica,
	"montserrat":        FontHelvetica,
	"poppins":           FontHelvetica,
	"source sans pro":   FontHelvetica,
	"nunito":            FontHelvetica,
	"sans-serif":        FontHelvetica,
	"times":             FontTimes,
	"times new roman":   FontTimes,
	"georgia":           FontTimes,
	"garamond":          FontTimes,
	"eb garamond":       FontTimes,
	"merriweather":      FontTimes,
	"playfair display":  FontTimes,
	"lora":              FontTimes,
	"libre baskerville": FontTimes,
	"serif":             FontTimes,
	"courier":           FontCourier,
	"courier new":       FontCourier,
	"fira code":         FontCourier,
	"jetbrains mono":    FontCourier,
	"roboto mono":       FontCourier,
	"source code pro":   FontCourier,
	"monospace":         FontCourier,
}

// ResolveFont maps a family name to a core font. Unknown names resolve to
// Times for headings and Helvetica for body text.
func ResolveFont(family string, role FontRole) FontID {
	if id, ok := fontTable[strings.ToLower(strings.TrimSpace(family))]; ok {
		return id
	}
	if role == RoleHeading {
		return FontTimes
	}
	return FontHelvetica
}

// ResolveFontInClass maps a family name to a core font of the given class,
// falling back to the class default when the family belongs to another class.
func ResolveFontInClass(family string, class FontClass) FontID {
	def := classDefault(class)
	id, ok := fontTable[strings.ToLower(strings.TrimSpace(family))]
	if !ok || fontClass(id) != class {
		return def
	}
	return id
}

func classDefault(class FontClass) FontID {
	switch class {
	case ClassSerif:
		return FontTimes
	case ClassMono:
		return FontCourier
	default:
		return FontHelvetica
	}
}

func fontClass(id FontID) FontClass {
	switch id {
	case FontTimes:
		return ClassSerif
	case FontCourier:
		return ClassMono
	default:
		return ClassSans
	}
}

// clampSize bounds a configured size so the backend never receives an unusable value.
func clampSize(size int) float64 {
	return float64(min(max(size, types.MinFontSize), types.MaxFontSize))
}

// theme holds the resolved style of one render call
type theme struct {
	primary, secondary, accent RGB

	heading, body FontID

	titleSize, sectionSize, subtitleSize, bodySize float64
}

func resolveTheme(cfg *types.StyleConfig) theme {
	return theme{
		primary:      ResolveColor(cfg.Colors.Primary),
		secondary:    ResolveColor(cfg.Colors.Secondary),
		accent:       ResolveColor(cfg.Colors.Accent),
		heading:      ResolveFont(cfg.Fonts.Heading, RoleHeading),
		body:         ResolveFont(cfg.Fonts.Body, RoleBody),
		titleSize:    clampSize(cfg.Fonts.TitleSize),
		sectionSize:  clampSize(cfg.Fonts.SectionTitleSize),
		subtitleSize: clampSize(cfg.Fonts.SubtitleSize),
		bodySize:     clampSize(cfg.Fonts.BodySize),
	}
}
