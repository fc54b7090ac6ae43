package block

// Inch in points.
const Inch = 72.0

// PageConfig carries the page geometry and type defaults a renderer needs.
// All lengths are in points.
type PageConfig struct {
	PageWidth  float64
	PageHeight float64

	MarginTop    float64
	MarginBottom float64
	MarginLeft   float64
	MarginRight  float64

	BodyFont    string
	HeadingFont string
	AccentColor string // hex RGB without '#'
}

// Letter page dimensions in points.
const (
	LetterWidth  = 612.0
	LetterHeight = 792.0
)

// DefaultAccent is the dark blue used for headings and titles.
const DefaultAccent = "003366"

// LetterPage returns a US Letter page with uniform margins (in inches) and
// the standard font pairing.
func LetterPage(marginInches float64) PageConfig {
	m := marginInches * Inch
	return PageConfig{
		PageWidth:    LetterWidth,
		PageHeight:   LetterHeight,
		MarginTop:    m,
		MarginBottom: m,
		MarginLeft:   m,
		MarginRight:  m,
		BodyFont:     "Calibri",
		HeadingFont:  "Arial",
		AccentColor:  DefaultAccent,
	}
}
