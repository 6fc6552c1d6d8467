package domain

import "fmt"

// DefaultMaxDisplayRows caps how many sequences are rendered at once.
const DefaultMaxDisplayRows = 30

// defaultWindowCols is the width of the initial visible column window.
const defaultWindowCols = 100

// ColorClass is the fixed display color for one alignment symbol.
type ColorClass string

const (
	ColorGreen   ColorClass = "green"  // A
	ColorBlue    ColorClass = "blue"   // C
	ColorOrange  ColorClass = "orange" // G
	ColorRed     ColorClass = "red"    // T
	ColorGrey    ColorClass = "grey"   // gap
	ColorUnknown ColorClass = "purple" // N and anything else
)

// ColorOf maps a symbol to its display color. Total over the byte alphabet:
// unmapped symbols fall back to the unknown color rather than failing.
func ColorOf(sym byte) ColorClass {
	switch sym {
	case 'A':
		return ColorGreen
	case 'C':
		return ColorBlue
	case 'G':
		return ColorOrange
	case 'T':
		return ColorRed
	case GapSymbol:
		return ColorGrey
	default:
		return ColorUnknown
	}
}

// Cell is one rendered symbol/color pair.
type Cell struct {
	Symbol byte
	Color  ColorClass
}

// DisplayRow is one sequence prepared for rendering.
type DisplayRow struct {
	ID    string
	Cells []Cell
}

// BandKind tags a highlight overlay.
type BandKind string

const (
	BandSNP    BandKind = "snp"
	BandRegion BandKind = "region"
)

// Band is a metadata-only highlight overlay in column space, spanning the
// displayed row range. It carries no behavior.
type Band struct {
	Kind BandKind
	From float64
	To   float64
	Rows int
}

// Window is an inclusive visible column range.
type Window struct {
	From int
	To   int
}

// DisplayPayload is everything a presentation layer needs to draw one
// alignment view. When Err is set the collections are empty; the payload is
// always well formed either way.
type DisplayPayload struct {
	Rows    []DisplayRow
	Bands   []Band
	SNPs    []int
	Regions []Region

	DisplayCount int
	TotalRows    int
	Truncated    bool
	Length       int

	DefaultWindow Window
	FullWindow    Window

	Err string
}

// BuildDisplay prepares the windowed, annotated rendering of the alignment.
// Any internal failure is converted into an error-state payload instead of
// escaping the boundary.
func BuildDisplay(a *Alignment, snps []int, regions []Region, maxRows int) (p DisplayPayload) {
	defer func() {
		if r := recover(); r != nil {
			p = errorPayload(fmt.Sprintf("display build failed: %v", r))
		}
	}()

	if a == nil {
		return errorPayload("display build failed: nil alignment")
	}
	if maxRows <= 0 {
		maxRows = DefaultMaxDisplayRows
	}

	total := a.Rows()
	count := min(total, maxRows)
	length := a.Length()

	p = DisplayPayload{
		Rows:          make([]DisplayRow, 0, count),
		Bands:         make([]Band, 0, len(snps)+len(regions)),
		SNPs:          append([]int{}, snps...),
		Regions:       append([]Region{}, regions...),
		DisplayCount:  count,
		TotalRows:     total,
		Truncated:     total > count,
		Length:        length,
		DefaultWindow: Window{From: 0, To: min(defaultWindowCols-1, length-1)},
		FullWindow:    Window{From: 0, To: length - 1},
	}

	for i := 0; i < count; i++ {
		row := DisplayRow{ID: a.ID(i), Cells: make([]Cell, length)}
		for col := 0; col < length; col++ {
			sym := a.Symbol(i, col)
			row.Cells[col] = Cell{Symbol: sym, Color: ColorOf(sym)}
		}
		p.Rows = append(p.Rows, row)
	}

	for _, pos := range snps {
		p.Bands = append(p.Bands, Band{
			Kind: BandSNP,
			From: float64(pos) - 0.5,
			To:   float64(pos) + 0.5,
			Rows: count,
		})
	}
	for _, r := range regions {
		p.Bands = append(p.Bands, Band{
			Kind: BandRegion,
			From: float64(r.Start) - 0.5,
			To:   float64(r.End) + 0.5,
			Rows: count,
		})
	}

	return p
}

func errorPayload(msg string) DisplayPayload {
	return DisplayPayload{
		Rows:    []DisplayRow{},
		Bands:   []Band{},
		SNPs:    []int{},
		Regions: []Region{},
		Err:     msg,
	}
}
