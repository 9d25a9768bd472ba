package render

import "termclock/internal/mode"

// ---- Glyph Font

// GlyphSize is the pixel size of one character in the base font.
const GlyphSize = 8

// 8x8 bitmaps for the characters of HH:MM:SS. '#' is a lit pixel.
var font = map[rune][GlyphSize]string{
	'0': {
		" ###### ",
		"##    ##",
		"##   ###",
		"##  # ##",
		"## #  ##",
		"###   ##",
		" ###### ",
		"        ",
	},
	'1': {
		"   ##   ",
		" ####   ",
		"   ##   ",
		"   ##   ",
		"   ##   ",
		"   ##   ",
		" ###### ",
		"        ",
	},
	'2': {
		" ###### ",
		"##    ##",
		"      ##",
		"  ##### ",
		" ##     ",
		"##      ",
		"########",
		"        ",
	},
	'3': {
		" ###### ",
		"##    ##",
		"      ##",
		"   #### ",
		"      ##",
		"##    ##",
		" ###### ",
		"        ",
	},
	'4': {
		"    ### ",
		"   #### ",
		"  ## ## ",
		" ##  ## ",
		"########",
		"     ## ",
		"     ## ",
		"        ",
	},
	'5': {
		"########",
		"##      ",
		"####### ",
		"      ##",
		"      ##",
		"##    ##",
		" ###### ",
		"        ",
	},
	'6': {
		"  ##### ",
		" ##     ",
		"##      ",
		"####### ",
		"##    ##",
		"##    ##",
		" ###### ",
		"        ",
	},
	'7': {
		"########",
		"##    ##",
		"     ## ",
		"    ##  ",
		"   ##   ",
		"   ##   ",
		"   ##   ",
		"        ",
	},
	'8': {
		" ###### ",
		"##    ##",
		"##    ##",
		" ###### ",
		"##    ##",
		"##    ##",
		" ###### ",
		"        ",
	},
	'9': {
		" ###### ",
		"##    ##",
		"##    ##",
		" #######",
		"      ##",
		"     ## ",
		" #####  ",
		"        ",
	},
	':': {
		"        ",
		"   ##   ",
		"   ##   ",
		"        ",
		"   ##   ",
		"   ##   ",
		"        ",
		"        ",
	},
}

// cellPixels is how many font pixels one terminal cell packs at a tier,
// as columns × rows.
func cellPixels(t mode.Tier) (int, int) {
	switch t {
	case mode.Full:
		return 1, 1
	case mode.Half:
		return 2, 1
	case mode.Sextant:
		return 2, 3
	default:
		return 2, 2
	}
}

var halfBlocks = [4]rune{' ', '▌', '▐', '█'}

// Indexed by top-left=1, top-right=2, bottom-left=4, bottom-right=8.
var quadrantBlocks = [16]rune{
	' ', '▘', '▝', '▀', '▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜', '▄', '▙', '▟', '█',
}

// sextant maps a six-bit pattern, numbered left to right then top to
// bottom, to the block sextant characters. Three patterns live outside
// that block.
func sextant(bits int) rune {
	switch bits {
	case 0:
		return ' '
	case 0b010101:
		return '▌'
	case 0b101010:
		return '▐'
	case 0b111111:
		return '█'
	}
	idx := bits - 1
	if bits > 0b010101 {
		idx--
	}
	if bits > 0b101010 {
		idx--
	}
	return rune(0x1FB00 + idx)
}

// pixels rasterises text into rows of lit pixels. Unknown characters are
// blank.
func pixels(text string) [][]bool {
	runes := []rune(text)
	rows := make([][]bool, GlyphSize)
	for y := range rows {
		rows[y] = make([]bool, GlyphSize*len(runes))
		for i, r := range runes {
			g, ok := font[r]
			if !ok {
				continue
			}
			for x, c := range g[y] {
				rows[y][i*GlyphSize+x] = c == '#'
			}
		}
	}
	return rows
}

// Glyphs renders text as block characters for tier t. Every row has the
// same number of cells.
func Glyphs(text string, t mode.Tier) [][]rune {
	px := pixels(text)
	cw, ch := cellPixels(t)
	width := len(px[0])

	lit := func(x, y int) bool {
		return y < len(px) && x < width && px[y][x]
	}

	var out [][]rune
	for y := 0; y < GlyphSize; y += ch {
		row := make([]rune, 0, (width+cw-1)/cw)
		for x := 0; x < width; x += cw {
			bits := 0
			bit := 1
			for dy := 0; dy < ch; dy++ {
				for dx := 0; dx < cw; dx++ {
					if lit(x+dx, y+dy) {
						bits |= bit
					}
					bit <<= 1
				}
			}
			row = append(row, blockFor(t, bits))
		}
		out = append(out, row)
	}
	return out
}

func blockFor(t mode.Tier, bits int) rune {
	switch t {
	case mode.Full:
		if bits != 0 {
			return '█'
		}
		return ' '
	case mode.Half:
		return halfBlocks[bits]
	case mode.Sextant:
		return sextant(bits)
	default:
		return quadrantBlocks[bits]
	}
}
