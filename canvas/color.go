package canvas

import (
	"image/color"

	"github.com/flavioheleno/nanoengine/image4bit"
)

// RGB8 packs 8-bit components into RGB 3-3-2.
func RGB8(r, g, b uint8) uint16 {
	return uint16(r&0xE0 | (g>>3)&0x1C | b>>6)
}

// RGB16 packs 8-bit components into RGB 5-6-5.
func RGB16(r, g, b uint8) uint16 {
	return uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b>>3)
}

// RGB8To16 widens an RGB 3-3-2 value to RGB 5-6-5.
func RGB8To16(c uint8) uint16 {
	return uint16(c&0xE0)<<8 | uint16(c&0x1C)<<6 | uint16(c&0x03)<<3
}

// RGB16To8 narrows an RGB 5-6-5 value to RGB 3-3-2.
func RGB16To8(c uint16) uint8 {
	return uint8((c>>8)&0xE0 | (c>>6)&0x1C | (c>>3)&0x03)
}

// expand332 widens RGB 3-3-2 to 8-bit components by bit replication, so
// full scale maps to 0xFF.
func expand332(v uint8) (r, g, b uint8) {
	r3, g3, b2 := v>>5, (v>>2)&0x07, v&0x03
	return r3<<5 | r3<<2 | r3>>1, g3<<5 | g3<<2 | g3>>1, b2<<6 | b2<<4 | b2<<2 | b2
}

func expand565(v uint16) (r, g, b uint8) {
	r5, g6, b5 := uint8(v>>11), uint8(v>>5)&0x3F, uint8(v)&0x1F
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

// ColorOf decodes a raw pixel value of the given bit depth.
func ColorOf(bpp int, v uint16) color.Color {
	switch bpp {
	case 1:
		if v != 0 {
			return color.Gray{Y: 0xFF}
		}
		return color.Gray{}
	case 4:
		return image4bit.Gray4{Y: uint8(v & 0x0F)}
	case 8:
		r, g, b := expand332(uint8(v))
		return color.RGBA{R: r, G: g, B: b, A: 0xFF}
	default:
		r, g, b := expand565(v)
		return color.RGBA{R: r, G: g, B: b, A: 0xFF}
	}
}
