// Package image4bit provides the 4-bit grayscale pixel format used by 4bpp
// canvases and by the SSD1322 display sink.
//
// The SSD1322 OLED controller uses 4-bit grayscale (16 intensity levels from 0-15).
// Pixels are stored in horizontal nibble packing where each byte contains 2 pixels.
//
// Memory layout example for a 4-pixel row:
//
//	Pixels: 0  1  2  3
//	Values: 5  10 3  12
//	Bytes:  0x5A     0x3C
//	        (0x5A = high nibble: 5, low nibble: A=10)
//	        (0x3C = high nibble: 3, low nibble: C=12)
//
// A 4bpp canvas keeps its tile buffer in exactly this layout, so Wrap can expose
// the canvas bytes as a standard image.Image without copying:
//
//	img, _ := image4bit.Wrap(image.Rect(0, 0, 16, 16), buf)
//	img.SetGray4(10, 2, image4bit.Gray4{Y: 8})
//	draw.Draw(img, img.Bounds(), image.NewUniform(image4bit.Gray4{Y: 15}), image.Point{}, draw.Src)
package image4bit
