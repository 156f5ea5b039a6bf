package ssd1322

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/flavioheleno/nanoengine/canvas"
	"github.com/flavioheleno/nanoengine/image4bit"
)

const (
	ramWidth = 480 // display RAM columns, in pixels
	colUnit  = 4   // pixels per column address
)

var errHalted = errors.New("ssd1322: halted")

// sleep is replaced in tests.
var sleep = time.Sleep

// Pin is the output side of a GPIO pin. gpio.PinOut satisfies it.
type Pin interface {
	Out(l gpio.Level) error
}

// Opts is the configuration for the SSD1322 display.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (default: 256, must be a multiple of 4 and ≤480)
	H int // Height (default: 64, must be ≤128)

	// Rotation and mirroring
	Rotated       bool // 180° rotation
	Sequential    bool // Sequential COM pin configuration
	SwapTopBottom bool // Swap top/bottom display halves

	// Optional hardware reset pin
	RST Pin
}

// Dev is the device handle for the SSD1322 display. It keeps a copy of the
// frame as last sent, so tiles that did not change cost no bus traffic and
// changed tiles only send the columns that differ.
type Dev struct {
	// Communication
	c   conn.Conn
	dc  Pin
	rst Pin

	// Display geometry
	rect         image.Rectangle
	columnOffset int // For centering on the 480-column RAM

	// Pixel buffers
	next *image4bit.HorizontalNibble // Frame being composed
	last []byte                      // Frame as last sent

	halted bool
}

// NewSPI creates a new SSD1322 device connected via SPI.
//
// The SPI port is configured for 10MHz, Mode0 (CPOL=0, CPHA=0), 8-bit transfers.
// The dc (Data/Command) GPIO pin must be provided and configured as an output.
//
// opts can be nil to use defaults (256x64 display).
func NewSPI(p spi.Port, dc Pin, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{W: 256, H: 64}
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	// SSD1322 supports Mode0 or Mode3, up to 10MHz serial clock.
	c, err := p.Connect(10*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ssd1322: spi connect: %w", err)
	}
	return newDev(c, dc, opts)
}

func (o *Opts) validate() error {
	if o.W <= 0 || o.W%colUnit != 0 || o.W > ramWidth {
		return errors.New("ssd1322: width must be a multiple of 4 between 4 and 480")
	}
	if o.H <= 0 || o.H > 128 {
		return errors.New("ssd1322: height must be between 1 and 128")
	}
	return nil
}

func newDev(c conn.Conn, dc Pin, opts *Opts) (*Dev, error) {
	if dc == nil {
		return nil, errors.New("ssd1322: dc pin is required")
	}
	rect := image.Rect(0, 0, opts.W, opts.H)
	next := image4bit.NewHorizontalNibble(rect)
	d := &Dev{
		c:            c,
		dc:           dc,
		rst:          opts.RST,
		rect:         rect,
		columnOffset: (ramWidth - opts.W) / 2 &^ (colUnit - 1),
		next:         next,
		last:         make([]byte, len(next.Pix)),
	}
	if err := d.init(opts); err != nil {
		return nil, err
	}
	return d, nil
}

// init sends the initialization sequence to the display.
func (d *Dev) init(opts *Opts) error {
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("ssd1322: failed to pull RST low: %w", err)
		}
		sleep(200 * time.Millisecond)

		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("ssd1322: failed to pull RST high: %w", err)
		}
		sleep(200 * time.Millisecond)
	}

	cmds := []byte{
		0xFD, 0x12, // Unlock command codes
		0xAE,       // Display OFF
		0xB3, 0xF2, // Clock divider and oscillator frequency
		0xCA, byte(opts.H - 1), // MUX ratio
		0xA2, 0x00, // Display offset
		0xA1, 0x00, // Start line
	}

	remap1, remap2 := byte(0x14), byte(0x11)
	if opts.Rotated {
		remap1 = 0x06
	}
	if opts.Sequential {
		remap2 |= 0x01
	}
	if opts.SwapTopBottom {
		remap2 |= 0x02
	}

	cmds = append(cmds,
		0xA0, remap1, remap2, // Remap and dual COM mode
		0xAB, 0x01, // Function selection (enable internal VDD)
		0xB4, 0xA0, 0xFD, // VSL (display enhancement)
		0xC1, 0xFF, // Contrast (max)
		0xC7, 0x0F, // Master contrast
		0xB9,       // Use default grayscale table
		0xB1, 0xE2, // Phase length
		0xD1, 0x82, 0x20, // Display enhancements
		0xBB, 0x1F, // Pre-charge voltage
		0xB6, 0x08, // Second pre-charge period
		0xBE, 0x07, // VCOMH voltage
		0xA6, // Normal display mode
		0xA9, // Exit partial display mode
	)

	if err := d.sendCommands(cmds); err != nil {
		return err
	}
	// RAM and last both start black.
	if err := d.writeRect(d.rect, make([]byte, len(d.last))); err != nil {
		return err
	}
	return d.sendCommand(0xAF)
}

func (d *Dev) sendCommand(cmd byte) error {
	return d.sendCommands([]byte{cmd})
}

func (d *Dev) sendCommands(cmds []byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	return d.c.Tx(cmds, nil)
}

func (d *Dev) sendData(data []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	return d.c.Tx(data, nil)
}

// writeRect sends pixels for r, which must be aligned to column addresses.
func (d *Dev) writeRect(r image.Rectangle, pixels []byte) error {
	colStart := byte((r.Min.X + d.columnOffset) / colUnit)
	colEnd := byte((r.Max.X - 1 + d.columnOffset) / colUnit)
	commands := []byte{
		0x15, colStart, colEnd, // Column address
		0x75, byte(r.Min.Y), byte(r.Max.Y - 1), // Row address
		0x5C, // Enable write to RAM
	}
	if err := d.sendCommands(commands); err != nil {
		return err
	}
	return d.sendData(pixels)
}

// Width returns the display width in pixels.
func (d *Dev) Width() int { return d.rect.Dx() }

// Height returns the display height in pixels.
func (d *Dev) Height() int { return d.rect.Dy() }

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image4bit.Gray4Model
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// DrawCanvas sends the tile c with its top-left corner at (x, y). Parts of
// the tile outside the display are dropped. 4-bit canvases at even columns
// are copied as is; other depths are converted to gray levels.
func (d *Dev) DrawCanvas(x, y int, c canvas.Canvas) error {
	if d.halted {
		return errHalted
	}
	r := image.Rect(x, y, x+c.Width(), y+c.Height()).Intersect(d.rect)
	if r.Empty() {
		return nil
	}
	if c4, ok := c.(*canvas.Canvas4); ok && x%2 == 0 && r.Dx()%2 == 0 {
		src := c4.Buffer()
		n := r.Dx() / 2
		for row := r.Min.Y; row < r.Max.Y; row++ {
			dst, _ := d.next.PixOffset(r.Min.X, row)
			s := (row-y)*c4.Stride() + (r.Min.X-x)/2
			copy(d.next.Pix[dst:dst+n], src[s:s+n])
		}
	} else {
		draw.Draw(d.next, r, canvas.Image(c), r.Min.Sub(image.Pt(x, y)), draw.Src)
	}
	return d.flush(r)
}

// Draw draws src onto the display region dst, sending only what changed.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errHalted
	}
	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}
	draw.Draw(d.next, dst, src, sp, draw.Src)
	return d.flush(dst)
}

// Write writes raw pixel data to the display in HorizontalNibble format.
// The data must be exactly d.rect.Dx() * d.rect.Dy() / 2 bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errHalted
	}
	if len(pixels) != len(d.last) {
		return 0, errors.New("ssd1322: invalid buffer size")
	}
	if err := d.writeRect(d.rect, pixels); err != nil {
		return 0, err
	}
	copy(d.next.Pix, pixels)
	copy(d.last, pixels)
	return len(pixels), nil
}

// flush sends the part of r that differs from what the display shows.
func (d *Dev) flush(r image.Rectangle) error {
	changed := d.diff(r)
	if changed.Empty() {
		return nil
	}
	if err := d.writeRect(changed, d.extractRegion(changed)); err != nil {
		return err
	}
	stride := d.next.Stride
	for y := changed.Min.Y; y < changed.Max.Y; y++ {
		i := y*stride + changed.Min.X/2
		j := y*stride + changed.Max.X/2
		copy(d.last[i:j], d.next.Pix[i:j])
	}
	return nil
}

// diff returns the smallest column-aligned rectangle inside r covering every
// byte that differs between next and last, or an empty rectangle.
func (d *Dev) diff(r image.Rectangle) image.Rectangle {
	stride := d.next.Stride
	b1, b2 := r.Min.X/2, (r.Max.X+1)/2
	minB, maxB := b2, -1
	minRow, maxRow := r.Max.Y, -1
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := y * stride
		cur, old := d.next.Pix[row+b1:row+b2], d.last[row+b1:row+b2]
		if bytes.Equal(cur, old) {
			continue
		}
		minRow = min(minRow, y)
		maxRow = y
		for i := range cur {
			if cur[i] != old[i] {
				minB = min(minB, b1+i)
				maxB = max(maxB, b1+i)
			}
		}
	}
	if maxRow < 0 {
		return image.Rectangle{}
	}
	const mask = colUnit - 1
	return image.Rect(
		minB*2&^mask, minRow,
		min((maxB*2+2+mask)&^mask, d.rect.Max.X), maxRow+1,
	)
}

// extractRegion copies the pixel data of r out of next.
func (d *Dev) extractRegion(r image.Rectangle) []byte {
	stride := d.next.Stride
	byteWidth := r.Dx() / 2
	result := make([]byte, 0, byteWidth*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		start := y*stride + r.Min.X/2
		result = append(result, d.next.Pix[start:start+byteWidth]...)
	}
	return result
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(contrast byte) error {
	if d.halted {
		return errHalted
	}
	return d.sendCommands([]byte{0xC1, contrast})
}

// Invert inverts the display colors (black becomes white and vice versa).
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errHalted
	}
	mode := byte(0xA6)
	if invert {
		mode = 0xA7
	}
	return d.sendCommand(mode)
}

// Halt powers off the display.
// After calling Halt, the display will not respond to further commands
// until the device is re-initialized.
func (d *Dev) Halt() error {
	d.halted = true
	return d.sendCommand(0xAE)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1322.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

// ScrollSpeed defines the horizontal scroll frame rate.
type ScrollSpeed byte

const (
	// Scroll frame rates (in display refresh cycles)
	Speed6Frames   ScrollSpeed = 0x00
	Speed10Frames  ScrollSpeed = 0x01
	Speed100Frames ScrollSpeed = 0x02
	Speed200Frames ScrollSpeed = 0x03
)

// ScrollHorizontal starts horizontal scrolling on the display.
// startRow and endRow specify the scroll region (must be >= 0 and < height).
// If right is true, scrolls right; otherwise scrolls left.
func (d *Dev) ScrollHorizontal(startRow, endRow byte, speed ScrollSpeed, right bool) error {
	if d.halted {
		return errHalted
	}
	if int(startRow) >= d.rect.Dy() || int(endRow) >= d.rect.Dy() {
		return errors.New("ssd1322: scroll row out of range")
	}
	scrollCmd := byte(0x26)
	if right {
		scrollCmd = 0x27
	}
	return d.sendCommands([]byte{
		scrollCmd,
		0x00, // Dummy byte
		startRow,
		byte(speed),
		endRow,
		0x00, 0x00, // Dummy bytes
		0x2F, // Activate scroll
	})
}

// StopScroll stops all scrolling and resets the display to normal operation.
func (d *Dev) StopScroll() error {
	if d.halted {
		return errHalted
	}
	return d.sendCommand(0x2E)
}
