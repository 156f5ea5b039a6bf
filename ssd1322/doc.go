// Package ssd1322 controls a SSD1322 OLED display via SPI and serves as a
// tile sink for the nanoengine Tiler.
//
// The SSD1322 is a 4-bit grayscale OLED controller supporting up to 480×128 pixels.
//
// # Display Characteristics
//
// - 4-bit grayscale with 16 intensity levels (0-15)
// - Support for various resolutions (typically 256×64 or 128×64)
// - Hardware scrolling support (horizontal only)
// - Adjustable contrast (0-255)
// - Display inversion
// - 480-column internal RAM with automatic centering for smaller displays
//
// # Hardware Connection
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V (or 5V depending on display)
//	SCL/CLK     → SPI Clock (SCLK)
//	SDA/MOSI    → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select (or GND if always selected)
//	RES         → Optional: GPIO for hardware reset
//
// # Rendering Tiles
//
// Dev implements nanoengine.Display. Pair it with a 4-bit canvas so tiles are
// copied without conversion:
//
//	host.Init()
//	port, _ := spireg.Open("")
//	dev, _ := ssd1322.NewSPI(port, gpioreg.ByName("GPIO25"), &ssd1322.Opts{W: 256, H: 64})
//	defer dev.Halt()
//
//	buf := make([]byte, canvas.Size4(32, 32))
//	c, _ := canvas.New4(32, 32, buf)
//	engine, _ := nanoengine.NewEngine(dev, c, nil)
//
// Canvases of other depths work too; their pixels are converted to gray
// levels on the way out.
//
// # Partial Updates
//
// The driver keeps the frame as last sent. DrawCanvas, Draw and Write update
// it, and only the columns and rows that actually changed are transferred,
// rounded out to the controller's 4-pixel column address. A tile redrawn
// with identical content costs no bus traffic at all.
//
// # Using Hardware Reset Pin (Optional)
//
// If RST is set in Opts the driver pulls it low for 200ms, then high for
// 200ms, before initialization. Otherwise it relies on power-on reset.
//
// # Hardware Scrolling
//
//	dev.ScrollHorizontal(0, 63, ssd1322.Speed10Frames, false)
//	time.Sleep(5 * time.Second)
//	dev.StopScroll()
//
// # Display Resolution
//
// Width must be a multiple of 4 and ≤480. Height must be ≤128.
//
// # Datasheet
//
// For detailed register descriptions and timing information, see:
// https://www.displayfuture.com/Display/datasheet/controller/SSD1322.pdf
package ssd1322
