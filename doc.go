// Package sharpmem controls a SHARP Memory Display via SPI.
//
// SHARP memory displays (memory-in-pixel LCDs) are monochrome panels with a
// single bit of RAM behind every pixel. The panel retains its image without
// refresh and draws microwatts while static, which makes these displays a
// popular e-paper alternative with much faster updates.
// This driver implements the display.Drawer interface from periph.io.
//
// # Display Characteristics
//
// - 1-bit monochrome (a pixel is either reflective/white or black)
// - Image retained in the panel without host refresh
// - Per-line addressing: any subset of rows can be rewritten
// - No backlight, no contrast control, no power-off command
// - VCOM polarity must be inverted periodically (≥1Hz) to avoid DC bias
//
// # Hardware Connection
//
// Connect the display to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VIN         → 3.3V
//	CLK         → SPI Clock (SCLK)
//	DI          → SPI Data (MOSI)
//	CS          → GPIO (any available pin, see below)
//
// The chip select is ACTIVE HIGH, the opposite of standard SPI. Do not wire
// it to the bus's hardware CE line; give the driver a plain GPIO pin and it
// frames every transaction itself.
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"image"
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"github.com/adafruit/sharpmem"
//		"github.com/adafruit/sharpmem/image1bit"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus
//		spiBus, _ := spireg.Open("")
//
//		// Get chip select GPIO pin
//		csPin := gpioreg.ByName("GPIO23")
//
//		// Create device
//		dev, _ := sharpmem.NewSPI(spiBus, csPin, &sharpmem.Opts{
//			W: 144,
//			H: 168,
//		})
//		defer dev.Halt()
//
//		// Create a 1-bit image and turn some pixels on
//		img := image1bit.NewHorizontalMSB(dev.Bounds())
//		for x := 0; x < 144; x++ {
//			img.SetBit(x, x%168, image1bit.On)
//		}
//
//		// Display the image
//		dev.Draw(dev.Bounds(), img, image.Point{})
//	}
//
// # Drawing Modes
//
// The driver supports two drawing modes:
//
// ## Full-Frame Update
//
// Write raw pixel data directly to the display. Use this for maximum
// performance when updating the entire frame:
//
//	pixels := make([]byte, 144/8*168) // 3024 bytes for 144×168
//	// ... fill pixels ...
//	dev.Write(pixels)
//
// ## Dirty-Row Updates
//
// Use the Draw method for automatic partial updates. The panel is addressed
// line by line, so the driver tracks which rows changed since the last
// transmission and rewrites only those. The rows need not be contiguous;
// each carries its own address byte on the wire:
//
//	dev.Draw(dev.Bounds(), myImage, image.Point{})
//
// # VCOM Maintenance
//
// The liquid crystal must not sit under a DC bias: the panel's VCOM
// polarity has to alternate at least once per second. Every frame write and
// every Clear already alternates it. If the displayed image is static for
// longer than a second, call ToggleVCOM periodically:
//
//	t := time.NewTicker(time.Second)
//	for range t.C {
//		dev.ToggleVCOM()
//	}
//
// # Clearing
//
// Clear uses the panel's hardware clear command, which blanks all pixels in
// a single 2-byte transmission instead of streaming a full white frame:
//
//	dev.Clear()
//
// # Supported Panels
//
// Any SHARP memory display works as long as the full frame fits in host
// memory. Common modules:
//
//	Opts{W: 96, H: 96}   // LS013B4DN04, 1.3" breakout (Adafruit 1393)
//	Opts{W: 144, H: 168} // LS013B7DH03, 1.3" breakout (Adafruit 3502)
//	Opts{W: 400, H: 240} // LS027B7DH01, 2.7" module
//
// Width must be a multiple of 8 and ≤400. Height must be ≤255.
//
// # Performance
//
// The SPI clock runs at 2MHz by default (panels are rated up to 4MHz):
// - Full-frame update, 144×168: ~13ms
// - Single changed row: ~100μs
// - Hardware clear: ~10μs
//
// # Datasheets and Product Pages
//
// - https://www.adafruit.com/product/3502 (1.3" 144×168 breakout)
// - https://www.adafruit.com/product/1393 (1.3" 96×96 breakout)
// - https://www.sharpsma.com/products?sharpCategory=Memory%20LCD
// - SHARP "Memory LCD Programming" application note (VCOM and framing details)
//
// # Compatibility with periph.io
//
// This driver implements the display.Drawer interface from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
//
// It can be used with any periph.io tool or library expecting a display.Drawer.
package sharpmem
