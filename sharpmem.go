package sharpmem

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/adafruit/sharpmem/image1bit"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Command bits as they appear MSB-first on the wire. The panel itself is
// LSB-first, so these values are the pre-reversed forms of the mode bits
// M0 (write), M1 (VCOM) and M2 (clear).
const (
	bitWriteCmd = 0x80
	bitVCOM     = 0x40
	bitClear    = 0x20
)

// Opts is the configuration for the SHARP memory display.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (default: 144, must be a multiple of 8 and ≤400)
	H int // Height (default: 168, must be ≤255)

	// SPI clock frequency. 0 means the 2MHz default. Panels are rated
	// up to 4MHz (LS027B7DH01 and smaller).
	Frequency physic.Frequency
}

// Dev is the device handle for the SHARP memory display.
type Dev struct {
	// Communication
	c  conn.Conn   // SPI connection
	cs gpio.PinOut // Chip select, active HIGH, driven as a plain GPIO

	// Display geometry
	rect image.Rectangle

	// Pixel buffers, 1 bit per pixel, 8 horizontal pixels per byte with
	// the leftmost pixel in the MSB.
	buffer []byte                   // Current frame
	next   *image1bit.HorizontalMSB // For lazy double buffering
	last   image1bit.HorizontalMSB  // Last displayed frame for dirty-row updates

	// State
	vcom   bool // Next VCOM polarity, flips on every transmission
	halted bool
}

// NewSPI creates a new SHARP memory display device connected via SPI.
//
// The SPI port is configured for Mode0 (CPOL=0, CPHA=0), 8-bit transfers
// at 2MHz unless Opts.Frequency overrides it.
//
// cs is the chip select line. SHARP memory displays use an ACTIVE-HIGH
// chip select, the opposite of standard SPI, so the line must be wired to
// a plain GPIO pin rather than the bus's hardware CS.
//
// opts can be nil to use defaults (144x168 display).
func NewSPI(p spi.Port, cs gpio.PinOut, opts *Opts) (*Dev, error) {
	// Apply defaults and validate options
	if opts == nil {
		opts = &Opts{W: 144, H: 168}
	}

	if opts.W < 8 || opts.W%8 != 0 || opts.W > 400 {
		return nil, errors.New("sharpmem: width must be a multiple of 8 between 8 and 400")
	}
	// The line address on the wire is a single byte, so the panel cannot
	// have more than 255 rows.
	if opts.H <= 0 || opts.H > 255 {
		return nil, errors.New("sharpmem: height must be between 1 and 255")
	}

	f := opts.Frequency
	if f == 0 {
		f = 2 * physic.MegaHertz
	}
	if f < 0 || f > 4*physic.MegaHertz {
		return nil, errors.New("sharpmem: frequency must be between 0 and 4MHz")
	}

	c, err := p.Connect(f, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	// Create device
	d := &Dev{
		c:      c,
		cs:     cs,
		rect:   image.Rect(0, 0, opts.W, opts.H),
		buffer: make([]byte, opts.W/8*opts.H),
		vcom:   true,
	}

	// Park CS in its inactive (low) state before the first transaction.
	if err := cs.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("sharpmem: failed to park CS low: %w", err)
	}

	// Bring panel RAM to a known all-white state.
	if err := d.Clear(); err != nil {
		return nil, err
	}

	return d, nil
}

// reverseByte reverses the bit order of b. The panel shifts bits in
// LSB-first while nearly all SPI hosts are MSB-first, so line addresses
// are sent pre-reversed.
func reverseByte(b byte) byte {
	var r byte
	for i := 0; i < 8; i++ {
		r <<= 1
		r |= b & 1
		b >>= 1
	}
	return r
}

// command returns the leading byte of a transmission and flips the stored
// VCOM polarity. Every transmission carries the alternating VCOM bit to
// keep the liquid crystal DC balanced.
func (d *Dev) command(bits byte) byte {
	if d.vcom {
		bits |= bitVCOM
	}
	d.vcom = !d.vcom
	return bits
}

// tx runs a single panel transaction inside a CS-high window.
func (d *Dev) tx(buf []byte) error {
	if err := d.cs.Out(gpio.High); err != nil {
		return fmt.Errorf("sharpmem: failed to assert CS: %w", err)
	}
	txErr := d.c.Tx(buf, nil)
	// CS must return low even when the transfer failed.
	if err := d.cs.Out(gpio.Low); err != nil && txErr == nil {
		txErr = fmt.Errorf("sharpmem: failed to release CS: %w", err)
	}
	return txErr
}

// writeRows transmits the given rows of pix to the panel. Every row
// carries its own 1-based, bit-reversed address byte, so the rows need
// not be contiguous.
func (d *Dev) writeRows(pix []byte, rows []int) error {
	stride := d.rect.Dx() / 8
	buf := make([]byte, 0, 2+len(rows)*(stride+2))
	buf = append(buf, d.command(bitWriteCmd))
	for _, y := range rows {
		buf = append(buf, reverseByte(byte(y+1)))
		buf = append(buf, pix[y*stride:(y+1)*stride]...)
		buf = append(buf, 0x00)
	}
	// One extra trailing byte ends the transmission.
	buf = append(buf, 0x00)
	return d.tx(buf)
}

// writeFullFrame writes the entire frame buffer to the display.
func (d *Dev) writeFullFrame(pix []byte) error {
	rows := make([]int, d.rect.Dy())
	for y := range rows {
		rows[y] = y
	}
	return d.writeRows(pix, rows)
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Write writes raw pixel data to the display in HorizontalMSB format.
// The data must be exactly d.rect.Dx() / 8 * d.rect.Dy() bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errors.New("sharpmem: halted")
	}
	if len(pixels) != len(d.buffer) {
		return 0, errors.New("sharpmem: invalid buffer size")
	}
	if err := d.writeFullFrame(pixels); err != nil {
		return 0, err
	}
	d.syncBuffers(pixels)
	return len(pixels), nil
}

// Draw draws an image onto the display with dirty-row update optimization.
// The dst rectangle specifies the destination region on the display.
// The src image is positioned at src point sp within the destination.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("sharpmem: halted")
	}

	// Clip to display bounds
	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	// Fast path: if source is already HorizontalMSB at full size, diff it
	// against the displayed frame directly, skipping the render step.
	if srcImg, ok := src.(*image1bit.HorizontalMSB); ok {
		zeroPoint := image.Point{}
		if dst == d.rect && sp == zeroPoint && srcImg.Rect == d.rect {
			rows := d.diffRows(d.buffer, srcImg.Pix)
			if len(rows) == 0 {
				return nil
			}
			if err := d.writeRows(srcImg.Pix, rows); err != nil {
				return err
			}
			d.syncBuffers(srcImg.Pix)
			return nil
		}
	}

	// Slow path: render to buffer and send only the rows that changed.
	// Lazy-initialize double buffer
	if d.next == nil {
		d.next = image1bit.NewHorizontalMSB(d.rect)
		// Initialize last frame buffer
		d.last = image1bit.HorizontalMSB{
			Pix:    make([]byte, len(d.buffer)),
			Stride: d.next.Stride,
			Rect:   d.rect,
		}
		copy(d.next.Pix, d.buffer)
		copy(d.last.Pix, d.buffer)
	}

	// Draw source into our buffer
	draw.Draw(d.next, dst, src, sp, draw.Src)

	// Rows are the panel's addressing unit, so the dirty set is a row set.
	rows := d.diffRows(d.last.Pix, d.next.Pix)
	if len(rows) == 0 {
		// No changes, nothing goes on the wire and VCOM is untouched.
		return nil
	}

	if err := d.writeRows(d.next.Pix, rows); err != nil {
		return err
	}

	// Update stored buffers
	copy(d.buffer, d.next.Pix)
	copy(d.last.Pix, d.next.Pix)

	return nil
}

// syncBuffers records pix as both the displayed and the staged frame so
// later dirty-row diffs start from what the panel actually shows.
func (d *Dev) syncBuffers(pix []byte) {
	copy(d.buffer, pix)
	if d.next != nil {
		copy(d.next.Pix, pix)
		copy(d.last.Pix, pix)
	}
}

// diffRows compares two full frames and returns the rows that differ.
// The result may be non-contiguous.
func (d *Dev) diffRows(a, b []byte) []int {
	stride := d.rect.Dx() / 8
	var rows []int
	for y := 0; y < d.rect.Dy(); y++ {
		rowStart := y * stride
		rowEnd := rowStart + stride
		if !bytes.Equal(a[rowStart:rowEnd], b[rowStart:rowEnd]) {
			rows = append(rows, y)
		}
	}
	return rows
}

// Clear blanks the panel using the hardware clear command and zeroes the
// host-side buffers. This is much faster than writing a white frame.
func (d *Dev) Clear() error {
	if d.halted {
		return errors.New("sharpmem: halted")
	}
	if err := d.tx([]byte{d.command(bitClear), 0x00}); err != nil {
		return err
	}
	clear(d.buffer)
	if d.next != nil {
		clear(d.next.Pix)
		clear(d.last.Pix)
	}
	return nil
}

// ToggleVCOM sends a maintenance transmission carrying only the VCOM bit.
//
// The panel needs its VCOM polarity inverted at least once per second to
// avoid a DC bias across the liquid crystal. Frame writes and clears
// already toggle it; call ToggleVCOM periodically whenever the displayed
// image is static.
func (d *Dev) ToggleVCOM() error {
	if d.halted {
		return errors.New("sharpmem: halted")
	}
	return d.tx([]byte{d.command(0), 0x00})
}

// Halt blanks the display and stops accepting commands.
//
// Memory displays have no power-off command; a cleared panel draws almost
// no current. After calling Halt, the device must be re-created to be
// used again.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	err := d.Clear()
	d.halted = true
	return err
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("sharpmem.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}
