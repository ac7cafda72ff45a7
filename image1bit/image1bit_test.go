package image1bit

import (
	"image"
	"image/color"
	"testing"
)

func TestBitRGBA(t *testing.T) {
	tests := []struct {
		name string
		bit  Bit
		want uint32
	}{
		{"off", Off, 0x0000},
		{"on", On, 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.bit.RGBA()
			if r != tt.want || g != tt.want || b != tt.want || a != 0xFFFF {
				t.Errorf("RGBA() = (%x, %x, %x, %x), want (%x, %x, %x, %x)",
					r, g, b, a, tt.want, tt.want, tt.want, uint32(0xFFFF))
			}
		})
	}
}

func TestBitString(t *testing.T) {
	if On.String() != "On" {
		t.Errorf("On.String() = %q, want %q", On.String(), "On")
	}
	if Off.String() != "Off" {
		t.Errorf("Off.String() = %q, want %q", Off.String(), "Off")
	}
}

func TestBitModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  Bit
	}{
		{"bit passthrough on", On, On},
		{"bit passthrough off", Off, Off},
		{"black", color.Black, Off},
		{"white", color.White, On},
		{"dark gray rgb", color.RGBA{0x40, 0x40, 0x40, 0xFF}, Off},
		{"light gray rgb", color.RGBA{0xC0, 0xC0, 0xC0, 0xFF}, On},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BitModel.Convert(tt.input).(Bit)
			if result != tt.want {
				t.Errorf("BitModel.Convert(%v) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}

func TestNewHorizontalMSB(t *testing.T) {
	tests := []struct {
		name       string
		rect       image.Rectangle
		wantPanic  bool
		wantStride int
		wantPixLen int
	}{
		{"144x168", image.Rect(0, 0, 144, 168), false, 18, 3024},
		{"96x96", image.Rect(0, 0, 96, 96), false, 12, 1152},
		{"400x240", image.Rect(0, 0, 400, 240), false, 50, 12000},
		{"8x2", image.Rect(0, 0, 8, 2), false, 1, 2},
		{"offset rect", image.Rect(10, 20, 18, 22), false, 1, 2},
		{"non multiple of 8 panics", image.Rect(0, 0, 12, 2), true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if (r != nil) != tt.wantPanic {
					t.Errorf("panic = %v, want panic = %v", r != nil, tt.wantPanic)
				}
			}()

			img := NewHorizontalMSB(tt.rect)
			if !tt.wantPanic {
				if img.Rect != tt.rect {
					t.Errorf("Rect = %v, want %v", img.Rect, tt.rect)
				}
				if img.Stride != tt.wantStride {
					t.Errorf("Stride = %d, want %d", img.Stride, tt.wantStride)
				}
				if len(img.Pix) != tt.wantPixLen {
					t.Errorf("len(Pix) = %d, want %d", len(img.Pix), tt.wantPixLen)
				}
			}
		})
	}
}

func TestHorizontalMSBBitPacking(t *testing.T) {
	img := NewHorizontalMSB(image.Rect(0, 0, 8, 1))

	// Pattern 1 0 1 0 0 0 1 1 packs to 0xA3
	img.SetBit(0, 0, On)
	img.SetBit(2, 0, On)
	img.SetBit(6, 0, On)
	img.SetBit(7, 0, On)

	if img.Pix[0] != 0xA3 {
		t.Errorf("Pix[0] = 0x%02X, want 0xA3", img.Pix[0])
	}

	// Clearing the leftmost pixel drops the MSB
	img.SetBit(0, 0, Off)
	if img.Pix[0] != 0x23 {
		t.Errorf("Pix[0] = 0x%02X, want 0x23", img.Pix[0])
	}
}

func TestHorizontalMSBSetGet(t *testing.T) {
	img := NewHorizontalMSB(image.Rect(0, 0, 8, 2))

	testCases := [][8]bool{
		{true, false, true, false, true, false, true, false},
		{false, true, true, false, false, true, true, false},
	}

	for y, row := range testCases {
		for x, val := range row {
			img.SetBit(x, y, Bit(val))
		}
	}

	for y, row := range testCases {
		for x, wantVal := range row {
			result := img.BitAt(x, y)
			if result != Bit(wantVal) {
				t.Errorf("BitAt(%d, %d) = %v, want %v", x, y, result, Bit(wantVal))
			}
		}
	}
}

func TestHorizontalMSBAt(t *testing.T) {
	img := NewHorizontalMSB(image.Rect(0, 0, 8, 2))
	img.SetBit(3, 1, On)

	c := img.At(3, 1)
	b, ok := c.(Bit)
	if !ok {
		t.Errorf("At(3, 1) returned %T, want Bit", c)
	}
	if b != On {
		t.Errorf("At(3, 1) = %v, want On", b)
	}
}

func TestHorizontalMSBSet(t *testing.T) {
	img := NewHorizontalMSB(image.Rect(0, 0, 8, 2))

	// Set with color.Color interface
	img.Set(0, 0, On)
	if img.BitAt(0, 0) != On {
		t.Error("After Set(0, 0, On), BitAt(0, 0) = Off, want On")
	}

	// Convert from standard color
	img.Set(1, 0, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}) // White
	if img.BitAt(1, 0) != On {
		t.Error("After Set(1, 0, white), BitAt(1, 0) = Off, want On")
	}
	img.Set(1, 0, color.Black)
	if img.BitAt(1, 0) != Off {
		t.Error("After Set(1, 0, black), BitAt(1, 0) = On, want Off")
	}
}

func TestHorizontalMSBColorModel(t *testing.T) {
	img := NewHorizontalMSB(image.Rect(0, 0, 8, 8))
	if img.ColorModel() != BitModel {
		t.Error("ColorModel() did not return BitModel")
	}
}

func TestHorizontalMSBBounds(t *testing.T) {
	rect := image.Rect(16, 24, 24, 32)
	img := NewHorizontalMSB(rect)
	if img.Bounds() != rect {
		t.Errorf("Bounds() = %v, want %v", img.Bounds(), rect)
	}
}

func TestHorizontalMSBOutOfBounds(t *testing.T) {
	img := NewHorizontalMSB(image.Rect(0, 0, 8, 8))

	// Out of bounds reads should return Off
	if img.BitAt(-1, 0) != Off {
		t.Error("BitAt(-1, 0) = On, want Off (out of bounds)")
	}
	if img.BitAt(0, -1) != Off {
		t.Error("BitAt(0, -1) = On, want Off (out of bounds)")
	}
	if img.BitAt(8, 0) != Off {
		t.Error("BitAt(8, 0) = On, want Off (out of bounds)")
	}

	// Out of bounds writes should do nothing
	img.SetBit(-1, 0, On)
	img.SetBit(0, -1, On)
	img.SetBit(8, 0, On)

	for _, b := range img.Pix {
		if b != 0 {
			t.Fatalf("out-of-bounds SetBit modified Pix: % X", img.Pix)
		}
	}
}

func TestHorizontalMSBOffsetRect(t *testing.T) {
	// Test with offset rectangle (min != 0,0)
	rect := image.Rect(104, 50, 112, 52)
	img := NewHorizontalMSB(rect)

	// Set pixel at absolute coordinates
	img.SetBit(104, 50, On)

	if img.BitAt(104, 50) != On {
		t.Error("SetBit(104, 50, On) then BitAt(104, 50) = Off, want On")
	}

	// Verify byte layout (0-based offset): leftmost pixel is the MSB
	if img.Pix[0] != 0x80 {
		t.Errorf("Pix[0] = 0x%02X, want 0x80", img.Pix[0])
	}
}

func TestHorizontalMSBPixOffset(t *testing.T) {
	img := NewHorizontalMSB(image.Rect(0, 0, 16, 2))

	tests := []struct {
		x, y   int
		offset int
		mask   byte
	}{
		// Row 0
		{0, 0, 0, 0x80},
		{1, 0, 0, 0x40},
		{7, 0, 0, 0x01},
		{8, 0, 1, 0x80},
		{15, 0, 1, 0x01},
		// Row 1 (2 bytes per row)
		{0, 1, 2, 0x80},
		{9, 1, 3, 0x40},
	}

	for _, tt := range tests {
		offset, mask := img.pixOffset(tt.x, tt.y)
		if offset != tt.offset || mask != tt.mask {
			t.Errorf("pixOffset(%d, %d) = (%d, 0x%02X), want (%d, 0x%02X)",
				tt.x, tt.y, offset, mask, tt.offset, tt.mask)
		}
	}
}
