// Package image1bit provides a 1-bit image format for SHARP memory displays.
//
// SHARP memory displays are monochrome: every pixel is either on (white) or
// off (black). Pixels are stored 8 to a byte in horizontal MSB packing, with
// the leftmost pixel in the most significant bit. This is the order the
// panel shifts bits in, so a row of bytes goes on the wire unmodified.
//
// Memory layout example for an 8-pixel row:
//
//	Pixels: 0  1  2  3  4  5  6  7
//	Values: 1  0  1  0  0  0  1  1
//	Byte:   0xA3
//	        (bit 7 = pixel 0, bit 0 = pixel 7)
//
// This package provides:
//
// - Bit: A color type representing one monochrome pixel (On or Off)
// - BitModel: A color model for converting standard Go colors to Bit
// - HorizontalMSB: An image.Image implementation optimized for the panel
//
// Example usage:
//
//	// Create a 144x168 image
//	img := image1bit.NewHorizontalMSB(image.Rect(0, 0, 144, 168))
//
//	// Turn on a pixel
//	img.SetBit(10, 20, image1bit.On)
//
//	// Get a pixel
//	b := img.BitAt(10, 20)
//	println(b.String())  // Output: On
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(image1bit.On), image.Point{}, draw.Src)
package image1bit
