// Package bmp writes an uncompressed 24-bit BMP from a sensor's
// accumulated radiance, following the exact header and row layout a
// minimal Windows bitmap requires. Uses stdlib math for the tone-mapping
// curve and stdlib encoding/binary for the fixed-width header fields;
// no image-codec library handles this non-standard exact byte layout,
// so a generic codec would not help here.
package bmp

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"

	"github.com/arcflux/pathtracer/pkg/camera"
)

const (
	fileHeaderSize = 14
	infoHeaderSize = 40
	pixelOffset    = fileHeaderSize + infoHeaderSize
)

// Write encodes sensor's accumulated image as a 24-bit uncompressed BMP
// and writes it to w. Rows are written bottom-to-top, each row padded
// to a multiple of 4 bytes.
func Write(w io.Writer, sensor *camera.Sensor) error {
	width, height := sensor.Width, sensor.Height
	rowSize := width*3 + padding(width)
	pixelDataSize := rowSize * height
	fileSize := pixelOffset + pixelDataSize

	bw := bufio.NewWriter(w)

	// 2-byte magic plus the rest of the 14-byte file header.
	if _, err := bw.Write([]byte{'B', 'M'}); err != nil {
		return err
	}
	if err := writeU32(bw, uint32(fileSize)); err != nil {
		return err
	}
	if err := writeU16(bw, 0); err != nil { // reserved
		return err
	}
	if err := writeU16(bw, 0); err != nil { // reserved
		return err
	}
	if err := writeU32(bw, uint32(pixelOffset)); err != nil {
		return err
	}

	// 40-byte BITMAPINFOHEADER.
	if err := writeU32(bw, infoHeaderSize); err != nil {
		return err
	}
	if err := writeI32(bw, int32(width)); err != nil {
		return err
	}
	if err := writeI32(bw, int32(height)); err != nil { // positive: bottom-up rows
		return err
	}
	if err := writeU16(bw, 1); err != nil { // planes
		return err
	}
	if err := writeU16(bw, 24); err != nil { // bits per pixel
		return err
	}
	if err := writeU32(bw, 0); err != nil { // compression = BI_RGB
		return err
	}
	if err := writeU32(bw, uint32(pixelDataSize)); err != nil {
		return err
	}
	if err := writeI32(bw, 0); err != nil { // x resolution
		return err
	}
	if err := writeI32(bw, 0); err != nil { // y resolution
		return err
	}
	if err := writeU32(bw, 0); err != nil { // numColors
		return err
	}
	if err := writeU32(bw, 0); err != nil { // importantColors
		return err
	}

	pad := make([]byte, padding(width))
	row := make([]byte, width*3)

	for y := height - 1; y >= 0; y-- {
		for x := 0; x < width; x++ {
			c := sensor.Color(x, y)
			row[x*3+0] = toneMap(c.B)
			row[x*3+1] = toneMap(c.G)
			row[x*3+2] = toneMap(c.R)
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
		if len(pad) > 0 {
			if _, err := bw.Write(pad); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// padding returns the number of zero bytes needed to round a width*3
// byte row up to a multiple of 4.
func padding(width int) int {
	return (4 - (width*3)%4) % 4
}

// toneMap applies a simple exposure curve: clamp255(pow(1-e^-val,
// 1/2.2) * 255 + 0.5).
func toneMap(val float64) byte {
	mapped := math.Pow(1-math.Exp(-val), 1.0/2.2)*255 + 0.5
	return clamp255(mapped)
}

func clamp255(v float64) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

func writeU16(w io.Writer, v uint16) error {
	return binary.Write(w, binary.LittleEndian, v)
}

func writeU32(w io.Writer, v uint32) error {
	return binary.Write(w, binary.LittleEndian, v)
}

func writeI32(w io.Writer, v int32) error {
	return binary.Write(w, binary.LittleEndian, v)
}
