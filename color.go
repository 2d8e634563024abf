package sltools

import (
	"encoding/binary"
	"math"
)

// PackColor3 packs a 3 channel color into the bytes of a float32, as used by
// point cloud "rgb" fields. The fourth byte is left at zero.
func PackColor3(c [3]uint8) float32 {
	var b [4]byte
	copy(b[:], c[:])
	return math.Float32frombits(binary.LittleEndian.Uint32(b[:]))
}

// PackColor4 packs a 4 channel color into the bytes of a float32.
func PackColor4(c [4]uint8) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(c[:]))
}

func colorBytes(f float32) [4]byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], math.Float32bits(f))
	return b
}

// DepackColor3 returns the first 3 channels packed in f.
func DepackColor3(f float32) [3]uint8 {
	b := colorBytes(f)
	return [3]uint8{b[0], b[1], b[2]}
}

// DepackColor4 returns the first 3 channels packed in f. The alpha channel is
// always set to 255.
func DepackColor4(f float32) [4]uint8 {
	b := colorBytes(f)
	return [4]uint8{b[0], b[1], b[2], 255}
}

// DepackColor3f returns the channels packed in f in reverse order, normalized
// from 0.0 to 1.0. A BGR packed color returns its RGB components.
func DepackColor3f(f float32) [3]float32 {
	b := colorBytes(f)
	var out [3]float32
	for c := 0; c < 3; c++ {
		out[c] = float32(b[2-c]) / 255
	}
	return out
}
