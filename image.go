package sltools

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnsupportedMat is returned when converting an image whose type has no
	// matching message encoding.
	ErrUnsupportedMat = errors.New("unsupported image type")
	// ErrInvalidMat is returned when an image has negative dimensions or
	// dimensions that do not fit in a message.
	ErrInvalidMat = errors.New("invalid image dimensions")
	// ErrShortData is returned when an image holds less data than its step
	// and height require.
	ErrShortData = errors.New("image data too short")
)

// MatType is the pixel layout of a Mat.
type MatType int

// Pixel layouts.
const (
	F32C1 MatType = iota
	F32C2
	F32C3
	F32C4
	U8C1
	U8C2
	U8C3
	U8C4
)

var matEncodings = map[MatType]string{
	F32C1: "32FC1",
	F32C2: "32FC2",
	F32C3: "32FC3",
	F32C4: "32FC4",
	U8C1:  "mono8",
	U8C2:  "8UC2",
	U8C3:  "bgr8",
	U8C4:  "bgra8",
}

// Encoding returns the message encoding of the layout, or "" if there is
// none.
func (t MatType) Encoding() string {
	return matEncodings[t]
}

// Mat is an image as returned by the camera SDK. Step is the length of a
// row in bytes.
type Mat struct {
	Width  int
	Height int
	Step   int
	Type   MatType
	Data   []byte
}

func (m Mat) checkDims() error {
	for _, d := range []struct {
		name string
		v    int
	}{
		{"width", m.Width},
		{"height", m.Height},
		{"step", m.Step},
	} {
		if d.v < 0 || uint64(d.v) > math.MaxUint32 {
			return fmt.Errorf("%w: %s %d", ErrInvalidMat, d.name, d.v)
		}
	}
	if m.Height > 0 && m.Step > math.MaxInt/m.Height {
		return fmt.Errorf("%w: step %d * height %d overflows", ErrInvalidMat, m.Step, m.Height)
	}
	return nil
}

// Header is the common header of stamped messages.
type Header struct {
	Stamp   ROSTime
	FrameID string
}

// Image is an image message.
type Image struct {
	Header      Header
	Height      uint32
	Width       uint32
	Encoding    string
	IsBigEndian bool
	Step        uint32
	Data        []byte
}

// ImageToMsg converts a Mat to an image message stamped with t in frame
// frameID. The pixel data is copied.
func ImageToMsg(img Mat, frameID string, t ROSTime) (*Image, error) {
	enc := img.Type.Encoding()
	if enc == "" {
		return nil, fmt.Errorf("sltools: could not convert image: %w (%d)", ErrUnsupportedMat, img.Type)
	}

	if err := img.checkDims(); err != nil {
		return nil, fmt.Errorf("sltools: could not convert image: %w", err)
	}

	size := img.Step * img.Height
	if len(img.Data) < size {
		return nil, fmt.Errorf("sltools: could not convert image: %w: want %d, got %d", ErrShortData, size, len(img.Data))
	}

	data := make([]byte, size)
	copy(data, img.Data)

	return &Image{
		Header: Header{
			Stamp:   t,
			FrameID: frameID,
		},
		Height:   uint32(img.Height),
		Width:    uint32(img.Width),
		Encoding: enc,
		Step:     uint32(img.Step),
		Data:     data,
	}, nil
}
