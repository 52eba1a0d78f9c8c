package filesense

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"unicode/utf8"
)

// Features is the model input extracted from one file or buffer
type Features struct {
	// Beg is the beginning window with leading whitespace stripped
	Beg []byte

	// End is the end window with trailing whitespace stripped
	End []byte

	// Size is the total input size in bytes
	Size int64

	// Entropy is the Shannon entropy of the windows in bits per byte
	Entropy float64

	// Text reports whether the windows decode as text
	Text bool

	single bool
}

// Window returns the beginning and end windows joined. When the input fits
// in a single window the two overlap and it is returned once.
func (f Features) Window() []byte {
	if f.single {
		return bytes.TrimRight(f.Beg, whitespace)
	}
	out := make([]byte, 0, len(f.Beg)+len(f.End)+1)
	out = append(out, f.Beg...)
	out = append(out, '\n')
	return append(out, f.End...)
}

// stripped returns the window content without surrounding whitespace
func (f Features) stripped() []byte {
	return bytes.Trim(f.Window(), whitespace)
}

// ExtractFeatures builds model features from an in-memory buffer
func ExtractFeatures(data []byte, blockSize int) Features {
	beg := data
	if len(beg) > blockSize {
		beg = beg[:blockSize]
	}
	end := data
	if len(end) > blockSize {
		end = end[len(end)-blockSize:]
	}
	return newFeatures(beg, end, int64(len(data)), len(data) <= blockSize)
}

// readWindows reads the raw beginning and end windows of r
func readWindows(r io.ReaderAt, size int64, blockSize int) (beg, end []byte, err error) {
	n := int64(blockSize)
	if size < n {
		n = size
	}
	beg = make([]byte, n)
	if _, err := r.ReadAt(beg, 0); err != nil && err != io.EOF {
		return nil, nil, fmt.Errorf("failed to read beginning window: %w", err)
	}
	end = beg
	if size > n {
		end = make([]byte, n)
		if _, err := r.ReadAt(end, size-n); err != nil && err != io.EOF {
			return nil, nil, fmt.Errorf("failed to read end window: %w", err)
		}
	}
	return beg, end, nil
}

const whitespace = " \t\r\n\v\f"

func newFeatures(beg, end []byte, size int64, single bool) Features {
	f := Features{
		Beg:    bytes.TrimLeft(beg, whitespace),
		End:    bytes.TrimRight(end, whitespace),
		Size:   size,
		single: single,
	}
	window := f.Window()
	f.Entropy = entropy(window)
	f.Text = isText(window)
	return f
}

func entropy(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}
	var counts [256]int
	for _, b := range data {
		counts[b]++
	}
	total := float64(len(data))
	var h float64
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / total
		h -= p * math.Log2(p)
	}
	return h
}

// isText tolerates a few invalid bytes where a window cuts through a rune
func isText(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return false
	}
	bad := 0
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			bad++
		case r < 0x20 && r != '\t' && r != '\n' && r != '\r' && r != '\f' && r != 0x1b:
			bad++
		}
		i += size
	}
	return bad <= 6 && float64(bad)/float64(len(data)) < 0.01
}
