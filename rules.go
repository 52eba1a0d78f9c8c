package filesense

import (
	"bytes"
	"unicode/utf8"
)

// MagicSignature defines a content type signature
type MagicSignature struct {
	Label  ContentType
	Offset int    // Offset from start of content
	Magic  []byte // Magic bytes to match
}

// magicSignatures contains the signatures that classify content without the model.
// Ordered by specificity (most specific first)
var magicSignatures = []MagicSignature{
	// Images
	{Label: "jpeg", Offset: 0, Magic: []byte{0xFF, 0xD8, 0xFF}},
	{Label: "png", Offset: 0, Magic: []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	{Label: "gif", Offset: 0, Magic: []byte("GIF87a")},
	{Label: "gif", Offset: 0, Magic: []byte("GIF89a")},
	{Label: "tiff", Offset: 0, Magic: []byte{0x49, 0x49, 0x2A, 0x00}}, // Little endian
	{Label: "tiff", Offset: 0, Magic: []byte{0x4D, 0x4D, 0x00, 0x2A}}, // Big endian
	{Label: "ico", Offset: 0, Magic: []byte{0x00, 0x00, 0x01, 0x00}},
	{Label: "heic", Offset: 4, Magic: []byte("ftypheic")},
	{Label: "heic", Offset: 4, Magic: []byte("ftypmif1")},
	{Label: "avif", Offset: 4, Magic: []byte("ftypavif")},

	// Documents
	{Label: "pdf", Offset: 0, Magic: []byte("%PDF-")},

	// ZIP containers, refined to OOXML in refineRule
	{Label: "zip", Offset: 0, Magic: []byte{0x50, 0x4B, 0x03, 0x04}},
	{Label: "zip", Offset: 0, Magic: []byte{0x50, 0x4B, 0x05, 0x06}}, // Empty ZIP
	{Label: "zip", Offset: 0, Magic: []byte{0x50, 0x4B, 0x07, 0x08}}, // Spanned ZIP

	// Archives
	{Label: "gzip", Offset: 0, Magic: []byte{0x1F, 0x8B, 0x08}},
	{Label: "tar", Offset: 257, Magic: []byte("ustar")}, // POSIX tar
	{Label: "rar", Offset: 0, Magic: []byte("Rar!\x1a\x07\x00")},
	{Label: "rar", Offset: 0, Magic: []byte("Rar!\x1a\x07\x01\x00")}, // RAR5
	{Label: "sevenzip", Offset: 0, Magic: []byte{'7', 'z', 0xBC, 0xAF, 0x27, 0x1C}},
	{Label: "bzip", Offset: 0, Magic: []byte("BZh")},
	{Label: "xz", Offset: 0, Magic: []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}},
	{Label: "sqlite", Offset: 0, Magic: []byte("SQLite format 3\x00")},

	// Audio
	{Label: "mp3", Offset: 0, Magic: []byte("ID3")},
	{Label: "flac", Offset: 0, Magic: []byte("fLaC")},
	{Label: "ogg", Offset: 0, Magic: []byte("OggS")},
	{Label: "wav", Offset: 0, Magic: []byte("RIFF")}, // Refined by the format at offset 8
	{Label: "aac", Offset: 0, Magic: []byte("ADIF")},
	{Label: "midi", Offset: 0, Magic: []byte("MThd")},

	// Video
	{Label: "webm", Offset: 0, Magic: []byte{0x1A, 0x45, 0xDF, 0xA3}}, // EBML
	{Label: "mp4", Offset: 4, Magic: []byte("ftyp")},                  // Refined by brand
	{Label: "mov", Offset: 4, Magic: []byte("moov")},
	{Label: "flv", Offset: 0, Magic: []byte("FLV\x01")},

	// Executables
	{Label: "pebin", Offset: 0, Magic: []byte("MZ")},
	{Label: "macho", Offset: 0, Magic: []byte{0xCF, 0xFA, 0xED, 0xFE}}, // Mach-O 64-bit
	{Label: "macho", Offset: 0, Magic: []byte{0xCE, 0xFA, 0xED, 0xFE}}, // Mach-O 32-bit
	{Label: "elf", Offset: 0, Magic: []byte{0x7F, 'E', 'L', 'F'}},

	// Fonts
	{Label: "woff", Offset: 0, Magic: []byte("wOFF")},
	{Label: "woff2", Offset: 0, Magic: []byte("wOF2")},
	{Label: "otf", Offset: 0, Magic: []byte("OTTO")},
	{Label: "ttf", Offset: 0, Magic: []byte{0x00, 0x01, 0x00, 0x00, 0x00}},
}

// DetectRule returns the content type determined by a magic-number rule,
// or false when no rule matches. Text formats are left to the model.
func DetectRule(data []byte) (ContentType, bool) {
	for _, sig := range magicSignatures {
		if sig.Offset+len(sig.Magic) > len(data) {
			continue
		}
		if bytes.Equal(data[sig.Offset:sig.Offset+len(sig.Magic)], sig.Magic) {
			return refineRule(data, sig.Label)
		}
	}
	return "", false
}

// refineRule handles cases where multiple formats share magic bytes.
// A RIFF container with an unrecognised format is not ruled.
func refineRule(data []byte, label ContentType) (ContentType, bool) {
	switch label {
	case "wav":
		if len(data) < 12 {
			return "", false
		}
		switch string(data[8:12]) {
		case "WAVE":
			return "wav", true
		case "AVI ":
			return "avi", true
		case "WEBP":
			return "webp", true
		}
		return "", false

	case "zip":
		// OOXML parts show up in the first local file headers
		switch {
		case bytes.Contains(data, []byte("word/")):
			return "docx", true
		case bytes.Contains(data, []byte("xl/")):
			return "xlsx", true
		case bytes.Contains(data, []byte("ppt/")):
			return "pptx", true
		}
		return "zip", true

	case "mp4":
		if len(data) >= 12 {
			switch string(data[8:12]) {
			case "M4A ":
				return "m4a", true
			case "qt  ":
				return "mov", true
			case "3gp4", "3gp5", "3gp6":
				return "3gp", true
			}
		}
		return "mp4", true

	default:
		return label, true
	}
}

// detectSmall classifies content too short for the model
func detectSmall(data []byte) ContentType {
	if utf8.Valid(data) {
		return LabelTxt
	}
	return LabelUnknown
}
