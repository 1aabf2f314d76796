package input

import "bytes"

// Magic bytes for compression detection
var (
	gzipMagic = []byte{0x1F, 0x8B}

	// Zstandard frame magic
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

	xzMagic = []byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}
)

// magicLen is how many leading bytes DetectCompression needs
const magicLen = 6

// DetectCompression determines the compression of a capture from its
// first bytes
func DetectCompression(header []byte) Compression {
	switch {
	case bytes.HasPrefix(header, zstdMagic):
		return CompressionZstd
	case bytes.HasPrefix(header, xzMagic):
		return CompressionXz
	case bytes.HasPrefix(header, gzipMagic):
		return CompressionGzip
	default:
		return CompressionNone
	}
}
