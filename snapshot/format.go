package snapshot

import "errors"

const (
	// Magic identifies statgo snapshot files (ASCII "STG1").
	Magic = 0x53544731
	// Version is the current snapshot format version.
	Version = 0x00010000
)

// Compression names accepted in Options and recorded in the file header.
// Files are self-describing: Read selects the decompressor from the header.
const (
	CompressionNone = "none"
	CompressionZstd = "zstd"
	CompressionLZ4  = "lz4"
)

var (
	ErrInvalidMagic       = errors.New("snapshot: invalid magic number")
	ErrInvalidVersion     = errors.New("snapshot: unsupported format version")
	ErrLayoutMismatch     = errors.New("snapshot: registry layout does not match")
	ErrChecksum           = errors.New("snapshot: payload checksum mismatch")
	ErrUnknownCompression = errors.New("snapshot: unknown compression")
	ErrPayloadTooLarge    = errors.New("snapshot: payload exceeds arena capacity")
)

// header is the fixed 32-byte little-endian block at the start of every
// snapshot file. The payload that follows is the arena's counter bytes
// (up to the registry high-water offset), possibly compressed.
type header struct {
	Magic       uint32
	Version     uint32
	Compression [8]byte // NUL-padded compression name
	Layout      uint64  // Registry.LayoutSignature at write time
	Size        uint32  // uncompressed payload length in bytes
	Checksum    uint32  // CRC-32 (IEEE) of the uncompressed payload
}

func compressionName(h *header) string {
	b := h.Compression[:]
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

func setCompressionName(h *header, name string) bool {
	if len(name) > len(h.Compression) {
		return false
	}
	copy(h.Compression[:], name)
	return true
}
