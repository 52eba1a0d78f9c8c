package filesense

import (
	"encoding/binary"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns the hex-encoded xxhash of data. It identifies a
// buffer in log output and is not a security checksum.
func Fingerprint(data []byte) string {
	return strconv.FormatUint(xxhash.Sum64(data), 16)
}

// windowFingerprint hashes the sampled windows of a file together with its
// size, so two files that share both windows but differ in length differ.
func windowFingerprint(beg, end []byte, size int64) string {
	h := xxhash.New()
	_, _ = h.Write(beg)
	_, _ = h.Write(end)

	var n [8]byte
	binary.LittleEndian.PutUint64(n[:], uint64(size))
	_, _ = h.Write(n[:])

	return strconv.FormatUint(h.Sum64(), 16)
}
