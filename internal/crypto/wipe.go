package crypto

import "github.com/awnumar/memguard"

// Wipe zeroes every given buffer. It is best effort: the Go runtime may have
// copied the bytes elsewhere before the call.
func Wipe(bufs ...[]byte) {
	for _, b := range bufs {
		memguard.WipeBytes(b)
	}
}
