package registry

import (
	"bytes"
	"runtime"
	"strconv"
)

// goroutineID extracts the current goroutine ID from the header of
// runtime.Stack ("goroutine 123 [running]:"). Goroutine IDs are never reused
// within a process.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := buf[:n]

	const prefix = "goroutine "
	if !bytes.HasPrefix(b, []byte(prefix)) {
		return 0
	}
	b = b[len(prefix):]
	end := bytes.IndexByte(b, ' ')
	if end < 0 {
		return 0
	}
	gid, err := strconv.ParseUint(string(b[:end]), 10, 64)
	if err != nil {
		return 0
	}
	return gid
}
