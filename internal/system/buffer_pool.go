package system

import (
	"bytes"
	"sync"
)

// bufferLimit caps the capacity of buffers kept for reuse.
const bufferLimit = 4 << 20

var bufferPool = sync.Pool{
	New: func() interface{} {
		return new(bytes.Buffer)
	},
}

// GetBuffer returns an empty buffer from the pool.
func GetBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns buf to the pool. Oversized buffers are dropped.
func PutBuffer(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > bufferLimit {
		return
	}
	bufferPool.Put(buf)
}
