package jsoniter

import (
	"bytes"
	"io"
	"unsafe"
)

// reader_carriers.go implements the input carriers: byte slice, UTF-8
// string, byte buffer, and pull-based io.Reader stream. Each binds a
// Reader via resetSlice (in-memory, no refill) or resetStream (pull more
// from a refillSource as the ring runs dry), minus the seek support no
// JSON decode operation needs.

// BindArray binds r to read a complete byte slice.
func (r *Reader) BindArray(buf []byte) {
	r.resetSlice(buf, 0, len(buf))
}

// BindSubArray binds r to read buf[from:to].
func (r *Reader) BindSubArray(buf []byte, from, to int) {
	r.resetSlice(buf, from, to)
}

// BindString binds r to read the UTF-8 bytes of s without copying.
func (r *Reader) BindString(s string) {
	r.resetSlice(unsafeStringBytes(s), 0, len(s))
}

// bytesBufferReaderSource adapts a *bytes.Buffer into a refillSource: each
// fill call drains whatever the buffer currently holds.
type bytesBufferReaderSource struct {
	buf *bytes.Buffer
}

func (s *bytesBufferReaderSource) fill(p []byte) (int, error) {
	return s.buf.Read(p)
}

// BindByteBuffer binds r to pull from buf.
func (r *Reader) BindByteBuffer(buf *bytes.Buffer) {
	r.resetStream(&bytesBufferReaderSource{buf: buf})
}

// BindStream binds r to pull from an arbitrary io.Reader.
func (r *Reader) BindStream(src io.Reader) {
	r.resetStream(&readerFillSource{r: src})
}

// BindBoundedBuffer binds r to a caller-owned byte buffer with an explicit
// position cursor and limit, distinct from Go's io-oriented *bytes.Buffer.
func (r *Reader) BindBoundedBuffer(data *[]byte, pos *int, limit int) {
	r.resetStream(&byteBufferFillSource{data: data, pos: pos, lim: limit})
}

// unsafeStringBytes views s's bytes without copying. Safe here because
// resetSlice only ever reads through the ring; it never writes back into
// buf, matching the read-only contract of the string carrier.
func unsafeStringBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
