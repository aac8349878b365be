package jsoniter

import "io"

// refillSource is a pull-based byte source the byte ring can draw more
// bytes from once [head, tail) is exhausted. It generalizes both an
// io.Reader stream and a bounded byte-buffer carrier behind one small
// interface so loadMoreOrError has a single refill path.
type refillSource interface {
	// fill reads up to len(p) bytes into p, returning how many bytes were
	// actually read. An n==0 result with a nil or io.EOF error is treated
	// as end-of-input; any other error is returned to the caller.
	fill(p []byte) (int, error)
}

// byteRing is the mutable byte window shared by Reader (read direction,
// tail tracks the last valid byte) and Writer (write direction, tail is
// unused and head is the fill index).
type byteRing struct {
	buf  []byte
	head int
	tail int
	mark int // -1 means "no mark"

	refill refillSource

	totalRead int64

	maxBufSize int
}

func newByteRing(initialSize, maxSize int) byteRing {
	if initialSize <= 0 {
		initialSize = 512
	}
	return byteRing{
		buf:        make([]byte, initialSize),
		mark:       -1,
		maxBufSize: maxSize,
	}
}

// setMark anchors pos so the bytes from pos onward survive future refills.
// Nesting is forbidden: a second setMark before resetMark/rollbackToMark
// fails with ErrMarkAlreadySet.
func (b *byteRing) setMark(pos int) error {
	if b.mark >= 0 {
		return ErrMarkAlreadySet
	}
	b.mark = pos
	return nil
}

func (b *byteRing) resetMark() error {
	if b.mark < 0 {
		return ErrNoMark
	}
	b.mark = -1
	return nil
}

// rollbackToMark returns the marked position and clears the mark. The
// caller is responsible for setting head back to the returned position.
func (b *byteRing) rollbackToMark() (int, error) {
	if b.mark < 0 {
		return 0, ErrNoMark
	}
	pos := b.mark
	b.mark = -1
	return pos, nil
}

// loadMoreOrError either reports "no more data" (no refill source attached,
// as with a slice/string carrier), grows and/or compacts the buffer to make
// room, or pulls fresh bytes from the refill source. It returns the
// (possibly shifted) position the caller should resume reading from, and
// whether any new bytes became available.
func (b *byteRing) loadMoreOrError(pos int) (int, bool, error) {
	if b.refill == nil {
		return pos, false, nil
	}

	offset := b.mark
	if offset < 0 {
		offset = pos
	}

	if offset > 0 {
		// Compact: shift [offset, tail) down to index 0.
		n := copy(b.buf, b.buf[offset:b.tail])
		b.tail = n
		pos -= offset
		if b.mark >= 0 {
			b.mark = 0
		}
	} else if b.tail == len(b.buf) {
		// Compaction freed nothing; grow instead.
		if len(b.buf) >= b.maxBufSize && b.maxBufSize > 0 {
			return pos, false, &ReadError{Kind: KindTooLongInput, Msg: "jsoniter: input exceeds MaxBufSize", Offset: b.totalRead - int64(b.tail-pos)}
		}
		newSize := len(b.buf) * 2
		if b.maxBufSize > 0 && newSize > b.maxBufSize {
			newSize = b.maxBufSize
		}
		if newSize <= len(b.buf) {
			return pos, false, &ReadError{Kind: KindTooLongInput, Msg: "jsoniter: input exceeds MaxBufSize", Offset: b.totalRead - int64(b.tail-pos)}
		}
		grown := make([]byte, newSize)
		copy(grown, b.buf[:b.tail])
		b.buf = grown
	}

	n, err := b.refill.fill(b.buf[b.tail:])
	if n > 0 {
		b.tail += n
		b.totalRead += int64(n)
		return pos, true, nil
	}
	if err != nil && err != io.EOF {
		return pos, false, err
	}
	return pos, false, nil
}

// A plain byte slice (already fully present in buf) needs no refillSource:
// the slice/string carriers never attach one, so loadMoreOrError above
// takes the b.refill == nil branch for them.

// readerFillSource adapts an io.Reader as a refillSource.
type readerFillSource struct {
	r io.Reader
}

func (s readerFillSource) fill(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if n == 0 && err == nil {
		return 0, io.EOF
	}
	return n, err
}

// byteBufferFillSource adapts a bounded buffer with its own position and
// limit cursor as a refillSource, advancing the caller-owned position
// field.
type byteBufferFillSource struct {
	data *[]byte
	pos  *int
	lim  int
}

func (s byteBufferFillSource) fill(p []byte) (int, error) {
	avail := s.lim - *s.pos
	if avail <= 0 {
		return 0, io.EOF
	}
	n := copy(p, (*s.data)[*s.pos:s.lim])
	*s.pos += n
	return n, nil
}
