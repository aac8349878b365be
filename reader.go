package jsoniter

import "fmt"

// Reader is the pull-style tokenizing reader. It owns a byteRing (input
// buffering + refill) and a charBuf (decoded-string scratch arena). A
// Reader is not safe for concurrent use; instances are reused across many
// decode calls by the codec entry points in codec.go, which reset
// head/tail/mark/totalRead between calls.
type Reader struct {
	ring byteRing
	cbuf charBuf
	cfg  ReaderConfig

	lastToken byte
	hasToken  bool
}

// NewReader allocates a Reader configured per cfg. Bind it to an input
// carrier with resetSlice/resetStream before use (done by codec.go's entry
// points).
func NewReader(cfg ReaderConfig) *Reader {
	r := &Reader{cfg: cfg}
	r.cbuf = newCharBuf(cfg.PreferredCharBufSize, cfg.MaxCharBufSize)
	return r
}

// resetSlice rebinds the reader to read from buf[from:to] with no refill
// source, for the byte-slice and string input carriers. totalRead is set to
// to, so error offsets come out as indices into buf.
func (r *Reader) resetSlice(buf []byte, from, to int) {
	r.ring = byteRing{buf: buf, head: from, tail: to, mark: -1, totalRead: int64(to), maxBufSize: r.cfg.MaxBufSize}
	r.cbuf.reset()
	r.hasToken = false
}

// resetStream rebinds the reader to pull from src, using (or allocating) an
// internal buffer sized toward PreferredBufSize.
func (r *Reader) resetStream(src refillSource) {
	size := r.cfg.PreferredBufSize
	if size <= 0 {
		size = 32 * 1024
	}
	if cap(r.ring.buf) < size || r.ring.refill != nil {
		r.ring.buf = make([]byte, size)
	} else {
		r.ring.buf = r.ring.buf[:size]
	}
	r.ring.head = 0
	r.ring.tail = 0
	r.ring.mark = -1
	r.ring.totalRead = 0
	r.ring.refill = src
	r.ring.maxBufSize = r.cfg.MaxBufSize
	r.cbuf.reset()
	r.hasToken = false
}

func (r *Reader) release() {
	r.ring.refill = nil
}

// WithAllowTrailingWhitespaceOnly sets cfg.CheckForEndOfInput to allow and
// returns r for chaining. When allow is true, only whitespace may follow
// the top-level value and finishRead fails on anything else; when false,
// trailing non-whitespace is accepted.
func (r *Reader) WithAllowTrailingWhitespaceOnly(allow bool) *Reader {
	r.cfg.CheckForEndOfInput = allow
	return r
}

// absoluteOffset computes the offset for error reporting: total bytes
// consumed across refills so far, minus however much of the current buffer
// still lies ahead of localPos.
func (r *Reader) absoluteOffset(localPos int) int64 {
	return r.ring.totalRead - int64(r.ring.tail-localPos)
}

// nextByteRaw returns the next raw byte, refilling as needed. It does not
// skip whitespace and is the primitive every other reader operation is
// built on.
func (r *Reader) nextByteRaw() (byte, error) {
	for r.ring.head >= r.ring.tail {
		newPos, gotMore, err := r.ring.loadMoreOrError(r.ring.head)
		r.ring.head = newPos
		if err != nil {
			return 0, err
		}
		if !gotMore {
			return 0, &ReadError{Kind: KindUnexpectedEndOfInput, Msg: "jsoniter: unexpected end of input", Offset: r.absoluteOffset(r.ring.head)}
		}
	}
	b := r.ring.buf[r.ring.head]
	r.ring.head++
	return b, nil
}

// NextByte returns the byte at head and advances.
func (r *Reader) NextByte() (byte, error) {
	b, err := r.nextByteRaw()
	if err == nil {
		r.lastToken = b
		r.hasToken = true
	}
	return b, err
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// NextToken skips whitespace and returns the next non-whitespace byte,
// advancing past it.
func (r *Reader) NextToken() (byte, error) {
	for {
		b, err := r.nextByteRaw()
		if err != nil {
			return 0, err
		}
		if !isWhitespace(b) {
			r.lastToken = b
			r.hasToken = true
			return b, nil
		}
	}
}

// IsNextToken reports whether the next non-whitespace byte equals t; head
// always advances past the inspected byte regardless of outcome.
func (r *Reader) IsNextToken(t byte) (bool, error) {
	b, err := r.NextToken()
	if err != nil {
		return false, err
	}
	return b == t, nil
}

// IsCurrentToken examines the byte at head-1. It fails with
// ErrNoCurrentToken if no byte has been read yet.
func (r *Reader) IsCurrentToken(t byte) (bool, error) {
	if !r.hasToken || r.ring.head == 0 {
		return false, ErrNoCurrentToken
	}
	return r.ring.buf[r.ring.head-1] == t, nil
}

// RollbackToken decrements head by 1. Fails with ErrNothingToRollback at
// the start of input.
func (r *Reader) RollbackToken() error {
	if r.ring.head == 0 {
		return ErrNothingToRollback
	}
	r.ring.head--
	return nil
}

func (r *Reader) SetMark() error { return r.ring.setMark(r.ring.head) }

func (r *Reader) ResetMark() error { return r.ring.resetMark() }

// RollbackToMark restores head to the marked position and clears the mark.
func (r *Reader) RollbackToMark() error {
	pos, err := r.ring.rollbackToMark()
	if err != nil {
		return err
	}
	r.ring.head = pos
	return nil
}

// err composes a ReadError at the current position: message + absolute
// offset + optional hex dump.
func (r *Reader) err(kind Kind, msg string) error {
	return r.errAt(kind, msg, r.ring.head)
}

func (r *Reader) errAt(kind Kind, msg string, localPos int) error {
	e := &ReadError{Kind: kind, Msg: msg, Offset: r.absoluteOffset(localPos)}
	if r.cfg.AppendHexDumpToParseException {
		e.HexDump = hexDump(r.ring.buf, localPos, r.cfg.HexDumpSize)
	}
	return e
}

func (r *Reader) endOfInputErr(msg string) error {
	return &ReadError{Kind: KindUnexpectedEndOfInput, Msg: msg, Offset: r.absoluteOffset(r.ring.head)}
}

func (r *Reader) unexpectedToken(expected string) error {
	return r.err(KindUnexpectedToken, fmt.Sprintf("jsoniter: expected %s", expected))
}

// hexDump renders a bordered 16-bytes-per-line table with a printable-ASCII
// sidebar, covering `lines` rows on each side of pos, aligned to 16-byte
// boundaries.
func hexDump(buf []byte, pos, lines int) string {
	if lines <= 0 {
		lines = 1
	}
	start := pos - lines*16
	start -= start % 16
	if start < 0 {
		start = 0
	}
	end := pos + lines*16
	if end > len(buf) {
		end = len(buf)
	}
	var out []byte
	out = append(out, []byte("           +-------------------------------------------------+\n")...)
	out = append(out, []byte("           |  0  1  2  3  4  5  6  7  8  9  a  b  c  d  e  f  |\n")...)
	out = append(out, []byte("+----------+-------------------------------------------------+------------------+\n")...)
	for row := start; row < end; row += 16 {
		out = append(out, []byte(fmt.Sprintf("|%08x  |", row))...)
		rowEnd := row + 16
		if rowEnd > end {
			rowEnd = end
		}
		for i := row; i < row+16; i++ {
			if i < rowEnd {
				out = append(out, []byte(fmt.Sprintf(" %02x", buf[i]))...)
			} else {
				out = append(out, []byte("   ")...)
			}
		}
		out = append(out, []byte("  |")...)
		for i := row; i < rowEnd; i++ {
			c := buf[i]
			if c < 0x20 || c > 0x7E {
				c = '.'
			}
			out = append(out, c)
		}
		out = append(out, '|', '\n')
	}
	out = append(out, []byte("+----------+-------------------------------------------------+------------------+")...)
	return string(out)
}
