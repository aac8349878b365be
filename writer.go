package jsoniter

// writer.go is the push-style JSON writer core: a growable output buffer,
// the indentation/comma state machine, and the `writeRaw*` primitives every
// higher-level writer (numbers.go, floats.go, bignum.go, text.go,
// temporal.go) is built on. Errors accumulate sticky in the `err` field
// rather than propagating through every call, since JSON output is
// assembled in memory (or flushed incrementally to a stream carrier)
// rather than framed record-by-record.
type Writer struct {
	buf  []byte
	cfg  WriterConfig
	sink writeSink // nil for the fresh-array carrier (BindFreshArray)

	depth int
	err   error
}

// writeSink is implemented by the sub-array, byte-buffer and stream output
// carriers of writer_carriers.go. It receives buffered bytes when buf
// reaches twice PreferredBufSize (flushIfNeeded) and on Flush; closeOut
// writes nothing. The fresh-array carrier has no sink.
type writeSink interface {
	writeOut(p []byte) error
	closeOut() error
}

// NewWriter allocates a Writer configured per cfg. Bind it to an output
// carrier with BindFreshArray/BindSubArray/BindByteBuffer/BindStream (which
// call resetArray or resetSink) before use; codec.go's entry points do this.
func NewWriter(cfg WriterConfig) *Writer {
	return &Writer{cfg: cfg}
}

func (w *Writer) resetArray(initialCap int) {
	if cap(w.buf) < initialCap {
		w.buf = make([]byte, 0, initialCap)
	} else {
		w.buf = w.buf[:0]
	}
	w.sink = nil
	w.depth = 0
	w.err = nil
}

func (w *Writer) resetSink(sink writeSink) {
	size := w.cfg.PreferredBufSize
	if size <= 0 {
		size = 32 * 1024
	}
	if cap(w.buf) < size {
		w.buf = make([]byte, 0, size)
	} else {
		w.buf = w.buf[:0]
	}
	w.sink = sink
	w.depth = 0
	w.err = nil
}

// WithIndentionStep sets the pretty-printing indent width and returns w
// for chaining.
func (w *Writer) WithIndentionStep(step int) *Writer {
	w.cfg.IndentionStep = step
	return w
}

// WithEscapeUnicode toggles forcing non-ASCII code units through \uXXXX
// instead of raw UTF-8 bytes, and returns w.
func (w *Writer) WithEscapeUnicode(escape bool) *Writer {
	w.cfg.EscapeUnicode = escape
	return w
}

// Bytes returns the accumulated in-memory buffer. It holds the whole output
// only for the fresh-array carrier; with a sink it holds only the bytes not
// yet flushed.
func (w *Writer) Bytes() []byte { return w.buf }

// Err reports the first error encountered.
func (w *Writer) Err() error { return w.err }

func (w *Writer) setError(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// flushIfNeeded hands the buffer to the stream sink once it crosses the
// configured threshold, keeping peak memory bounded for large documents
// written to an io.Writer.
func (w *Writer) flushIfNeeded() {
	if w.sink == nil || w.err != nil {
		return
	}
	threshold := w.cfg.PreferredBufSize
	if threshold <= 0 {
		threshold = 32 * 1024
	}
	if len(w.buf) < threshold*2 {
		return
	}
	if err := w.sink.writeOut(w.buf); err != nil {
		w.setError(err)
		return
	}
	w.buf = w.buf[:0]
}

// Flush forces any buffered bytes to the sink. No-op for the fresh-array
// carrier, which has no sink.
func (w *Writer) Flush() error {
	if w.sink == nil || w.err != nil {
		return w.err
	}
	if len(w.buf) > 0 {
		if err := w.sink.writeOut(w.buf); err != nil {
			w.setError(err)
			return err
		}
		w.buf = w.buf[:0]
	}
	return nil
}

func (w *Writer) release() {
	if w.sink != nil {
		w.sink.closeOut()
	}
	w.sink = nil
}

// --- Raw primitives ---

func (w *Writer) writeRawByte(b byte) error {
	if w.err != nil {
		return w.err
	}
	w.buf = append(w.buf, b)
	w.flushIfNeeded()
	return w.err
}

func (w *Writer) writeRawBytes(s string) error {
	if w.err != nil {
		return w.err
	}
	w.buf = append(w.buf, s...)
	w.flushIfNeeded()
	return w.err
}

func (w *Writer) writeRawBytes2(b []byte) error {
	if w.err != nil {
		return w.err
	}
	w.buf = append(w.buf, b...)
	w.flushIfNeeded()
	return w.err
}

func (w *Writer) writeIndention() error {
	if w.cfg.IndentionStep <= 0 {
		return nil
	}
	if err := w.writeRawByte('\n'); err != nil {
		return err
	}
	n := w.depth * w.cfg.IndentionStep
	for i := 0; i < n; i++ {
		if err := w.writeRawByte(' '); err != nil {
			return err
		}
	}
	return nil
}

// writeCommaIfNeeded inspects the last written byte to decide whether a
// value/key separator is needed, avoiding a per-depth comma-flag stack: the
// only bytes that can immediately precede a fresh element are '[', '{',
// ',', or a previous value's closing byte, and only the first two mean "no
// comma yet".
func (w *Writer) writeCommaIfNeeded() error {
	if len(w.buf) == 0 {
		return nil
	}
	last := w.buf[len(w.buf)-1]
	if last == '[' || last == '{' {
		return w.writeIndention()
	}
	if err := w.writeRawByte(','); err != nil {
		return err
	}
	return w.writeIndention()
}

// WriteArrayStart begins a JSON array.
func (w *Writer) WriteArrayStart() error {
	if err := w.writeRawByte('['); err != nil {
		return err
	}
	w.depth++
	return nil
}

// WriteArrayEnd closes a JSON array. An empty array/object is never split
// across lines even when pretty printing.
func (w *Writer) WriteArrayEnd() error {
	w.depth--
	if len(w.buf) > 0 && w.buf[len(w.buf)-1] != '[' {
		if err := w.writeIndention(); err != nil {
			return err
		}
	}
	return w.writeRawByte(']')
}

// WriteObjectStart begins a JSON object.
func (w *Writer) WriteObjectStart() error {
	if err := w.writeRawByte('{'); err != nil {
		return err
	}
	w.depth++
	return nil
}

// WriteObjectEnd closes a JSON object.
func (w *Writer) WriteObjectEnd() error {
	w.depth--
	if len(w.buf) > 0 && w.buf[len(w.buf)-1] != '{' {
		if err := w.writeIndention(); err != nil {
			return err
		}
	}
	return w.writeRawByte('}')
}

// WriteArrayValueSeparator emits what goes before an array element: a comma
// unless this is the first element, then the indentation when pretty
// printing.
func (w *Writer) WriteArrayValueSeparator() error {
	return w.writeCommaIfNeeded()
}

// WriteKey emits a comma/indentation if needed, then the quoted key and a
// colon (plus a space when pretty-printing).
func (w *Writer) WriteKey(name string) error {
	if err := w.writeCommaIfNeeded(); err != nil {
		return err
	}
	if err := w.writeEscapedString(name); err != nil {
		return err
	}
	if err := w.writeRawByte(':'); err != nil {
		return err
	}
	if w.cfg.IndentionStep > 0 {
		return w.writeRawByte(' ')
	}
	return nil
}

// WriteNull emits the JSON null literal.
func (w *Writer) WriteNull() error {
	return w.writeRawBytes("null")
}

// WriteBool emits a JSON boolean literal.
func (w *Writer) WriteBool(v bool) error {
	if v {
		return w.writeRawBytes("true")
	}
	return w.writeRawBytes("false")
}

// WriteString emits v as an escaped JSON string.
func (w *Writer) WriteString(v string) error {
	return w.writeEscapedString(v)
}

// WriteInt64/WriteUint64/WriteFloat64/WriteFloat32 are the public value
// writers; numbers.go/floats.go hold the formatting primitives.
func (w *Writer) WriteInt64(v int64) error     { return w.writeInt64(v) }
func (w *Writer) WriteUint64(v uint64) error   { return w.writeUint64(v) }
func (w *Writer) WriteFloat64(v float64) error { return w.writeFloat64(v) }
func (w *Writer) WriteFloat32(v float32) error { return w.writeFloat32(v) }

// WriteRawVal copies an already-encoded JSON value verbatim, an escape
// hatch for embedding pre-serialized JSON.
func (w *Writer) WriteRawVal(raw []byte) error {
	return w.writeRawBytes2(raw)
}

// WriteValAsString wraps an already-formatted value (e.g. a big number's
// decimal text) in double quotes, for schemas that require numeric values
// to travel as strings. raw must be non-nil.
func (w *Writer) WriteValAsString(raw []byte) error {
	if raw == nil {
		return ErrNilArg
	}
	if err := w.writeRawByte('"'); err != nil {
		return err
	}
	if err := w.writeRawBytes2(raw); err != nil {
		return err
	}
	return w.writeRawByte('"')
}

// WriteNonEscapedAsciiVal emits s as a quoted JSON string without running
// the escape scan, on the caller's promise that every byte in s is a
// non-escaped ASCII character (isNonEscapedAscii).
func (w *Writer) WriteNonEscapedAsciiVal(s string) error {
	if err := w.writeRawByte('"'); err != nil {
		return err
	}
	if err := w.writeRawBytes(s); err != nil {
		return err
	}
	return w.writeRawByte('"')
}

// WriteNonEscapedAsciiKey is WriteKey's comma/colon handling paired with
// WriteNonEscapedAsciiVal's unescaped emission.
func (w *Writer) WriteNonEscapedAsciiKey(s string) error {
	if err := w.writeCommaIfNeeded(); err != nil {
		return err
	}
	if err := w.WriteNonEscapedAsciiVal(s); err != nil {
		return err
	}
	if err := w.writeRawByte(':'); err != nil {
		return err
	}
	if w.cfg.IndentionStep > 0 {
		return w.writeRawByte(' ')
	}
	return nil
}
