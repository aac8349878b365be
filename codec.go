package jsoniter

import (
	"bytes"
	"context"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"
)

// codec.go implements the Codec[T] contract and the top-level entry
// points, pooling Reader/Writer instances via sync.Pool's Get/reset/
// use/Put instead of allocating a fresh tokenizer per call.

// Codec is the generic encode/decode contract: a type-safe pairing of a
// Reader-side decoder and a Writer-side encoder for T.
type Codec[T any] interface {
	Decode(r *Reader) (T, error)
	Encode(w *Writer, v T) error
}

var readerPool = sync.Pool{
	New: func() any { return NewReader(DefaultReaderConfig()) },
}

var writerPool = sync.Pool{
	New: func() any { return NewWriter(DefaultWriterConfig()) },
}

func acquireReader(cfg ReaderConfig) *Reader {
	r := readerPool.Get().(*Reader)
	r.cfg = cfg
	return r
}

func releaseReader(r *Reader) {
	r.release()
	readerPool.Put(r)
}

func acquireWriter(cfg WriterConfig) *Writer {
	w := writerPool.Get().(*Writer)
	w.cfg = cfg
	return w
}

func releaseWriter(w *Writer) {
	w.release()
	writerPool.Put(w)
}

// finishRead enforces cfg.CheckForEndOfInput: after the decoded value, the
// remaining input (if any) must be whitespace only.
func (r *Reader) finishRead() error {
	if !r.cfg.CheckForEndOfInput {
		return nil
	}
	for {
		b, err := r.nextByteRaw()
		if err != nil {
			return nil
		}
		if !isWhitespace(b) {
			return r.err(KindUnexpectedToken, "jsoniter: unexpected trailing data after JSON value")
		}
	}
}

// ReadFromArray decodes a complete value from buf using codec c.
func ReadFromArray[T any](c Codec[T], buf []byte, cfg ReaderConfig) (T, error) {
	r := acquireReader(cfg)
	defer releaseReader(r)
	r.BindArray(buf)
	v, err := c.Decode(r)
	if err != nil {
		var zero T
		return zero, err
	}
	if err := r.finishRead(); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// ReadFromSubArray decodes a complete value from buf[from:to].
func ReadFromSubArray[T any](c Codec[T], buf []byte, from, to int, cfg ReaderConfig) (T, error) {
	r := acquireReader(cfg)
	defer releaseReader(r)
	r.BindSubArray(buf, from, to)
	v, err := c.Decode(r)
	if err != nil {
		var zero T
		return zero, err
	}
	if err := r.finishRead(); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// ReadFromString decodes a complete value from s without copying its bytes.
func ReadFromString[T any](c Codec[T], s string, cfg ReaderConfig) (T, error) {
	r := acquireReader(cfg)
	defer releaseReader(r)
	r.BindString(s)
	v, err := c.Decode(r)
	if err != nil {
		var zero T
		return zero, err
	}
	if err := r.finishRead(); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// ReadFromByteBuffer decodes a complete value, pulling from buf as needed.
func ReadFromByteBuffer[T any](c Codec[T], buf *bytes.Buffer, cfg ReaderConfig) (T, error) {
	r := acquireReader(cfg)
	defer releaseReader(r)
	r.BindByteBuffer(buf)
	v, err := c.Decode(r)
	if err != nil {
		var zero T
		return zero, err
	}
	if err := r.finishRead(); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// ReadFromStream decodes a complete value, pulling from src as needed.
func ReadFromStream[T any](c Codec[T], src io.Reader, cfg ReaderConfig) (T, error) {
	r := acquireReader(cfg)
	defer releaseReader(r)
	r.BindStream(src)
	v, err := c.Decode(r)
	if err != nil {
		var zero T
		return zero, err
	}
	if err := r.finishRead(); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// ScanValueStream decodes a sequence of whitespace-separated top-level
// values from src (e.g. newline-delimited JSON), invoking fn for each until
// src is exhausted or fn/decode returns an error.
func ScanValueStream[T any](c Codec[T], src io.Reader, cfg ReaderConfig, fn func(T) error) error {
	r := acquireReader(cfg)
	defer releaseReader(r)
	r.BindStream(src)
	for {
		if _, err := r.NextToken(); err != nil {
			return nil // clean EOF between values
		}
		if err := r.RollbackToken(); err != nil {
			return err
		}
		v, err := c.Decode(r)
		if err != nil {
			return err
		}
		if err := fn(v); err != nil {
			return err
		}
	}
}

// ScanJSONArrayFromStream decodes a single top-level JSON array from src
// element by element (so the whole array never has to fit in memory), then
// fans the decoded elements out to concurrent handlers bounded by
// maxConcurrency, using golang.org/x/sync/errgroup to propagate the first
// handler error and cancel outstanding work. Decoding itself stays
// sequential (a single Reader cannot be shared across goroutines); only
// `handle` runs concurrently.
func ScanJSONArrayFromStream[T any](ctx context.Context, c Codec[T], src io.Reader, cfg ReaderConfig, maxConcurrency int, handle func(context.Context, T) error) error {
	r := acquireReader(cfg)
	defer releaseReader(r)
	r.BindStream(src)

	b, err := r.NextToken()
	if err != nil {
		return err
	}
	if b != '[' {
		return r.unexpectedToken("'[' to begin a JSON array")
	}

	g, gctx := errgroup.WithContext(ctx)
	if maxConcurrency > 0 {
		g.SetLimit(maxConcurrency)
	}

	first := true
	for {
		nb, err := r.NextToken()
		if err != nil {
			return err
		}
		if nb == ']' {
			break
		}
		if !first {
			if nb != ',' {
				return r.unexpectedToken("',' or ']' in array")
			}
			nb, err = r.NextToken()
			if err != nil {
				return err
			}
		}
		first = false
		if err := r.RollbackToken(); err != nil {
			return err
		}
		v, err := c.Decode(r)
		if err != nil {
			return err
		}
		g.Go(func() error { return handle(gctx, v) })
		_ = nb
	}
	return g.Wait()
}

// WriteToArray encodes v with codec c into a fresh byte slice.
func WriteToArray[T any](c Codec[T], v T, cfg WriterConfig) ([]byte, error) {
	w := acquireWriter(cfg)
	defer releaseWriter(w)
	w.BindFreshArray(cfg.PreferredBufSize)
	if err := c.Encode(w, v); err != nil {
		return nil, err
	}
	out := make([]byte, len(w.Bytes()))
	copy(out, w.Bytes())
	return out, nil
}

// WriteToSubArray encodes v into dst[from:to], failing with TooLongOutput
// if it doesn't fit. Returns the number of bytes written.
func WriteToSubArray[T any](c Codec[T], v T, dst *[]byte, from, to int, cfg WriterConfig) (int, error) {
	w := acquireWriter(cfg)
	defer releaseWriter(w)
	w.BindSubArray(dst, from, to)
	if err := c.Encode(w, v); err != nil {
		return 0, err
	}
	if err := w.Flush(); err != nil {
		return 0, err
	}
	n := w.sink.(*subArraySink).bytesWritten()
	return n, nil
}

// WriteToByteBuffer encodes v, appending the result to buf.
func WriteToByteBuffer[T any](c Codec[T], v T, buf *bytes.Buffer, cfg WriterConfig) error {
	w := acquireWriter(cfg)
	defer releaseWriter(w)
	w.BindByteBuffer(buf)
	if err := c.Encode(w, v); err != nil {
		return err
	}
	return w.Flush()
}

// WriteToStream encodes v, flushing the result to dst.
func WriteToStream[T any](c Codec[T], v T, dst io.Writer, cfg WriterConfig) error {
	w := acquireWriter(cfg)
	defer releaseWriter(w)
	w.BindStream(dst)
	if err := c.Encode(w, v); err != nil {
		return err
	}
	return w.Flush()
}
