package jsoniter

// ReaderConfig holds the options recognized by Reader. Zero value is not
// directly usable; use DefaultReaderConfig.
type ReaderConfig struct {
	// CheckForEndOfInput requires that, after the top-level value, the
	// remaining input is whitespace only.
	CheckForEndOfInput bool

	// PreferredBufSize/PreferredCharBufSize are the sizes buffers are
	// reallocated towards on idle (between top-level calls) if they grew
	// past these during a previous call.
	PreferredBufSize     int
	PreferredCharBufSize int

	// MaxBufSize/MaxCharBufSize are hard ceilings; exceeding them aborts
	// with KindTooLongInput/KindTooLongString.
	MaxBufSize     int
	MaxCharBufSize int

	// AppendHexDumpToParseException attaches a bordered 16-bytes-per-line
	// hex dump around the error offset to every ReadError.
	AppendHexDumpToParseException bool

	// ThrowReaderExceptionWithStackTrace captures a debug.Stack() snapshot
	// into ReadError.Stack.
	ThrowReaderExceptionWithStackTrace bool

	// HexDumpSize is the number of 16-byte lines of context dumped on each
	// side of the error offset.
	HexDumpSize int

	// BigIntDigitsLimit/BigDecimalScaleLimit bound arbitrary-precision
	// parsing. Kept independent of each other since they guard different
	// axes: total digits vs. exponent magnitude.
	BigIntDigitsLimit    int
	BigDecimalScaleLimit int
}

// DefaultReaderConfig returns the documented defaults.
func DefaultReaderConfig() ReaderConfig {
	return ReaderConfig{
		CheckForEndOfInput:                 true,
		PreferredBufSize:                   32 * 1024,
		PreferredCharBufSize:               4 * 1024,
		MaxBufSize:                         64 * 1024 * 1024,
		MaxCharBufSize:                     64 * 1024 * 1024,
		AppendHexDumpToParseException:      true,
		ThrowReaderExceptionWithStackTrace: false,
		HexDumpSize:                        5,
		BigIntDigitsLimit:                  308,
		BigDecimalScaleLimit:               6178,
	}
}

// WriterConfig holds the options recognized by Writer.
type WriterConfig struct {
	// IndentionStep is 0 for compact output, >=1 for pretty-printed output
	// using that many spaces per nesting level.
	IndentionStep int

	// EscapeUnicode, when true, forces every code unit >= 128 to be
	// emitted as \uXXXX instead of raw UTF-8 bytes.
	EscapeUnicode bool

	PreferredBufSize int

	ThrowWriterExceptionWithStackTrace bool
}

// DefaultWriterConfig returns the documented defaults.
func DefaultWriterConfig() WriterConfig {
	return WriterConfig{
		IndentionStep:                      0,
		EscapeUnicode:                      false,
		PreferredBufSize:                   32 * 1024,
		ThrowWriterExceptionWithStackTrace: false,
	}
}
