package jsoniter

// reader_values.go implements the whole-value operations: skip,
// readRawValAsBytes, skipToKey, and the true/false/null literal readers
// that numbers.go/floats.go/text.go/temporal.go build on.

// Skip skips exactly one JSON value (object, array, string, number,
// literal), respecting nested structure and string escapes. r must be
// positioned at the value's first byte (i.e. NextToken was already called
// to land on it).
func (r *Reader) Skip(first byte) error {
	switch {
	case first == '"':
		return r.skipString()
	case first == '{':
		return r.skipNested('{', '}')
	case first == '[':
		return r.skipNested('[', ']')
	case first == 't':
		return r.skipLiteral("rue")
	case first == 'f':
		return r.skipLiteral("alse")
	case first == 'n':
		return r.skipLiteral("ull")
	case first == '-' || (first >= '0' && first <= '9'):
		return r.skipNumber()
	default:
		return r.unexpectedToken("a JSON value")
	}
}

func (r *Reader) skipLiteral(rest string) error {
	for i := 0; i < len(rest); i++ {
		b, err := r.nextByteRaw()
		if err != nil {
			return r.endOfInputErr("unexpected end of input in literal")
		}
		if b != rest[i] {
			return r.unexpectedToken("literal '" + rest + "'")
		}
	}
	return nil
}

func (r *Reader) skipString() error {
	for {
		b, err := r.nextByteRaw()
		if err != nil {
			return r.endOfInputErr("unexpected end of input in string")
		}
		if b == '"' {
			return nil
		}
		if b == '\\' {
			// Skip exactly one escaped byte (or 4 hex digits for \u).
			eb, err := r.nextByteRaw()
			if err != nil {
				return r.endOfInputErr("unexpected end of input in string")
			}
			if eb == 'u' {
				for i := 0; i < 4; i++ {
					if _, err := r.nextByteRaw(); err != nil {
						return r.endOfInputErr("unexpected end of input in string")
					}
				}
			}
		}
	}
}

func (r *Reader) skipNested(open, close byte) error {
	depth := 1
	for depth > 0 {
		b, err := r.nextByteRaw()
		if err != nil {
			return r.endOfInputErr("unexpected end of input in nested structure")
		}
		switch b {
		case '"':
			if err := r.skipString(); err != nil {
				return err
			}
		case open:
			depth++
		case close:
			depth--
		}
	}
	return nil
}

func isNumberBodyByte(b byte) bool {
	return (b >= '0' && b <= '9') || b == '.' || b == 'e' || b == 'E' || b == '+' || b == '-'
}

func (r *Reader) skipNumber() error {
	for {
		if err := r.SetMark(); err == nil {
			r.ResetMark()
		}
		b, err := r.nextByteRaw()
		if err != nil {
			// EOF cleanly ends a number at top level.
			return nil
		}
		if !isNumberBodyByte(b) {
			return r.RollbackToken()
		}
	}
}

// ReadRawValAsBytes returns a copy of the raw byte span of the next value
// without interpreting it, implemented via mark + skip + copy. It
// preserves exactly the bytes of the value, excluding any leading
// whitespace NextToken consumed.
func (r *Reader) ReadRawValAsBytes() ([]byte, error) {
	first, err := r.NextToken()
	if err != nil {
		return nil, err
	}
	// Mark the first byte itself; refills move the mark along with the
	// buffer contents, so the start is read back from it after Skip.
	if err := r.ring.setMark(r.ring.head - 1); err != nil {
		return nil, err
	}
	if err := r.Skip(first); err != nil {
		r.ResetMark()
		return nil, err
	}
	startLocal := r.ring.mark
	endLocal := r.ring.head
	r.ResetMark()
	out := make([]byte, endLocal-startLocal)
	copy(out, r.ring.buf[startLocal:endLocal])
	return out, nil
}

// ReadBool parses a JSON boolean literal.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.NextToken()
	if err != nil {
		return false, err
	}
	switch b {
	case 't':
		if err := r.skipLiteral("rue"); err != nil {
			return false, err
		}
		return true, nil
	case 'f':
		if err := r.skipLiteral("alse"); err != nil {
			return false, err
		}
		return false, nil
	default:
		return false, r.err(KindIllegalBoolean, "jsoniter: illegal boolean")
	}
}

// ReadNullOrValue peeks whether the next token begins a JSON null; if not,
// it rolls back so the caller can parse the value normally. This is the
// primitive nullable readers build their "optional default" behavior on.
func (r *Reader) ReadNullOrValue() (isNull bool, err error) {
	b, err := r.NextToken()
	if err != nil {
		return false, err
	}
	if b != 'n' {
		if err := r.RollbackToken(); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := r.skipLiteral("ull"); err != nil {
		return false, err
	}
	return true, nil
}

// ReadKeyAsString expects '"', parses a string key via the same decoder as
// value strings, expects the closing '"', then ':'. Whitespace is
// permitted around each structural character.
func (r *Reader) ReadKeyAsString() (string, error) {
	b, err := r.NextToken()
	if err != nil {
		return "", err
	}
	if b != '"' {
		return "", r.unexpectedToken(`'"'`)
	}
	key, err := r.readString()
	if err != nil {
		return "", err
	}
	colon, err := r.NextToken()
	if err != nil {
		return "", err
	}
	if colon != ':' {
		return "", r.unexpectedToken("':'")
	}
	return key, nil
}

// SkipToKey scans the current object for a key matching name, skipping the
// value of every key that doesn't match. It returns true and positions the
// reader just past ':' when found; it returns false at the object's closing
// '}'. r must be positioned just after '{' or a ',' separator. Key
// comparison happens against the decoded char buffer (charBuf.equalsBytes)
// so a non-matching key never allocates a Go string.
func (r *Reader) SkipToKey(name string) (bool, error) {
	nameBytes := unsafeStringBytes(name)
	for {
		b, err := r.NextToken()
		if err != nil {
			return false, err
		}
		if b == '}' {
			return false, nil
		}
		if b == ',' {
			continue
		}
		if b != '"' {
			return false, r.unexpectedToken(`'"' or '}'`)
		}
		if err := r.readStringIntoBuf(); err != nil {
			return false, err
		}
		colon, err := r.NextToken()
		if err != nil {
			return false, err
		}
		if colon != ':' {
			return false, r.unexpectedToken("':'")
		}
		if r.cbuf.equalsBytes(nameBytes) {
			return true, nil
		}
		first, err := r.NextToken()
		if err != nil {
			return false, err
		}
		if err := r.Skip(first); err != nil {
			return false, err
		}
	}
}
