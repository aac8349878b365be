package jsoniter

// numbers.go implements integer parsing and the classic
// two-digits-per-iteration integer formatting.

const digitPairs = "0001020304050607080910111213141516171819" +
	"2021222324252627282930313233343536373839" +
	"4041424344454647484950515253545556575859" +
	"6061626364656667686970717273747576777879" +
	"8081828384858687888990919293949596979899"

// ReadInt64 parses a signed 64-bit integer: reject leading zeros on
// multi-digit inputs, accumulate in the negative space to represent
// MinInt64 without overflow, and reject a trailing '.'/'e'/'E'.
func (r *Reader) ReadInt64() (int64, error) {
	b, err := r.NextToken()
	if err != nil {
		return 0, err
	}
	neg := false
	if b == '-' {
		neg = true
		b, err = r.nextByteRaw()
		if err != nil {
			return 0, r.endOfInputErr("unexpected end of input in number")
		}
	}
	if b < '0' || b > '9' {
		return 0, r.err(KindIllegalNumber, "jsoniter: illegal number")
	}
	digits := 1
	if b == '0' {
		// A leading zero must be the entire integer part.
		return r.finishZeroInt(neg)
	}

	var acc int64 = -int64(b - '0') // negative-space accumulation
	for {
		nb, err := r.nextByteRaw()
		if err != nil {
			return finalizeInt(acc, neg), nil
		}
		if nb < '0' || nb > '9' {
			if nb == '.' || nb == 'e' || nb == 'E' {
				return 0, r.err(KindIllegalNumber, "jsoniter: integer reader does not accept fractional/exponential form")
			}
			if err := r.RollbackToken(); err != nil {
				return 0, err
			}
			return finalizeInt(acc, neg), nil
		}
		digits++
		if digits > 19 {
			return 0, r.err(KindIntOverflow, "jsoniter: int64 overflow")
		}
		nacc := acc*10 - int64(nb-'0')
		if nacc > acc { // overflowed past MinInt64 (wrapped positive)
			return 0, r.err(KindIntOverflow, "jsoniter: int64 overflow")
		}
		acc = nacc
	}
}

func (r *Reader) finishZeroInt(neg bool) (int64, error) {
	nb, err := r.nextByteRaw()
	if err != nil {
		return 0, nil
	}
	if nb >= '0' && nb <= '9' {
		return 0, r.err(KindLeadingZero, "jsoniter: leading zero not allowed")
	}
	if nb == '.' || nb == 'e' || nb == 'E' {
		return 0, r.err(KindIllegalNumber, "jsoniter: integer reader does not accept fractional/exponential form")
	}
	if err := r.RollbackToken(); err != nil {
		return 0, err
	}
	_ = neg
	return 0, nil
}

func finalizeInt(negAcc int64, neg bool) int64 {
	if neg {
		return negAcc
	}
	return -negAcc
}

// ReadInt32 parses a 32-bit signed integer, reusing ReadInt64's grammar and
// rejecting values outside [MinInt32, MaxInt32].
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadInt64()
	if err != nil {
		return 0, err
	}
	if v < -2147483648 || v > 2147483647 {
		return 0, r.err(KindIntOverflow, "jsoniter: int32 overflow")
	}
	return int32(v), nil
}

// ReadInt16 parses a 16-bit signed integer.
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadInt64()
	if err != nil {
		return 0, err
	}
	if v < -32768 || v > 32767 {
		return 0, r.err(KindIntOverflow, "jsoniter: int16 overflow")
	}
	return int16(v), nil
}

// ReadInt8 parses an 8-bit signed integer.
func (r *Reader) ReadInt8() (int8, error) {
	v, err := r.ReadInt64()
	if err != nil {
		return 0, err
	}
	if v < -128 || v > 127 {
		return 0, r.err(KindIntOverflow, "jsoniter: int8 overflow")
	}
	return int8(v), nil
}

// ReadUint64 parses an unsigned 64-bit integer. Unsigned values never need
// the negative-space trick since they don't approach MinInt64, but the
// grammar (leading-zero rejection, no fractional/exponential suffix) is
// identical.
func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.NextToken()
	if err != nil {
		return 0, err
	}
	if b < '0' || b > '9' {
		return 0, r.err(KindIllegalNumber, "jsoniter: illegal number")
	}
	if b == '0' {
		if _, err := r.finishZeroInt(false); err != nil {
			return 0, err
		}
		return 0, nil
	}
	digits := 1
	acc := uint64(b - '0')
	for {
		nb, err := r.nextByteRaw()
		if err != nil {
			return acc, nil
		}
		if nb < '0' || nb > '9' {
			if nb == '.' || nb == 'e' || nb == 'E' {
				return 0, r.err(KindIllegalNumber, "jsoniter: integer reader does not accept fractional/exponential form")
			}
			if err := r.RollbackToken(); err != nil {
				return 0, err
			}
			return acc, nil
		}
		digits++
		if digits > 20 {
			return 0, r.err(KindIntOverflow, "jsoniter: uint64 overflow")
		}
		nacc := acc*10 + uint64(nb-'0')
		if nacc < acc {
			return 0, r.err(KindIntOverflow, "jsoniter: uint64 overflow")
		}
		acc = nacc
	}
}

// --- Writer side: two-digits-per-iteration integer formatting ---

// writeInt64 emits v using the classic lookup-table technique that halves
// the number of divisions versus a naive one-digit-per-iteration loop.
func (w *Writer) writeInt64(v int64) error {
	if v == 0 {
		return w.writeRawByte('0')
	}
	var buf [20]byte
	pos := len(buf)
	neg := v < 0

	// Work in the negative space so MinInt64 doesn't overflow negation.
	var n int64
	if neg {
		n = v
	} else {
		n = -v
	}
	for n <= -100 {
		pair := -(n % 100)
		n /= 100
		pos -= 2
		buf[pos] = digitPairs[pair*2]
		buf[pos+1] = digitPairs[pair*2+1]
	}
	if n <= -10 {
		pair := -n
		pos -= 2
		buf[pos] = digitPairs[pair*2]
		buf[pos+1] = digitPairs[pair*2+1]
	} else {
		pos--
		buf[pos] = byte('0' - n)
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return w.writeRawBytes2(buf[pos:])
}

func (w *Writer) writeUint64(v uint64) error {
	if v == 0 {
		return w.writeRawByte('0')
	}
	var buf [20]byte
	pos := len(buf)
	for v >= 100 {
		pair := v % 100
		v /= 100
		pos -= 2
		buf[pos] = digitPairs[pair*2]
		buf[pos+1] = digitPairs[pair*2+1]
	}
	if v >= 10 {
		pos -= 2
		buf[pos] = digitPairs[v*2]
		buf[pos+1] = digitPairs[v*2+1]
	} else {
		pos--
		buf[pos] = byte('0' + v)
	}
	return w.writeRawBytes2(buf[pos:])
}
