package jsoniter

import "golang.org/x/exp/constraints"

// list_json.go implements homogeneous JSON array helpers: read items until
// the closing delimiter (count unknown up front) rather than a fixed
// record count.

// ReadArrayInto decodes a JSON array, appending each decoded element to
// *items via decode. r must be positioned before the array's '['.
func ReadArrayInto[T any](r *Reader, items *[]T, decode func(*Reader) (T, error)) error {
	b, err := r.NextToken()
	if err != nil {
		return err
	}
	if b != '[' {
		return r.unexpectedToken("'[' to begin array")
	}
	first := true
	for {
		nb, err := r.NextToken()
		if err != nil {
			return err
		}
		if nb == ']' {
			return nil
		}
		if !first {
			if nb != ',' {
				return r.unexpectedToken("',' or ']' in array")
			}
		} else {
			if err := r.RollbackToken(); err != nil {
				return err
			}
		}
		first = false
		v, err := decode(r)
		if err != nil {
			return err
		}
		*items = append(*items, v)
	}
}

// WriteArrayFrom encodes items as a JSON array using encode per element.
func WriteArrayFrom[T any](w *Writer, items []T, encode func(*Writer, T) error) error {
	if err := w.WriteArrayStart(); err != nil {
		return err
	}
	for _, item := range items {
		if err := w.WriteArrayValueSeparator(); err != nil {
			return err
		}
		if err := encode(w, item); err != nil {
			return err
		}
	}
	return w.WriteArrayEnd()
}

// ReadNumericArray is a fast path for arrays of plain numeric types, reusing
// ReadArrayInto with a per-type decode plugged in by the caller; constrained
// to Go's built-in numeric kinds since JSON numbers decode straight into
// them with no intermediate type.
func ReadNumericArray[T constraints.Integer | constraints.Float](r *Reader, readOne func(*Reader) (T, error)) ([]T, error) {
	var out []T
	err := ReadArrayInto(r, &out, readOne)
	return out, err
}

// WriteNumericArray is the formatting counterpart of ReadNumericArray.
func WriteNumericArray[T constraints.Integer | constraints.Float](w *Writer, items []T, writeOne func(*Writer, T) error) error {
	return WriteArrayFrom(w, items, writeOne)
}
