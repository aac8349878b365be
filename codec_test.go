//go:build test

package jsoniter

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

type int64Codec struct{}

func (int64Codec) Decode(r *Reader) (int64, error) { return r.ReadInt64() }
func (int64Codec) Encode(w *Writer, v int64) error  { return w.WriteInt64(v) }

type CodecTestSuite struct {
	suite.Suite
}

func (s *CodecTestSuite) TestWriteToArrayThenReadFromArray() {
	buf, err := WriteToArray[int64](int64Codec{}, 42, DefaultWriterConfig())
	s.Require().NoError(err)
	s.Assert().Equal("42", string(buf))

	v, err := ReadFromArray[int64](int64Codec{}, buf, DefaultReaderConfig())
	s.Require().NoError(err)
	s.Assert().Equal(int64(42), v)
}

func (s *CodecTestSuite) TestReadFromStringNoCopy() {
	v, err := ReadFromString[int64](int64Codec{}, "-7", DefaultReaderConfig())
	s.Require().NoError(err)
	s.Assert().Equal(int64(-7), v)
}

func (s *CodecTestSuite) TestReadFromByteBufferAndWriteToByteBuffer() {
	var buf bytes.Buffer
	s.Require().NoError(WriteToByteBuffer[int64](int64Codec{}, 99, &buf, DefaultWriterConfig()))
	s.Assert().Equal("99", buf.String())

	v, err := ReadFromByteBuffer[int64](int64Codec{}, &buf, DefaultReaderConfig())
	s.Require().NoError(err)
	s.Assert().Equal(int64(99), v)
}

func (s *CodecTestSuite) TestReadFromStreamAndWriteToStream() {
	var out bytes.Buffer
	s.Require().NoError(WriteToStream[int64](int64Codec{}, 123, &out, DefaultWriterConfig()))
	s.Assert().Equal("123", out.String())

	v, err := ReadFromStream[int64](int64Codec{}, strings.NewReader("456"), DefaultReaderConfig())
	s.Require().NoError(err)
	s.Assert().Equal(int64(456), v)
}

func (s *CodecTestSuite) TestCheckForEndOfInputRejectsTrailingGarbage() {
	_, err := ReadFromString[int64](int64Codec{}, "1 2", DefaultReaderConfig())
	s.Require().Error(err)
}

func (s *CodecTestSuite) TestScanValueStreamWhitespaceSeparated() {
	var got []int64
	err := ScanValueStream[int64](int64Codec{}, strings.NewReader("1 2 3"), DefaultReaderConfig(), func(v int64) error {
		got = append(got, v)
		return nil
	})
	s.Require().NoError(err)
	s.Assert().Equal([]int64{1, 2, 3}, got)
}

func (s *CodecTestSuite) TestScanValueStreamPropagatesHandlerError() {
	boom := &ReadError{Kind: KindMalformedBytes, Msg: "boom"}
	err := ScanValueStream[int64](int64Codec{}, strings.NewReader("1 2"), DefaultReaderConfig(), func(v int64) error {
		return boom
	})
	s.Assert().ErrorIs(err, boom)
}

func (s *CodecTestSuite) TestScanJSONArrayFromStreamConcurrentFanOut() {
	var mu sync.Mutex
	var got []int64
	err := ScanJSONArrayFromStream[int64](context.Background(), int64Codec{}, strings.NewReader("[1,2,3,4,5]"), DefaultReaderConfig(), 2,
		func(ctx context.Context, v int64) error {
			mu.Lock()
			got = append(got, v)
			mu.Unlock()
			return nil
		})
	s.Require().NoError(err)
	s.Assert().ElementsMatch([]int64{1, 2, 3, 4, 5}, got)
}

func (s *CodecTestSuite) TestScanJSONArrayFromStreamPropagatesHandlerError() {
	boom := &ReadError{Kind: KindMalformedBytes, Msg: "boom"}
	err := ScanJSONArrayFromStream[int64](context.Background(), int64Codec{}, strings.NewReader("[1,2,3]"), DefaultReaderConfig(), 1,
		func(ctx context.Context, v int64) error {
			if v == 2 {
				return boom
			}
			return nil
		})
	s.Require().Error(err)
}

func (s *CodecTestSuite) TestScanJSONArrayFromStreamRejectsNonArray() {
	err := ScanJSONArrayFromStream[int64](context.Background(), int64Codec{}, strings.NewReader(`{"a":1}`), DefaultReaderConfig(), 1,
		func(ctx context.Context, v int64) error { return nil })
	s.Require().Error(err)
}

func (s *CodecTestSuite) TestWriteToSubArray() {
	dst := make([]byte, 16)
	n, err := WriteToSubArray[int64](int64Codec{}, 7, &dst, 0, len(dst), DefaultWriterConfig())
	s.Require().NoError(err)
	s.Assert().Equal(1, n)
	s.Assert().Equal(byte('7'), dst[0])
}

func (s *CodecTestSuite) TestWriteToSubArrayTooSmall() {
	dst := make([]byte, 2)
	_, err := WriteToSubArray[int64](int64Codec{}, 1234567, &dst, 0, len(dst), DefaultWriterConfig())
	s.Require().Error(err)
	var we *WriteError
	s.Require().ErrorAs(err, &we)
	s.Assert().Equal(KindTooLongOutput, we.Kind)
}

func TestCodecSuite(t *testing.T) {
	suite.Run(t, new(CodecTestSuite))
}
