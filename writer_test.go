//go:build test

package jsoniter

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type WriterTestSuite struct {
	suite.Suite
}

func (s *WriterTestSuite) TestEmptyArrayCompact() {
	w := NewWriter(DefaultWriterConfig())
	w.BindFreshArray(16)
	s.Require().NoError(w.WriteArrayStart())
	s.Require().NoError(w.WriteArrayEnd())
	s.Assert().Equal("[]", string(w.Bytes()))
}

func (s *WriterTestSuite) TestEmptyObjectCompact() {
	w := NewWriter(DefaultWriterConfig())
	w.BindFreshArray(16)
	s.Require().NoError(w.WriteObjectStart())
	s.Require().NoError(w.WriteObjectEnd())
	s.Assert().Equal("{}", string(w.Bytes()))
}

func (s *WriterTestSuite) TestArrayWithElementsCompact() {
	w := NewWriter(DefaultWriterConfig())
	w.BindFreshArray(16)
	s.Require().NoError(w.WriteArrayStart())
	s.Require().NoError(w.WriteArrayValueSeparator())
	s.Require().NoError(w.WriteInt64(1))
	s.Require().NoError(w.WriteArrayValueSeparator())
	s.Require().NoError(w.WriteInt64(2))
	s.Require().NoError(w.WriteArrayEnd())
	s.Assert().Equal("[1,2]", string(w.Bytes()))
}

func (s *WriterTestSuite) TestObjectWithKeysCompact() {
	w := NewWriter(DefaultWriterConfig())
	w.BindFreshArray(32)
	s.Require().NoError(w.WriteObjectStart())
	s.Require().NoError(w.WriteKey("a"))
	s.Require().NoError(w.WriteInt64(1))
	s.Require().NoError(w.WriteKey("b"))
	s.Require().NoError(w.WriteBool(true))
	s.Require().NoError(w.WriteObjectEnd())
	s.Assert().Equal(`{"a":1,"b":true}`, string(w.Bytes()))
}

func (s *WriterTestSuite) TestPrettyPrintedObject() {
	cfg := DefaultWriterConfig()
	cfg.IndentionStep = 2
	w := NewWriter(cfg)
	w.BindFreshArray(64)
	s.Require().NoError(w.WriteObjectStart())
	s.Require().NoError(w.WriteKey("a"))
	s.Require().NoError(w.WriteInt64(1))
	s.Require().NoError(w.WriteObjectEnd())
	s.Assert().Equal("{\n  \"a\": 1\n}", string(w.Bytes()))
}

func (s *WriterTestSuite) TestPrettyPrintedEmptyArrayNotSplit() {
	cfg := DefaultWriterConfig()
	cfg.IndentionStep = 2
	w := NewWriter(cfg)
	w.BindFreshArray(16)
	s.Require().NoError(w.WriteArrayStart())
	s.Require().NoError(w.WriteArrayEnd())
	s.Assert().Equal("[]", string(w.Bytes()))
}

func (s *WriterTestSuite) TestWriteNullAndBool() {
	w := NewWriter(DefaultWriterConfig())
	w.BindFreshArray(16)
	s.Require().NoError(w.WriteNull())
	s.Assert().Equal("null", string(w.Bytes()))

	w2 := NewWriter(DefaultWriterConfig())
	w2.BindFreshArray(16)
	s.Require().NoError(w2.WriteBool(false))
	s.Assert().Equal("false", string(w2.Bytes()))
}

func (s *WriterTestSuite) TestWriteRawVal() {
	w := NewWriter(DefaultWriterConfig())
	w.BindFreshArray(32)
	s.Require().NoError(w.WriteObjectStart())
	s.Require().NoError(w.WriteKey("raw"))
	s.Require().NoError(w.WriteRawVal([]byte(`{"x":1}`)))
	s.Require().NoError(w.WriteObjectEnd())
	s.Assert().Equal(`{"raw":{"x":1}}`, string(w.Bytes()))
}

func (s *WriterTestSuite) TestStickyFirstError() {
	w := NewWriter(DefaultWriterConfig())
	w.BindFreshArray(16)
	w.setError(&WriteError{Kind: KindMalformedBytes, Msg: "boom"})
	err := w.WriteInt64(5)
	s.Require().Error(err)
	s.Assert().Equal(w.Err(), err)

	second := &WriteError{Kind: KindTooLongOutput, Msg: "later"}
	w.setError(second)
	s.Assert().NotEqual(second, w.Err())
}

func (s *WriterTestSuite) TestWithIndentionStepChaining() {
	w := NewWriter(DefaultWriterConfig()).WithIndentionStep(4)
	w.BindFreshArray(32)
	s.Require().NoError(w.WriteArrayStart())
	s.Require().NoError(w.WriteArrayValueSeparator())
	s.Require().NoError(w.WriteInt64(1))
	s.Require().NoError(w.WriteArrayEnd())
	s.Assert().Equal("[\n    1\n]", string(w.Bytes()))
}

func (s *WriterTestSuite) TestWithEscapeUnicodeChaining() {
	w := NewWriter(DefaultWriterConfig()).WithEscapeUnicode(true)
	w.BindFreshArray(32)
	s.Require().NoError(w.WriteString("é"))
	s.Assert().Contains(string(w.Bytes()), `\u`)
}

func (s *WriterTestSuite) TestWriteValAsString() {
	w := NewWriter(DefaultWriterConfig())
	w.BindFreshArray(32)
	s.Require().NoError(w.WriteValAsString([]byte("123.456")))
	s.Assert().Equal(`"123.456"`, string(w.Bytes()))
}

func (s *WriterTestSuite) TestWriteValAsStringRejectsNil() {
	w := NewWriter(DefaultWriterConfig())
	w.BindFreshArray(32)
	s.Require().ErrorIs(w.WriteValAsString(nil), ErrNilArg)
}

func (s *WriterTestSuite) TestWriteNonEscapedAsciiVal() {
	w := NewWriter(DefaultWriterConfig())
	w.BindFreshArray(32)
	s.Require().NoError(w.WriteNonEscapedAsciiVal("hello"))
	s.Assert().Equal(`"hello"`, string(w.Bytes()))
}

func (s *WriterTestSuite) TestWriteNonEscapedAsciiKey() {
	w := NewWriter(DefaultWriterConfig())
	w.BindFreshArray(32)
	s.Require().NoError(w.WriteObjectStart())
	s.Require().NoError(w.WriteNonEscapedAsciiKey("name"))
	s.Require().NoError(w.WriteNonEscapedAsciiVal("val"))
	s.Require().NoError(w.WriteObjectEnd())
	s.Assert().Equal(`{"name":"val"}`, string(w.Bytes()))
}

func TestWriterSuite(t *testing.T) {
	suite.Run(t, new(WriterTestSuite))
}
