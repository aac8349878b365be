//go:build test

package jsoniter

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type TemporalTestSuite struct {
	suite.Suite
}

func (s *TemporalTestSuite) TestInstantFromEpochBoundary() {
	r := NewReader(DefaultReaderConfig())
	r.BindString(`"1969-12-31T23:59:59Z"`)
	got, err := r.ReadInstant()
	s.Require().NoError(err)
	s.Assert().Equal(Instant{EpochSecond: -1, Nano: 0}, got)
}

func (s *TemporalTestSuite) TestInstantRoundTrip() {
	in := Instant{EpochSecond: 1700000000, Nano: 123000000}
	w := NewWriter(DefaultWriterConfig())
	w.BindFreshArray(64)
	s.Require().NoError(w.WriteInstant(in))

	r := NewReader(DefaultReaderConfig())
	r.BindArray(w.Bytes())
	got, err := r.ReadInstant()
	s.Require().NoError(err)
	s.Assert().Equal(in, got)
}

func (s *TemporalTestSuite) TestLocalDateRoundTrip() {
	d := LocalDate{Year: 2024, Month: 2, Day: 29}
	w := NewWriter(DefaultWriterConfig())
	w.BindFreshArray(32)
	s.Require().NoError(w.WriteLocalDate(d))

	r := NewReader(DefaultReaderConfig())
	r.BindArray(w.Bytes())
	got, err := r.ReadLocalDate()
	s.Require().NoError(err)
	s.Assert().Equal(d, got)
}

func (s *TemporalTestSuite) TestLocalDateRejectsInvalidDayForMonth() {
	r := NewReader(DefaultReaderConfig())
	r.BindString(`"2023-02-29"`)
	_, err := r.ReadLocalDate()
	s.Require().Error(err)
}

func (s *TemporalTestSuite) TestLocalTimeRoundTrip() {
	t := LocalTime{Hour: 13, Minute: 45, Second: 30, Nano: 500000000}
	w := NewWriter(DefaultWriterConfig())
	w.BindFreshArray(32)
	s.Require().NoError(w.WriteLocalTime(t))

	r := NewReader(DefaultReaderConfig())
	r.BindArray(w.Bytes())
	got, err := r.ReadLocalTime()
	s.Require().NoError(err)
	s.Assert().Equal(t, got)
}

func (s *TemporalTestSuite) TestLocalDateTimeRoundTrip() {
	dt := LocalDateTime{Date: LocalDate{Year: 1999, Month: 12, Day: 31}, Time: LocalTime{Hour: 23, Minute: 59, Second: 59}}
	w := NewWriter(DefaultWriterConfig())
	w.BindFreshArray(48)
	s.Require().NoError(w.WriteLocalDateTime(dt))

	r := NewReader(DefaultReaderConfig())
	r.BindArray(w.Bytes())
	got, err := r.ReadLocalDateTime()
	s.Require().NoError(err)
	s.Assert().Equal(dt, got)
}

func (s *TemporalTestSuite) TestOffsetDateTimeRoundTrip() {
	odt := OffsetDateTime{
		DateTime: LocalDateTime{Date: LocalDate{Year: 2024, Month: 6, Day: 15}, Time: LocalTime{Hour: 8, Minute: 30, Second: 0}},
		Offset:   ZoneOffset(-5 * 3600),
	}
	w := NewWriter(DefaultWriterConfig())
	w.BindFreshArray(64)
	s.Require().NoError(w.WriteOffsetDateTime(odt))

	r := NewReader(DefaultReaderConfig())
	r.BindArray(w.Bytes())
	got, err := r.ReadOffsetDateTime()
	s.Require().NoError(err)
	s.Assert().Equal(odt, got)
}

func (s *TemporalTestSuite) TestOffsetTimeRoundTrip() {
	ot := OffsetTime{Time: LocalTime{Hour: 9, Minute: 15, Second: 0}, Offset: ZoneOffset(2 * 3600)}
	w := NewWriter(DefaultWriterConfig())
	w.BindFreshArray(48)
	s.Require().NoError(w.WriteOffsetTime(ot))

	r := NewReader(DefaultReaderConfig())
	r.BindArray(w.Bytes())
	got, err := r.ReadOffsetTime()
	s.Require().NoError(err)
	s.Assert().Equal(ot, got)
}

func (s *TemporalTestSuite) TestZonedDateTimeRoundTrip() {
	z := ZonedDateTime{
		DateTime: OffsetDateTime{
			DateTime: LocalDateTime{Date: LocalDate{Year: 2024, Month: 1, Day: 1}, Time: LocalTime{Hour: 0, Minute: 0, Second: 0}},
			Offset:   ZoneOffset(2 * 3600),
		},
		ZoneID: "Europe/Kyiv",
	}
	w := NewWriter(DefaultWriterConfig())
	w.BindFreshArray(64)
	s.Require().NoError(w.WriteZonedDateTime(z))

	r := NewReader(DefaultReaderConfig())
	r.BindArray(w.Bytes())
	got, err := r.ReadZonedDateTime()
	s.Require().NoError(err)
	s.Assert().Equal(z, got)
}

func (s *TemporalTestSuite) TestYearRoundTrip() {
	for _, y := range []Year{0, 1, -1, 2024, -753} {
		w := NewWriter(DefaultWriterConfig())
		w.BindFreshArray(16)
		s.Require().NoError(w.WriteYear(y))

		r := NewReader(DefaultReaderConfig())
		r.BindArray(w.Bytes())
		got, err := r.ReadYear()
		s.Require().NoError(err)
		s.Assert().Equal(y, got)
	}
}

func (s *TemporalTestSuite) TestYearMonthRoundTrip() {
	ym := YearMonth{Year: 2024, Month: 7}
	w := NewWriter(DefaultWriterConfig())
	w.BindFreshArray(16)
	s.Require().NoError(w.WriteYearMonth(ym))

	r := NewReader(DefaultReaderConfig())
	r.BindArray(w.Bytes())
	got, err := r.ReadYearMonth()
	s.Require().NoError(err)
	s.Assert().Equal(ym, got)
}

func (s *TemporalTestSuite) TestDurationNegativeCarryWorkedExample() {
	d := Duration{Seconds: -61, Nanos: 999999999}
	w := NewWriter(DefaultWriterConfig())
	w.BindFreshArray(32)
	s.Require().NoError(w.WriteDuration(d))
	s.Assert().Equal(`"PT-1M-0.000000001S"`, string(w.Bytes()))

	r := NewReader(DefaultReaderConfig())
	r.BindArray(w.Bytes())
	got, err := r.ReadDuration()
	s.Require().NoError(err)
	s.Assert().Equal(d, got)
}

func (s *TemporalTestSuite) TestDurationPositiveRoundTrip() {
	d := Duration{Seconds: 3725, Nanos: 0}
	w := NewWriter(DefaultWriterConfig())
	w.BindFreshArray(32)
	s.Require().NoError(w.WriteDuration(d))

	r := NewReader(DefaultReaderConfig())
	r.BindArray(w.Bytes())
	got, err := r.ReadDuration()
	s.Require().NoError(err)
	s.Assert().Equal(d, got)
}

func (s *TemporalTestSuite) TestPeriodRoundTrip() {
	p := Period{Years: 1, Months: -2, Days: 3}
	w := NewWriter(DefaultWriterConfig())
	w.BindFreshArray(32)
	s.Require().NoError(w.WritePeriod(p))

	r := NewReader(DefaultReaderConfig())
	r.BindArray(w.Bytes())
	got, err := r.ReadPeriod()
	s.Require().NoError(err)
	s.Assert().Equal(p, got)
}

func (s *TemporalTestSuite) TestUUIDRoundTrip() {
	u := UUID{0x55, 0x0e, 0x84, 0x00, 0xe2, 0x9b, 0x41, 0xd4, 0xa7, 0x16, 0x44, 0x66, 0x55, 0x44, 0x00, 0x00}
	w := NewWriter(DefaultWriterConfig())
	w.BindFreshArray(48)
	s.Require().NoError(w.WriteUUID(u))
	s.Assert().Equal(`"550e8400-e29b-41d4-a716-446655440000"`, string(w.Bytes()))

	r := NewReader(DefaultReaderConfig())
	r.BindArray(w.Bytes())
	got, err := r.ReadUUID()
	s.Require().NoError(err)
	s.Assert().Equal(u, got)
}

func (s *TemporalTestSuite) TestUUIDRejectsMalformedHex() {
	r := NewReader(DefaultReaderConfig())
	r.BindString(`"550e8400-e29b-41d4-a716-44665544000z"`)
	_, err := r.ReadUUID()
	s.Require().Error(err)
	var re *ReadError
	s.Require().ErrorAs(err, &re)
	s.Assert().Equal(KindIllegalUUID, re.Kind)
}

func TestTemporalSuite(t *testing.T) {
	suite.Run(t, new(TemporalTestSuite))
}
