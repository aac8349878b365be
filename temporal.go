package jsoniter

import (
	"fmt"
	"time"
)

// temporal.go implements fixed-grammar ISO-8601 parsers/formatters for
// the temporal taxonomy. Each type is a dedicated grammar walk over the
// string contents rather than a format-string interpreter.

// Instant is a point on the UTC timeline: seconds since epoch plus a
// nanosecond-of-second remainder in [0, 1e9).
type Instant struct {
	EpochSecond int64
	Nano        int32
}

// ToTime converts i to a UTC time.Time.
func (i Instant) ToTime() time.Time {
	return time.Unix(i.EpochSecond, int64(i.Nano)).UTC()
}

// LocalDate is a calendar date with no time-of-day or zone.
type LocalDate struct {
	Year  int32
	Month uint8
	Day   uint8
}

// LocalTime is a time-of-day with no date or zone.
type LocalTime struct {
	Hour, Minute, Second uint8
	Nano                 int32
}

// LocalDateTime combines LocalDate and LocalTime with no zone.
type LocalDateTime struct {
	Date LocalDate
	Time LocalTime
}

// ZoneOffset is a fixed UTC offset in whole seconds, e.g. +02:00 == 7200.
type ZoneOffset int32

// OffsetDateTime is a LocalDateTime plus a fixed zone offset.
type OffsetDateTime struct {
	DateTime LocalDateTime
	Offset   ZoneOffset
}

// ToTime converts dt to a time.Time anchored at a fixed-offset
// time.Location, reusing the quarter-hour zone cache when the offset
// lands on a 15-minute boundary.
func (dt OffsetDateTime) ToTime() time.Time {
	d, t := dt.DateTime.Date, dt.DateTime.Time
	return time.Date(int(d.Year), time.Month(d.Month), int(d.Day),
		int(t.Hour), int(t.Minute), int(t.Second), int(t.Nano),
		zoneOffsetLocation(int32(dt.Offset)))
}

// OffsetTime is a LocalTime plus a fixed zone offset.
type OffsetTime struct {
	Time   LocalTime
	Offset ZoneOffset
}

// ZonedDateTime is an OffsetDateTime plus an optional IANA zone id, e.g.
// "2024-01-01T00:00:00+02:00[Europe/Kyiv]".
type ZonedDateTime struct {
	DateTime OffsetDateTime
	ZoneID   string // empty when only an offset, no [zone-id] suffix, was given
}

// Year is a signed calendar year; ISO-8601 extended years use a leading
// sign and more than 4 digits.
type Year int32

// YearMonth is a calendar year and month with no day.
type YearMonth struct {
	Year  int32
	Month uint8
}

// Duration is a signed span of seconds and nanoseconds, as produced by
// parsing an ISO-8601 "PT..." duration string.
type Duration struct {
	Seconds int64
	Nanos   int32
}

// Period is a signed calendar span of years, months, and days, as produced
// by parsing an ISO-8601 "P...Y...M...D" period string.
type Period struct {
	Years, Months, Days int32
}

func isLeapYear(year int32) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var daysInMonth = [...]uint8{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func daysInMonthOf(year int32, month uint8) uint8 {
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return daysInMonth[month-1]
}

// --- Parsing primitives shared by every temporal reader ---

func (r *Reader) readDigitsN(n int) (int, error) {
	v := 0
	for i := 0; i < n; i++ {
		b, err := r.nextByteRaw()
		if err != nil {
			return 0, r.endOfInputErr("unexpected end of input in temporal value")
		}
		if b < '0' || b > '9' {
			return 0, r.err(KindIllegalNumber, "jsoniter: expected digit in temporal value")
		}
		v = v*10 + int(b-'0')
	}
	return v, nil
}

func (r *Reader) expectByte(want byte, kind Kind, what string) error {
	b, err := r.nextByteRaw()
	if err != nil {
		return r.endOfInputErr("unexpected end of input in " + what)
	}
	if b != want {
		return r.err(kind, "jsoniter: illegal "+what)
	}
	return nil
}

// readYear parses either 4 digits without sign, or a sign followed by
// 4-9 digits (with "-0" disallowed and 10-digit forms rejected above
// 1,000,000,000).
func (r *Reader) readYear() (int32, error) {
	b, err := r.nextByteRaw()
	if err != nil {
		return 0, r.endOfInputErr("unexpected end of input in year")
	}
	neg := false
	extended := false
	if b == '+' || b == '-' {
		neg = b == '-'
		extended = true
		b, err = r.nextByteRaw()
		if err != nil {
			return 0, r.endOfInputErr("unexpected end of input in year")
		}
	}
	if b < '0' || b > '9' {
		return 0, r.err(KindIllegalYear, "jsoniter: illegal year")
	}
	digits := []byte{b}
	minDigits, maxDigits := 4, 4
	if extended {
		minDigits, maxDigits = 4, 9
	}
	for len(digits) < maxDigits {
		nb, err := r.nextByteRaw()
		if err != nil {
			break
		}
		if nb < '0' || nb > '9' {
			r.RollbackToken()
			break
		}
		digits = append(digits, nb)
	}
	if len(digits) < minDigits {
		return 0, r.err(KindIllegalYear, "jsoniter: illegal year")
	}
	v := 0
	for _, d := range digits {
		v = v*10 + int(d-'0')
	}
	if neg && v == 0 {
		return 0, r.err(KindIllegalYear, "jsoniter: illegal year '-0'")
	}
	if len(digits) >= 10 && v > 1000000000 {
		return 0, r.err(KindIllegalYear, "jsoniter: illegal year, magnitude too large")
	}
	if neg {
		v = -v
	}
	return int32(v), nil
}

func (r *Reader) readMonth() (uint8, error) {
	v, err := r.readDigitsN(2)
	if err != nil {
		return 0, err
	}
	if v < 1 || v > 12 {
		return 0, r.err(KindIllegalMonth, "jsoniter: illegal month")
	}
	return uint8(v), nil
}

func (r *Reader) readDay(year int32, month uint8) (uint8, error) {
	v, err := r.readDigitsN(2)
	if err != nil {
		return 0, err
	}
	if v < 1 || v > int(daysInMonthOf(year, month)) {
		return 0, r.err(KindIllegalDay, "jsoniter: illegal day")
	}
	return uint8(v), nil
}

func (r *Reader) readHour() (uint8, error) {
	v, err := r.readDigitsN(2)
	if err != nil {
		return 0, err
	}
	if v > 23 {
		return 0, r.err(KindIllegalHour, "jsoniter: illegal hour")
	}
	return uint8(v), nil
}

func (r *Reader) readMinute() (uint8, error) {
	v, err := r.readDigitsN(2)
	if err != nil {
		return 0, err
	}
	if v > 59 {
		return 0, r.err(KindIllegalMinute, "jsoniter: illegal minute")
	}
	return uint8(v), nil
}

func (r *Reader) readSecond() (uint8, error) {
	v, err := r.readDigitsN(2)
	if err != nil {
		return 0, err
	}
	if v > 59 {
		return 0, r.err(KindIllegalSecond, "jsoniter: illegal second")
	}
	return uint8(v), nil
}

// readFractionalSeconds consumes up to 9 fractional digits after a '.',
// returning the nanosecond value. Caller has already consumed the '.'.
func (r *Reader) readFractionalSeconds() (int32, error) {
	var digits []byte
	for len(digits) < 9 {
		b, err := r.nextByteRaw()
		if err != nil {
			break
		}
		if b < '0' || b > '9' {
			r.RollbackToken()
			break
		}
		digits = append(digits, b)
	}
	if len(digits) == 0 {
		return 0, r.err(KindIllegalSecond, "jsoniter: illegal fractional seconds")
	}
	for len(digits) < 9 {
		digits = append(digits, '0')
	}
	v := 0
	for _, d := range digits {
		v = v*10 + int(d-'0')
	}
	return int32(v), nil
}

// readZoneOffset parses "Z", "+HH[:MM[:SS]]", or "-HH[:MM[:SS]]".
func (r *Reader) readZoneOffset() (ZoneOffset, error) {
	b, err := r.nextByteRaw()
	if err != nil {
		return 0, r.endOfInputErr("unexpected end of input in timezone")
	}
	if b == 'Z' {
		return 0, nil
	}
	if b != '+' && b != '-' {
		return 0, r.err(KindIllegalTimezone, "jsoniter: illegal timezone")
	}
	neg := b == '-'
	hh, err := r.readDigitsN(2)
	if err != nil {
		return 0, err
	}
	if hh > 18 {
		return 0, r.err(KindIllegalTimezoneOffset, "jsoniter: illegal timezone offset hour")
	}
	mm, ss := 0, 0
	if pb, err := r.nextByteRaw(); err == nil {
		if pb == ':' {
			mm, err = r.readDigitsN(2)
			if err != nil {
				return 0, err
			}
			if mm > 59 {
				return 0, r.err(KindIllegalTimezoneOffset, "jsoniter: illegal timezone offset minute")
			}
			if pb2, err := r.nextByteRaw(); err == nil {
				if pb2 == ':' {
					ss, err = r.readDigitsN(2)
					if err != nil {
						return 0, err
					}
					if ss > 59 {
						return 0, r.err(KindIllegalTimezoneOffset, "jsoniter: illegal timezone offset second")
					}
				} else {
					r.RollbackToken()
				}
			}
		} else {
			r.RollbackToken()
		}
	}
	total := hh*3600 + mm*60 + ss
	if neg {
		total = -total
	}
	return ZoneOffset(total), nil
}

// readZoneIDSuffix reads an optional "[<zone-id>]" suffix and resolves it
// through the process-wide zone cache (§3.6). Returns "" if absent.
func (r *Reader) readZoneIDSuffix() (string, error) {
	b, err := r.nextByteRaw()
	if err != nil {
		return "", nil
	}
	if b != '[' {
		r.RollbackToken()
		return "", nil
	}
	start := r.ring.head
	for {
		nb, err := r.nextByteRaw()
		if err != nil {
			return "", r.endOfInputErr("unexpected end of input in zone id")
		}
		if nb == ']' {
			name := string(r.ring.buf[start : r.ring.head-1])
			if _, err := lookupZone(name); err != nil {
				return "", r.err(KindIllegalTimezone, "jsoniter: unknown zone id")
			}
			return name, nil
		}
	}
}

// --- Public readers ---

func (r *Reader) ReadLocalDate() (LocalDate, error) {
	if err := r.expectOpenQuote(); err != nil {
		return LocalDate{}, err
	}
	d, err := r.readLocalDateBody()
	if err != nil {
		return LocalDate{}, err
	}
	if err := r.expectByte('"', KindIllegalYear, "local date"); err != nil {
		return LocalDate{}, err
	}
	return d, nil
}

func (r *Reader) readLocalDateBody() (LocalDate, error) {
	year, err := r.readYear()
	if err != nil {
		return LocalDate{}, err
	}
	if err := r.expectByte('-', KindIllegalMonth, "date"); err != nil {
		return LocalDate{}, err
	}
	month, err := r.readMonth()
	if err != nil {
		return LocalDate{}, err
	}
	if err := r.expectByte('-', KindIllegalDay, "date"); err != nil {
		return LocalDate{}, err
	}
	day, err := r.readDay(year, month)
	if err != nil {
		return LocalDate{}, err
	}
	return LocalDate{Year: year, Month: month, Day: day}, nil
}

func (r *Reader) readLocalTimeBody() (LocalTime, error) {
	hour, err := r.readHour()
	if err != nil {
		return LocalTime{}, err
	}
	if err := r.expectByte(':', KindIllegalMinute, "time"); err != nil {
		return LocalTime{}, err
	}
	minute, err := r.readMinute()
	if err != nil {
		return LocalTime{}, err
	}
	lt := LocalTime{Hour: hour, Minute: minute}
	b, err := r.nextByteRaw()
	if err != nil {
		return lt, nil
	}
	if b != ':' {
		r.RollbackToken()
		return lt, nil
	}
	sec, err := r.readSecond()
	if err != nil {
		return LocalTime{}, err
	}
	lt.Second = sec
	b, err = r.nextByteRaw()
	if err != nil {
		return lt, nil
	}
	if b != '.' {
		r.RollbackToken()
		return lt, nil
	}
	nano, err := r.readFractionalSeconds()
	if err != nil {
		return LocalTime{}, err
	}
	lt.Nano = nano
	return lt, nil
}

func (r *Reader) expectOpenQuote() error {
	return r.expectByte('"', KindUnexpectedToken, "temporal value (expected opening quote)")
}

func (r *Reader) ReadLocalTime() (LocalTime, error) {
	if err := r.expectOpenQuote(); err != nil {
		return LocalTime{}, err
	}
	t, err := r.readLocalTimeBody()
	if err != nil {
		return LocalTime{}, err
	}
	if err := r.expectByte('"', KindIllegalSecond, "local time"); err != nil {
		return LocalTime{}, err
	}
	return t, nil
}

// ReadOffsetTime parses a local-time-of-day with a zone offset suffix and no
// date component (e.g. "13:45:30+02:00"), grounded on the same grammar-walk
// shape as ReadOffsetDateTime but without the date prefix.
func (r *Reader) ReadOffsetTime() (OffsetTime, error) {
	if err := r.expectOpenQuote(); err != nil {
		return OffsetTime{}, err
	}
	t, err := r.readLocalTimeBody()
	if err != nil {
		return OffsetTime{}, err
	}
	off, err := r.readZoneOffset()
	if err != nil {
		return OffsetTime{}, err
	}
	if err := r.expectByte('"', KindIllegalTimezone, "offset time"); err != nil {
		return OffsetTime{}, err
	}
	return OffsetTime{Time: t, Offset: off}, nil
}

func (r *Reader) ReadLocalDateTime() (LocalDateTime, error) {
	if err := r.expectOpenQuote(); err != nil {
		return LocalDateTime{}, err
	}
	date, err := r.readLocalDateBody()
	if err != nil {
		return LocalDateTime{}, err
	}
	if err := r.expectByte('T', KindIllegalHour, "date-time"); err != nil {
		return LocalDateTime{}, err
	}
	t, err := r.readLocalTimeBody()
	if err != nil {
		return LocalDateTime{}, err
	}
	if err := r.expectByte('"', KindIllegalSecond, "local date-time"); err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{Date: date, Time: t}, nil
}

func (r *Reader) ReadOffsetDateTime() (OffsetDateTime, error) {
	if err := r.expectOpenQuote(); err != nil {
		return OffsetDateTime{}, err
	}
	date, err := r.readLocalDateBody()
	if err != nil {
		return OffsetDateTime{}, err
	}
	if err := r.expectByte('T', KindIllegalHour, "date-time"); err != nil {
		return OffsetDateTime{}, err
	}
	t, err := r.readLocalTimeBody()
	if err != nil {
		return OffsetDateTime{}, err
	}
	off, err := r.readZoneOffset()
	if err != nil {
		return OffsetDateTime{}, err
	}
	if err := r.expectByte('"', KindIllegalTimezone, "offset date-time"); err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTime{DateTime: LocalDateTime{Date: date, Time: t}, Offset: off}, nil
}

func (r *Reader) ReadZonedDateTime() (ZonedDateTime, error) {
	if err := r.expectOpenQuote(); err != nil {
		return ZonedDateTime{}, err
	}
	date, err := r.readLocalDateBody()
	if err != nil {
		return ZonedDateTime{}, err
	}
	if err := r.expectByte('T', KindIllegalHour, "date-time"); err != nil {
		return ZonedDateTime{}, err
	}
	t, err := r.readLocalTimeBody()
	if err != nil {
		return ZonedDateTime{}, err
	}
	off, err := r.readZoneOffset()
	if err != nil {
		return ZonedDateTime{}, err
	}
	zone, err := r.readZoneIDSuffix()
	if err != nil {
		return ZonedDateTime{}, err
	}
	if err := r.expectByte('"', KindIllegalTimezone, "zoned date-time"); err != nil {
		return ZonedDateTime{}, err
	}
	return ZonedDateTime{DateTime: OffsetDateTime{DateTime: LocalDateTime{Date: date, Time: t}, Offset: off}, ZoneID: zone}, nil
}

// ReadInstant parses an offset-date-time string and converts it to an
// Instant (seconds/nanos since the Unix epoch).
func (r *Reader) ReadInstant() (Instant, error) {
	odt, err := r.ReadOffsetDateTime()
	if err != nil {
		return Instant{}, err
	}
	return offsetDateTimeToInstant(odt), nil
}

func offsetDateTimeToInstant(odt OffsetDateTime) Instant {
	days := daysSinceEpoch(odt.DateTime.Date)
	secOfDay := int64(odt.DateTime.Time.Hour)*3600 + int64(odt.DateTime.Time.Minute)*60 + int64(odt.DateTime.Time.Second)
	epoch := days*86400 + secOfDay - int64(odt.Offset)
	return Instant{EpochSecond: epoch, Nano: odt.DateTime.Time.Nano}
}

// daysSinceEpoch computes the day count from 1970-01-01 using the
// proleptic Gregorian calendar (civil_from_days algorithm).
func daysSinceEpoch(d LocalDate) int64 {
	y := int64(d.Year)
	m := int64(d.Month)
	dd := int64(d.Day)
	if m <= 2 {
		y--
	}
	era := y
	if era < 0 {
		era -= 399
	}
	era /= 400
	yoe := y - era*400
	var mp int64
	if m > 2 {
		mp = m - 3
	} else {
		mp = m + 9
	}
	doy := (153*mp+2)/5 + dd - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

func instantToOffsetDateTime(i Instant, off ZoneOffset) OffsetDateTime {
	total := i.EpochSecond + int64(off)
	days := total / 86400
	secOfDay := total % 86400
	if secOfDay < 0 {
		secOfDay += 86400
		days--
	}
	date := civilFromDays(days)
	t := LocalTime{
		Hour:   uint8(secOfDay / 3600),
		Minute: uint8((secOfDay % 3600) / 60),
		Second: uint8(secOfDay % 60),
		Nano:   i.Nano,
	}
	return OffsetDateTime{DateTime: LocalDateTime{Date: date, Time: t}, Offset: off}
}

func civilFromDays(z int64) LocalDate {
	z += 719468
	era := z
	if era < 0 {
		era -= 146096
	}
	era /= 146097
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := doy - (153*mp+2)/5 + 1
	var m int64
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return LocalDate{Year: int32(y), Month: uint8(m), Day: uint8(d)}
}

// ReadYear parses a bare year string.
func (r *Reader) ReadYear() (Year, error) {
	if err := r.expectOpenQuote(); err != nil {
		return 0, err
	}
	y, err := r.readYear()
	if err != nil {
		return 0, err
	}
	if err := r.expectByte('"', KindIllegalYear, "year"); err != nil {
		return 0, err
	}
	return Year(y), nil
}

func (r *Reader) ReadYearMonth() (YearMonth, error) {
	if err := r.expectOpenQuote(); err != nil {
		return YearMonth{}, err
	}
	y, err := r.readYear()
	if err != nil {
		return YearMonth{}, err
	}
	if err := r.expectByte('-', KindIllegalMonth, "year-month"); err != nil {
		return YearMonth{}, err
	}
	m, err := r.readMonth()
	if err != nil {
		return YearMonth{}, err
	}
	if err := r.expectByte('"', KindIllegalMonth, "year-month"); err != nil {
		return YearMonth{}, err
	}
	return YearMonth{Year: y, Month: m}, nil
}

// ReadDuration parses an ISO-8601 "PT..." duration, accumulating whole
// seconds and a nanosecond remainder across H/M/S components. A component's
// fractional seconds (only valid on the S unit) contribute signed
// nanoseconds that are normalized back into [0, 1e9) against the whole
// seconds total once the duration is fully read, so "-0.000000001S" borrows
// a second from an adjacent negative component instead of losing its sign.
func (r *Reader) ReadDuration() (Duration, error) {
	if err := r.expectOpenQuote(); err != nil {
		return Duration{}, err
	}
	if err := r.expectByte('P', KindIllegalDuration, "duration"); err != nil {
		return Duration{}, err
	}
	var totalSeconds int64
	var totalNanos int64
	b, err := r.nextByteRaw()
	if err != nil {
		return Duration{}, r.endOfInputErr("unexpected end of input in duration")
	}
	if b == 'T' {
		for {
			sign, whole, nanos, err := r.readSignedIntRun()
			if err != nil {
				return Duration{}, err
			}
			unit, err := r.nextByteRaw()
			if err != nil {
				return Duration{}, r.endOfInputErr("unexpected end of input in duration")
			}
			if nanos != 0 && unit != 'S' {
				return Duration{}, r.err(KindIllegalDuration, "jsoniter: fractional value only allowed on seconds")
			}
			switch unit {
			case 'H':
				totalSeconds += sign * whole * 3600
			case 'M':
				totalSeconds += sign * whole * 60
			case 'S':
				totalSeconds += sign * whole
				totalNanos += sign * int64(nanos)
			default:
				return Duration{}, r.err(KindIllegalDuration, "jsoniter: illegal duration unit")
			}
			nb, err := r.nextByteRaw()
			if err != nil {
				break
			}
			if nb == '"' {
				r.RollbackToken()
				break
			}
			r.RollbackToken()
		}
	} else {
		r.RollbackToken()
	}
	if err := r.expectByte('"', KindIllegalDuration, "duration"); err != nil {
		return Duration{}, err
	}
	for totalNanos < 0 {
		totalNanos += 1e9
		totalSeconds--
	}
	for totalNanos >= 1e9 {
		totalNanos -= 1e9
		totalSeconds++
	}
	return Duration{Seconds: totalSeconds, Nanos: int32(totalNanos)}, nil
}

// readSignedIntRun reads an optional sign and a digit run, then (only
// meaningful for the seconds component) an optional ".nnnnnnnnn" fraction,
// returning the sign, the whole-number magnitude, and the fractional
// nanoseconds scaled to 9 digits.
func (r *Reader) readSignedIntRun() (int64, int64, int32, error) {
	sign := int64(1)
	b, err := r.nextByteRaw()
	if err != nil {
		return 0, 0, 0, r.endOfInputErr("unexpected end of input in duration")
	}
	if b == '-' {
		sign = -1
		b, err = r.nextByteRaw()
		if err != nil {
			return 0, 0, 0, r.endOfInputErr("unexpected end of input in duration")
		}
	}
	if b < '0' || b > '9' {
		return 0, 0, 0, r.err(KindIllegalDuration, "jsoniter: illegal duration")
	}
	v := int64(b - '0')
	for {
		nb, err := r.nextByteRaw()
		if err != nil {
			return sign, v, 0, nil
		}
		if nb == '.' {
			nanos, err := r.readFractionalSeconds()
			if err != nil {
				return 0, 0, 0, err
			}
			return sign, v, nanos, nil
		}
		if nb < '0' || nb > '9' {
			r.RollbackToken()
			return sign, v, 0, nil
		}
		v = v*10 + int64(nb-'0')
	}
}

// ReadPeriod parses an ISO-8601 "P...Y...M...D" period (no time component).
func (r *Reader) ReadPeriod() (Period, error) {
	if err := r.expectOpenQuote(); err != nil {
		return Period{}, err
	}
	if err := r.expectByte('P', KindIllegalPeriod, "period"); err != nil {
		return Period{}, err
	}
	var p Period
	for {
		b, err := r.nextByteRaw()
		if err != nil {
			return Period{}, r.endOfInputErr("unexpected end of input in period")
		}
		if b == '"' {
			r.RollbackToken()
			break
		}
		r.RollbackToken()
		sign, v, _, err := r.readSignedIntRun()
		if err != nil {
			return Period{}, err
		}
		unit, err := r.nextByteRaw()
		if err != nil {
			return Period{}, r.endOfInputErr("unexpected end of input in period")
		}
		switch unit {
		case 'Y':
			p.Years = int32(sign * v)
		case 'M':
			p.Months = int32(sign * v)
		case 'D':
			p.Days = int32(sign * v)
		default:
			return Period{}, r.err(KindIllegalPeriod, "jsoniter: illegal period unit")
		}
	}
	if err := r.expectByte('"', KindIllegalPeriod, "period"); err != nil {
		return Period{}, err
	}
	return p, nil
}

// --- Writer side ---

func pad2(v int) string { return fmt.Sprintf("%02d", v) }

func (w *Writer) writeYearDigits(y int32) error {
	if y >= 0 && y <= 9999 {
		return w.writeRawBytes(fmt.Sprintf("%04d", y))
	}
	if y < 0 {
		return w.writeRawBytes(fmt.Sprintf("-%09d", -y))
	}
	return w.writeRawBytes(fmt.Sprintf("+%09d", y))
}

func (w *Writer) writeLocalDateBody(d LocalDate) error {
	if err := w.writeYearDigits(d.Year); err != nil {
		return err
	}
	if err := w.writeRawByte('-'); err != nil {
		return err
	}
	if err := w.writeRawBytes(pad2(int(d.Month))); err != nil {
		return err
	}
	if err := w.writeRawByte('-'); err != nil {
		return err
	}
	return w.writeRawBytes(pad2(int(d.Day)))
}

// fractionWidth picks the minimal fractional width (0, 3, 6, or 9 digits)
// that preserves exactness.
func fractionWidth(nano int32) int {
	if nano == 0 {
		return 0
	}
	if nano%1000000 == 0 {
		return 3
	}
	if nano%1000 == 0 {
		return 6
	}
	return 9
}

func (w *Writer) writeLocalTimeBody(t LocalTime) error {
	if err := w.writeRawBytes(pad2(int(t.Hour))); err != nil {
		return err
	}
	if err := w.writeRawByte(':'); err != nil {
		return err
	}
	if err := w.writeRawBytes(pad2(int(t.Minute))); err != nil {
		return err
	}
	width := fractionWidth(t.Nano)
	if t.Second != 0 || width > 0 {
		if err := w.writeRawByte(':'); err != nil {
			return err
		}
		if err := w.writeRawBytes(pad2(int(t.Second))); err != nil {
			return err
		}
	}
	if width > 0 {
		if err := w.writeRawByte('.'); err != nil {
			return err
		}
		digits := fmt.Sprintf("%09d", t.Nano)[:width]
		if err := w.writeRawBytes(digits); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeZoneOffset(off ZoneOffset) error {
	if off == 0 {
		return w.writeRawByte('Z')
	}
	v := int32(off)
	sign := byte('+')
	if v < 0 {
		sign = '-'
		v = -v
	}
	if err := w.writeRawByte(sign); err != nil {
		return err
	}
	hh := v / 3600
	mm := (v % 3600) / 60
	ss := v % 60
	if err := w.writeRawBytes(pad2(int(hh))); err != nil {
		return err
	}
	if err := w.writeRawByte(':'); err != nil {
		return err
	}
	if err := w.writeRawBytes(pad2(int(mm))); err != nil {
		return err
	}
	if ss != 0 {
		if err := w.writeRawByte(':'); err != nil {
			return err
		}
		if err := w.writeRawBytes(pad2(int(ss))); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) WriteLocalDate(d LocalDate) error {
	if err := w.writeRawByte('"'); err != nil {
		return err
	}
	if err := w.writeLocalDateBody(d); err != nil {
		return err
	}
	return w.writeRawByte('"')
}

func (w *Writer) WriteLocalTime(t LocalTime) error {
	if err := w.writeRawByte('"'); err != nil {
		return err
	}
	if err := w.writeLocalTimeBody(t); err != nil {
		return err
	}
	return w.writeRawByte('"')
}

func (w *Writer) WriteOffsetTime(t OffsetTime) error {
	if err := w.writeRawByte('"'); err != nil {
		return err
	}
	if err := w.writeLocalTimeBody(t.Time); err != nil {
		return err
	}
	if err := w.writeZoneOffset(t.Offset); err != nil {
		return err
	}
	return w.writeRawByte('"')
}

func (w *Writer) WriteLocalDateTime(dt LocalDateTime) error {
	if err := w.writeRawByte('"'); err != nil {
		return err
	}
	if err := w.writeLocalDateBody(dt.Date); err != nil {
		return err
	}
	if err := w.writeRawByte('T'); err != nil {
		return err
	}
	if err := w.writeLocalTimeBody(dt.Time); err != nil {
		return err
	}
	return w.writeRawByte('"')
}

func (w *Writer) WriteOffsetDateTime(odt OffsetDateTime) error {
	if err := w.writeRawByte('"'); err != nil {
		return err
	}
	if err := w.writeLocalDateBody(odt.DateTime.Date); err != nil {
		return err
	}
	if err := w.writeRawByte('T'); err != nil {
		return err
	}
	if err := w.writeLocalTimeBody(odt.DateTime.Time); err != nil {
		return err
	}
	if err := w.writeZoneOffset(odt.Offset); err != nil {
		return err
	}
	return w.writeRawByte('"')
}

func (w *Writer) WriteZonedDateTime(z ZonedDateTime) error {
	if err := w.writeRawByte('"'); err != nil {
		return err
	}
	if err := w.writeLocalDateBody(z.DateTime.DateTime.Date); err != nil {
		return err
	}
	if err := w.writeRawByte('T'); err != nil {
		return err
	}
	if err := w.writeLocalTimeBody(z.DateTime.DateTime.Time); err != nil {
		return err
	}
	if err := w.writeZoneOffset(z.DateTime.Offset); err != nil {
		return err
	}
	if z.ZoneID != "" {
		if err := w.writeRawByte('['); err != nil {
			return err
		}
		if err := w.writeRawBytes(z.ZoneID); err != nil {
			return err
		}
		if err := w.writeRawByte(']'); err != nil {
			return err
		}
	}
	return w.writeRawByte('"')
}

// WriteInstant formats i as an OffsetDateTime at UTC, e.g.
// "1969-12-31T23:59:59Z" for epoch second -1.
func (w *Writer) WriteInstant(i Instant) error {
	return w.WriteOffsetDateTime(instantToOffsetDateTime(i, 0))
}

// WriteTimestampVal emits a numeric (non-string) decimal of the exact
// timestamp using the shortest trailing-zero-trimmed fractional width.
// nanoOfSecond outside [0, 1e9) fails with KindIllegalNanoseconds.
func (w *Writer) WriteTimestampVal(epochSecond int64, nanoOfSecond int32) error {
	if nanoOfSecond < 0 || nanoOfSecond >= 1000000000 {
		return &WriteError{Kind: KindIllegalNanoseconds, Msg: "jsoniter: nanosecond-of-second out of range"}
	}
	if err := w.writeInt64(epochSecond); err != nil {
		return err
	}
	if nanoOfSecond == 0 {
		return nil
	}
	digits := fmt.Sprintf("%09d", nanoOfSecond)
	for len(digits) > 1 && digits[len(digits)-1] == '0' {
		digits = digits[:len(digits)-1]
	}
	if err := w.writeRawByte('.'); err != nil {
		return err
	}
	return w.writeRawBytes(digits)
}

func (w *Writer) WriteYear(y Year) error {
	if err := w.writeRawByte('"'); err != nil {
		return err
	}
	if err := w.writeYearDigits(int32(y)); err != nil {
		return err
	}
	return w.writeRawByte('"')
}

func (w *Writer) WriteYearMonth(ym YearMonth) error {
	if err := w.writeRawByte('"'); err != nil {
		return err
	}
	if err := w.writeYearDigits(ym.Year); err != nil {
		return err
	}
	if err := w.writeRawByte('-'); err != nil {
		return err
	}
	if err := w.writeRawBytes(pad2(int(ym.Month))); err != nil {
		return err
	}
	return w.writeRawByte('"')
}

// WriteDuration formats d as "PT...": seconds=-61, nanos=999999999
// formats as "PT-1M-0.000000001S".
func (w *Writer) WriteDuration(d Duration) error {
	if err := w.writeRawBytes(`"PT`); err != nil {
		return err
	}
	sec := d.Seconds
	nano := d.Nanos
	// A negative span with a non-zero nano part is written from the whole
	// second nearer zero, followed by a negative fraction.
	whole := sec
	if sec < 0 && nano > 0 {
		whole++
	}
	hours := whole / 3600
	whole -= hours * 3600
	minutes := whole / 60
	whole -= minutes * 60

	if hours != 0 {
		if err := w.writeInt64(hours); err != nil {
			return err
		}
		if err := w.writeRawByte('H'); err != nil {
			return err
		}
	}
	if minutes != 0 {
		if err := w.writeInt64(minutes); err != nil {
			return err
		}
		if err := w.writeRawByte('M'); err != nil {
			return err
		}
	}
	if whole != 0 || nano != 0 || (hours == 0 && minutes == 0) {
		if whole == 0 && sec < 0 && nano > 0 {
			if err := w.writeRawByte('-'); err != nil {
				return err
			}
			if err := w.writeRawByte('0'); err != nil {
				return err
			}
		} else {
			if err := w.writeInt64(whole); err != nil {
				return err
			}
		}
		if nano != 0 {
			n := nano
			if sec < 0 && nano > 0 {
				n = 1000000000 - nano
			}
			if err := w.writeRawBytes(fmt.Sprintf(".%09d", n)); err != nil {
				return err
			}
		}
		if err := w.writeRawByte('S'); err != nil {
			return err
		}
	}
	return w.writeRawByte('"')
}

// WritePeriod formats p as "P...Y...M...D".
func (w *Writer) WritePeriod(p Period) error {
	if err := w.writeRawBytes(`"P`); err != nil {
		return err
	}
	if p.Years != 0 {
		if err := w.writeInt64(int64(p.Years)); err != nil {
			return err
		}
		if err := w.writeRawByte('Y'); err != nil {
			return err
		}
	}
	if p.Months != 0 {
		if err := w.writeInt64(int64(p.Months)); err != nil {
			return err
		}
		if err := w.writeRawByte('M'); err != nil {
			return err
		}
	}
	if p.Days != 0 || (p.Years == 0 && p.Months == 0) {
		if err := w.writeInt64(int64(p.Days)); err != nil {
			return err
		}
		if err := w.writeRawByte('D'); err != nil {
			return err
		}
	}
	return w.writeRawByte('"')
}

// UUID is a 128-bit value formatted as the fixed 8-4-4-4-12 hex-digit
// grammar, the same shape as the rest of this file rather than a
// delegate to a UUID library.
type UUID [16]byte

// ReadUUID parses the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx"
// form, reusing text.go's base16 nibble table (decodeBase16Digit) the same
// way readZoneOffset reuses readDigitsN for its own fixed-width runs.
func (r *Reader) ReadUUID() (UUID, error) {
	if err := r.expectOpenQuote(); err != nil {
		return UUID{}, err
	}
	var out UUID
	groupLens := [5]int{4, 2, 2, 2, 6}
	pos := 0
	for gi, glen := range groupLens {
		if gi > 0 {
			if err := r.expectByte('-', KindIllegalUUID, "UUID"); err != nil {
				return UUID{}, err
			}
		}
		for i := 0; i < glen; i++ {
			hi, err := r.nextByteRaw()
			if err != nil {
				return UUID{}, r.endOfInputErr("unexpected end of input in UUID")
			}
			hiNib, ok := decodeBase16Digit(hi)
			if !ok {
				return UUID{}, r.err(KindIllegalUUID, "jsoniter: illegal UUID hex digit")
			}
			lo, err := r.nextByteRaw()
			if err != nil {
				return UUID{}, r.endOfInputErr("unexpected end of input in UUID")
			}
			loNib, ok := decodeBase16Digit(lo)
			if !ok {
				return UUID{}, r.err(KindIllegalUUID, "jsoniter: illegal UUID hex digit")
			}
			out[pos] = hiNib<<4 | loNib
			pos++
		}
	}
	if err := r.expectByte('"', KindIllegalUUID, "UUID"); err != nil {
		return UUID{}, err
	}
	return out, nil
}

// WriteUUID formats u in canonical lower-case hyphenated form.
func (w *Writer) WriteUUID(u UUID) error {
	if err := w.writeRawByte('"'); err != nil {
		return err
	}
	groupLens := [5]int{4, 2, 2, 2, 6}
	pos := 0
	for gi, glen := range groupLens {
		if gi > 0 {
			if err := w.writeRawByte('-'); err != nil {
				return err
			}
		}
		buf := make([]byte, glen*2)
		encodeBase16(buf, u[pos:pos+glen], true)
		if err := w.writeRawBytes2(buf); err != nil {
			return err
		}
		pos += glen
	}
	return w.writeRawByte('"')
}
