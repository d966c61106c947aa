package value

import (
	"encoding/binary"
	"fmt"
	"math"
	"net/netip"
	"strconv"
	"strings"
	"time"

	"github.com/arloliu/luxdta/errs"
)

// Codecs for the custom field families found in controller registers.
var (
	// IPv4 packs a dotted-quad address into a big-endian int32.
	IPv4 = Codec{Decode: decodeIPv4, Encode: encodeIPv4}

	// TimeOfDay stores seconds since midnight, shown as H:MM or H:MM:SS.
	TimeOfDay = Codec{Decode: decodeTimeOfDay, Encode: encodeTimeOfDay}

	// TimeWindow stores two minute-of-day values, start in the low and end
	// in the high 16 bits, shown as H:MM-H:MM.
	TimeWindow = Codec{Decode: decodeTimeWindow, Encode: encodeTimeWindow}

	// MajorMinor stores major*100+minor, shown as major.minor.
	MajorMinor = Codec{Decode: decodeMajorMinor, Encode: encodeMajorMinor}

	// HalfHours stores (hours-1)*2.
	HalfHours = Codec{Decode: decodeHalfHours, Encode: encodeHalfHours}

	// Timestamp stores epoch seconds, shown as RFC 3339 in UTC.
	Timestamp = Codec{Decode: decodeTimestamp, Encode: encodeTimestamp}

	// Character stores a single character code.
	Character = Codec{Decode: func(raw int32) any { return string(rune(raw)) }}

	// ErrorCode stores a controller error number.
	ErrorCode = Codec{Decode: decodeErrorCode}
)

func mismatch(v any) error {
	return &errs.EncodeTypeMismatchError{GotKind: kindOf(v)}
}

func malformed(v string) error {
	return &errs.EncodeTypeMismatchError{GotKind: fmt.Sprintf("malformed string %q", v)}
}

func outOfRange(v any) error {
	return &errs.ValueOutOfRangeError{Value: fmt.Sprint(v)}
}

func decodeIPv4(raw int32) any {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(raw))

	return netip.AddrFrom4(b).String()
}

func encodeIPv4(v any) (int32, error) {
	s, ok := v.(string)
	if !ok {
		return 0, mismatch(v)
	}
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil || !addr.Is4() {
		return 0, malformed(s)
	}
	b := addr.As4()

	return int32(binary.BigEndian.Uint32(b[:])), nil
}

func decodeTimeOfDay(raw int32) any {
	hours := raw / 3600
	minutes := (raw / 60) % 60
	seconds := raw % 60

	s := fmt.Sprintf("%d:%02d", hours, minutes)
	if seconds > 0 {
		s += fmt.Sprintf(":%02d", seconds)
	}

	return s
}

func encodeTimeOfDay(v any) (int32, error) {
	s, ok := v.(string)
	if !ok {
		return 0, mismatch(v)
	}
	parts, err := splitInts(s, ":")
	if err != nil || len(parts) < 2 || len(parts) > 3 {
		return 0, malformed(s)
	}

	if len(parts) == 2 {
		parts = append(parts, 0)
	}
	if parts[0] < 0 || parts[0] > 23 || !isSexagesimal(parts[1]) || !isSexagesimal(parts[2]) {
		return 0, outOfRange(s)
	}

	return parts[0]*3600 + parts[1]*60 + parts[2], nil
}

func decodeTimeWindow(raw int32) any {
	low := raw & 0xFFFF
	high := int32(uint32(raw) >> 16)

	return fmt.Sprintf("%d:%02d-%d:%02d", low/60, low%60, high/60, high%60)
}

func encodeTimeWindow(v any) (int32, error) {
	s, ok := v.(string)
	if !ok {
		return 0, mismatch(v)
	}
	start, end, found := strings.Cut(s, "-")
	if !found {
		return 0, malformed(s)
	}
	lo, err := splitInts(start, ":")
	if err != nil || len(lo) != 2 {
		return 0, malformed(s)
	}
	hi, err := splitInts(end, ":")
	if err != nil || len(hi) != 2 {
		return 0, malformed(s)
	}

	startMin, ok := minuteOfDay(lo)
	if !ok {
		return 0, outOfRange(s)
	}
	endMin, ok := minuteOfDay(hi)
	if !ok {
		return 0, outOfRange(s)
	}

	return int32(uint32(endMin)<<16 | uint32(startMin)), nil
}

// minuteOfDay converts an hour/minute pair into 0..1439.
func minuteOfDay(hm []int32) (int32, bool) {
	if hm[0] < 0 || hm[0] > 23 || !isSexagesimal(hm[1]) {
		return 0, false
	}

	return hm[0]*60 + hm[1], true
}

func isSexagesimal(n int32) bool {
	return n >= 0 && n < 60
}

func decodeMajorMinor(raw int32) any {
	if raw <= 0 {
		return "0"
	}

	return fmt.Sprintf("%d.%d", raw/100, raw%100)
}

func encodeMajorMinor(v any) (int32, error) {
	s, ok := v.(string)
	if !ok {
		return 0, mismatch(v)
	}
	if s == "0" {
		return 0, nil
	}
	parts, err := splitInts(s, ".")
	if err != nil || len(parts) != 2 {
		return 0, malformed(s)
	}

	if parts[0] < 0 || parts[0] > math.MaxInt32/100-1 || parts[1] < 0 || parts[1] > 99 {
		return 0, outOfRange(s)
	}

	return parts[0]*100 + parts[1], nil
}

func decodeHalfHours(raw int32) any {
	return 1 + float64(raw)/2
}

func encodeHalfHours(v any) (int32, error) {
	var hours float64
	switch x := v.(type) {
	case int64:
		hours = float64(x)
	case float64:
		hours = x
	default:
		return 0, mismatch(v)
	}
	raw, ok := roundHalfUp((hours - 1) * 2)
	if !ok {
		return 0, outOfRange(v)
	}

	return raw, nil
}

func decodeTimestamp(raw int32) any {
	return time.Unix(int64(raw), 0).UTC().Format(time.RFC3339)
}

func encodeTimestamp(v any) (int32, error) {
	s, ok := v.(string)
	if !ok {
		return 0, mismatch(v)
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return 0, malformed(s)
	}

	sec := t.Unix()
	if sec < math.MinInt32 || sec > math.MaxInt32 {
		return 0, outOfRange(s)
	}

	return int32(sec), nil
}

func decodeErrorCode(raw int32) any {
	if raw == 718 {
		return "Max. Aussentemp. (718)"
	}

	return int64(raw)
}

func splitInts(s, sep string) ([]int32, error) {
	fields := strings.Split(strings.TrimSpace(s), sep)
	out := make([]int32, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseInt(strings.TrimSpace(f), 10, 32)
		if err != nil {
			return nil, err
		}
		out = append(out, int32(n))
	}

	return out, nil
}
