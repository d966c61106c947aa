// Package sample holds decoded telemetry samples.
//
// A Sample is an ordered mapping from field name to value.TypedValue. The
// order is the order in which fields were first set, which for decoded
// files is the record layout order. Samples decoded from files always carry
// a "time" field holding epoch seconds as int64.
package sample

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"

	"github.com/arloliu/luxdta/value"
)

// TimeField is the name of the epoch-seconds field of file-derived samples.
const TimeField = "time"

// Sample is an ordered name to TypedValue mapping.
type Sample struct {
	names  []string
	values []value.TypedValue
	index  map[string]int
}

// New creates an empty sample with room for capacity fields.
func New(capacity int) *Sample {
	return &Sample{
		names:  make([]string, 0, capacity),
		values: make([]value.TypedValue, 0, capacity),
		index:  make(map[string]int, capacity),
	}
}

// Set stores v under name. Setting an existing name replaces its value and
// keeps its position.
func (s *Sample) Set(name string, v value.TypedValue) {
	if i, ok := s.index[name]; ok {
		s.values[i] = v
		return
	}
	if s.index == nil {
		s.index = make(map[string]int)
	}
	s.index[name] = len(s.names)
	s.names = append(s.names, name)
	s.values = append(s.values, v)
}

// SetTime stores the epoch-seconds time field.
func (s *Sample) SetTime(epoch int64) {
	s.Set(TimeField, value.Of(epoch, ""))
}

// Get returns the value stored under name.
func (s *Sample) Get(name string) (value.TypedValue, bool) {
	i, ok := s.index[name]
	if !ok {
		return value.TypedValue{}, false
	}

	return s.values[i], true
}

// Has reports whether name is present.
func (s *Sample) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Time returns the epoch-seconds time field.
func (s *Sample) Time() (int64, bool) {
	v, ok := s.Get(TimeField)
	if !ok {
		return 0, false
	}

	return v.Int64()
}

// Len returns the number of fields.
func (s *Sample) Len() int { return len(s.names) }

// Names returns the field names in order.
func (s *Sample) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)

	return out
}

// All iterates fields in order.
func (s *Sample) All() iter.Seq2[string, value.TypedValue] {
	return func(yield func(string, value.TypedValue) bool) {
		for i, name := range s.names {
			if !yield(name, s.values[i]) {
				return
			}
		}
	}
}

// Delete removes name, preserving the order of the remaining fields.
func (s *Sample) Delete(name string) {
	i, ok := s.index[name]
	if !ok {
		return
	}
	delete(s.index, name)
	s.names = append(s.names[:i], s.names[i+1:]...)
	s.values = append(s.values[:i], s.values[i+1:]...)
	for j := i; j < len(s.names); j++ {
		s.index[s.names[j]] = j
	}
}

// MarshalJSON encodes the sample as an object in field order:
// {"time": {"value": ..., "unit": ""}, "TVL": {...}}.
func (s *Sample) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range s.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object written by MarshalJSON, keeping key order.
func (s *Sample) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("sample: expected object, got %v", tok)
	}

	out := New(8)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("sample: expected field name, got %v", tok)
		}

		var v value.TypedValue
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("sample: field %q: %w", name, err)
		}
		out.Set(name, v)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = *out

	return nil
}
