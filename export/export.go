package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/arloliu/luxdta/compress"
	"github.com/arloliu/luxdta/errs"
	"github.com/arloliu/luxdta/sample"
)

// Format is a persisted series encoding.
type Format uint8

const (
	FormatJSON Format = iota + 1
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// ParseFormat parses "json", "yaml" or "yml".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnsupportedFormat, name)
	}
}

// FormatFor returns the format implied by path. A trailing compression
// extension is ignored, so "day.json.zst" is JSON.
func FormatFor(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(compress.TrimExtension(path)), ".")
	if ext == "" {
		return 0, fmt.Errorf("%w: %s has no extension", errs.ErrUnsupportedFormat, path)
	}

	return ParseFormat(ext)
}

// Encode writes series to w.
//
// Every sample must carry a time field. The output is an array of objects
// mapping field names to {"value": v, "unit": u}, in sample field order.
func Encode(w io.Writer, series sample.Series, format Format) error {
	for i, s := range series {
		if _, ok := s.Time(); !ok {
			return fmt.Errorf("%w: sample %d", errs.ErrMissingTime, i)
		}
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if series == nil {
			series = sample.Series{}
		}

		return enc.Encode(series)
	case FormatYAML:
		return encodeYAML(w, series)
	default:
		return fmt.Errorf("%w: %s", errs.ErrUnsupportedFormat, format)
	}
}

// Decode reads a series written by Encode. Null values are skipped.
//
// Returns:
//   - sample.Series: Samples in file order
//   - error: ErrMissingTime for a sample without time, ErrUnsupportedFormat
//     for an unknown format, or a syntax error of the format
func Decode(r io.Reader, format Format) (sample.Series, error) {
	var (
		series sample.Series
		err    error
	)
	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&series)
	case FormatYAML:
		series, err = decodeYAML(r)
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	for i, s := range series {
		if s == nil {
			return nil, fmt.Errorf("%w: sample %d is null", errs.ErrMissingTime, i)
		}
		dropNulls(s)
		if _, ok := s.Time(); !ok {
			return nil, fmt.Errorf("%w: sample %d", errs.ErrMissingTime, i)
		}
	}

	return series, nil
}

// Save writes series to path, creating missing parent directories. Format
// and compression follow the file extension.
func Save(path string, series sample.Series) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	codec, err := compress.GetCodec(compress.Detect(path))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, series, format); err != nil {
		return err
	}
	data, err := codec.Compress(buf.Bytes())
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return os.WriteFile(path, data, 0o644)
}

// Load reads a series saved by Save.
func Load(path string) (sample.Series, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	codec, err := compress.GetCodec(compress.Detect(path))
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data, err := codec.Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	series, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return series, nil
}

// Merge adds series to the file at path and rewrites it ordered by time.
//
// Samples whose time is already present in the file are dropped; the file
// wins. A missing file is created.
//
// Returns:
//   - int: Number of samples added
//   - error: Load, encode or write error
func Merge(path string, series sample.Series) (int, error) {
	existing, err := Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return 0, err
	}

	merged := sample.Merge(existing, series)
	if err := Save(path, merged); err != nil {
		return 0, err
	}

	return len(merged) - len(existing), nil
}

func dropNulls(s *sample.Sample) {
	for _, name := range s.Names() {
		if v, _ := s.Get(name); v.Value() == nil {
			s.Delete(name)
		}
	}
}
