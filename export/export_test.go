package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/luxdta/errs"
	"github.com/arloliu/luxdta/sample"
	"github.com/arloliu/luxdta/value"
)

func newSample(epoch int64, fields ...any) *sample.Sample {
	s := sample.New(len(fields)/2 + 1)
	s.SetTime(epoch)
	for i := 0; i+1 < len(fields); i += 2 {
		s.Set(fields[i].(string), value.Of(fields[i+1], ""))
	}

	return s
}

func testSeries() sample.Series {
	a := newSample(1700000000, "HUP", true, "Mode", "Party", "count", 12)
	a.Set("TVL", value.Of(30.5, "°C"))
	a.Set("TRL", value.Of(25.0, "°C"))

	b := newSample(1700000060, "HUP", false, "Mode", "true", "count", -3)
	b.Set("TVL", value.Of(31.0, "°C"))
	b.Set("TRL", value.Of(24.8, "°C"))

	return sample.Series{a, b}
}

func requireSameSeries(t *testing.T, want, got sample.Series) {
	t.Helper()

	require.Len(t, got, len(want))
	for i := range want {
		require.Equal(t, want[i].Names(), got[i].Names(), "sample %d", i)
		for name, v := range want[i].All() {
			g, ok := got[i].Get(name)
			require.True(t, ok, name)
			require.Truef(t, v.Equal(g), "sample %d field %s: want %v, got %v", i, name, v, g)
		}
	}
}

// ==============================================================================
// Encode / Decode
// ==============================================================================

func TestRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, testSeries(), format))

			got, err := Decode(&buf, format)
			require.NoError(t, err)
			requireSameSeries(t, testSeries(), got)
		})
	}
}

func TestYAMLLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sample.Series{testSeries()[0]}, FormatYAML))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "- time: {value: 1700000000, unit: \"\"}\n"), out)
	require.Contains(t, out, "TRL: {value: 25.0, unit: °C}")
	require.Contains(t, out, "Mode: {value: Party, unit: \"\"}")
}

func TestEncodeRequiresTime(t *testing.T) {
	s := sample.New(1)
	s.Set("TVL", value.Of(1.0, ""))

	for _, format := range []Format{FormatJSON, FormatYAML} {
		err := Encode(&bytes.Buffer{}, sample.Series{s}, format)
		require.ErrorIs(t, err, errs.ErrMissingTime)
	}
}

func TestEncodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, nil, FormatJSON))
	require.Equal(t, "[]\n", buf.String())

	got, err := Decode(&buf, FormatJSON)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestDecodeSkipsNulls(t *testing.T) {
	in := `[{"time": {"value": 1700000000, "unit": ""}, "gone": null, "TVL": {"value": null, "unit": "°C"}, "TRL": {"value": 2.5, "unit": "°C"}}]`

	got, err := Decode(strings.NewReader(in), FormatJSON)
	require.NoError(t, err)
	require.Equal(t, []string{"time", "TRL"}, got[0].Names())
}

func TestDecodeRequiresTime(t *testing.T) {
	_, err := Decode(strings.NewReader(`[{"TVL": {"value": 1, "unit": ""}}]`), FormatJSON)
	require.ErrorIs(t, err, errs.ErrMissingTime)

	_, err = Decode(strings.NewReader(`[null]`), FormatJSON)
	require.ErrorIs(t, err, errs.ErrMissingTime)

	_, err = Decode(strings.NewReader("- TVL: {value: 1, unit: \"\"}\n"), FormatYAML)
	require.ErrorIs(t, err, errs.ErrMissingTime)
}

func TestDecodeYAMLShape(t *testing.T) {
	_, err := Decode(strings.NewReader("time: 1\n"), FormatYAML)
	require.Error(t, err)

	got, err := Decode(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestFormats(t *testing.T) {
	for path, want := range map[string]Format{
		"out.json":         FormatJSON,
		"out.JSON":         FormatJSON,
		"out.yaml":         FormatYAML,
		"out.yml":          FormatYAML,
		"dir/out.json.zst": FormatJSON,
		"out.yaml.lz4":     FormatYAML,
	} {
		got, err := FormatFor(path)
		require.NoError(t, err, path)
		require.Equal(t, want, got, path)
	}

	for _, path := range []string{"out.csv", "out", "out.zst"} {
		_, err := FormatFor(path)
		require.ErrorIs(t, err, errs.ErrUnsupportedFormat, path)
	}

	err := Encode(&bytes.Buffer{}, nil, Format(9))
	require.ErrorIs(t, err, errs.ErrUnsupportedFormat)
}

// ==============================================================================
// Files
// ==============================================================================

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.json", "b.yaml", "nested/c.json.zst", "d.yml.s2", "e.json.lz4"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, Save(path, testSeries()))

			got, err := Load(path)
			require.NoError(t, err)
			requireSameSeries(t, testSeries(), got)
		})
	}
}

func TestSaveCompresses(t *testing.T) {
	dir := t.TempDir()
	var series sample.Series
	for i := range 500 {
		series = append(series, newSample(int64(1700000000+60*i), "TVL", 30.5, "HUP", i%2 == 0))
	}

	plain := filepath.Join(dir, "day.json")
	packed := filepath.Join(dir, "day.json.zst")
	require.NoError(t, Save(plain, series))
	require.NoError(t, Save(packed, series))

	ps, err := os.Stat(plain)
	require.NoError(t, err)
	zs, err := os.Stat(packed)
	require.NoError(t, err)
	require.Less(t, zs.Size(), ps.Size()/4)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestMerge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")

	added, err := Merge(path, sample.Series{
		newSample(120, "TVL", 2.0),
		newSample(60, "TVL", 1.0),
	})
	require.NoError(t, err)
	require.Equal(t, 2, added)

	added, err = Merge(path, sample.Series{
		newSample(180, "TVL", 3.0),
		newSample(60, "TVL", 99.0),
		newSample(0, "TVL", 0.5),
	})
	require.NoError(t, err)
	require.Equal(t, 2, added)

	got, err := Load(path)
	require.NoError(t, err)
	require.Len(t, got, 4)

	var times []int64
	for _, s := range got {
		ts, _ := s.Time()
		times = append(times, ts)
	}
	require.Equal(t, []int64{0, 60, 120, 180}, times)

	v, _ := got[1].Get("TVL")
	f, _ := v.Float64()
	require.InDelta(t, 1.0, f, 1e-9, "existing sample wins over a duplicate time")
}

func TestMergeCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Merge(path, sample.Series{newSample(1, "TVL", 1.0)})
	require.Error(t, err)
}
