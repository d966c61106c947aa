package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/luxdta/config"
	"github.com/arloliu/luxdta/errs"
	"github.com/arloliu/luxdta/export"
	"github.com/arloliu/luxdta/internal/dtatest"
	"github.com/arloliu/luxdta/transport"
)

// isolate points the default config path at an empty directory and clears
// the LUXDTA_* variables.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvHost, "")
	t.Setenv(config.EnvPassword, "")
	t.Setenv(config.EnvLogLevel, "")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := newRootCommand(newApp())
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append(args, "--log-level", "error"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := root.ExecuteContext(ctx)

	return stdout.String(), err
}

func writeDump(t *testing.T, dir, name string, start int32) string {
	t.Helper()

	data := dtatest.New().
		SchemaHeader(2, 8).
		Category("Temperaturen").
		Analogue("TVL").
		DigitalIO(0b01, "VD1", "EVU").
		EndSchema().
		Int32(start).Int16(215).Uint16(0b01).
		Int32(start+60).Int16(220).Uint16(0b01).
		Bytes()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

// ==============================================================================
// decode
// ==============================================================================

func TestDecodePrintsJSON(t *testing.T) {
	isolate(t)
	path := writeDump(t, t.TempDir(), "a.dta", 1700000000)

	out, err := run(t, "decode", path)
	require.NoError(t, err)

	series, err := export.Decode(strings.NewReader(out), export.FormatJSON)
	require.NoError(t, err)
	require.Len(t, series, 2)
	require.Equal(t, []string{"time", "TVL", "VD1", "EVU"}, series[0].Names())
}

func TestDecodeSeveralFilesOrdersByTime(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	late := writeDump(t, dir, "late.dta", 1700000600)
	early := writeDump(t, dir, "early.dta", 1700000000)

	out, err := run(t, "decode", "--format", "yaml", late, early)
	require.NoError(t, err)

	series, err := export.Decode(strings.NewReader(out), export.FormatYAML)
	require.NoError(t, err)
	require.Len(t, series, 4)
	first, _ := series[0].Time()
	last, _ := series[3].Time()
	require.Equal(t, int64(1700000000), first)
	require.Equal(t, int64(1700000660), last)
}

func TestDecodeMergesIntoCompressedOutput(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	output := filepath.Join(dir, "out", "history.yaml")

	_, err := run(t, "decode", "-o", output, "--compress", "zstd", writeDump(t, dir, "a.dta", 1700000000))
	require.NoError(t, err)
	_, err = run(t, "decode", "-o", output, "--compress", "zstd", writeDump(t, dir, "b.dta", 1700000060))
	require.NoError(t, err)

	series, err := export.Load(output + ".zst")
	require.NoError(t, err)
	require.Len(t, series, 3)
}

func TestDecodeDropConstant(t *testing.T) {
	isolate(t)
	path := writeDump(t, t.TempDir(), "a.dta", 1700000000)

	out, err := run(t, "decode", "--drop-constant", path)
	require.NoError(t, err)

	series, err := export.Decode(strings.NewReader(out), export.FormatJSON)
	require.NoError(t, err)
	require.Equal(t, []string{"time", "TVL"}, series[0].Names())
}

func TestDecodeErrors(t *testing.T) {
	isolate(t)

	_, err := run(t, "decode")
	require.Error(t, err)

	_, err = run(t, "decode", filepath.Join(t.TempDir(), "missing.dta"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := writeDump(t, t.TempDir(), "a.dta", 1700000000)
	_, err = run(t, "decode", "--format", "csv", path)
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
}

// ==============================================================================
// config file
// ==============================================================================

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "luxdta.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format = \"yaml\"\ndrop_constant = true\n"), 0o600))
	path := writeDump(t, dir, "a.dta", 1700000000)

	out, err := run(t, "decode", "--config", cfgPath, path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "- time:"), out)
	require.NotContains(t, out, "VD1")

	out, err = run(t, "decode", "--config", cfgPath, "--format", "json", path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "["), out)
}

func TestMissingExplicitConfigFails(t *testing.T) {
	isolate(t)
	path := writeDump(t, t.TempDir(), "a.dta", 1700000000)

	_, err := run(t, "decode", "--config", filepath.Join(t.TempDir(), "nope.toml"), path)
	require.ErrorIs(t, err, os.ErrNotExist)
}

// ==============================================================================
// schema
// ==============================================================================

func TestSchemaCommand(t *testing.T) {
	isolate(t)
	path := writeDump(t, t.TempDir(), "a.dta", 1700000000)

	out, err := run(t, "schema", path)
	require.NoError(t, err)
	require.Contains(t, out, "version: DTA 9003")
	require.Contains(t, out, "record_width: 8")
	require.Contains(t, out, "fields: [time, TVL, VD1, EVU]")
	require.Contains(t, out, "kind: Analogue")
	require.Contains(t, out, "category: Temperaturen")
	require.Contains(t, out, "scale: 10")
	require.Contains(t, out, "inverted: true")
}

func TestSchemaCommandNeedsSchema(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "counted.dta")
	require.NoError(t, os.WriteFile(path, dtatest.New().CountedHeader(0, 0).Bytes(), 0o600))

	_, err := run(t, "schema", path)
	require.ErrorContains(t, err, "carry no schema")
}

// ==============================================================================
// live
// ==============================================================================

// controller answers Calculations reads and records Parameters writes.
type controller struct {
	ln     net.Listener
	mu     sync.Mutex
	writes [][2]int32
}

func newController(t *testing.T, calculations []int32) *controller {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	c := &controller{ln: ln}
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go c.serve(conn, calculations)
		}
	}()

	return c
}

func (c *controller) serve(conn net.Conn, calculations []int32) {
	defer conn.Close()

	word := func() (int32, error) {
		var b [4]byte
		_, err := io.ReadFull(conn, b[:])
		return int32(binary.BigEndian.Uint32(b[:])), err
	}

	for {
		cmd, err := word()
		if err != nil {
			return
		}
		arg, err := word()
		if err != nil {
			return
		}

		var out []byte
		put := func(v int32) { out = binary.BigEndian.AppendUint32(out, uint32(v)) }
		put(cmd)
		switch cmd {
		case transport.CmdReadCalculations:
			put(0)
			put(int32(len(calculations)))
			for _, v := range calculations {
				put(v)
			}
		case transport.CmdWriteParameter:
			val, err := word()
			if err != nil {
				return
			}
			c.mu.Lock()
			c.writes = append(c.writes, [2]int32{arg, val})
			c.mu.Unlock()
			put(val)
		}
		if _, err := conn.Write(out); err != nil {
			return
		}
	}
}

func (c *controller) hostPort(t *testing.T) (string, string) {
	host, port, err := net.SplitHostPort(c.ln.Addr().String())
	require.NoError(t, err)

	return host, port
}

func (c *controller) recorded() [][2]int32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([][2]int32(nil), c.writes...)
}

func TestLiveReadCalculations(t *testing.T) {
	isolate(t)
	raw := make([]int32, 12)
	raw[10] = 352
	host, port := newController(t, raw).hostPort(t)

	out, err := run(t, "live", "read", "calculations", "--host", host, "--tcp-port", port)
	require.NoError(t, err)

	series, err := export.Decode(strings.NewReader(out), export.FormatJSON)
	require.NoError(t, err)
	require.Len(t, series, 1)

	tvl, ok := series[0].Get("ID_WEB_Temperatur_TVL")
	require.True(t, ok)
	f, ok := tvl.Float64()
	require.True(t, ok)
	require.InDelta(t, 35.2, f, 1e-9)
	require.Equal(t, "°C", tvl.Unit())
}

func TestLiveWrite(t *testing.T) {
	isolate(t)
	ctrl := newController(t, nil)
	host, port := ctrl.hostPort(t)

	_, err := run(t, "live", "write", "--host", host, "--tcp-port", port,
		"ID_Einst_BWS_akt=49.5", "ID_Ba_Bw_akt=Off")
	require.NoError(t, err)
	require.Equal(t, [][2]int32{{2, 495}, {4, 4}}, ctrl.recorded())
}

func TestLiveWriteRejectsBeforeSending(t *testing.T) {
	isolate(t)
	ctrl := newController(t, nil)
	host, port := ctrl.hostPort(t)

	_, err := run(t, "live", "write", "--host", host, "--tcp-port", port,
		"ID_Einst_BWS_akt=49.5", "ID_Soll_BWS_akt=40")
	require.ErrorIs(t, err, errs.ErrNotWritable)
	require.Empty(t, ctrl.recorded())

	_, err = run(t, "live", "write", "--host", host, "--tcp-port", port, "ID_Einst_BWS_akt=1e10")
	require.ErrorIs(t, err, errs.ErrValueOutOfRange)
	require.Empty(t, ctrl.recorded())
}

func TestLiveRequiresHost(t *testing.T) {
	isolate(t)

	_, err := run(t, "live", "read")
	require.ErrorIs(t, err, errs.ErrInvalidConfig)

	_, err = run(t, "live", "read", "temperatures", "--host", "127.0.0.1")
	require.Error(t, err)
}

// ==============================================================================
// watch
// ==============================================================================

func TestWatchRequiresDirAndOutput(t *testing.T) {
	isolate(t)

	_, err := run(t, "watch")
	require.ErrorIs(t, err, errs.ErrInvalidConfig)

	_, err = run(t, "watch", t.TempDir())
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
}

func TestHandleDumpMergesIntoOutput(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	a := newApp()
	a.cfg.Output = filepath.Join(dir, "history.json")

	require.NoError(t, a.handleDump(context.Background(), writeDump(t, dir, "one.dta", 1700000000)))
	require.NoError(t, a.handleDump(context.Background(), writeDump(t, dir, "two.dta", 1700000060)))

	series, err := export.Load(a.cfg.Output)
	require.NoError(t, err)
	require.Len(t, series, 3)
}
