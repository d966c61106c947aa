package live

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/luxdta/errs"
	"github.com/arloliu/luxdta/format"
	"github.com/arloliu/luxdta/value"
)

// ==============================================================================
// Tables
// ==============================================================================

func TestVectorTables(t *testing.T) {
	require.Equal(t, 268, Calculations().Len())
	require.Equal(t, 41, Visibilities().Len())
	require.Equal(t, parameterCount, Parameters().Len())

	require.Equal(t, "ID_WEB_Temperatur_TVL", Calculations().At(10).Name())
	require.Equal(t, "Desired_Room_Temperature", Calculations().At(267).Name())
	require.Equal(t, "ID_Visi_Temp_Ext_Energ", Visibilities().At(40).Name())
	require.Equal(t, "Unknown_Parameter_14", Parameters().At(14).Name())
}

func TestVectorNamesAreUnique(t *testing.T) {
	for _, v := range []*Vector{Parameters(), Calculations(), Visibilities()} {
		seen := make(map[string]int)
		for i, f := range v.Fields() {
			prev, dup := seen[f.Name()]
			assert.Falsef(t, dup, "%s: %q at %d and %d", v.Name(), f.Name(), prev, i)
			seen[f.Name()] = i
		}
	}
}

func TestVectorFieldLookup(t *testing.T) {
	v := Calculations()

	f, ok := v.Field("ID_WEB_Code_WP_akt")
	require.True(t, ok)
	require.Equal(t, format.KindSelection, f.Kind())
	require.Equal(t, 78, v.Position("ID_WEB_Code_WP_akt"))

	_, ok = v.Field("no_such_field")
	require.False(t, ok)
	require.Equal(t, -1, v.Position("no_such_field"))
}

func TestVectorFieldsIsCopy(t *testing.T) {
	fields := Visibilities().Fields()
	fields[0] = value.Base("changed", false)
	require.Equal(t, "ID_Visi_NieAnzeigen", Visibilities().At(0).Name())
}

// ==============================================================================
// Read path
// ==============================================================================

func TestCalculationsRead(t *testing.T) {
	raw := make([]int32, 270)
	raw[10] = 352           // TVL, 35.2 °C
	raw[78] = 41            // heatpump code LD5
	raw[80] = 5             // operation mode, no request
	raw[81] = 'V'           // firmware character
	raw[91] = -1062731518   // 192.168.1.2
	raw[95] = 1_700_000_000 // error timestamp
	raw[100] = 718
	raw[258] = 302
	raw[268] = 7
	raw[269] = -3

	s := Calculations().Read(raw)
	require.Equal(t, len(raw), s.Len())

	tvl, ok := s.Get("ID_WEB_Temperatur_TVL")
	require.True(t, ok)
	f, ok := tvl.Float64()
	require.True(t, ok)
	require.InDelta(t, 35.2, f, 1e-9)
	require.Equal(t, "°C", tvl.Unit())
	require.False(t, tvl.IsMutable())

	text := func(name string) string {
		v, ok := s.Get(name)
		require.True(t, ok, name)
		str, ok := v.Text()
		require.True(t, ok, name)

		return str
	}
	require.Equal(t, "LD5", text("ID_WEB_Code_WP_akt"))
	require.Equal(t, "no request", text("ID_WEB_WP_BZ_akt"))
	require.Equal(t, "V", text("ID_WEB_SoftStand_0"))
	require.Equal(t, "192.168.1.2", text("ID_WEB_AdresseIP_akt"))
	require.Equal(t, "2023-11-14T22:13:20Z", text("ID_WEB_ERROR_Time0"))
	require.Equal(t, "Max. Aussentemp. (718)", text("ID_WEB_ERROR_Nr0"))
	require.Equal(t, "3.2", text("RBE_Version"))

	extra, ok := s.Get("Unknown_268")
	require.True(t, ok)
	n, ok := extra.Int64()
	require.True(t, ok)
	require.Equal(t, int64(7), n)

	extra, ok = s.Get("Unknown_269")
	require.True(t, ok)
	n, _ = extra.Int64()
	require.Equal(t, int64(-3), n)

	_, hasTime := s.Time()
	require.False(t, hasTime)
}

func TestReadShorterThanSchema(t *testing.T) {
	s := Visibilities().Read([]int32{0, 1, 1})
	require.Equal(t, []string{"ID_Visi_NieAnzeigen", "ID_Visi_ImmerAnzeigen", "ID_Visi_Heizung"}, s.Names())

	v, _ := s.Get("ID_Visi_ImmerAnzeigen")
	b, ok := v.Bool()
	require.True(t, ok)
	require.True(t, b)
}

func TestReadEmpty(t *testing.T) {
	require.Equal(t, 0, Parameters().Read(nil).Len())
}

func TestParametersReadMutable(t *testing.T) {
	raw := make([]int32, parameterCount)
	raw[2] = 480
	raw[3] = 4

	s := Parameters().Read(raw)

	bws, _ := s.Get("ID_Einst_BWS_akt")
	require.True(t, bws.IsMutable())
	f, _ := bws.Float64()
	require.InDelta(t, 48.0, f, 1e-9)

	mode, _ := s.Get("ID_Ba_Hz_akt")
	require.True(t, mode.IsMutable())
	label, _ := mode.Text()
	require.Equal(t, "Off", label)

	lux, _ := s.Get("ID_Transfert_LuxNet")
	require.False(t, lux.IsMutable())
}

// ==============================================================================
// Write path
// ==============================================================================

func TestEncodeWrite(t *testing.T) {
	p := Parameters()

	req, err := p.EncodeWrite("ID_Einst_BWS_akt", 50.5)
	require.NoError(t, err)
	require.Equal(t, WriteRequest{Position: 2, Value: 505}, req)

	req, err = p.EncodeWrite("ID_Ba_Bw_akt", "Party")
	require.NoError(t, err)
	require.Equal(t, WriteRequest{Position: 4, Value: 2}, req)

	req, err = p.EncodeWrite("ID_Einst_BA_Kuehl_akt", "Automatic")
	require.NoError(t, err)
	require.Equal(t, WriteRequest{Position: 108, Value: 1}, req)
}

func TestEncodeWriteRoundTrip(t *testing.T) {
	p := Parameters()
	raw := make([]int32, parameterCount)
	raw[1] = -25

	s := p.Read(raw)
	v, ok := s.Get("ID_Einst_WK_akt")
	require.True(t, ok)
	require.NoError(t, v.Set(-1.5))

	req, err := p.EncodeWrite("ID_Einst_WK_akt", v)
	require.NoError(t, err)
	require.Equal(t, WriteRequest{Position: 1, Value: -15}, req)
}

func TestEncodeWriteErrors(t *testing.T) {
	p := Parameters()

	_, err := p.EncodeWrite("nope", 1)
	require.ErrorIs(t, err, errs.ErrFieldNotFound)

	_, err = p.EncodeWrite("ID_Soll_BWS_akt", 45.0)
	require.ErrorIs(t, err, errs.ErrNotWritable)

	_, err = Calculations().EncodeWrite("ID_WEB_Temperatur_TVL", 20.0)
	require.ErrorIs(t, err, errs.ErrNotWritable)

	_, err = p.EncodeWrite("ID_Ba_Hz_akt", "Sometimes")
	var notFound *errs.EncodeLabelNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "ID_Ba_Hz_akt", notFound.Field)
	require.Equal(t, "Sometimes", notFound.Label)

	_, err = p.EncodeWrite("ID_Einst_BWS_akt", "warm")
	var mismatch *errs.EncodeTypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, "ID_Einst_BWS_akt", mismatch.Field)
}

func TestEncodeBatchCollectsErrors(t *testing.T) {
	reqs, err := Parameters().EncodeBatch([]Assignment{
		{Name: "ID_Einst_BWS_akt", Value: 47.0},
		{Name: "missing", Value: 1},
		{Name: "ID_Ba_Hz_akt", Value: "Holidays"},
		{Name: "ID_Soll_BWS_akt", Value: 40.0},
		{Name: "ID_Ba_Bw_akt", Value: true},
	})

	require.Equal(t, []WriteRequest{
		{Position: 2, Value: 470},
		{Position: 3, Value: 3},
	}, reqs)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrFieldNotFound)
	require.ErrorIs(t, err, errs.ErrNotWritable)
	require.ErrorIs(t, err, errs.ErrEncodeTypeMismatch)
}

func TestEncodeBatchRejectsOutOfRange(t *testing.T) {
	p := Parameters()

	var assignments []Assignment
	for _, expr := range []string{"ID_Einst_WK_akt=NaN", "ID_Einst_WK_akt=1e10", "ID_Einst_BWS_akt=+Inf", "ID_Einst_BWS_akt=48"} {
		a, err := p.ParseAssignment(expr)
		require.NoError(t, err)
		assignments = append(assignments, a)
	}

	reqs, err := p.EncodeBatch(assignments)
	require.Equal(t, []WriteRequest{{Position: 2, Value: 480}}, reqs)
	require.ErrorIs(t, err, errs.ErrValueOutOfRange)

	var oor *errs.ValueOutOfRangeError
	require.ErrorAs(t, err, &oor)
	require.Equal(t, "ID_Einst_WK_akt", oor.Field)
}

func TestEncodeBatchEmpty(t *testing.T) {
	reqs, err := Parameters().EncodeBatch(nil)
	require.NoError(t, err)
	require.Empty(t, reqs)
}

func TestParseAssignment(t *testing.T) {
	p := Parameters()

	tests := []struct {
		expr string
		want Assignment
	}{
		{"ID_Einst_BWS_akt=48.5", Assignment{Name: "ID_Einst_BWS_akt", Value: 48.5}},
		{" ID_Einst_WK_akt = -2 ", Assignment{Name: "ID_Einst_WK_akt", Value: -2.0}},
		{"ID_Ba_Bw_akt=Party", Assignment{Name: "ID_Ba_Bw_akt", Value: "Party"}},
		{"ID_Transfert_LuxNet=3", Assignment{Name: "ID_Transfert_LuxNet", Value: 3.0}},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			a, err := p.ParseAssignment(tt.expr)
			require.NoError(t, err)
			require.Equal(t, tt.want, a)
		})
	}

	a, err := Visibilities().ParseAssignment("ID_Visi_Heizung=true")
	require.NoError(t, err)
	require.Equal(t, true, a.Value)
}

func TestParseAssignmentErrors(t *testing.T) {
	p := Parameters()

	_, err := p.ParseAssignment("no-equals-sign")
	require.ErrorIs(t, err, errs.ErrEncodeTypeMismatch)

	_, err = p.ParseAssignment("=5")
	require.ErrorIs(t, err, errs.ErrEncodeTypeMismatch)

	_, err = p.ParseAssignment("missing=5")
	require.ErrorIs(t, err, errs.ErrFieldNotFound)

	_, err = p.ParseAssignment("ID_Einst_BWS_akt=warm")
	var mismatch *errs.EncodeTypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, "ID_Einst_BWS_akt", mismatch.Field)

	_, err = Visibilities().ParseAssignment("ID_Visi_Heizung=maybe")
	require.ErrorIs(t, err, errs.ErrEncodeTypeMismatch)
}

func TestParseAssignmentFeedsBatch(t *testing.T) {
	p := Parameters()

	var assignments []Assignment
	for _, expr := range []string{"ID_Einst_BWS_akt=50", "ID_Ba_Hz_akt=Automatic"} {
		a, err := p.ParseAssignment(expr)
		require.NoError(t, err)
		assignments = append(assignments, a)
	}

	reqs, err := p.EncodeBatch(assignments)
	require.NoError(t, err)
	require.Equal(t, []WriteRequest{{Position: 2, Value: 500}, {Position: 3, Value: 0}}, reqs)
}
