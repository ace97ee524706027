package dataset_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/letitsparse/dos/core"
	"github.com/letitsparse/dos/dataset"
	"github.com/letitsparse/dos/feasibility"
	"github.com/letitsparse/dos/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWrite_HeaderAndLayout pins the persisted column order and names.
func TestWrite_HeaderAndLayout(t *testing.T) {
	var buf bytes.Buffer
	s := core.Derive(1000, 500, 200, 0.01, 0.05)

	require.NoError(t, dataset.Write(&buf, []core.Scenario{s}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		"rows_left,cols_left,cols_right,density_left,density_right,nnz_left,nnz_right",
		lines[0])
	assert.Equal(t, "1000,500,200,0.01,0.05,5000,5000", lines[1])
}

// TestReadWrite_RoundTrip persists a filtered candidate batch to disk and
// reads it back unchanged.
func TestReadWrite_RoundTrip(t *testing.T) {
	in, err := sampler.Generate(3000, sampler.WithSeed(42))
	require.NoError(t, err)
	scs := feasibility.Filter(in)
	require.NotEmpty(t, scs)

	path := filepath.Join(t.TempDir(), "candidates.csv")
	require.NoError(t, dataset.WriteFile(path, scs))

	got, err := dataset.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, scs, got)
}

// TestReadLabeled_RoundTrip round-trips the nine-column benchmark table.
func TestReadLabeled_RoundTrip(t *testing.T) {
	rows := []dataset.Labeled{
		{Scenario: core.Derive(1000, 500, 200, 0.01, 0.05), SMSMLatency: 1234.5, SMDMLatency: 987},
		{Scenario: core.Derive(2000, 300, 100, 0.02, 0.1), SMSMLatency: 55, SMDMLatency: 89.25},
	}

	var buf bytes.Buffer
	require.NoError(t, dataset.WriteLabeled(&buf, rows))

	head := strings.SplitN(buf.String(), "\n", 2)[0]
	assert.True(t, strings.HasSuffix(head, "smsm_total_latency,smdm_total_latency"))

	got, err := dataset.ReadLabeled(&buf)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

// TestRead_BadHeader rejects tables with a foreign or missing header.
func TestRead_BadHeader(t *testing.T) {
	_, err := dataset.Read(strings.NewReader("a,b,c,d,e,f,g\n1,2,3,4,5,6,7\n"))
	assert.ErrorIs(t, err, dataset.ErrBadHeader)

	_, err = dataset.Read(strings.NewReader(""))
	assert.ErrorIs(t, err, dataset.ErrBadHeader)
}

// TestRead_BadRecord rejects rows with unparseable fields or wrong width.
func TestRead_BadRecord(t *testing.T) {
	const head = "rows_left,cols_left,cols_right,density_left,density_right,nnz_left,nnz_right\n"

	_, err := dataset.Read(strings.NewReader(head + "x,500,200,0.01,0.05,5000,5000\n"))
	assert.ErrorIs(t, err, dataset.ErrBadRecord, "non-numeric rows_left")

	_, err = dataset.Read(strings.NewReader(head + "1000,500,200\n"))
	assert.ErrorIs(t, err, dataset.ErrBadRecord, "short record")
}

// TestRead_EmptyTable accepts a header-only table as a valid empty corpus.
func TestRead_EmptyTable(t *testing.T) {
	const head = "rows_left,cols_left,cols_right,density_left,density_right,nnz_left,nnz_right\n"

	got, err := dataset.Read(strings.NewReader(head))
	require.NoError(t, err)
	assert.Empty(t, got, "all-rejected filter output is a valid dataset")
}
