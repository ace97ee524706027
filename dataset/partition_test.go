package dataset_test

import (
	"strings"
	"testing"

	"github.com/letitsparse/dos/core"
	"github.com/letitsparse/dos/dataset"
	"github.com/letitsparse/dos/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestComplement_Basic drops the named 1-based rows and keeps order.
func TestComplement_Basic(t *testing.T) {
	rows := []string{"r1", "r2", "r3", "r4", "r5"}

	test, err := dataset.Complement(rows, []int{2, 5})
	require.NoError(t, err)

	assert.Equal(t, []string{"r1", "r3", "r4"}, test)
}

// TestComplement_Completeness verifies the partition property: |test| = M-k
// and train ∪ test covers every row exactly once.
func TestComplement_Completeness(t *testing.T) {
	scs, err := sampler.Generate(500, sampler.WithSeed(13))
	require.NoError(t, err)

	// Positions as payload so each output row identifies its source index.
	rows := make([]int, len(scs))
	for i := range rows {
		rows[i] = i
	}

	train := []int{1, 7, 100, 250, 499, 500}
	test, err := dataset.Complement(rows, train)
	require.NoError(t, err)
	require.Len(t, test, len(rows)-len(train))

	seen := make(map[int]bool, len(rows))
	for _, idx := range train {
		seen[idx-1] = true
	}
	for _, pos := range test {
		assert.False(t, seen[pos], "row %d in both train and test", pos)
		seen[pos] = true
	}
	assert.Len(t, seen, len(rows), "train and test must cover all rows")
}

// TestComplement_AllRowsTrained yields an empty, valid test set.
func TestComplement_AllRowsTrained(t *testing.T) {
	test, err := dataset.Complement([]string{"a", "b"}, []int{1, 2})
	require.NoError(t, err)
	assert.Empty(t, test)
}

// TestComplement_Errors verifies range and duplicate validation on the
// 1-based convention: index 0 and index M+1 are both out of range.
func TestComplement_Errors(t *testing.T) {
	rows := []int{10, 20, 30}

	_, err := dataset.Complement(rows, []int{0})
	assert.ErrorIs(t, err, dataset.ErrIndexOutOfRange, "0 is not a valid 1-based index")

	_, err = dataset.Complement(rows, []int{4})
	assert.ErrorIs(t, err, dataset.ErrIndexOutOfRange)

	_, err = dataset.Complement(rows, []int{2, 2})
	assert.ErrorIs(t, err, dataset.ErrDuplicateIndex)
}

// TestParseTrainIndices_DOEReport parses the banner-plus-blocks report shape
// emitted by the experiment-design tool.
func TestParseTrainIndices_DOEReport(t *testing.T) {
	report := strings.Join([]string{
		"D-optimal design",
		"candidates: 12",
		"criterion: 0.8321",
		"",
		"1) 3 7 11",
		"2) 1 9",
		"3) 12",
	}, "\n")

	got, err := dataset.ParseTrainIndices(strings.NewReader(report))
	require.NoError(t, err)

	assert.Equal(t, []int{3, 7, 11, 1, 9, 12}, got, "block labels skipped, indices kept 1-based")
}

// TestParseTrainIndices_BannerOnly returns no indices for a report with no
// payload lines.
func TestParseTrainIndices_BannerOnly(t *testing.T) {
	got, err := dataset.ParseTrainIndices(strings.NewReader("a\nb\nc\nd\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestParseTrainIndices_FeedsComplement wires the parser output through the
// partition boundary end to end.
func TestParseTrainIndices_FeedsComplement(t *testing.T) {
	rows := []core.Scenario{
		core.Derive(10, 10, 10, 0.1, 0.1),
		core.Derive(20, 20, 20, 0.1, 0.1),
		core.Derive(30, 30, 30, 0.1, 0.1),
	}
	report := "x\nx\nx\nx\n1) 2\n"

	train, err := dataset.ParseTrainIndices(strings.NewReader(report))
	require.NoError(t, err)

	test, err := dataset.Complement(rows, train)
	require.NoError(t, err)
	assert.Equal(t, []core.Scenario{rows[0], rows[2]}, test)
}
