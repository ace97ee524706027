package dataset

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/samber/lo"
)

// doePayloadStartLine is the first line of the DOE tool's report that
// carries selected row indices; the preceding lines are banner text.
const doePayloadStartLine = 5

// digitRun matches one decimal integer inside a DOE report line.
var digitRun = regexp.MustCompile(`[0-9]+`)

// Complement returns every row of rows whose position is NOT named in train.
//
// train holds 1-based row indices as produced by the external
// design-of-experiments tool; they are converted to 0-based here and nowhere
// else. Output preserves the input row order, so the resulting test set
// lines up with the filtered table on disk.
//
// Errors:
//   - ErrIndexOutOfRange — an index outside [1, len(rows)].
//   - ErrDuplicateIndex  — a repeated index.
func Complement[T any](rows []T, train []int) ([]T, error) {
	if len(lo.Uniq(train)) != len(train) {
		return nil, ErrDuplicateIndex
	}

	drop := make(map[int]bool, len(train))
	for _, idx := range train {
		if idx < 1 || idx > len(rows) {
			return nil, fmt.Errorf("index %d not in [1,%d]: %w", idx, len(rows), ErrIndexOutOfRange)
		}
		drop[idx-1] = true // 1-based on the wire, 0-based internally
	}

	out := make([]T, 0, len(rows)-len(train))
	for i, row := range rows {
		if !drop[i] {
			out = append(out, row)
		}
	}

	return out, nil
}

// ParseTrainIndices extracts the 1-based training row indices from a DOE
// tool report piped on r.
//
// The report format: four banner lines, then one line per design block,
// each holding a block label followed by the selected row indices. The
// label (the first integer on each line) is skipped; the remaining integers
// are collected in order, still 1-based — Complement owns the conversion.
func ParseTrainIndices(r io.Reader) ([]int, error) {
	var (
		indices []int
		lineNo  int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		if lineNo < doePayloadStartLine {
			continue
		}
		runs := digitRun.FindAllString(sc.Text(), -1)
		if len(runs) == 0 {
			continue
		}
		for _, run := range runs[1:] { // runs[0] is the block label
			idx, err := strconv.Atoi(run)
			if err != nil {
				return nil, fmt.Errorf("dataset: line %d: %v: %w", lineNo, err, ErrBadRecord)
			}
			indices = append(indices, idx)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}

	return indices, nil
}
