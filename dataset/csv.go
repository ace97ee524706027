package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/letitsparse/dos/core"
)

// header is the fixed unlabeled column layout. Order and names are part of
// the on-disk contract with downstream consumers.
var header = []string{
	"rows_left", "cols_left", "cols_right",
	"density_left", "density_right",
	"nnz_left", "nnz_right",
}

// labeledHeader appends the benchmark latency columns to header.
var labeledHeader = append(append([]string(nil), header...),
	"smsm_total_latency", "smdm_total_latency")

// Labeled is one benchmarked scenario: the candidate plus the measured total
// latency of each execution strategy, in milliseconds.
type Labeled struct {
	core.Scenario

	SMSMLatency float64 // sm×sm total latency
	SMDMLatency float64 // sm×dm total latency
}

// Write streams scenarios to w as a headed CSV table.
func Write(w io.Writer, scs []core.Scenario) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("dataset: write header: %w", err)
	}
	for i, s := range scs {
		if err := cw.Write(formatScenario(s)); err != nil {
			return fmt.Errorf("dataset: write row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteFile persists scenarios to path, creating or truncating it.
func WriteFile(path string, scs []core.Scenario) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	if err = Write(f, scs); err != nil {
		return err
	}

	return f.Close()
}

// Read parses a headed seven-column CSV table from r.
func Read(r io.Reader) ([]core.Scenario, error) {
	rows, err := readRows(r, header)
	if err != nil {
		return nil, err
	}

	out := make([]core.Scenario, len(rows))
	for i, rec := range rows {
		if out[i], err = parseScenario(rec); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	return out, nil
}

// ReadFile parses the table at path.
func ReadFile(path string) ([]core.Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// WriteLabeled streams labeled rows to w as a headed nine-column CSV table.
func WriteLabeled(w io.Writer, rows []Labeled) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(labeledHeader); err != nil {
		return fmt.Errorf("dataset: write header: %w", err)
	}
	for i, l := range rows {
		rec := append(formatScenario(l.Scenario),
			formatFloat(l.SMSMLatency), formatFloat(l.SMDMLatency))
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("dataset: write row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteLabeledFile persists labeled rows to path.
func WriteLabeledFile(path string, rows []Labeled) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	if err = WriteLabeled(f, rows); err != nil {
		return err
	}

	return f.Close()
}

// ReadLabeled parses a headed nine-column CSV table from r.
func ReadLabeled(r io.Reader) ([]Labeled, error) {
	rows, err := readRows(r, labeledHeader)
	if err != nil {
		return nil, err
	}

	out := make([]Labeled, len(rows))
	for i, rec := range rows {
		if out[i].Scenario, err = parseScenario(rec[:len(header)]); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if out[i].SMSMLatency, err = parseFloat(rec[len(header)]); err != nil {
			return nil, fmt.Errorf("row %d: smsm_total_latency: %w", i+1, err)
		}
		if out[i].SMDMLatency, err = parseFloat(rec[len(header)+1]); err != nil {
			return nil, fmt.Errorf("row %d: smdm_total_latency: %w", i+1, err)
		}
	}

	return out, nil
}

// ReadLabeledFile parses the labeled table at path.
func ReadLabeledFile(path string) ([]Labeled, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	return ReadLabeled(f)
}

// readRows consumes the header line, validates it against want, and returns
// the remaining records with the expected width enforced by encoding/csv.
func readRows(r io.Reader, want []string) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(want)

	got, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("missing header: %w", ErrBadHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrBadHeader)
	}
	for i := range want {
		if got[i] != want[i] {
			return nil, fmt.Errorf("column %d: got %q want %q: %w", i, got[i], want[i], ErrBadHeader)
		}
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrBadRecord)
	}

	return rows, nil
}

// formatScenario renders one scenario in persisted column order.
func formatScenario(s core.Scenario) []string {
	return []string{
		strconv.Itoa(s.RowsLeft),
		strconv.Itoa(s.ColsLeft),
		strconv.Itoa(s.ColsRight),
		formatFloat(s.DensityLeft),
		formatFloat(s.DensityRight),
		strconv.FormatInt(s.NNZLeft, 10),
		strconv.FormatInt(s.NNZRight, 10),
	}
}

// parseScenario parses one seven-field record.
func parseScenario(rec []string) (core.Scenario, error) {
	var (
		s   core.Scenario
		err error
	)
	if s.RowsLeft, err = parseInt(rec[0]); err != nil {
		return s, fmt.Errorf("rows_left: %w", err)
	}
	if s.ColsLeft, err = parseInt(rec[1]); err != nil {
		return s, fmt.Errorf("cols_left: %w", err)
	}
	if s.ColsRight, err = parseInt(rec[2]); err != nil {
		return s, fmt.Errorf("cols_right: %w", err)
	}
	if s.DensityLeft, err = parseFloat(rec[3]); err != nil {
		return s, fmt.Errorf("density_left: %w", err)
	}
	if s.DensityRight, err = parseFloat(rec[4]); err != nil {
		return s, fmt.Errorf("density_right: %w", err)
	}
	var n64 int64
	if n64, err = strconv.ParseInt(rec[5], 10, 64); err != nil {
		return s, fmt.Errorf("nnz_left: %v: %w", err, ErrBadRecord)
	}
	s.NNZLeft = n64
	if n64, err = strconv.ParseInt(rec[6], 10, 64); err != nil {
		return s, fmt.Errorf("nnz_right: %v: %w", err, ErrBadRecord)
	}
	s.NNZRight = n64

	return s, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%v: %w", err, ErrBadRecord)
	}

	return v, nil
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%v: %w", err, ErrBadRecord)
	}

	return v, nil
}
