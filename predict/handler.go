package predict

import (
	"encoding/json"
	"net/http"

	"github.com/letitsparse/dos/core"
)

// request carries the seven workload features, named as in the persisted
// dataset columns.
type request struct {
	RowsLeft     int     `json:"rows_left"`
	ColsLeft     int     `json:"cols_left"`
	ColsRight    int     `json:"cols_right"`
	DensityLeft  float64 `json:"density_left"`
	DensityRight float64 `json:"density_right"`
	NNZLeft      int64   `json:"nnz_left"`
	NNZRight     int64   `json:"nnz_right"`
}

// response mirrors Decision plus the operator-facing report string.
type response struct {
	SMSMLatency float64 `json:"smsm_latency_ms"`
	SMDMLatency float64 `json:"smdm_latency_ms"`
	Method      string  `json:"optim_method"`
	Report      string  `json:"report"`
}

// Handler serves strategy decisions over HTTP: POST a JSON request body with
// the seven features, receive both latency estimates and the chosen method.
func Handler(p *Predictor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)

			return
		}

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)

			return
		}

		s := core.Scenario{
			RowsLeft:     req.RowsLeft,
			ColsLeft:     req.ColsLeft,
			ColsRight:    req.ColsRight,
			DensityLeft:  req.DensityLeft,
			DensityRight: req.DensityRight,
			NNZLeft:      req.NNZLeft,
			NNZRight:     req.NNZRight,
		}

		d, err := p.Decide(s)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response{
			SMSMLatency: d.SMSM,
			SMDMLatency: d.SMDM,
			Method:      d.Method,
			Report:      d.String(),
		})
	})
}
