package v1

import (
	"bytes"
	"encoding/csv"
	"log/slog"
	"net/http"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/transcript_extractor/internal/domain"
)

type ResultsHandler struct {
	log     *slog.Logger
	results ResultsProvider
	reports ReportGenerator
}

func NewResultsHandler(log *slog.Logger, results ResultsProvider, reports ReportGenerator) *ResultsHandler {
	return &ResultsHandler{
		log:     log,
		results: results,
		reports: reports,
	}
}

func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.results.All())
}

func (h *ResultsHandler) GetResultsCSV(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer

	cw := csv.NewWriter(&buf)
	enc := csvutil.NewEncoder(cw)
	enc.AutoHeader = false

	if err := enc.EncodeHeader(domain.Record{}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for _, record := range h.results.All() {
		if err := enc.Encode(record); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="results.csv"`)
	w.Write(buf.Bytes())
}

func (h *ResultsHandler) GetResultsReport(w http.ResponseWriter, r *http.Request) {
	pdf, err := h.reports.GenerateReport(h.results.All())
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to generate report", slog.String("err", err.Error()))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="results.pdf"`)
	w.Write(pdf)
}
