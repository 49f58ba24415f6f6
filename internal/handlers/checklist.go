package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"checklist_export/internal/models"
	"checklist_export/internal/render"
	"checklist_export/internal/repository/exports"
	"checklist_export/internal/services/checklist"
	auth "checklist_export/internal/transport/auth"
	"checklist_export/internal/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type generateRequest struct {
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	ProcessoNr string `json:"processo_nr"`
	Credor     string `json:"credor"`
	Vigencia   string `json:"vigencia"`
}

// Generate computes the checklist for one year/month, renders the workbook,
// stores it in S3 and records the export in Mongo. With ?download=1 the
// workbook bytes are streamed back instead of the JSON summary.
func (h *Handlers) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.JSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "use POST"})
		return
	}

	var req generateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(&req); err != nil {
		h.Logger.Printf("[CHECKLIST][REQ][ERR] bad JSON: %v", err)
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": "bad JSON: " + err.Error()})
		return
	}
	if req.Year < 2000 || req.Year > 2200 {
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": "year out of range"})
		return
	}
	if req.Month < 1 || req.Month > 12 {
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": "month must be 1-12"})
		return
	}
	if req.Credor == "" {
		req.Credor = h.Checklist.Config().AgencyName
	}
	month := time.Month(req.Month)

	start := time.Now()
	ctx := r.Context()

	docs, err := h.Tickets.Get(ctx)
	if err != nil {
		h.Logger.Printf("[CHECKLIST][ERR] fetch tickets: %v", err)
		h.JSON(w, http.StatusInternalServerError, map[string]string{"error": "fetch tickets: " + err.Error()})
		return
	}

	filtered := checklist.FilterPeriod(docs, req.Year, month)

	rep, err := h.Checklist.Generate(filtered, models.Header{
		ProcessoNr: req.ProcessoNr,
		Credor:     req.Credor,
		Vigencia:   req.Vigencia,
		Periodo:    utils.PeriodLabel(req.Year, month),
	})
	if err != nil {
		var dataErr *checklist.DataError
		switch {
		case errors.Is(err, checklist.ErrEmptyPeriod):
			h.Logger.Printf("[CHECKLIST][EMPTY] year=%d month=%d", req.Year, req.Month)
			h.JSON(w, http.StatusOK, map[string]any{
				"status": "empty",
				"year":   req.Year,
				"month":  req.Month,
			})
		case errors.As(err, &dataErr):
			h.Logger.Printf("[CHECKLIST][ERR] data: %v", err)
			h.JSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":  "invalid ticket data",
				"ticket": dataErr.Ticket,
				"field":  dataErr.Field,
			})
		default:
			h.Logger.Printf("[CHECKLIST][ERR] generate: %v", err)
			h.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return
	}

	data, err := render.Checklist(rep)
	if err != nil {
		h.Logger.Printf("[CHECKLIST][ERR] render: %v", err)
		h.JSON(w, http.StatusInternalServerError, map[string]string{"error": "render: " + err.Error()})
		return
	}

	fileName := utils.ChecklistFileName(req.Year, month)
	key := fmt.Sprintf("checklists/%s-%s", uuid.NewString(), fileName)

	info, err := h.Uploader.Upload(ctx, key, data, xlsxContentType)
	if err != nil {
		h.Logger.Printf("[CHECKLIST][ERR] upload: %v", err)
		h.JSON(w, http.StatusInternalServerError, map[string]string{"error": "store checklist: " + err.Error()})
		return
	}

	rec := exports.Record{
		Year:      req.Year,
		Month:     req.Month,
		Status:    "generated",
		Tickets:   rep.TicketCount,
		Lines:     len(rep.Lines),
		Bucket:    &info.Bucket,
		Key:       &info.Key,
		SizeBytes: &info.SizeBytes,
		Bruto:     rep.GrandTotal.ValorBruto,
		Deducao:   rep.GrandTotal.Deducao,
		Liquido:   rep.GrandTotal.Liquido,
	}
	if userID, errGet := auth.GetUserID(ctx); errGet == nil {
		rec.UserID = &userID
	}

	ins, err := exports.InsertExportRecord(ctx, h.Mongo, rec)
	if err != nil {
		h.Logger.Printf("[CHECKLIST][ERR] record insert: %v", err)
		h.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	h.Logger.Printf("[CHECKLIST][OK] year=%d month=%d tickets=%d lines=%d key=%q took=%s",
		req.Year, req.Month, rep.TicketCount, len(rep.Lines), info.Key, time.Since(start))

	if r.URL.Query().Get("download") == "1" {
		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="`+fileName+`"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	h.JSON(w, http.StatusCreated, map[string]any{
		"id":          ins.InsertedID,
		"bucket":      info.Bucket,
		"key":         info.Key,
		"size_bytes":  info.SizeBytes,
		"tickets":     rep.TicketCount,
		"lines":       len(rep.Lines),
		"valor_bruto": rep.GrandTotal.ValorBruto,
		"deducao":     rep.GrandTotal.Deducao,
		"liquido":     rep.GrandTotal.Liquido,
	})
}
