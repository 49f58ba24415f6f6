package handlers

import (
	"net/http"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"

	"checklist_export/internal/repository/exports"
)

// Records lists past checklist exports, newest first. Optional year/month
// query params restrict the list to one period.
func (h *Handlers) Records(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.JSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "use GET"})
		return
	}

	if id := r.URL.Query().Get("id"); id != "" {
		rec, err := exports.FindExportRecordByID(r.Context(), h.Mongo, id)
		if err != nil {
			h.JSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		h.JSON(w, http.StatusOK, rec)
		return
	}

	filter := bson.M{}
	if y, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil {
		filter["year"] = y
	}
	if m, err := strconv.Atoi(r.URL.Query().Get("month")); err == nil {
		filter["month"] = m
	}

	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
	skip, _ := strconv.ParseInt(r.URL.Query().Get("skip"), 10, 64)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	recs, total, err := exports.ListExportRecords(r.Context(), h.Mongo, filter, limit, skip)
	if err != nil {
		h.Logger.Printf("[RECORDS][ERR] list: %v", err)
		h.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	h.JSON(w, http.StatusOK, map[string]any{
		"total":   total,
		"records": recs,
	})
}
