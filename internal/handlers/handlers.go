package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"checklist_export/internal/adapters/uploader"
	"checklist_export/internal/cache"
	mg "checklist_export/internal/config/connections/mongo"
	"checklist_export/internal/config/connections/postgres"
	"checklist_export/internal/config/connections/s3"
	"checklist_export/internal/ports"
	"checklist_export/internal/repository/tickets"
	"checklist_export/internal/services/checklist"
)

type Handlers struct {
	Postgres *postgres.Postgres
	Mongo    *mg.Mongo
	S3       *s3.S3

	Tickets   *cache.TicketSnapshot
	Checklist *checklist.Service
	Uploader  ports.Uploader

	Logger *log.Logger
}

func New(pg *postgres.Postgres, m *mg.Mongo, s3c *s3.S3, cacheTTL time.Duration) *Handlers {
	h := &Handlers{
		Postgres:  pg,
		Mongo:     m,
		S3:        s3c,
		Checklist: checklist.New(checklist.DefaultConfig()),
		Logger:    log.Default(),
	}

	h.Tickets = cache.NewTicketSnapshot(tickets.NewRepo(m), cacheTTL)
	if s3c != nil {
		h.Uploader = uploader.NewS3Uploader(s3c.Client, s3c.Bucket)
	}

	return h
}

func (h *Handlers) JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
