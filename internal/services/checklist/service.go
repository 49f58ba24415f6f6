package checklist

import (
	"time"

	"checklist_export/internal/models"
	"checklist_export/internal/utils"
)

// Service runs one checklist computation over an in-memory ticket snapshot.
// It performs no I/O, no logging and holds no mutable state between runs;
// the caller owns fetching, caching and period selection.
type Service struct {
	cfg Config
}

func New(cfg Config) *Service {
	return &Service{cfg: cfg}
}

func (s *Service) Config() Config { return s.cfg }

// FilterPeriod selects the documents issued in the given year/month by
// parsing each emissao loosely. Documents with an unparseable date fall
// outside every period, mirroring how the original records were filtered.
func FilterPeriod(docs []map[string]any, year int, month time.Month) []map[string]any {
	var out []map[string]any
	for _, doc := range docs {
		t := utils.ParseDateLoose(doc["emissao"])
		if t == nil {
			continue
		}
		if t.Year() == year && t.Month() == month {
			out = append(out, doc)
		}
	}
	return out
}

// Generate runs the full pipeline on an already-fetched, already-filtered
// snapshot: normalize, calculate deductions, aggregate, assemble. An empty
// snapshot is the soft ErrEmptyPeriod state; malformed monetary data aborts
// the whole run with a DataError.
func (s *Service) Generate(docs []map[string]any, header models.Header) (*models.Report, error) {
	if len(docs) == 0 {
		return nil, ErrEmptyPeriod
	}

	tickets, err := Normalize(docs)
	if err != nil {
		return nil, err
	}

	ded := CalcDeductions(tickets, s.cfg)
	totals := Aggregate(tickets, ded, s.cfg)

	return AssembleReport(header, totals, ded, len(tickets)), nil
}
