package checklist

import (
	"github.com/shopspring/decimal"

	"checklist_export/internal/models"
)

// Totals is the aggregator output: one record per commitment line in
// first-seen order (the reserved agency line appended unless it appeared
// naturally), plus grand totals over all lines.
type Totals struct {
	Lines []models.CommitmentTotals
	Grand models.CommitmentTotals
}

// Aggregate groups tickets and deduction entries by commitment line.
//
// Gross accumulation skips blank empenhos entirely and folds tickets
// carrying the reserved empenho into the pooled agency line instead of
// counting them under a nominal line of their own. Liquido is derived for
// every line after all attribution, never set directly.
func Aggregate(tickets []models.Ticket, ded Deductions, cfg Config) Totals {
	byLine := make(map[string]*models.CommitmentTotals)
	var order []string

	line := func(empenho string) *models.CommitmentTotals {
		if lt, ok := byLine[empenho]; ok {
			return lt
		}
		lt := &models.CommitmentTotals{
			Empenho:    empenho,
			ValorBruto: decimal.Zero,
			Deducao:    decimal.Zero,
		}
		byLine[empenho] = lt
		order = append(order, empenho)
		return lt
	}

	for _, t := range tickets {
		if t.Empenho == "" {
			continue
		}
		if t.Empenho == cfg.AgencyEmpenho {
			// keeps the reserved line's first-seen position; its gross
			// comes from the pooled base below
			line(t.Empenho)
			continue
		}
		lt := line(t.Empenho)
		lt.ValorBruto = lt.ValorBruto.Add(t.Bruto())
	}

	if ded.AgencyBase.IsPositive() {
		lt := line(cfg.AgencyEmpenho)
		lt.ValorBruto = lt.ValorBruto.Add(ded.AgencyBase)
	}

	for _, e := range ded.Entries {
		if e.Empenho == "" {
			continue
		}
		lt := line(e.Empenho)
		if e.Category == models.CategoryMunicipal {
			// single pooled entry per run
			lt.Deducao = e.Valor
			continue
		}
		lt.Deducao = lt.Deducao.Add(e.Valor)
	}

	out := Totals{
		Lines: make([]models.CommitmentTotals, 0, len(order)),
		Grand: models.CommitmentTotals{
			ValorBruto: decimal.Zero,
			Deducao:    decimal.Zero,
			Liquido:    decimal.Zero,
		},
	}
	for _, empenho := range order {
		lt := byLine[empenho]
		lt.Liquido = lt.ValorBruto.Sub(lt.Deducao)
		out.Lines = append(out.Lines, *lt)

		out.Grand.ValorBruto = out.Grand.ValorBruto.Add(lt.ValorBruto)
		out.Grand.Deducao = out.Grand.Deducao.Add(lt.Deducao)
		out.Grand.Liquido = out.Grand.Liquido.Add(lt.Liquido)
	}
	return out
}
