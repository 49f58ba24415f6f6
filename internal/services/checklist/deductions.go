package checklist

import (
	"strings"

	"github.com/shopspring/decimal"

	"checklist_export/internal/models"
)

// Config carries the deduction business rules as data: rates, the matching
// sets, and the reserved commitment line that pools every agency-fee
// withholding regardless of each ticket's own empenho.
type Config struct {
	// FederalRate applies per ticket to fares of national carriers.
	FederalRate decimal.Decimal
	// MunicipalRate applies once per run to the pooled agency-fee base.
	MunicipalRate decimal.Decimal

	// NationalCarriers are matched case-insensitively as substrings of the
	// supplier name.
	NationalCarriers []string
	// NaturezaTokens classify a ticket as air/insurance spend when any of
	// them is contained in the natureza text.
	NaturezaTokens []string

	// AgencyEmpenho is the reserved commitment line for the pooled
	// agency-fee deduction. AgencyName is its display counterpart.
	AgencyEmpenho string
	AgencyName    string
}

func DefaultConfig() Config {
	return Config{
		FederalRate:      decimal.RequireFromString("0.034"),
		MunicipalRate:    decimal.RequireFromString("0.05"),
		NationalCarriers: []string{"LATAM", "GOL", "AZUL"},
		NaturezaTokens:   []string{"aereo", "aéreo", "seguro"},
		AgencyEmpenho:    "AGENCIAMENTO",
		AgencyName:       "AIRES TURISMO LTDA",
	}
}

// Deductions is the calculator's output: itemized entries plus per-category
// subtotals. Subtotals are sums of the already-rounded entries, never a rate
// applied to a subtotal, so they reconcile cent-for-cent with the items.
type Deductions struct {
	Entries []models.DeductionEntry

	FederalSubtotal   decimal.Decimal
	MunicipalSubtotal decimal.Decimal

	// AgencyBase is the pooled agenciamento sum over air/insurance tickets,
	// computed exactly once per run. The aggregator adds it to the reserved
	// line's gross.
	AgencyBase decimal.Decimal
}

// CalcDeductions applies the category rules to normalized tickets.
//
// Federal: one entry per ticket whose supplier matches a national carrier
// and whose fare is positive, targeting the ticket's own commitment line.
// Tickets on the reserved line itself, or with a blank empenho, produce no
// federal entry (there is no line to attribute it to).
//
// Municipal: a single entry over the pooled agency-fee base, targeting the
// reserved line. The pool is summed in the same pass; the rate is never
// applied per ticket, so qualifying ticket count cannot multiply it.
func CalcDeductions(tickets []models.Ticket, cfg Config) Deductions {
	var out Deductions
	out.FederalSubtotal = decimal.Zero
	out.MunicipalSubtotal = decimal.Zero
	out.AgencyBase = decimal.Zero

	for _, t := range tickets {
		if isAgencySpend(t.Natureza, cfg) {
			out.AgencyBase = out.AgencyBase.Add(t.Agenciamento)
		}

		if t.Empenho == "" || t.Empenho == cfg.AgencyEmpenho {
			continue
		}
		if !isNationalCarrier(t.Fornecedor, cfg) || !t.Tarifa.IsPositive() {
			continue
		}

		valor := t.Tarifa.Mul(cfg.FederalRate).Round(2)
		out.Entries = append(out.Entries, models.DeductionEntry{
			Category:    models.CategoryFederal,
			Empenho:     t.Empenho,
			Documento:   t.ID,
			Contraparte: t.Fornecedor,
			Base:        t.Tarifa,
			Valor:       valor,
		})
		out.FederalSubtotal = out.FederalSubtotal.Add(valor)
	}

	if out.AgencyBase.IsPositive() {
		valor := out.AgencyBase.Mul(cfg.MunicipalRate).Round(2)
		out.Entries = append(out.Entries, models.DeductionEntry{
			Category:    models.CategoryMunicipal,
			Empenho:     cfg.AgencyEmpenho,
			Contraparte: cfg.AgencyName,
			Base:        out.AgencyBase,
			Valor:       valor,
		})
		out.MunicipalSubtotal = valor
	}

	return out
}

func isNationalCarrier(fornecedor string, cfg Config) bool {
	name := strings.ToLower(fornecedor)
	for _, c := range cfg.NationalCarriers {
		if c != "" && strings.Contains(name, strings.ToLower(c)) {
			return true
		}
	}
	return false
}

func isAgencySpend(natureza string, cfg Config) bool {
	n := strings.ToLower(natureza)
	for _, tok := range cfg.NaturezaTokens {
		if tok != "" && strings.Contains(n, strings.ToLower(tok)) {
			return true
		}
	}
	return false
}
