package checklist

import (
	"testing"

	"github.com/shopspring/decimal"

	"checklist_export/internal/models"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func ticket(empenho, fornecedor, natureza, tarifa, agenciamento string) models.Ticket {
	return models.Ticket{
		ID:           "t-" + empenho,
		Empenho:      empenho,
		Fornecedor:   fornecedor,
		Natureza:     natureza,
		Tarifa:       decimal.RequireFromString(tarifa),
		Agenciamento: decimal.RequireFromString(agenciamento),
	}
}

func TestCalcDeductions_federalPredicate(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		name   string
		tk     models.Ticket
		expect bool
	}{
		{"carrier with fare", ticket("A", "LATAM AIRLINES", "aereo", "1000", "0"), true},
		{"carrier lowercased", ticket("A", "gol linhas aereas", "aereo", "500", "0"), true},
		{"agency supplier", ticket("A", "AIRES TURISMO LTDA", "aereo", "1000", "0"), false},
		{"zero fare", ticket("A", "LATAM", "aereo", "0", "0"), false},
		{"blank empenho", ticket("", "LATAM", "aereo", "1000", "0"), false},
		{"reserved empenho", ticket(cfg.AgencyEmpenho, "LATAM", "aereo", "1000", "0"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := CalcDeductions([]models.Ticket{tc.tk}, cfg)
			n := 0
			for _, e := range out.Entries {
				if e.Category == models.CategoryFederal {
					n++
				}
			}
			if got := n == 1; got != tc.expect {
				t.Fatalf("federal entry presence: got %v want %v", got, tc.expect)
			}
		})
	}
}

func TestCalcDeductions_federalRounding(t *testing.T) {
	cfg := DefaultConfig()

	out := CalcDeductions([]models.Ticket{
		ticket("A", "LATAM", "aereo", "1000", "0"),
		ticket("B", "AZUL", "aereo", "123.45", "0"),
	}, cfg)

	var vals []string
	for _, e := range out.Entries {
		if e.Category == models.CategoryFederal {
			vals = append(vals, e.Valor.StringFixed(2))
		}
	}
	if len(vals) != 2 || vals[0] != "34.00" || vals[1] != "4.20" {
		t.Fatalf("federal entries: got %v", vals)
	}
	// subtotal is the sum of the rounded entries
	if got := out.FederalSubtotal.StringFixed(2); got != "38.20" {
		t.Fatalf("federal subtotal: got %s", got)
	}
}

func TestCalcDeductions_municipalPooledOnce(t *testing.T) {
	cfg := DefaultConfig()

	out := CalcDeductions([]models.Ticket{
		ticket("A", "LATAM", "aereo nacional", "0", "100"),
		ticket("B", "AIRES", "seguro viagem", "0", "100"),
		ticket("", "AIRES", "SEGURO", "0", "100"),        // blank empenho still pools
		ticket("C", "AIRES", "hospedagem", "0", "999"),   // natureza does not qualify
	}, cfg)

	var municipal []models.DeductionEntry
	for _, e := range out.Entries {
		if e.Category == models.CategoryMunicipal {
			municipal = append(municipal, e)
		}
	}

	if len(municipal) != 1 {
		t.Fatalf("municipal must be a single pooled entry, got %d", len(municipal))
	}
	m := municipal[0]
	if !m.Base.Equal(dec(t, "300")) {
		t.Fatalf("pooled base: got %s", m.Base)
	}
	if got := m.Valor.StringFixed(2); got != "15.00" {
		t.Fatalf("municipal deduction: got %s", got)
	}
	if m.Empenho != cfg.AgencyEmpenho {
		t.Fatalf("municipal entry must target the reserved line, got %q", m.Empenho)
	}
	if !out.MunicipalSubtotal.Equal(m.Valor) {
		t.Fatalf("municipal subtotal: got %s", out.MunicipalSubtotal)
	}
}

func TestCalcDeductions_noAgencySpendNoMunicipalEntry(t *testing.T) {
	out := CalcDeductions([]models.Ticket{
		ticket("A", "LATAM", "hospedagem", "100", "50"),
	}, DefaultConfig())

	for _, e := range out.Entries {
		if e.Category == models.CategoryMunicipal {
			t.Fatal("no municipal entry expected without qualifying natureza")
		}
	}
	if !out.AgencyBase.IsZero() {
		t.Fatalf("agency base: got %s", out.AgencyBase)
	}
}

func TestCalcDeductions_categoriesApplyIndependently(t *testing.T) {
	// a national-carrier insurance ticket gets a federal entry and still
	// contributes to the pooled agency base
	out := CalcDeductions([]models.Ticket{
		ticket("A", "LATAM", "seguro", "200", "40"),
	}, DefaultConfig())

	var federal, municipal int
	for _, e := range out.Entries {
		switch e.Category {
		case models.CategoryFederal:
			federal++
		case models.CategoryMunicipal:
			municipal++
		}
	}
	if federal != 1 || municipal != 1 {
		t.Fatalf("expected 1 federal and 1 municipal entry, got %d/%d", federal, municipal)
	}
	if !out.AgencyBase.Equal(dec(t, "40")) {
		t.Fatalf("agency base: got %s", out.AgencyBase)
	}
}
