package checklist

import (
	"testing"

	"github.com/shopspring/decimal"

	"checklist_export/internal/models"
)

func TestAggregate_perLineAndGrandTotals(t *testing.T) {
	cfg := DefaultConfig()
	tickets := []models.Ticket{
		ticket("A", "LATAM", "aereo", "1000", "0"),
		ticket("A", "LATAM", "aereo", "500", "0"),
		ticket("B", "AIRES", "seguro", "0", "200"),
	}
	tickets[0].TaxaEmbarque = decimal.RequireFromString("50")
	tickets[1].AeroportosNacionais = map[string]decimal.Decimal{"GRU": decimal.RequireFromString("12.30")}

	ded := CalcDeductions(tickets, cfg)
	totals := Aggregate(tickets, ded, cfg)

	if len(totals.Lines) != 3 {
		t.Fatalf("expected lines A, B and reserved, got %d", len(totals.Lines))
	}

	byEmpenho := map[string]models.CommitmentTotals{}
	for _, l := range totals.Lines {
		byEmpenho[l.Empenho] = l

		if !l.Liquido.Equal(l.ValorBruto.Sub(l.Deducao)) {
			t.Fatalf("line %s: liquido %s != bruto %s - deducao %s",
				l.Empenho, l.Liquido, l.ValorBruto, l.Deducao)
		}
	}

	a := byEmpenho["A"]
	if got := a.ValorBruto.StringFixed(2); got != "1562.30" {
		t.Fatalf("line A bruto: got %s", got)
	}
	// 34.00 + 17.00
	if got := a.Deducao.StringFixed(2); got != "51.00" {
		t.Fatalf("line A deducao: got %s", got)
	}

	res := byEmpenho[cfg.AgencyEmpenho]
	if got := res.ValorBruto.StringFixed(2); got != "200.00" {
		t.Fatalf("reserved line bruto: got %s", got)
	}
	if got := res.Deducao.StringFixed(2); got != "10.00" {
		t.Fatalf("reserved line deducao: got %s", got)
	}

	var bruto, deducao, liquido decimal.Decimal
	for _, l := range totals.Lines {
		bruto = bruto.Add(l.ValorBruto)
		deducao = deducao.Add(l.Deducao)
		liquido = liquido.Add(l.Liquido)
	}
	if !totals.Grand.ValorBruto.Equal(bruto) || !totals.Grand.Deducao.Equal(deducao) || !totals.Grand.Liquido.Equal(liquido) {
		t.Fatalf("grand totals must equal the per-line sums")
	}
}

func TestAggregate_blankEmpenhoContributesToNoLine(t *testing.T) {
	cfg := DefaultConfig()
	tickets := []models.Ticket{
		ticket("", "LATAM", "hospedagem", "1000", "0"),
	}

	ded := CalcDeductions(tickets, cfg)
	totals := Aggregate(tickets, ded, cfg)

	if len(totals.Lines) != 0 {
		t.Fatalf("blank empenho must create no line, got %d", len(totals.Lines))
	}
	if !totals.Grand.ValorBruto.IsZero() {
		t.Fatalf("grand bruto: got %s", totals.Grand.ValorBruto)
	}
}

func TestAggregate_reservedEmpenhoTicketFoldsIntoPool(t *testing.T) {
	cfg := DefaultConfig()
	// the ticket carries the reserved empenho itself: its own fields do not
	// accumulate gross; only the pooled agenciamento does
	tickets := []models.Ticket{
		ticket(cfg.AgencyEmpenho, "AIRES", "aereo", "999", "150"),
	}

	ded := CalcDeductions(tickets, cfg)
	totals := Aggregate(tickets, ded, cfg)

	if len(totals.Lines) != 1 {
		t.Fatalf("expected only the reserved line, got %d", len(totals.Lines))
	}
	l := totals.Lines[0]
	if l.Empenho != cfg.AgencyEmpenho {
		t.Fatalf("line: got %q", l.Empenho)
	}
	if got := l.ValorBruto.StringFixed(2); got != "150.00" {
		t.Fatalf("reserved bruto must be the pooled base only, got %s", got)
	}
}

func TestAggregate_firstSeenOrderReservedAppended(t *testing.T) {
	cfg := DefaultConfig()
	tickets := []models.Ticket{
		ticket("2024NE17", "LATAM", "aereo", "10", "5"),
		ticket("2024NE03", "GOL", "aereo", "10", "0"),
		ticket("2024NE17", "AZUL", "aereo", "10", "0"),
	}

	ded := CalcDeductions(tickets, cfg)
	totals := Aggregate(tickets, ded, cfg)

	want := []string{"2024NE17", "2024NE03", cfg.AgencyEmpenho}
	if len(totals.Lines) != len(want) {
		t.Fatalf("lines: got %d want %d", len(totals.Lines), len(want))
	}
	for i, l := range totals.Lines {
		if l.Empenho != want[i] {
			t.Fatalf("order[%d]: got %q want %q", i, l.Empenho, want[i])
		}
	}
}
