package checklist

import (
	"github.com/shopspring/decimal"

	"checklist_export/internal/models"
)

// AssembleReport maps aggregated totals and itemized deductions into the
// row structure the renderer consumes. All amounts are formatted here with
// two fixed decimals; the renderer only places strings.
func AssembleReport(header models.Header, totals Totals, ded Deductions, ticketCount int) *models.Report {
	rep := &models.Report{
		Header:            header,
		TicketCount:       ticketCount,
		FederalSubtotal:   money(ded.FederalSubtotal),
		MunicipalSubtotal: money(ded.MunicipalSubtotal),
	}

	rep.Lines = make([]models.ReportLine, 0, len(totals.Lines))
	for _, lt := range totals.Lines {
		rep.Lines = append(rep.Lines, models.ReportLine{
			Empenho:    lt.Empenho,
			ValorBruto: money(lt.ValorBruto),
			Deducao:    money(lt.Deducao),
			Liquido:    money(lt.Liquido),
		})
	}
	rep.GrandTotal = models.ReportLine{
		Empenho:    "TOTAL",
		ValorBruto: money(totals.Grand.ValorBruto),
		Deducao:    money(totals.Grand.Deducao),
		Liquido:    money(totals.Grand.Liquido),
	}

	for _, e := range ded.Entries {
		row := models.ReportDeduction{
			Empenho:     e.Empenho,
			Documento:   e.Documento,
			Contraparte: e.Contraparte,
			Base:        money(e.Base),
			Valor:       money(e.Valor),
		}
		switch e.Category {
		case models.CategoryFederal:
			rep.Federal = append(rep.Federal, row)
		case models.CategoryMunicipal:
			rep.Municipal = append(rep.Municipal, row)
		}
	}

	return rep
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
