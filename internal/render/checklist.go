package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"checklist_export/internal/models"
)

const SheetName = "LISTA DE CONFERÊNCIA"

const reportTitle = "LISTA DE CONFERÊNCIA PARA PAGAMENTO"

// Checklist renders an assembled report into an XLSX workbook and returns
// its bytes. Layout follows the audited template: dark-blue merged title
// banner, header block, commitment table, itemized withholding sections.
func Checklist(rep *models.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), SheetName)

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Calibri", Size: 14, Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"002060"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("title style: %w", err)
	}
	headStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Calibri", Size: 11, Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"002060"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    boxBorder(),
	})
	if err != nil {
		return nil, fmt.Errorf("head style: %w", err)
	}
	cellStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Family: "Calibri", Size: 11},
		Border: boxBorder(),
	})
	if err != nil {
		return nil, fmt.Errorf("cell style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Family: "Calibri", Size: 11, Bold: true},
		Border: boxBorder(),
	})
	if err != nil {
		return nil, fmt.Errorf("total style: %w", err)
	}

	if err := f.MergeCell(SheetName, "A1", "K1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	setCell(f, "A1", reportTitle)
	_ = f.SetCellStyle(SheetName, "A1", "K1", titleStyle)
	_ = f.SetRowHeight(SheetName, 1, 28)

	setCell(f, "A3", "Processo nº: "+rep.Header.ProcessoNr)
	setCell(f, "A4", "Credor: "+rep.Header.Credor)
	setCell(f, "A5", "Vigência: "+rep.Header.Vigencia)
	setCell(f, "A6", "Período: "+rep.Header.Periodo)

	row := 8
	writeRow(f, row, []string{"EMPENHO", "VALOR BRUTO", "DEDUÇÕES", "VALOR LÍQUIDO"})
	_ = f.SetCellStyle(SheetName, cell("A", row), cell("D", row), headStyle)
	row++

	firstLine := row
	for _, l := range rep.Lines {
		writeRow(f, row, []string{l.Empenho, l.ValorBruto, l.Deducao, l.Liquido})
		row++
	}
	if row > firstLine {
		_ = f.SetCellStyle(SheetName, cell("A", firstLine), cell("D", row-1), cellStyle)
	}

	g := rep.GrandTotal
	writeRow(f, row, []string{g.Empenho, g.ValorBruto, g.Deducao, g.Liquido})
	_ = f.SetCellStyle(SheetName, cell("A", row), cell("D", row), totalStyle)
	row += 2

	row = writeDeductionSection(f, row,
		"RETENÇÃO FEDERAL — TARIFAS DE COMPANHIAS NACIONAIS (3,4%)",
		rep.Federal, rep.FederalSubtotal, headStyle, cellStyle, totalStyle)
	row++
	writeDeductionSection(f, row,
		"ISS SOBRE AGENCIAMENTO (5%)",
		rep.Municipal, rep.MunicipalSubtotal, headStyle, cellStyle, totalStyle)

	_ = f.SetColWidth(SheetName, "A", "A", 18)
	_ = f.SetColWidth(SheetName, "B", "E", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeDeductionSection(f *excelize.File, row int, title string, entries []models.ReportDeduction, subtotal string, headStyle, cellStyle, totalStyle int) int {
	if err := f.MergeCell(SheetName, cell("A", row), cell("E", row)); err == nil {
		setCell(f, cell("A", row), title)
		_ = f.SetCellStyle(SheetName, cell("A", row), cell("E", row), headStyle)
	}
	row++

	writeRow(f, row, []string{"EMPENHO", "DOCUMENTO", "CONTRAPARTE", "BASE", "VALOR RETIDO"})
	_ = f.SetCellStyle(SheetName, cell("A", row), cell("E", row), headStyle)
	row++

	first := row
	for _, e := range entries {
		writeRow(f, row, []string{e.Empenho, e.Documento, e.Contraparte, e.Base, e.Valor})
		row++
	}
	if len(entries) == 0 {
		writeRow(f, row, []string{"—", "", "", "0.00", "0.00"})
		row++
	}
	_ = f.SetCellStyle(SheetName, cell("A", first), cell("E", row-1), cellStyle)

	writeRow(f, row, []string{"SUBTOTAL", "", "", "", subtotal})
	_ = f.SetCellStyle(SheetName, cell("A", row), cell("E", row), totalStyle)
	return row + 1
}

func writeRow(f *excelize.File, row int, values []string) {
	cols := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K"}
	for i, v := range values {
		if i >= len(cols) {
			break
		}
		setCell(f, cell(cols[i], row), v)
	}
}

func setCell(f *excelize.File, axis, value string) {
	_ = f.SetCellValue(SheetName, axis, value)
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func boxBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
}
