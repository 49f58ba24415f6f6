package models

import "github.com/shopspring/decimal"

const (
	CategoryFederal   = "federal"
	CategoryMunicipal = "municipal"
)

// DeductionEntry is one withholding line item. Federal entries are produced
// per ticket; the municipal entry is produced once per run over the pooled
// agency-fee base. Valor is rounded to cents at entry granularity.
type DeductionEntry struct {
	Category    string
	Empenho     string
	Documento   string
	Contraparte string
	Base        decimal.Decimal
	Valor       decimal.Decimal
}

// CommitmentTotals aggregates one commitment line. Liquido is always
// derived as ValorBruto minus Deducao, never set independently.
type CommitmentTotals struct {
	Empenho    string
	ValorBruto decimal.Decimal
	Deducao    decimal.Decimal
	Liquido    decimal.Decimal
}
