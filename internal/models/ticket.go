package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ticket is one issued travel ticket after normalization: every monetary
// field holds an exact decimal (missing values coerced to zero) and
// AeroportosNacionais carries an entry for every airport code seen across
// the whole input set.
type Ticket struct {
	ID           string
	Empenho      string
	Fornecedor   string
	Natureza     string
	Tarifa       decimal.Decimal
	TaxaEmbarque decimal.Decimal
	Agenciamento decimal.Decimal
	OutrasTaxas  decimal.Decimal

	AeroportosNacionais map[string]decimal.Decimal

	Emissao *time.Time
}

// Bruto is the gross value the ticket contributes to its commitment line:
// fare + boarding tax + other fees + every national airport fee. The agency
// fee is not included here; it is pooled onto the reserved agency line.
func (t Ticket) Bruto() decimal.Decimal {
	sum := t.Tarifa.Add(t.TaxaEmbarque).Add(t.OutrasTaxas)
	for _, v := range t.AeroportosNacionais {
		sum = sum.Add(v)
	}
	return sum
}
