package checklist

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"

	"checklist_export/internal/models"
	"checklist_export/internal/utils"
)

var moneyFields = []string{"tarifa", "taxa_embarque", "agenciamento", "outras_taxas"}

// Normalize turns raw ticket documents into Tickets with exact decimal
// money fields. Missing or null values become zero; malformed values abort
// the run with a DataError. The union of airport codes seen anywhere in the
// input is back-filled (zero) onto every ticket so later summation never
// has to special-case sparse mappings.
func Normalize(docs []map[string]any) ([]models.Ticket, error) {
	airports := airportUnion(docs)

	tickets := make([]models.Ticket, 0, len(docs))
	for i, doc := range docs {
		id := ticketID(doc, i)

		t := models.Ticket{
			ID:         id,
			Empenho:    strings.TrimSpace(stringField(doc, "empenho")),
			Fornecedor: strings.TrimSpace(stringField(doc, "fornecedor")),
			Natureza:   strings.TrimSpace(stringField(doc, "natureza")),
			Emissao:    utils.ParseDateLoose(doc["emissao"]),
		}

		vals := make([]decimal.Decimal, len(moneyFields))
		for j, f := range moneyFields {
			v, err := toDecimal(doc[f])
			if err != nil {
				return nil, &DataError{Ticket: id, Field: f, Value: rawString(doc[f])}
			}
			vals[j] = v
		}
		t.Tarifa, t.TaxaEmbarque, t.Agenciamento, t.OutrasTaxas = vals[0], vals[1], vals[2], vals[3]

		fees := airportFees(doc)
		t.AeroportosNacionais = make(map[string]decimal.Decimal, len(airports))
		for _, code := range airports {
			raw, ok := fees[code]
			if !ok {
				t.AeroportosNacionais[code] = decimal.Zero
				continue
			}
			v, err := toDecimal(raw)
			if err != nil {
				return nil, &DataError{Ticket: id, Field: "aeroportos_nacionais." + code, Value: rawString(raw)}
			}
			t.AeroportosNacionais[code] = v
		}

		tickets = append(tickets, t)
	}

	return tickets, nil
}

// airportUnion collects every airport code present in any ticket, sorted
// for deterministic iteration.
func airportUnion(docs []map[string]any) []string {
	seen := make(map[string]struct{})
	for _, doc := range docs {
		for code := range airportFees(doc) {
			seen[code] = struct{}{}
		}
	}
	codes := make([]string, 0, len(seen))
	for code := range seen {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// airportFees tolerates the shapes an embedded document arrives in: a plain
// map, the driver's bson.M (a defined type, so it needs its own case), or a
// bson.D ordered document.
func airportFees(doc map[string]any) map[string]any {
	raw, ok := doc["aeroportos_nacionais"]
	if !ok || raw == nil {
		return nil
	}
	switch m := raw.(type) {
	case map[string]any:
		return m
	case bson.M:
		return map[string]any(m)
	case bson.D:
		out := make(map[string]any, len(m))
		for _, e := range m {
			out[e.Key] = e.Value
		}
		return out
	default:
		return nil
	}
}

func ticketID(doc map[string]any, idx int) string {
	if v, ok := doc["_id"]; ok && v != nil {
		if s := strings.TrimSpace(fmt.Sprintf("%v", v)); s != "" {
			return s
		}
	}
	return fmt.Sprintf("#%d", idx+1)
}

func stringField(doc map[string]any, key string) string {
	v, ok := doc[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// toDecimal coerces the value shapes a ticket document may carry for a
// monetary field. Absent and empty values are zero; anything else must
// parse as an exact decimal.
func toDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case nil:
		return decimal.Zero, nil
	case decimal.Decimal:
		return n, nil
	case float64:
		return decimal.NewFromFloat(n), nil
	case float32:
		return decimal.NewFromFloat32(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int32:
		return decimal.NewFromInt32(n), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case json.Number:
		return decimal.NewFromString(n.String())
	case string:
		s := normalizeAmount(n)
		if s == "" {
			return decimal.Zero, nil
		}
		return decimal.NewFromString(s)
	default:
		return decimal.NewFromString(fmt.Sprintf("%v", v))
	}
}

func normalizeAmount(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "R$", "")

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	switch {
	case hasComma && hasDot:
		// whichever separator comes last is the decimal mark
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasComma:
		s = strings.ReplaceAll(s, ",", ".")
	}
	return s
}

func rawString(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
