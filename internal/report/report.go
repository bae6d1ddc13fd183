// Package report summarises intake batches for operators.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	money "github.com/rezonia/intrari-furnizori/internal/decimal"
	"github.com/rezonia/intrari-furnizori/internal/model"
)

// Summary describes a batch.
type Summary struct {
	TipDocument string            `json:"tip_document,omitempty"`
	AnLucru     string            `json:"an_lucru,omitempty"`
	LunaLucru   string            `json:"luna_lucru,omitempty"`
	Documents   int               `json:"documents"`
	Lines       int               `json:"lines"`
	Unpriced    int               `json:"unpriced"`
	Totals      []CurrencyTotal   `json:"totals"`
	Documente   []DocumentSummary `json:"documente"`
}

// DocumentSummary describes one document of a batch.
type DocumentSummary struct {
	SerieDoc string          `json:"serie_doc,omitempty"`
	NrDoc    string          `json:"nr_doc,omitempty"`
	Moneda   string          `json:"moneda,omitempty"`
	Lines    int             `json:"lines"`
	Unpriced int             `json:"unpriced"`
	Value    decimal.Decimal `json:"value"`
}

// CurrencyTotal is the value of all documents in one currency. Documents
// with no currency are grouped under an empty Moneda.
type CurrencyTotal struct {
	Moneda string          `json:"moneda"`
	Value  decimal.Decimal `json:"value"`
}

// Summarize counts documents and lines and adds up Cant x Pret per
// document. Lines whose quantity or price is missing or not numeric are
// counted as unpriced and left out of the value.
func Summarize(batch model.IntrareFurnizori) Summary {
	s := Summary{
		TipDocument: deref(batch.TipDocument),
		AnLucru:     deref(batch.AnLucru),
		LunaLucru:   deref(batch.LunaLucru),
		Documents:   len(batch.Documente),
		Documente:   make([]DocumentSummary, 0, len(batch.Documente)),
	}

	totals := map[string]decimal.Decimal{}
	for _, doc := range batch.Documente {
		ds := DocumentSummary{
			SerieDoc: deref(doc.SerieDoc),
			NrDoc:    deref(doc.NrDoc),
			Moneda:   deref(doc.Moneda),
			Lines:    len(doc.Items),
		}

		values := make([]decimal.Decimal, 0, len(doc.Items))
		for _, it := range doc.Items {
			v, ok := money.LineValue(it.Cant, it.Pret)
			if !ok {
				ds.Unpriced++
				continue
			}
			values = append(values, v)
		}
		ds.Value = money.RoundBani(money.Sum(values))

		s.Lines += ds.Lines
		s.Unpriced += ds.Unpriced
		totals[ds.Moneda] = totals[ds.Moneda].Add(ds.Value)
		s.Documente = append(s.Documente, ds)
	}

	s.Totals = make([]CurrencyTotal, 0, len(totals))
	for moneda, v := range totals {
		s.Totals = append(s.Totals, CurrencyTotal{Moneda: moneda, Value: v})
	}
	sort.Slice(s.Totals, func(i, j int) bool { return s.Totals[i].Moneda < s.Totals[j].Moneda })

	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
