package model

import "github.com/rezonia/intrari-furnizori/internal/codes"

// Currency is checked before emptiness, so a document failing both reports
// the currency.
func validateDocument(d *Document) error {
	if d.Moneda != nil {
		monede := codes.MonedeAcceptate()
		if !monede.Valid(*d.Moneda) {
			return newInvalidCurrencyError(*d.Moneda, monede.Labels())
		}
	}
	if len(d.Items) == 0 {
		return newEmptyLineItemsError()
	}
	return nil
}

func validateIntrare(b *IntrareFurnizori) error {
	if b.TipDocument != nil {
		tipuri := codes.TipuriDocument()
		if !tipuri.Valid(*b.TipDocument) {
			return newInvalidDocumentTypeError(*b.TipDocument, tipuri.Labels())
		}
	}
	if len(b.Documente) == 0 {
		return newEmptyDocumentsError()
	}
	return nil
}
