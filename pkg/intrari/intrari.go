// Package intrari provides a public API for building Romanian supplier
// intake batches (intrari de la furnizori) and submitting them to a DataSnap
// accounting server.
//
// Example usage:
//
//	doc, err := intrari.NewDocumentBuilder().
//	    SerieDoc("FF").
//	    NrDoc("1024").
//	    Moneda(intrari.MonedaRON).
//	    Items(intrari.NewItemBuilder().IDArticol("ART-1").Cant("1").Pret("10").Build()).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	batch, err := intrari.NewIntrareFurnizoriBuilder().
//	    TipDocument(intrari.FacturaIntrare).
//	    Documente(doc).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	receipt, err := intrari.NewDefaultSubmitter().Submit(ctx, batch)
package intrari

import (
	"github.com/rezonia/intrari-furnizori/internal/codes"
	"github.com/rezonia/intrari-furnizori/internal/loader"
	"github.com/rezonia/intrari-furnizori/internal/model"
)

// Re-export record types
type (
	IntrareFurnizori = model.IntrareFurnizori
	Document         = model.Document
	Item             = model.Item
	Serie            = model.Serie
	Scadenta         = model.Scadenta
	DN               = model.DN
)

// Re-export builders
type (
	IntrareFurnizoriBuilder = model.IntrareFurnizoriBuilder
	DocumentBuilder         = model.DocumentBuilder
	ItemBuilder             = model.ItemBuilder
	SerieBuilder            = model.SerieBuilder
	ScadentaBuilder         = model.ScadentaBuilder
)

// Yes/no flag values
const (
	Da = model.Da
	Nu = model.Nu
)

// Re-export accepted currencies
const (
	MonedaRON = codes.MonedaRON
	MonedaUSD = codes.MonedaUSD
	MonedaEUR = codes.MonedaEUR
)

// Re-export document types
const (
	FacturaIntrare           = codes.FacturaIntrare
	AvizIntrare              = codes.AvizIntrare
	Invoice                  = codes.Invoice
	FacturaInAsteptare       = codes.FacturaInAsteptare
	AvizLaFacturaInAsteptare = codes.AvizLaFacturaInAsteptare
	FacturaLaAviz            = codes.FacturaLaAviz
	BonFiscal                = codes.BonFiscal
)

// Re-export error types
type (
	MissingFieldError = model.MissingFieldError
	ValidationError   = model.ValidationError
)

// Re-export sentinel errors
var (
	ErrMissingField        = model.ErrMissingField
	ErrInvalidCurrency     = model.ErrInvalidCurrency
	ErrEmptyLineItems      = model.ErrEmptyLineItems
	ErrInvalidDocumentType = model.ErrInvalidDocumentType
	ErrEmptyDocuments      = model.ErrEmptyDocuments
	ErrBuilderConsumed     = model.ErrBuilderConsumed
)

// NewIntrareFurnizoriBuilder starts a batch
func NewIntrareFurnizoriBuilder() *IntrareFurnizoriBuilder {
	return model.NewIntrareFurnizoriBuilder()
}

// NewDocumentBuilder starts a document
func NewDocumentBuilder() *DocumentBuilder {
	return model.NewDocumentBuilder()
}

// NewItemBuilder starts a line item
func NewItemBuilder() *ItemBuilder {
	return model.NewItemBuilder()
}

// NewSerieBuilder starts a lot
func NewSerieBuilder() *SerieBuilder {
	return model.NewSerieBuilder()
}

// NewScadentaBuilder starts a payment deadline
func NewScadentaBuilder() *ScadentaBuilder {
	return model.NewScadentaBuilder()
}

// LoadFile reads a YAML, JSON or XLSX batch file and builds it.
func LoadFile(path string) (IntrareFurnizori, error) {
	return loader.LoadFile(path)
}
