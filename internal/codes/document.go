package codes

// Document type labels accepted on an intake batch.
const (
	FacturaIntrare           = "FACTURA INTRARE"
	AvizIntrare              = "AVIZ INTRARE"
	Invoice                  = "INVOICE"
	FacturaInAsteptare       = "FACTURA IN ASTEPTARE"
	AvizLaFacturaInAsteptare = "AVIZ LA FACTURA IN ASTEPTARE"
	FacturaLaAviz            = "FACTURA LA AVIZ"
	BonFiscal                = "BON FISCAL"
)

var tipuriDocument = LabelSet{labels: []string{
	FacturaIntrare,
	AvizIntrare,
	Invoice,
	FacturaInAsteptare,
	AvizLaFacturaInAsteptare,
	FacturaLaAviz,
	BonFiscal,
}}

// TipuriDocument returns the accepted document type labels.
func TipuriDocument() LabelSet {
	return tipuriDocument
}
