package codes

// VAT transaction types, inbound flow.
const (
	IntrariTranzactieInterna               Code = 1
	IntrariAchizitieIntracomunitara        Code = 2
	IntrariImportServicii                  Code = 3
	IntrariFacturaDeTransportTaxabilaPeDVI Code = 4
)

// VAT transaction types, invoice flow.
const (
	InvoiceAchizitieIntracomunitara        Code = 2
	InvoiceImportBunuriSiServicii          Code = 3
	InvoiceFacturaDeTransportTaxabilaPeDVI Code = 4
)

// VAT transaction types, outbound flow.
const (
	IesiriTranzactieInterna      Code = 1
	IesiriLivrareIntracomunitara Code = 2
	IesiriExport                 Code = 3
	IesiriInternaAutofacturare   Code = 4
)

// VAT regimes, inbound flow.
const (
	IntrariTaxareNormala                      Code = 1
	IntrariTaxareInversa                      Code = 2
	IntrariTranzactieTriunghiulara            Code = 3
	IntrariTaxareNormalaProrata               Code = 4
	IntrariRegimSpecialArt1521_1522           Code = 5
	IntrariRegimSpecialDeScutireArt311CF      Code = 6
	IntrariRegimSpecialDeScutireArt312CF      Code = 7
	IntrariAchizitiiUEBunuriCuInstalareMontaj Code = 8
)

// VAT regimes, invoice flow.
const (
	InvoiceTaxareNormala           Code = 1
	InvoiceTaxareInversa           Code = 2
	InvoiceTranzactieTriunghiulara Code = 3
	InvoiceTaxareNormalaProrata    Code = 4
)

// VAT regimes, outbound flow.
const (
	IesiriTaxareNormala                              Code = 1
	IesiriTaxareInversa                              Code = 2
	IesiriTranzactieTriunghiulara                    Code = 3
	IesiriLoculLivrariiPrestariiInAfaraRomaniei      Code = 4
	IesiriIntracomunitarScutitCuDreptDeDeducereLitAD Code = 5
	IesiriIntracomunitarScutitCuDreptDeDeducereLitBC Code = 6
	IesiriRegimSpecialArt1521_1522                   Code = 7
)

var tipTranzactie = map[Flow]Set{
	FlowIntrari: newSet(
		Entry{IntrariTranzactieInterna, "tranzactie interna"},
		Entry{IntrariAchizitieIntracomunitara, "achizitie intracomunitara"},
		Entry{IntrariImportServicii, "import servicii"},
		Entry{IntrariFacturaDeTransportTaxabilaPeDVI, "factura de transport taxabila pe DVI"},
	),
	FlowInvoice: newSet(
		Entry{InvoiceAchizitieIntracomunitara, "achizitie intracomunitara"},
		Entry{InvoiceImportBunuriSiServicii, "import bunuri si servicii"},
		Entry{InvoiceFacturaDeTransportTaxabilaPeDVI, "factura de transport taxabila pe DVI"},
	),
	FlowIesiri: newSet(
		Entry{IesiriTranzactieInterna, "tranzactie interna"},
		Entry{IesiriLivrareIntracomunitara, "livrare intracomunitara"},
		Entry{IesiriExport, "export"},
		Entry{IesiriInternaAutofacturare, "interna autofacturare"},
	),
}

var tipTVA = map[Flow]Set{
	FlowIntrari: newSet(
		Entry{IntrariTaxareNormala, "taxare normala"},
		Entry{IntrariTaxareInversa, "taxare inversa"},
		Entry{IntrariTranzactieTriunghiulara, "tranzactie triunghiulara"},
		Entry{IntrariTaxareNormalaProrata, "taxare normala prorata"},
		Entry{IntrariRegimSpecialArt1521_1522, "regim special art. 152^1-152^2"},
		Entry{IntrariRegimSpecialDeScutireArt311CF, "regim special de scutire art. 311 CF"},
		Entry{IntrariRegimSpecialDeScutireArt312CF, "regim special de scutire art. 312 CF"},
		Entry{IntrariAchizitiiUEBunuriCuInstalareMontaj, "achizitii UE bunuri cu instalare/montaj"},
	),
	FlowInvoice: newSet(
		Entry{InvoiceTaxareNormala, "taxare normala"},
		Entry{InvoiceTaxareInversa, "taxare inversa"},
		Entry{InvoiceTranzactieTriunghiulara, "tranzactie triunghiulara"},
		Entry{InvoiceTaxareNormalaProrata, "taxare normala prorata"},
	),
	FlowIesiri: newSet(
		Entry{IesiriTaxareNormala, "taxare normala"},
		Entry{IesiriTaxareInversa, "taxare inversa"},
		Entry{IesiriTranzactieTriunghiulara, "tranzactie triunghiulara"},
		Entry{IesiriLoculLivrariiPrestariiInAfaraRomaniei, "locul livrarii/prestarii in afara Romaniei"},
		Entry{IesiriIntracomunitarScutitCuDreptDeDeducereLitAD, "intracomunitar scutit cu drept de deducere lit. a-d"},
		Entry{IesiriIntracomunitarScutitCuDreptDeDeducereLitBC, "intracomunitar scutit cu drept de deducere lit. b-c"},
		Entry{IesiriRegimSpecialArt1521_1522, "regim special art. 152^1-152^2"},
	),
}

// TipTranzactie returns the VAT transaction types for flow. Unknown flows
// yield an empty set.
func TipTranzactie(flow Flow) Set {
	return tipTranzactie[flow]
}

// TipTVA returns the VAT regimes for flow. Unknown flows yield an empty set.
func TipTVA(flow Flow) Set {
	return tipTVA[flow]
}
