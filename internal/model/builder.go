package model

// Builders stage optional field values and check the business rules once, in
// Build. Setters never validate.

// ScadentaBuilder stages a payment installment. Every field is optional.
type ScadentaBuilder struct {
	s Scadenta
}

// NewScadentaBuilder starts an empty installment.
func NewScadentaBuilder() *ScadentaBuilder {
	return &ScadentaBuilder{}
}

// Valoare sets the installment amount.
func (b *ScadentaBuilder) Valoare(v string) *ScadentaBuilder {
	b.s.Valoare = &v
	return b
}

// Termen sets the due date or term of the installment.
func (b *ScadentaBuilder) Termen(v string) *ScadentaBuilder {
	b.s.Termen = &v
	return b
}

// ModPlata sets the installment payment mode code.
func (b *ScadentaBuilder) ModPlata(v string) *ScadentaBuilder {
	b.s.ModPlata = &v
	return b
}

// SimbolCentruCost sets the cost centre symbol.
func (b *ScadentaBuilder) SimbolCentruCost(v string) *ScadentaBuilder {
	b.s.SimbolCentruCost = &v
	return b
}

// Unset clears the named fields back to null. Labels are the wire labels
// ("Termen"); an unknown label panics.
func (b *ScadentaBuilder) Unset(labels ...string) *ScadentaBuilder {
	unsetLabels(&b.s, labels)
	return b
}

// Build returns the staged installment.
func (b *ScadentaBuilder) Build() Scadenta {
	return b.s.clone()
}

// SerieBuilder stages lot information. Every field is optional.
type SerieBuilder struct {
	s Serie
}

// NewSerieBuilder starts an empty lot.
func NewSerieBuilder() *SerieBuilder {
	return &SerieBuilder{}
}

// Serie sets the lot number.
func (b *SerieBuilder) Serie(v string) *SerieBuilder {
	b.s.Serie = &v
	return b
}

// Cant sets the quantity in this lot.
func (b *SerieBuilder) Cant(v string) *SerieBuilder {
	b.s.Cant = &v
	return b
}

func (b *SerieBuilder) Observatii(v string) *SerieBuilder {
	b.s.Observatii = &v
	return b
}

// DataProd sets the production date.
func (b *SerieBuilder) DataProd(v string) *SerieBuilder {
	b.s.DataProd = &v
	return b
}

// Unset clears the named fields back to null. See ScadentaBuilder.Unset.
func (b *SerieBuilder) Unset(labels ...string) *SerieBuilder {
	unsetLabels(&b.s, labels)
	return b
}

// Build returns the staged lot.
func (b *SerieBuilder) Build() Serie {
	return b.s.clone()
}

// ItemBuilder stages a document line. Every field is optional.
type ItemBuilder struct {
	it Item
}

// NewItemBuilder starts an empty line.
func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{}
}

// IDArticol sets the article code.
func (b *ItemBuilder) IDArticol(v string) *ItemBuilder {
	b.it.IDArticol = &v
	return b
}

// UM sets the unit of measure.
func (b *ItemBuilder) UM(v string) *ItemBuilder {
	b.it.UM = &v
	return b
}

// Cant sets the quantity.
func (b *ItemBuilder) Cant(v string) *ItemBuilder {
	b.it.Cant = &v
	return b
}

// TVANeded sets the non-deductible VAT share.
func (b *ItemBuilder) TVANeded(v string) *ItemBuilder {
	b.it.TVANeded = &v
	return b
}

func (b *ItemBuilder) SimbolCentruCost(v string) *ItemBuilder {
	b.it.SimbolCentruCost = &v
	return b
}

func (b *ItemBuilder) CodAnalizaNod(v string) *ItemBuilder {
	b.it.CodAnalizaNod = &v
	return b
}

func (b *ItemBuilder) Observatii(v string) *ItemBuilder {
	b.it.Observatii = &v
	return b
}

// NrAuto sets the vehicle registration number.
func (b *ItemBuilder) NrAuto(v string) *ItemBuilder {
	b.it.NrAuto = &v
	return b
}

// Pret sets the unit price.
func (b *ItemBuilder) Pret(v string) *ItemBuilder {
	b.it.Pret = &v
	return b
}

func (b *ItemBuilder) PretIntreg(v string) *ItemBuilder {
	b.it.PretIntreg = &v
	return b
}

// Gestiune sets the stock location (gestiune).
func (b *ItemBuilder) Gestiune(v string) *ItemBuilder {
	b.it.Gestiune = &v
	return b
}

func (b *ItemBuilder) LocatieGest(v string) *ItemBuilder {
	b.it.LocatieGest = &v
	return b
}

func (b *ItemBuilder) Discount(v string) *ItemBuilder {
	b.it.Discount = &v
	return b
}

func (b *ItemBuilder) D1(v string) *ItemBuilder {
	b.it.D1 = &v
	return b
}

func (b *ItemBuilder) D2(v string) *ItemBuilder {
	b.it.D2 = &v
	return b
}

func (b *ItemBuilder) D3(v string) *ItemBuilder {
	b.it.D3 = &v
	return b
}

// ExtensieLinie sets the free-form line extension, sent as EXTENSIELINIE.
func (b *ItemBuilder) ExtensieLinie(v string) *ItemBuilder {
	b.it.ExtensieLinie = &v
	return b
}

// Serii replaces the lot list.
func (b *ItemBuilder) Serii(v ...Serie) *ItemBuilder {
	b.it.Serii = append([]Serie{}, v...)
	return b
}

// Unset clears the named fields back to null. See ScadentaBuilder.Unset.
func (b *ItemBuilder) Unset(labels ...string) *ItemBuilder {
	unsetLabels(&b.it, labels)
	return b
}

// Build returns the staged line.
func (b *ItemBuilder) Build() Item {
	return b.it.clone()
}

// DocumentBuilder stages a supplier document. Items is required; everything
// else is optional.
type DocumentBuilder struct {
	doc      Document
	itemsSet bool
	built    bool
}

// NewDocumentBuilder starts a document with nothing staged.
func NewDocumentBuilder() *DocumentBuilder {
	return &DocumentBuilder{}
}

// From seeds the builder with every field of d. A nil d.Items leaves the
// line list unset.
func (b *DocumentBuilder) From(d Document) *DocumentBuilder {
	b.doc = d.clone()
	b.itemsSet = d.Items != nil
	return b
}

// SerieDoc sets the document series.
func (b *DocumentBuilder) SerieDoc(v string) *DocumentBuilder {
	b.doc.SerieDoc = &v
	return b
}

// NrDoc sets the document number.
func (b *DocumentBuilder) NrDoc(v string) *DocumentBuilder {
	b.doc.NrDoc = &v
	return b
}

func (b *DocumentBuilder) NrIntreg(v string) *DocumentBuilder {
	b.doc.NrIntreg = &v
	return b
}

// Operat sets whether the document is already posted.
func (b *DocumentBuilder) Operat(v DN) *DocumentBuilder {
	b.doc.Operat = &v
	return b
}

// Data sets the document date.
func (b *DocumentBuilder) Data(v string) *DocumentBuilder {
	b.doc.Data = &v
	return b
}

// DataDVI sets the customs declaration (DVI) date.
func (b *DocumentBuilder) DataDVI(v string) *DocumentBuilder {
	b.doc.DataDVI = &v
	return b
}

// SimbolCarnetNIR sets the goods-receipt note book symbol.
func (b *DocumentBuilder) SimbolCarnetNIR(v string) *DocumentBuilder {
	b.doc.SimbolCarnetNIR = &v
	return b
}

func (b *DocumentBuilder) NrNIR(v string) *DocumentBuilder {
	b.doc.NrNIR = &v
	return b
}

func (b *DocumentBuilder) DataNIR(v string) *DocumentBuilder {
	b.doc.DataNIR = &v
	return b
}

// CodFurnizori sets the supplier code.
func (b *DocumentBuilder) CodFurnizori(v string) *DocumentBuilder {
	b.doc.CodFurnizori = &v
	return b
}

func (b *DocumentBuilder) Locatie(v string) *DocumentBuilder {
	b.doc.Locatie = &v
	return b
}

func (b *DocumentBuilder) Observatii(v string) *DocumentBuilder {
	b.doc.Observatii = &v
	return b
}

func (b *DocumentBuilder) ObservatiiNIR(v string) *DocumentBuilder {
	b.doc.ObservatiiNIR = &v
	return b
}

// Autofacturare sets whether the document is a self-invoice.
func (b *DocumentBuilder) Autofacturare(v DN) *DocumentBuilder {
	b.doc.Autofacturare = &v
	return b
}

// Moneda sets the currency code. Build rejects codes outside RON, USD and EUR.
func (b *DocumentBuilder) Moneda(v string) *DocumentBuilder {
	b.doc.Moneda = &v
	return b
}

// Curs sets the exchange rate.
func (b *DocumentBuilder) Curs(v string) *DocumentBuilder {
	b.doc.Curs = &v
	return b
}

// TipTranzactie sets the VAT transaction type code.
func (b *DocumentBuilder) TipTranzactie(v string) *DocumentBuilder {
	b.doc.TipTranzactie = &v
	return b
}

// TVALaIncasare sets the VAT cash-accounting flag.
func (b *DocumentBuilder) TVALaIncasare(v string) *DocumentBuilder {
	b.doc.TVALaIncasare = &v
	return b
}

// TipTVA sets the VAT regime code.
func (b *DocumentBuilder) TipTVA(v string) *DocumentBuilder {
	b.doc.TipTVA = &v
	return b
}

func (b *DocumentBuilder) CodSubunitate(v string) *DocumentBuilder {
	b.doc.CodSubunitate = &v
	return b
}

// Scadenta sets the due-date descriptor.
func (b *DocumentBuilder) Scadenta(v string) *DocumentBuilder {
	b.doc.Scadenta = &v
	return b
}

// ModPlata sets the payment mode code.
func (b *DocumentBuilder) ModPlata(v string) *DocumentBuilder {
	b.doc.ModPlata = &v
	return b
}

// ExtensieDocument sets the free-form document extension, sent as EXTENSIEDOCUMENT.
func (b *DocumentBuilder) ExtensieDocument(v string) *DocumentBuilder {
	b.doc.ExtensieDocument = &v
	return b
}

// Scadente replaces the payment schedule.
func (b *DocumentBuilder) Scadente(v ...Scadenta) *DocumentBuilder {
	b.doc.Scadente = append([]Scadenta{}, v...)
	return b
}

// Items replaces the line list. Calling it with no arguments sets an empty
// list, which Build rejects.
func (b *DocumentBuilder) Items(v ...Item) *DocumentBuilder {
	b.doc.Items = append([]Item{}, v...)
	b.itemsSet = true
	return b
}

// AddItem appends one line.
func (b *DocumentBuilder) AddItem(v Item) *DocumentBuilder {
	b.doc.Items = append(b.doc.Items, v)
	b.itemsSet = true
	return b
}

// Unset clears the named fields back to null. Unsetting "items" also
// forgets that the line list was supplied, so Build reports it missing.
func (b *DocumentBuilder) Unset(labels ...string) *DocumentBuilder {
	unsetLabels(&b.doc, labels)
	if b.doc.Items == nil {
		b.itemsSet = false
	}
	return b
}

// Build checks that items was supplied, then the currency, then that items
// is non-empty. A failed Build leaves the staged values in place so the
// caller can fix them and retry; a successful one consumes the builder.
func (b *DocumentBuilder) Build() (Document, error) {
	if b.built {
		return Document{}, ErrBuilderConsumed
	}
	if !b.itemsSet {
		return Document{}, NewMissingFieldError("Document", "items")
	}
	if err := validateDocument(&b.doc); err != nil {
		return Document{}, err
	}
	b.built = true
	return b.doc.clone(), nil
}

// IntrareFurnizoriBuilder stages a supplier intake batch. Documente is
// required; everything else is optional.
type IntrareFurnizoriBuilder struct {
	batch        IntrareFurnizori
	documenteSet bool
	built        bool
}

// NewIntrareFurnizoriBuilder starts a batch with nothing staged.
func NewIntrareFurnizoriBuilder() *IntrareFurnizoriBuilder {
	return &IntrareFurnizoriBuilder{}
}

func (b *IntrareFurnizoriBuilder) TipDocument(v string) *IntrareFurnizoriBuilder {
	b.batch.TipDocument = &v
	return b
}

func (b *IntrareFurnizoriBuilder) AnLucru(v string) *IntrareFurnizoriBuilder {
	b.batch.AnLucru = &v
	return b
}

func (b *IntrareFurnizoriBuilder) LunaLucru(v string) *IntrareFurnizoriBuilder {
	b.batch.LunaLucru = &v
	return b
}

// Documente replaces the document list.
func (b *IntrareFurnizoriBuilder) Documente(v ...Document) *IntrareFurnizoriBuilder {
	b.batch.Documente = append([]Document{}, v...)
	b.documenteSet = true
	return b
}

// AddDocument appends one document.
func (b *IntrareFurnizoriBuilder) AddDocument(v Document) *IntrareFurnizoriBuilder {
	b.batch.Documente = append(b.batch.Documente, v)
	b.documenteSet = true
	return b
}

// Unset clears the named fields back to null. Unsetting "Documente" also
// forgets that the document list was supplied.
func (b *IntrareFurnizoriBuilder) Unset(labels ...string) *IntrareFurnizoriBuilder {
	unsetLabels(&b.batch, labels)
	if b.batch.Documente == nil {
		b.documenteSet = false
	}
	return b
}

// Build checks that documente was supplied, then the document type, then
// that documente is non-empty. Documents are expected to come from
// DocumentBuilder and are not re-validated here.
func (b *IntrareFurnizoriBuilder) Build() (IntrareFurnizori, error) {
	if b.built {
		return IntrareFurnizori{}, ErrBuilderConsumed
	}
	if !b.documenteSet {
		return IntrareFurnizori{}, NewMissingFieldError("IntrareFurnizori", "documente")
	}
	if err := validateIntrare(&b.batch); err != nil {
		return IntrareFurnizori{}, err
	}
	b.built = true
	return b.batch.clone(), nil
}
