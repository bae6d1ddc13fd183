package model

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneDN(p *DN) *DN {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func (s Scadenta) clone() Scadenta {
	return Scadenta{
		Valoare:          cloneString(s.Valoare),
		Termen:           cloneString(s.Termen),
		ModPlata:         cloneString(s.ModPlata),
		SimbolCentruCost: cloneString(s.SimbolCentruCost),
	}
}

func (s Serie) clone() Serie {
	return Serie{
		Serie:      cloneString(s.Serie),
		Cant:       cloneString(s.Cant),
		Observatii: cloneString(s.Observatii),
		DataProd:   cloneString(s.DataProd),
	}
}

func (it Item) clone() Item {
	return Item{
		IDArticol:        cloneString(it.IDArticol),
		UM:               cloneString(it.UM),
		Cant:             cloneString(it.Cant),
		TVANeded:         cloneString(it.TVANeded),
		SimbolCentruCost: cloneString(it.SimbolCentruCost),
		CodAnalizaNod:    cloneString(it.CodAnalizaNod),
		Observatii:       cloneString(it.Observatii),
		NrAuto:           cloneString(it.NrAuto),
		Serii:            cloneSlice(it.Serii, Serie.clone),
		Pret:             cloneString(it.Pret),
		PretIntreg:       cloneString(it.PretIntreg),
		Gestiune:         cloneString(it.Gestiune),
		LocatieGest:      cloneString(it.LocatieGest),
		Discount:         cloneString(it.Discount),
		D1:               cloneString(it.D1),
		D2:               cloneString(it.D2),
		D3:               cloneString(it.D3),
		ExtensieLinie:    cloneString(it.ExtensieLinie),
	}
}

func (d Document) clone() Document {
	return Document{
		SerieDoc:         cloneString(d.SerieDoc),
		NrDoc:            cloneString(d.NrDoc),
		NrIntreg:         cloneString(d.NrIntreg),
		Operat:           cloneDN(d.Operat),
		Data:             cloneString(d.Data),
		DataDVI:          cloneString(d.DataDVI),
		SimbolCarnetNIR:  cloneString(d.SimbolCarnetNIR),
		NrNIR:            cloneString(d.NrNIR),
		DataNIR:          cloneString(d.DataNIR),
		CodFurnizori:     cloneString(d.CodFurnizori),
		Locatie:          cloneString(d.Locatie),
		Observatii:       cloneString(d.Observatii),
		ObservatiiNIR:    cloneString(d.ObservatiiNIR),
		Autofacturare:    cloneDN(d.Autofacturare),
		Moneda:           cloneString(d.Moneda),
		Curs:             cloneString(d.Curs),
		TipTranzactie:    cloneString(d.TipTranzactie),
		TVALaIncasare:    cloneString(d.TVALaIncasare),
		TipTVA:           cloneString(d.TipTVA),
		CodSubunitate:    cloneString(d.CodSubunitate),
		Scadenta:         cloneString(d.Scadenta),
		ModPlata:         cloneString(d.ModPlata),
		Scadente:         cloneSlice(d.Scadente, Scadenta.clone),
		ExtensieDocument: cloneString(d.ExtensieDocument),
		Items:            cloneSlice(d.Items, Item.clone),
	}
}

func (b IntrareFurnizori) clone() IntrareFurnizori {
	return IntrareFurnizori{
		TipDocument: cloneString(b.TipDocument),
		AnLucru:     cloneString(b.AnLucru),
		LunaLucru:   cloneString(b.LunaLucru),
		Documente:   cloneSlice(b.Documente, Document.clone),
	}
}

// cloneSlice keeps the nil/empty distinction: a nil input stays nil.
func cloneSlice[T any](in []T, clone func(T) T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = clone(v)
	}
	return out
}
