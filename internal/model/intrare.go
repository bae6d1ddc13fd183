package model

import (
	"encoding/json"
	"fmt"
)

// DN is the yes/no flag used by the accounting system. It travels as one of
// two literal tokens, never as a JSON boolean.
type DN int

const (
	Da DN = iota + 1
	Nu
)

var dnTokens = map[DN]string{
	Da: "Da",
	Nu: "Nu",
}

func (d DN) String() string {
	if s, ok := dnTokens[d]; ok {
		return s
	}
	return fmt.Sprintf("DN(%d)", int(d))
}

// DNTokens returns the two wire tokens, affirmative first.
func DNTokens() []string {
	return []string{dnTokens[Da], dnTokens[Nu]}
}

// ParseDN maps a wire token to its DN value. Matching is exact.
func ParseDN(s string) (DN, error) {
	for d, token := range dnTokens {
		if token == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("invalid DN value %q: expected %q or %q", s, dnTokens[Da], dnTokens[Nu])
}

func (d DN) MarshalJSON() ([]byte, error) {
	token, ok := dnTokens[d]
	if !ok {
		return nil, fmt.Errorf("invalid DN value %d", int(d))
	}
	return json.Marshal(token)
}

func (d *DN) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("DN must be a string token: %w", err)
	}
	v, err := ParseDN(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Scadenta is one installment of a payment schedule.
type Scadenta struct {
	Valoare          *string `json:"Valoare"`
	Termen           *string `json:"Termen"`
	ModPlata         *string `json:"ModPlata"`
	SimbolCentruCost *string `json:"SimbolCentruCost"`
}

// Serie carries lot information for a line item.
type Serie struct {
	Serie      *string `json:"Serie"`
	Cant       *string `json:"Cant"`
	Observatii *string `json:"Observatii"`
	DataProd   *string `json:"DataProd"`
}

// Item is a single line of a supplier document.
type Item struct {
	IDArticol        *string `json:"IDArticol"`
	UM               *string `json:"UM"`
	Cant             *string `json:"Cant"`
	TVANeded         *string `json:"TVANeded"`
	SimbolCentruCost *string `json:"SimbolCentruCost"`
	CodAnalizaNod    *string `json:"CodAnalizaNod"`
	Observatii       *string `json:"Observatii"`
	NrAuto           *string `json:"NrAuto"`
	Serii            []Serie `json:"Serii"`
	Pret             *string `json:"Pret"`
	PretIntreg       *string `json:"PretIntreg"`
	Gestiune         *string `json:"Gestiune"`
	LocatieGest      *string `json:"LocatieGest"`
	Discount         *string `json:"Discount"`
	D1               *string `json:"D1"`
	D2               *string `json:"D2"`
	D3               *string `json:"D3"`
	ExtensieLinie    *string `json:"EXTENSIELINIE"`
}

// Document is one supplier document (invoice, delivery note, receipt).
//
// Invariants (checked by DocumentBuilder.Build and Validate):
//   - Moneda, when set, is one of the accepted currencies
//   - Items is non-empty
//
// The line list is labelled "items" on the wire, unlike every other label.
// The receiving server expects exactly that spelling.
type Document struct {
	SerieDoc         *string    `json:"SerieDoc"`
	NrDoc            *string    `json:"NrDoc"`
	NrIntreg         *string    `json:"NrIntreg"`
	Operat           *DN        `json:"Operat"`
	Data             *string    `json:"Data"`
	DataDVI          *string    `json:"DataDVI"`
	SimbolCarnetNIR  *string    `json:"SimbolCarnetNIR"`
	NrNIR            *string    `json:"NrNIR"`
	DataNIR          *string    `json:"DataNIR"`
	CodFurnizori     *string    `json:"CodFurnizori"`
	Locatie          *string    `json:"Locatie"`
	Observatii       *string    `json:"Observatii"`
	ObservatiiNIR    *string    `json:"ObservatiiNIR"`
	Autofacturare    *DN        `json:"Autofacturare"`
	Moneda           *string    `json:"Moneda"`
	Curs             *string    `json:"Curs"`
	TipTranzactie    *string    `json:"TipTranzactie"`
	TVALaIncasare    *string    `json:"TVALaIncasare"`
	TipTVA           *string    `json:"TipTVA"`
	CodSubunitate    *string    `json:"CodSubunitate"`
	Scadenta         *string    `json:"Scadenta"`
	ModPlata         *string    `json:"ModPlata"`
	Scadente         []Scadenta `json:"Scadente"`
	ExtensieDocument *string    `json:"EXTENSIEDOCUMENT"`
	Items            []Item     `json:"items"`
}

// IntrareFurnizori is the supplier intake batch, the unit sent to the server.
//
// Invariants (checked by IntrareFurnizoriBuilder.Build and Validate):
//   - TipDocument, when set, is one of the accepted document types
//   - Documente is non-empty
type IntrareFurnizori struct {
	TipDocument *string    `json:"TipDocument"`
	AnLucru     *string    `json:"AnLucru"`
	LunaLucru   *string    `json:"LunaLucru"`
	Documente   []Document `json:"Documente"`
}

// Validate re-checks the document invariants on an already built value.
func (d Document) Validate() error {
	return validateDocument(&d)
}

// Validate re-checks the batch invariants and then every document, in order.
func (b IntrareFurnizori) Validate() error {
	if err := validateIntrare(&b); err != nil {
		return err
	}
	for i := range b.Documente {
		if err := validateDocument(&b.Documente[i]); err != nil {
			return fmt.Errorf("document %d: %w", i+1, err)
		}
	}
	return nil
}
