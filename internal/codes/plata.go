package codes

// Payment modes. One list is shared by every flow.
const (
	Numerar      Code = 1
	OrdinPlata   Code = 2
	CEC          Code = 3
	BiletLaOrdin Code = 4
	Compensare   Code = 5
	Majorari     Code = 6
	CECBOGirat   Code = 7
	BOAvalizat   Code = 8
)

var modalitatiPlata = newSet(
	Entry{Numerar, "numerar"},
	Entry{OrdinPlata, "ordin de plata"},
	Entry{CEC, "CEC"},
	Entry{BiletLaOrdin, "bilet la ordin"},
	Entry{Compensare, "compensare"},
	Entry{Majorari, "majorari"},
	Entry{CECBOGirat, "CEC/BO girat"},
	Entry{BOAvalizat, "BO avalizat"},
)

// ModalitatiPlata returns the payment modes.
func ModalitatiPlata() Set {
	return modalitatiPlata
}

// Accepted currencies.
const (
	MonedaRON = "RON"
	MonedaUSD = "USD"
	MonedaEUR = "EUR"
)

var monedeAcceptate = LabelSet{labels: []string{MonedaRON, MonedaUSD, MonedaEUR}}

// MonedeAcceptate returns the currencies a document may be issued in.
func MonedeAcceptate() LabelSet {
	return monedeAcceptate
}
