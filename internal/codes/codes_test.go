package codes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/intrari-furnizori/internal/codes"
)

func TestTipTranzactie(t *testing.T) {
	tests := []struct {
		flow     codes.Flow
		expected []codes.Code
	}{
		{codes.FlowIntrari, []codes.Code{1, 2, 3, 4}},
		{codes.FlowInvoice, []codes.Code{2, 3, 4}},
		{codes.FlowIesiri, []codes.Code{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(string(tt.flow), func(t *testing.T) {
			assert.Equal(t, tt.expected, codes.TipTranzactie(tt.flow).Codes())
		})
	}

	assert.False(t, codes.TipTranzactie(codes.FlowInvoice).Valid(codes.IntrariTranzactieInterna))
	assert.Equal(t, "export", codes.TipTranzactie(codes.FlowIesiri).Name(codes.IesiriExport))
}

func TestTipTVA(t *testing.T) {
	assert.Equal(t, 8, codes.TipTVA(codes.FlowIntrari).Len())
	assert.Equal(t, 4, codes.TipTVA(codes.FlowInvoice).Len())
	assert.Equal(t, 7, codes.TipTVA(codes.FlowIesiri).Len())

	// Installation/assembly acquisitions exist only on the inbound side.
	assert.True(t, codes.TipTVA(codes.FlowIntrari).Valid(codes.IntrariAchizitiiUEBunuriCuInstalareMontaj))
	assert.False(t, codes.TipTVA(codes.FlowInvoice).Valid(8))
	assert.False(t, codes.TipTVA(codes.FlowIesiri).Valid(8))
}

func TestUnknownFlow(t *testing.T) {
	assert.Equal(t, 0, codes.TipTranzactie("other").Len())
	assert.False(t, codes.TipTVA("other").Valid(1))
	assert.Empty(t, codes.TipTVA("other").Name(1))
}

func TestModalitatiPlata(t *testing.T) {
	set := codes.ModalitatiPlata()
	assert.Equal(t, []codes.Code{1, 2, 3, 4, 5, 6, 7, 8}, set.Codes())
	assert.True(t, set.Valid(codes.BOAvalizat))
	assert.False(t, set.Valid(0))
	assert.False(t, set.Valid(9))
}

func TestMonedeAcceptate(t *testing.T) {
	set := codes.MonedeAcceptate()
	assert.Equal(t, []string{"RON", "USD", "EUR"}, set.Labels())

	for _, m := range []string{"RON", "USD", "EUR"} {
		assert.True(t, set.Valid(m), m)
	}
	for _, m := range []string{"ron", "GBP", " RON", "RON ", ""} {
		assert.False(t, set.Valid(m), m)
	}
}

func TestTipuriDocument(t *testing.T) {
	set := codes.TipuriDocument()
	require.Equal(t, 7, set.Len())

	assert.True(t, set.Valid("FACTURA INTRARE"))
	assert.True(t, set.Valid("BON FISCAL"))
	assert.False(t, set.Valid("factura intrare"))
	assert.False(t, set.Valid("FACTURA"))
}

func TestSetsAreImmutable(t *testing.T) {
	labels := codes.TipuriDocument().Labels()
	labels[0] = "CHANGED"
	assert.Equal(t, codes.FacturaIntrare, codes.TipuriDocument().Labels()[0])

	entries := codes.ModalitatiPlata().Entries()
	entries[0].Name = "changed"
	assert.Equal(t, "numerar", codes.ModalitatiPlata().Name(codes.Numerar))
}
