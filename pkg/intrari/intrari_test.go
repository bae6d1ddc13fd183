package intrari_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/intrari-furnizori/pkg/intrari"
)

func buildBatch(t *testing.T) intrari.IntrareFurnizori {
	t.Helper()
	doc, err := intrari.NewDocumentBuilder().
		SerieDoc("FF").
		NrDoc("1024").
		Moneda(intrari.MonedaEUR).
		Autofacturare(intrari.Nu).
		Scadente(intrari.NewScadentaBuilder().Valoare("10").Termen("30").Build()).
		Items(intrari.NewItemBuilder().
			IDArticol("ART-1").
			Cant("1").
			Pret("10").
			Serii(intrari.NewSerieBuilder().Serie("L1").Cant("1").Build()).
			Build()).
		Build()
	require.NoError(t, err)

	batch, err := intrari.NewIntrareFurnizoriBuilder().
		TipDocument(intrari.FacturaIntrare).
		Documente(doc).
		Build()
	require.NoError(t, err)
	return batch
}

func TestDefaultSubmitOptions(t *testing.T) {
	opts := intrari.DefaultSubmitOptions()

	assert.Equal(t, "localhost", opts.Host)
	assert.Equal(t, 8080, opts.Port)
	assert.Equal(t, "10s", opts.ConnectTimeout.String())
}

func TestNewDefaultSubmitter(t *testing.T) {
	s := intrari.NewDefaultSubmitter()
	assert.Equal(t, "http://localhost:8080/datasnap/rest/TServerMethods/IntrariFurnizori", s.Endpoint())
}

func TestSubmitter_Submit(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	u, err := url.Parse(ts.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	opts := intrari.DefaultSubmitOptions()
	opts.Host = u.Hostname()
	opts.Port = port

	receipt, err := intrari.NewSubmitter(opts).Submit(context.Background(), buildBatch(t))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, receipt.StatusCode)
	assert.Equal(t, intrari.FacturaIntrare, got["TipDocument"])
}

func TestSubmitter_InvalidBatch(t *testing.T) {
	_, err := intrari.NewDefaultSubmitter().Submit(context.Background(), intrari.IntrareFurnizori{})
	assert.ErrorIs(t, err, intrari.ErrEmptyDocuments)
}

func TestBuilderErrors(t *testing.T) {
	_, err := intrari.NewDocumentBuilder().Moneda("JPY").Items(intrari.NewItemBuilder().Build()).Build()
	require.ErrorIs(t, err, intrari.ErrInvalidCurrency)

	var verr *intrari.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "JPY", verr.Value)

	_, err = intrari.NewDocumentBuilder().Build()
	var merr *intrari.MissingFieldError
	assert.ErrorAs(t, err, &merr)
}

func TestEncode(t *testing.T) {
	body, err := intrari.Encode(buildBatch(t))
	require.NoError(t, err)
	assert.Contains(t, string(body), `"Autofacturare":"Nu"`)
	assert.Contains(t, string(body), `"items":[`)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")
	content := `
TipDocument: BON FISCAL
Documente:
  - NrDoc: "5"
    items:
      - IDArticol: A
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	batch, err := intrari.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, intrari.BonFiscal, *batch.TipDocument)
}
