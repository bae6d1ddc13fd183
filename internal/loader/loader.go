// Package loader turns batch files into validated intake batches.
//
// Files use the wire labels. Every document and the batch itself go through
// the model builders, so a loaded batch satisfies the same invariants as one
// assembled in code.
package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rezonia/intrari-furnizori/internal/decimal"
	"github.com/rezonia/intrari-furnizori/internal/model"
	"github.com/rezonia/intrari-furnizori/internal/schema"
)

// Format identifies a batch file format.
type Format string

const (
	FormatYAML     Format = "yaml"
	FormatWorkbook Format = "xlsx"
	FormatUnknown  Format = "unknown"
)

// DetectFormat picks the format from the file extension. JSON is read by
// the YAML decoder.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return FormatYAML
	case ".xlsx":
		return FormatWorkbook
	default:
		return FormatUnknown
	}
}

// LoadFile reads and builds the batch stored at path.
func LoadFile(path string) (model.IntrareFurnizori, error) {
	format := DetectFormat(path)
	if format == FormatUnknown {
		return model.IntrareFurnizori{}, fmt.Errorf("%s: unsupported file format", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return model.IntrareFurnizori{}, fmt.Errorf("failed to open batch file: %w", err)
	}
	defer f.Close()

	var batch model.IntrareFurnizori
	switch format {
	case FormatWorkbook:
		batch, err = LoadWorkbook(f)
	default:
		batch, err = LoadYAML(f)
	}
	if err != nil {
		return model.IntrareFurnizori{}, fmt.Errorf("%s: %w", path, err)
	}
	return batch, nil
}

// LoadYAML reads a YAML (or JSON) batch document. Quote values whose leading
// zeros matter (LunaLucru: "02"); bare numbers are normalised to canonical
// decimal strings.
func LoadYAML(r io.Reader) (model.IntrareFurnizori, error) {
	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return model.IntrareFurnizori{}, fmt.Errorf("empty batch file")
		}
		return model.IntrareFurnizori{}, fmt.Errorf("failed to parse batch file: %w", err)
	}
	return FromMap(raw)
}

// FromMap builds a batch from generic decoded values keyed by wire label.
func FromMap(raw map[string]any) (model.IntrareFurnizori, error) {
	data, err := json.Marshal(plain(raw))
	if err != nil {
		return model.IntrareFurnizori{}, fmt.Errorf("failed to encode batch: %w", err)
	}
	if err := schema.Validate(schema.Input, data); err != nil {
		return model.IntrareFurnizori{}, err
	}

	data, err = stringifyNumbers(data)
	if err != nil {
		return model.IntrareFurnizori{}, err
	}

	var staged model.IntrareFurnizori
	if err := json.Unmarshal(data, &staged); err != nil {
		return model.IntrareFurnizori{}, fmt.Errorf("failed to decode batch: %w", err)
	}
	return build(staged)
}

func build(staged model.IntrareFurnizori) (model.IntrareFurnizori, error) {
	b := model.NewIntrareFurnizoriBuilder()
	if staged.TipDocument != nil {
		b.TipDocument(*staged.TipDocument)
	}
	if staged.AnLucru != nil {
		b.AnLucru(*staged.AnLucru)
	}
	if staged.LunaLucru != nil {
		b.LunaLucru(*staged.LunaLucru)
	}

	if staged.Documente != nil {
		docs := make([]model.Document, 0, len(staged.Documente))
		for i, d := range staged.Documente {
			doc, err := model.NewDocumentBuilder().From(d).Build()
			if err != nil {
				return model.IntrareFurnizori{}, fmt.Errorf("%s: %w", documentRef(i, d), err)
			}
			docs = append(docs, doc)
		}
		b.Documente(docs...)
	}

	return b.Build()
}

func documentRef(i int, d model.Document) string {
	if d.NrDoc != nil {
		return fmt.Sprintf("document %d (NrDoc %s)", i+1, *d.NrDoc)
	}
	return fmt.Sprintf("document %d", i+1)
}

// plain converts YAML-decoded values into types encoding/json accepts.
func plain(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = plain(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = plain(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = plain(val)
		}
		return out
	case time.Time:
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
			return t.Format(time.DateOnly)
		}
		return t.Format(time.RFC3339)
	default:
		return v
	}
}

// stringifyNumbers rewrites every JSON number as its canonical decimal string.
func stringifyNumbers(data []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode batch: %w", err)
	}

	var walk func(any) any
	walk = func(v any) any {
		switch t := v.(type) {
		case map[string]any:
			for k, val := range t {
				t[k] = walk(val)
			}
			return t
		case []any:
			for i, val := range t {
				t[i] = walk(val)
			}
			return t
		case json.Number:
			if d, err := decimal.FromNumber(t); err == nil {
				return decimal.Canonical(d)
			}
			return t.String()
		default:
			return v
		}
	}

	return json.Marshal(walk(v))
}
