// Package schema describes the intake wire vocabulary as JSON Schema.
//
// The schema is derived from the json tags of the model records, so the
// record definitions stay the single field->label table. Two variants exist:
// Wire matches exactly what the client sends (every label present, strings
// or null), Input is what batch files may contain (labels optional, numbers
// allowed where strings are expected).
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/rezonia/intrari-furnizori/internal/model"
)

// Mode selects the schema variant.
type Mode int

const (
	Input Mode = iota
	Wire
)

func (m Mode) String() string {
	if m == Wire {
		return "wire"
	}
	return "input"
}

// Lists that must hold at least one element once built.
var requiredLists = map[string]bool{
	"Documente": true,
	"items":     true,
}

var dnType = reflect.TypeOf(model.DN(0))

// Build returns the schema of an intake batch as a generic map.
func Build(mode Mode) map[string]any {
	s := objectSchema(reflect.TypeOf(model.IntrareFurnizori{}), mode)
	s["$schema"] = "https://json-schema.org/draft/2020-12/schema"
	s["title"] = "IntrareFurnizori"
	return s
}

// Labels returns the wire labels of a record type in field order.
func Labels(record any) []string {
	t := reflect.TypeOf(record)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	labels := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if label := jsonLabel(t.Field(i)); label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}

func jsonLabel(f reflect.StructField) string {
	label, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if label == "-" {
		return ""
	}
	return label
}

func objectSchema(t reflect.Type, mode Mode) map[string]any {
	props := map[string]any{}
	required := []string{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		label := jsonLabel(f)
		if label == "" {
			continue
		}
		props[label] = fieldSchema(label, f.Type, mode)
		required = append(required, label)
	}

	s := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
	if mode == Wire {
		s["required"] = required
	}
	return s
}

func fieldSchema(label string, t reflect.Type, mode Mode) map[string]any {
	switch {
	case t.Kind() == reflect.Pointer && t.Elem() == dnType:
		enum := []any{}
		for _, token := range model.DNTokens() {
			enum = append(enum, token)
		}
		return map[string]any{"enum": append(enum, nil)}

	case t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.String:
		if mode == Input {
			return map[string]any{"type": []string{"string", "number", "null"}}
		}
		return map[string]any{"type": []string{"string", "null"}}

	case t.Kind() == reflect.Slice:
		s := map[string]any{
			"type":  []string{"array", "null"},
			"items": objectSchema(t.Elem(), mode),
		}
		if mode == Wire && requiredLists[label] {
			s["type"] = "array"
			s["minItems"] = 1
		}
		return s
	}

	panic(fmt.Sprintf("schema: unsupported field type %s for %q", t, label))
}

var (
	compileOnce [2]sync.Once
	compiled    [2]*jsonschema.Schema
	compileErr  [2]error
)

func compile(mode Mode) (*jsonschema.Schema, error) {
	compileOnce[mode].Do(func() {
		b, err := json.Marshal(Build(mode))
		if err != nil {
			compileErr[mode] = fmt.Errorf("marshal schema: %w", err)
			return
		}
		url := mode.String() + ".json"
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(url, bytes.NewReader(b)); err != nil {
			compileErr[mode] = fmt.Errorf("add schema: %w", err)
			return
		}
		compiled[mode], compileErr[mode] = compiler.Compile(url)
		if compileErr[mode] != nil {
			compileErr[mode] = fmt.Errorf("compile schema: %w", compileErr[mode])
		}
	})
	return compiled[mode], compileErr[mode]
}

// Validate checks a JSON document against the schema for mode.
func Validate(mode Mode, data []byte) error {
	s, err := compile(mode)
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("json does not match %s schema: %w", mode, err)
	}
	return nil
}
