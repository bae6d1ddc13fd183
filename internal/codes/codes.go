// Package codes holds the closed classification sets used on supplier intake
// documents: VAT transaction types and VAT regimes per flow, payment modes,
// accepted currencies and accepted document types.
//
// All sets are fixed at compile time. Membership is exact equality; labels
// are not case-folded or trimmed.
package codes

import "slices"

// Flow identifies which side of the ledger a VAT code belongs to.
type Flow string

const (
	FlowIntrari Flow = "intrari"
	FlowInvoice Flow = "invoice"
	FlowIesiri  Flow = "iesiri"
)

// Flows lists the flows in registry order.
func Flows() []Flow {
	return []Flow{FlowIntrari, FlowInvoice, FlowIesiri}
}

// Code is a numeric classification code.
type Code int8

// Entry pairs a code with its human-readable name.
type Entry struct {
	Code Code
	Name string
}

// Set is an ordered, immutable list of codes.
type Set struct {
	entries []Entry
}

func newSet(entries ...Entry) Set {
	return Set{entries: entries}
}

// Codes returns the codes in registry order. The slice is a copy.
func (s Set) Codes() []Code {
	out := make([]Code, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Code
	}
	return out
}

// Entries returns code/name pairs in registry order. The slice is a copy.
func (s Set) Entries() []Entry {
	return slices.Clone(s.entries)
}

// Valid reports whether code belongs to the set.
func (s Set) Valid(code Code) bool {
	return slices.ContainsFunc(s.entries, func(e Entry) bool { return e.Code == code })
}

// Name returns the name registered for code, or "" if code is not in the set.
func (s Set) Name(code Code) string {
	for _, e := range s.entries {
		if e.Code == code {
			return e.Name
		}
	}
	return ""
}

// Len returns the number of codes in the set.
func (s Set) Len() int {
	return len(s.entries)
}

// LabelSet is an ordered, immutable list of string labels.
type LabelSet struct {
	labels []string
}

// Labels returns the labels in registry order. The slice is a copy.
func (s LabelSet) Labels() []string {
	return slices.Clone(s.labels)
}

// Valid reports whether label belongs to the set.
func (s LabelSet) Valid(label string) bool {
	return slices.Contains(s.labels, label)
}

// Len returns the number of labels in the set.
func (s LabelSet) Len() int {
	return len(s.labels)
}
