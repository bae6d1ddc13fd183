package model

import (
	"fmt"
	"reflect"
	"strings"
)

// unsetLabels zeroes the fields of *record whose json label is in labels.
func unsetLabels(record any, labels []string) {
	v := reflect.ValueOf(record).Elem()
	t := v.Type()
	for _, label := range labels {
		i := fieldByLabel(t, label)
		if i < 0 {
			panic(fmt.Sprintf("model: %s has no field labelled %q", t.Name(), label))
		}
		f := v.Field(i)
		f.Set(reflect.Zero(f.Type()))
	}
}

func fieldByLabel(t reflect.Type, label string) int {
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == label {
			return i
		}
	}
	return -1
}
