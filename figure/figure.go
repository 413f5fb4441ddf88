// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package figure defines declarative chart documents.
//
// A Figure is a list of trace Objects and a layout Object. Both are
// nested mappings whose keys follow the plotly rendering schema. The
// figure factory builds these documents; a front end renders them.
package figure

import (
	"encoding/json"
	"math"
)

// Object is one mapping in a chart document: a trace, a layout, or
// any nested property such as an axis or a marker.
//
// Values are strings, bools, ints, float64s, nil, slices of those,
// []interface{}, []Object, or nested Objects.
type Object map[string]interface{}

// Update merges other into o. Nested Objects are merged recursively;
// all other values in other replace those in o.
func (o Object) Update(other Object) Object {
	for k, v := range other {
		if sub, ok := v.(Object); ok {
			if cur, ok := o[k].(Object); ok {
				cur.Update(sub)
				continue
			}
			v = sub.Copy()
		}
		o[k] = v
	}
	return o
}

// Copy returns a copy of o. Nested Objects are copied; other values
// are shared.
func (o Object) Copy() Object {
	if o == nil {
		return nil
	}
	n := make(Object, len(o))
	for k, v := range o {
		if sub, ok := v.(Object); ok {
			v = sub.Copy()
		}
		n[k] = v
	}
	return n
}

// Sub returns the nested Object at key, creating it if necessary.
func (o Object) Sub(key string) Object {
	if sub, ok := o[key].(Object); ok {
		return sub
	}
	sub := Object{}
	o[key] = sub
	return sub
}

// A Figure is a complete chart document.
type Figure struct {
	Data   []Object
	Layout Object
}

// MarshalJSON encodes f as {"data": [...], "layout": {...}}.
// Non-finite floats, which JSON cannot represent, are encoded as null.
func (f *Figure) MarshalJSON() ([]byte, error) {
	data := make([]interface{}, len(f.Data))
	for i, tr := range f.Data {
		data[i] = jsonValue(tr)
	}
	layout := jsonValue(f.Layout)
	if f.Layout == nil {
		layout = map[string]interface{}{}
	}
	return json.Marshal(map[string]interface{}{
		"data":   data,
		"layout": layout,
	})
}

func jsonValue(v interface{}) interface{} {
	switch v := v.(type) {
	case Object:
		if v == nil {
			return nil
		}
		m := make(map[string]interface{}, len(v))
		for k, x := range v {
			m[k] = jsonValue(x)
		}
		return m
	case []Object:
		s := make([]interface{}, len(v))
		for i, x := range v {
			s[i] = jsonValue(x)
		}
		return s
	case []interface{}:
		s := make([]interface{}, len(v))
		for i, x := range v {
			s[i] = jsonValue(x)
		}
		return s
	case []float64:
		finite := true
		for _, x := range v {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				finite = false
				break
			}
		}
		if finite {
			return v
		}
		s := make([]interface{}, len(v))
		for i, x := range v {
			s[i] = jsonValue(x)
		}
		return s
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
	}
	return v
}
