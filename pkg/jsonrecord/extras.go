package jsonrecord

import (
	"fmt"
	"slices"
	"strings"
)

// Extras holds properties that are not part of a record's declared schema.
// Keys keep the order in which they were first set, so a decoded payload
// re-encodes its unknown properties in encounter order. The zero value is
// an empty map ready for use.
type Extras struct {
	keys   []string
	values map[string]any
}

// Set stores value under key. Setting an existing key replaces the value
// and keeps the key's original position.
func (e *Extras) Set(key string, value any) {
	if e.values == nil {
		e.values = make(map[string]any)
	}
	if _, ok := e.values[key]; !ok {
		e.keys = append(e.keys, key)
	}
	e.values[key] = value
}

func (e Extras) Get(key string) (any, bool) {
	v, ok := e.values[key]
	return v, ok
}

func (e *Extras) Delete(key string) {
	if _, ok := e.values[key]; !ok {
		return
	}
	delete(e.values, key)
	if i := slices.Index(e.keys, key); i >= 0 {
		e.keys = slices.Delete(e.keys, i, i+1)
	}
}

func (e Extras) Len() int { return len(e.keys) }

// Keys returns a copy of the keys in insertion order.
func (e Extras) Keys() []string {
	return slices.Clone(e.keys)
}

// Range calls fn for each entry in insertion order until fn returns false.
func (e Extras) Range(fn func(key string, value any) bool) {
	for _, k := range e.keys {
		if !fn(k, e.values[k]) {
			return
		}
	}
}

// Clone returns a copy that shares no storage with e. Values are copied
// shallowly.
func (e Extras) Clone() Extras {
	if len(e.keys) == 0 {
		return Extras{}
	}
	out := Extras{
		keys:   slices.Clone(e.keys),
		values: make(map[string]any, len(e.values)),
	}
	for k, v := range e.values {
		out.values[k] = v
	}
	return out
}

func (e Extras) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range e.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", k, e.values[k])
	}
	b.WriteByte('}')
	return b.String()
}
