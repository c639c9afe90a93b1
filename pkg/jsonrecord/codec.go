// Package jsonrecord encodes and decodes flat parameter records whose wire
// form has a fixed key order, omits unset fields, and carries unknown
// properties through unchanged.
//
// A record is a struct whose exported fields are pointers, slices or maps
// tagged with their JSON key, plus one field of type Extras. Fields are
// emitted in declaration order, then the unknown properties in the order
// they were first seen. A nil field is unset and is not emitted.
package jsonrecord

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"
)

type fieldInfo struct {
	key    string
	goName string
	index  int
}

type recordInfo struct {
	typeName string
	fields   []fieldInfo
	byKey    map[string]int
	extras   int
}

var (
	extrasType = reflect.TypeOf(Extras{})
	infoCache  sync.Map // reflect.Type -> *recordInfo
)

func infoFor(t reflect.Type) (*recordInfo, error) {
	if cached, ok := infoCache.Load(t); ok {
		return cached.(*recordInfo), nil
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("jsonrecord: %s is not a struct", t)
	}
	info := &recordInfo{typeName: t.Name(), byKey: make(map[string]int), extras: -1}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Type == extrasType {
			info.extras = i
			continue
		}
		key, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if key == "-" {
			continue
		}
		if key == "" {
			key = f.Name
		}
		switch f.Type.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		default:
			return nil, fmt.Errorf("jsonrecord: field %s.%s must be nillable to express an unset value", t.Name(), f.Name)
		}
		if _, dup := info.byKey[key]; dup {
			return nil, fmt.Errorf("jsonrecord: duplicate key %q in %s", key, t.Name())
		}
		info.byKey[key] = len(info.fields)
		info.fields = append(info.fields, fieldInfo{key: key, goName: f.Name, index: i})
	}
	actual, _ := infoCache.LoadOrStore(t, info)
	return actual.(*recordInfo), nil
}

// Marshal encodes a record (struct or pointer to struct).
func Marshal(v any) ([]byte, error) {
	rv := reflect.Indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return []byte("null"), nil
	}
	info, err := infoFor(rv.Type())
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	member := func(key string, value any) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		if err := encodeValue(&buf, key); err != nil {
			return err
		}
		buf.WriteByte(':')
		return encodeValue(&buf, value)
	}

	for _, f := range info.fields {
		fv := rv.Field(f.index)
		if fv.IsNil() {
			continue
		}
		if err := member(f.key, fv.Interface()); err != nil {
			return nil, fmt.Errorf("encode %s.%s: %w", info.typeName, f.key, err)
		}
	}
	if info.extras >= 0 {
		extras := rv.Field(info.extras).Interface().(Extras)
		for _, k := range extras.keys {
			// Declared fields own their keys.
			if _, declared := info.byKey[k]; declared {
				continue
			}
			if err := member(k, extras.values[k]); err != nil {
				return nil, fmt.Errorf("encode %s.%s: %w", info.typeName, k, err)
			}
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, v any) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}

// Unmarshal decodes a JSON object into the record pointed to by v. Declared
// keys fill their fields; any other key is appended to the record's Extras.
// A JSON null leaves the record untouched.
func Unmarshal(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("jsonrecord: unmarshal target must be a non-nil pointer, got %T", v)
	}
	rv = rv.Elem()
	info, err := infoFor(rv.Type())
	if err != nil {
		return err
	}

	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode %s: %w", info.typeName, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("decode %s: expected JSON object, got %v", info.typeName, tok)
	}

	var extras *Extras
	if info.extras >= 0 {
		extras = rv.Field(info.extras).Addr().Interface().(*Extras)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode %s: %w", info.typeName, err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("decode %s: unexpected token %v", info.typeName, tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("decode %s.%s: %w", info.typeName, key, err)
		}
		if pos, ok := info.byKey[key]; ok {
			target := rv.Field(info.fields[pos].index).Addr().Interface()
			if err := json.Unmarshal(raw, target); err != nil {
				return fmt.Errorf("decode %s.%s: %w", info.typeName, key, err)
			}
			continue
		}
		if extras == nil {
			continue
		}
		value, err := decodeAny(raw)
		if err != nil {
			return fmt.Errorf("decode %s.%s: %w", info.typeName, key, err)
		}
		extras.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode %s: %w", info.typeName, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s: trailing data after object", info.typeName)
	}
	return nil
}

func decodeAny(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// Describe renders a record as TypeName{Field=value, ..., Extras={k=v}} in
// declaration order. Unset fields render as <nil>.
func Describe(v any) string {
	rv := reflect.Indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return "<nil>"
	}
	info, err := infoFor(rv.Type())
	if err != nil {
		return fmt.Sprintf("<%s: %v>", rv.Type(), err)
	}
	var b strings.Builder
	b.WriteString(info.typeName)
	b.WriteByte('{')
	for i, f := range info.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.goName)
		b.WriteByte('=')
		b.WriteString(formatField(rv.Field(f.index)))
	}
	if info.extras >= 0 {
		if len(info.fields) > 0 {
			b.WriteString(", ")
		}
		b.WriteString("Extras=")
		b.WriteString(rv.Field(info.extras).Interface().(Extras).String())
	}
	b.WriteByte('}')
	return b.String()
}

func formatField(fv reflect.Value) string {
	if fv.IsNil() {
		return "<nil>"
	}
	if fv.Kind() == reflect.Pointer {
		if s, ok := fv.Interface().(fmt.Stringer); ok {
			return s.String()
		}
		return fmt.Sprint(fv.Elem().Interface())
	}
	return fmt.Sprint(fv.Interface())
}
