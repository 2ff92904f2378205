package codec

import (
	"bytes"
	"encoding/json"
	"time"
)

// Object is a decoded server JSON object with presence-driven accessors.
// Missing keys and mismatched types read as absent values, never as
// failures; server responses are trusted on the read side.
type Object map[string]any

// Decode parses raw JSON into an Object. Numbers are kept as json.Number
// so integer identifiers survive undamaged.
func Decode(raw []byte) (Object, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var obj Object
	if err := dec.Decode(&obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// DecodeArray parses raw JSON holding a top-level array of objects, the
// shape of sub-resource listings. Elements that are not objects are
// skipped.
func DecodeArray(raw []byte) ([]Object, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var arr []any
	if err := dec.Decode(&arr); err != nil {
		return nil, err
	}
	items := make([]Object, 0, len(arr))
	for _, elem := range arr {
		if m, ok := elem.(map[string]any); ok {
			items = append(items, Object(m))
		}
	}
	return items, nil
}

// Has reports whether the key is present.
func (o Object) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// String reads a string value.
func (o Object) String(key string) (string, bool) {
	v, ok := o[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Int64 reads an integer value.
func (o Object) Int64(key string) (int64, bool) {
	v, ok := o[key]
	if !ok {
		return 0, false
	}
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	i, err := n.Int64()
	if err != nil {
		return 0, false
	}
	return i, true
}

// Bool reads a boolean value.
func (o Object) Bool(key string) (bool, bool) {
	v, ok := o[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// Child reads a nested object.
func (o Object) Child(key string) (Object, bool) {
	v, ok := o[key]
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return Object(m), true
}

// Objects reads an array of nested objects, e.g. a page's items. Elements
// that are not objects are skipped.
func (o Object) Objects(key string) ([]Object, bool) {
	v, ok := o[key]
	if !ok {
		return nil, false
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	items := make([]Object, 0, len(arr))
	for _, elem := range arr {
		if m, ok := elem.(map[string]any); ok {
			items = append(items, Object(m))
		}
	}
	return items, true
}

// RefID flattens a nested reference object, extracting its "id". A missing
// child or missing id reads as absent.
func (o Object) RefID(key string) (int64, bool) {
	child, ok := o.Child(key)
	if !ok {
		return 0, false
	}
	return child.Int64("id")
}

// RefName flattens a nested reference object, extracting its "name".
func (o Object) RefName(key string) (string, bool) {
	child, ok := o.Child(key)
	if !ok {
		return "", false
	}
	return child.String("name")
}

// Date reads a date value serialized as an array of integer components.
// A missing key reads as absent; a present but malformed array is a fatal
// deserialization error.
func (o Object) Date(key string) (time.Time, bool, error) {
	v, ok := o[key]
	if !ok {
		return time.Time{}, false, nil
	}
	arr, ok := v.([]any)
	if !ok {
		return time.Time{}, false, Invalidf("%s is not a date array", key)
	}
	t, err := ParseDateArray(arr)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}
