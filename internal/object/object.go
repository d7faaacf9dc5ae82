package object

import (
	"encoding/json"
	"reflect"
	"sort"
)

// Object is an insertion-ordered mapping from string keys to values. Values
// are *Object, []any, strings, booleans, numbers, nil, or any other value a
// consumer knows how to render.
type Object struct {
	keys   []string
	values map[string]any
}

// New returns an empty Object.
func New() *Object {
	return &Object{values: make(map[string]any)}
}

// FromMap builds an Object from a plain map. Go maps carry no order, so keys
// are sorted; nested maps are converted recursively.
func FromMap(m map[string]any) *Object {
	o := New()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		o.Set(k, Normalize(m[k]))
	}
	return o
}

// FromStrings builds an Object from a flat string map with sorted keys.
func FromStrings(m map[string]string) *Object {
	o := New()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		o.Set(k, m[k])
	}
	return o
}

// Normalize converts decoded map[string]any trees (TOML, generic YAML) into
// *Object trees. Other values are returned unchanged.
func Normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return FromMap(val)
	case map[string]string:
		return FromStrings(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Normalize(item)
		}
		return out
	case []map[string]any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = FromMap(item)
		}
		return out
	default:
		return v
	}
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Object returns the nested Object stored under key, if the value is one.
func (o *Object) Object(key string) (*Object, bool) {
	v, ok := o.Get(key)
	if !ok {
		return nil, false
	}
	child, ok := v.(*Object)
	return child, ok && child != nil
}

// Set stores value under key. A new key is appended; an existing key keeps
// its position. Set returns the receiver so literals can be chained.
func (o *Object) Set(key string, value any) *Object {
	if o.values == nil {
		o.values = make(map[string]any)
	}
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
	return o
}

// Delete removes key and reports whether it was present.
func (o *Object) Delete(key string) bool {
	if o == nil {
		return false
	}
	if _, ok := o.values[key]; !ok {
		return false
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return true
}

// Clone returns a deep copy of the Object.
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	out := &Object{
		keys:   make([]string, len(o.keys)),
		values: make(map[string]any, len(o.values)),
	}
	copy(out.keys, o.keys)
	for k, v := range o.values {
		out.values[k] = cloneValue(v)
	}
	return out
}

// ToMap converts the Object back into plain Go maps and slices, dropping
// key order. Useful for comparisons and generic encoders.
func (o *Object) ToMap() map[string]any {
	if o == nil {
		return nil
	}
	out := make(map[string]any, len(o.keys))
	for _, k := range o.keys {
		out[k] = toPlain(o.values[k])
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case *Object:
		return val.Clone()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	case map[string]any:
		return FromMap(val)
	default:
		return v
	}
}

func toPlain(v any) any {
	switch val := v.(type) {
	case *Object:
		return val.ToMap()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = toPlain(item)
		}
		return out
	default:
		return v
	}
}

// Equal reports whether a and b hold the same structure. Object key order is
// ignored; sequence order is not. Numbers decoded as json.Number compare
// equal to the same number held as a Go numeric type.
func Equal(a, b any) bool {
	switch av := a.(type) {
	case *Object:
		bv, ok := b.(*Object)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for _, k := range av.Keys() {
			bval, ok := bv.Get(k)
			if !ok {
				return false
			}
			aval, _ := av.Get(k)
			if !Equal(aval, bval) {
				return false
			}
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	}

	if af, ok := asFloat(a); ok {
		bf, ok := asFloat(b)
		return ok && af == bf
	}
	return reflect.DeepEqual(a, b)
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
