package plorth

import "strings"

// Object is a mapping from string keys to values, preserving insertion
// order for iteration stability, with an optional explicit prototype
// pointer used for method lookup (spec section 3).
type Object struct {
	keys []string
	vals map[string]Value
	proto *Object
}

// NewObject builds an Object from keys (in the order they should iterate)
// and vals. Keys not present in vals are ignored.
func NewObject(keys []string, vals map[string]Value) *Object {
	obj := &Object{keys: append([]string(nil), keys...), vals: make(map[string]Value, len(vals))}
	for _, k := range obj.keys {
		if v, ok := vals[k]; ok {
			obj.vals[k] = v
		}
	}
	return obj
}

// emptyObject returns a fresh, prototype-less empty object.
func emptyObject() *Object {
	return &Object{vals: make(map[string]Value)}
}

func (o *Object) Kind() Kind { return KindObject }

func (o *Object) Equal(v Value) bool {
	other, ok := v.(*Object)
	if !ok || len(o.keys) != len(other.keys) {
		return false
	}
	for _, k := range o.keys {
		ov, ok := other.vals[k]
		if !ok || !o.vals[k].Equal(ov) {
			return false
		}
	}
	return true
}

func (o *Object) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(JSONStringify(k))
		sb.WriteString(": ")
		sb.WriteString(o.vals[k].String())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (o *Object) Source() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(JSONStringify(k))
		sb.WriteString(": ")
		sb.WriteString(o.vals[k].Source())
	}
	sb.WriteByte('}')
	return sb.String()
}

// Keys returns the object's keys in insertion order. Callers must not
// mutate the returned slice.
func (o *Object) Keys() []string { return o.keys }

// Get returns the value for key, if present.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.vals[key]
	return v, ok
}

// Prototype returns the object's explicit prototype slot, or nil.
func (o *Object) Prototype() *Object { return o.proto }

// WithPrototype returns a shallow copy of o with its prototype slot set.
func (o *Object) WithPrototype(proto *Object) *Object {
	cp := o.shallowCopy()
	cp.proto = proto
	return cp
}

// With returns a fresh object with key bound to v, preserving insertion
// order (appending key if new, otherwise keeping its existing position).
func (o *Object) With(key string, v Value) *Object {
	cp := o.shallowCopy()
	if _, exists := cp.vals[key]; !exists {
		cp.keys = append(cp.keys, key)
	}
	cp.vals[key] = v
	return cp
}

// Without returns a fresh object with key removed, if present.
func (o *Object) Without(key string) *Object {
	if _, exists := o.vals[key]; !exists {
		return o
	}
	cp := emptyObject()
	cp.proto = o.proto
	for _, k := range o.keys {
		if k == key {
			continue
		}
		cp.keys = append(cp.keys, k)
		cp.vals[k] = o.vals[k]
	}
	return cp
}

func (o *Object) shallowCopy() *Object {
	cp := &Object{
		keys:  append([]string(nil), o.keys...),
		vals:  make(map[string]Value, len(o.vals)),
		proto: o.proto,
	}
	for k, v := range o.vals {
		cp.vals[k] = v
	}
	return cp
}
