package objprint

import (
	"cmp"
	"math"
	"reflect"
	"slices"
	"sync"
	"unsafe"
)

// field describes one readable data member of a struct type.
type field struct {
	name  string
	typ   reflect.Type
	index int
}

// fieldCache memoizes field lists by struct type.
var fieldCache sync.Map // key: reflect.Type, val: []field

// fieldsOf returns the data members of struct type t in declaration order,
// exported and unexported alike. Blank fields exist only as layout padding
// and are left out.
func fieldsOf(t reflect.Type) []field {
	if v, ok := fieldCache.Load(t); ok {
		return v.([]field)
	}
	fields := make([]field, 0, t.NumField())
	for i := range t.NumField() {
		sf := t.Field(i)
		if sf.Name == "_" {
			continue
		}
		fields = append(fields, field{name: sf.Name, typ: sf.Type, index: i})
	}
	v, _ := fieldCache.LoadOrStore(t, fields)
	return v.([]field)
}

// addressable returns v itself when it is addressable, otherwise a settable
// copy, so that unexported fields reached through it can be read.
func addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() || !v.CanInterface() {
		return v
	}
	c := reflect.New(v.Type()).Elem()
	c.Set(v)
	return c
}

// readable lifts the read-only flag reflect puts on values reached through
// unexported fields. Only addressable values can be lifted; others are
// returned unchanged and rendered from their kind alone.
func readable(v reflect.Value) reflect.Value {
	if v.CanInterface() || !v.CanAddr() {
		return v
	}
	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}

// pairOf reports whether v is a key/value element: a struct with fields named
// exactly Key and Value.
func pairOf(v reflect.Value) (key, value reflect.Value, ok bool) {
	if v.Kind() != reflect.Struct {
		return key, value, false
	}
	kf, kok := v.Type().FieldByName("Key")
	vf, vok := v.Type().FieldByName("Value")
	if !kok || !vok || len(kf.Index) != 1 || len(vf.Index) != 1 {
		return key, value, false
	}
	return readable(v.Field(kf.Index[0])), readable(v.Field(vf.Index[0])), true
}

// mapEntry is one key/value pair of a map.
type mapEntry struct {
	key, value reflect.Value
}

// sortedEntries returns the entries of map m in a stable order. Keys of
// ordered kinds compare by value; everything else compares by its rendered
// text. Entries are read by iteration so that keys which never compare equal
// to themselves, such as NaN, keep their values.
func sortedEntries(m reflect.Value, text func(reflect.Value) string) []mapEntry {
	entries := make([]mapEntry, 0, m.Len())
	iter := m.MapRange()
	for iter.Next() {
		entries = append(entries, mapEntry{key: iter.Key(), value: iter.Value()})
	}
	slices.SortStableFunc(entries, func(a, b mapEntry) int {
		if c, ok := compareKeys(a.key, b.key); ok {
			return c
		}
		return cmp.Compare(text(a.key), text(b.key))
	})
	return entries
}

func compareKeys(a, b reflect.Value) (int, bool) {
	if a.Kind() != b.Kind() {
		return 0, false
	}
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint()), true
	case reflect.String:
		return cmp.Compare(a.String(), b.String()), true
	case reflect.Float32, reflect.Float64:
		x, y := a.Float(), b.Float()
		if math.IsNaN(x) || math.IsNaN(y) {
			return 0, false
		}
		return cmp.Compare(x, y), true
	case reflect.Bool:
		switch {
		case a.Bool() == b.Bool():
			return 0, true
		case b.Bool():
			return -1, true
		default:
			return 1, true
		}
	}
	return 0, false
}
