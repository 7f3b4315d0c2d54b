package objprint

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"reflect"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Rules is a serializable set of rules, typically read from a YAML file:
//
//	max_depth: 5
//	indent: "  "
//	exclude:
//	  - Phone.Owner
//	exclude_types:
//	  - int
//	max_length:
//	  Surname: 5
//	locales:
//	  float64: de-DE
//
// Selectors follow [ResolvePath]. Type names use Go syntax as printed by
// reflect.Type.String, such as "int", "time.Time" or "*main.Phone", and must
// be reachable from the root type or be one of the built-in leaf types. A
// named type may also be given by its bare name, "Phone", the way it appears
// in rendered output, as long as no other reachable type shares that name.
type Rules struct {
	MaxDepth     int               `yaml:"max_depth"`
	Indent       *string           `yaml:"indent"`
	Exclude      []string          `yaml:"exclude"`
	ExcludeTypes []string          `yaml:"exclude_types"`
	MaxLength    map[string]int    `yaml:"max_length"`
	Locales      map[string]string `yaml:"locales"`
}

// ReadRules decodes YAML rules from r. Unknown keys are rejected. An empty
// document yields empty rules.
func ReadRules(r io.Reader) (Rules, error) {
	var rs Rules
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rs); err != nil {
		if errors.Is(err, io.EOF) {
			return Rules{}, nil
		}
		return Rules{}, fmt.Errorf("read rules: %w", err)
	}
	return rs, nil
}

// ApplyRules folds rs into the configuration through the ordinary mutators,
// so selectors are validated and duplicates are detected as usual. Map
// entries are applied in key order.
func (c Config[T]) ApplyRules(rs Rules) Config[T] {
	if c.err != nil {
		return c
	}
	if rs.MaxDepth != 0 {
		c = c.WithMaxDepth(rs.MaxDepth)
	}
	if rs.Indent != nil {
		c = c.WithIndent(*rs.Indent)
	}

	types := reachableTypes(c.root)
	for _, name := range rs.ExcludeTypes {
		t, ok := types[name]
		if !ok {
			return c.fail(fmt.Errorf("%w: %q", ErrUnknownType, name))
		}
		c = c.ExcludeType(t)
	}
	for _, sel := range rs.Exclude {
		c = c.SelectMember(sel).Exclude()
	}
	for _, sel := range slices.Sorted(maps.Keys(rs.MaxLength)) {
		c = c.SelectMember(sel).SetMaxLength(rs.MaxLength[sel])
	}
	for _, name := range slices.Sorted(maps.Keys(rs.Locales)) {
		t, ok := types[name]
		if !ok {
			return c.fail(fmt.Errorf("%w: %q", ErrUnknownType, name))
		}
		tag, err := language.Parse(rs.Locales[name])
		if err != nil {
			return c.fail(fmt.Errorf("%w: %q: %v", ErrInvalidLocale, rs.Locales[name], err))
		}
		c = c.SetTypeLocale(t, tag)
	}
	return c
}

var builtinTypes = []reflect.Type{
	reflect.TypeFor[bool](),
	reflect.TypeFor[string](),
	reflect.TypeFor[int](),
	reflect.TypeFor[int8](),
	reflect.TypeFor[int16](),
	reflect.TypeFor[int32](),
	reflect.TypeFor[int64](),
	reflect.TypeFor[uint](),
	reflect.TypeFor[uint8](),
	reflect.TypeFor[uint16](),
	reflect.TypeFor[uint32](),
	reflect.TypeFor[uint64](),
	reflect.TypeFor[uintptr](),
	reflect.TypeFor[float32](),
	reflect.TypeFor[float64](),
	reflect.TypeFor[complex64](),
	reflect.TypeFor[complex128](),
	reflect.TypeFor[time.Time](),
	reflect.TypeFor[time.Duration](),
	reflect.TypeFor[uuid.UUID](),
	reflect.TypeFor[decimal.Decimal](),
}

// reachableTypes indexes by name every type reachable from root through
// pointers, elements, keys and struct fields, plus the built-in leaf types.
// Named types are also indexed by their bare name when it is unique.
func reachableTypes(root reflect.Type) map[string]reflect.Type {
	types := make(map[string]reflect.Type, len(builtinTypes))
	for _, t := range builtinTypes {
		types[t.String()] = t
	}
	var walk func(t reflect.Type)
	walk = func(t reflect.Type) {
		if t == nil {
			return
		}
		if _, seen := types[t.String()]; seen {
			return
		}
		types[t.String()] = t
		if isLeaf(t) {
			return
		}
		switch t.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Array:
			walk(t.Elem())
		case reflect.Map:
			walk(t.Key())
			walk(t.Elem())
		case reflect.Struct:
			for _, f := range fieldsOf(t) {
				walk(f.typ)
			}
		}
	}
	walk(root)

	bare := make(map[string]reflect.Type)
	ambiguous := make(map[string]bool)
	for _, t := range types {
		name := t.Name()
		if name == "" || name == t.String() {
			continue
		}
		if prev, ok := bare[name]; ok && prev != t {
			ambiguous[name] = true
			continue
		}
		bare[name] = t
	}
	for name, t := range bare {
		if _, taken := types[name]; !taken && !ambiguous[name] {
			types[name] = t
		}
	}
	return types
}
