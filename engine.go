package objprint

import (
	"reflect"
	"strings"

	"go.uber.org/zap"
)

// DepthSentinel replaces the remaining members of an object once the depth
// limit is reached.
const DepthSentinel = "Deepness exceeded!"

const (
	newline  = "\n"
	nullText = "null"
)

// printer walks a value graph and renders it under one set of rules. It is
// created per render call and holds no state besides the rules.
type printer struct {
	*rules
	trimSet string
}

func newPrinter(r *rules) printer {
	return printer{rules: r, trimSet: "\r\n" + r.indent}
}

// print renders v. Every result ends with a line terminator.
func (p printer) print(v reflect.Value, nesting, depth int, path PropertyPath) string {
	v, ok := deref(v)
	if !ok {
		return nullText + newline
	}
	t := v.Type()

	if tag, ok := p.typeLocales[t]; ok {
		if s, ok := localized(readable(v), tag); ok {
			return s + newline
		}
	}
	if isLeaf(t) {
		return leafText(readable(v)) + newline
	}

	if len(path) == 0 {
		path = PropertyPath{typeName(t)}
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return p.printCollection(v, nesting, depth, path)
	case reflect.Struct:
		return p.printStruct(v, nesting, depth, path)
	default:
		return typeName(t) + newline
	}
}

func (p printer) printStruct(v reflect.Value, nesting, depth int, path PropertyPath) string {
	v = addressable(v)
	var sb strings.Builder
	sb.WriteString(typeName(v.Type()) + newline)
	indent := strings.Repeat(p.indent, nesting+1)

	for _, f := range fieldsOf(v.Type()) {
		memberPath := path.Append(f.name)
		key := memberPath.String()
		if p.isExcluded(f.typ, key) {
			continue
		}
		if depth >= p.maxDepth {
			p.sentinel(&sb, indent, memberPath, depth)
			break
		}
		sb.WriteString(p.printMember(readable(v.Field(f.index)), f.typ, indent+f.name+" = ", nesting, depth, memberPath))
	}
	return sb.String()
}

// printMember renders one struct member after prefix, applying path rules
// before type rules.
func (p printer) printMember(v reflect.Value, declared reflect.Type, prefix string, nesting, depth int, path PropertyPath) string {
	key := path.String()
	if f, ok := p.pathFormatters[key]; ok {
		p.logger.Debug("path formatter", zap.String("path", key))
		return prefix + terminate(f(interfaceOf(v)))
	}
	text := p.printValue(v, declared, nesting, depth, path)
	if n, ok := p.pathMaxLength[key]; ok {
		return p.truncate(prefix+text, prefix, n)
	}
	return prefix + text
}

// printValue renders a member or element one level down, through a type
// formatter when one matches the declared or the dynamic type.
func (p printer) printValue(v reflect.Value, declared reflect.Type, nesting, depth int, path PropertyPath) string {
	if f, fv, ok := p.typeFormatter(v, declared); ok {
		return terminate(f(interfaceOf(fv)))
	}
	return p.print(v, nesting+1, depth+1, path)
}

func (p printer) printCollection(v reflect.Value, nesting, depth int, path PropertyPath) string {
	var sb strings.Builder
	t := v.Type()
	sb.WriteString(typeName(t) + newline)
	indent := strings.Repeat(p.indent, nesting+1)

	if t.Kind() == reflect.Map {
		entries := sortedEntries(v, func(k reflect.Value) string {
			return p.print(k, nesting+1, depth+1, path)
		})
		for _, e := range entries {
			if depth >= p.maxDepth && (p.descends(e.key, t.Key()) || p.descends(e.value, t.Elem())) {
				p.sentinel(&sb, indent, path, depth)
				break
			}
			sb.WriteString(indent + p.printPair(e.key, e.value, t.Key(), t.Elem(), nesting, depth, path))
		}
		return sb.String()
	}

	for i := range v.Len() {
		e := readable(v.Index(i))
		if dv, ok := deref(e); ok {
			if k, val, ok := pairOf(addressable(dv)); ok {
				if depth >= p.maxDepth && (p.descends(k, k.Type()) || p.descends(val, val.Type())) {
					p.sentinel(&sb, indent, path, depth)
					break
				}
				sb.WriteString(indent + p.printPair(k, val, k.Type(), val.Type(), nesting, depth, path))
				continue
			}
		}
		if depth >= p.maxDepth && p.descends(e, t.Elem()) {
			p.sentinel(&sb, indent, path, depth)
			break
		}
		sb.WriteString(indent + p.printValue(e, t.Elem(), nesting, depth, path.Append(elementName(e, t.Elem()))))
	}
	return sb.String()
}

// descends reports whether rendering v would recurse into members or
// elements. Nil values, leaves and values taken over by a formatter or a
// locale render on one line and are never cut by the depth limit.
func (p printer) descends(v reflect.Value, declared reflect.Type) bool {
	if _, _, ok := p.typeFormatter(v, declared); ok {
		return false
	}
	dv, ok := deref(v)
	if !ok {
		return false
	}
	t := dv.Type()
	if tag, ok := p.typeLocales[t]; ok {
		if _, ok := localized(readable(dv), tag); ok {
			return false
		}
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct:
		return !isLeaf(t)
	}
	return false
}

// printPair renders "key = value" on one line.
func (p printer) printPair(k, v reflect.Value, keyType, valType reflect.Type, nesting, depth int, path PropertyPath) string {
	key := p.printValue(k, keyType, nesting, depth, path.Append(elementName(k, keyType)))
	val := p.printValue(v, valType, nesting, depth, path.Append(elementName(v, valType)))
	return strings.TrimRight(key, p.trimSet) + " = " + strings.TrimRight(val, p.trimSet) + newline
}

func (p printer) sentinel(sb *strings.Builder, indent string, path PropertyPath, depth int) {
	p.logger.Debug("depth limit reached",
		zap.String("path", path.String()),
		zap.Int("depth", depth),
		zap.Int("max_depth", p.maxDepth))
	sb.WriteString(indent + DepthSentinel + newline)
}

func (p printer) typeFormatter(v reflect.Value, declared reflect.Type) (Formatter, reflect.Value, bool) {
	if f, ok := p.typeFormatters[declared]; ok {
		return f, v, true
	}
	if dv, ok := deref(v); ok && dv.Type() != declared {
		if f, ok := p.typeFormatters[dv.Type()]; ok {
			return f, dv, true
		}
	}
	return nil, v, false
}

// deref follows pointers and interfaces. It reports false for nil values.
func deref(v reflect.Value) (reflect.Value, bool) {
	for {
		if !v.IsValid() {
			return v, false
		}
		switch v.Kind() {
		case reflect.Pointer, reflect.Interface:
			if v.IsNil() {
				return v, false
			}
			v = v.Elem()
		case reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return v, !v.IsNil()
		default:
			return v, true
		}
	}
}

// elementName is the path segment for a collection element: its dynamic type
// name, or the static one for nil elements.
func elementName(v reflect.Value, static reflect.Type) string {
	if dv, ok := deref(v); ok {
		return typeName(dv.Type())
	}
	return typeName(static)
}

// interfaceOf returns the value handed to a Formatter.
func interfaceOf(v reflect.Value) any {
	switch {
	case !v.IsValid():
		return nil
	case v.CanInterface():
		return v.Interface()
	case isLeaf(v.Type()):
		return leafText(v)
	default:
		return nil
	}
}

func terminate(s string) string {
	if strings.HasSuffix(s, newline) {
		return s
	}
	return s + newline
}
