package objprint

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"unicode"
)

// PropertyPath identifies one member location in a type graph: the root type
// name followed by member names from root to leaf. Paths are compared by
// their dot-joined [PropertyPath.String] form only.
type PropertyPath []string

// NewPropertyPath returns a path made of the given segments.
func NewPropertyPath(segments ...string) PropertyPath {
	return slices.Clone(PropertyPath(segments))
}

// String returns the dot-joined form used as the lookup key.
func (p PropertyPath) String() string { return strings.Join(p, ".") }

// Append returns a new path with name added as the leaf segment. The
// receiver is never modified and never shares its backing array with the
// result.
func (p PropertyPath) Append(name string) PropertyPath {
	out := make(PropertyPath, len(p), len(p)+1)
	copy(out, p)
	return append(out, name)
}

// ResolvePath validates selector against root and returns its canonical path.
//
// A selector is a dotted chain of member names relative to root, such as
// "Phone.Owner". Every segment must name a field declared directly on the
// type reached so far; promoted fields, method calls, literals and names that
// are not members of root are rejected with a [*SelectorError]. A segment
// equal to the element type name of a slice, array or map steps into that
// element type, mirroring the path built while rendering collections.
func ResolvePath(root reflect.Type, selector string) (PropertyPath, error) {
	if root == nil {
		return nil, &SelectorError{Selector: selector, Root: "<nil>", Reason: "no root type"}
	}
	rootName := typeName(root)
	fail := func(format string, args ...any) (PropertyPath, error) {
		return nil, &SelectorError{Selector: selector, Root: rootName, Reason: fmt.Sprintf(format, args...)}
	}

	switch {
	case selector == "":
		return fail("selector is empty")
	case strings.ContainsAny(selector, "()"):
		return fail("selector must not call methods")
	case isLiteral(selector):
		return fail("selector must not be a literal")
	case strings.ContainsFunc(selector, unicode.IsSpace):
		return fail("selector must not contain spaces")
	}

	segments := strings.Split(selector, ".")
	path := make(PropertyPath, 0, len(segments)+1)
	path = append(path, rootName)
	t := root
	for i, seg := range segments {
		if !isIdentifier(seg) {
			return fail("segment %d %q is not an identifier", i+1, seg)
		}
		next, ok := memberType(t, seg)
		if !ok {
			if i == 0 {
				return fail("%q is not a member of %s", seg, rootName)
			}
			return fail("%q is not a direct member of %s", seg, typeName(t))
		}
		path = append(path, seg)
		t = next
	}
	return path, nil
}

// memberType returns the type reached from t through one selector segment.
func memberType(t reflect.Type, name string) (reflect.Type, bool) {
	t = derefType(t)
	switch t.Kind() {
	case reflect.Struct:
		for _, f := range fieldsOf(t) {
			if f.name == name {
				return f.typ, true
			}
		}
	case reflect.Slice, reflect.Array:
		if typeName(t.Elem()) == name {
			return t.Elem(), true
		}
	case reflect.Map:
		if typeName(t.Elem()) == name {
			return t.Elem(), true
		}
		if typeName(t.Key()) == name {
			return t.Key(), true
		}
	}
	return nil, false
}

func isLiteral(s string) bool {
	switch s {
	case "true", "false", "nil":
		return true
	}
	r := []rune(s)[0]
	return r == '"' || r == '\'' || r == '`' || r == '-' || r == '+' || unicode.IsDigit(r)
}

func isIdentifier(s string) bool {
	if s == "" || s == "_" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// typeName returns the display name of t with pointers removed. Named types
// use their bare name; unnamed types such as []int use their literal form.
func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	t = derefType(t)
	if n := t.Name(); n != "" {
		return n
	}
	return t.String()
}

func derefType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
