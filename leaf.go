package objprint

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LocaleFormatter is implemented by types with a locale-specific textual
// form. A locale registered with [Config.SetTypeLocale] for such a type is
// passed to FormatLocale. Numeric kinds are localized without it.
type LocaleFormatter interface {
	FormatLocale(tag language.Tag) string
}

var (
	timeType       = reflect.TypeFor[time.Time]()
	uuidType       = reflect.TypeFor[uuid.UUID]()
	decimalType    = reflect.TypeFor[decimal.Decimal]()
	bigIntType     = reflect.TypeFor[big.Int]()
	bigFloatType   = reflect.TypeFor[big.Float]()
	stringerType   = reflect.TypeFor[fmt.Stringer]()
	localeFmtrType = reflect.TypeFor[LocaleFormatter]()
)

// isLeaf reports whether values of t render as a single line of text rather
// than being expanded into members or elements.
func isLeaf(t reflect.Type) bool {
	switch t {
	case timeType, uuidType, decimalType, bigIntType, bigFloatType:
		return true
	}
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

// leafText returns the default textual form of a leaf value. Types with a
// String method use it when the value can be interfaced; otherwise the kind
// decides.
func leafText(v reflect.Value) string {
	if v.CanInterface() {
		if s, ok := asStringer(v); ok {
			return s.String()
		}
	}
	switch v.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case reflect.Complex64:
		return strconv.FormatComplex(v.Complex(), 'g', -1, 64)
	case reflect.Complex128:
		return strconv.FormatComplex(v.Complex(), 'g', -1, 128)
	default:
		return fmt.Sprint(v)
	}
}

// asStringer finds a String method on v or, for addressable values, on *v.
// big.Int and big.Float only declare it on the pointer.
func asStringer(v reflect.Value) (fmt.Stringer, bool) {
	if v.Type().Implements(stringerType) {
		return v.Interface().(fmt.Stringer), true
	}
	if v.CanAddr() && reflect.PointerTo(v.Type()).Implements(stringerType) {
		return v.Addr().Interface().(fmt.Stringer), true
	}
	return nil, false
}

// localized returns the text of v in the given locale, or false when v has no
// locale-aware form.
func localized(v reflect.Value, tag language.Tag) (string, bool) {
	if v.CanInterface() {
		if v.Type().Implements(localeFmtrType) {
			return v.Interface().(LocaleFormatter).FormatLocale(tag), true
		}
		if v.CanAddr() && reflect.PointerTo(v.Type()).Implements(localeFmtrType) {
			return v.Addr().Interface().(LocaleFormatter).FormatLocale(tag), true
		}
	}
	p := message.NewPrinter(tag)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return p.Sprint(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return p.Sprint(v.Uint()), true
	case reflect.Float32:
		return p.Sprint(float32(v.Float())), true
	case reflect.Float64:
		return p.Sprint(v.Float()), true
	}
	return "", false
}
