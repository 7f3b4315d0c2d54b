package objprint_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/bjaus/objprint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// --- Test types: selectors ---

type Base struct {
	ID int
}

type Derived struct {
	Base
	Title string
}

type Team struct {
	Lead    Person
	Members []Person
	ByRole  map[string]*Person
}

func TestResolvePath(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		root     reflect.Type
		selector string
		want     string
	}{
		"direct member": {
			root: reflect.TypeFor[Person](), selector: "Name", want: "Person.Name",
		},
		"nested member": {
			root: reflect.TypeFor[Contact](), selector: "Phone.Owner", want: "Contact.Phone.Owner",
		},
		"through pointer": {
			root: reflect.TypeFor[Contact](), selector: "Phone.Owner.Surname", want: "Contact.Phone.Owner.Surname",
		},
		"pointer root": {
			root: reflect.TypeFor[*Contact](), selector: "Name", want: "Contact.Name",
		},
		"embedded struct": {
			root: reflect.TypeFor[Derived](), selector: "Base.ID", want: "Derived.Base.ID",
		},
		"slice element": {
			root: reflect.TypeFor[Team](), selector: "Members.Person.Age", want: "Team.Members.Person.Age",
		},
		"map element": {
			root: reflect.TypeFor[Team](), selector: "ByRole.Person.Name", want: "Team.ByRole.Person.Name",
		},
		"unexported member": {
			root: reflect.TypeFor[secret](), selector: "label", want: "secret.label",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := objprint.ResolvePath(tt.root, tt.selector)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestResolvePathErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		root     reflect.Type
		selector string
		reason   string
	}{
		"empty":            {root: reflect.TypeFor[Person](), selector: "", reason: "selector is empty"},
		"method call":      {root: reflect.TypeFor[Person](), selector: "Name()", reason: "selector must not call methods"},
		"string literal":   {root: reflect.TypeFor[Person](), selector: `"Name"`, reason: "selector must not be a literal"},
		"number literal":   {root: reflect.TypeFor[Person](), selector: "42", reason: "selector must not be a literal"},
		"bool literal":     {root: reflect.TypeFor[Person](), selector: "true", reason: "selector must not be a literal"},
		"spaces":           {root: reflect.TypeFor[Person](), selector: "Phone. Owner", reason: "selector must not contain spaces"},
		"empty segment":    {root: reflect.TypeFor[Contact](), selector: "Phone..Owner", reason: `segment 2 "" is not an identifier`},
		"blank segment":    {root: reflect.TypeFor[Contact](), selector: "_", reason: `segment 1 "_" is not an identifier`},
		"external value":   {root: reflect.TypeFor[Person](), selector: "other.Name", reason: `"other" is not a member of Person`},
		"unknown nested":   {root: reflect.TypeFor[Contact](), selector: "Phone.Missing", reason: `"Missing" is not a direct member of Phone`},
		"promoted field":   {root: reflect.TypeFor[Derived](), selector: "ID", reason: `"ID" is not a member of Derived`},
		"leaf has members": {root: reflect.TypeFor[Person](), selector: "Name.Length", reason: `"Length" is not a direct member of string`},
		"interface root":   {root: reflect.TypeFor[any](), selector: "Name", reason: `"Name" is not a member of interface {}`},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := objprint.ResolvePath(tt.root, tt.selector)
			assert.Nil(t, got)
			require.ErrorIs(t, err, objprint.ErrInvalidSelector)
			var selErr *objprint.SelectorError
			require.ErrorAs(t, err, &selErr)
			assert.Equal(t, tt.reason, selErr.Reason)
			assert.Equal(t, tt.selector, selErr.Selector)
		})
	}
}

func TestResolvePathNilRoot(t *testing.T) {
	t.Parallel()
	_, err := objprint.ResolvePath(nil, "Name")
	assert.ErrorIs(t, err, objprint.ErrInvalidSelector)
}

func TestPropertyPath(t *testing.T) {
	t.Parallel()
	base := objprint.NewPropertyPath("Person", "Phone")
	a := base.Append("Owner")
	b := base.Append("Number")
	assert.Equal(t, "Person.Phone", base.String())
	assert.Equal(t, "Person.Phone.Owner", a.String())
	assert.Equal(t, "Person.Phone.Number", b.String())
}

func TestSelectMember(t *testing.T) {
	t.Parallel()
	m := objprint.For[Contact]().SelectMember("Phone.Owner")
	require.NoError(t, m.Err())
	assert.Equal(t, "Phone.Owner", m.Selector())
	assert.Equal(t, objprint.NewPropertyPath("Contact", "Phone", "Owner"), m.Path())

	bad := objprint.For[Contact]().SelectMember("Phone.Owner()")
	require.ErrorIs(t, bad.Err(), objprint.ErrInvalidSelector)
	assert.Nil(t, bad.Path())
	cfg := bad.SetFormatter(func(any) string { return "" })
	assert.ErrorIs(t, cfg.Err(), objprint.ErrInvalidSelector)
}

func TestExcludePathMatchesSelectMember(t *testing.T) {
	t.Parallel()
	c := Contact{Name: "Bob", Phone: Phone{Number: "555"}}
	byPath, err := objprint.For[Contact]().
		ExcludePath(objprint.NewPropertyPath("Contact", "Phone", "Number")).
		PrintToString(c)
	require.NoError(t, err)
	bySelector, err := objprint.For[Contact]().SelectMember("Phone.Number").Exclude().PrintToString(c)
	require.NoError(t, err)
	assert.Equal(t, bySelector, byPath)
	assert.NotContains(t, byPath, "555")
}

func TestDuplicateRules(t *testing.T) {
	t.Parallel()
	intType := reflect.TypeFor[int]()
	path := objprint.NewPropertyPath("Person", "Name")
	noop := objprint.Formatter(func(any) string { return "" })
	tests := map[string]struct {
		build func() objprint.Config[Person]
		rule  string
		key   string
	}{
		"exclude type": {
			build: func() objprint.Config[Person] {
				return objprint.For[Person]().ExcludeType(intType).ExcludeType(intType)
			},
			rule: "type exclusion", key: "int",
		},
		"exclude path": {
			build: func() objprint.Config[Person] {
				return objprint.For[Person]().SelectMember("Name").Exclude().ExcludePath(path)
			},
			rule: "path exclusion", key: "Person.Name",
		},
		"type formatter": {
			build: func() objprint.Config[Person] {
				return objprint.For[Person]().SetTypeFormatter(intType, noop).SetTypeFormatter(intType, noop)
			},
			rule: "type formatter", key: "int",
		},
		"path formatter": {
			build: func() objprint.Config[Person] {
				return objprint.For[Person]().SelectMember("Name").SetFormatter(noop).SetPathFormatter(path, noop)
			},
			rule: "path formatter", key: "Person.Name",
		},
		"type locale": {
			build: func() objprint.Config[Person] {
				return objprint.For[Person]().
					SetTypeLocale(intType, language.German).
					SetTypeLocale(intType, language.English)
			},
			rule: "type locale", key: "int",
		},
		"max length": {
			build: func() objprint.Config[Person] {
				return objprint.For[Person]().SelectMember("Name").SetMaxLength(1).SetPathMaxLength(path, 2)
			},
			rule: "max length", key: "Person.Name",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cfg := tt.build()
			require.ErrorIs(t, cfg.Err(), objprint.ErrDuplicateRule)
			var dupErr *objprint.DuplicateRuleError
			require.ErrorAs(t, cfg.Err(), &dupErr)
			assert.Equal(t, tt.rule, dupErr.Rule)
			assert.Equal(t, tt.key, dupErr.Key)

			_, err := cfg.PrintToString(alex())
			assert.ErrorIs(t, err, objprint.ErrDuplicateRule)
		})
	}
}

func TestDifferentRuleKindsDoNotConflict(t *testing.T) {
	t.Parallel()
	cfg := objprint.For[Person]().
		SelectMember("Name").SetMaxLength(2).
		SelectMember("Name").SetFormatter(func(any) string { return "n" }).
		SetTypeFormatter(reflect.TypeFor[string](), objprint.FormatterFor(func(s string) string { return s })).
		ExcludeType(reflect.TypeFor[string]())
	require.NoError(t, cfg.Err())
}

func TestFirstErrorSticks(t *testing.T) {
	t.Parallel()
	cfg := objprint.For[Person]().
		SelectMember("Missing").Exclude().
		ExcludeType(reflect.TypeFor[int]()).
		ExcludeType(reflect.TypeFor[int]()).
		SelectMember("Name").SetMaxLength(3)
	require.ErrorIs(t, cfg.Err(), objprint.ErrInvalidSelector)
	assert.False(t, errors.Is(cfg.Err(), objprint.ErrDuplicateRule))
}

func TestEmptyPathRejected(t *testing.T) {
	t.Parallel()
	noop := objprint.Formatter(func(any) string { return "" })
	for name, cfg := range map[string]objprint.Config[Person]{
		"exclude":    objprint.For[Person]().ExcludePath(nil),
		"formatter":  objprint.For[Person]().SetPathFormatter(objprint.PropertyPath{}, noop),
		"max length": objprint.For[Person]().SetPathMaxLength(nil, 3),
	} {
		assert.ErrorIs(t, cfg.Err(), objprint.ErrInvalidSelector, name)
	}
}

func TestNilArgumentsIgnored(t *testing.T) {
	t.Parallel()
	cfg := objprint.For[Person]().
		ExcludeType(nil).
		SetTypeFormatter(nil, func(any) string { return "" }).
		SetTypeFormatter(reflect.TypeFor[int](), nil).
		SetTypeLocale(nil, language.German).
		WithLogger(nil)
	require.NoError(t, cfg.Err())
	got, err := cfg.PrintToString(alex())
	require.NoError(t, err)
	assert.Equal(t, objprint.PrintToString(alex()), got)
}

func TestWithMaxDepth(t *testing.T) {
	t.Parallel()
	n := &Node{Name: "a"}
	n.Next = n
	tests := map[string]struct {
		depth int
		names int
	}{
		"one":                   {depth: 1, names: 1},
		"three":                 {depth: 3, names: 3},
		"zero uses default":     {depth: 0, names: objprint.DefaultMaxDepth},
		"negative uses default": {depth: -4, names: objprint.DefaultMaxDepth},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := objprint.For[*Node]().WithMaxDepth(tt.depth).PrintToString(n)
			require.NoError(t, err)
			assert.Equal(t, tt.names, strings.Count(got, "Name = a"))
		})
	}
}

func TestRoot(t *testing.T) {
	t.Parallel()
	assert.Equal(t, reflect.TypeFor[Person](), objprint.For[Person]().Root())
}
