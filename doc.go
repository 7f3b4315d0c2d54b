// Package objprint renders arbitrary Go values as deterministic,
// human-readable text for debugging and test output.
//
// The central entry points are [PrintToString] and [PrintToStringWith]:
//
//	s := objprint.PrintToString(person)
//
// produces
//
//	Person
//		Name = Alex
//		Surname = Smith
//		Height = 180.5
//		Age = 19
//
// Structs render as their type name followed by one indented "Name = value"
// line per field, in declaration order, unexported fields included. Slices,
// arrays and maps render as their type name followed by one line per
// element; map entries and elements with Key and Value fields render as
// "key = value". Map keys are sorted. Nil values render as "null".
//
// # Configuration
//
// A [Config] is an immutable set of rules scoped to a root type. Every
// method returns a new Config, so a built Config can be shared freely:
//
//	cfg := objprint.For[Person]().
//		ExcludeType(reflect.TypeFor[int]()).
//		SetTypeLocale(reflect.TypeFor[float64](), language.German).
//		SelectMember("Surname").SetMaxLength(5).
//		SelectMember("Phone.Owner").Exclude()
//	s, err := cfg.PrintToString(person)
//
// Rules target either a type or a member path:
//
//   - [Config.ExcludeType], [Config.ExcludePath]: skip members
//   - [Config.SetTypeFormatter], [Config.SetPathFormatter]: custom text;
//     a path formatter wins over a type formatter
//   - [Config.SetTypeLocale]: locale-aware numbers, or any type
//     implementing [LocaleFormatter]
//   - [Config.SetPathMaxLength]: cut a member's value to n characters, or
//     n display cells with [Config.WithTruncateUnit]
//
// Member paths are written as selectors relative to the root type and
// resolved with [ResolvePath]; "Phone.Owner" on Person resolves to the path
// Person.Phone.Owner and matches only that occurrence of Owner.
//
// [ReadRules] and [Config.ApplyRules] load the same rules from YAML.
//
// # Depth
//
// There is no cycle detection. Each descent into a member or element counts
// one level; once [DefaultMaxDepth] (or the value given to
// [Config.WithMaxDepth]) is reached, the remaining members of that object
// are replaced by a single [DepthSentinel] line. Collection elements that
// render on one line, such as strings and numbers, are never cut.
//
// # Errors
//
// Rendering never fails. Configuration errors are recorded on the Config
// and returned by its render methods:
//
//   - [ErrInvalidSelector]: a selector or path that does not name a
//     member of the root type ([*SelectorError])
//   - [ErrDuplicateRule]: a second rule of the same kind for the same
//     type or path ([*DuplicateRuleError])
//   - [ErrUnknownType], [ErrInvalidLocale]: bad names in a rules file
package objprint
