package objprint

// MemberConfig is a configuration bound to one resolved member path. It is
// returned by [Config.SelectMember] and consumed by one of its methods, each
// of which returns the resulting [Config].
//
//	cfg := objprint.For[Person]().
//		SelectMember("Phone.Owner").Exclude().
//		SelectMember("Surname").SetMaxLength(5)
//
// When the selector was invalid, the returned Config carries the
// [*SelectorError].
type MemberConfig[T any] struct {
	config   Config[T]
	path     PropertyPath
	selector string
	err      error
}

// Path returns the resolved path, or nil when the selector was invalid.
func (m MemberConfig[T]) Path() PropertyPath { return NewPropertyPath(m.path...) }

// Selector returns the selector as given.
func (m MemberConfig[T]) Selector() string { return m.selector }

// Err returns the selector error, if any.
func (m MemberConfig[T]) Err() error { return m.err }

// Exclude skips the selected member.
func (m MemberConfig[T]) Exclude() Config[T] {
	if c, failed := m.failed(); failed {
		return c
	}
	return m.config.ExcludePath(m.path)
}

// SetFormatter renders the selected member with f.
func (m MemberConfig[T]) SetFormatter(f Formatter) Config[T] {
	if c, failed := m.failed(); failed {
		return c
	}
	return m.config.SetPathFormatter(m.path, f)
}

// SetMaxLength limits the rendered value of the selected member to n
// characters. It is meant for string members; other members have their
// default rendering cut the same way.
func (m MemberConfig[T]) SetMaxLength(n int) Config[T] {
	if c, failed := m.failed(); failed {
		return c
	}
	return m.config.SetPathMaxLength(m.path, n)
}

func (m MemberConfig[T]) failed() (Config[T], bool) {
	switch {
	case m.config.err != nil:
		return m.config, true
	case m.err != nil:
		return m.config.fail(m.err), true
	}
	return m.config, false
}
