package objprint

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidSelector = errors.New("invalid member selector")
	ErrDuplicateRule   = errors.New("duplicate rule")
	ErrUnknownType     = errors.New("unknown type name")
	ErrInvalidLocale   = errors.New("invalid locale")
)

// SelectorError reports a member selector that does not resolve to a direct
// member chain of the configuration's root type.
type SelectorError struct {
	Selector string
	Root     string
	Reason   string
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("%s %q on %s: %s", ErrInvalidSelector, e.Selector, e.Root, e.Reason)
}

// Unwrap returns [ErrInvalidSelector].
func (e *SelectorError) Unwrap() error { return ErrInvalidSelector }

// DuplicateRuleError reports a second rule of the same kind registered for a
// type or path that already has one.
type DuplicateRuleError struct {
	Rule string
	Key  string
}

func (e *DuplicateRuleError) Error() string {
	return fmt.Sprintf("%s: %s already set for %s", ErrDuplicateRule, e.Rule, e.Key)
}

// Unwrap returns [ErrDuplicateRule].
func (e *DuplicateRuleError) Unwrap() error { return ErrDuplicateRule }
