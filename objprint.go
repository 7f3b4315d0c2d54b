package objprint

import (
	"bytes"
	"io"
)

// PrintToString renders v with the default configuration for its type.
func PrintToString[T any](v T) string {
	// The default configuration cannot hold an error.
	s, _ := For[T]().PrintToString(v)
	return s
}

// PrintToStringWith renders v with the configuration returned by configure,
// which receives the default configuration for T. The error is the first
// configuration error recorded while building it.
func PrintToStringWith[T any](v T, configure func(Config[T]) Config[T]) (string, error) {
	return configured(configure).PrintToString(v)
}

// Write renders v to w. Without configure the default configuration is used.
func Write[T any](w io.Writer, v T, configure ...func(Config[T]) Config[T]) error {
	return configured(configure...).Write(w, v)
}

// Marshal renders v and returns the bytes.
func Marshal[T any](v T, configure ...func(Config[T]) Config[T]) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, v, configure...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func configured[T any](configure ...func(Config[T]) Config[T]) Config[T] {
	c := For[T]()
	for _, fn := range configure {
		if fn != nil {
			c = fn(c)
		}
	}
	return c
}
