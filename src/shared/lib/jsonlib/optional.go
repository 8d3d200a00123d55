package jsonlib

import (
	"encoding/json"
	"github.com/cockroachdb/errors"
	"math"
)

// Optional tracks whether a field appeared in a JSON payload at all.
// A field sent as null counts as present with a zero Value
type Optional[T any] struct {
	Present bool
	Value   T
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{
		Present: true,
		Value:   value,
	}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Present {
		return []byte("null"), nil
	}

	return json.Marshal(o.Value)
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	value := *new(T)
	err := json.Unmarshal(b, &value)
	if err != nil {
		return errors.Wrap(err, "Could not unmarshal json data into optional value")
	}

	*o = Some(value)
	return nil
}

// largest magnitude a JSON number holds without losing integer precision
const maxExactInteger = 1 << 53

// LenientInt accepts any JSON value. Numbers are truncated toward zero.
// Strings, booleans, objects and numbers past 2^53 become 0
type LenientInt int

func (l *LenientInt) UnmarshalJSON(b []byte) error {
	var number float64
	if err := json.Unmarshal(b, &number); err != nil {
		*l = 0
		return nil
	}

	truncated := math.Trunc(number)
	if math.Abs(truncated) > maxExactInteger {
		*l = 0
		return nil
	}

	*l = LenientInt(truncated)
	return nil
}
