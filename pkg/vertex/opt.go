package vertex

import "gopkg.in/yaml.v3"

// Opt is an optional value. The zero Opt is absent, which keeps "no tangent"
// distinct from "tangent is the zero vector".
type Opt[T any] struct {
	v  T
	ok bool
}

// Some returns a present Opt holding v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{v: v, ok: true}
}

// None returns an absent Opt.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) {
	return o.v, o.ok
}

// IsSome reports whether a value is present.
func (o Opt[T]) IsSome() bool {
	return o.ok
}

// IsZero reports whether the Opt is absent. yaml omitempty uses it.
func (o Opt[T]) IsZero() bool {
	return !o.ok
}

// Or returns the value if present, otherwise def.
func (o Opt[T]) Or(def T) T {
	if o.ok {
		return o.v
	}
	return def
}

// Map applies f to a present value; absent stays absent.
func Map[T any](o Opt[T], f func(T) T) Opt[T] {
	if !o.ok {
		return o
	}
	return Some(f(o.v))
}

// MarshalYAML encodes a present value as itself and an absent one as null.
func (o Opt[T]) MarshalYAML() (interface{}, error) {
	if !o.ok {
		return nil, nil
	}
	return o.v, nil
}

// UnmarshalYAML decodes a value; an explicit null stays absent.
func (o *Opt[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.ShortTag() == "!!null" {
		*o = Opt[T]{}
		return nil
	}
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
