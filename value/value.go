package value

// Value is the engine's immutable tagged value. The set of native variants is
// closed: Integer, Float, String, Bytes, Boolean, Null, Undefined, Range,
// Tuple, Pair and Named are all defined in this package. Custom variants are
// the single extension point: any implementation outside this package whose
// Kind reports KindCustom participates in the generic operations through
// these methods alone, never through its concrete type.
//
// No variant is ever mutated in place. Operations that look like
// modifications construct and return new values.
type Value interface {
	// Kind reports the variant tag.
	Kind() Kind

	// TypeName reports the engine-visible type name. Native variants return
	// the kind name; custom variants return their own tag.
	TypeName() string

	// Repr returns the debug representation. It is fallible because custom
	// variants delegate to host-side representations that may fail.
	Repr() (string, error)

	// Text returns the display string, the engine's to-string conversion.
	Text() (string, error)

	// Equals is the engine's generic equality. Mismatched variants that
	// cannot be compared report a typed error; custom variants decide for
	// themselves and opaque host handles always report false.
	Equals(other Value) (bool, error)
}

// TypeNameOf reports the type name of v, tolerating nil.
func TypeNameOf(v Value) string {
	if v == nil {
		return "null"
	}
	return v.TypeName()
}

// KindOf reports the kind of v, tolerating nil.
func KindOf(v Value) Kind {
	if v == nil {
		return KindNull
	}
	return v.Kind()
}
