package value

// Kind identifies the variant of an engine value.
type Kind uint8

const (
	KindInteger Kind = iota
	KindFloat
	KindString
	KindBytes
	KindBoolean
	KindNull
	KindUndefined
	KindRange
	KindTuple
	KindPair
	KindNamed
	KindCustom
)

var kindNames = [...]string{
	KindInteger:   "integer",
	KindFloat:     "float",
	KindString:    "string",
	KindBytes:     "bytes",
	KindBoolean:   "boolean",
	KindNull:      "null",
	KindUndefined: "undefined",
	KindRange:     "range",
	KindTuple:     "tuple",
	KindPair:      "pair",
	KindNamed:     "named",
	KindCustom:    "custom",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsPrimitive reports whether the kind is one of the directly representable
// host primitives: integer, float, string, bytes, boolean, null.
func (k Kind) IsPrimitive() bool {
	return k <= KindNull
}
