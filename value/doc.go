// Package value defines the engine's immutable tagged value model.
//
// A Value is one of twelve variants: Integer, Float, String, Bytes, Boolean,
// Null, Undefined, Range, Tuple, Pair, Named, or a Custom extension. The
// native variants are closed; Custom is the single extension point through
// which foreign objects travel (see the bridge package).
//
// Values are immutable. Construction copies backing storage (NewBytes,
// NewTuple) and accessors return copies, so no holder can observe another
// holder's value changing. Operations that produce "modified" values, such
// as Add on tuples, build new values.
//
// The generic operation surface lives in package-level functions: Equal,
// Less, Greater, the arithmetic and bitwise set (Add through Invert), and
// the structural set (Length, KeyOf, ValueOf, Contains, Index, Attr). All
// of them are total over the variant set: mismatched operands produce a
// typed error from the errors package, never a panic.
package value
