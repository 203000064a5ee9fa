package stdlib

import (
	"testing"

	"github.com/wippyai/host-bridge/errors"
	"github.com/wippyai/host-bridge/value"
)

func strArgs(s string) []value.Value {
	return []value.Value{named("string", value.String(s))}
}

func TestStringLength(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"hello", 5},
		{"", 0},
		{"héllo", 5},
		{"世界", 2},
	}
	for _, tc := range cases {
		out := mustCall(t, "string::length", strArgs(tc.in)...)
		if out != value.Integer(tc.want) {
			t.Errorf("length(%q) = %v, want %d", tc.in, out, tc.want)
		}
	}
}

func TestStringCase(t *testing.T) {
	if out := mustCall(t, "string::uppercase", strArgs("héllo")...); out != value.String("HÉLLO") {
		t.Errorf("uppercase = %v", out)
	}
	if out := mustCall(t, "string::lowercase", strArgs("HÉLLO")...); out != value.String("héllo") {
		t.Errorf("lowercase = %v", out)
	}
}

func TestStringTrim(t *testing.T) {
	if out := mustCall(t, "string::trim", strArgs("  padded\t\n")...); out != value.String("padded") {
		t.Errorf("trim = %v", out)
	}
}

func TestStringSearch(t *testing.T) {
	args := func(s, sub string) []value.Value {
		return []value.Value{named("string", value.String(s)), named("substring", value.String(sub))}
	}

	if out := mustCall(t, "string::contains", args("héllo", "llo")...); out != value.Boolean(true) {
		t.Errorf("contains = %v", out)
	}
	if out := mustCall(t, "string::contains", args("héllo", "x")...); out != value.Boolean(false) {
		t.Errorf("contains miss = %v", out)
	}

	// index_of counts runes, not bytes.
	if out := mustCall(t, "string::index_of", args("héllo", "llo")...); out != value.Integer(2) {
		t.Errorf("index_of = %v, want 2", out)
	}
	if out := mustCall(t, "string::index_of", args("héllo", "zzz")...); out != value.Integer(-1) {
		t.Errorf("index_of miss = %v, want -1", out)
	}
}

func TestStringConcat(t *testing.T) {
	out := mustCall(t, "string::concat",
		named("a", value.String("foo")),
		named("b", value.String("bar")),
	)
	if out != value.String("foobar") {
		t.Errorf("concat = %v", out)
	}
}

func TestStringSplit(t *testing.T) {
	out := mustCall(t, "string::split",
		named("string", value.String("a,b,c")),
		named("delimiter", value.String(",")),
	)
	if got := reprOf(t, out); got != `("a", "b", "c")` {
		t.Errorf("split = %s", got)
	}

	out = mustCall(t, "string::split",
		named("string", value.String("solo")),
		named("delimiter", value.String(",")),
	)
	if got := reprOf(t, out); got != `("solo")` {
		t.Errorf("split without delimiter = %s", got)
	}
}

func TestStringReplace(t *testing.T) {
	out := mustCall(t, "string::replace",
		named("string", value.String("a-b-c")),
		named("from", value.String("-")),
		named("to", value.String("+")),
	)
	if out != value.String("a+b+c") {
		t.Errorf("replace = %v", out)
	}
}

func TestStringSubstr(t *testing.T) {
	args := func(s string, start, length int64) []value.Value {
		return []value.Value{
			named("string", value.String(s)),
			named("start", value.Integer(start)),
			named("length", value.Integer(length)),
		}
	}

	cases := []struct {
		name          string
		s             string
		start, length int64
		want          string
	}{
		{"middle", "hello", 1, 3, "ell"},
		{"clamped end", "hello", 3, 10, "lo"},
		{"start past end", "hello", 9, 2, ""},
		{"negative start", "hello", -1, 2, ""},
		{"zero length", "hello", 0, 0, ""},
		{"runes", "héllo", 1, 2, "él"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := mustCall(t, "string::substr", args(tc.s, tc.start, tc.length)...)
			if out != value.String(tc.want) {
				t.Errorf("substr(%q, %d, %d) = %v, want %q", tc.s, tc.start, tc.length, out, tc.want)
			}
		})
	}
}

func TestStringAffixes(t *testing.T) {
	out := mustCall(t, "string::starts_with",
		named("string", value.String("hello")),
		named("prefix", value.String("he")),
	)
	if out != value.Boolean(true) {
		t.Errorf("starts_with = %v", out)
	}

	out = mustCall(t, "string::ends_with",
		named("string", value.String("hello")),
		named("suffix", value.String("he")),
	)
	if out != value.Boolean(false) {
		t.Errorf("ends_with = %v", out)
	}
}

func TestStringRepeat(t *testing.T) {
	out := mustCall(t, "string::repeat",
		named("string", value.String("ab")),
		named("count", value.Integer(3)),
	)
	if out != value.String("ababab") {
		t.Errorf("repeat = %v", out)
	}

	_, err := call(t, "string::repeat",
		named("string", value.String("ab")),
		named("count", value.Integer(-1)),
	)
	if !errors.IsKind(err, errors.KindInvalidOperation) {
		t.Errorf("negative repeat error = %v, want invalid operation", err)
	}
}

func TestStringPad(t *testing.T) {
	args := func(s string, length int64, pad string) []value.Value {
		return []value.Value{
			named("string", value.String(s)),
			named("length", value.Integer(length)),
			named("pad_char", value.String(pad)),
		}
	}

	cases := []struct {
		name string
		sig  string
		s    string
		len  int64
		pad  string
		want string
	}{
		{"left zeroes", "string::pad_left", "7", 3, "0", "007"},
		{"right dots", "string::pad_right", "ab", 4, ".", "ab.."},
		{"already long", "string::pad_left", "hello", 3, "0", "hello"},
		{"empty pad uses space", "string::pad_left", "x", 3, "", "  x"},
		{"multichar pad uses first rune", "string::pad_right", "x", 3, "ab", "xaa"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := mustCall(t, tc.sig, args(tc.s, tc.len, tc.pad)...)
			if out != value.String(tc.want) {
				t.Errorf("%s(%q, %d, %q) = %v, want %q", tc.sig, tc.s, tc.len, tc.pad, out, tc.want)
			}
		})
	}
}

func TestStringIsEmpty(t *testing.T) {
	if out := mustCall(t, "string::is_empty", strArgs("")...); out != value.Boolean(true) {
		t.Errorf("is_empty(\"\") = %v", out)
	}
	if out := mustCall(t, "string::is_empty", strArgs("x")...); out != value.Boolean(false) {
		t.Errorf("is_empty(x) = %v", out)
	}
}

func TestStringReverse(t *testing.T) {
	if out := mustCall(t, "string::reverse", strArgs("héllo")...); out != value.String("olléh") {
		t.Errorf("reverse = %v", out)
	}
}

func TestStringTypeError(t *testing.T) {
	_, err := call(t, "string::length", named("string", value.Integer(5)))
	if !errors.IsKind(err, errors.KindInvalidType) {
		t.Errorf("length(integer) error = %v, want invalid type", err)
	}
}
