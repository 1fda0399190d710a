package codec

import (
	"strings"
	"testing"
)

func TestEscape_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"sessions",
		"a/b",
		"a\\b",
		"user:profile",
		"with space",
		"tab\tsep",
		"dots.and..more",
		"%",
		"%2F",
		"héllo wörld",
		"日本語",
		"\x00\x01\xFF",
		"..",
		"-_ok-_",
	}

	for _, in := range inputs {
		escaped := Escape(in)
		out, err := Unescape(escaped)
		if err != nil {
			t.Fatalf("Unescape(%q) failed for input %q: %v", escaped, in, err)
		}
		if out != in {
			t.Errorf("Round trip mismatch: got %q, want %q (escaped %q)", out, in, escaped)
		}
	}
}

func TestEscape_FilesystemSafe(t *testing.T) {
	inputs := []string{
		"a/b/c",
		"..",
		"C:\\cache",
		"null\x00byte",
		"*?<>|\"",
		"ünïcode",
	}

	for _, in := range inputs {
		escaped := Escape(in)
		for i := 0; i < len(escaped); i++ {
			c := escaped[i]
			if safeByte(c) || c == escapeByte {
				continue
			}
			t.Errorf("Escape(%q) produced unsafe byte %q in %q", in, c, escaped)
		}
		if strings.ContainsAny(escaped, "/\\") {
			t.Errorf("Escape(%q) produced path separator: %q", in, escaped)
		}
	}
}

func TestEscape_Injective(t *testing.T) {
	// Includes pairs chosen to collide under a naive encoding.
	inputs := []string{
		"a/b",
		"a%2Fb",
		"a%252Fb",
		"a_b",
		"a-b",
		"ab",
		"",
		"%",
		"%%",
	}

	seen := make(map[string]string)
	for _, in := range inputs {
		escaped := Escape(in)
		if prev, ok := seen[escaped]; ok {
			t.Errorf("Escape collision: %q and %q both map to %q", prev, in, escaped)
		}
		seen[escaped] = in
	}
}

func TestUnescape_Malformed(t *testing.T) {
	inputs := []string{
		"%",
		"%2",
		"abc%",
		"abc%2",
		"%ZZ",
		"%2G",
		"a%2fb",
		"%ff",
		"a/b",
		"a b",
		"a.b",
	}

	for _, in := range inputs {
		if out, err := Unescape(in); err == nil {
			t.Errorf("Unescape(%q) = %q, want error", in, out)
		}
	}
}

func TestUnescape_CanonicalHexOnly(t *testing.T) {
	// Escape emits uppercase hex; that spelling is the only one accepted, so
	// no two distinct inputs can decode to the same namespace.
	out, err := Unescape("a%2Fb")
	if err != nil {
		t.Fatalf("Unescape failed: %v", err)
	}
	if out != "a/b" {
		t.Errorf("Unescape(%q) = %q, want %q", "a%2Fb", out, "a/b")
	}

	if out, err := Unescape("a%2fb"); err == nil {
		t.Errorf("Unescape(%q) = %q, want error for non-canonical hex", "a%2fb", out)
	}
}
