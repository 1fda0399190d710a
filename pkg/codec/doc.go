// Package codec maps arbitrary namespace strings to filesystem-safe file
// name fragments and back. This is the foundation for hoard's one-file-per-
// namespace on-disk layout.
//
// # Encoding
//
// Bytes in the set [A-Za-z0-9_-] pass through unchanged. Every other byte is
// replaced by a three-character sequence:
//
//	% followed by two uppercase hexadecimal digits
//
// The encoding is applied byte-wise, so multi-byte UTF-8 sequences are
// escaped one byte at a time and survive the round trip untouched.
//
// # Properties
//
//   - Escape is injective: distinct inputs always produce distinct outputs.
//   - Unescape is the exact inverse: Unescape(Escape(s)) == s for every s.
//   - Escaped strings never contain path separators, NUL bytes, or any other
//     character that is unsafe in a file name on common filesystems.
//
// Unescape rejects input that Escape could not have produced (stray unsafe
// bytes, truncated or malformed escape sequences), which lets callers
// distinguish namespace files from foreign files sharing the same directory.
//
// # Usage
//
//	name := codec.Escape("user:sessions/eu") + ".db"
//
//	ns, err := codec.Unescape(strings.TrimSuffix(name, ".db"))
//	if err != nil {
//	    // not a file produced by Escape
//	}
package codec
