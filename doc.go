// Package utf8 implements validation, decoding, encoding, and sanitization of
// UTF-8 byte sequences as specified by [RFC 3629], together with
// character-level traversal over them.
//
// # Layers
//
// The [go.branchless.dev/utf8/dfa] subpackage implements the syntactic layer:
// a table-driven deterministic finite automaton that recognizes the UTF-8
// grammar one byte at a time, forward or backward. This package builds the
// semantic layer on top of it: the [CodePoint] type, the codec operations
// ([EncodeOne], [DecodeOne], [Validate], [FindInvalid], [FindLeadingByte],
// [CharLength], [Decode], [Encode], [Sanitize]), and the [Error] type
// reporting where and how a sequence fails to be valid UTF-8.
//
// The [go.branchless.dev/utf8/iter] subpackage implements character-level
// cursor traversal ([iter.Next], [iter.Prev], [iter.Advance]) in both checked
// and unchecked flavors.
//
// # Errors
//
// Every failure reported by this package identifies both its [ErrorKind] and
// the byte offset at which the DFA stopped making progress. There are no
// retries, no logging, and no hidden fallbacks; [Sanitize] is the lossy path
// that never fails, replacing invalid input instead of reporting it.
//
// [RFC 3629]: https://www.rfc-editor.org/rfc/rfc3629
package utf8
