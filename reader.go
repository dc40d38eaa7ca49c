package jtok

import (
	"fmt"
	"os"

	"go4.org/mem"
)

// A Reader holds a tokenized JSON document: the input buffer and the flat,
// depth-first array of Token records produced from it.
//
// A Reader is not safe for concurrent use: it follows a single-threaded,
// synchronous resource model, and adds no locking no caller asked for.
type Reader struct {
	filename string
	buf      mem.RO
	tokens   []Token
	sink     ErrorSink
}

// Filename reports the name associated with r's input, or "" if none was
// given (e.g. r was built with FromString or FromBytes).
func (r *Reader) Filename() string { return r.filename }

// Tokens returns the full flat token array, ordered depth-first pre-order.
// The returned slice is owned by r; callers must not retain it past r's
// next mutation (there are none exposed today, but the slice may be
// reallocated by a future incremental API).
func (r *Reader) Tokens() []Token { return r.tokens }

// Root returns the document's root token, or nil if r holds no tokens (this
// cannot happen for a successfully constructed Reader, since tokenizing
// always produces at least one token for a valid JSON document).
func (r *Reader) Root() *Token {
	if len(r.tokens) == 0 {
		return nil
	}
	return &r.tokens[0]
}

// fromBuf tokenizes buf and applies opts, attaching filename and sink to the
// resulting Reader's diagnostics.
func fromBuf(filename string, buf mem.RO, global bool, opts Options, sink ErrorSink) (*Reader, error) {
	r := &Reader{filename: filename, buf: buf, sink: sink}
	if err := r.tokenize(global); err != nil {
		return nil, err
	}
	if err := r.applyOptions(opts); err != nil {
		return nil, err
	}
	return r, nil
}

// FromString tokenizes the JSON document held in s. Because Go strings are
// immutable, the returned Reader's String tokens borrow directly from s with
// no copy, and report StringGlobal true whenever no escape processing was
// required; s must outlive the Reader.
func FromString(s string, opts Options) (*Reader, error) {
	return FromStringWithSink(s, opts, nil)
}

// FromStringWithSink is FromString, additionally forwarding every
// diagnostic produced while tokenizing or applying opts to sink.
func FromStringWithSink(s string, opts Options, sink ErrorSink) (*Reader, error) {
	return fromBuf("", mem.S(s), true, opts, sink)
}

// FromBytes tokenizes the JSON document held in b. Unlike FromString, b is
// copied, since a []byte is mutable and the caller may alter or recycle it
// after this call returns.
func FromBytes(b []byte, opts Options) (*Reader, error) {
	return FromBytesWithSink(b, opts, nil)
}

// FromBytesWithSink is FromBytes, additionally forwarding every diagnostic
// produced while tokenizing or applying opts to sink.
func FromBytesWithSink(b []byte, opts Options, sink ErrorSink) (*Reader, error) {
	own := make([]byte, len(b))
	copy(own, b)
	return fromBuf("", mem.B(own), false, opts, sink)
}

// FromFile reads and tokenizes the JSON document stored at path.
func FromFile(path string, opts Options) (*Reader, error) {
	return FromFileWithSink(path, opts, nil)
}

// FromFileWithSink is FromFile, additionally forwarding every diagnostic
// produced while reading, tokenizing, or applying opts to sink.
func FromFileWithSink(path string, opts Options, sink ErrorSink) (*Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		ioErr := &Error{Kind: IOError, Filename: path, Msg: err.Error(), Err: err}
		if sink != nil {
			sink.Report(ioErr)
		}
		return nil, ioErr
	}
	return fromBuf(path, mem.B(data), false, opts, sink)
}

// applyOptions applies the post-tokenization parse passes requested by opts:
// ParseDoubles takes precedence over ParseFloats when both are set, and
// ParseStrings implies ParseStringKeys.
func (r *Reader) applyOptions(opts Options) error {
	root := r.Root()
	if root == nil {
		return nil
	}
	if opts.has(ParseLiterals) {
		if err := r.ParseLiterals(root); err != nil {
			return err
		}
	}
	switch {
	case opts.has(ParseDoubles):
		if err := r.ParseDoubles(root); err != nil {
			return err
		}
	case opts.has(ParseFloats):
		if err := r.ParseFloats(root); err != nil {
			return err
		}
	}
	if opts.has(ParseStrings) {
		if err := r.ParseStrings(root); err != nil {
			return err
		}
	} else if opts.has(ParseStringKeys) {
		if err := r.ParseStringKeys(root); err != nil {
			return err
		}
	}
	return nil
}

// String returns a short human-readable summary of r, for debugging.
func (r *Reader) String() string {
	name := r.filename
	if name == "" {
		name = "<unnamed>"
	}
	return fmt.Sprintf("jtok.Reader{%s, %d tokens}", name, len(r.tokens))
}
