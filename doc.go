// Package jtok implements a JSON tokenizer and selective-parse reader.
//
// # Tokenizing
//
// FromString, FromBytes, and FromFile each tokenize a complete JSON document
// into a flat, depth-first array of Token values. Tokenizing validates the
// structure of the document — brackets balance, strings terminate, numbers
// and escapes are lexically well formed — but does not decode any literal's
// value:
//
//	r, err := jtok.FromString(`{"a": [1, 2, 3]}`, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	root := r.Root()
//
// # Navigating
//
// A Token's FirstChild and Next methods walk the array without allocating:
// FirstChild descends into a container, and Next advances past a token's
// entire subtree to whatever follows it, whether that is a sibling or an
// ancestor's sibling. Parent walks backward to find the nearest enclosing
// token.
//
//	for c := root.FirstChild(); c != nil; c = c.Next() {
//	    log.Printf("child: %v", c.Type())
//	}
//
// # Parsing
//
// Decoding a literal's value happens on demand, either one token at a time
// (Token.ParseDouble, Token.ParseString, and so on) or across a whole
// subtree at once (Reader.ParseDoubles, Reader.ParseStrings, and so on).
// Parsing is idempotent: a token that has already been parsed returns its
// cached value rather than re-decoding. Accessors of the form Token.AsBool,
// Token.AsDouble, Token.AsString require that the token has already been
// parsed, and panic otherwise — they are for a caller that knows its
// document's shape and wants to skip the idempotence check.
//
// The FromString/FromBytes/FromFile Options bitset can request the common
// parse passes up front, immediately after tokenizing:
//
//	r, err := jtok.FromString(input, jtok.ParseDoubles|jtok.ParseStrings)
//
// # Errors
//
// Every fallible operation returns an *Error carrying a Kind and, except for
// I/O failures, a file:line:column locating the offending byte. Passing an
// ErrorSink to the FromString/FromBytes/FromFile *WithSink variants forwards
// every diagnostic to it as it is produced, in addition to being returned.
package jtok
