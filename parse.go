package jtok

import "math"

// parse.go implements the selective-parse API: per-token on-demand decoders
// and the subtree drivers that apply one decoder across every eligible
// token under a given root.
//
// Every per-token method is idempotent: calling it again on an
// already-parsed token returns the cached value without touching the
// decoder.

// ParseNull decodes t, which must be a Null token. It is idempotent.
func (t *Token) ParseNull() error {
	t.assertType(Null, "ParseNull")
	t.parsedType = ParsedOther
	t.flags |= flagParsed
	return nil
}

// ParseBool decodes t, which must be a Bool token. It is idempotent.
func (t *Token) ParseBool() (bool, error) {
	t.assertType(Bool, "ParseBool")
	if t.flags&flagParsed != 0 {
		return t.num != 0, nil
	}
	v := decodeBool(t.data)
	if v {
		t.num = 1
	} else {
		t.num = 0
	}
	t.parsedType = ParsedOther
	t.flags |= flagParsed
	return v, nil
}

// ParseDouble decodes t, which must be a Number token, as a float64. It is
// idempotent: once t holds a ParsedDouble value, re-entry returns it without
// re-decoding.
func (t *Token) ParseDouble() (float64, error) {
	t.assertType(Number, "ParseDouble")
	if t.parsedType == ParsedDouble {
		return t.AsDouble(), nil
	}
	v, err := decodeDouble(t.data)
	if err != nil {
		return 0, t.owner.errorAt(ParseError, t.Offset(), "%s", err)
	}
	t.num = math.Float64bits(v)
	t.parsedType = ParsedDouble
	t.flags |= flagParsed
	return v, nil
}

// ParseFloat decodes t, which must be a Number token, as a float32.
func (t *Token) ParseFloat() (float32, error) {
	t.assertType(Number, "ParseFloat")
	if t.parsedType == ParsedFloat {
		return t.AsFloat(), nil
	}
	v, err := decodeFloat(t.data)
	if err != nil {
		return 0, t.owner.errorAt(ParseError, t.Offset(), "%s", err)
	}
	t.num = uint64(math.Float32bits(v))
	t.parsedType = ParsedFloat
	t.flags |= flagParsed
	return v, nil
}

// ParseUnsignedInt decodes t, which must be a Number token, as a uint32.
func (t *Token) ParseUnsignedInt() (uint32, error) {
	t.assertType(Number, "ParseUnsignedInt")
	if t.parsedType == ParsedUnsignedInt {
		return t.AsUnsignedInt(), nil
	}
	v, err := decodeUnsignedInt(t.data)
	if err != nil {
		return 0, t.owner.errorAt(RangeError, t.Offset(), "%s", err)
	}
	t.num = uint64(v)
	t.parsedType = ParsedUnsignedInt
	t.flags |= flagParsed
	return v, nil
}

// ParseInt decodes t, which must be a Number token, as an int32.
func (t *Token) ParseInt() (int32, error) {
	t.assertType(Number, "ParseInt")
	if t.parsedType == ParsedInt {
		return t.AsInt(), nil
	}
	v, err := decodeInt(t.data)
	if err != nil {
		return 0, t.owner.errorAt(RangeError, t.Offset(), "%s", err)
	}
	t.num = uint64(uint32(v))
	t.parsedType = ParsedInt
	t.flags |= flagParsed
	return v, nil
}

// ParseUnsignedLong decodes t, which must be a Number token, as a uint64.
func (t *Token) ParseUnsignedLong() (uint64, error) {
	t.assertType(Number, "ParseUnsignedLong")
	if t.parsedType == ParsedUnsignedLong {
		return t.AsUnsignedLong(), nil
	}
	v, err := decodeUnsignedLong(t.data)
	if err != nil {
		return 0, t.owner.errorAt(RangeError, t.Offset(), "%s", err)
	}
	t.num = v
	t.parsedType = ParsedUnsignedLong
	t.flags |= flagParsed
	return v, nil
}

// ParseLong decodes t, which must be a Number token, as an int64. It is
// only supported on 64-bit hosts; see decodeLong.
func (t *Token) ParseLong() (int64, error) {
	t.assertType(Number, "ParseLong")
	if t.parsedType == ParsedLong {
		return t.AsLong(), nil
	}
	v, err := decodeLong(t.data)
	if err != nil {
		return 0, t.owner.errorAt(RangeError, t.Offset(), "%s", err)
	}
	t.num = uint64(v)
	t.parsedType = ParsedLong
	t.flags |= flagParsed
	return v, nil
}

// ParseSize decodes t, which must be a Number token, as the host's native
// uint width.
func (t *Token) ParseSize() (uint, error) {
	if sizeParsedType == ParsedUnsignedInt {
		v, err := t.ParseUnsignedInt()
		return uint(v), err
	}
	v, err := t.ParseUnsignedLong()
	return uint(v), err
}

// ParseString decodes t, which must be a String token, unescaping its
// content. It is idempotent: once t is parsed, re-entry returns the cached
// value without touching the decoder. Unlike AsString, the first call always
// produces a freshly decoded copy rather than a view that aliases the input
// buffer.
func (t *Token) ParseString() (string, error) {
	t.assertType(String, "ParseString")
	if t.flags&flagParsed != 0 {
		return t.cachedString(), nil
	}
	view, dec, err := decodeString(t.data, t.StringEscaped())
	if err != nil {
		return "", t.owner.errorAt(EscapeError, t.Offset(), "%s", err)
	}
	if dec != nil {
		s := string(dec)
		t.str = &s
		t.parsedType = ParsedOther
		t.flags |= flagParsed
		return s, nil
	}
	t.parsedType = ParsedOther
	t.flags |= flagParsed
	return view.StringCopy(), nil
}

// cachedString returns t's already-decoded String value.
func (t *Token) cachedString() string {
	if t.str != nil {
		return *t.str
	}
	return t.data.SliceFrom(1).SliceTo(t.data.Len() - 2).StringCopy()
}

// parseSubtree walks root and every descendant, calling apply on each
// token whose Type matches typ. It stops and returns the first error.
func (r *Reader) parseSubtree(root *Token, typ Type, apply func(*Token) error) error {
	lo := root.index()
	hi := lo + root.ChildCount() + 1
	for i := lo; i < hi; i++ {
		tok := &r.tokens[i]
		if tok.typ != typ {
			continue
		}
		if err := apply(tok); err != nil {
			return err
		}
	}
	return nil
}

// ParseLiterals parses every Null and Bool token in root's subtree.
func (r *Reader) ParseLiterals(root *Token) error {
	if err := r.parseSubtree(root, Null, func(t *Token) error { return t.ParseNull() }); err != nil {
		return err
	}
	return r.parseSubtree(root, Bool, func(t *Token) error { _, err := t.ParseBool(); return err })
}

// ParseDoubles parses every Number token in root's subtree as a float64.
func (r *Reader) ParseDoubles(root *Token) error {
	return r.parseSubtree(root, Number, func(t *Token) error { _, err := t.ParseDouble(); return err })
}

// ParseFloats parses every Number token in root's subtree as a float32.
func (r *Reader) ParseFloats(root *Token) error {
	return r.parseSubtree(root, Number, func(t *Token) error { _, err := t.ParseFloat(); return err })
}

// ParseUnsignedInts parses every Number token in root's subtree as a uint32.
func (r *Reader) ParseUnsignedInts(root *Token) error {
	return r.parseSubtree(root, Number, func(t *Token) error { _, err := t.ParseUnsignedInt(); return err })
}

// ParseInts parses every Number token in root's subtree as an int32.
func (r *Reader) ParseInts(root *Token) error {
	return r.parseSubtree(root, Number, func(t *Token) error { _, err := t.ParseInt(); return err })
}

// ParseUnsignedLongs parses every Number token in root's subtree as a uint64.
func (r *Reader) ParseUnsignedLongs(root *Token) error {
	return r.parseSubtree(root, Number, func(t *Token) error { _, err := t.ParseUnsignedLong(); return err })
}

// ParseLongs parses every Number token in root's subtree as an int64.
func (r *Reader) ParseLongs(root *Token) error {
	return r.parseSubtree(root, Number, func(t *Token) error { _, err := t.ParseLong(); return err })
}

// ParseSizes parses every Number token in root's subtree as the host's
// native uint width.
func (r *Reader) ParseSizes(root *Token) error {
	return r.parseSubtree(root, Number, func(t *Token) error { _, err := t.ParseSize(); return err })
}

// ParseStringKeys parses every String token that is an object key in root's
// subtree.
func (r *Reader) ParseStringKeys(root *Token) error {
	return r.parseSubtree(root, String, func(t *Token) error {
		if !t.IsObjectKey() {
			return nil
		}
		_, err := t.ParseString()
		return err
	})
}

// ParseStrings parses every String token, key or value, in root's subtree.
func (r *Reader) ParseStrings(root *Token) error {
	return r.parseSubtree(root, String, func(t *Token) error { _, err := t.ParseString(); return err })
}
