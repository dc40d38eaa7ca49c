package jtok

// scan.go tokenizes a JSON document into r.tokens: a flat, depth-first
// pre-order array. Tokenizing validates document structure only (brackets
// balance, strings terminate, numbers and escapes are lexically well
// formed); it never decodes a literal's value.
//
// The walk below is recursive-descent: one value function dispatching to
// object/array/string/number/literal helpers, each consuming bytes via a
// shared cursor.

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// tokenize scans r.buf into r.tokens. global is propagated to every String
// token produced directly from the input (not a later escape-decoded copy)
// to record whether its view may outlive r (see StringGlobal, FromString).
func (r *Reader) tokenize(global bool) error {
	pos := 0
	if err := r.scanValue(&pos, global); err != nil {
		return err
	}
	r.skipSpace(&pos)
	if pos != r.buf.Len() {
		return r.errorAt(TokenizerError, pos, "unexpected trailing data after document")
	}
	return nil
}

func (r *Reader) skipSpace(pos *int) {
	n := r.buf.Len()
	for *pos < n {
		switch r.buf.At(*pos) {
		case ' ', '\t', '\n', '\r':
			*pos++
		default:
			return
		}
	}
}

func (r *Reader) appendToken(typ Type, start int) int {
	idx := len(r.tokens)
	r.tokens = append(r.tokens, Token{owner: r, pos: int32(idx), start: int32(start), typ: typ})
	return idx
}

func (r *Reader) scanValue(pos *int, global bool) error {
	r.skipSpace(pos)
	if *pos >= r.buf.Len() {
		return r.errorAt(TokenizerError, *pos, "unexpected end of input, expected a value")
	}
	switch c := r.buf.At(*pos); {
	case c == '{':
		return r.scanContainer(pos, Object, global)
	case c == '[':
		return r.scanContainer(pos, Array, global)
	case c == '"':
		return r.scanString(pos, false, global)
	case c == 't':
		return r.scanLiteral(pos, "true", Bool)
	case c == 'f':
		return r.scanLiteral(pos, "false", Bool)
	case c == 'n':
		return r.scanLiteral(pos, "null", Null)
	case c == '-' || isDigit(c):
		return r.scanNumber(pos)
	default:
		return r.errorAt(TokenizerError, *pos, "unexpected character %q, expected a value", c)
	}
}

func (r *Reader) scanContainer(pos *int, typ Type, global bool) error {
	start := *pos
	*pos++ // consume '{' or '['
	idx := r.appendToken(typ, start)

	closeCh := byte('}')
	if typ == Array {
		closeCh = ']'
	}

	r.skipSpace(pos)
	if *pos < r.buf.Len() && r.buf.At(*pos) == closeCh {
		*pos++
	} else {
		var err error
		if typ == Object {
			err = r.scanMembers(pos, global)
		} else {
			err = r.scanElements(pos, global)
		}
		if err != nil {
			return err
		}
		r.skipSpace(pos)
		if *pos >= r.buf.Len() || r.buf.At(*pos) != closeCh {
			return r.errorAt(TokenizerError, *pos, "expected %q", closeCh)
		}
		*pos++
	}

	r.tokens[idx].childCount = int32(len(r.tokens) - idx - 1)
	r.tokens[idx].data = r.buf.SliceFrom(start).SliceTo(*pos - start)
	r.tokens[idx].parsedType = ParsedOther
	return nil
}

func (r *Reader) scanMembers(pos *int, global bool) error {
	for {
		r.skipSpace(pos)
		if *pos >= r.buf.Len() || r.buf.At(*pos) != '"' {
			return r.errorAt(TokenizerError, *pos, "expected a string key")
		}
		keyIdx := len(r.tokens)
		if err := r.scanString(pos, true, global); err != nil {
			return err
		}
		r.skipSpace(pos)
		if *pos >= r.buf.Len() || r.buf.At(*pos) != ':' {
			return r.errorAt(TokenizerError, *pos, "expected ':' after object key")
		}
		*pos++
		if err := r.scanValue(pos, global); err != nil {
			return err
		}
		r.tokens[keyIdx].childCount = int32(len(r.tokens) - keyIdx - 1)

		r.skipSpace(pos)
		if *pos < r.buf.Len() && r.buf.At(*pos) == ',' {
			*pos++
			continue
		}
		return nil
	}
}

func (r *Reader) scanElements(pos *int, global bool) error {
	for {
		if err := r.scanValue(pos, global); err != nil {
			return err
		}
		r.skipSpace(pos)
		if *pos < r.buf.Len() && r.buf.At(*pos) == ',' {
			*pos++
			continue
		}
		return nil
	}
}

func (r *Reader) scanLiteral(pos *int, lit string, typ Type) error {
	start := *pos
	n := len(lit)
	if *pos+n > r.buf.Len() {
		return r.errorAt(TokenizerError, *pos, "invalid literal, expected %q", lit)
	}
	for i := 0; i < n; i++ {
		if r.buf.At(*pos+i) != lit[i] {
			return r.errorAt(TokenizerError, *pos, "invalid literal, expected %q", lit)
		}
	}
	*pos += n
	idx := r.appendToken(typ, start)
	r.tokens[idx].data = r.buf.SliceFrom(start).SliceTo(n)
	return nil
}

func (r *Reader) scanNumber(pos *int) error {
	start := *pos
	n := r.buf.Len()

	if r.buf.At(*pos) == '-' {
		*pos++
	}
	digitsStart := *pos
	if *pos >= n || !isDigit(r.buf.At(*pos)) {
		return r.errorAt(TokenizerError, *pos, "invalid number: expected a digit")
	}
	for *pos < n && isDigit(r.buf.At(*pos)) {
		*pos++
	}
	if *pos-digitsStart > 1 && r.buf.At(digitsStart) == '0' {
		return r.errorAt(TokenizerError, digitsStart, "invalid number: extra leading zero")
	}

	if *pos < n && r.buf.At(*pos) == '.' {
		*pos++
		fracStart := *pos
		for *pos < n && isDigit(r.buf.At(*pos)) {
			*pos++
		}
		if *pos == fracStart {
			return r.errorAt(TokenizerError, *pos, "invalid number: expected a digit after '.'")
		}
	}

	if *pos < n && (r.buf.At(*pos) == 'e' || r.buf.At(*pos) == 'E') {
		*pos++
		if *pos < n && (r.buf.At(*pos) == '+' || r.buf.At(*pos) == '-') {
			*pos++
		}
		expStart := *pos
		for *pos < n && isDigit(r.buf.At(*pos)) {
			*pos++
		}
		if *pos == expStart {
			return r.errorAt(TokenizerError, *pos, "invalid number: expected a digit in exponent")
		}
	}

	idx := r.appendToken(Number, start)
	r.tokens[idx].data = r.buf.SliceFrom(start).SliceTo(*pos - start)
	return nil
}

func (r *Reader) scanString(pos *int, isKey, global bool) error {
	start := *pos
	*pos++ // consume opening quote
	n := r.buf.Len()
	escaped := false

loop:
	for {
		if *pos >= n {
			return r.errorAt(TokenizerError, start, "unterminated string")
		}
		switch c := r.buf.At(*pos); {
		case c == '"':
			*pos++
			break loop
		case c == '\\':
			escaped = true
			*pos++
			if *pos >= n {
				return r.errorAt(EscapeError, *pos-1, "unterminated escape sequence")
			}
			switch ec := r.buf.At(*pos); ec {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				*pos++
			case 'u':
				*pos++
				for i := 0; i < 4; i++ {
					if *pos >= n || !isHexDigit(r.buf.At(*pos)) {
						return r.errorAt(EscapeError, *pos, "invalid \\u escape: expected a hex digit")
					}
					*pos++
				}
			default:
				return r.errorAt(EscapeError, *pos, "invalid escape character %q", ec)
			}
		case c < 0x20:
			return r.errorAt(TokenizerError, *pos, "invalid control character %#02x in string", c)
		default:
			*pos++
		}
	}

	idx := r.appendToken(String, start)
	r.tokens[idx].data = r.buf.SliceFrom(start).SliceTo(*pos - start)
	if escaped {
		r.tokens[idx].flags |= flagStringEscaped
	} else if global {
		r.tokens[idx].flags |= flagStringGlobal
	}
	if isKey {
		r.tokens[idx].flags |= flagObjectKey
	}
	return nil
}
