package jtok

import (
	"fmt"
	"math"
	"math/bits"

	"go4.org/mem"
)

// sizeParsedType is the ParsedType that AsSize/ParseSize require: the
// UnsignedInt/UnsignedLong alias matching the host's native uint width.
var sizeParsedType = func() ParsedType {
	if bits.UintSize == 32 {
		return ParsedUnsignedInt
	}
	return ParsedUnsignedLong
}()

func float64frombits(b uint64) float64 { return math.Float64frombits(b) }

func float32frombits(b uint32) float32 { return math.Float32frombits(b) }

// Type is the type of a JSON token.
type Type uint8

// Constants defining the valid Type values.
const (
	Invalid Type = iota
	Object
	Array
	Null
	Bool
	Number
	String
)

var typeStr = [...]string{
	Invalid: "invalid token",
	Object:  "object",
	Array:   "array",
	Null:    "null",
	Bool:    "bool",
	Number:  "number",
	String:  "string",
}

func (t Type) String() string {
	if int(t) < len(typeStr) {
		return typeStr[t]
	}
	return typeStr[Invalid]
}

// ParsedType is the concrete decoded representation a token currently holds.
// For non-Number types it is either None (unparsed) or Other (parsed).
type ParsedType uint8

// Constants defining the valid ParsedType values.
const (
	ParsedNone ParsedType = iota
	ParsedDouble
	ParsedFloat
	ParsedUnsignedInt
	ParsedInt
	ParsedUnsignedLong
	ParsedLong
	// ParsedOther marks a parsed Null, Bool, or String token: types with no
	// numeric width of their own. Size has no constant of its own either;
	// AsSize and ParseSize instead treat ParsedUnsignedInt (32-bit hosts) or
	// ParsedUnsignedLong (64-bit hosts) as satisfying it. See sizeParsedType.
	ParsedOther ParsedType = 255
)

var parsedTypeStr = map[ParsedType]string{
	ParsedNone:         "none",
	ParsedDouble:       "double",
	ParsedFloat:        "float",
	ParsedUnsignedInt:  "unsigned int",
	ParsedInt:          "int",
	ParsedUnsignedLong: "unsigned long",
	ParsedLong:         "long",
	ParsedOther:        "other",
}

func (p ParsedType) String() string {
	if s, ok := parsedTypeStr[p]; ok {
		return s
	}
	return "unknown"
}

// flags holds the boolean attributes of a token that aren't otherwise
// implied by Type and ParsedType.
type flags uint8

const (
	flagParsed        flags = 1 << iota // token has a valid cached payload
	flagObjectKey                       // String token is an immediate child of an Object
	flagStringGlobal                    // string view has global (reader-outliving) lifetime
	flagStringEscaped                   // string source bytes contain at least one backslash
)

// Token is a single node of the flat, depth-first token array produced by
// tokenizing a JSON document.
//
// A Token is a fixed-size value, but it is only meaningful while its owning
// Reader is alive: Data, FirstChild, Next, and Parent all read or index into
// slices owned by the Reader. A Token copied out of reader.Tokens() retains
// its Type, ParsedType, IsParsed, and decoded payload, but must not be used
// for navigation once detached from context that still holds the Reader
// alive.
type Token struct {
	owner *Reader
	pos   int32
	start int32 // byte offset of the token's first byte in the input buffer

	data       mem.RO
	typ        Type
	parsedType ParsedType
	flags      flags
	childCount int32

	// num holds the payload for every parsed Number or Bool token, using
	// the bit pattern appropriate to parsedType:
	//   ParsedDouble/Float: math.Float64bits/Float32bits
	//   ParsedUnsignedInt/Int/UnsignedLong/Long: the integer's two's-complement bits
	//   Bool: 0 or 1
	num uint64

	// str holds a heap-owned unescaped copy of a String token's value, set
	// only when decoding required processing at least one escape sequence.
	str *string
}

// Type reports the token's type.
func (t *Token) Type() Type { return t.typ }

// ParsedType reports the token's concrete decoded representation, or
// ParsedNone if it has not been parsed.
func (t *Token) ParsedType() ParsedType { return t.parsedType }

// IsParsed reports whether the token's value is available without further
// parsing. Object and Array tokens are always parsed; other types become
// parsed once a decoder has validated and cached their value.
func (t *Token) IsParsed() bool {
	return t.typ == Object || t.typ == Array || t.flags&flagParsed != 0
}

// Data returns the raw byte range of the input buffer covered by t,
// including container contents for Object/Array and including both
// surrounding quotes for String.
func (t *Token) Data() mem.RO { return t.data }

// IsObjectKey reports whether t is a String token that is an immediate child
// of an Object.
func (t *Token) IsObjectKey() bool { return t.flags&flagObjectKey != 0 }

// StringGlobal reports whether a String token's decoded view has global
// (reader-outliving) lifetime, i.e. it was produced by FromString and
// required no escape processing.
func (t *Token) StringGlobal() bool { return t.flags&flagStringGlobal != 0 }

// StringEscaped reports whether a String token's source bytes contain at
// least one backslash, meaning decoding requires allocation.
func (t *Token) StringEscaped() bool { return t.flags&flagStringEscaped != 0 }

// ChildCount reports the total number of descendant tokens, not just
// immediate children. Null, Bool, Number, and value String tokens always
// report zero; an Object key always reports at least one.
func (t *Token) ChildCount() int { return int(t.childCount) }

// Children returns the slice of all descendant tokens, ordered depth-first.
// The returned slice is a view into storage owned by the Reader.
func (t *Token) Children() []Token {
	lo := int(t.pos) + 1
	hi := lo + int(t.childCount)
	return t.owner.tokens[lo:hi]
}

// FirstChild returns the first child token, or nil if t has none. Accessing
// the first child is O(1).
func (t *Token) FirstChild() *Token {
	if t.childCount == 0 {
		return nil
	}
	return &t.owner.tokens[t.pos+1]
}

// Next returns the token immediately following t's subtree: its next sibling
// if one exists, or the next sibling of the nearest enclosing ancestor that
// has one. When t's subtree runs to the end of the token array, Next returns
// nil. Accessing Next is O(1).
//
// A non-nil result may lie outside t's parent; callers comparing against the
// end of a subtree should compare indices or use Children/ChildCount.
func (t *Token) Next() *Token {
	i := int(t.pos) + int(t.childCount) + 1
	if i >= len(t.owner.tokens) {
		return nil
	}
	return &t.owner.tokens[i]
}

// Parent returns the nearest enclosing token, or nil if t is the root.
// Finding the parent requires scanning backward from t and is O(n) in the
// number of tokens preceding t; callers that need repeated parent access
// should retain the parent explicitly while walking down instead.
func (t *Token) Parent() *Token {
	toks := t.owner.tokens
	for i := int(t.pos) - 1; i >= 0; i-- {
		if i+int(toks[i].childCount)+1 > int(t.pos) {
			return &toks[i]
		}
	}
	return nil
}

// index reports t's position in its owning Reader's token array.
func (t *Token) index() int { return int(t.pos) }

// Offset reports the byte offset of t's first byte in the input buffer.
func (t *Token) Offset() int { return int(t.start) }

func (t *Token) assertType(typ Type, method string) {
	if t.typ != typ {
		panic(fmt.Sprintf("jtok: %s: token is %v, not %v", method, t.typ, typ))
	}
}

func (t *Token) assertParsed(pt ParsedType, method string) {
	if t.parsedType != pt {
		state := "an unparsed"
		if t.IsParsed() {
			state = "a parsed"
		}
		panic(fmt.Sprintf("jtok: %s: token is %s %v parsed as %v", method, state, t.typ, t.parsedType))
	}
}

// AsNull has no value to return; it only checks that t is a parsed Null
// token. Violating that precondition is a programming error and panics.
func (t *Token) AsNull() {
	t.assertType(Null, "AsNull")
	if !t.IsParsed() {
		panic("jtok: AsNull: token is an unparsed Null")
	}
}

// AsBool returns the cached boolean value. It requires that t is a parsed
// Bool token.
func (t *Token) AsBool() bool {
	t.assertType(Bool, "AsBool")
	if !t.IsParsed() {
		panic("jtok: AsBool: token is an unparsed Bool")
	}
	return t.num != 0
}

// AsDouble returns the cached float64 value. It requires that t is already
// parsed as ParsedDouble.
func (t *Token) AsDouble() float64 {
	t.assertParsed(ParsedDouble, "AsDouble")
	return float64frombits(t.num)
}

// AsFloat returns the cached float32 value. It requires that t is already
// parsed as ParsedFloat.
func (t *Token) AsFloat() float32 {
	t.assertParsed(ParsedFloat, "AsFloat")
	return float32frombits(uint32(t.num))
}

// AsUnsignedInt returns the cached uint32 value. It requires that t is
// already parsed as ParsedUnsignedInt.
func (t *Token) AsUnsignedInt() uint32 {
	t.assertParsed(ParsedUnsignedInt, "AsUnsignedInt")
	return uint32(t.num)
}

// AsInt returns the cached int32 value. It requires that t is already
// parsed as ParsedInt.
func (t *Token) AsInt() int32 {
	t.assertParsed(ParsedInt, "AsInt")
	return int32(t.num)
}

// AsUnsignedLong returns the cached uint64 value. It requires that t is
// already parsed as ParsedUnsignedLong.
func (t *Token) AsUnsignedLong() uint64 {
	t.assertParsed(ParsedUnsignedLong, "AsUnsignedLong")
	return t.num
}

// AsLong returns the cached int64 value. It requires that t is already
// parsed as ParsedLong, which is only available on 64-bit hosts.
func (t *Token) AsLong() int64 {
	t.assertParsed(ParsedLong, "AsLong")
	return int64(t.num)
}

// AsSize returns the cached size value: a uint32 on 32-bit hosts, a uint64
// widened to uint on 64-bit hosts. It requires that t is already parsed as
// the host's Size alias (ParsedUnsignedInt on 32-bit, ParsedUnsignedLong on
// 64-bit).
func (t *Token) AsSize() uint {
	t.assertParsed(sizeParsedType, "AsSize")
	return uint(t.num)
}

// AsString returns the decoded string value. It requires that t is a parsed
// String token. If the underlying Reader was constructed with FromString and
// the value required no escape processing, StringGlobal reports true for the
// returned view.
func (t *Token) AsString() mem.RO {
	t.assertType(String, "AsString")
	if !t.IsParsed() {
		panic("jtok: AsString: token is an unparsed String")
	}
	if t.str != nil {
		return mem.S(*t.str)
	}
	// No escapes: the value is the source view with the surrounding quotes
	// trimmed.
	return t.data.SliceFrom(1).SliceTo(t.data.Len() - 2)
}

// Option selects tokenization-time behavior for FromString/FromBytes/FromFile.
type Option uint8

// Options is a bitset of Option values.
type Options = Option

// Recognized Option values.
const (
	// ParseLiterals applies ParseLiterals(root) after tokenization.
	ParseLiterals Option = 1 << iota
	// ParseDoubles applies ParseDoubles(root) after tokenization. Takes
	// precedence over ParseFloats if both are set.
	ParseDoubles
	// ParseFloats applies ParseFloats(root) after tokenization.
	ParseFloats
	// ParseStringKeys applies ParseStringKeys(root) after tokenization.
	ParseStringKeys
	// ParseStrings implies ParseStringKeys and additionally applies
	// ParseStrings(root) after tokenization.
	ParseStrings
)

func (o Option) has(bit Option) bool { return o&bit != 0 }
