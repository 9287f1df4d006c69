package leptvalue

import (
	"errors"
	"math"
	"strconv"

	"github.com/foolish-han/leptjson-go/lepterr"
)

// parser is a single-pass cursor over JSON text (spec component C4). Unlike
// the C original's NUL-terminated lept_context, data is a plain Go []byte
// with no terminator; cur() simulates the original's "read past the end
// yields NUL" behavior so every lexical production can be ported without a
// separate end-of-input branch at each call site.
type parser struct {
	data []byte
	pos  int

	strStack stack[byte]
	arrStack stack[Value]
	objStack stack[Member]
}

// Parse parses a complete JSON document from data and returns its root
// Value. The entire input must be a single value optionally surrounded by
// whitespace; anything else is ROOT_NOT_SINGULAR.
func Parse(data []byte) (*Value, error) {
	p := &parser{data: data}
	p.skipWhitespace()
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if p.pos != len(p.data) {
		return nil, lepterr.New(lepterr.RootNotSingular, p.pos, "non-whitespace content after the root value")
	}
	return v, nil
}

func (p *parser) cur() byte {
	if p.pos < len(p.data) {
		return p.data[p.pos]
	}
	return 0
}

func (p *parser) skipWhitespace() {
	for p.pos < len(p.data) && isWhitespace(p.data[p.pos]) {
		p.pos++
	}
}

func (p *parser) parseValue() (*Value, error) {
	switch p.cur() {
	case 0:
		if p.pos >= len(p.data) {
			return nil, lepterr.New(lepterr.ExpectValue, p.pos, "input was empty or only whitespace")
		}
		return p.parseNumber()
	case 'n':
		return p.parseLiteral("null", Null)
	case 't':
		return p.parseLiteral("true", True)
	case 'f':
		return p.parseLiteral("false", False)
	case '"':
		return p.parseString()
	case '[':
		return p.parseArray()
	case '{':
		return p.parseObject()
	default:
		return p.parseNumber()
	}
}

func (p *parser) parseLiteral(literal string, t Type) (*Value, error) {
	end := p.pos + len(literal)
	if end > len(p.data) || string(p.data[p.pos:end]) != literal {
		return nil, lepterr.New(lepterr.InvalidValue, p.pos, "token does not match any known literal, string, number, array, or object production")
	}
	p.pos = end
	return &Value{typ: t}, nil
}

// parseNumber validates the JSON number grammar by lookahead (no value is
// built until the whole token is known to be well-formed), then hands the
// matched substring to strconv.ParseFloat — mirroring the original's
// scan-then-strtod split.
func (p *parser) parseNumber() (*Value, error) {
	start := p.pos
	if err := p.scanNumber(); err != nil {
		return nil, err
	}
	raw := string(p.data[start:p.pos])
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			// ErrRange with f at +/-Inf is overflow: NUMBER_TOO_BIG.
			// Underflow never reaches here: ParseFloat returns 0 with a nil
			// error for it, so it is accepted silently as 0 below.
			if math.IsInf(f, 0) {
				return nil, lepterr.New(lepterr.NumberTooBig, start, "number overflowed a 64-bit float")
			}
			return &Value{typ: Number, num: f}, nil
		}
		return nil, lepterr.New(lepterr.InvalidValue, start, "malformed number")
	}
	return &Value{typ: Number, num: f}, nil
}

func (p *parser) scanNumber() error {
	if p.cur() == '-' {
		p.pos++
	}
	if err := p.scanIntegerPart(); err != nil {
		return err
	}
	if err := p.scanFractionPart(); err != nil {
		return err
	}
	return p.scanExponentPart()
}

func (p *parser) scanIntegerPart() error {
	c := p.cur()
	if c == '0' {
		p.pos++
		return nil
	}
	if !isDigit1To9(c) {
		return lepterr.New(lepterr.InvalidValue, p.pos, "expected a digit")
	}
	p.pos++
	for isDigit(p.cur()) {
		p.pos++
	}
	return nil
}

func (p *parser) scanFractionPart() error {
	if p.cur() != '.' {
		return nil
	}
	p.pos++
	if !isDigit(p.cur()) {
		return lepterr.New(lepterr.InvalidValue, p.pos, "expected a digit after the decimal point")
	}
	for isDigit(p.cur()) {
		p.pos++
	}
	return nil
}

func (p *parser) scanExponentPart() error {
	if c := p.cur(); c != 'e' && c != 'E' {
		return nil
	}
	p.pos++
	if c := p.cur(); c == '+' || c == '-' {
		p.pos++
	}
	if !isDigit(p.cur()) {
		return lepterr.New(lepterr.InvalidValue, p.pos, "expected a digit in the exponent")
	}
	for isDigit(p.cur()) {
		p.pos++
	}
	return nil
}

func (p *parser) parseString() (*Value, error) {
	b, err := p.parseRawString()
	if err != nil {
		return nil, err
	}
	return &Value{typ: String, str: b}, nil
}

// parseRawString decodes the string starting at the current '"' and returns
// its bytes, independent of the scratch stack. On any error, everything this
// call pushed is popped and freed before returning, so the scratch stack is
// always restored to the caller's head on failure — the LIFO
// partial-failure-cleanup invariant.
func (p *parser) parseRawString() ([]byte, error) {
	head := p.strStack.len()
	p.pos++ // consume opening quote
	for {
		if p.pos >= len(p.data) {
			p.discardString(head)
			return nil, lepterr.New(lepterr.MissQuotationMark, p.pos, "end of input before closing quote")
		}
		c := p.data[p.pos]
		switch {
		case c == '"':
			p.pos++
			n := p.strStack.len() - head
			popped := p.strStack.pop(n)
			result := make([]byte, n)
			copy(result, popped)
			return result, nil
		case c == '\\':
			p.pos++
			if err := p.parseEscape(); err != nil {
				p.discardString(head)
				return nil, err
			}
		case c < 0x20:
			p.discardString(head)
			return nil, lepterr.New(lepterr.InvalidStringChar, p.pos, "unescaped control byte in string")
		default:
			*p.strStack.push() = c
			p.pos++
		}
	}
}

func (p *parser) discardString(head int) {
	p.strStack.pop(p.strStack.len() - head)
}

func (p *parser) parseEscape() error {
	c := p.cur()
	if p.pos < len(p.data) {
		p.pos++
	}
	switch c {
	case '"':
		*p.strStack.push() = '"'
	case '\\':
		*p.strStack.push() = '\\'
	case '/':
		*p.strStack.push() = '/'
	case 'b':
		*p.strStack.push() = '\b'
	case 'f':
		*p.strStack.push() = '\f'
	case 'n':
		*p.strStack.push() = '\n'
	case 'r':
		*p.strStack.push() = '\r'
	case 't':
		*p.strStack.push() = '\t'
	case 'u':
		return p.parseUnicodeEscape()
	default:
		return lepterr.New(lepterr.InvalidStringEscape, p.pos, "unrecognized escape character")
	}
	return nil
}

// readHex4 decodes exactly four hex digits starting at the cursor into a
// rune, advancing past each digit it matches. Returns ok=false (without
// having advanced past the failing position) on any non-hex byte, including
// one simulated by running off the end of input.
func (p *parser) readHex4() (rune, bool) {
	var u rune
	for i := 0; i < 4; i++ {
		c := p.cur()
		var d rune
		switch {
		case c >= '0' && c <= '9':
			d = rune(c - '0')
		case c >= 'A' && c <= 'F':
			d = rune(c-'A') + 10
		case c >= 'a' && c <= 'f':
			d = rune(c-'a') + 10
		default:
			return 0, false
		}
		u = u<<4 | d
		p.pos++
	}
	return u, true
}

// parseUnicodeEscape handles the \uXXXX form already past the 'u'. A high
// surrogate must be followed by \u and a valid low surrogate; the pair
// combines via the standard UTF-16 formula. A lone low surrogate, or a high
// surrogate with no valid low surrogate following, is a surrogate error.
func (p *parser) parseUnicodeEscape() error {
	hi, ok := p.readHex4()
	if !ok {
		return lepterr.New(lepterr.InvalidUnicodeHex, p.pos, "\\u not followed by four hex digits")
	}
	switch {
	case hi >= 0xD800 && hi <= 0xDBFF:
		if p.cur() != '\\' {
			return lepterr.New(lepterr.InvalidUnicodeSurrogate, p.pos, "high surrogate not followed by a low surrogate escape")
		}
		p.pos++
		if p.cur() != 'u' {
			return lepterr.New(lepterr.InvalidUnicodeSurrogate, p.pos, "high surrogate not followed by a low surrogate escape")
		}
		p.pos++
		lo, ok := p.readHex4()
		if !ok {
			return lepterr.New(lepterr.InvalidUnicodeSurrogate, p.pos, "invalid low surrogate hex digits")
		}
		if lo < 0xDC00 || lo > 0xDFFF {
			return lepterr.New(lepterr.InvalidUnicodeSurrogate, p.pos, "invalid low surrogate")
		}
		cp := 0x10000 + ((hi - 0xD800) << 10) + (lo - 0xDC00)
		encodeUTF8(&p.strStack, cp)
		return nil
	case hi >= 0xDC00 && hi <= 0xDFFF:
		return lepterr.New(lepterr.InvalidUnicodeSurrogate, p.pos, "lone low surrogate")
	default:
		encodeUTF8(&p.strStack, hi)
		return nil
	}
}

func (p *parser) parseArray() (*Value, error) {
	p.pos++ // consume '['
	p.skipWhitespace()
	head := p.arrStack.len()
	if p.cur() == ']' {
		p.pos++
		return &Value{typ: Array}, nil
	}
	count := 0
	for {
		elem, err := p.parseValue()
		if err != nil {
			p.discardArray(head)
			return nil, err
		}
		*p.arrStack.push() = *elem
		count++
		p.skipWhitespace()
		switch p.cur() {
		case ',':
			p.pos++
			p.skipWhitespace()
		case ']':
			p.pos++
			popped := p.arrStack.pop(count)
			elems := make([]Value, count)
			copy(elems, popped)
			return &Value{typ: Array, arr: elems}, nil
		default:
			p.discardArray(head)
			return nil, lepterr.New(lepterr.MissCommaOrSquareBracket, p.pos, "expected ',' or ']'")
		}
	}
}

func (p *parser) discardArray(head int) {
	popped := p.arrStack.pop(p.arrStack.len() - head)
	for i := len(popped) - 1; i >= 0; i-- {
		popped[i].free()
	}
}

func (p *parser) parseObject() (*Value, error) {
	p.pos++ // consume '{'
	p.skipWhitespace()
	head := p.objStack.len()
	if p.cur() == '}' {
		p.pos++
		return &Value{typ: Object}, nil
	}
	count := 0
	for {
		if p.cur() != '"' {
			p.discardObject(head)
			return nil, lepterr.New(lepterr.MissKey, p.pos, "expected a string key")
		}
		key, err := p.parseRawString()
		if err != nil {
			p.discardObject(head)
			return nil, err
		}
		p.skipWhitespace()
		if p.cur() != ':' {
			p.discardObject(head)
			return nil, lepterr.New(lepterr.MissColon, p.pos, "expected ':' after object key")
		}
		p.pos++
		p.skipWhitespace()
		val, err := p.parseValue()
		if err != nil {
			p.discardObject(head)
			return nil, err
		}
		*p.objStack.push() = Member{Key: key, Value: *val}
		count++
		p.skipWhitespace()
		switch p.cur() {
		case ',':
			p.pos++
			p.skipWhitespace()
		case '}':
			p.pos++
			popped := p.objStack.pop(count)
			members := make([]Member, count)
			copy(members, popped)
			return &Value{typ: Object, obj: members}, nil
		default:
			p.discardObject(head)
			return nil, lepterr.New(lepterr.MissCommaOrCurlyBracket, p.pos, "expected ',' or '}'")
		}
	}
}

func (p *parser) discardObject(head int) {
	popped := p.objStack.pop(p.objStack.len() - head)
	for i := len(popped) - 1; i >= 0; i-- {
		popped[i].Key = nil
		popped[i].Value.free()
	}
}
