package symcalc

import (
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF ends every token stream.
	tokenEOF
	// tokenNum is a number literal, inf, or ∞.
	tokenNum
	// tokenIdent names a variable or function.
	tokenIdent
	// tokenOp is one rune of Operators.
	tokenOp
	// tokenOpen is one rune of OpenBrackets.
	tokenOpen
	// tokenClose is one rune of CloseBrackets.
	tokenClose
	// tokenSep separates call arguments: , or ;.
	tokenSep
	// tokenAssign is :=.
	tokenAssign
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenIdent:
		return "Ident"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	case tokenSep:
		return "Sep"
	case tokenAssign:
		return "Assign"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators lists the operator runes.
const Operators = "+-*/^×÷"

// OpenBrackets and CloseBrackets list the grouping runes. The bracket at
// index k of OpenBrackets is closed by the bracket at index k of
// CloseBrackets.
const (
	OpenBrackets  = "([{"
	CloseBrackets = ")]}"
)

// delims end a number without being part of it.
const delims = Operators + OpenBrackets + CloseBrackets + ",;:"

// scanner splits expression source into tokens. Positions count runes from 1.
type scanner struct {
	src  []rune
	at   int
	done bool
}

func newScanner(src io.RuneScanner) (*scanner, error) {
	var rs []rune
	for {
		r, _, err := src.ReadRune()
		if err == io.EOF {
			return &scanner{src: rs}, nil
		}
		if err != nil {
			return nil, err
		}
		rs = append(rs, r)
	}
}

// tokenize scans all of src. The result always ends with an EOF token.
func tokenize(src io.RuneScanner) ([]lexToken, error) {
	s, err := newScanner(src)
	if err != nil {
		return nil, err
	}
	var toks []lexToken
	for {
		tok, err := s.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.kind == tokenEOF {
			return toks, nil
		}
	}
}

// next scans one token. After an invalid token, the error is a *LexError and
// scanning resumes after the rune that made it invalid. Once the EOF token has
// been returned, next returns io.EOF.
func (s *scanner) next() (lexToken, error) {
	if s.done {
		return lexToken{}, io.EOF
	}
	for s.at < len(s.src) && unicode.IsSpace(s.src[s.at]) {
		s.at++
	}
	tok := lexToken{pos: s.at + 1}
	if s.at == len(s.src) {
		s.done = true
		tok.kind = tokenEOF
		return tok, nil
	}
	r := s.src[s.at]
	switch {
	case '0' <= r && r <= '9', r == '.':
		return s.number(tok)
	case r == '_', unicode.IsLetter(r):
		return s.ident(tok), nil
	case r == ':':
		if s.at+1 < len(s.src) && s.src[s.at+1] == '=' {
			s.at += 2
			tok.kind, tok.text = tokenAssign, ":="
			return tok, nil
		}
		s.at++
		return tok, s.fail(s.at-1, "")
	}
	s.at++
	tok.text = string(r)
	switch {
	case r == '∞':
		tok.kind = tokenNum
	case r == ',', r == ';':
		tok.kind = tokenSep
	case strings.ContainsRune(Operators, r):
		tok.kind = tokenOp
	case strings.ContainsRune(OpenBrackets, r):
		tok.kind = tokenOpen
	case strings.ContainsRune(CloseBrackets, r):
		tok.kind = tokenClose
	default:
		return lexToken{pos: tok.pos}, s.fail(s.at-1, "")
	}
	return tok, nil
}

// number scans a decimal literal with optional fraction and exponent.
func (s *scanner) number(tok lexToken) (lexToken, error) {
	start := s.at
	var digits, dot, exp, expdigits, sign bool
	for ; s.at < len(s.src); s.at++ {
		r := s.src[s.at]
		if (r == '+' || r == '-') && sign {
			sign = false
			continue
		}
		if unicode.IsSpace(r) || strings.ContainsRune(delims, r) {
			break
		}
		sign = false
		switch {
		case '0' <= r && r <= '9':
			if exp {
				expdigits = true
			} else {
				digits = true
			}
		case r == '.' && !dot && !exp:
			dot = true
		case (r == 'e' || r == 'E') && digits && !exp:
			exp, sign = true, true
		default:
			s.at++
			return tok, s.fail(start, "number")
		}
	}
	if !digits || exp && !expdigits {
		return tok, s.fail(start, "number")
	}
	tok.kind, tok.text = tokenNum, string(s.src[start:s.at])
	return tok, nil
}

// ident scans a name. Names may contain dots after the first rune. inf and
// Inf are numbers.
func (s *scanner) ident(tok lexToken) lexToken {
	start := s.at
	for s.at < len(s.src) {
		r := s.src[s.at]
		if r != '_' && r != '.' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		s.at++
	}
	tok.text = string(s.src[start:s.at])
	tok.kind = tokenIdent
	if tok.text == "inf" || tok.text == "Inf" {
		tok.kind = tokenNum
	}
	return tok
}

// fail reports the runes from start up to the scan position as an invalid
// token.
func (s *scanner) fail(start int, kind string) error {
	return &LexError{Text: string(s.src[start:s.at]), Kind: kind, Col: s.at + 1}
}
