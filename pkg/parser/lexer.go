package parser

import (
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNewline
	tokNumber
	tokString
	tokIdent
	tokIf
	tokElse
	tokFunction
	tokTrue
	tokFalse
	tokNaN
	tokInf
	tokLParen
	tokRParen
	tokLBrace
	tokRBrace
	tokComma
	tokSemicolon
	tokEquals
	tokOp
)

type token struct {
	kind   tokenKind
	text   string
	quoted bool // identifier came backquoted, bypassing keyword handling
	isInt  bool // number token without fraction or exponent
	line   int
	column int
}

func (t token) describe() string {
	switch t.kind {
	case tokEOF:
		return "end of input"
	case tokNewline:
		return "newline"
	default:
		return "'" + t.text + "'"
	}
}

var keywords = map[string]tokenKind{
	"if":       tokIf,
	"else":     tokElse,
	"function": tokFunction,
	"TRUE":     tokTrue,
	"FALSE":    tokFalse,
	"NaN":      tokNaN,
	"Inf":      tokInf,
}

type lexer struct {
	src    string
	pos    int
	line   int
	column int
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1, column: 1}
}

// scan tokenizes the whole input up front; the parser indexes the result.
func (l *lexer) scan() ([]token, error) {
	var tokens []token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.kind == tokEOF {
			return tokens, nil
		}
	}
}

func (l *lexer) next() (token, error) {
	l.skipBlanks()
	line, column := l.line, l.column
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, line: line, column: column}, nil
	}
	r, size := utf8.DecodeRuneInString(l.src[l.pos:])
	switch {
	case r == '\n':
		l.advance(size)
		return token{kind: tokNewline, text: "\n", line: line, column: column}, nil
	case r == '"':
		return l.scanString(line, column)
	case r == '`':
		return l.scanBackquoted(line, column)
	case unicode.IsDigit(r):
		return l.scanNumber(line, column), nil
	case r == '.':
		if next, ok := l.peekAt(size); ok && unicode.IsDigit(next) {
			return l.scanNumber(line, column), nil
		}
		return l.scanIdentifier(line, column), nil
	case unicode.IsLetter(r):
		return l.scanIdentifier(line, column), nil
	}
	return l.scanPunct(r, line, column)
}

func (l *lexer) skipBlanks() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\r':
			l.advance(1)
		case '#':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.advance(1)
			}
		default:
			return
		}
	}
}

func (l *lexer) advance(n int) {
	for i := 0; i < n && l.pos < len(l.src); i++ {
		if l.src[l.pos] == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
		l.pos++
	}
}

func (l *lexer) peekAt(offset int) (rune, bool) {
	if l.pos+offset >= len(l.src) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.pos+offset:])
	return r, true
}

func (l *lexer) scanString(line, column int) (token, error) {
	start := l.pos
	l.advance(1)
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case '\\':
			l.advance(2)
		case '"':
			l.advance(1)
			return token{kind: tokString, text: l.src[start:l.pos], line: line, column: column}, nil
		case '\n':
			return token{}, errorAt(line, column, "unterminated string literal")
		default:
			l.advance(1)
		}
	}
	return token{}, errorAt(line, column, "unterminated string literal")
}

func (l *lexer) scanBackquoted(line, column int) (token, error) {
	l.advance(1)
	start := l.pos
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case '`':
			text := l.src[start:l.pos]
			l.advance(1)
			if text == "" {
				return token{}, errorAt(line, column, "empty backquoted name")
			}
			return token{kind: tokIdent, text: text, quoted: true, line: line, column: column}, nil
		case '\n':
			return token{}, errorAt(line, column, "unterminated backquoted name")
		default:
			l.advance(1)
		}
	}
	return token{}, errorAt(line, column, "unterminated backquoted name")
}

func (l *lexer) scanNumber(line, column int) token {
	start := l.pos
	seenDot, seenExp := false, false
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c >= '0' && c <= '9':
			l.advance(1)
		case c == '.' && !seenDot && !seenExp:
			seenDot = true
			l.advance(1)
		case (c == 'e' || c == 'E') && !seenExp:
			seenExp = true
			l.advance(1)
			if l.pos < len(l.src) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
				l.advance(1)
			}
		default:
			text := l.src[start:l.pos]
			return token{kind: tokNumber, text: text, isInt: !seenDot && !seenExp, line: line, column: column}
		}
	}
	text := l.src[start:l.pos]
	return token{kind: tokNumber, text: text, isInt: !seenDot && !seenExp, line: line, column: column}
}

func (l *lexer) scanIdentifier(line, column int) token {
	start := l.pos
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.' && r != '_' {
			break
		}
		l.advance(size)
	}
	text := l.src[start:l.pos]
	if kind, ok := keywords[text]; ok {
		return token{kind: kind, text: text, line: line, column: column}
	}
	return token{kind: tokIdent, text: text, line: line, column: column}
}

var twoCharOps = []string{"<-", "<=", ">=", "==", "!=", "||", "&&"}

func (l *lexer) scanPunct(r rune, line, column int) (token, error) {
	if l.pos+1 < len(l.src) {
		two := l.src[l.pos : l.pos+2]
		for _, op := range twoCharOps {
			if two == op {
				l.advance(2)
				return token{kind: tokOp, text: op, line: line, column: column}, nil
			}
		}
	}
	single := string(r)
	kind := tokOp
	switch r {
	case '(':
		kind = tokLParen
	case ')':
		kind = tokRParen
	case '{':
		kind = tokLBrace
	case '}':
		kind = tokRBrace
	case ',':
		kind = tokComma
	case ';':
		kind = tokSemicolon
	case '=':
		kind = tokEquals
	case '<', '>', '+', '-', '*', '/', ':', '$', '!':
		kind = tokOp
	default:
		return token{}, errorAt(line, column, "unexpected character %q", single)
	}
	l.advance(len(single))
	return token{kind: kind, text: single, line: line, column: column}, nil
}
