package formula

import (
	"strings"

	"github.com/leapstack-labs/metalcalc/pkg/token"
)

// middleDot is the UTF-8 encoding of U+00B7, accepted as a hydrate separator.
const middleDot = "·"

// Lexer tokenizes a chemical formula.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	col     int  // current column number (1-based, counted in runes)

	started bool // a token other than EOF has been emitted
	depth   int  // parenthesis depth
	inPhase bool // between '[' and ']'
	dotted  bool // hydrate separator already emitted
}

// NewLexer creates a new Lexer for the given formula.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// readChar advances to the next byte.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	// UTF-8 continuation bytes do not start a new column.
	if l.ch&0xC0 != 0x80 {
		l.col++
	}
}

// peekChar returns the next byte without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// currentPos returns the current position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   1,
		Column: l.col,
		Offset: l.pos,
	}
}

// atEnd reports whether the lexer has consumed all input.
func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.input)
}

// NextToken returns the next token.
func (l *Lexer) NextToken() token.Token {
	l.skipOuterWhitespace()

	pos := l.currentPos()
	if l.atEnd() {
		return token.Token{Type: token.EOF, Pos: pos}
	}
	l.started = true

	if l.inPhase {
		return l.readPhase(pos)
	}

	switch {
	case isUpper(l.ch):
		return l.readElement(pos)
	case isDigit(l.ch):
		return l.readNumber(pos)
	case strings.HasPrefix(l.input[l.pos:], middleDot):
		l.readChar()
		l.readChar()
		l.dotted = true
		return token.Token{Type: token.DOT, Literal: middleDot, Pos: pos}
	}

	var tok token.Token
	switch l.ch {
	case '(':
		l.depth++
		tok = l.newToken(token.LPAREN, pos)
	case ')':
		l.depth--
		tok = l.newToken(token.RPAREN, pos)
	case '[':
		l.inPhase = true
		tok = l.newToken(token.LBRACKET, pos)
	case ']':
		tok = l.newToken(token.RBRACKET, pos)
	case '.':
		l.dotted = true
		tok = l.newToken(token.DOT, pos)
	default:
		tok = l.readIllegal(pos)
	}
	return tok
}

// newToken creates a single-byte token from the current char and advances.
func (l *Lexer) newToken(t token.TokenType, pos token.Position) token.Token {
	tok := token.Token{Type: t, Literal: string(l.ch), Pos: pos}
	l.readChar()
	return tok
}

// skipOuterWhitespace skips leading whitespace and whitespace that runs to the
// end of the input. Interior whitespace is left for readIllegal.
func (l *Lexer) skipOuterWhitespace() {
	if !isSpace(l.ch) {
		return
	}
	if l.started && strings.TrimSpace(l.input[l.pos:]) != "" {
		return
	}
	for isSpace(l.ch) {
		l.readChar()
	}
}

// readElement reads an uppercase letter followed by all lowercase letters.
// The whole run is the candidate symbol; the parser validates it against the
// element table.
func (l *Lexer) readElement(pos token.Position) token.Token {
	start := l.pos
	l.readChar()
	for isLower(l.ch) {
		l.readChar()
	}
	return token.Token{Type: token.ELEMENT, Literal: l.input[start:l.pos], Pos: pos}
}

// readNumber reads digits with an optional fractional part.
//
// At the outermost level, before any hydrate separator, "N.M" with a non-zero
// integer part that is directly followed by an uppercase letter or '(' is
// read as the subscript N; the '.' is then lexed as the hydrate separator.
// CaSO4.2H2O is a hydrate while Fe0.95O and (Fe2.5)O carry decimal subscripts.
func (l *Lexer) readNumber(pos token.Position) token.Token {
	start := l.pos
	end := scanDigits(l.input, start)

	if end < len(l.input) && l.input[end] == '.' && end+1 < len(l.input) && isDigit(l.input[end+1]) {
		fracEnd := scanDigits(l.input, end+1)
		if !l.splitsHydrate(l.input[start:end], fracEnd) {
			end = fracEnd
		}
	}

	for l.pos < end {
		l.readChar()
	}
	return token.Token{Type: token.NUMBER, Literal: l.input[start:end], Pos: pos}
}

// splitsHydrate reports whether a decimal subscript ending at fracEnd should
// be split at its '.' into a subscript and a hydrate separator.
func (l *Lexer) splitsHydrate(intPart string, fracEnd int) bool {
	if l.depth != 0 || l.dotted {
		return false
	}
	if strings.Trim(intPart, "0") == "" {
		return false
	}
	if fracEnd >= len(l.input) {
		return false
	}
	next := l.input[fracEnd]
	return isUpper(next) || next == '('
}

// readPhase reads the contents of a bracketed phase tag.
func (l *Lexer) readPhase(pos token.Position) token.Token {
	if l.ch == ']' {
		l.inPhase = false
		return l.newToken(token.RBRACKET, pos)
	}
	if !isAlnum(l.ch) {
		return l.readIllegal(pos)
	}
	start := l.pos
	for isAlnum(l.ch) {
		l.readChar()
	}
	return token.Token{Type: token.IDENT, Literal: l.input[start:l.pos], Pos: pos}
}

// readIllegal consumes one (possibly multi-byte) character as an ILLEGAL token.
func (l *Lexer) readIllegal(pos token.Position) token.Token {
	start := l.pos
	l.readChar()
	for l.ch&0xC0 == 0x80 {
		l.readChar()
	}
	return token.Token{Type: token.ILLEGAL, Literal: l.input[start:l.pos], Pos: pos}
}

// Tokenize returns all tokens of the input up to and including EOF.
func Tokenize(input string) []token.Token {
	l := NewLexer(input)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func scanDigits(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }
func isUpper(ch byte) bool { return ch >= 'A' && ch <= 'Z' }
func isLower(ch byte) bool { return ch >= 'a' && ch <= 'z' }
func isAlnum(ch byte) bool { return isDigit(ch) || isUpper(ch) || isLower(ch) }
func isSpace(ch byte) bool { return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' }
