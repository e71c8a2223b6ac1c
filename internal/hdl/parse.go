// Package hdl parses pin assignment lists like "zx=1, nx, f=0".
package hdl

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Type is a token type.
type Type int

// Tokens
const (
	EOF Type = iota
	Error
	Raw
	Ident
	Comma
	Int
	Equal
)

var typeNames = [...]string{
	EOF:   "end of input",
	Error: "error",
	Raw:   "character",
	Ident: "identifier",
	Comma: "','",
	Int:   "integer",
	Equal: "'='",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
	return typeNames[t]
}

// Item is a lexed token. Pos is the 0-based byte offset of the token in the
// input.
type Item struct {
	Type  Type
	Pos   int
	Value interface{}
}

func (i Item) String() string {
	switch i.Type {
	case Ident:
		return "identifier " + strconv.Quote(i.Value.(string))
	case Int:
		return "integer " + strconv.Itoa(i.Value.(int))
	case Raw:
		return strconv.QuoteRune(i.Value.(rune))
	case Error:
		return i.Value.(string)
	}
	return i.Type.String()
}

// Lexer splits an input string into Items.
type Lexer struct {
	input string
	pos   int
}

// NewLexer returns a new lexer for pin assignment lists.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

func (l *Lexer) next() (rune, int) {
	if l.pos >= len(l.input) {
		return -1, 0
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += w
	return r, w
}

// Lex returns the next item in the input. Once the end of the input is
// reached, it only returns EOF.
func (l *Lexer) Lex() Item {
	for {
		start := l.pos
		r, w := l.next()
		switch {
		case r < 0:
			return Item{EOF, start, nil}
		case unicode.IsSpace(r):
			continue
		case unicode.IsLetter(r) || r == '_':
			for {
				r, w = l.next()
				if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
					l.pos -= w
					break
				}
			}
			return Item{Ident, start, l.input[start:l.pos]}
		case '0' <= r && r <= '9':
			for {
				r, w = l.next()
				if r < '0' || r > '9' {
					l.pos -= w
					break
				}
			}
			i, err := strconv.Atoi(l.input[start:l.pos])
			if err != nil {
				return Item{Error, start, "integer out of range"}
			}
			return Item{Int, start, i}
		case r == ',':
			return Item{Comma, start, ","}
		case r == '=':
			return Item{Equal, start, "="}
		default:
			return Item{Raw, start, r}
		}
	}
}

// Assignment is a pin to value assignment: name=value. A bare name is an
// implicit assignment of 1.
type Assignment struct {
	Name     string
	Pos      int
	Value    int
	Implicit bool
}

// Parse parses a comma separated list of assignments. An empty input returns
// no assignments and no error.
func Parse(input string) ([]Assignment, error) {
	var out []Assignment
	l := NewLexer(input)

	i := l.Lex()
	if i.Type == EOF {
		return nil, nil
	}
	for {
		if i.Type == Error {
			return nil, parseError(input, i.Pos, i.String())
		}
		if i.Type != Ident {
			return nil, parseError(input, i.Pos, "expected pin name, got "+i.String())
		}
		a := Assignment{Name: i.Value.(string), Pos: i.Pos, Value: 1, Implicit: true}
		// after ident, expect '=', ',' or EOF
		i = l.Lex()
		if i.Type == Equal {
			i = l.Lex()
			if i.Type == Error {
				return nil, parseError(input, i.Pos, i.String())
			}
			if i.Type != Int {
				return nil, parseError(input, i.Pos, "integer value expected after '='")
			}
			a.Value, a.Implicit = i.Value.(int), false
			i = l.Lex()
		}
		out = append(out, a)
		switch i.Type {
		case Error:
			return nil, parseError(input, i.Pos, i.String())
		case EOF:
			return out, nil
		case Comma:
			i = l.Lex()
		default:
			return nil, parseError(input, i.Pos, "unexpected "+i.String())
		}
	}
}

func parseError(in string, pos int, msg string) error {
	return errors.Errorf("in %q at pos %d: %s", in, pos+1, msg)
}
