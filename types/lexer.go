package types

import (
	"bytes"
	"fmt"

	"github.com/lyraproj/typeguard/utils"
)

type tokenType int

const (
	end = tokenType(iota)
	name
	identifier
	integer
	float
	stringLiteral
	regexpLiteral
	leftBracket
	rightBracket
	leftCurlyBrace
	rightCurlyBrace
	comma
	rocket
	ellipsis
)

func (t tokenType) String() (s string) {
	switch t {
	case end:
		s = "end"
	case name:
		s = "name"
	case identifier:
		s = "identifier"
	case integer:
		s = "integer"
	case float:
		s = "float"
	case stringLiteral:
		s = "string"
	case regexpLiteral:
		s = "regexp"
	case leftBracket:
		s = "leftBracket"
	case rightBracket:
		s = "rightBracket"
	case leftCurlyBrace:
		s = "leftCurlyBrace"
	case rightCurlyBrace:
		s = "rightCurlyBrace"
	case comma:
		s = "comma"
	case rocket:
		s = "rocket"
	case ellipsis:
		s = "ellipsis"
	default:
		s = "*UNKNOWN TOKEN*"
	}
	return
}

type token struct {
	s string
	i tokenType
}

func (t token) String() string {
	return fmt.Sprintf("%s: '%s'", t.i.String(), t.s)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetterOrDigit(r rune) bool {
	return r == '_' || isDigit(r) || r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z'
}

// scan delivers the tokens of a type expression to the given function
// until the end of input or until the function returns an error
func scan(sr *utils.StringReader, tf func(t token) error) error {
	syntaxError := func(msg string) error {
		return fmt.Errorf(`%s at line %d column %d`, msg, sr.Line(), sr.Column())
	}

	buf := bytes.NewBufferString(``)
	r := sr.Next()
	for {
		switch r {
		case 0:
			return tf(token{``, end})
		case ' ', '\t', '\n', '\r':
			r = sr.Next()
			continue
		case '[':
			if err := tf(token{`[`, leftBracket}); err != nil {
				return err
			}
		case ']':
			if err := tf(token{`]`, rightBracket}); err != nil {
				return err
			}
		case '{':
			if err := tf(token{`{`, leftCurlyBrace}); err != nil {
				return err
			}
		case '}':
			if err := tf(token{`}`, rightCurlyBrace}); err != nil {
				return err
			}
		case ',':
			if err := tf(token{`,`, comma}); err != nil {
				return err
			}
		case '=':
			if r = sr.Next(); r != '>' {
				return syntaxError(`expected '>' after '='`)
			}
			if err := tf(token{`=>`, rocket}); err != nil {
				return err
			}
		case '.':
			if sr.Next() != '.' || sr.Next() != '.' {
				return syntaxError(`expected '...'`)
			}
			if err := tf(token{`...`, ellipsis}); err != nil {
				return err
			}
		case '\'', '"':
			q := r
			buf.Reset()
			for {
				r = sr.Next()
				switch r {
				case 0, '\n':
					return syntaxError(`unterminated string`)
				case '\\':
					switch r = sr.Next(); r {
					case 'n':
						r = '\n'
					case 'r':
						r = '\r'
					case 't':
						r = '\t'
					case '\\', q:
					default:
						return syntaxError(fmt.Sprintf(`illegal escape '\%c'`, r))
					}
					buf.WriteRune(r)
					continue
				case q:
				default:
					buf.WriteRune(r)
					continue
				}
				break
			}
			if err := tf(token{buf.String(), stringLiteral}); err != nil {
				return err
			}
		case '/':
			buf.Reset()
			for {
				r = sr.Next()
				if r == 0 || r == '\n' {
					return syntaxError(`unterminated regexp`)
				}
				if r == '\\' {
					n := sr.Next()
					if n == '/' {
						buf.WriteRune('/')
						continue
					}
					buf.WriteRune('\\')
					buf.WriteRune(n)
					continue
				}
				if r == '/' {
					break
				}
				buf.WriteRune(r)
			}
			if err := tf(token{buf.String(), regexpLiteral}); err != nil {
				return err
			}
		default:
			if r == '-' || isDigit(r) {
				buf.Reset()
				buf.WriteRune(r)
				tt := integer
				for {
					r = sr.Next()
					if isDigit(r) {
						buf.WriteRune(r)
						continue
					}
					if r == '.' && tt == integer {
						tt = float
						buf.WriteRune(r)
						continue
					}
					if r == 'e' || r == 'E' {
						tt = float
						buf.WriteRune(r)
						if r = sr.Next(); r == '-' || isDigit(r) {
							buf.WriteRune(r)
							continue
						}
						return syntaxError(`malformed exponent`)
					}
					break
				}
				if err := tf(token{buf.String(), tt}); err != nil {
					return err
				}
				continue
			}
			if isLetterOrDigit(r) {
				tt := identifier
				if r >= 'A' && r <= 'Z' {
					tt = name
				}
				buf.Reset()
				buf.WriteRune(r)
				for {
					r = sr.Next()
					if !isLetterOrDigit(r) {
						break
					}
					buf.WriteRune(r)
				}
				if err := tf(token{buf.String(), tt}); err != nil {
					return err
				}
				continue
			}
			return syntaxError(fmt.Sprintf(`illegal token '%c'`, r))
		}
		r = sr.Next()
	}
}
