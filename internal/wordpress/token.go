package wordpress

import (
	"strings"
)

// TokenKind discriminates the values a SQL row literal can hold
type TokenKind int

const (
	// TokenNull is an unquoted NULL or an empty unquoted field
	TokenNull TokenKind = iota
	// TokenString is a quoted literal with quoting undone
	TokenString
	// TokenRaw is an unquoted token (numbers, mostly)
	TokenRaw
)

// Token is one value from a parsed row
type Token struct {
	Kind  TokenKind
	Value string
}

// IsNull reports whether the token is a SQL NULL
func (t Token) IsNull() bool {
	return t.Kind == TokenNull
}

// scanner states for ParseRow
type rowState int

const (
	stateFieldStart rowState = iota
	stateInRaw
	stateInQuote
	stateAfterQuote
)

// ParseRow tokenizes one row's literal text: comma-separated SQL literals,
// quoted with ' or ", doubled quotes collapsing to a single quote character,
// unquoted NULL becoming a null token. The parser never fails hard; malformed
// input (unbalanced quotes, too few fields) yields best-effort tokens and the
// caller validates field count.
func ParseRow(row string) []Token {
	var tokens []Token
	var buf strings.Builder
	state := stateFieldStart
	var quote byte

	flushRaw := func() {
		text := strings.TrimSpace(buf.String())
		buf.Reset()
		if text == "" || text == "NULL" {
			tokens = append(tokens, Token{Kind: TokenNull})
			return
		}
		tokens = append(tokens, Token{Kind: TokenRaw, Value: text})
	}

	for i := 0; i < len(row); i++ {
		c := row[i]

		switch state {
		case stateFieldStart:
			switch {
			case c == ' ' || c == '\t' || c == '\n' || c == '\r':
				// leading whitespace
			case c == '\'' || c == '"':
				quote = c
				state = stateInQuote
			case c == ',':
				tokens = append(tokens, Token{Kind: TokenNull})
			default:
				buf.WriteByte(c)
				state = stateInRaw
			}

		case stateInRaw:
			if c == ',' {
				flushRaw()
				state = stateFieldStart
			} else {
				buf.WriteByte(c)
			}

		case stateInQuote:
			if c == quote {
				if i+1 < len(row) && row[i+1] == quote {
					// doubled quote is an escaped literal quote
					buf.WriteByte(quote)
					i++
				} else {
					tokens = append(tokens, Token{Kind: TokenString, Value: buf.String()})
					buf.Reset()
					state = stateAfterQuote
				}
			} else {
				buf.WriteByte(c)
			}

		case stateAfterQuote:
			if c == ',' {
				state = stateFieldStart
			}
			// anything else between a closing quote and the separator is noise
		}
	}

	// trailing unflushed content still counts as a final value
	switch state {
	case stateInRaw:
		flushRaw()
	case stateInQuote:
		// unbalanced quote: emit what accumulated
		tokens = append(tokens, Token{Kind: TokenString, Value: buf.String()})
	}

	return tokens
}

// stringAt returns the string form of the token at index i, "" for null or
// out-of-range
func stringAt(tokens []Token, i int) string {
	if i >= len(tokens) || tokens[i].IsNull() {
		return ""
	}
	return tokens[i].Value
}

// intAt parses the token at index i as an integer, 0 when absent or invalid
func intAt(tokens []Token, i int) int64 {
	s := stringAt(tokens, i)
	if s == "" {
		return 0
	}
	var n int64
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int64(r-'0')
	}
	return n
}
