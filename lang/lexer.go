package lang

// Tokenize converts source text into an ordered token sequence.
//
// The scan is a single left-to-right pass with one character of lookbehind.
// Runs of like-classified characters accumulate into a single token; any
// kind change closes the open run. Whitespace closes runs and is never
// emitted. It fails with a *LexError when it encounters a character it
// cannot classify, when a pending concatenation marker ("|") does not
// resolve into "||", when a "0b" prefix is not followed by binary digits,
// or when a string literal is left unterminated.
func Tokenize(src string) (Tokens, error) {
	lx := &lexer{src: src}

	for i := 0; i < len(src); i++ {
		c := src[i]

		// String sub-mode: consume everything verbatim until the
		// closing quote, then close the token including both quotes.
		if lx.finding != 0 {
			if c != lx.finding {
				continue
			}

			lx.toks = append(lx.toks, Token{
				Kind: KindString,
				Text: src[lx.start : i+1],
				Pos:  lx.start,
			})
			lx.cur = KindUndef
			lx.finding = 0

			continue
		}

		var prev byte
		if i > 0 {
			prev = src[i-1]
		}

		err := lx.step(i, c, classify(c, prev, lx.restriction, lx.cur))
		if err != nil {
			return nil, err
		}
	}

	if lx.finding != 0 {
		return nil, &LexError{Pos: lx.start, Char: '"', Source: src}
	}

	if lx.cur == KindConsumable {
		return nil, &LexError{Pos: lx.start, Char: '|', Source: src}
	}

	err := lx.close(len(src))
	if err != nil {
		return nil, err
	}

	return lx.toks, nil
}

// lexer holds the scanner state for a single Tokenize run.
type lexer struct {
	src         string
	toks        Tokens
	cur         Kind // kind of the open run, or KindUndef
	start       int  // byte offset where the open run began
	restriction Kind // KindHex, KindBin, or KindUndef
	finding     byte // closing quote being searched for, or 0
}

// step advances the scanner by one classified character.
func (lx *lexer) step(i int, c byte, k Kind) error {
	// A pending concatenation marker resolves only into "||".
	if lx.cur == KindConsumable {
		if k != KindConcat {
			return &LexError{Pos: lx.start, Char: '|', Source: lx.src}
		}

		lx.cur = KindUndef
		lx.toks = append(lx.toks, Token{Kind: KindConcat, Text: "||", Pos: i - 1})

		return nil
	}

	if k == KindConsumable {
		err := lx.close(i)
		if err != nil {
			return err
		}

		lx.cur = KindConsumable
		lx.start = i

		return nil
	}

	// An "x"/"b" following a bare "0" switches the open number run into
	// a restricted hex/bin run whose digits begin after the prefix.
	if k == KindHex || k == KindBin {
		if lx.cur == KindNumber && lx.src[lx.start:i] == "0" {
			lx.cur = k
			lx.start = i + 1
			lx.restriction = k

			return nil
		}

		// Not a bare-zero prefix: the character reads as a letter.
		k = KindSymbol
	}

	// Digits under an active restriction extend the open hex/bin run.
	if lx.restriction != KindUndef && k == KindNumber &&
		(lx.cur == KindHex || lx.cur == KindBin) {
		return nil
	}

	// Like-kind characters keep a symbol or number run open.
	if k == lx.cur && (k == KindSymbol || k == KindNumber) {
		return nil
	}

	// Any kind change closes the open run.
	err := lx.close(i)
	if err != nil {
		return err
	}

	switch k {
	case KindString:
		lx.cur = KindString
		lx.start = i
		lx.finding = '"'

	case KindSymbol, KindNumber:
		lx.cur = k
		lx.start = i

	case KindEqual, KindLParen, KindRParen,
		KindMul, KindPlus, KindMinus, KindDiv, KindComma:
		lx.toks = append(lx.toks, Token{Kind: k, Text: lx.src[i : i+1], Pos: i})

	case KindConcat:
		// A pipe whose predecessor already resolved ("a|||b") still
		// classifies as concat; emit it and let the parser reject it.
		lx.toks = append(lx.toks, Token{Kind: k, Text: "||", Pos: i - 1})

	case KindWhitespace:
		// Closed above; nothing to emit.

	default:
		return &LexError{Pos: i, Char: rune(c), Source: lx.src}
	}

	return nil
}

// close finalizes the open run, if any, as a token ending at the given
// byte offset. Closing a run always clears the digit-alphabet restriction.
func (lx *lexer) close(end int) error {
	if lx.cur == KindUndef {
		return nil
	}

	// There is no valid empty binary literal form ("0x" alone is an
	// empty hex literal, but "0b" alone is an error).
	if lx.cur == KindBin && lx.start == end {
		return &LexError{Pos: lx.start - 1, Char: 'b', Source: lx.src}
	}

	lx.toks = append(lx.toks, Token{
		Kind: lx.cur,
		Text: lx.src[lx.start:end],
		Pos:  lx.start,
	})
	lx.cur = KindUndef
	lx.restriction = KindUndef

	return nil
}

// classify determines the tentative kind of a single character given the
// previous character, the active digit-alphabet restriction, and the kind
// of the open run.
func classify(c, prev byte, restriction, cur Kind) Kind {
	switch c {
	case '|':
		if prev == '|' {
			return KindConcat
		}

		return KindConsumable
	case '+':
		return KindPlus
	case '-':
		return KindMinus
	case '*':
		return KindMul
	case '/':
		return KindDiv
	case ',':
		return KindComma
	case '=':
		return KindEqual
	case ')':
		return KindRParen
	case ' ', '\t', '\n', '\r':
		return KindWhitespace
	}

	if restriction != KindUndef {
		switch restriction {
		case KindHex:
			if isHexDigit(c) {
				return KindNumber
			}

		case KindBin:
			if c == '0' || c == '1' {
				return KindNumber
			}
		}

		return KindUndef
	}

	switch {
	case c == 'x' && prev == '0' && cur == KindNumber:
		return KindHex

	case c == 'b' && prev == '0' && cur == KindNumber:
		return KindBin

	case c >= '0' && c <= '9':
		if cur == KindSymbol {
			return KindSymbol
		}

		return KindNumber

	case cur == KindNumber && isHexLetter(c):
		// Bare hexadecimal continuation ("1f" reads as one number).
		return KindNumber

	case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_':
		return KindSymbol

	case c == '"':
		return KindString

	case c == '(':
		return KindLParen
	}

	return KindUndef
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || isHexLetter(c)
}

func isHexLetter(c byte) bool {
	return (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
