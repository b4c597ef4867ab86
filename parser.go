package plorth

// tokenCursor walks a token vector; parser functions advance it in place
// so that nested constructs (quotes, arrays, objects, declarations) share
// one cursor with the caller.
type tokenCursor struct {
	toks []Token
	i    int
}

func (c *tokenCursor) peek() (Token, bool) {
	if c.i >= len(c.toks) {
		return Token{}, false
	}
	return c.toks[c.i], true
}

func (c *tokenCursor) next() (Token, bool) {
	tok, ok := c.peek()
	if ok {
		c.i++
	}
	return tok, ok
}

func syntaxAt(pos Position, message string) *Error {
	return NewPositionedError(ErrSyntax, message, pos)
}

// ParseValue consumes exactly one value-producing construct from toks
// starting at *i and returns it, advancing *i past what it consumed
// (spec section 4.4). ctx may be nil only when the source being parsed
// is guaranteed not to use `drop` in value position (e.g. module
// prescans); passing the live context is otherwise required so that
// `drop` sees the real operand stack.
func ParseValue(rt *Runtime, ctx *Context, toks []Token, i *int) (Value, *Error) {
	c := &tokenCursor{toks: toks, i: *i}
	v, err := parseValue(rt, ctx, c)
	*i = c.i
	return v, err
}

// ParseDeclaration consumes `: name value ;` and installs the parsed
// value into ctx's local dictionary under name.
func ParseDeclaration(rt *Runtime, ctx *Context, toks []Token, i *int) *Error {
	c := &tokenCursor{toks: toks, i: *i}
	err := parseDeclaration(rt, ctx, c)
	*i = c.i
	return err
}

func parseValue(rt *Runtime, ctx *Context, c *tokenCursor) (Value, *Error) {
	tok, ok := c.peek()
	if !ok {
		return nil, NewError(ErrSyntax, "unexpected end of input, expected a value")
	}

	switch tok.Kind {
	case TokString:
		c.next()
		return NewString(tok.Text), nil

	case TokLParen:
		c.next()
		return parseQuoteBody(c, tok.Pos)

	case TokLBrack:
		c.next()
		return parseArrayBody(rt, ctx, c, tok.Pos)

	case TokLBrace:
		c.next()
		return parseObjectBody(rt, ctx, c, tok.Pos)

	case TokWord:
		c.next()
		return parseWordValue(rt, ctx, tok)

	default:
		return nil, syntaxAt(tok.Pos, "unexpected "+tok.Kind.String())
	}
}

func parseWordValue(rt *Runtime, ctx *Context, tok Token) (Value, *Error) {
	switch tok.Text {
	case "null":
		return NullValue, nil
	case "true":
		return rt.True(), nil
	case "false":
		return rt.False(), nil
	case "drop":
		if ctx == nil {
			return nil, NewPositionedError(ErrRange, "stack is empty", tok.Pos)
		}
		v, ok := ctx.popRaw()
		if !ok {
			return nil, NewPositionedError(ErrRange, "stack is empty", tok.Pos)
		}
		return v, nil
	}
	if num, ok := ParseNumber(tok.Text); ok {
		return num, nil
	}
	return rt.Symbolicate(tok.Text), nil
}

// parseQuoteBody collects tokens until the matching rparen (tracking
// nesting depth so inner quotes' own parens don't confuse the count)
// and wraps them in a Compiled quote, without parsing their contents:
// that happens lazily, the next time the quote is called.
func parseQuoteBody(c *tokenCursor, start Position) (*CompiledQuote, *Error) {
	depth := 1
	var body []Token
	for {
		tok, ok := c.next()
		if !ok {
			return nil, syntaxAt(start, "unterminated quote, missing `)'")
		}
		switch tok.Kind {
		case TokLParen:
			depth++
		case TokRParen:
			depth--
			if depth == 0 {
				return NewCompiledQuote(body), nil
			}
		}
		body = append(body, tok)
	}
}

func parseArrayBody(rt *Runtime, ctx *Context, c *tokenCursor, start Position) (*Array, *Error) {
	var elems []Value
	expectComma := false
	for {
		tok, ok := c.peek()
		if !ok {
			return nil, syntaxAt(start, "unterminated array, missing `]'")
		}
		if tok.Kind == TokRBrack {
			c.next()
			return NewArray(elems), nil
		}
		if expectComma {
			if tok.Kind != TokComma {
				return nil, syntaxAt(tok.Pos, "expected `,' or `]', got "+tok.String())
			}
			c.next()
			if next, ok := c.peek(); ok && next.Kind == TokRBrack {
				c.next()
				return NewArray(elems), nil
			}
			expectComma = false
			continue
		}
		v, err := parseValue(rt, ctx, c)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
		expectComma = true
	}
}

func parseObjectBody(rt *Runtime, ctx *Context, c *tokenCursor, start Position) (*Object, *Error) {
	var keys []string
	vals := make(map[string]Value)
	expectComma := false
	for {
		tok, ok := c.peek()
		if !ok {
			return nil, syntaxAt(start, "unterminated object, missing `}'")
		}
		if tok.Kind == TokRBrace {
			c.next()
			return NewObject(keys, vals), nil
		}
		if expectComma {
			if tok.Kind != TokComma {
				return nil, syntaxAt(tok.Pos, "expected `,' or `}', got "+tok.String())
			}
			c.next()
			if next, ok := c.peek(); ok && next.Kind == TokRBrace {
				c.next()
				return NewObject(keys, vals), nil
			}
			expectComma = false
			continue
		}
		if tok.Kind != TokString {
			return nil, syntaxAt(tok.Pos, "expected string key, got "+tok.String())
		}
		c.next()
		key := tok.Text

		colon, ok := c.peek()
		if !ok || colon.Kind != TokColon {
			return nil, syntaxAt(tok.Pos, "expected `:' after object key")
		}
		c.next()

		v, err := parseValue(rt, ctx, c)
		if err != nil {
			return nil, err
		}
		if _, exists := vals[key]; !exists {
			keys = append(keys, key)
		}
		vals[key] = v
		expectComma = true
	}
}

func parseDeclaration(rt *Runtime, ctx *Context, c *tokenCursor) *Error {
	nameTok, ok := c.next()
	if !ok {
		return NewError(ErrSyntax, "expected word name after `:'")
	}
	if nameTok.Kind != TokWord {
		return syntaxAt(nameTok.Pos, "expected word name after `:', got "+nameTok.String())
	}

	v, err := parseValue(rt, ctx, c)
	if err != nil {
		return err
	}

	semi, ok := c.next()
	if !ok || semi.Kind != TokSemicolon {
		return syntaxAt(nameTok.Pos, "expected `;' to close definition of `"+nameTok.Text+"'")
	}

	ctx.Declare(nameTok.Text, v)
	return nil
}
