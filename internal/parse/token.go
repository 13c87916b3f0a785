package parse

type TokenType int

const (
	EndTokenType TokenType = iota
	SymbolTokenType
	NumberTokenType
	WordTokenType
)

func (t TokenType) String() string {
	switch t {
	case EndTokenType:
		return "end"
	case SymbolTokenType:
		return "symbol"
	case NumberTokenType:
		return "number"
	case WordTokenType:
		return "word"
	}
	return "unknown"
}

// Token is a view into the source content. Content is a substring of the
// source, Offset is the byte offset of its first character.
type Token struct {
	Content string
	Type    TokenType
	Offset  int
}

func (t *Token) Is(typ TokenType, content string) bool {
	return t.Type == typ && t.Content == content
}

// TokenStream is a read cursor over a token sequence terminated by an end
// token. Reading never moves past the end token.
type TokenStream struct {
	tokens []*Token
	idx    int
}

func NewTokenStream(tokens []*Token) *TokenStream {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != EndTokenType {
		offset := 0
		if len(tokens) > 0 {
			last := tokens[len(tokens)-1]
			offset = last.Offset + len(last.Content)
		}
		tokens = append(tokens, &Token{
			Type:   EndTokenType,
			Offset: offset,
		})
	}
	return &TokenStream{
		tokens: tokens,
	}
}

// Peek returns the token at the cursor without advancing.
func (s *TokenStream) Peek() *Token {
	return s.tokens[s.idx]
}

// Next returns the token at the cursor and advances past it.
func (s *TokenStream) Next() *Token {
	token := s.tokens[s.idx]
	if s.idx < len(s.tokens)-1 {
		s.idx++
	}
	return token
}
