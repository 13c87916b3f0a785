package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumParser(t *testing.T) {

	s := newTestStream(t, `
		enum EnumA {
			TYPE = 0;
			OTHER = 7;
			DUPLICATE = 7;
		};

		enum EnumB { TypeA = 2; TypeB = 1; }
	`)

	a, err := parseEnumDefinition(s)
	require.Nil(t, err)
	b, err := parseEnumDefinition(s)
	require.Nil(t, err)
	assert.Equal(t, EndTokenType, s.Peek().Type)

	assert.Equal(t, "EnumA", a.Name)
	require.Equal(t, 3, len(a.Values))
	assert.Equal(t, "TYPE", a.Values[0].Name)
	assert.Equal(t, "0", a.Values[0].Tag)
	assert.Equal(t, "OTHER", a.Values[1].Name)
	assert.Equal(t, "7", a.Values[1].Tag)
	assert.Equal(t, "DUPLICATE", a.Values[2].Name)
	assert.Equal(t, "7", a.Values[2].Tag)

	assert.Equal(t, "EnumB", b.Name)
	require.Equal(t, 2, len(b.Values))
	assert.Equal(t, "TypeA", b.Values[0].Name)
	assert.Equal(t, "2", b.Values[0].Tag)
	assert.Equal(t, "TypeB", b.Values[1].Name)
	assert.Equal(t, "1", b.Values[1].Tag)
}

func TestEnumParserErrors(t *testing.T) {

	_, err := parseEnumDefinition(newTestStream(t, `enum E { A = 0; = 1; }`))
	require.NotNil(t, err)
	assert.Equal(t, "enum value name or `}`", err.Expected)
	assert.Equal(t, "=", err.Token.Content)

	_, err = parseEnumDefinition(newTestStream(t, `enum E { A = -1; }`))
	require.NotNil(t, err)
	assert.Equal(t, "tag number", err.Expected)

	_, err = parseEnumDefinition(newTestStream(t, `enum E { A = 0;`))
	require.NotNil(t, err)
	assert.Equal(t, EndTokenType, err.Token.Type)
}
