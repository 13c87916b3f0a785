package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneofParser(t *testing.T) {

	oneof, err := parseOneofDefinition(newTestStream(t, `
		oneof test_oneof {
			string name = 4;
			SubMessage sub_message = 9;
		};
	`))
	require.Nil(t, err)

	assert.Equal(t, "test_oneof", oneof.Name)
	require.Equal(t, 2, len(oneof.Fields))
	assert.Equal(t, "string", oneof.Fields[0].Type)
	assert.Equal(t, "name", oneof.Fields[0].Name)
	assert.Equal(t, "4", oneof.Fields[0].Tag)
	assert.Equal(t, "SubMessage", oneof.Fields[1].Type)
	assert.Equal(t, "sub_message", oneof.Fields[1].Name)
	assert.Equal(t, "9", oneof.Fields[1].Tag)
	assert.Equal(t, []string{"4", "9"}, oneof.Tags())
}

func TestOneofParserErrors(t *testing.T) {

	_, err := parseOneofDefinition(newTestStream(t, `oneof o { optional string name = 1; }`))
	require.NotNil(t, err)
	assert.Equal(t, "`=`", err.Expected)

	_, err = parseOneofDefinition(newTestStream(t, `oneof o { string name = 1;`))
	require.NotNil(t, err)
	assert.Equal(t, "oneof field type or `}`", err.Expected)
}
