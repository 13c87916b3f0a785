package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitWords(t *testing.T) {
	assert.Equal(t, []string{"c2", "C", "Read", "Report"}, SplitWords("c2CReadReport"))
	assert.Equal(t, []string{"ABC", "Word"}, SplitWords("ABCWord"))
	assert.Equal(t, []string{"ABC4", "Defg"}, SplitWords("ABC4Defg"))
	assert.Equal(t, []string{"ab", "C4d", "Efg"}, SplitWords("abC4dEfg"))
	assert.Equal(t, []string{"abc", "DA3E", "Fg"}, SplitWords("abcDA3EFg"))
	assert.Equal(t, []string{"snake", "case", "input"}, SplitWords("snake_case_input"))
	assert.Equal(t, []string{"a", "b"}, SplitWords("a__b"))
	assert.Equal(t, []string{"foo"}, SplitWords("_foo"))
	assert.Empty(t, SplitWords("__"))
	assert.Empty(t, SplitWords(""))
}

func TestEnsurePascalCase(t *testing.T) {
	assert.Equal(t, "UpperCaseInput", EnsurePascalCase("UPPER_CASE_INPUT"))
	assert.Equal(t, "SnakeCaseInput", EnsurePascalCase("snake_case_input"))
	assert.Equal(t, "PascalCaseInput", EnsurePascalCase("PascalCaseInput"))
	assert.Equal(t, "CamelCaseInput", EnsurePascalCase("camelCaseInput"))
	assert.Equal(t, "C2CReadReport", EnsurePascalCase("c2CReadReport"))
	assert.Equal(t, "Abc4Defg", EnsurePascalCase("ABC4Defg"))
	assert.Equal(t, "Abc4defg", EnsurePascalCase("ABC4DEFG"))
	assert.Equal(t, "AbC4dEfg", EnsurePascalCase("abC4d_efg"))
	assert.Equal(t, "Ab3Efg", EnsurePascalCase("ab3Efg"))
	assert.Equal(t, "AbcDa3Eg", EnsurePascalCase("abcDA3Eg"))
	assert.Equal(t, "AbcDeFg", EnsurePascalCase("abcDEFg"))
}

func TestEnsureSnakeCase(t *testing.T) {
	assert.Equal(t, "upper_case_input", EnsureSnakeCase("UPPER_CASE_INPUT"))
	assert.Equal(t, "snake_case_input", EnsureSnakeCase("snake_case_input"))
	assert.Equal(t, "pascal_case_input", EnsureSnakeCase("PascalCaseInput"))
	assert.Equal(t, "camel_case_input", EnsureSnakeCase("camelCaseInput"))
	assert.Equal(t, "c2_c_read_report", EnsureSnakeCase("c2CReadReport"))
	assert.Equal(t, "abc4_defg", EnsureSnakeCase("ABC4Defg"))
	assert.Equal(t, "ab_c4d_efg", EnsureSnakeCase("abC4dEfg"))
	assert.Equal(t, "ab3efg", EnsureSnakeCase("ab3efg"))
	assert.Equal(t, "abc_da3e_fg", EnsureSnakeCase("abcDA3EFg"))
}

func TestRustKeywordEscaping(t *testing.T) {
	assert.Equal(t, "r#type", EnsureSnakeCase("type"))
	assert.Equal(t, "r#Type", EnsurePascalCase("type"))
	assert.Equal(t, "r#self", EnsureSnakeCase("Self"))
	assert.Equal(t, "r#Mod", EnsurePascalCase("mod"))

	// only single word identifiers are escaped
	assert.Equal(t, "type_id", EnsureSnakeCase("type_id"))
	assert.Equal(t, "TypeId", EnsurePascalCase("typeId"))
	assert.Equal(t, "match_state", EnsureSnakeCase("matchState"))

	// keyword matching is case sensitive
	assert.Equal(t, "Type", EnsurePascalCase("Type"))
	assert.Equal(t, "r#Self", EnsurePascalCase("Self"))
}
