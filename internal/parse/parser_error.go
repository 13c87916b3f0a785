package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

type ParsingError struct {
	Message  string
	Expected string
	Token    *Token
	Filename string
	Content  string
}

func unexpectedToken(expected string, token *Token) *ParsingError {
	found := "end of file"
	if token.Type != EndTokenType {
		found = fmt.Sprintf("`%s`", token.Content)
	}
	return &ParsingError{
		Message:  fmt.Sprintf("expected %s, found %s", expected, found),
		Expected: expected,
		Token:    token,
	}
}

// Offset returns the byte offset of the offending token, or -1.
func (p *ParsingError) Offset() int {
	if p.Token == nil {
		return -1
	}
	return p.Token.Offset
}

// Position returns the zero-based line and character of the offending token.
func (p *ParsingError) Position() (int, int) {
	offset := p.Offset()
	if offset < 0 || offset > len(p.Content) {
		return -1, -1
	}
	before := p.Content[:offset]
	line := strings.Count(before, "\n")
	character := offset - (strings.LastIndexByte(before, '\n') + 1)
	return line, character
}

func getContentForError(content string, lineNumber int, characterPos int) string {

	lines := strings.Split(strings.ReplaceAll(content, "\t", " "), "\n")

	linesBeforeAndAfter := 2

	lineStart := lineNumber - linesBeforeAndAfter
	if lineStart < 0 {
		lineStart = 0
	}
	lineEnd := lineNumber + linesBeforeAndAfter
	if lineEnd > len(lines)-1 {
		lineEnd = len(lines) - 1
	}

	numDigits := len(strconv.Itoa(lineEnd + 1))
	lineFmt := fmt.Sprintf("%%%dd", numDigits)

	red := color.New(color.FgRed).SprintFunc()

	res := ""
	for i := lineStart; i <= lineEnd; i++ {
		prefix := fmt.Sprintf(lineFmt, i+1)
		if i == lineNumber {
			underline := len(lines[i]) - characterPos - 1
			if underline < 0 {
				underline = 0
			}
			res += red(fmt.Sprintf("%s | %s\n", prefix, lines[i]))
			res += red(strings.Repeat(" ", len(prefix)) + " | " + strings.Repeat(" ", characterPos) + "^" + strings.Repeat("~", underline) + "\n")
		} else {
			res += fmt.Sprintf("%s | %s\n", prefix, lines[i])
		}
	}
	return res
}

func (p *ParsingError) Error() string {

	msg := p.Message

	if p.Filename != "" {
		msg += fmt.Sprintf(", file: %s", p.Filename)
	}
	if p.Token != nil {
		msg += fmt.Sprintf(", offset: %d", p.Token.Offset)
		if p.Content != "" {
			line, character := p.Position()
			if line >= 0 {
				msg += fmt.Sprintf(", line: %d, character: %d", line+1, character+1)
				msg += fmt.Sprintf("\n%s", getContentForError(p.Content, line, character))
			}
		}
	}

	return msg
}
