package input

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

const quotedSegment = `(?:"([^"\\]*(?:\\.[^"\\]*)*)"|'([^'\\]*(?:\\.[^'\\]*)*)')`

// Tokenizer rules, tried in order at the cursor. \G pins each match to it.
var (
	whitespaceRule = regexp2.MustCompile(`\G\s+`, regexp2.None)
	assignRule     = regexp2.MustCompile(`\G([^="'\s]+?)(=?)(`+quotedSegment+`+)`, regexp2.None)
	quotedRule     = regexp2.MustCompile(`\G`+quotedSegment, regexp2.None)
	bareRule       = regexp2.MustCompile(`\G([^\s]+?)(?:\s|(?<!\\)"|(?<!\\)'|$)`, regexp2.None)
)

// quote joints left behind when adjacent quoted segments are glued together.
var quoteJoints = []string{`"'`, `'"`, `''`, `""`}

// ParseError reports input the tokenizer could not split.
type ParseError struct {
	Offset int
	Near   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("input: unable to parse input near \"... %s ...\"", e.Near)
}

// Line reads a single free-form command line and splits it the way a shell would.
type Line struct {
	state
	line string
}

// NewLine returns a parser over one command line.
func NewLine(line string) *Line {
	return &Line{line: line}
}

// Parse splits and classifies the line. A failure leaves the parser unparsed.
func (l *Line) Parse() error {
	if l.parsed {
		return nil
	}
	tokens, err := Split(l.line)
	if err != nil {
		return err
	}
	l.use(tokens)
	return nil
}

// Split tokenizes a command line. Quoted segments lose their quotes and
// backslash escapes are resolved.
func Split(line string) ([]string, error) {
	runes := []rune(line)
	tokens := []string{}
	cursor := 0

	for cursor < len(runes) {
		if m := matchAt(whitespaceRule, runes, cursor); m != nil {
			cursor += m.Length
			continue
		}

		if m := matchAt(assignRule, runes, cursor); m != nil {
			segments := m.GroupByNumber(3).String()
			glued := segments[1 : len(segments)-1]
			for _, joint := range quoteJoints {
				glued = strings.ReplaceAll(glued, joint, "")
			}
			tokens = append(tokens, m.GroupByNumber(1).String()+m.GroupByNumber(2).String()+unescape(glued))
			cursor += m.Length
			continue
		}

		if m := matchAt(quotedRule, runes, cursor); m != nil {
			whole := m.String()
			tokens = append(tokens, unescape(whole[1:len(whole)-1]))
			cursor += m.Length
			continue
		}

		if m := matchAt(bareRule, runes, cursor); m != nil {
			tokens = append(tokens, unescape(m.GroupByNumber(1).String()))
			cursor += m.Length
			continue
		}

		end := min(cursor+10, len(runes))
		return nil, &ParseError{Offset: cursor, Near: string(runes[cursor:end])}
	}

	return tokens, nil
}

func matchAt(re *regexp2.Regexp, runes []rune, cursor int) *regexp2.Match {
	m, err := re.FindRunesMatchStartingAt(runes, cursor)
	if err != nil || m == nil || m.Index != cursor {
		return nil
	}
	return m
}
