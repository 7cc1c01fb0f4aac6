package navs13

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// canonicalForm is the grammar of the DDD.DDDD.DDDD.DD layout. Group widths
// are checked after parsing so that the error can name the offending group.
type canonicalForm struct {
	Country string `parser:"@Digits '.'"`
	First   string `parser:"@Digits '.'"`
	Second  string `parser:"@Digits '.'"`
	Last    string `parser:"@Digits"`
}

var canonicalGroups = []struct {
	name  string
	width int
}{
	{"country code", 3},
	{"first group", 4},
	{"second group", 4},
	{"last group", 2},
}

var canonicalParser = participle.MustBuild[canonicalForm](
	participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Digits", Pattern: `[0-9]+`},
		{Name: "Dot", Pattern: `\.`},
	})),
)

// ParseCanonical validates input only if it is written in the canonical
// DDD.DDDD.DDDD.DD layout. Whitespace is allowed around the number, not
// inside it.
//
// A layout mismatch is reported as a *FormatError. A well formed input is then
// validated by Parse and may fail with any of its errors.
func ParseCanonical(input string) (Number, error) {
	form, err := canonicalParser.ParseString("", strings.TrimSpace(input))
	if err != nil {
		return Number{}, &FormatError{Input: input, Reason: syntaxReason(err)}
	}

	groups := []string{form.Country, form.First, form.Second, form.Last}
	for i, g := range canonicalGroups {
		if len(groups[i]) != g.width {
			return Number{}, &FormatError{
				Input:  input,
				Reason: fmt.Sprintf("%s should have %d digits, found %d", g.name, g.width, len(groups[i])),
			}
		}
	}

	return Parse(form.Country + form.First + form.Second + form.Last)
}

func syntaxReason(err error) string {
	if perr, ok := err.(participle.Error); ok {
		return perr.Message()
	}
	return err.Error()
}
