package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Assignment and semicolon",
			input:    "const x=1;console.log(x);",
			expected: "const x = 1; console.log(x);",
		},
		{
			name:     "Commas",
			input:    "f(a,b,c)",
			expected: "f(a, b, c)",
		},
		{
			name:     "Keywords before paren",
			input:    "if(a==b){return(x+y)}",
			expected: "if (a == b){return (x + y)}",
		},
		{
			name:     "For loop",
			input:    "for(let i=0;i<n;i++){}",
			expected: "for (let i = 0; i < n; i ++ ){}",
		},
		{
			name:     "Chained assignment is not overlapping",
			input:    "a=b=c",
			expected: "a = b=c",
		},
		{
			name:     "Semicolon before newline untouched",
			input:    "a;\nb;",
			expected: "a;\nb;",
		},
		{
			name:     "Operator next to whitespace untouched",
			input:    "x =1",
			expected: "x =1",
		},
		{
			name:     "Keyword suffix inside identifier untouched",
			input:    "myif(x)",
			expected: "myif(x)",
		},
		{
			name:     "String contents are rewritten",
			input:    `s="a=b,c"`,
			expected: `s = "a = b, c"`,
		},
		{
			name:     "Non-breaking space counts as whitespace",
			input:    "a\u00a0=\u00a0b",
			expected: "a\u00a0=\u00a0b",
		},
		{
			name:     "Empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.input))
		})
	}
}

func TestFormatIdempotentOnNormalizedInput(t *testing.T) {
	inputs := []string{
		"const x = 1; console.log(x);",
		"if (a == b) { return (x + y); }",
		"function add(a, b) {\n  return a + b;\n}\n",
	}
	for _, in := range inputs {
		once := Format(in)
		assert.Equal(t, in, once)
		assert.Equal(t, once, Format(once))
	}
}

func TestFormatOnlyInsertsSpaces(t *testing.T) {
	in := "let total=items.reduce((a,b)=>a+b,0);if(total>10){console.warn('big')}"
	out := Format(in)

	stripped := make([]rune, 0, len(out))
	for _, r := range out {
		if r != ' ' {
			stripped = append(stripped, r)
		}
	}
	original := make([]rune, 0, len(in))
	for _, r := range in {
		if r != ' ' {
			original = append(original, r)
		}
	}
	assert.Equal(t, string(original), string(stripped))
	assert.NotEqual(t, in, out)
}

func TestFormatReturnsSourceOnFailure(t *testing.T) {
	saved := Rules
	t.Cleanup(func() { Rules = saved })

	Rules = []Rule{saved[0], {Name: "broken"}}
	assert.Equal(t, "x=1", Format("x=1"))
}
