package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractRTF(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{
			"plain text",
			`{\rtf1\ansi Hello World}`,
			"Hello World",
		},
		{
			"paragraph break",
			`{\rtf1 first\par second}`,
			"first\nsecond",
		},
		{
			"tab and cell",
			`{\rtf1 a\tab b\cell c}`,
			"a\tb\tc",
		},
		{
			"font table dropped",
			`{\rtf1{\fonttbl{\f0 Calibri;}}visible}`,
			"visible",
		},
		{
			"starred destination dropped",
			`{\rtf1{\*\generator Acme Writer 1.0;}kept}`,
			"kept",
		},
		{
			"escaped braces and backslash",
			`{\rtf1 a\{b\}c\\d}`,
			`a{b}c\d`,
		},
		{
			"hex escape",
			`{\rtf1 caf\'e9}`,
			"caf\xe9",
		},
		{
			"unicode escape with fallback",
			`{\rtf1 \u8364?euro}`,
			"€euro",
		},
		{
			"formatting control words stripped",
			`{\rtf1\b bold\b0 normal\fs24 sized}`,
			"boldnormalsized",
		},
		{
			"raw newlines ignored",
			"{\\rtf1 one\ntwo}",
			"onetwo",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := extractRTF([]byte(tc.src))
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExtractRTFMissingHeader(t *testing.T) {
	_, err := extractRTF([]byte("just plain text"))
	assert.Error(t, err)
}

func TestExtractRTFInvalidUTF8(t *testing.T) {
	_, err := extractRTF([]byte{'{', 0xff, 0xfe})
	assert.Error(t, err)
}
