package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeBasic(t *testing.T) {
	assert := assert.New(t)

	toks, err := Collect(`LDA #$42,X ; load`)
	assert.NoError(err)

	var kinds []Kind
	var texts []string
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
		texts = append(texts, tok.Text)
	}

	assert.Equal([]Kind{Identifier, Punct, Number, Punct, Identifier, EOL}, kinds)
	assert.Equal([]string{"LDA", "#", "$42", ",", "X", ""}, texts)
}

func TestTokenizeLabel(t *testing.T) {
	assert := assert.New(t)

	toks, err := Collect(`loop: NOP`)
	assert.NoError(err)

	assert.True(toks[0].Label)
	assert.Equal("loop", toks[0].Text)
	assert.Equal(Identifier, toks[1].Kind)
	assert.Equal("NOP", toks[1].Text)
}

func TestTokenizeComment(t *testing.T) {
	assert := assert.New(t)

	toks, err := Collect(`; entirely a comment`)
	assert.NoError(err)
	assert.Len(toks, 1)
	assert.Equal(EOL, toks[0].Kind)
}

func TestTokenizeString(t *testing.T) {
	assert := assert.New(t)

	toks, err := Collect(`text "hi\n"`)
	assert.NoError(err)
	assert.Equal(String, toks[1].Kind)
	assert.Equal("hi\n", toks[1].Text)
}

func TestTokenizeUnterminatedString(t *testing.T) {
	assert := assert.New(t)

	_, err := Collect(`text "hi`)
	assert.Error(err)
}

func TestTokenizeRestartable(t *testing.T) {
	assert := assert.New(t)

	seq := Tokenize("NOP")
	var first, second []Kind
	for tok := range seq {
		first = append(first, tok.Kind)
	}
	for tok := range seq {
		second = append(second, tok.Kind)
	}
	assert.Equal(first, second)
}

func TestDecodeNumberSizing(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		text string
		want []byte
	}{
		{"$FF", []byte{0xFF}},
		{"$00FF", []byte{0xFF, 0x00}},
		{"$1234", []byte{0x34, 0x12}},
		{"0x2A", []byte{0x2A}},
		{"%11111111", []byte{0xFF}},
		{"%0000000100000000", []byte{0x00, 0x01}},
		{"255", []byte{0xFF}},
		{"256", []byte{0x00, 0x01}},
	}
	for _, c := range cases {
		got, err := DecodeNumber(c.text)
		assert.NoError(err, c.text)
		assert.Equal(c.want, got, c.text)
	}
}

func TestDecodeNumberErrors(t *testing.T) {
	assert := assert.New(t)

	for _, text := range []string{"$", "%", "$GG", "0x", "$12345"} {
		_, err := DecodeNumber(text)
		assert.Error(err, text)
	}
}
