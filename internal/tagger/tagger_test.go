package tagger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProseTagger(t *testing.T) {
	tags, err := NewProseTagger().Tag("I am on the phone")
	require.NoError(t, err)
	require.Len(t, tags, 5)

	words := make([]string, len(tags))
	for i, tok := range tags {
		words[i] = tok.Text
		assert.NotEmpty(t, tok.Tag, tok.Text)
	}
	assert.Equal(t, []string{"I", "am", "on", "the", "phone"}, words)
	assert.Equal(t, "PRP", tags[0].Tag)
	assert.Equal(t, "DT", tags[3].Tag)
}

func TestProseTaggerEmpty(t *testing.T) {
	tags, err := NewProseTagger().Tag("   ")
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestNew(t *testing.T) {
	tg, err := New("prose")
	require.NoError(t, err)
	assert.NotNil(t, tg)

	_, err = New("nltk")
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "noun, singular or mass", Describe("NN"))
	assert.Equal(t, "unknown", Describe("XYZ"))
}
