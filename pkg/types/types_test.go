package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ngraph-go/ngraph/pkg/types"
)

func TestShape_Equal(t *testing.T) {
	assert.True(t, types.Shape{2, 3}.Equal(types.Shape{2, 3}))
	assert.False(t, types.Shape{2, 3}.Equal(types.Shape{3, 2}))
	assert.False(t, types.Shape{2, 3}.Equal(types.Shape{2}))
	assert.True(t, types.Shape{}.Equal(types.Shape{}))
}

func TestNormalizeName_NFCCollision(t *testing.T) {
	// "é" (precomposed e-acute, NFC) vs "é" (e plus combining
	// acute accent, NFD): two distinct byte sequences for the same glyph.
	nfc := "café"
	nfd := "café"

	assert.NotEqual(t, nfc, nfd, "the two raw encodings must actually differ byte-for-byte")
	assert.Equal(t, types.NormalizeName(nfc), types.NormalizeName(nfd))
}

func TestNormalizeName_AsciiUnaffected(t *testing.T) {
	assert.Equal(t, "plain_name", types.NormalizeName("plain_name"))
}
