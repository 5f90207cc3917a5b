package system

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertTextToHostStripsHighBitAndTranslatesCR(t *testing.T) {
	in := []byte{'H' | 0x80, 'I' | 0x80, 0x0D | 0x80, 'B' | 0x80}
	var out bytes.Buffer
	require.NoError(t, ConvertText(bytes.NewReader(in), &out, true))
	assert.Equal(t, "HI\nB", out.String())
}

func TestConvertTextToProDOSSetsHighBitAndTranslatesLF(t *testing.T) {
	in := []byte("HI\nB")
	var out bytes.Buffer
	require.NoError(t, ConvertText(bytes.NewReader(in), &out, false))
	assert.Equal(t, []byte{'H' | 0x80, 'I' | 0x80, 0x0D | 0x80, 'B' | 0x80}, out.Bytes())
}

func TestConvertTextRoundTrip(t *testing.T) {
	original := "FIRST LINE\nSECOND LINE\n"
	var prodos bytes.Buffer
	require.NoError(t, ConvertText(bytes.NewReader([]byte(original)), &prodos, false))

	var host bytes.Buffer
	require.NoError(t, ConvertText(bytes.NewReader(prodos.Bytes()), &host, true))
	assert.Equal(t, original, host.String())
}
