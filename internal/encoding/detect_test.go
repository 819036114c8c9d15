package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pndiaye/xaalis/internal/encoding"
)

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	// Valid UTF-8 with French characters should pass through unchanged.
	input := "sender_id,title,body\ncom.wave.personal,Transfert reçu,Vous avez reçu 5.000F\n"
	r, err := encoding.NewUTF8Reader(bytes.NewReader([]byte(input)))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, input, string(got))
}

func TestNewUTF8Reader_Latin(t *testing.T) {
	// Latin-encoded "Paiement réussi\n": é = 0xE9 in both ISO 8859-1 and
	// ISO 8859-15, so either detection path decodes it the same way.
	latinBytes := []byte{
		'P', 'a', 'i', 'e', 'm', 'e', 'n', 't', ' ',
		'r', 0xE9, 'u', 's', 's', 'i', '\n',
	}

	r, err := encoding.NewUTF8Reader(bytes.NewReader(latinBytes))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Paiement réussi\n", string(got))
}

func TestNewUTF8Reader_UTF8BOM(t *testing.T) {
	bom := []byte{0xEF, 0xBB, 0xBF}
	content := []byte("Transfert reçu\n")
	input := append(bom, content...)

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Transfert reçu\n", string(got))
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	// "reçu" in UTF-16 LE with BOM.
	input := []byte{0xFF, 0xFE, 'r', 0x00, 'e', 0x00, 0xE7, 0x00, 'u', 0x00}

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "reçu", string(got))
}

func TestNewUTF8Reader_Empty(t *testing.T) {
	r, err := encoding.NewUTF8Reader(bytes.NewReader(nil))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Empty(t, got)
}
