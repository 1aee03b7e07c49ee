package crypto

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptedField_BytesRoundTrip(t *testing.T) {
	c := newTestCipher(t)
	field, err := c.Encrypt("display name")
	require.NoError(t, err)

	parsed, err := ParseEncryptedField(field.Bytes())
	require.NoError(t, err)
	assert.True(t, parsed.Equal(field))

	got, err := c.Decrypt(parsed)
	require.NoError(t, err)
	assert.Equal(t, "display name", got)
}

func TestParseEncryptedField_Malformed(t *testing.T) {
	_, err := ParseEncryptedField([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrTamperedOrWrongKey)

	bad := make([]byte, headerSize+4)
	bad[0] = 9
	_, err = ParseEncryptedField(bad)
	assert.ErrorIs(t, err, ErrTamperedOrWrongKey)
}

func TestEncryptedField_ScanValue(t *testing.T) {
	c := newTestCipher(t)
	field, err := c.Encrypt("a@example.com")
	require.NoError(t, err)

	v, err := field.Value()
	require.NoError(t, err)

	var scanned EncryptedField
	require.NoError(t, scanned.Scan(v))
	assert.True(t, scanned.Equal(field))

	require.NoError(t, scanned.Scan(nil))
	assert.True(t, scanned.IsZero())

	assert.Error(t, scanned.Scan(42))

	zv, err := EncryptedField{}.Value()
	require.NoError(t, err)
	assert.Nil(t, zv)
}

func TestEncryptedField_NeverPrintsContent(t *testing.T) {
	c := newTestCipher(t)
	field, err := c.Encrypt("secret@example.com")
	require.NoError(t, err)

	assert.Equal(t, "[encrypted]", field.String())
	assert.Equal(t, "[encrypted]", fmt.Sprint(field))

	raw, err := json.Marshal(field)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(raw))
}
