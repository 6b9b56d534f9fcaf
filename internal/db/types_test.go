package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArrayScan(t *testing.T) {
	var a StringArray
	require.NoError(t, a.Scan([]byte(`["Go","SQL"]`)))
	assert.Equal(t, StringArray{"Go", "SQL"}, a)
}

func TestStringArrayScanNil(t *testing.T) {
	var a StringArray
	require.NoError(t, a.Scan(nil))
	assert.Empty(t, a)
	assert.NotNil(t, []string(a))
}

func TestStringArrayScanWrongType(t *testing.T) {
	var a StringArray
	assert.Error(t, a.Scan(42))
}

func TestStringArrayValueNil(t *testing.T) {
	var a StringArray
	v, err := a.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), v)
}
