package amp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lk2023060901/amp-garden-go/pkg/util/merr"
)

func TestLengthToBytes(t *testing.T) {
	b, err := lengthToBytes(0)
	assert.NoError(t, err)
	assert.Equal(t, [2]byte{0, 0}, b)

	b, err = lengthToBytes(4)
	assert.NoError(t, err)
	assert.Equal(t, [2]byte{0, 4}, b)

	b, err = lengthToBytes(maxFieldLength)
	assert.NoError(t, err)
	assert.Equal(t, [2]byte{0xFF, 0xFF}, b)

	_, err = lengthToBytes(maxFieldLength + 1)
	assert.ErrorIs(t, err, merr.ErrWireFieldTooLarge)

	_, err = lengthToBytes(-1)
	assert.ErrorIs(t, err, merr.ErrWireFieldTooLarge)
}

func TestBytesToLength(t *testing.T) {
	assert.Equal(t, uint16(0), bytesToLength([]byte{0, 0}))
	assert.Equal(t, uint16(4), bytesToLength([]byte{0, 4}))
	assert.Equal(t, uint16(0xFFFF), bytesToLength([]byte{0xFF, 0xFF}))
	assert.Equal(t, uint16(256), bytesToLength([]byte{1, 0}))
}

func TestOversizedFieldRejected(t *testing.T) {
	_, err := Marshal(strings.Repeat("x", maxFieldLength+1))
	assert.ErrorIs(t, err, merr.ErrWireFieldTooLarge)
}
