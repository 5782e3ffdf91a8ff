package wire

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPending_IsErrPending(t *testing.T) {
	err := Pending(3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPending))
	assert.False(t, errors.Is(err, ErrMalformed))

	e, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, 3, e.Needed)
}

func TestInvalidTag_CarriesByte(t *testing.T) {
	err := InvalidTag(0xFE)
	assert.True(t, errors.Is(err, ErrInvalidTag))

	e, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, byte(0xFE), e.Byte)
	assert.Contains(t, err.Error(), "0xfe")
}

func TestTypeMismatch_CarriesTags(t *testing.T) {
	err := TypeMismatch(TagString, TagU32)
	assert.True(t, errors.Is(err, ErrTypeMismatch))

	e, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, TagString, e.Want)
	assert.Equal(t, TagU32, e.Got)
}

func TestMalformed_FormatsMessage(t *testing.T) {
	err := Malformed("array stride*count overflow: %d*%d", 5000, 5000)
	assert.True(t, errors.Is(err, ErrMalformed))
	assert.Contains(t, err.Error(), "5000")
}

func TestInvalidUTF8(t *testing.T) {
	err := InvalidUTF8()
	assert.True(t, errors.Is(err, ErrInvalidUTF8))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "pending", KindPending.String())
	assert.Equal(t, "malformed", KindMalformed.String())
}

func TestErrorKindsAreDisjoint(t *testing.T) {
	errs := []error{
		Pending(1),
		InvalidTag(0x00),
		InvalidUTF8(),
		TypeMismatch(TagBool, TagU8),
		Malformed("x"),
	}
	sentinels := []error{ErrPending, ErrInvalidTag, ErrInvalidUTF8, ErrTypeMismatch, ErrMalformed}

	for i, err := range errs {
		for j, sentinel := range sentinels {
			if i == j {
				assert.True(t, errors.Is(err, sentinel), "error %d should match sentinel %d", i, j)
			} else {
				assert.False(t, errors.Is(err, sentinel), "error %d should not match sentinel %d", i, j)
			}
		}
	}
}
