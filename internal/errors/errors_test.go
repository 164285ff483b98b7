package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

func TestWrapPreservesIdentity(t *testing.T) {
	err := Wrap(errSentinel, "load booking")

	assert.True(t, Is(err, errSentinel))
	assert.Equal(t, "load booking: sentinel", err.Error())
}

func TestWithMessagef(t *testing.T) {
	err := WithMessagef(errSentinel, "chunk %d", 2)

	assert.True(t, Is(err, errSentinel))
	assert.Equal(t, "chunk 2: sentinel", err.Error())
}

func TestJoin(t *testing.T) {
	other := New("other")
	err := Join(errSentinel, other)

	assert.True(t, Is(err, errSentinel))
	assert.True(t, Is(err, other))
}
