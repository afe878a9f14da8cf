package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_RoundTrip(t *testing.T) {
	t.Parallel()

	// Low cost keeps the test fast, verification semantics are the same.
	h := NewBcrypt(bcrypt.MinCost)

	passwords := []string{"123456", "correct horse battery staple", "s3nh4-f0rte!"}
	for _, plain := range passwords {
		hash, err := h.Hash(plain)
		require.NoError(t, err)

		assert.NotEqual(t, plain, hash)
		assert.True(t, h.Verify(plain, hash))
		assert.False(t, h.Verify("wrong", hash))
	}
}

func TestBcrypt_HashesAreSalted(t *testing.T) {
	t.Parallel()

	h := NewBcrypt(bcrypt.MinCost)

	first, err := h.Hash("123456")
	require.NoError(t, err)
	second, err := h.Hash("123456")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("123456", first))
	assert.True(t, h.Verify("123456", second))
}

func TestBcrypt_Verify_MalformedHash(t *testing.T) {
	t.Parallel()

	h := NewBcrypt(bcrypt.MinCost)

	assert.False(t, h.Verify("123456", ""))
	assert.False(t, h.Verify("123456", "not-a-bcrypt-hash"))
}

func TestNewBcrypt_CostOutOfRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cost int
		want int
	}{
		{name: "below minimum", cost: 1, want: DefaultCost},
		{name: "above maximum", cost: 99, want: DefaultCost},
		{name: "within range", cost: bcrypt.MinCost, want: bcrypt.MinCost},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, NewBcrypt(tt.cost).cost)
		})
	}
}
