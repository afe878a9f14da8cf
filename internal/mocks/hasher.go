package mocks

import "github.com/stretchr/testify/mock"

// Hasher is a mock implementation of password.Hasher.
type Hasher struct {
	mock.Mock
}

func (m *Hasher) Hash(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}

func (m *Hasher) Verify(plain, hash string) bool {
	args := m.Called(plain, hash)
	return args.Bool(0)
}
