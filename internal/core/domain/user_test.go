package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUser_IsDeleted(t *testing.T) {
	t.Run("should return false when DeletedAt is nil", func(t *testing.T) {
		user := User{
			DeletedAt: nil,
		}

		assert.False(t, user.IsDeleted())
	})

	t.Run("should return true when DeletedAt is not nil", func(t *testing.T) {
		now := time.Now()
		user := User{
			DeletedAt: &now,
		}

		assert.True(t, user.IsDeleted())
	})
}
