package service

import (
	"fmt"
	"testing"

	"socialnet/backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createUser(t *testing.T, db *gorm.DB, id uint, firstName, lastName string) models.User {
	t.Helper()
	u := models.User{
		ID:           id,
		Phone:        fmt.Sprintf("+1555000%04d", id),
		Email:        fmt.Sprintf("user%d@example.com", id),
		PasswordHash: "x",
		FirstName:    firstName,
		LastName:     lastName,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func requireKind(t *testing.T, err error, kind Kind) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind, KindOf(err), "unexpected error: %v", err)
}
