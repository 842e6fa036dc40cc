package accounts

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/projecto-dev/projecto/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(&models.User{}))

	return gdb
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already normalized", "alice@example.com", "alice@example.com"},
		{"uppercase domain", "alice@EXAMPLE.COM", "alice@example.com"},
		{"local part preserved", "Alice.B@Example.Com", "Alice.B@example.com"},
		{"surrounding whitespace", "  bob@example.com \n", "bob@example.com"},
		{"no at sign", "not-an-email", "not-an-email"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeEmail(tt.input))
		})
	}
}

func TestCreateUser(t *testing.T) {
	gdb := setupTestDB(t)

	t.Run("hashes password and normalizes email", func(t *testing.T) {
		user, err := CreateUser(gdb, CreateUserParams{
			FirstName: "Alice",
			LastName:  "Anderson",
			Email:     "Alice@EXAMPLE.COM",
			Password:  "supersecret",
			Frontend:  true,
		})
		require.NoError(t, err)

		assert.Equal(t, "Alice@example.com", user.Email)
		assert.NotEqual(t, "supersecret", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("supersecret")))
		assert.True(t, user.Frontend)
		assert.False(t, user.Backend)
		assert.True(t, user.IsActive)
		assert.False(t, user.IsStaff)
		assert.False(t, user.IsSuperuser)
	})

	t.Run("empty email rejected", func(t *testing.T) {
		_, err := CreateUser(gdb, CreateUserParams{
			FirstName: "Bob",
			LastName:  "Brown",
			Email:     "   ",
			Password:  "supersecret",
		})
		assert.ErrorIs(t, err, ErrEmailRequired)
	})

	t.Run("duplicate email rejected by store", func(t *testing.T) {
		_, err := CreateUser(gdb, CreateUserParams{
			FirstName: "Alice",
			LastName:  "Again",
			Email:     "alice@example.com",
			Password:  "anotherpass",
		})
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

		var count int64
		require.NoError(t, gdb.Model(&models.User{}).Where("email LIKE ?", "%@example.com").Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

func TestCreateSuperuser(t *testing.T) {
	gdb := setupTestDB(t)

	t.Run("forces staff superuser and active flags", func(t *testing.T) {
		user, err := CreateSuperuser(gdb, CreateUserParams{
			FirstName: "Root",
			LastName:  "Admin",
			Email:     "admin@example.com",
			Password:  "adminsecret",
		})
		require.NoError(t, err)

		assert.True(t, user.IsStaff)
		assert.True(t, user.IsSuperuser)
		assert.True(t, user.IsActive)
	})

	t.Run("refuses explicit is_staff false", func(t *testing.T) {
		off := false
		_, err := CreateSuperuser(gdb, CreateUserParams{
			Email:    "admin2@example.com",
			Password: "adminsecret",
			IsStaff:  &off,
		})
		assert.ErrorIs(t, err, ErrSuperuserNotStaff)
	})

	t.Run("refuses explicit is_superuser false", func(t *testing.T) {
		off := false
		_, err := CreateSuperuser(gdb, CreateUserParams{
			Email:       "admin3@example.com",
			Password:    "adminsecret",
			IsSuperuser: &off,
		})
		assert.ErrorIs(t, err, ErrSuperuserFlag)
	})
}
