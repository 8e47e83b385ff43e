package auth

import (
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JACK-Producer/endtime-loud-cry/pkg/models"
)

const testSecret = "test-secret"

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.DB().SetMaxOpenConns(1)
	db.AutoMigrate(&models.Admin{})
	t.Cleanup(func() { db.Close() })
	return db
}

func TestPasswordHashing(t *testing.T) {
	hashed, err := HashPassword("StrongPassword123")
	require.NoError(t, err)
	assert.NotEqual(t, "StrongPassword123", hashed)
	assert.True(t, CheckPassword(hashed, "StrongPassword123"))
	assert.False(t, CheckPassword(hashed, "wrong"))
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("admin", testSecret, time.Hour)
	require.NoError(t, err)

	subject, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken("admin", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestParseTokenTampered(t *testing.T) {
	token, err := GenerateToken("admin", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token+"x", testSecret)
	assert.Equal(t, ErrInvalidToken, err)

	_, err = ParseToken(token, "other-secret")
	assert.Equal(t, ErrInvalidToken, err)

	_, err = ParseToken("not-a-token", testSecret)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestBootstrapIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Bootstrap(db, "admin", "StrongPassword123"))
	require.NoError(t, Bootstrap(db, "admin", "SomethingElse"))

	var count int
	db.Model(&models.Admin{}).Count(&count)
	assert.Equal(t, 1, count)

	// The second call must not have rotated the password.
	var admin models.Admin
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.True(t, CheckPassword(admin.HashedPassword, "StrongPassword123"))
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Bootstrap(db, "admin", "StrongPassword123"))

	token, err := Login(db, "admin", "StrongPassword123", testSecret, time.Hour)
	require.NoError(t, err)

	admin, err := ResolveAdmin(db, token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Username)

	_, err = Login(db, "admin", "wrong", testSecret, time.Hour)
	assert.Equal(t, ErrInvalidCredentials, err)

	_, err = Login(db, "nobody", "StrongPassword123", testSecret, time.Hour)
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestResolveAdminDeleted(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Bootstrap(db, "admin", "StrongPassword123"))

	token, err := Login(db, "admin", "StrongPassword123", testSecret, time.Hour)
	require.NoError(t, err)

	db.Where("username = ?", "admin").Delete(&models.Admin{})

	_, err = ResolveAdmin(db, token, testSecret)
	assert.Equal(t, ErrAdminNotFound, err)
}

func TestChangePassword(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Bootstrap(db, "admin", "StrongPassword123"))

	var admin models.Admin
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	before := admin.HashedPassword

	err := ChangePassword(db, &admin, "wrong", "NewPassword1", "NewPassword1")
	assert.Equal(t, ErrWrongPassword, err)

	var stored models.Admin
	require.NoError(t, db.Where("username = ?", "admin").First(&stored).Error)
	assert.Equal(t, before, stored.HashedPassword)

	err = ChangePassword(db, &admin, "StrongPassword123", "NewPassword1", "Different")
	assert.Equal(t, ErrPasswordMismatch, err)

	require.NoError(t, ChangePassword(db, &admin, "StrongPassword123", "NewPassword1", "NewPassword1"))
	require.NoError(t, db.Where("username = ?", "admin").First(&stored).Error)
	assert.True(t, CheckPassword(stored.HashedPassword, "NewPassword1"))
	assert.False(t, CheckPassword(stored.HashedPassword, "StrongPassword123"))
}
