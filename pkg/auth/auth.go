package auth

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/JACK-Producer/endtime-loud-cry/pkg/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrPasswordMismatch   = errors.New("new passwords do not match")
)

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

// GenerateToken issues an HS256 access token naming the admin and
// expiring after ttl.
func GenerateToken(username, secret string, ttl time.Duration) (string, error) {
	claims := &jwt.StandardClaims{
		Subject:   username,
		ExpiresAt: time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies signature and expiry and returns the subject
// username. Expired, tampered and malformed tokens all fail the same
// way.
func ParseToken(tokenString, secret string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.StandardClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*jwt.StandardClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// Login checks the credentials against the stored hash and issues a
// token. Unknown usernames and wrong passwords are indistinguishable to
// the caller.
func Login(db *gorm.DB, username, password, secret string, ttl time.Duration) (string, error) {
	var admin models.Admin
	if err := db.Where("username = ?", username).First(&admin).Error; err != nil {
		return "", ErrInvalidCredentials
	}
	if !CheckPassword(admin.HashedPassword, password) {
		return "", ErrInvalidCredentials
	}
	return GenerateToken(admin.Username, secret, ttl)
}

// ResolveAdmin maps a verified token subject back to the stored admin
// record.
func ResolveAdmin(db *gorm.DB, tokenString, secret string) (*models.Admin, error) {
	username, err := ParseToken(tokenString, secret)
	if err != nil {
		return nil, err
	}
	var admin models.Admin
	if err := db.Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, ErrAdminNotFound
	}
	return &admin, nil
}

// Bootstrap creates the administrator account once. Safe to call on
// every startup.
func Bootstrap(db *gorm.DB, username, password string) error {
	var admin models.Admin
	err := db.Where("username = ?", username).First(&admin).Error
	if err == nil {
		return nil
	}
	if !gorm.IsRecordNotFoundError(err) {
		return err
	}
	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}
	admin = models.Admin{Username: username, HashedPassword: hashed}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	logrus.WithField("username", username).Info("created initial admin account")
	return nil
}

// ChangePassword verifies the current password, checks the confirmation
// and persists a fresh hash. No strength policy is applied.
func ChangePassword(db *gorm.DB, admin *models.Admin, current, newPassword, confirm string) error {
	if !CheckPassword(admin.HashedPassword, current) {
		return ErrWrongPassword
	}
	if newPassword != confirm {
		return ErrPasswordMismatch
	}
	hashed, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := db.Model(admin).Update("hashed_password", hashed).Error; err != nil {
		return err
	}
	admin.HashedPassword = hashed
	return nil
}
