package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is a registered account. All categories, transactions and savings
// goals reference their owning user.
type User struct {
	Model
	Username     string `json:"username" gorm:"uniqueIndex" example:"jane.doe@example.com"` // Unique name the user logs in with
	PasswordHash string `json:"-"`                                                          // bcrypt hash, never serialized
	FullName     string `json:"fullName" example:"Jane Doe"`                                // Full name of the user
	PhoneNumber  string `json:"phoneNumber" example:"+65 9123 4567"`                        // Phone number of the user
}

// Session is a login session. The token is presented by clients as a bearer
// token on every request.
type Session struct {
	Model
	Token  string `gorm:"uniqueIndex"`
	UserID uint64
	User   User
}

// BeforeSave trims whitespace from the username.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Username = strings.TrimSpace(u.Username)

	return nil
}

// RegisterUser creates a new user with a hashed password.
func RegisterUser(username, password, fullName, phoneNumber string) (User, error) {
	var count int64
	err := DB.Model(&User{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return User{}, err
	}

	if count > 0 {
		return User{}, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	user := User{
		Username:     username,
		PasswordHash: string(hash),
		FullName:     fullName,
		PhoneNumber:  phoneNumber,
	}

	err = DB.Create(&user).Error
	if err != nil {
		return User{}, err
	}

	return user, nil
}

// AuthenticateUser verifies a username and password combination.
//
// Unknown usernames and wrong passwords return the same error so that the
// login endpoint does not allow user enumeration.
func AuthenticateUser(username, password string) (User, error) {
	var user User
	err := DB.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return User{}, ErrInvalidCredentials
	}

	return user, nil
}

// CreateSession opens a new login session for the user.
func CreateSession(user User) (Session, error) {
	session := Session{
		Token:  uuid.NewString(),
		UserID: user.ID,
	}

	err := DB.Create(&session).Error
	if err != nil {
		return Session{}, err
	}

	return session, nil
}

// UserForToken resolves a session token to its user.
func UserForToken(token string) (User, error) {
	var session Session
	err := DB.Preload("User").Where("token = ?", token).First(&session).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return User{}, ErrNoValidSession
		}
		return User{}, err
	}

	return session.User, nil
}
