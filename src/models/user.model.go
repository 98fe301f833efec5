package models

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

var codePattern = regexp.MustCompile(`^\d{5}$`)

var dummyCodeHash, _ = bcrypt.GenerateFromPassword([]byte("00000"), bcrypt.DefaultCost)

// User is a registered resident. Name doubles as the login identifier and
// carries a unique index in the users collection. The access code is kept
// only as a bcrypt hash and never leaves the server; the 5-digit format is
// enforced at the handler boundary since the store only sees the hash.
type User struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Age       string             `json:"age" bson:"age"`
	Gender    string             `json:"gender" bson:"gender"`
	Address   string             `json:"address" bson:"address"`
	Contact   string             `json:"contact" bson:"contact"`
	CodeHash  string             `json:"-" bson:"code_hash"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// ValidCode reports whether code is exactly five decimal digits.
func ValidCode(code string) bool {
	return codePattern.MatchString(code)
}

// SetCode stores a bcrypt hash of the access code on the user.
func (u *User) SetCode(code string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.CodeHash = string(hash)
	return nil
}

// CheckCode compares a candidate access code against the stored hash.
func (u *User) CheckCode(code string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.CodeHash), []byte(code)) == nil
}

// CompareDummyCode burns a bcrypt comparison against a throwaway hash. The
// login handler calls it when a name lookup misses, so a miss costs the
// same as a wrong code and response timing does not reveal which names
// exist.
func CompareDummyCode(code string) {
	bcrypt.CompareHashAndPassword(dummyCodeHash, []byte(code))
}
