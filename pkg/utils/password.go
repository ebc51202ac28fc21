package utils

import "golang.org/x/crypto/bcrypt"

// bcrypt work factor for staff password hashes
const bcryptCost = 12

// HashPassword hashes a plain text password for storage
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

// ComparePassword reports whether the plain text password matches the
// stored hash
func ComparePassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
