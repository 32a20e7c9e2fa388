package devstub

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type stubUser struct {
	ID           string
	Email        string
	Name         string
	Role         string
	passwordHash []byte
}

func (u stubUser) checkPassword(pw string) bool {
	return bcrypt.CompareHashAndPassword(u.passwordHash, []byte(pw)) == nil
}

// Well-known dev accounts, one per role. Password is the part before the
// '@' plus "-pass" (e.g. admin-pass).
func seedUsers() map[string]stubUser {
	users := []stubUser{
		{ID: "u-admin", Email: "admin@carbontrail.dev", Name: "Site Admin", Role: "ADMIN"},
		{ID: "u-user", Email: "user@carbontrail.dev", Name: "Grace Wanjiru", Role: "USER"},
		{ID: "u-farmer", Email: "farmer@carbontrail.dev", Name: "Amina Njoroge", Role: "FARMER"},
	}

	out := make(map[string]stubUser, len(users))
	for _, u := range users {
		pw := u.Email[:strings.Index(u.Email, "@")] + "-pass"
		hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
		if err != nil {
			panic(err)
		}
		u.passwordHash = hash
		out[u.Email] = u
	}
	return out
}
