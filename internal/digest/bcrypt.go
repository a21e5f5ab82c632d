package digest

import "golang.org/x/crypto/bcrypt"

// Bcrypt is the replacement scheme for directories migrated off MD5.
// The stored digest embeds its own salt and cost.
type Bcrypt struct {
	cost int
}

func NewBcrypt() Bcrypt { return Bcrypt{cost: bcrypt.DefaultCost} }

func (b Bcrypt) Sum(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func (Bcrypt) Verify(password, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}
