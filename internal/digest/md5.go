package digest

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
)

// MD5 is the portal's historical scheme: a fixed, unsalted message digest
// stored as lowercase hex. It is weak (no salt, no work factor) and is kept
// only because the existing user directory stores MD5 digests. New
// deployments should switch to Bcrypt.
type MD5 struct{}

func NewMD5() MD5 { return MD5{} }

func (MD5) Sum(password string) (string, error) {
	h := md5.Sum([]byte(password))
	return hex.EncodeToString(h[:]), nil
}

func (d MD5) Verify(password, stored string) bool {
	sum, _ := d.Sum(password)
	return subtle.ConstantTimeCompare([]byte(sum), []byte(stored)) == 1
}
