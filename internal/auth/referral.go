package auth

import "crypto/rand"

const (
	referralAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	referralLength   = 6
)

// NewReferralCode returns a short uppercase alphanumeric code binding members
// to a manager. Uniqueness is probabilistic, not enforced.
func NewReferralCode() (string, error) {
	buf := make([]byte, referralLength)

	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	for i, b := range buf {
		buf[i] = referralAlphabet[int(b)%len(referralAlphabet)]
	}

	return string(buf), nil
}
