// Package otpcode генерирует числовые одноразовые коды и считает их ключевой хеш.
package otpcode

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
)

// ErrInvalidLength возвращается для неположительной длины кода
var ErrInvalidLength = errors.New("otpcode: length must be positive")

// Generate возвращает код из length десятичных цифр с ведущими нулями
func Generate(length int) (string, error) {
	if length <= 0 || length > 18 {
		return "", ErrInvalidLength
	}

	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil)
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("otpcode: read random: %w", err)
	}

	return fmt.Sprintf("%0*d", length, n.Int64()), nil
}

// Hash считает HMAC-SHA256 кода на серверном секрете (hex)
func Hash(code, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(code))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify сравнивает код с сохраненным хешем за постоянное время
func Verify(code, secret, storedHash string) bool {
	expected, err := hex.DecodeString(storedHash)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(code))
	return hmac.Equal(mac.Sum(nil), expected)
}
