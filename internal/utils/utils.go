package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// ID prefixes, one per entity kind.
const (
	UserPrefix             = "usr"
	AssetPrefix            = "ast"
	LiabilityPrefix        = "lia"
	ExpensePrefix          = "exp"
	BudgetPrefix           = "bud"
	BillPrefix             = "bil"
	SubscriptionPrefix     = "sub"
	SnapshotPrefix         = "nws"
	NotificationPrefix     = "ntf"
	HoldingPrefix          = "hld"
	WatchlistPrefix        = "wch"
	StockTransactionPrefix = "stx"
)

// GenerateID generates a unique ID with the given prefix
func GenerateID(prefix string) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const length = 10

	result := make([]byte, length)
	for i := range result {
		num, _ := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		result[i] = charset[num.Int64()]
	}

	return fmt.Sprintf("%s-%s", prefix, string(result))
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword checks if a password matches a hash
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
