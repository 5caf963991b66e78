package util

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

func GetUUID() string {
	return uuid.New().String()
}

func IsValidUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func RandomString(n int) string {
	rand.Seed(time.Now().UnixNano())

	var letter = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

	b := make([]rune, n)
	for i := range b {
		b[i] = letter[rand.Intn(len(letter))]
	}
	return string(b)
}

// RoundToTwoDecimals rounds money amounts to cents. All derived
// amounts (net, tax, gross) are stored rounded.
func RoundToTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// TimeNowZ - Returns current time in UTC. Use this instead of
// time.Now() on all DB writes to keep timestamps zone consistent.
func TimeNowZ() time.Time {
	return time.Now().UTC()
}

func TimeNowUnix() int64 {
	return TimeNowZ().Unix()
}
