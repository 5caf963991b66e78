package helpers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	C "bizdesk/config"

	"github.com/gorilla/securecookie"
)

const (
	SecondsInOneDay      = 86400
	SecondsInFifteenDays = SecondsInOneDay * 15
	SecondsInOneMonth    = SecondsInOneDay * 30
	ExpireCookie         = -1
)

var (
	ErrExpired = errors.New("expired")
)

type ProtectedFields struct {
	Email string `json:"e"`
	ExpAt int64  `json:"exp"`
}

type AuthData struct {
	AgentUUID       string `json:"au"`
	ProtectedFields string `json:"pf"`
}

// GetAuthData builds the auth token carried by the session cookie and
// activation links. The agent salt is the per-agent encryption key:
// rotating the salt invalidates every outstanding token.
func GetAuthData(email, agentUUID, key string, dur time.Duration) (string, error) {
	if email == "" || agentUUID == "" || key == "" {
		return "", errors.New("missing params")
	}

	pf := ProtectedFields{Email: email, ExpAt: time.Now().UTC().Add(dur).Unix()}

	encPf, err := createSecureData([]byte(key), pf)
	if err != nil {
		return "", err
	}

	ad := AuthData{
		AgentUUID:       agentUUID,
		ProtectedFields: encPf,
	}

	adBytes, err := json.Marshal(ad)
	if err != nil {
		return "", err
	}

	return base64.URLEncoding.EncodeToString(adBytes), nil
}

func ParseAuthData(data string) (*AuthData, error) {
	if data == "" {
		return nil, errors.New("missing params")
	}

	decode, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		return nil, err
	}

	ad := AuthData{}
	if err = json.Unmarshal(decode, &ad); err != nil {
		return nil, err
	}

	return &ad, nil
}

func ParseAndDecryptProtectedFields(key string, protectedFields string) (string, error) {
	pf, err := decodeSecureData([]byte(key), protectedFields)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC().Unix()
	if now > pf.ExpAt {
		return "", ErrExpired
	}

	return pf.Email, nil
}

func createSecureData(key []byte, pf ProtectedFields) (string, error) {
	s := securecookie.New(key, key)
	s = s.SetSerializer(securecookie.JSONEncoder{})
	return s.Encode(C.GetCookieName(), pf)
}

func decodeSecureData(key []byte, value string) (ProtectedFields, error) {
	s := securecookie.New(key, key)
	s = s.SetSerializer(securecookie.JSONEncoder{})
	pf := ProtectedFields{}
	err := s.Decode(C.GetCookieName(), value, &pf)
	return pf, err
}
