package cache

import (
	"time"

	C "bizdesk/config"
)

// SetIfNotExists - SET NX with expiry on the shared redis. Returns
// true when this caller set the key. Used as a fast-path dedupe for
// provider webhook events; the DB unique keys remain the source of
// truth.
func SetIfNotExists(key string, expiry time.Duration) (bool, error) {
	redisClient := C.GetServices().Redis
	return redisClient.SetNX(key, "1", expiry).Result()
}
