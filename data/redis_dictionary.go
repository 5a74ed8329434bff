package data

import (
	"fmt"
	"time"

	"github.com/go-redis/redis"
)

// RedisDictionary caches dictionary verdicts so the oracle is consulted at
// most once per word while the key lives.
type RedisDictionary struct {
	ttl    time.Duration
	client redis.Cmdable
}

func NewRedisDictionary(ttl time.Duration, client redis.Cmdable) *RedisDictionary {
	return &RedisDictionary{
		client: client,
		ttl:    ttl,
	}
}

func generateKey(lang, key string) string {
	return fmt.Sprintf("%v.%v", lang, key)
}

func (r *RedisDictionary) Get(lang, key string) (bool, bool) {
	val, err := r.client.Get(generateKey(lang, key)).Result()
	if err != nil {
		return false, false
	}

	return val == "1", true
}

func (r *RedisDictionary) Set(lang, key string, value bool) {
	val := "0"
	if value {
		val = "1"
	}
	r.client.Set(generateKey(lang, key), val, r.ttl)
}
