package redis

import (
	"github.com/redis/go-redis/v9"
)

// Nil is returned by reads of a missing key
const Nil = redis.Nil

// Client is the subset of go-redis used by the repositories
type Client interface {
	redis.UniversalClient
}
