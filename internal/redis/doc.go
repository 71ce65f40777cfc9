// Package redis holds the Redis client plumbing and the rendered-view cache.
package redis
