// Package redis provides the Redis-backed session store used when more than
// one server process must share session state.
package redis
