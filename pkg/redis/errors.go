package redis

import "errors"

var (
	// ErrEmptyConnectionURL means no URL was provided at all.
	ErrEmptyConnectionURL = errors.New("redis: empty connection URL")

	// ErrFailedToParseURL covers both unknown schemes and URLs that
	// redis.ParseURL rejects.
	ErrFailedToParseURL = errors.New("redis: failed to parse connection URL")

	// ErrConnectionFailed is returned once every connection attempt has
	// been used up, or with the context error joined when the caller
	// gave up first.
	ErrConnectionFailed = errors.New("redis: failed to establish connection")

	// ErrHealthcheckFailed marks a ping failure on an established client.
	ErrHealthcheckFailed = errors.New("redis: healthcheck failed")
)
