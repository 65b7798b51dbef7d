// Package redis connects to the Redis server that backs the shared tenant
// cache.
//
// Connect retries during startup using the env-driven Config; Healthcheck
// plugs into the readiness probe. Redis is optional infrastructure here:
// when no REDIS_URL is configured the service falls back to its in-memory
// tenant cache.
package redis
