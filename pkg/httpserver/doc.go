// Package httpserver wraps http.Server with graceful shutdown tied to
// process signals, so in main the whole HTTP lifecycle is one Run call
// and deferred resource teardown is guaranteed to execute afterwards.
package httpserver
