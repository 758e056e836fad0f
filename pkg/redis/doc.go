// Package redis connects to the Redis server that backs visitor preferences.
//
// Connect retries the initial ping according to Config, and Healthcheck
// adapts a client to the readiness probe signature used by the web host.
// The preference store itself lives in package prefs.
package redis
