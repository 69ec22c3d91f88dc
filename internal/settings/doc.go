// Package settings provides the persistent keyed settings store.
//
// Values are namespaced string key/value pairs backed by SQLite via
// modernc.org/sqlite, a pure-Go driver. Use ":memory:" as the path in tests.
package settings
