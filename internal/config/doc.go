// Package config loads events-digest settings.
//
// Built-in defaults (school, source URLs, HTTP and browser settings, and the
// rotating email copy) are embedded from default.yaml. A user YAML file can be
// layered on top, and a few EVENTS_* environment variables, optionally read
// from a .env file, override both.
package config
