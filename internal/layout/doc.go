// Package layout holds the deterministic presentation lookups: signage
// sizing by event count, and the weekly rotation of email copy.
package layout
