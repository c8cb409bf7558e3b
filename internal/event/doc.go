// Package event provides the typed event records produced by the scrapers.
//
// An Event is either a *Game scraped from the athletics schedule or a
// *Performance read from the arts calendar feed. Both variants carry a
// normalized calendar date, a display time, and a location, and expose the
// title, subtitle, and badge used when rendering. Records are built once per
// run and never mutated afterwards.
//
// The package also owns date handling: repairing the malformed date tokens
// found in scraped markup, inclusive date ranges, and the week helpers used
// by the command-line interface.
package event
