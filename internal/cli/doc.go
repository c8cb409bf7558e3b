// Package cli implements the command-line interface for events-digest.
//
// The root command loads configuration, sets up logging and metrics, and
// hosts two subcommands: email renders the weekly emails (one per school
// level, optionally with an iCalendar companion) and signage renders the
// daily display page. Both collect events through the same pipeline: the
// schedule scrape with its browser escalation, then the arts feed. A run
// ends with a text or JSON summary on stdout.
package cli
