// Package feed reads the arts events iCal feed.
//
// Each VEVENT becomes an event.Performance. Start times are shown in the
// school's timezone; all-day entries read "All Day". Components that cannot
// be read are skipped and logged, and a feed that cannot be fetched yields
// no performances rather than failing the run.
package feed
