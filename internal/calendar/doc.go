// Package calendar exports a week's events as an iCalendar companion file
// to the weekly emails.
package calendar
