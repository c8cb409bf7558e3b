// Package scraper fetches and parses the athletics schedule page.
//
// The page carries a single table whose rows hold team, opponent, date, time,
// location and home/away cells. Dates arrive in inconsistent shapes
// ("Sep222025", "Oct202025-Oct212025") and are repaired by the event package
// before filtering.
//
// The schedule paginates. A plain HTTP fetch only sees the first page, so
// Escalator checks whether the rows it found reach the end of the requested
// range and, if not, drives a Pager (a headless browser in production) that
// keeps pressing "load more" until the range is covered or a bound is hit.
package scraper
