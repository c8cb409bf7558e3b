// Package classify derives tags from an event's free text.
//
// All functions are pure: sport and arts category vocabularies, the
// middle-school and varsity tests, featured/other partitioning, and the
// detection of weekdays that look like scrape omissions. The icon and
// colour lookup lives on a Classifier built from an immutable Palette.
package classify
