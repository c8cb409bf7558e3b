// Package fetch performs the plain HTTP GETs for the schedule page and the
// arts calendar feed, sending a browser-like User-Agent.
package fetch
