// Package render turns classified events into static HTML.
//
// BuildEmail and BuildSignage produce plain view models; WriteEmail and
// WriteSignage execute the embedded html/template files against them. The
// output is self-contained apart from web fonts.
package render
