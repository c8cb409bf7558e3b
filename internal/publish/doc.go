// Package publish delivers rendered artifacts.
//
// A Dir publisher writes each artifact as a whole file under an output
// directory, creating parent folders as needed. A DryRun publisher prints
// the artifacts to a writer instead, for previewing a run without touching
// the filesystem.
package publish
