// Package pagesum extracts the readable text of a web page and asks a
// text-generation provider for a summary of it.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, sqlite/).
package pagesum
