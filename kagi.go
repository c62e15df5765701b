// Package kagi provides a session-token client for Kagi search and the
// Kagi Universal Summarizer. Kagi exposes no formal API for these, so the
// client scrapes the HTML search page and decodes the summarizer's
// NUL-delimited stream into stable, typed records.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, readability/).
package kagi
