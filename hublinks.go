// Package hublinks extracts title+link items from list-style GitHub pages
// (pull requests, issues, milestones, releases, and so on) and renders them
// in several text representations.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, rod/).
package hublinks
