// Package store provides SQLite-backed persistence for the epicevents CRM.
//
// The Store interface covers the four entities (employees, clients, contracts,
// events); CredentialStore is the narrow read-only slice of it the auth engine
// consumes. Missing rows surface as typed sentinel errors so callers can
// branch with errors.Is. Timestamps are stored as RFC3339 TEXT and monetary
// amounts as integer cents.
package store
