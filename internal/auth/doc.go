// Package auth provides authentication and authorization for the epicevents CRM.
//
// # Authentication
//
// Employees authenticate with email and password. Passwords are verified
// against salted bcrypt hashes; on success a JWT session token signed with
// HS256 is minted and persisted to a single local session slot. Subsequent
// commands load the token, verify it, and re-resolve the employee from the
// credential store.
//
// # Session Lifecycle
//
// From the caller's perspective a session moves through the states
// Anonymous -> Authenticated -> (Expired | Invalidated | LoggedOut).
// A session token proves authentication purely by its signature and expiry;
// nothing is stored server-side. Creating a new session silently replaces
// any prior one. An expired or tampered token purges the session slot and
// reports a distinct condition so the command layer can render the right
// message:
//
//   - no session slot: "not authenticated"
//   - ErrTokenExpired: "token expired, please re-login"
//   - ErrTokenInvalid: "invalid token, please re-login"
//
// # Authorization
//
// Permission checks evaluate a required department against the resolved
// employee's current department. Management is a super-scope and passes every
// check; all other departments require an exact match. Ownership checks
// (e.g. "only the assigned commercial may update this client") are layered on
// top by the service layer after the department check passes.
package auth
