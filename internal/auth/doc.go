// Package auth provides credential storage and verification for the catalog
// API: bcrypt password hashing, a registration/authentication service, and
// the HTTP Basic middleware that gates mutating endpoints.
//
// Authentication failures are deliberately uniform: an unknown username and a
// wrong password produce the same error, so responses never reveal whether an
// account exists.
package auth
