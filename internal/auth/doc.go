// Package auth protects mutating API routes with a shared API key.
//
// The key itself is never stored. Operators put its bcrypt hash in
// AUTH_API_KEY_HASH; an empty value leaves every route public.
//
//	pokescout hash-key <key>          # prints the hash
//	AUTH_API_KEY_HASH='$2a$12$...'    # enables protection
//
// Clients present the key with either header:
//
//	Authorization: Bearer <key>
//	X-API-Key: <key>
package auth
