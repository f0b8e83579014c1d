/*
Package auth provides password hashing and the login-session lifecycle.

# Passwords

Operator passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword(password)
	ok := auth.CheckPassword(hash, password)

# Sessions

A session is a random 24-byte (192-bit) token:

	token, err := auth.CreateSession(db, userID)

Sessions are valid for exactly seven days from issuance:

	auth.SessionValid(issuedAt, now) // now - issuedAt < 7 days

ValidateSession resolves a token to the operator and their assigned wards.
Expired tokens are deleted when seen and reported as ErrSessionExpired;
unknown tokens as ErrSessionNotFound. DeleteExpiredSessions backs the hourly
background sweep so sessions lapse even without traffic.

# Authorization Header

The portal's HTTP client sends the bare token in the Authorization header;
ParseAuthorization accepts that form as well as "Bearer <token>".

# ID Generation

Random hex IDs for transient records:

	id, err := auth.GenerateID(16)  // 32 hex characters
*/
package auth
