package crypto

import "errors"

// ErrInvalidHash is returned by [PasswordHasher.Verify] when the stored
// hash string is malformed, uses an unsupported variant or version, or
// carries parameters outside acceptable bounds. A plain password mismatch
// is not an error; it is reported as (false, nil).
var ErrInvalidHash = errors.New("invalid password hash")
