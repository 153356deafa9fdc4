package models

import "github.com/golang-jwt/jwt/v5"

// Token wraps a JWT token issued by the external identity provider.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// OwnerID is a cached copy of the "sub" (subject) claim. The vault never
// creates user accounts itself; it only resolves the owner identity from
// tokens the identity collaborator signed.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// OwnerID is the owner identifier extracted from the "sub" claim.
	OwnerID string `json:"-"`
}

// GetOwnerID returns the owner identifier cached from the "sub" (subject)
// claim during validation. Empty only for tokens that never went through
// [utils.ValidateAndParseJWTToken].
func (t *Token) GetOwnerID() string {
	return t.OwnerID
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
