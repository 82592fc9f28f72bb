package session

import "github.com/golang-jwt/jwt/v5"

// Claims is the subset of token claims the client cares about.
type Claims struct {
	Role   string
	UserID string
}

// DecodeClaims parses the token's payload without verifying the signature.
// The decode is advisory only, used for view gating; the backend remains the
// sole authority for authorization. Any malformed input (missing segments,
// bad base64, bad JSON) reports ok=false, never an error.
func DecodeClaims(token string) (Claims, bool) {
	if token == "" {
		return Claims{}, false
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return Claims{}, false
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, false
	}

	claims := Claims{}
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = role
	}
	if userID, ok := mapClaims["userId"].(string); ok {
		claims.UserID = userID
	}
	return claims, true
}
