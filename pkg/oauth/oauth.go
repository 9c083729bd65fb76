// Package oauth implements OAuth 2.0 authorization-code clients for the
// supported identity providers and normalizes their profile payloads.
package oauth

import "context"

// Profile is the normalized identity a provider hands back after the code
// exchange. It is validated at this boundary: a Profile with an empty
// ProviderID never leaves the package.
type Profile struct {
	ProviderID  string
	Emails      []string
	DisplayName string
	AvatarURL   string
}

// Email returns the profile's primary email, or "" when none was supplied.
func (p Profile) Email() string {
	if len(p.Emails) == 0 {
		return ""
	}
	return p.Emails[0]
}

// Provider is one external identity source (Google, GitHub).
type Provider interface {
	// Name is the provider identifier stored on Auth rows ("google", "github").
	Name() string
	// LoginURL builds the provider's authorization URL carrying the state nonce.
	LoginURL(state string) string
	// Exchange trades an authorization code for the user's profile.
	Exchange(ctx context.Context, code string) (*Profile, error)
}
