package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultGitHubAuthURL   = "https://github.com/login/oauth/authorize"
	defaultGitHubTokenURL  = "https://github.com/login/oauth/access_token"
	defaultGitHubUserURL   = "https://api.github.com/user"
	defaultGitHubEmailsURL = "https://api.github.com/user/emails"
)

// GitHubConfig configures the GitHub OAuth provider. The endpoint URLs are
// overridable for tests.
type GitHubConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string

	AuthURL   string
	TokenURL  string
	UserURL   string
	EmailsURL string
}

// GitHubProvider authenticates users against GitHub OAuth.
type GitHubProvider struct {
	config GitHubConfig
}

// NewGitHubProvider creates a GitHubProvider, filling in default endpoints.
func NewGitHubProvider(config GitHubConfig) *GitHubProvider {
	if config.AuthURL == "" {
		config.AuthURL = defaultGitHubAuthURL
	}
	if config.TokenURL == "" {
		config.TokenURL = defaultGitHubTokenURL
	}
	if config.UserURL == "" {
		config.UserURL = defaultGitHubUserURL
	}
	if config.EmailsURL == "" {
		config.EmailsURL = defaultGitHubEmailsURL
	}
	return &GitHubProvider{config: config}
}

// Name implements Provider.
func (p *GitHubProvider) Name() string { return "github" }

// LoginURL builds the GitHub authorization URL with user:email scope.
func (p *GitHubProvider) LoginURL(state string) string {
	params := url.Values{
		"client_id":    {p.config.ClientID},
		"redirect_uri": {p.config.RedirectURL},
		"scope":        {"user:email"},
		"state":        {state},
	}
	return p.config.AuthURL + "?" + params.Encode()
}

type githubTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Scope       string `json:"scope"`
}

type githubUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

type githubEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

// Exchange trades the authorization code for an access token and fetches the
// user's profile. GitHub hides private emails from /user, so when the profile
// email is empty the /user/emails endpoint is consulted for the primary
// verified address.
func (p *GitHubProvider) Exchange(ctx context.Context, code string) (*Profile, error) {
	token, err := p.exchangeToken(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("github token exchange failed: %w", err)
	}

	user, err := p.fetchUser(ctx, token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("github user fetch failed: %w", err)
	}

	email := user.Email
	if email == "" {
		email, err = p.fetchPrimaryEmail(ctx, token.AccessToken)
		if err != nil {
			return nil, fmt.Errorf("github emails fetch failed: %w", err)
		}
	}

	displayName := user.Name
	if displayName == "" {
		displayName = user.Login
	}

	profile := &Profile{
		ProviderID:  strconv.FormatInt(user.ID, 10),
		DisplayName: displayName,
		AvatarURL:   user.AvatarURL,
	}
	if email != "" {
		profile.Emails = []string{email}
	}
	return profile, nil
}

func (p *GitHubProvider) exchangeToken(ctx context.Context, code string) (*githubTokenResponse, error) {
	data := url.Values{
		"code":          {code},
		"client_id":     {p.config.ClientID},
		"client_secret": {p.config.ClientSecret},
		"redirect_uri":  {p.config.RedirectURL},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.config.TokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	var token githubTokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, fmt.Errorf("failed to parse token response: %w", err)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("empty access token in response")
	}
	return &token, nil
}

func (p *GitHubProvider) fetchUser(ctx context.Context, accessToken string) (*githubUser, error) {
	body, err := p.apiGet(ctx, p.config.UserURL, accessToken)
	if err != nil {
		return nil, err
	}

	var user githubUser
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to parse user response: %w", err)
	}
	if user.ID == 0 {
		return nil, fmt.Errorf("empty user id in response")
	}
	return &user, nil
}

func (p *GitHubProvider) fetchPrimaryEmail(ctx context.Context, accessToken string) (string, error) {
	body, err := p.apiGet(ctx, p.config.EmailsURL, accessToken)
	if err != nil {
		return "", err
	}

	var emails []githubEmail
	if err := json.Unmarshal(body, &emails); err != nil {
		return "", fmt.Errorf("failed to parse emails response: %w", err)
	}
	for _, e := range emails {
		if e.Primary && e.Verified {
			return e.Email, nil
		}
	}
	for _, e := range emails {
		if e.Verified {
			return e.Email, nil
		}
	}
	return "", nil
}

func (p *GitHubProvider) apiGet(ctx context.Context, endpoint, accessToken string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status %d: %s", endpoint, resp.StatusCode, string(body))
	}
	return body, nil
}

var _ Provider = (*GitHubProvider)(nil)
