package api

import (
	"context"
	"net/http"
)

// AuthResult is the outcome of a login or registration call. User may be
// nil: the backend does not always embed the profile next to the token.
type AuthResult struct {
	Token string
	User  *User
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type userPayload struct {
	User *User `json:"user"`
}

// Login exchanges credentials for a bearer token. A response without a
// token is malformed regardless of its HTTP status.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", loginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	return authResult(env)
}

// Register creates an account and, like Login, yields a token.
func (c *Client) Register(ctx context.Context, name, email, password, role string) (*AuthResult, error) {
	if role == "" {
		role = RoleStudent
	}
	env, err := c.do(ctx, http.MethodPost, "/api/v1/auth/register", registerRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	})
	if err != nil {
		return nil, err
	}
	return authResult(env)
}

func authResult(env *envelope) (*AuthResult, error) {
	if env.Token == "" {
		return nil, ErrMalformedResponse
	}
	res := &AuthResult{Token: env.Token}
	if len(env.Data) > 0 {
		var payload userPayload
		// Embedded profile is optional; a malformed one is treated as absent.
		if err := decodeData(env, &payload); err == nil {
			res.User = payload.User
		}
	}
	return res, nil
}

// Me fetches the profile for the current bearer token.
func (c *Client) Me(ctx context.Context) (*User, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/v1/auth/me", nil)
	if err != nil {
		return nil, err
	}
	var payload userPayload
	if err := decodeData(env, &payload); err != nil {
		return nil, err
	}
	if payload.User == nil {
		return nil, ErrMalformedResponse
	}
	return payload.User, nil
}

type updateProfileRequest struct {
	Name string `json:"name"`
}

// UpdateProfile changes the display name and returns the updated profile.
func (c *Client) UpdateProfile(ctx context.Context, name string) (*User, error) {
	env, err := c.do(ctx, http.MethodPatch, "/api/v1/auth/updateProfile", updateProfileRequest{Name: name})
	if err != nil {
		return nil, err
	}
	var payload userPayload
	if err := decodeData(env, &payload); err != nil {
		return nil, err
	}
	if payload.User == nil {
		return nil, ErrMalformedResponse
	}
	return payload.User, nil
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword swaps the account password; the token stays valid.
func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	_, err := c.do(ctx, http.MethodPatch, "/api/v1/auth/changePassword", changePasswordRequest{
		CurrentPassword: current,
		NewPassword:     next,
	})
	return err
}
