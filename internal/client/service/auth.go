package service

import (
	"context"
	"net/http"
)

type issueLinkRequest struct {
	Email string `json:"email"`
}

type issueLinkResponse struct {
	Link string `json:"link"`
}

type exchangeLinkRequest struct {
	Link string `json:"link"`
}

type exchangeLinkResponse struct {
	Token string `json:"token"`
}

// RequestSignInLink asks the server for a single-use sign-in link for the
// given e-mail address and returns the opaque link token.
func (c *Client) RequestSignInLink(ctx context.Context, email string) (string, error) {
	var resp issueLinkResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/link", issueLinkRequest{Email: email}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Link, nil
}

// SignIn redeems a sign-in link and installs the returned session token on
// the client.
func (c *Client) SignIn(ctx context.Context, link string) error {
	var resp exchangeLinkResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/session", exchangeLinkRequest{Link: link}, &resp)
	if err != nil {
		return err
	}
	c.SetToken(resp.Token)
	return nil
}
