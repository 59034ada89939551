package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"keywire/internal/domain"
)

// Client talks to the demo server over HTTP.
type Client struct {
	Base string
	HTTP *http.Client
}

// NewClient returns a Client for the server at base. A nil httpClient falls
// back to http.DefaultClient.
func NewClient(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{Base: base, HTTP: httpClient}
}

// Handshake posts our public value and returns the server's half plus the
// registered session id.
func (c *Client) Handshake(ctx context.Context, req domain.HandshakeRequest) (domain.HandshakeResponse, error) {
	var resp domain.HandshakeResponse
	if err := c.post(ctx, "/handshake", req, &resp); err != nil {
		return domain.HandshakeResponse{}, err
	}
	return resp, nil
}

// SendEnvelope posts an encrypted message and returns the server's encrypted
// receipt.
func (c *Client) SendEnvelope(ctx context.Context, env domain.Envelope) (domain.Receipt, error) {
	var receipt domain.Receipt
	path := "/msg/" + url.PathEscape(env.SessionID.String())
	if err := c.post(ctx, path, env, &receipt); err != nil {
		return domain.Receipt{}, err
	}
	return receipt, nil
}

// CloseSession asks the server to forget the session.
func (c *Client) CloseSession(ctx context.Context, id domain.SessionID) error {
	path := "/session/" + url.PathEscape(id.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.Base+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("server delete %s: %s", path, resp.Status)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("server post %s: %s", path, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Compile-time assertion that Client implements domain.RelayClient.
var _ domain.RelayClient = (*Client)(nil)
