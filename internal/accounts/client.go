// Package accounts talks to the remote account-lifecycle service.
package accounts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"customerhub/internal/domain"
)

// Client is the account-lifecycle contract consumed by the command layer.
type Client interface {
	RegisterAccount(ctx context.Context, userName, password string) (string, error)
	FindOrRegisterAccount(ctx context.Context, userName, password string) (string, error)
	DisableAccount(ctx context.Context, userID string) error
	EnableAccount(ctx context.Context, userID string) error
}

type httpClient struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

// NewHTTP returns a Client speaking JSON over HTTP to the service at baseURL.
func NewHTTP(baseURL string, logger *log.Logger) Client {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &httpClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

type credentials struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type accountRef struct {
	UserID string `json:"userId"`
}

func (c *httpClient) RegisterAccount(ctx context.Context, userName, password string) (string, error) {
	var ref accountRef
	if err := c.post(ctx, "/accounts", credentials{UserName: userName, Password: password}, &ref); err != nil {
		return "", &domain.RemoteError{Op: "register account", Err: err}
	}
	return ref.UserID, nil
}

func (c *httpClient) FindOrRegisterAccount(ctx context.Context, userName, password string) (string, error) {
	var ref accountRef
	if err := c.post(ctx, "/accounts/find-or-register", credentials{UserName: userName, Password: password}, &ref); err != nil {
		return "", &domain.RemoteError{Op: "find or register account", Err: err}
	}
	return ref.UserID, nil
}

func (c *httpClient) DisableAccount(ctx context.Context, userID string) error {
	if err := c.post(ctx, "/accounts/"+userID+"/disable", nil, nil); err != nil {
		return &domain.RemoteError{Op: "disable account", Err: err}
	}
	return nil
}

func (c *httpClient) EnableAccount(ctx context.Context, userID string) error {
	if err := c.post(ctx, "/accounts/"+userID+"/enable", nil, nil); err != nil {
		return &domain.RemoteError{Op: "enable account", Err: err}
	}
	return nil
}

func (c *httpClient) post(ctx context.Context, path string, body, out interface{}) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, payload)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Printf("accounts client: POST %s status=%d", path, resp.StatusCode)
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
