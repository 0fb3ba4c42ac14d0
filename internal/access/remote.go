package access

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/five82/foodie/internal/cookbook"
)

// Remote talks to a foodie server over its HTTP API.
type Remote struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultAPIBind is where foodie serve listens unless configured otherwise.
	DefaultAPIBind   = "127.0.0.1:7488"
	defaultUserAgent = "foodie/0.1"
	requestTimeout   = 5 * time.Second
)

// NewRemote builds a Remote using the provided apiBind host:port value.
func NewRemote(apiBind string) (*Remote, error) {
	base, err := parseBaseURL(apiBind)
	if err != nil {
		return nil, err
	}
	return &Remote{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

func (c *Remote) Cookbook(ctx context.Context) (cookbook.Cookbook, error) {
	var payload RecipeList
	if err := c.do(ctx, http.MethodGet, recipesPath(""), nil, &payload); err != nil {
		return cookbook.Cookbook{}, err
	}
	for _, r := range payload.Recipes {
		if err := check(r); err != nil {
			return cookbook.Cookbook{}, fmt.Errorf("recipe %q from server: %w", r.Name, err)
		}
	}
	return cookbook.New(payload.Recipes...), nil
}

// Status fetches the server's summary counts.
func (c *Remote) Status(ctx context.Context) (*StatusResponse, error) {
	var payload StatusResponse
	if err := c.do(ctx, http.MethodGet, &url.URL{Path: "/api/status"}, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Remote) AddRecipe(ctx context.Context, r cookbook.Recipe) error {
	if err := check(r); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, recipesPath(""), r, nil)
}

func (c *Remote) EditRecipe(ctx context.Context, name string, r cookbook.Recipe) error {
	if err := check(r); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, recipesPath(name), r, nil)
}

func (c *Remote) DeleteRecipe(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodDelete, recipesPath(name), nil, nil)
}

func (c *Remote) Describe() string {
	return c.baseURL.String()
}

func recipesPath(name string) *url.URL {
	if name == "" {
		return &url.URL{Path: "/api/recipes"}
	}
	return &url.URL{Path: "/api/recipes/" + name}
}

func (c *Remote) do(ctx context.Context, method string, rel *url.URL, body, dest any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return statusError(rel, resp)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// statusError maps an API error response onto the cookbook sentinels.
func statusError(rel *url.URL, resp *http.Response) error {
	var payload ErrorResponse
	_ = json.NewDecoder(io.LimitReader(resp.Body, 64*1024)).Decode(&payload)
	msg := strings.TrimSpace(payload.Error)
	if msg == "" {
		msg = fmt.Sprintf("api %s returned status %d", rel.Path, resp.StatusCode)
	}

	var sentinel error
	switch resp.StatusCode {
	case http.StatusNotFound:
		sentinel = cookbook.ErrNotFound
	case http.StatusConflict:
		sentinel = cookbook.ErrDuplicate
	case http.StatusBadRequest:
		sentinel = ErrInvalid
	default:
		return errors.New(msg)
	}
	return fmt.Errorf("%s: %w", msg, sentinel)
}

func parseBaseURL(apiBind string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBind)
	if trimmed == "" {
		trimmed = DefaultAPIBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_bind %q: %w", apiBind, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
