// Package apiclient is a typed resty client for the users/posts CRUD API.
// It works against both servers: set PathPrefix to "/api" for the basic
// surface and leave it empty for the rest surface, since the two expose the
// same operations and payloads.
package apiclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mpetrashin/go-web-fundamentals/internal/logger"
	"github.com/mpetrashin/go-web-fundamentals/models"
)

type Config struct {
	BaseURL    string
	PathPrefix string
	Timeout    time.Duration
}

type Client struct {
	client *resty.Client
	prefix string

	logger *logger.Logger
}

// NewClient normalizes and validates the base URL, then configures the
// underlying resty client with it and the request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewClient(cfg Config, logger *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &Client{
		client: cli,
		prefix: strings.TrimRight(cfg.PathPrefix, "/"),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListUsers fetches users matching the filter. Zero filter fields are
// omitted from the query string so the server applies its own defaults.
func (c *Client) ListUsers(ctx context.Context, filter models.UserFilter) (models.UsersResponse, error) {
	var result models.UsersResponse

	req := c.client.R().
		SetContext(ctx).
		SetResult(&result)
	if filter.Search != "" {
		req.SetQueryParam("search", filter.Search)
	}
	if filter.Skip > 0 {
		req.SetQueryParam("skip", strconv.Itoa(filter.Skip))
	}
	if filter.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(filter.Limit))
	}

	resp, err := req.Get(c.prefix + "/users")
	if err != nil {
		return models.UsersResponse{}, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UsersResponse{}, err
	}

	return result, nil
}

// GetUser fetches one user by id. An unknown id yields ErrNotFound.
func (c *Client) GetUser(ctx context.Context, id int64) (models.User, error) {
	var user models.User

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&user).
		Get(fmt.Sprintf("%s/users/%d", c.prefix, id))
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// CreateUser posts a new user and returns the stored record with its
// server-assigned id. A duplicate email yields ErrConflict.
func (c *Client) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	var user models.User

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&user).
		Post(c.prefix + "/users")
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// DeleteUser removes one user by id. An unknown id yields ErrNotFound.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("%s/users/%d", c.prefix, id))
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListPosts fetches posts matching the filter.
func (c *Client) ListPosts(ctx context.Context, filter models.PostFilter) (models.PostsResponse, error) {
	var result models.PostsResponse

	req := c.client.R().
		SetContext(ctx).
		SetResult(&result)
	if filter.UserID > 0 {
		req.SetQueryParam("user_id", strconv.FormatInt(filter.UserID, 10))
	}
	if filter.Skip > 0 {
		req.SetQueryParam("skip", strconv.Itoa(filter.Skip))
	}
	if filter.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(filter.Limit))
	}

	resp, err := req.Get(c.prefix + "/posts")
	if err != nil {
		return models.PostsResponse{}, fmt.Errorf("list posts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PostsResponse{}, err
	}

	return result, nil
}

// GetPost fetches one post by id.
func (c *Client) GetPost(ctx context.Context, id int64) (models.Post, error) {
	var post models.Post

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&post).
		Get(fmt.Sprintf("%s/posts/%d", c.prefix, id))
	if err != nil {
		return models.Post{}, fmt.Errorf("get post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

// CreatePost posts a new post. An unknown owning user yields ErrNotFound.
func (c *Client) CreatePost(ctx context.Context, req models.CreatePostRequest) (models.Post, error) {
	var post models.Post

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&post).
		Post(c.prefix + "/posts")
	if err != nil {
		return models.Post{}, fmt.Errorf("create post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

// DeletePost removes one post by id.
func (c *Client) DeletePost(ctx context.Context, id int64) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("%s/posts/%d", c.prefix, id))
	if err != nil {
		return fmt.Errorf("delete post request: %w", err)
	}

	return mapHTTPError(resp)
}
