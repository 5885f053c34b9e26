// Package client talks to a running todo server over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/thenoetrevino/todos/internal/models"
)

// DefaultTimeout bounds a single request when no timeout is configured
const DefaultTimeout = 10 * time.Second

// Client is a typed client for the /todos routes
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the server at baseURL.
// A zero timeout uses DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the server address this client targets
func (c *Client) BaseURL() string {
	return c.baseURL
}

// updateBody omits fields that are not being changed
type updateBody struct {
	Task      *string `json:"task,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

type createBody struct {
	Task     string `json:"task"`
	Priority string `json:"priority,omitempty"`
}

// List returns all todos, or only those matching completed when it is set
func (c *Client) List(ctx context.Context, completed *bool) ([]*models.Todo, error) {
	path := "/todos"
	if completed != nil {
		path += "?completed=" + strconv.FormatBool(*completed)
	}

	var todos []*models.Todo
	if err := c.do(ctx, http.MethodGet, path, nil, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// Get returns a single todo
func (c *Client) Get(ctx context.Context, id int) (*models.Todo, error) {
	var t models.Todo
	if err := c.do(ctx, http.MethodGet, todoPath(id), nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Create adds a todo. An empty priority lets the server apply its default.
func (c *Client) Create(ctx context.Context, task, priority string) (*models.Todo, error) {
	var t models.Todo
	if err := c.do(ctx, http.MethodPost, "/todos", createBody{Task: task, Priority: priority}, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Update applies patch to the todo with the given id
func (c *Client) Update(ctx context.Context, id int, patch models.TodoPatch) (*models.Todo, error) {
	body := updateBody{Task: patch.Task, Completed: patch.Completed}

	var t models.Todo
	if err := c.do(ctx, http.MethodPut, todoPath(id), body, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// CompleteAll marks every todo completed
func (c *Client) CompleteAll(ctx context.Context) error {
	return c.do(ctx, http.MethodPut, "/todos/complete-all", nil, nil)
}

// Delete removes the todo with the given id
func (c *Client) Delete(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, todoPath(id), nil, nil)
}

func todoPath(id int) string {
	return "/todos/" + strconv.Itoa(id)
}

// do sends a request and decodes a JSON response into out when out is non-nil.
// The server's plain-text not-found reply maps to models.ErrTodoNotFound.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return ClassifyServerError(c.baseURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if resp.StatusCode == http.StatusNotFound && string(msg) == models.NotFoundMessage {
			return models.ErrTodoNotFound
		}
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
