package taskclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client calls the tasks API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	language   string
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLanguage sets Accept-Language so error descriptions come back localized.
func WithLanguage(lang string) Option {
	return func(c *Client) {
		c.language = lang
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) CreateTask(ctx context.Context, req TaskWriteRequest) (Task, error) {
	var task Task
	err := c.do(ctx, http.MethodPost, "/tasks", req, http.StatusCreated, &task)
	return task, err
}

func (c *Client) GetTask(ctx context.Context, id uint64) (Task, error) {
	var task Task
	err := c.do(ctx, http.MethodGet, taskPath(id), nil, http.StatusOK, &task)
	return task, err
}

// UpdateTask replaces all fields of the task.
func (c *Client) UpdateTask(ctx context.Context, id uint64, req TaskWriteRequest) error {
	return c.do(ctx, http.MethodPatch, taskPath(id), req, http.StatusNoContent, nil)
}

func (c *Client) DeleteTask(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, taskPath(id), nil, http.StatusNoContent, nil)
}

func (c *Client) ListTasks(ctx context.Context, opts ListOptions) ([]Task, error) {
	query := url.Values{}
	if opts.OrderByDate != "" {
		query.Set("orderByDate", string(opts.OrderByDate))
	}
	if opts.TaskStatus != "" {
		query.Set("taskStatus", string(opts.TaskStatus))
	}

	path := "/tasks"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var tasks []Task
	err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK, &tasks)
	return tasks, err
}

func taskPath(id uint64) string {
	return "/tasks/" + strconv.FormatUint(id, 10)
}

func (c *Client) do(ctx context.Context, method, path string, body any, wantStatus int, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("taskclient: encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("taskclient: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.language != "" {
		req.Header.Set("Accept-Language", c.language)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("taskclient: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("taskclient: read response: %w", err)
	}

	if resp.StatusCode != wantStatus {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if len(data) > 0 {
			// A body that is not an ErrorResponse still yields the status.
			_ = json.Unmarshal(data, &apiErr.Response)
		}
		return apiErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("taskclient: decode response: %w", err)
	}
	return nil
}
