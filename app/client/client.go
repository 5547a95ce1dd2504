package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Rakhulsr/go-catalog/app/models/dto"
)

const DefaultPageSize = 12

// APIError is the single error value every failed call produces. Message is
// taken from the response body when it carries one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsNotFound reports whether err carries the 404 marker in its message.
func IsNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "404")
}

type CatalogClient interface {
	GetProducts(ctx context.Context, page, pageSize int) (*dto.ProductPage, error)
	GetProduct(ctx context.Context, id uint) (*dto.ProductInfo, error)
	GetProductTypes(ctx context.Context) ([]dto.ProductTypeResponse, error)
	GetColors(ctx context.Context) ([]dto.ColorResponse, error)
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductInfo, error)
}

type Client struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

func New(baseURL string, logger *slog.Logger) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: 30 * time.Second}, logger)
}

func NewWithHTTPClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
		logger:  logger,
	}
}

func (c *Client) GetProducts(ctx context.Context, page, pageSize int) (*dto.ProductPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))

	var out dto.ProductPage
	if err := c.do(ctx, http.MethodGet, "/products?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetProduct(ctx context.Context, id uint) (*dto.ProductInfo, error) {
	var out dto.ProductInfo
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetProductTypes(ctx context.Context) ([]dto.ProductTypeResponse, error) {
	var out []dto.ProductTypeResponse
	if err := c.do(ctx, http.MethodGet, "/product-types", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetColors(ctx context.Context) ([]dto.ColorResponse, error) {
	var out []dto.ColorResponse
	if err := c.do(ctx, http.MethodGet, "/colors", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductInfo, error) {
	var out dto.ProductInfo
	if err := c.do(ctx, http.MethodPost, "/products", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out interface{}) error {
	err := c.roundTrip(ctx, method, endpoint, body, out)
	if err != nil {
		c.logger.ErrorContext(ctx, "API request failed", "endpoint", endpoint, "error", err)
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, endpoint string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp, respBody),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// errorMessage prefers a "message" then an "error" field from a JSON body.
// A JSON body with neither yields "Error: <status>"; a body that is not JSON
// yields "Error: <status> <status text>".
func errorMessage(resp *http.Response, body []byte) string {
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Sprintf("Error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	for _, key := range []string{"message", "error"} {
		if s, ok := payload[key].(string); ok && s != "" {
			return s
		}
	}
	return fmt.Sprintf("Error: %d", resp.StatusCode)
}
