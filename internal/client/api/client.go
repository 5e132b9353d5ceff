// Package api is the HTTP client for the storefront backend. Each screen
// of the seller app maps to one or two methods here; all protected calls
// attach the bearer token from the session.
package api

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

	"github.com/abdullahbaig-27688/yemi-seller/internal/models"
)

// ErrNotAuthenticated is returned by protected calls made without a token.
var ErrNotAuthenticated = errors.New("not authenticated")

// APIError is a non-2xx response from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// TokenSource supplies the current bearer token, or "" when logged out.
// The session manager satisfies this.
type TokenSource interface {
	Token() string
}

// Client talks to the storefront backend.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// New constructs a Client. httpClient may be nil, in which case
// http.DefaultClient is used.
func New(baseURL string, httpClient *http.Client, tokens TokenSource) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		tokens:  tokens,
	}
}

// do sends a JSON request and decodes the JSON response into out (if out is
// non-nil). When auth is true the call fails with ErrNotAuthenticated unless
// a token is available.
func (c *Client) do(ctx context.Context, method, path string, auth bool, body, out any) error {
	var token string
	if auth {
		token = c.tokens.Token()
		if token == "" {
			return ErrNotAuthenticated
		}
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(msg))}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// LoginResult is the token plus seller record returned by Login and Register.
type LoginResult struct {
	Token  string         `json:"token"`
	Seller *models.Seller `json:"seller"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var res LoginResult
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", false, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Register creates a seller account and returns a token for it.
func (c *Client) Register(ctx context.Context, email, password, firstName, lastName, phone string) (*LoginResult, error) {
	var res LoginResult
	body := map[string]string{
		"email":     email,
		"password":  password,
		"firstName": firstName,
		"lastName":  lastName,
		"phone":     phone,
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", false, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SellerInfo fetches the authenticated seller's record.
func (c *Client) SellerInfo(ctx context.Context) (*models.Seller, error) {
	var seller models.Seller
	if err := c.do(ctx, http.MethodGet, "/api/seller-info", true, nil, &seller); err != nil {
		return nil, err
	}
	return &seller, nil
}

// UpdateProfile replaces the seller's display fields on the backend.
func (c *Client) UpdateProfile(ctx context.Context, p models.UserProfile) error {
	return c.do(ctx, http.MethodPut, "/api/seller/profile", true, p, nil)
}

// UpdateBank replaces the seller's bank settings.
func (c *Client) UpdateBank(ctx context.Context, holder, bank, branch, account string) error {
	body := map[string]string{
		"holderName":    holder,
		"bankName":      bank,
		"branchName":    branch,
		"accountNumber": account,
	}
	return c.do(ctx, http.MethodPut, "/api/seller/bank", true, body, nil)
}

// UpdateShop replaces the seller's shop name and description.
func (c *Client) UpdateShop(ctx context.Context, name, description string) error {
	body := map[string]string{"name": name, "description": description}
	return c.do(ctx, http.MethodPut, "/api/seller/shop", true, body, nil)
}

// productsEnvelope mirrors the backend shape: the list sits under
// "products.data".
type productsEnvelope struct {
	Products struct {
		Data []models.Product `json:"data"`
	} `json:"products"`
}

// ListProducts fetches the seller's live products.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var env productsEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/products", true, nil, &env); err != nil {
		return nil, err
	}
	return env.Products.Data, nil
}

// CreateProduct adds a product and returns the stored record.
func (c *Client) CreateProduct(ctx context.Context, p models.Product) (*models.Product, error) {
	var out models.Product
	if err := c.do(ctx, http.MethodPost, "/api/products", true, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProduct replaces a product's fields and returns the stored record.
func (c *Client) UpdateProduct(ctx context.Context, p models.Product) (*models.Product, error) {
	var out models.Product
	if err := c.do(ctx, http.MethodPut, "/api/products/"+url.PathEscape(p.ID), true, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProduct removes a product from the storefront.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/products/"+url.PathEscape(id), true, nil, nil)
}

// ordersEnvelope mirrors the backend shape: the list sits under
// "orders.data".
type ordersEnvelope struct {
	Orders struct {
		Data []models.Order `json:"data"`
	} `json:"orders"`
}

// ListOrders fetches the seller's orders, optionally filtered by status.
func (c *Client) ListOrders(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	path := "/api/orders"
	if status != "" {
		path += "?status=" + url.QueryEscape(string(status))
	}
	var env ordersEnvelope
	if err := c.do(ctx, http.MethodGet, path, true, nil, &env); err != nil {
		return nil, err
	}
	return env.Orders.Data, nil
}

// UpdateOrderStatus moves an order to a new status.
func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) error {
	body := map[string]models.OrderStatus{"status": status}
	return c.do(ctx, http.MethodPut, "/api/orders/"+url.PathEscape(id)+"/status", true, body, nil)
}

// Messages fetches the chat history of an order, oldest first.
func (c *Client) Messages(ctx context.Context, orderID string) ([]models.Message, error) {
	var env struct {
		Data []models.Message `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/orders/"+url.PathEscape(orderID)+"/messages", true, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// SendMessage appends a seller message to an order chat.
func (c *Client) SendMessage(ctx context.Context, orderID, body string) (*models.Message, error) {
	var out models.Message
	payload := map[string]string{"body": body}
	if err := c.do(ctx, http.MethodPost, "/api/orders/"+url.PathEscape(orderID)+"/messages", true, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ShippingCategories fetches the platform-wide shipping options.
func (c *Client) ShippingCategories(ctx context.Context) ([]models.ShippingCategory, error) {
	var env struct {
		Data []models.ShippingCategory `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/shipping-categories", true, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Dashboard fetches the seller's dashboard numbers.
func (c *Client) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	var env struct {
		Data models.DashboardStats `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/dashboard", true, nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}
