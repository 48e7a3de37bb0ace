package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/marketcrew/mc-cli/internal/domain"
	"github.com/marketcrew/mc-cli/internal/ports"
)

const maxErrorBodyBytes = 1 << 20

// Client talks to the MarketCrew backend over its JSON/form HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ ports.BackendClient = (*Client)(nil)

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileSchema struct {
	BrandName string `json:"brand_name"`
	Industry  string `json:"industry"`
	Audience  string `json:"audience"`
	Tone      string `json:"tone"`
	Goals     string `json:"goals"`
	Products  string `json:"products"`
}

type loginResponse struct {
	Token       string         `json:"token"`
	UserProfile *profileSchema `json:"user_profile"`
}

type generateRequest struct {
	BrandName string   `json:"brand_name"`
	Industry  string   `json:"industry"`
	Audience  string   `json:"audience"`
	Tone      string   `json:"tone"`
	Goals     string   `json:"goals"`
	Products  []string `json:"products"`
}

type generateResponse struct {
	Content map[string]string `json:"content"`
}

type accessRequestBody struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (c *Client) Register(ctx context.Context, email, password string) error {
	response, err := c.postJSON(ctx, "/auth/register", "", credentialsRequest{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	defer func() { _ = response.Body.Close() }()

	if err := checkAuthStatus(response); err != nil {
		return err
	}

	return nil
}

func (c *Client) Login(ctx context.Context, email, password string) (ports.LoginResult, error) {
	response, err := c.postJSON(ctx, "/auth/login", "", credentialsRequest{Email: email, Password: password})
	if err != nil {
		return ports.LoginResult{}, fmt.Errorf("login: %w", err)
	}
	defer func() { _ = response.Body.Close() }()

	if err := checkAuthStatus(response); err != nil {
		return ports.LoginResult{}, err
	}

	var payload loginResponse
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return ports.LoginResult{}, fmt.Errorf("decode login response: %w", err)
	}
	if strings.TrimSpace(payload.Token) == "" {
		return ports.LoginResult{}, fmt.Errorf("login response missing token")
	}

	return ports.LoginResult{
		Token:   payload.Token,
		Profile: fromProfileSchema(payload.UserProfile),
	}, nil
}

func (c *Client) Generate(ctx context.Context, token, requestID string, profile domain.BrandProfile) (domain.ContentSet, error) {
	body := generateRequest{
		BrandName: profile.BrandName,
		Industry:  profile.Industry,
		Audience:  profile.Audience,
		Tone:      string(profile.Tone),
		Goals:     profile.Goals,
		Products:  profile.ProductList(),
	}

	response, err := c.postJSON(ctx, "/generate", token, body, withRequestID(requestID))
	if err != nil {
		return domain.ContentSet{}, fmt.Errorf("generate: %w", err)
	}
	defer func() { _ = response.Body.Close() }()

	if err := checkStatus(response); err != nil {
		return domain.ContentSet{}, fmt.Errorf("generate: %w", err)
	}

	var payload generateResponse
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return domain.ContentSet{}, fmt.Errorf("decode generate response: %w", err)
	}

	return contentSetFromPayload(payload.Content), nil
}

func (c *Client) SendEmail(ctx context.Context, token, toEmail string) error {
	form := url.Values{}
	form.Set("to_email", toEmail)

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/deliver/email", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create email request: %w", err)
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	setBearer(request, token)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer func() { _ = response.Body.Close() }()

	if err := checkStatus(response); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	return nil
}

func (c *Client) Download(ctx context.Context, token, brandName string, dst io.Writer) error {
	endpoint := c.baseURL + "/deliver/download?brand_name=" + url.QueryEscape(brandName)
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create download request: %w", err)
	}
	setBearer(request, token)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}
	defer func() { _ = response.Body.Close() }()

	if err := checkStatus(response); err != nil {
		return fmt.Errorf("download: %w", err)
	}

	if _, err := io.Copy(dst, response.Body); err != nil {
		return fmt.Errorf("write download stream: %w", err)
	}

	return nil
}

func (c *Client) RequestAccess(ctx context.Context, req ports.AccessRequest) error {
	response, err := c.postJSON(ctx, "/request-access", "", accessRequestBody{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		return fmt.Errorf("request access: %w", err)
	}
	defer func() { _ = response.Body.Close() }()

	if err := checkStatus(response); err != nil {
		return fmt.Errorf("request access: %w", err)
	}

	return nil
}

type requestOption func(*http.Request)

func withRequestID(requestID string) requestOption {
	return func(r *http.Request) {
		if requestID != "" {
			r.Header.Set("X-Request-ID", requestID)
		}
	}
}

func (c *Client) postJSON(ctx context.Context, path, token string, body any, opts ...requestOption) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	setBearer(request, token)
	for _, opt := range opts {
		opt(request)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}

	return response, nil
}

func setBearer(request *http.Request, token string) {
	if strings.TrimSpace(token) != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
}

// checkAuthStatus maps non-2xx auth responses to domain.AuthError, keeping
// the backend's detail when it sent one.
func checkAuthStatus(response *http.Response) error {
	if response.StatusCode >= 200 && response.StatusCode <= 299 {
		return nil
	}

	return &domain.AuthError{Detail: readDetail(response.Body)}
}

func checkStatus(response *http.Response) error {
	if response.StatusCode >= 200 && response.StatusCode <= 299 {
		return nil
	}

	detail := readDetail(response.Body)
	if detail == "" {
		return fmt.Errorf("status %d", response.StatusCode)
	}

	return fmt.Errorf("status %d: %s", response.StatusCode, detail)
}

func readDetail(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBodyBytes))
	if err != nil {
		return ""
	}

	var payload errorResponse
	if err := json.Unmarshal(data, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}

	return strings.TrimSpace(string(data))
}

func contentSetFromPayload(raw map[string]string) domain.ContentSet {
	if len(raw) == 0 {
		return domain.ContentSet{}
	}

	artifacts := make(map[domain.ArtifactKind]string, len(raw))
	for key, text := range raw {
		kind, err := domain.ParseArtifactKind(key)
		if err != nil {
			// Unknown keys from newer backends are dropped rather than failing
			// the whole generation.
			continue
		}
		artifacts[kind] = text
	}

	return domain.ContentSet{Artifacts: artifacts}
}

func fromProfileSchema(schema *profileSchema) *domain.BrandProfile {
	if schema == nil {
		return nil
	}

	tone, err := domain.ParseTone(schema.Tone)
	if err != nil {
		tone = domain.ToneFriendly
	}

	return &domain.BrandProfile{
		BrandName: schema.BrandName,
		Industry:  schema.Industry,
		Audience:  schema.Audience,
		Tone:      tone,
		Goals:     schema.Goals,
		Products:  schema.Products,
	}
}
