package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketcrew/mc-cli/internal/domain"
	"github.com/marketcrew/mc-cli/internal/ports"
)

func TestLoginReturnsTokenAndProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.com", body["email"])
		assert.Equal(t, "x", body["password"])

		_, _ = fmt.Fprint(w, `{"token":"tok-123","user_profile":{"brand_name":"Acme","industry":"Tech","audience":"Devs","tone":"professional","goals":"grow","products":"widgets, gadgets"}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	result, err := client.Login(context.Background(), "a@b.com", "x")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", result.Token)
	require.NotNil(t, result.Profile)
	assert.Equal(t, "Acme", result.Profile.BrandName)
	assert.Equal(t, domain.ToneProfessional, result.Profile.Tone)
	assert.Equal(t, []string{"widgets", "gadgets"}, result.Profile.ProductList())
}

func TestLoginWithoutProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `{"token":"tok-123"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	result, err := client.Login(context.Background(), "a@b.com", "x")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", result.Token)
	assert.Nil(t, result.Profile)
}

func TestLoginFailureCarriesServerDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = fmt.Fprint(w, `{"detail":"Invalid credentials"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.Login(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)

	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Invalid credentials", authErr.Detail)
}

func TestRegisterFailureWithoutDetailFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	err := client.Register(context.Background(), "a@b.com", "x")
	require.Error(t, err)

	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "authentication failed", authErr.Error())
}

func TestGenerateSendsNormalizedProductsAndBearer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/generate", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.Equal(t, "req-1", r.Header.Get("X-Request-ID"))

		var body struct {
			BrandName string   `json:"brand_name"`
			Tone      string   `json:"tone"`
			Products  []string `json:"products"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Acme", body.BrandName)
		assert.Equal(t, "friendly", body.Tone)
		assert.Equal(t, []string{"a", "b", "c"}, body.Products)

		_, _ = fmt.Fprint(w, `{"content":{"weekly_posts":"Monday post","hashtags":"#acme","unknown_kind":"ignored"}}`)
	}))
	defer server.Close()

	profile := domain.DefaultProfile()
	profile.BrandName = "Acme"
	profile.Products = "a, b ,,c"

	client := NewClient(server.URL, nil)
	content, err := client.Generate(context.Background(), "tok-123", "req-1", profile)
	require.NoError(t, err)
	assert.Equal(t, []domain.ArtifactKind{domain.ArtifactWeeklyPosts, domain.ArtifactHashtags}, content.Kinds())

	text, ok := content.Get(domain.ArtifactWeeklyPosts)
	require.True(t, ok)
	assert.Equal(t, "Monday post", text)
}

func TestGenerateErrorIncludesStatusAndDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = fmt.Fprint(w, `{"detail":"model overloaded"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.Generate(context.Background(), "tok", "req", domain.DefaultProfile())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
	assert.Contains(t, err.Error(), "model overloaded")
}

func TestSendEmailIsFormEncodedAndAuthenticated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/deliver/email", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "to@example.com", r.PostFormValue("to_email"))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	require.NoError(t, client.SendEmail(context.Background(), "tok-123", "to@example.com"))
}

func TestDownloadStreamsBodyWithBrandQueryAndBearer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/deliver/download", r.URL.Path)
		assert.Equal(t, "Acme Co", r.URL.Query().Get("brand_name"))
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte("file-bytes"))
	}))
	defer server.Close()

	var buf bytes.Buffer
	client := NewClient(server.URL, nil)
	require.NoError(t, client.Download(context.Background(), "tok-123", "Acme Co", &buf))
	assert.Equal(t, "file-bytes", buf.String())
}

func TestRequestAccessPostsNameEmailMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/request-access", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Jo", body["name"])
		assert.Equal(t, "jo@example.com", body["email"])
		assert.Equal(t, "hi", body["message"])
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	err := client.RequestAccess(context.Background(), ports.AccessRequest{Name: "Jo", Email: "jo@example.com", Message: "hi"})
	require.NoError(t, err)
}
