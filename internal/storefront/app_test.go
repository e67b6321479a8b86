package storefront_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"DesignerMe/internal/cart"
	"DesignerMe/internal/catalog"
	"DesignerMe/internal/config"
	"DesignerMe/internal/storefront"
)

func newStorefrontTS(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := config.Config{
		JWTSecret:   "test-secret",
		SessionFile: filepath.Join(t.TempDir(), "admin_session.json"),
	}

	_, h := storefront.New(cfg, storefront.HTTPDeps{
		Log:     zap.NewNop(),
		Service: "storefront",
		// Registry: nil
	})

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, c *http.Client, method, url string, body any, headers map[string]string) (*http.Response, []byte) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, url, r)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, raw
}

func TestStorefront_PublicAPI_HappyPath(t *testing.T) {
	ts := newStorefrontTS(t)
	c := &http.Client{}

	{
		resp, _ := doJSON(t, c, http.MethodGet, ts.URL+"/healthz", nil, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("healthz status=%d", resp.StatusCode)
		}
	}

	// Browse the seeded catalog.
	var products []catalog.Product
	{
		resp, raw := doJSON(t, c, http.MethodGet, ts.URL+"/products", nil, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("products status=%d", resp.StatusCode)
		}
		if err := json.Unmarshal(raw, &products); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(products) != 8 {
			t.Fatalf("products=%d, want 8", len(products))
		}
	}

	// Fill the cart: lamp, chair, lamp again.
	{
		for _, id := range []int{1, 2, 1} {
			resp, raw := doJSON(t, c, http.MethodPost, ts.URL+"/cart/items", map[string]any{"product_id": id}, nil)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("add item status=%d body=%s", resp.StatusCode, raw)
			}
		}

		var cr struct {
			Items     []cart.LineItem `json:"items"`
			ItemCount int             `json:"item_count"`
			Total     decimal.Decimal `json:"total"`
		}
		_, raw := doJSON(t, c, http.MethodGet, ts.URL+"/cart", nil, nil)
		if err := json.Unmarshal(raw, &cr); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if cr.ItemCount != 3 || len(cr.Items) != 2 {
			t.Fatalf("cart=%+v", cr)
		}
		if want := decimal.RequireFromString("479.97"); !cr.Total.Equal(want) {
			t.Fatalf("total=%s, want %s", cr.Total, want)
		}
	}

	// Log in as the administrator.
	var accessToken string
	{
		resp, raw := doJSON(t, c, http.MethodPost, ts.URL+"/auth/login", map[string]any{
			"email":    "admin@designerme.com",
			"password": "admin123",
		}, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("login status=%d body=%s", resp.StatusCode, raw)
		}

		var lr struct {
			AccessToken string `json:"access_token"`
		}
		if err := json.Unmarshal(raw, &lr); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if lr.AccessToken == "" {
			t.Fatalf("empty access_token")
		}
		accessToken = lr.AccessToken
	}

	// Admin adds a product; it becomes visible to the public listing.
	{
		resp, raw := doJSON(t, c, http.MethodPost, ts.URL+"/products", map[string]any{
			"name":     "Floor Lamp",
			"price":    "59.99",
			"category": "Lighting",
		}, map[string]string{"Authorization": "Bearer " + accessToken})
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("create product status=%d body=%s", resp.StatusCode, raw)
		}

		var created catalog.Product
		if err := json.Unmarshal(raw, &created); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if created.ID != 9 {
			t.Fatalf("created id=%d, want 9", created.ID)
		}
	}

	// The search param narrows the listing to both lamps now.
	{
		_, raw := doJSON(t, c, http.MethodGet, ts.URL+"/products?search=lamp", nil, nil)
		var got []catalog.Product
		if err := json.Unmarshal(raw, &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("search=lamp products=%d, want 2", len(got))
		}
	}

	// Clearing the shared query restores the full listing.
	{
		resp, _ := doJSON(t, c, http.MethodDelete, ts.URL+"/search", nil, nil)
		if resp.StatusCode != http.StatusNoContent {
			t.Fatalf("clear search status=%d", resp.StatusCode)
		}

		_, raw := doJSON(t, c, http.MethodGet, ts.URL+"/products", nil, nil)
		var got []catalog.Product
		if err := json.Unmarshal(raw, &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(got) != 9 {
			t.Fatalf("products=%d, want 9", len(got))
		}
	}

	// Log out; the admin guard closes again.
	{
		resp, _ := doJSON(t, c, http.MethodPost, ts.URL+"/auth/logout", map[string]any{}, nil)
		if resp.StatusCode != http.StatusNoContent {
			t.Fatalf("logout status=%d", resp.StatusCode)
		}

		resp, _ = doJSON(t, c, http.MethodPost, ts.URL+"/products", map[string]any{
			"name":  "Nope",
			"price": "1.00",
		}, nil)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("unauthenticated create status=%d, want 401", resp.StatusCode)
		}
	}
}

func TestStorefront_SessionSurvivesRestart(t *testing.T) {
	file := filepath.Join(t.TempDir(), "admin_session.json")
	cfg := config.Config{JWTSecret: "test-secret", SessionFile: file}

	app, _ := storefront.New(cfg, storefront.HTTPDeps{Log: zap.NewNop(), Service: "storefront"})
	if _, err := app.Session.Login("admin@designerme.com", "admin123"); err != nil {
		t.Fatalf("login: %v", err)
	}

	// A second composition over the same session file starts
	// authenticated, like a page reload with a cached session.
	app2, h := storefront.New(cfg, storefront.HTTPDeps{Log: zap.NewNop(), Service: "storefront"})
	if !app2.Session.IsAuthenticated() {
		t.Fatalf("session not rehydrated")
	}

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	resp, err := http.Get(ts.URL + "/auth/session")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("session status=%d, want 200", resp.StatusCode)
	}
}
