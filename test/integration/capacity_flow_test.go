//go:build integration
// +build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/jaewonk/gpu-admin-go/internal/domain/usage"
	"github.com/jaewonk/gpu-admin-go/internal/domain/view"
	"github.com/jaewonk/gpu-admin-go/pkg/response"
)

func TestLoginAndAuthStatus(t *testing.T) {
	anon := NewHTTPClient(testCtx.Router, "")

	// wrong password rejected
	resp, err := anon.Do(Request{
		Method: http.MethodPost,
		Path:   "/login",
		Body:   nil,
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty login: expected 400, got %d", resp.StatusCode)
	}

	// mutations require a token
	resp, err = anon.Do(Request{
		Method: http.MethodPut,
		Path:   "/pools",
		Body:   map[string]interface{}{"gpu_type": "X", "total": 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous pool write: expected 401, got %d", resp.StatusCode)
	}

	admin := NewHTTPClient(testCtx.Router, testCtx.AdminToken)
	resp, err = admin.Do(Request{Method: http.MethodGet, Path: "/auth/status"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("auth status: expected 200, got %d", resp.StatusCode)
	}
}

func TestUsageRoundTripAndStatus(t *testing.T) {
	client := NewHTTPClient(testCtx.Router, testCtx.AdminToken)

	resp, err := client.Do(Request{
		Method: http.MethodPut,
		Path:   "/pools",
		Body:   map[string]interface{}{"gpu_type": "H100-cap", "total": 4},
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("pool upsert: expected 200, got %d: %s", resp.StatusCode, resp.Body)
	}

	resp, err = client.Do(Request{
		Method: http.MethodPost,
		Path:   "/usage",
		Body: map[string]interface{}{
			"start_date":   "2026-10-01",
			"end_date":     "2026-10-02",
			"gpu_type":     "H100-cap",
			"service_name": "cap-svc",
			"count":        6,
			"source":       "manual",
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("usage create: expected 201, got %d: %s", resp.StatusCode, resp.Body)
	}

	var created usage.Record
	if err := resp.DecodeJSON(&created); err != nil {
		t.Fatal(err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned ID")
	}

	// round trip through the list endpoint
	resp, err = client.Do(Request{Method: http.MethodGet, Path: "/usage"})
	if err != nil {
		t.Fatal(err)
	}
	var records []usage.Record
	if err := resp.DecodeJSON(&records); err != nil {
		t.Fatal(err)
	}
	found := false
	for _, r := range records {
		if r.ID == created.ID && r.GPUType == "H100-cap" && r.Count == 6 {
			found = true
		}
	}
	if !found {
		t.Fatal("created usage record missing from list")
	}

	// over-allocation reported as negative availability, not an error
	resp, err = client.Do(Request{Method: http.MethodGet, Path: "/capacity/status"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("capacity status: expected 200, got %d", resp.StatusCode)
	}
	var rows []view.PoolStatusRow
	if err := resp.DecodeJSON(&rows); err != nil {
		t.Fatal(err)
	}
	for _, row := range rows {
		if row.GPUType == "H100-cap" {
			if row.Available != -2 {
				t.Fatalf("expected available -2, got %d", row.Available)
			}
			return
		}
	}
	t.Fatal("H100-cap missing from capacity status")
}

func TestUsageValidation(t *testing.T) {
	client := NewHTTPClient(testCtx.Router, testCtx.AdminToken)

	resp, err := client.Do(Request{
		Method: http.MethodPost,
		Path:   "/usage",
		Body: map[string]interface{}{
			"start_date":   "2026-10-05",
			"end_date":     "2026-10-01",
			"gpu_type":     "H100-cap",
			"service_name": "cap-svc",
			"count":        1,
			"source":       "manual",
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("inverted range: expected 400, got %d", resp.StatusCode)
	}

	var errResp response.ErrorResponse
	if err := resp.DecodeJSON(&errResp); err != nil {
		t.Fatal(err)
	}
	if errResp.Error == "" {
		t.Fatal("expected an error message")
	}
}
