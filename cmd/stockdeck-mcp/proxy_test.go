package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestProxy(serverURL string) *StdioProxy {
	return &StdioProxy{
		serverURL:  serverURL + "/mcp",
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestRunWithIO_ForwardsRequestAndResponse(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/mcp" {
			t.Errorf("Expected /mcp, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{"tools":[]}}`))
	}))
	defer mockServer.Close()

	proxy := newTestProxy(mockServer.URL)

	in := strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}` + "\n")
	var out bytes.Buffer

	if err := proxy.RunWithIO(in, &out); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if resp["id"].(float64) != 1 {
		t.Errorf("Expected id=1, got %v", resp["id"])
	}
	if !strings.HasSuffix(out.String(), "\n") {
		t.Error("Responses must be newline-delimited")
	}
}

func TestRunWithIO_SkipsBlankLines(t *testing.T) {
	var requests int
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{}}`))
	}))
	defer mockServer.Close()

	proxy := newTestProxy(mockServer.URL)

	in := strings.NewReader("\n\n" + `{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n\n")
	var out bytes.Buffer

	if err := proxy.RunWithIO(in, &out); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if requests != 1 {
		t.Errorf("Expected 1 forwarded request, got %d", requests)
	}
}

func TestRunWithIO_ServerErrorBecomesJSONRPCError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer mockServer.Close()

	proxy := newTestProxy(mockServer.URL)

	in := strings.NewReader(`{"jsonrpc":"2.0","id":7,"method":"tools/list"}` + "\n")
	var out bytes.Buffer

	if err := proxy.RunWithIO(in, &out); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var resp struct {
		ID    json.RawMessage `json:"id"`
		Error *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if resp.Error == nil {
		t.Fatal("Expected JSON-RPC error response")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("Expected code -32000, got %d", resp.Error.Code)
	}
	if string(resp.ID) != "7" {
		t.Errorf("Expected original id echoed, got %s", string(resp.ID))
	}
}

func TestRunWithIO_ServerUnavailable(t *testing.T) {
	proxy := newTestProxy("http://localhost:1")

	in := strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n")
	var out bytes.Buffer

	if err := proxy.RunWithIO(in, &out); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "error") {
		t.Error("Expected error response when server is unreachable")
	}
}

func TestExtractID(t *testing.T) {
	if got := extractID([]byte(`{"id":42}`)); string(got) != "42" {
		t.Errorf("Expected 42, got %s", string(got))
	}
	if got := extractID([]byte(`{"id":"abc"}`)); string(got) != `"abc"` {
		t.Errorf("Expected \"abc\", got %s", string(got))
	}
	if got := extractID([]byte(`{}`)); string(got) != "null" {
		t.Errorf("Expected null for missing id, got %s", string(got))
	}
	if got := extractID([]byte(`not json`)); string(got) != "null" {
		t.Errorf("Expected null for malformed input, got %s", string(got))
	}
}

func TestJSONRPCError(t *testing.T) {
	data := jsonRPCError(json.RawMessage("3"), -32000, "server request failed")

	var resp map[string]interface{}
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("Not valid JSON: %v", err)
	}
	if resp["jsonrpc"] != "2.0" {
		t.Errorf("Expected jsonrpc 2.0, got %v", resp["jsonrpc"])
	}
	errObj := resp["error"].(map[string]interface{})
	if errObj["message"] != "server request failed" {
		t.Errorf("Unexpected message: %v", errObj["message"])
	}
}
