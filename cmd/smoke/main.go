package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

// Smoke-tests a running backend: search, results, favorites, chat.
// Usage: go run ./cmd/smoke [baseURL]

const defaultBaseURL = "http://localhost:3000/api"

func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

func sendRequest(baseURL, method, url string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{} // No timeout: the search call waits on the model
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func step(baseURL, name, method, url string, body interface{}) bool {
	bold := color.New(color.Bold)
	bold.Printf("\n=== %s (%s %s) ===\n", name, method, url)

	resp, respBody, err := sendRequest(baseURL, method, url, body)
	if err != nil {
		color.Red("request failed: %v", err)
		return false
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		color.Red("status %d, non-JSON body: %s", resp.StatusCode, string(respBody))
		return false
	}
	prettyPrint(parsed)

	if resp.StatusCode >= 400 {
		color.Red("FAIL: status %d", resp.StatusCode)
		return false
	}
	color.Green("OK: status %d", resp.StatusCode)
	return true
}

func main() {
	baseURL := defaultBaseURL
	if len(os.Args) > 1 {
		baseURL = os.Args[1]
	}

	searchBody := map[string]interface{}{
		"mode": "CASUAL",
		"budget": map[string]interface{}{
			"max":      800,
			"currency": "USD",
			"country":  "United States",
		},
		"goals":            []string{"PHOTOGRAPHY", "BATTERY"},
		"camera_priority":  "HIGH",
		"battery_priority": "HIGH",
	}

	ok := step(baseURL, "Submit preferences", "POST", "/advisor/v1/search", searchBody)
	ok = step(baseURL, "Get current results", "GET", "/advisor/v1/search", nil) && ok
	ok = step(baseURL, "Toggle favorite", "POST", "/favorite/v1/toggle", map[string]string{"id": "smoke-test-id"}) && ok
	ok = step(baseURL, "List favorites", "GET", "/favorite/v1", nil) && ok
	ok = step(baseURL, "Open chat", "POST", "/chat/v1/open", nil) && ok
	ok = step(baseURL, "Send chat message", "POST", "/chat/v1/message", map[string]string{"chat": "Which of these has the best battery?"}) && ok

	fmt.Println()
	if !ok {
		color.Red("Smoke test finished with failures")
		os.Exit(1)
	}
	color.Green("Smoke test passed")
}
