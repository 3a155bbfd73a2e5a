package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Gateway error taxonomy shared by both adapters. Raw provider error bodies
// are logged at the adapter boundary and never wrapped into these errors, so
// they cannot reach an end user.
var (
	ErrAuthenticationFailed = errors.New("payment gateway authentication failed")
	ErrGatewayRejected      = errors.New("payment gateway rejected the request")
	ErrGatewayUnavailable   = errors.New("payment gateway unavailable")
)

const defaultHTTPTimeout = 15 * time.Second

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: defaultHTTPTimeout}
}

// doJSON performs one JSON round trip against a provider. Outcomes:
//   - network error / timeout / 5xx: ErrGatewayUnavailable (caller may retry)
//   - 401/403: ErrAuthenticationFailed
//   - other 4xx: ErrGatewayRejected (terminal, never retried)
//
// The response body is returned for 2xx so the caller can decode it.
func doJSON(ctx context.Context, client *http.Client, provider string, method, url string, headers map[string]string, reqBody any, out any) error {
	var payload io.Reader
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		log.Printf("[gateway][%s] request failed method=%s url=%s err=%v", provider, method, url, err)
		return fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrGatewayUnavailable, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil || len(body) == 0 {
			return nil
		}
		if err := json.Unmarshal(body, out); err != nil {
			log.Printf("[gateway][%s] response decode failed url=%s err=%v", provider, url, err)
			return fmt.Errorf("%w: decoding response: %v", ErrGatewayUnavailable, err)
		}
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		log.Printf("[gateway][%s] auth rejected status=%d url=%s body=%s", provider, resp.StatusCode, url, truncate(body, 512))
		return ErrAuthenticationFailed
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		log.Printf("[gateway][%s] rejected status=%d url=%s body=%s", provider, resp.StatusCode, url, truncate(body, 512))
		return fmt.Errorf("%w: status %d", ErrGatewayRejected, resp.StatusCode)
	default:
		log.Printf("[gateway][%s] unavailable status=%d url=%s body=%s", provider, resp.StatusCode, url, truncate(body, 512))
		return fmt.Errorf("%w: status %d", ErrGatewayUnavailable, resp.StatusCode)
	}
}

func truncate(b []byte, max int) string {
	if len(b) <= max {
		return string(b)
	}
	return string(b[:max]) + "..."
}

func toCents(value float64) int64 {
	return int64(value*100 + 0.5)
}

func fromCents(cents int64) float64 {
	return float64(cents) / 100
}
