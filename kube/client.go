// Package kube is a minimal Kubernetes API client for the one call this
// node makes: patching its own pod's game-status label.
package kube

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"
)

const (
	tokenFile = "/var/run/secrets/kubernetes.io/serviceaccount/token"
	caFile    = "/var/run/secrets/kubernetes.io/serviceaccount/ca.crt"

	// connectTimeout is the maximum time to wait for a connection to the
	// API server. Requests themselves are bounded by the caller's context.
	connectTimeout = 3 * time.Second
)

// Client talks to the Kubernetes API server. It deliberately covers only
// the label patch this node performs; the full client-go machinery would
// be orders of magnitude more dependency than one PATCH call needs.
type Client struct {
	baseURL    *url.URL
	token      string
	httpClient *http.Client
}

// NewInCluster builds a client from the pod's service account: API server
// address from the environment, bearer token and CA bundle from the
// mounted secret. Returns an error when not running inside a cluster.
func NewInCluster() (*Client, error) {
	host, port := os.Getenv("KUBERNETES_SERVICE_HOST"), os.Getenv("KUBERNETES_SERVICE_PORT")
	if host == "" || port == "" {
		return nil, fmt.Errorf("not running in a cluster: KUBERNETES_SERVICE_HOST/PORT unset")
	}

	token, err := os.ReadFile(tokenFile)
	if err != nil {
		return nil, fmt.Errorf("read service account token: %w", err)
	}

	caCert, err := os.ReadFile(caFile)
	if err != nil {
		return nil, fmt.Errorf("read cluster CA: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caCert) {
		return nil, fmt.Errorf("parse cluster CA: no certificates found")
	}

	httpClient := &http.Client{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{RootCAs: pool},
			DialContext:     (&net.Dialer{Timeout: connectTimeout}).DialContext,
		},
	}

	return New("https://"+net.JoinHostPort(host, port), string(bytes.TrimSpace(token)), httpClient)
}

// New builds a client against an explicit API server address. Tests use
// this with an httptest server; token may be empty.
func New(baseURL, token string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse API server URL: %w", err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: u, token: token, httpClient: httpClient}, nil
}

// PatchPodLabel sets one label on a pod via a JSON merge patch. One
// attempt, no retry: callers treat the publish as best-effort and the next
// tick overwrites the label anyway.
func (c *Client) PatchPodLabel(ctx context.Context, namespace, pod, key, value string) error {
	patch := map[string]any{
		"metadata": map[string]any{
			"labels": map[string]string{key: value},
		},
	}
	body, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("marshal patch: %w", err)
	}

	target := c.baseURL.JoinPath("api", "v1", "namespaces", namespace, "pods", pod)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, target.String(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/merge-patch+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("patch pod %s/%s: %w", namespace, pod, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("patch pod %s/%s: %s", namespace, pod, resp.Status)
	}
	return nil
}
