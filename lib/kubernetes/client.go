package kubernetes

import (
	"context"
	"fmt"
	"log"
	"time"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
)

// ProxyOptions contains options for connecting to the Kubernetes API
type ProxyOptions struct {
	// Host is the kubectl proxy URL used outside a cluster (default: http://localhost:8001)
	Host string
	// Timeout bounds every request made by the client
	Timeout time.Duration
}

// Client represents a kubernetes client
type Client struct {
	Clientset kubernetes.Interface
}

// NewClient creates a client from the in-cluster service account when
// available, falling back to the kubectl proxy address
func NewClient(options ProxyOptions) (*Client, error) {
	config, err := rest.InClusterConfig()
	if err != nil {
		log.Printf("Kubernetes in-cluster config unavailable (%v), using proxy %s", err, options.Host)
		config, err = GetConfigWithHost(options.Host)
		if err != nil {
			return nil, err
		}
	}
	config.Timeout = options.Timeout

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kubernetes client: %w", err)
	}

	return NewClientFromInterface(clientset), nil
}

// NewClientFromInterface wraps an existing clientset
func NewClientFromInterface(clientset kubernetes.Interface) *Client {
	return &Client{Clientset: clientset}
}

// GetConfigWithHost returns a Kubernetes config using the specified kubectl proxy host
func GetConfigWithHost(host string) (*rest.Config, error) {
	if host == "" {
		host = "http://localhost:8001"
	}

	return &rest.Config{
		Host: host,
		// No authentication needed when using kubectl proxy
		TLSClientConfig: rest.TLSClientConfig{
			Insecure: true,
		},
	}, nil
}

// ServerVersion returns the GitVersion reported by the API server.
// The discovery call has no context parameter; the rest.Config timeout bounds
// it and ctx is honoured by returning early.
func (c *Client) ServerVersion(ctx context.Context) (string, error) {
	type result struct {
		version string
		err     error
	}
	done := make(chan result, 1)

	go func() {
		info, err := c.Clientset.Discovery().ServerVersion()
		if err != nil {
			done <- result{err: fmt.Errorf("failed to get server version: %w", err)}
			return
		}
		done <- result{version: info.GitVersion}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.version, r.err
	}
}
