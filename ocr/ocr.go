//go:build ocr

package ocr

import (
	"fmt"
	"sync"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps a Tesseract instance. Calls are serialised; a Client may be
// shared between goroutines.
type Client struct {
	mu     sync.Mutex
	client *gosseract.Client
	config Config
}

// New creates a client with default settings.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a client with custom settings
func NewWithConfig(config Config) (*Client, error) {
	client := gosseract.NewClient()
	if config.Languages != "" {
		if err := client.SetLanguage(config.Languages); err != nil {
			client.Close()
			return nil, fmt.Errorf("setting language %q: %w", config.Languages, err)
		}
	}
	if config.SingleBlock {
		if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
			client.Close()
			return nil, fmt.Errorf("setting page segmentation: %w", err)
		}
	}
	return &Client{client: client, config: config}, nil
}

// Available reports whether OCR support is compiled in
func Available() bool { return true }

// Close releases OCR resources.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Recognize returns the text found in encoded image data (PNG, JPEG, TIFF,
// ...), folded onto one line and capped at the configured length.
func (c *Client) Recognize(imageData []byte) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}
	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return cleanCaption(text, c.config.MaxLength), nil
}
