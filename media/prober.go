package media

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// ErrNoRecognizer is returned by AltText when no OCR recogniser is set.
var ErrNoRecognizer = errors.New("no text recognizer configured")

// Recognizer extracts text from encoded image data. *ocr.Client
// satisfies it.
type Recognizer interface {
	Recognize(imageData []byte) (string, error)
}

// Config holds prober settings.
type Config struct {
	// BaseDir is the directory relative sources resolve against.
	BaseDir string

	// CacheTTL is how long probe results are kept.
	// Default: 1 hour
	CacheTTL time.Duration

	// MaxBytes limits the size of a loaded resource; negative disables the
	// limit.
	// Default: 32 MiB
	MaxBytes int64
}

// DefaultConfig returns default prober settings
func DefaultConfig() Config {
	return Config{
		CacheTTL: time.Hour,
		MaxBytes: 32 << 20,
	}
}

type sizeResult struct {
	width, height int
}

// Prober loads images and reports their size and recognised text.
// It is safe for concurrent use.
type Prober struct {
	config     Config
	cache      *cache.Cache
	recognizer Recognizer
}

// NewProber creates a prober. Zero CacheTTL and MaxBytes take their
// defaults.
func NewProber(config Config) *Prober {
	defaults := DefaultConfig()
	if config.CacheTTL <= 0 {
		config.CacheTTL = defaults.CacheTTL
	}
	if config.MaxBytes == 0 {
		config.MaxBytes = defaults.MaxBytes
	}
	return &Prober{
		config: config,
		cache:  cache.New(config.CacheTTL, 2*config.CacheTTL),
	}
}

// WithRecognizer returns a prober sharing p's cache that uses r for
// AltText.
func (p *Prober) WithRecognizer(r Recognizer) *Prober {
	c := *p
	c.recognizer = r
	return &c
}

// Config returns the prober settings
func (p *Prober) Config() Config {
	return p.config
}

// ProbeSize returns the intrinsic width and height of src.
func (p *Prober) ProbeSize(ctx context.Context, src string) (int, int, error) {
	key := "size:" + src
	if v, found := p.cache.Get(key); found {
		r := v.(sizeResult)
		return r.width, r.height, nil
	}

	data, err := p.Load(ctx, src)
	if err != nil {
		return 0, 0, err
	}
	w, h, _, err := DecodeSize(data)
	if err != nil {
		return 0, 0, err
	}
	p.cache.Set(key, sizeResult{w, h}, cache.DefaultExpiration)
	return w, h, nil
}

// AltText returns text recognised in src, or "" when the image holds no
// readable text.
func (p *Prober) AltText(ctx context.Context, src string) (string, error) {
	if p.recognizer == nil {
		return "", ErrNoRecognizer
	}
	key := "alt:" + src
	if v, found := p.cache.Get(key); found {
		return v.(string), nil
	}

	data, err := p.Load(ctx, src)
	if err != nil {
		return "", err
	}
	if isSVG(data) {
		return "", nil
	}
	text, err := p.recognizer.Recognize(data)
	if err != nil {
		return "", fmt.Errorf("recognizing text: %w", err)
	}
	p.cache.Set(key, text, cache.DefaultExpiration)
	return text, nil
}

// Flush drops all memoised results.
func (p *Prober) Flush() {
	p.cache.Flush()
}
