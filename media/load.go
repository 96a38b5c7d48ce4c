package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupportedSource is returned for sources that are neither data
	// URIs nor local files.
	ErrUnsupportedSource = errors.New("unsupported image source")

	// ErrTooLarge is returned when a resource exceeds Config.MaxBytes.
	ErrTooLarge = errors.New("image exceeds size limit")
)

// Load returns the raw bytes of src. Relative paths resolve against the
// configured base directory.
func (p *Prober) Load(ctx context.Context, src string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, fmt.Errorf("%w: empty source", ErrUnsupportedSource)
	}

	if strings.HasPrefix(src, "data:") {
		return p.decodeDataURI(src)
	}

	path, err := p.localPath(src)
	if err != nil {
		return nil, err
	}
	return p.readFile(path)
}

func (p *Prober) localPath(src string) (string, error) {
	u, err := url.Parse(src)
	if err != nil {
		return "", fmt.Errorf("parsing source: %w", err)
	}
	switch u.Scheme {
	case "":
		path := filepath.FromSlash(u.Path)
		if !filepath.IsAbs(path) && p.config.BaseDir != "" {
			path = filepath.Join(p.config.BaseDir, path)
		}
		return path, nil
	case "file":
		return filepath.FromSlash(u.Path), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedSource, u.Scheme)
}

func (p *Prober) readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	r := io.Reader(f)
	if p.config.MaxBytes > 0 {
		r = io.LimitReader(f, p.config.MaxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if p.config.MaxBytes > 0 && int64(len(data)) > p.config.MaxBytes {
		return nil, ErrTooLarge
	}
	return data, nil
}

// decodeDataURI decodes "data:[<mediatype>][;base64],<data>".
func (p *Prober) decodeDataURI(src string) ([]byte, error) {
	comma := strings.IndexByte(src, ',')
	if comma < 0 {
		return nil, fmt.Errorf("%w: malformed data URI", ErrUnsupportedSource)
	}
	meta, payload := src[len("data:"):comma], src[comma+1:]

	var data []byte
	if strings.HasSuffix(meta, ";base64") {
		decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
		if err != nil {
			return nil, fmt.Errorf("decoding data URI: %w", err)
		}
		data = decoded
	} else {
		unescaped, err := url.PathUnescape(payload)
		if err != nil {
			return nil, fmt.Errorf("decoding data URI: %w", err)
		}
		data = []byte(unescaped)
	}

	if p.config.MaxBytes > 0 && int64(len(data)) > p.config.MaxBytes {
		return nil, ErrTooLarge
	}
	return bytes.Clone(data), nil
}
