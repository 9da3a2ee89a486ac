// Package imagecodec converts image references into Base64 data URIs for
// JSON transport, and back.
package imagecodec

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// DefaultMaxBytes caps any single fetched image.
const DefaultMaxBytes = 10 << 20

var ErrEncoding = errors.New("image encoding failed")

// EncodingError is returned for any failure while resolving or encoding a
// source. errors.Is(err, ErrEncoding) holds for every EncodingError.
type EncodingError struct {
	Source string
	Err    error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encode image %q: %v", e.Source, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

func (e *EncodingError) Is(target error) bool { return target == ErrEncoding }

// Source is an image reference. Exactly one of Ref or Data is expected; Data
// wins when both are set. Ref may be a data URI, an http(s) URL, a blob:
// reference into the local blob store, a file:// URL or a bare path.
type Source struct {
	Ref      string
	Data     []byte
	MimeType string
}

func FromRef(ref string) Source { return Source{Ref: ref} }

func FromBytes(data []byte, mimeType string) Source {
	return Source{Data: data, MimeType: mimeType}
}

// IsZero reports whether the source carries nothing to encode.
func (s Source) IsZero() bool { return s.Ref == "" && len(s.Data) == 0 }

func (s Source) String() string {
	if len(s.Data) > 0 {
		return fmt.Sprintf("<%d bytes>", len(s.Data))
	}
	if strings.HasPrefix(s.Ref, "data:") {
		return "data:..."
	}
	return s.Ref
}

type Encoder struct {
	httpClient *http.Client
	blobRoot   string
	maxBytes   int64
}

// NewEncoder returns an encoder that resolves blob: references relative to
// blobRoot. A nil client gets a 30 second timeout.
func NewEncoder(httpClient *http.Client, blobRoot string) *Encoder {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Encoder{
		httpClient: httpClient,
		blobRoot:   blobRoot,
		maxBytes:   DefaultMaxBytes,
	}
}

// Encode resolves src to a Base64 data URI. Valid data URIs pass through
// unchanged.
func (e *Encoder) Encode(ctx context.Context, src Source) (string, error) {
	if len(src.Data) == 0 && strings.HasPrefix(src.Ref, "data:") {
		mimeType, _, err := DecodeDataURI(src.Ref)
		if err != nil {
			return "", &EncodingError{Source: src.String(), Err: err}
		}
		if !strings.HasPrefix(mimeType, "image/") {
			return "", &EncodingError{Source: src.String(), Err: fmt.Errorf("not an image: %s", mimeType)}
		}
		return src.Ref, nil
	}

	data, mimeType, err := e.Fetch(ctx, src)
	if err != nil {
		return "", err
	}
	return EncodeBytes(data, mimeType), nil
}

// Fetch resolves src to raw bytes and a MIME type.
func (e *Encoder) Fetch(ctx context.Context, src Source) ([]byte, string, error) {
	data, mimeType, err := e.resolve(ctx, src)
	if err != nil {
		return nil, "", &EncodingError{Source: src.String(), Err: err}
	}
	if len(data) == 0 {
		return nil, "", &EncodingError{Source: src.String(), Err: errors.New("empty image")}
	}
	if src.MimeType != "" {
		mimeType = src.MimeType
	}
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = mimetype.Detect(data).String()
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, "", &EncodingError{Source: src.String(), Err: fmt.Errorf("not an image: %s", mimeType)}
	}
	return data, stripParams(mimeType), nil
}

func (e *Encoder) resolve(ctx context.Context, src Source) ([]byte, string, error) {
	if len(src.Data) > 0 {
		return src.Data, src.MimeType, nil
	}

	ref := strings.TrimSpace(src.Ref)
	switch {
	case ref == "":
		return nil, "", errors.New("empty source")
	case strings.HasPrefix(ref, "data:"):
		mimeType, data, err := DecodeDataURI(ref)
		return data, mimeType, err
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return e.fetchRemote(ctx, ref)
	case strings.HasPrefix(ref, "blob:"):
		name := strings.TrimPrefix(ref, "blob:")
		if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
			return e.fetchRemote(ctx, name)
		}
		return e.readBlob(name)
	case strings.HasPrefix(ref, "file://"):
		u, err := url.Parse(ref)
		if err != nil {
			return nil, "", err
		}
		return readFile(u.Path)
	case strings.Contains(ref, "://"):
		return nil, "", fmt.Errorf("unsupported scheme in %q", ref)
	default:
		return readFile(ref)
	}
}

func (e *Encoder) fetchRemote(ctx context.Context, rawURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetch returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, e.maxBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read body: %w", err)
	}
	if int64(len(data)) > e.maxBytes {
		return nil, "", fmt.Errorf("image exceeds %d bytes", e.maxBytes)
	}
	return data, resp.Header.Get("Content-Type"), nil
}

func (e *Encoder) readBlob(name string) ([]byte, string, error) {
	if e.blobRoot == "" {
		return nil, "", errors.New("no blob store configured")
	}
	clean := filepath.Clean("/" + name)
	return readFile(filepath.Join(e.blobRoot, clean))
}

func readFile(path string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	return data, mimetype.Detect(data).String(), nil
}

// EncodeBytes renders data as a data URI.
func EncodeBytes(data []byte, mimeType string) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURI parses a Base64 data URI into its MIME type and bytes.
func DecodeDataURI(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, errors.New("not a data URI")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, errors.New("malformed data URI")
	}
	mimeType, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return "", nil, errors.New("data URI is not base64 encoded")
	}
	if mimeType == "" {
		mimeType = "text/plain"
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("invalid base64 payload: %w", err)
	}
	return stripParams(mimeType), data, nil
}

func stripParams(mimeType string) string {
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		return strings.TrimSpace(mimeType[:i])
	}
	return mimeType
}
