package report

import (
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// MediaKind classifies how a media reference should be resolved.
type MediaKind int

const (
	MediaPath   MediaKind = iota // Local file path
	MediaURL                     // Remote HTTP(S) URL
	MediaBase64                  // Inline base64-encoded payload
)

// dataURIPrefix marks an already-encoded inline payload.
const dataURIPrefix = "data:image"

// base64Pattern is a lenient check for the standard base64 alphabet.
var base64Pattern = regexp.MustCompile(`^([A-Za-z0-9+/]{4})*([A-Za-z0-9+/]{2}==|[A-Za-z0-9+/]{3}=)?$`)

// Media is a user-declared media reference attached to a log entry. It holds
// the raw source only; reading, fetching and encoding happen later, inside
// MediaResolver, so a reference that turns out to be broken degrades to
// "no media" instead of failing the log call.
type Media struct {
	source string
	kind   MediaKind
}

// MediaFromPath creates a media reference for a local file. The file is not
// read or checked for existence here; a missing file surfaces as a warning
// at resolution time.
func MediaFromPath(path string) (*Media, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, errors.New("media file path cannot be empty")
	}
	return &Media{source: trimmed, kind: MediaPath}, nil
}

// MediaFromURL creates a media reference for a remote HTTP(S) resource.
func MediaFromURL(url string) (*Media, error) {
	trimmed := strings.TrimSpace(url)
	if trimmed == "" {
		return nil, errors.New("media URL cannot be empty")
	}

	lower := strings.ToLower(trimmed)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return nil, fmt.Errorf("invalid media URL %q: must start with http:// or https://", trimmed)
	}
	return &Media{source: trimmed, kind: MediaURL}, nil
}

// MediaFromBase64 creates a media reference from an inline base64 payload.
// Input already carrying a data-URI marker passes through unchanged; bare
// payloads are validated against the base64 alphabet and prefixed with a
// default PNG marker.
func MediaFromBase64(encoded string) (*Media, error) {
	trimmed := strings.TrimSpace(encoded)
	if trimmed == "" {
		return nil, errors.New("base64 media payload cannot be empty")
	}

	if strings.HasPrefix(trimmed, dataURIPrefix) {
		return &Media{source: trimmed, kind: MediaBase64}, nil
	}

	if !base64Pattern.MatchString(trimmed) {
		return nil, errors.New("invalid base64 media payload")
	}
	return &Media{source: "data:image/png;base64," + trimmed, kind: MediaBase64}, nil
}

// MediaFromBytes creates a media reference from raw image bytes, such as a
// screenshot taken by an automation driver.
func MediaFromBytes(data []byte) (*Media, error) {
	if len(data) == 0 {
		return nil, errors.New("media byte payload cannot be empty")
	}
	return &Media{
		source: "data:image/png;base64," + base64.StdEncoding.EncodeToString(data),
		kind:   MediaBase64,
	}, nil
}

// Source returns the raw reference source.
func (m *Media) Source() string { return m.source }

// Kind returns the reference classification.
func (m *Media) Kind() MediaKind { return m.kind }

// MediaResolver converts media references into embeddable MediaModel
// payloads. Resolution is fail-open: every error is returned for the caller
// to log and the attachment degrades to absent, so report generation is
// never blocked by a bad attachment.
type MediaResolver struct {
	// Client is used for URL references. Nil means http.DefaultClient.
	Client *http.Client
}

// Resolve turns a media reference into an embeddable payload. It returns
// (nil, err) when the reference cannot be resolved; it never panics.
func (r *MediaResolver) Resolve(m *Media) (*MediaModel, error) {
	if m == nil {
		return nil, errors.New("media reference is nil")
	}

	switch m.kind {
	case MediaBase64:
		return resolveBase64(m.source)
	case MediaPath:
		return resolvePath(m.source)
	case MediaURL:
		return r.resolveURL(m.source)
	default:
		return nil, fmt.Errorf("unsupported media kind %d", m.kind)
	}
}

func resolveBase64(source string) (*MediaModel, error) {
	if source == "" {
		return nil, errors.New("base64 media source is empty")
	}
	if !strings.HasPrefix(source, dataURIPrefix) {
		source = "data:image/png;base64," + source
	}
	return &MediaModel{Data: template.URL(source), Title: "Screenshot (Base64)"}, nil
}

func resolvePath(path string) (*MediaModel, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided media file
	if err != nil {
		return nil, fmt.Errorf("read media file %q: %w", path, err)
	}
	return &MediaModel{
		Data:  dataURI(mimeTypeForPath(path), data),
		Title: filepath.Base(path),
	}, nil
}

func (r *MediaResolver) resolveURL(url string) (*MediaModel, error) {
	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch media URL %q: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch media URL %q: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read media URL %q: %w", url, err)
	}
	return &MediaModel{Data: dataURI("image/png", data), Title: "Screenshot (URL)"}, nil
}

// dataURI encodes raw bytes as a data-URI value safe for direct embedding.
func dataURI(mimeType string, data []byte) template.URL {
	return template.URL(fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data)))
}

func mimeTypeForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	default:
		return "image/png"
	}
}
