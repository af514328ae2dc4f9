// Package file provides abstractions for reading plugin and translation
// table files from different sources.
package file

import (
	"archive/zip"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ulikunitz/xz"
)

// Source is a sequential input stream. The record codec never seeks, so
// sequential access is all any caller needs.
type Source struct {
	io.ReadCloser
	size int64
	name string
}

// Size returns the number of bytes the stream will yield, or -1 when it
// is unknown (HTTP responses without Content-Length, xz streams).
func (s *Source) Size() int64 {
	return s.size
}

// Name returns the path or URL the source was opened from.
func (s *Source) Name() string {
	return s.name
}

var (
	userAgent  string
	httpClient = &http.Client{}
)

// SetUserAgent sets the User-Agent header used for HTTP fetches.
func SetUserAgent(ua string) {
	userAgent = ua
}

// SetHTTPClientTimeout sets the timeout for HTTP fetches.
func SetHTTPClientTimeout(timeout time.Duration) {
	httpClient.Timeout = timeout
}

// Open opens a local path or HTTP(S) URL for sequential reading.
// A `.xz` suffix is decompressed transparently and a `.zip` archive is
// resolved to its first plugin or table member.
func Open(path string) (*Source, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return openHTTP(path)
	}
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		return openZip(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".xz") {
		xzr, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("open xz stream: %w", err)
		}
		return &Source{ReadCloser: &wrappedStream{r: xzr, c: f}, size: -1, name: path}, nil
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	return &Source{ReadCloser: f, size: stat.Size(), name: path}, nil
}

func openHTTP(url string) (*Source, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("remote returned status %d", resp.StatusCode)
	}

	size := resp.ContentLength
	if strings.EqualFold(filepath.Ext(url), ".xz") {
		xzr, err := xz.NewReader(resp.Body)
		if err != nil {
			resp.Body.Close()
			return nil, fmt.Errorf("open xz stream: %w", err)
		}
		return &Source{ReadCloser: &wrappedStream{r: xzr, c: resp.Body}, size: -1, name: url}, nil
	}
	return &Source{ReadCloser: resp.Body, size: size, name: url}, nil
}

// memberExts are the archive members Open will resolve, in preference
// order. Plugin containers first, then translation tables.
var memberExts = []string{".esm", ".esp", ".csv"}

func openZip(path string) (*Source, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	for _, ext := range memberExts {
		for _, member := range archive.File {
			if !strings.EqualFold(filepath.Ext(member.Name), ext) {
				continue
			}
			rc, err := member.Open()
			if err != nil {
				archive.Close()
				return nil, fmt.Errorf("open zip member %q: %w", member.Name, err)
			}
			return &Source{
				ReadCloser: &zipMember{ReadCloser: rc, archive: archive},
				size:       int64(member.UncompressedSize64),
				name:       path + "!" + member.Name,
			}, nil
		}
	}
	archive.Close()
	return nil, fmt.Errorf("no plugin or table member found in %q", path)
}

// wrappedStream reads from a decoding layer but closes the underlying
// stream.
type wrappedStream struct {
	r io.Reader
	c io.Closer
}

func (w *wrappedStream) Read(p []byte) (int, error) {
	return w.r.Read(p)
}

func (w *wrappedStream) Close() error {
	return w.c.Close()
}

// zipMember closes both the member stream and the archive behind it.
type zipMember struct {
	io.ReadCloser
	archive *zip.ReadCloser
}

func (m *zipMember) Close() error {
	err := m.ReadCloser.Close()
	if cerr := m.archive.Close(); err == nil {
		err = cerr
	}
	return err
}
