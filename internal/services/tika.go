package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/go-tika/tika"
)

// ContentExtractor turns a document of any Word-family sub-format into text.
type ContentExtractor interface {
	ExtractContent(ctx context.Context, r io.Reader) (string, error)
}

type TikaExtractor struct {
	client  *tika.Client
	timeout time.Duration
}

// NewTikaExtractor returns a ContentExtractor backed by an Apache Tika server.
// Tika sniffs DOC, DOCX, ODT and RTF itself.
func NewTikaExtractor(serverURL string, timeout time.Duration) *TikaExtractor {
	httpClient := &http.Client{
		Transport: plainTextTransport{base: http.DefaultTransport},
	}
	return &TikaExtractor{
		client:  tika.NewClient(httpClient, serverURL),
		timeout: timeout,
	}
}

// ExtractContent implements ContentExtractor.
func (t *TikaExtractor) ExtractContent(ctx context.Context, r io.Reader) (string, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	content, err := t.client.Parse(ctx, r)
	if err != nil {
		return "", fmt.Errorf("tika parse: %w", err)
	}
	return content, nil
}

// Version reports the Tika server version; used as a startup probe.
func (t *TikaExtractor) Version(ctx context.Context) (string, error) {
	return t.client.Version(ctx)
}

// plainTextTransport asks Tika for plain text rather than XHTML.
type plainTextTransport struct {
	base http.RoundTripper
}

func (p plainTextTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	if req.Header == nil {
		req.Header = make(http.Header)
	}
	req.Header.Set("Accept", "text/plain")
	return p.base.RoundTrip(req)
}
