package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/kurochkinivan/pdf_compressor/internal/domain"
)

const (
	fieldFile             = "file"
	fieldCompressionLevel = "compression_level"

	messageRemoteFallback = "failed to process file"
	messageTransport      = "compression service is unreachable"
	messageUnsupported    = "file must be a PDF"
)

// Client submits files to the compression endpoint. One call is one attempt.
type Client struct {
	log        *slog.Logger
	httpClient *http.Client
	endpoint   string
}

func NewClient(log *slog.Logger, httpClient *http.Client, endpoint string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		log:        log,
		httpClient: httpClient,
		endpoint:   endpoint,
	}
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (c *Client) Submit(
	ctx context.Context,
	file domain.CandidateFile,
	level domain.CompressionLevel,
) (*domain.CompressedPayload, error) {
	if !file.IsAccepted() {
		return nil, &domain.SubmissionError{Kind: domain.ErrorKindUnsupportedType, Message: messageUnsupported}
	}

	body, contentType, err := encodeForm(file, level)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	c.log.DebugContext(ctx, "submitting file",
		slog.String("filename", file.Name),
		slog.String("level", string(level)),
		slog.Int64("size", file.Size),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.SubmissionError{
			Kind:    domain.ErrorKindRemoteRejected,
			Message: rejectionMessage(resp.Body),
			Err:     fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(err)
	}

	payload := domain.NewCompressedPayload(data)
	return &payload, nil
}

func encodeForm(file domain.CandidateFile, level domain.CompressionLevel) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, fieldFile, escapeQuotes(file.Name)))
	header.Set("Content-Type", file.MIMEType)

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", err
	}

	if _, err := part.Write(file.Content); err != nil {
		return nil, "", err
	}

	if err := w.WriteField(fieldCompressionLevel, string(level)); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return &buf, w.FormDataContentType(), nil
}

func rejectionMessage(body io.Reader) string {
	var resp errorResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil || resp.Detail == "" {
		return messageRemoteFallback
	}
	return resp.Detail
}

func transportError(err error) error {
	return &domain.SubmissionError{
		Kind:    domain.ErrorKindTransportFailure,
		Message: messageTransport,
		Err:     err,
	}
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
