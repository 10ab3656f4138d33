package clamav

import (
	"context"
	"fmt"
	"io"
	"strings"

	clamd "github.com/dutchcoders/go-clamd"
	"github.com/kurochkinivan/pdf_compressor/internal/domain"
)

// Scanner checks uploads against a clamd daemon.
type Scanner struct {
	client *clamd.Clamd
}

// New connects to clamd at a "host:port", "tcp://host:port" or unix socket path address.
func New(address string) (*Scanner, error) {
	if !strings.Contains(address, "://") && !strings.HasPrefix(address, "/") {
		address = "tcp://" + address
	}

	client := clamd.NewClamd(address)
	if err := client.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to clamd: %w", err)
	}

	return &Scanner{client: client}, nil
}

// Scan returns domain.ErrInfected wrapped with the threat names when clamd finds something.
func (s *Scanner) Scan(ctx context.Context, r io.Reader) error {
	// clamd drops the connection once abort is closed
	abort := make(chan bool)
	stop := context.AfterFunc(ctx, func() { close(abort) })
	defer func() {
		if stop() {
			close(abort)
		}
	}()

	results, err := s.client.ScanStream(r, abort)
	if err != nil {
		return fmt.Errorf("failed to scan stream: %w", err)
	}

	var threats []string
	for result := range results {
		if result.Status == clamd.RES_FOUND {
			threats = append(threats, result.Description)
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if len(threats) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInfected, strings.Join(threats, ", "))
	}

	return nil
}
