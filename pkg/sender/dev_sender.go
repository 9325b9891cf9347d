package sender

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/thunderguard-ph/thunderguard/pkg/alert"
)

// DevEmailSender implements the email channel for local development.
// It writes each alert as a text file plus JSON metadata to a directory
// instead of calling Postmark, so the full broadcast path can run without
// credentials.
type DevEmailSender struct {
	dir string
}

// NewDevEmailSender creates a development email sender that saves alerts
// to disk. The directory is created on first delivery.
func NewDevEmailSender(dir string) *DevEmailSender {
	return &DevEmailSender{dir: dir}
}

// Name implements Sender.
func (d *DevEmailSender) Name() string { return "email" }

// emailMetadata is the sidecar JSON saved next to each alert body.
type emailMetadata struct {
	Timestamp string `json:"timestamp"`
	SendTo    string `json:"send_to"`
	Subject   string `json:"subject"`
}

// Deliver saves the alert body and metadata to the configured directory.
// Filesystem problems are environmental by definition here.
func (d *DevEmailSender) Deliver(ctx context.Context, to string, msg alert.Message) error {
	if to == "" {
		return ErrEmptyAddress
	}
	if !ValidEmail(to) {
		return fmt.Errorf("%w: malformed recipient address %q", ErrFatal, to)
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: create output dir: %v", ErrEnvironmental, err)
	}

	now := time.Now()
	base := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405.000"), sanitizeFilename(msg.Subject))

	if err := os.WriteFile(filepath.Join(d.dir, base+".txt"), []byte(msg.Body), 0o644); err != nil {
		return fmt.Errorf("%w: write alert body: %v", ErrEnvironmental, err)
	}

	meta, err := json.MarshalIndent(emailMetadata{
		Timestamp: now.Format(time.RFC3339),
		SendTo:    to,
		Subject:   msg.Subject,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal metadata: %v", ErrFatal, err)
	}
	if err := os.WriteFile(filepath.Join(d.dir, base+".json"), meta, 0o644); err != nil {
		return fmt.Errorf("%w: write metadata: %v", ErrEnvironmental, err)
	}

	return nil
}

// sanitizeRegex matches characters that are not alphanumeric, dash,
// underscore, or dot.
var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename converts a subject line into a safe filename.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "alert"
	}
	return strings.ToLower(s)
}
