// Package filestorage names the public locations of uploaded files.
// File contents are handled by the upload front end; only the path is produced here.
package filestorage

import (
	"fmt"
	"strings"
	"time"
)

// CertificatesDir is the subdirectory for certificate uploads
const CertificatesDir = "certificates"

// Locator builds the public URL an uploaded file is served from
type Locator interface {
	URLFor(subPath, fileName string, uploadedAt time.Time) string
}

// PublicLocator places files under a URL prefix, named <unix-millis>_<fileName>
type PublicLocator struct {
	baseURL string
}

// NewPublicLocator creates a locator rooted at baseURL (e.g. "/uploads")
func NewPublicLocator(baseURL string) *PublicLocator {
	return &PublicLocator{baseURL: strings.TrimRight(baseURL, "/")}
}

// URLFor implements Locator
func (l *PublicLocator) URLFor(subPath, fileName string, uploadedAt time.Time) string {
	name := fmt.Sprintf("%d_%s", uploadedAt.UnixMilli(), fileName)
	if subPath == "" {
		return l.baseURL + "/" + name
	}
	return l.baseURL + "/" + strings.Trim(subPath, "/") + "/" + name
}
