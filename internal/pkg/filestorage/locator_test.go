package filestorage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPublicLocator_URLFor(t *testing.T) {
	at := time.UnixMilli(1717000000123)

	l := NewPublicLocator("/uploads/")
	assert.Equal(t, "/uploads/certificates/1717000000123_ol results.pdf", l.URLFor(CertificatesDir, "ol results.pdf", at))
	assert.Equal(t, "/uploads/1717000000123_a.png", l.URLFor("", "a.png", at))
}
