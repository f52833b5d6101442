package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFilename(t *testing.T) {
	c := newTestClient(t, "https://api.example.com")

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty", "", ""},
		{"quoted", `attachment; filename="x.csv"`, "x.csv"},
		{"unquoted", `attachment; filename=plain.txt`, "plain.txt"},
		{"encoded", `attachment; filename*=UTF-8''report%20final.pdf`, "report final.pdf"},
		{"encoded with language", `attachment; filename*=utf-8'en'na%C3%AFve.txt`, "naïve.txt"},
		{"encoded preferred", `attachment; filename="fallback.pdf"; filename*=UTF-8''real.pdf`, "real.pdf"},
		{"case insensitive", `attachment; FILENAME="upper.pdf"`, "upper.pdf"},
		{"no filename", `inline`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.extractFilename(tt.header))
		})
	}
}

func TestExtractFilename_Diagnostics(t *testing.T) {
	log, buf := newBufferLogger()
	c := newTestClient(t, "https://api.example.com", func(cfg *Config) {
		cfg.Logger = log
	})

	assert.Empty(t, c.extractFilename(`attachment; filename`))
	assert.Contains(t, buf.String(), "unrecognized Content-Disposition format")

	assert.Empty(t, c.extractFilename(`attachment; filename*=UTF-8''bad%zz.pdf`))
	assert.Contains(t, buf.String(), "failed to decode filename")
}
