package parser

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTikaRenderToText(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath, gotContentType = r.Method, r.URL.Path, r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		if len(body) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte("Jane Doe\njane.doe@example.com\n"))
	}))
	defer server.Close()

	renderer := NewTikaRenderer(server.URL+"/", WithTimeout(5*time.Second))
	text, err := renderer.RenderToText(context.Background(), buildTestPDF("ignored"))
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe\njane.doe@example.com\n", text)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/tika", gotPath)
	assert.Equal(t, "application/pdf", gotContentType)
}

func TestTikaUnprocessableIsParseError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte("encrypted document"))
	}))
	defer server.Close()

	_, err := NewTikaRenderer(server.URL).RenderToText(context.Background(), buildTestPDF("x"))
	assert.ErrorIs(t, err, ErrDocumentParse)
}

func TestTikaServerErrorIsNotParseError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := NewTikaRenderer(server.URL).RenderToText(context.Background(), buildTestPDF("x"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDocumentParse)
}

func TestTikaRejectsNonPDFWithoutCallingServer(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	_, err := NewTikaRenderer(server.URL, WithHTTPClient(server.Client())).RenderToText(context.Background(), randomBytes(64))
	assert.ErrorIs(t, err, ErrDocumentParse)
	assert.False(t, called)
}
