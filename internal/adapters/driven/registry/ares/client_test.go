package ares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ares-tools/ares-cli/internal/core/domain"
)

const subjectPayload = `{
	"obchodniJmeno": "Acme s.r.o.",
	"ico": "00012345",
	"sidlo": {"textovaAdresa": "Praha 1"}
}`

func TestFetchSubject_Success(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(subjectPayload))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL + "/subjects/"})

	subject, err := client.FetchSubject(context.Background(), "00012345")
	require.NoError(t, err)
	assert.Equal(t, "/subjects/00012345", gotPath)
	assert.Equal(t, "Acme s.r.o.", subject.Name)
	assert.Equal(t, "00012345", subject.ICO)
	assert.Equal(t, "Praha 1", subject.Seat.Text)
}

func TestFetchSubject_NotFoundStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL + "/"})

	_, err := client.FetchSubject(context.Background(), "00012345")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFetchSubject_ServerErrorCollapsesToNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL + "/"})

	_, err := client.FetchSubject(context.Background(), "00012345")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFetchSubject_UnreachableEndpoint(t *testing.T) {
	// Reserve a port, then close it so the connection is refused.
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewClient(Config{BaseURL: url + "/", Timeout: time.Second})

	_, err := client.FetchSubject(context.Background(), "00012345")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFetchSubject_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL + "/"})

	_, err := client.FetchSubject(context.Background(), "00012345")
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
	assert.NotErrorIs(t, err, domain.ErrNotFound, "a decode failure is not a not-found")
}

func TestFetchSubject_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL + "/"})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.FetchSubject(ctx, "00012345")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(Config{})
	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.Equal(t, DefaultTimeout, client.client.Timeout)
}
