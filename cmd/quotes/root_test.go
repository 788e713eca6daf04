package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyConfig(t *testing.T) string {
	t.Helper()
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: error\n"), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return executeContext(t, context.Background(), args...)
}

func executeContext(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

func TestFetchCmd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"_id":"1","content":"Be water.","author":"Bruce Lee","length":9}`)
	}))
	defer srv.Close()

	out, _, err := execute(t, "fetch", "--config", emptyConfig(t), "--endpoint", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Be water. — Bruce Lee\n", out)
}

func TestFetchCmd_DecodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"content":"Be water."}`)
	}))
	defer srv.Close()

	out, _, err := execute(t, "fetch", "--config", emptyConfig(t), "--endpoint", srv.URL)
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, err.Error(), `missing required key: "author"`)
}

func TestFetchCmd_InvalidEndpointFlag(t *testing.T) {
	_, _, err := execute(t, "fetch", "--config", emptyConfig(t), "--endpoint", "not a url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quote.endpoint")
}

func TestFetchCmd_FlagOverridesInvalidConfig(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"content":"Be water.","author":"Bruce Lee"}`)
	}))
	defer srv.Close()

	tests := []struct {
		name string
		env  map[string]string
		file string
		args []string
	}{
		{
			name: "endpoint from env",
			env:  map[string]string{"QUOTES_QUOTE_ENDPOINT": "not a url"},
			args: []string{"--endpoint", srv.URL},
		},
		{
			name: "endpoint from file",
			file: "quote:\n  endpoint: api.quotable.io/random\n",
			args: []string{"--endpoint", srv.URL},
		},
		{
			name: "log level from env",
			env:  map[string]string{"QUOTES_LOG_LEVEL": "loud"},
			args: []string{"--endpoint", srv.URL, "--log-level", "error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := emptyConfig(t)
			if tt.file != "" {
				require.NoError(t, os.WriteFile(path, []byte(tt.file), 0o644))
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			args := append([]string{"fetch", "--config", path}, tt.args...)
			out, _, err := execute(t, args...)
			require.NoError(t, err)
			assert.Equal(t, "Be water. — Bruce Lee\n", out)
		})
	}
}

func TestFetchCmd_InvalidConfigWithoutFlag(t *testing.T) {
	t.Setenv("QUOTES_QUOTE_ENDPOINT", "not a url")

	_, _, err := execute(t, "fetch", "--config", emptyConfig(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quote.endpoint must be an http or https URL")
}

func TestFetchCmd_CancelAbortsRequest(t *testing.T) {
	reached := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(reached)
		<-r.Context().Done()
	}))
	defer srv.Close()

	path := emptyConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errc := make(chan error, 1)
	go func() {
		_, _, err := executeContext(t, ctx, "fetch", "--config", path, "--endpoint", srv.URL)
		errc <- err
	}()

	select {
	case <-reached:
	case <-time.After(2 * time.Second):
		t.Fatal("request never reached the server")
	}
	cancel()

	select {
	case err := <-errc:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "context canceled")
	case <-time.After(2 * time.Second):
		t.Fatal("fetch did not return after cancel")
	}
}

func TestSignalContext_Interrupt(t *testing.T) {
	ctx, stop := signalContext()
	defer stop()

	proc, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, proc.Signal(os.Interrupt))

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("context not cancelled by interrupt")
	}
}

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "quotes dev")
}
