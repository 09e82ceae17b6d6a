package ollama_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"breed-bot/api/internal/llm"
	"breed-bot/api/internal/llm/ollama"
)

func TestEngine_Generate(t *testing.T) {
	tests := []struct {
		description string
		status      int
		body        string
		wantKind    llm.FailureKind
		wantAnswer  string
	}{
		{"plain response", http.StatusOK, `{"response":"  สวัสดี  ","done":true}`, 0, "สวัสดี"},
		{"missing response field", http.StatusOK, `{"done":true}`, llm.FailureMalformed, ""},
		{"server error", http.StatusInternalServerError, `boom`, llm.FailureHTTP, ""},
		{"model not found", http.StatusNotFound, `{"error":"model not found"}`, llm.FailureHTTP, ""},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			var got map[string]any
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				req.Equal("/api/generate", r.URL.Path)
				req.NoError(json.NewDecoder(r.Body).Decode(&got))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			e := ollama.New(srv.URL+"/", "llama3.2:1b", time.Second)
			res := e.Generate(context.Background(), llm.Request{Prompt: "hello", MaxTokens: 10, Temperature: 0.3})

			req.Equal(map[string]any{"model": "llama3.2:1b", "prompt": "hello", "stream": false}, got)
			if tt.wantKind != 0 {
				req.False(res.OK())
				req.Equal(tt.wantKind, res.Failure.Kind)
				if tt.wantKind == llm.FailureHTTP {
					req.Equal(tt.status, res.Failure.Status)
				}
				return
			}
			req.True(res.OK())
			req.Equal(tt.wantAnswer, res.Answer)
			req.Empty(res.Reasoning)
		})
	}
}
