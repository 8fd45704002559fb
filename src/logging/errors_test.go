package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyUpstream(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want UpstreamKind
	}{
		{
			name: "invalid key",
			msg:  "googleapi: Error 400: API key not valid. Please pass a valid API key. [reason: API_KEY_INVALID]",
			want: UpstreamAuth,
		},
		{
			name: "key not configured",
			msg:  "gemini: GEMINI_API_KEY not configured",
			want: UpstreamAuth,
		},
		{
			name: "bad model name",
			msg:  "googleapi: Error 404: models/gemini-9.9-ultra is not found for API version v1beta",
			want: UpstreamConfig,
		},
		{
			name: "quota exhausted",
			msg:  "googleapi: Error 429: Resource has been exhausted (e.g. check quota).",
			want: UpstreamRateLimit,
		},
		{
			name: "rate limit",
			msg:  "openAI API error (status 429): rate limit reached for requests",
			want: UpstreamRateLimit,
		},
		{
			name: "auth beats quota",
			msg:  "API_KEY quota exceeded",
			want: UpstreamAuth,
		},
		{
			name: "model beats quota",
			msg:  "model quota exceeded",
			want: UpstreamConfig,
		},
		{
			name: "network failure",
			msg:  "dial tcp: connection refused",
			want: UpstreamUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyUpstream(errors.New(tt.msg)))
		})
	}
}

func TestClassifyUpstreamNil(t *testing.T) {
	assert.Equal(t, UpstreamUnknown, ClassifyUpstream(nil))
}

func TestUpstreamKindString(t *testing.T) {
	assert.Equal(t, "auth", UpstreamAuth.String())
	assert.Equal(t, "config", UpstreamConfig.String())
	assert.Equal(t, "rate_limit", UpstreamRateLimit.String())
	assert.Equal(t, "unknown", UpstreamUnknown.String())
}
