// Package logging holds the upstream failure classification. Provider
// errors carry no stable types across vendors, so classification matches
// on message text; keeping every substring in one tested function is the
// whole recovery policy.
package logging

import "strings"

// UpstreamKind partitions upstream model failures for HTTP mapping.
type UpstreamKind int

const (
	UpstreamAuth UpstreamKind = iota
	UpstreamConfig
	UpstreamRateLimit
	UpstreamUnknown
)

func (k UpstreamKind) String() string {
	switch k {
	case UpstreamAuth:
		return "auth"
	case UpstreamConfig:
		return "config"
	case UpstreamRateLimit:
		return "rate_limit"
	default:
		return "unknown"
	}
}

// ClassifyUpstream maps an upstream error to a failure kind. The checks
// run in priority order: key problems first, then model configuration,
// then quota exhaustion.
func ClassifyUpstream(err error) UpstreamKind {
	if err == nil {
		return UpstreamUnknown
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "API_KEY"):
		return UpstreamAuth
	case strings.Contains(msg, "model"):
		return UpstreamConfig
	case strings.Contains(msg, "quota") || strings.Contains(msg, "limit"):
		return UpstreamRateLimit
	default:
		return UpstreamUnknown
	}
}
