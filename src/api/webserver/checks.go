package webserver

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	aicore "github.com/verilens/factcheck-api/src/ai/core"
	"github.com/verilens/factcheck-api/src/ai/prompt"
	"github.com/verilens/factcheck-api/src/api/config"
	"github.com/verilens/factcheck-api/src/api/data"
	"github.com/verilens/factcheck-api/src/api/types"
	"github.com/verilens/factcheck-api/src/logging"
)

// Fixed response messages; the upstream error text only rides along as
// "details" outside production.
const (
	errMissingInput = "Either a URL or a title is required."
	errBadKey       = "Invalid or missing API key. Check the server configuration."
	errBadModel     = "Invalid model configuration. Check the server configuration."
	errQuota        = "API quota exceeded. Please try again later."
	errGeneric      = "Failed to check the claim. Please try again later."
)

type Checks struct {
	ai    aicore.Client
	cache *data.VerdictCache
	store *data.CheckStore
	prod  bool
}

func NewChecks(cfg config.Config, ai aicore.Client, cache *data.VerdictCache, store *data.CheckStore) Checks {
	return Checks{ai: ai, cache: cache, store: store, prod: cfg.IsProduction()}
}

// Check handles POST /api/check-fact: validate, build the prompt, make
// one upstream call, relay the model's JSON verdict unchanged.
func (h Checks) Check(c *gin.Context) {
	var req types.CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMissingInput})
		return
	}

	var kind, input, built string
	switch {
	case strings.TrimSpace(req.URL) != "":
		kind = types.KindURL
		input = prompt.CleanURL(req.URL)
		built = prompt.ForURL(req.URL)
	case strings.TrimSpace(req.Title) != "":
		kind = types.KindTitle
		input = prompt.CleanTitle(req.Title)
		built = prompt.ForTitle(req.Title)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": errMissingInput})
		return
	}

	id := uuid.NewString()
	c.Header("X-Request-Id", id)

	if raw, ok := h.cache.Get(c.Request.Context(), kind, input); ok {
		c.Data(http.StatusOK, "application/json", []byte(raw))
		return
	}

	start := time.Now()
	raw, err := h.ai.CheckFact(c.Request.Context(), built, aicore.Options{
		SystemPrompt: prompt.SystemInstruction,
	})
	latency := time.Since(start)

	if err == nil {
		var verdict types.Verdict
		if uerr := json.Unmarshal([]byte(raw), &verdict); uerr != nil || verdict.Status == "" {
			log.Printf("check %s: malformed upstream verdict: %v", id, uerr)
			h.fail(c, id, kind, input, logging.UpstreamUnknown, "malformed upstream response")
			return
		}

		h.cache.Put(c.Request.Context(), kind, input, raw)
		h.store.Record(types.CheckRecord{
			ID:          id,
			Kind:        kind,
			Input:       input,
			Status:      verdict.Status,
			Explanation: verdict.Explanation,
			LatencyMS:   latency.Milliseconds(),
			CreatedAt:   time.Now(),
		})

		c.Data(http.StatusOK, "application/json", []byte(raw))
		return
	}

	log.Printf("check %s: upstream error: %v", id, err)
	h.fail(c, id, kind, input, logging.ClassifyUpstream(err), err.Error())
}

func (h Checks) fail(c *gin.Context, id, kind, input string, fk logging.UpstreamKind, details string) {
	status := http.StatusInternalServerError
	msg := errGeneric
	switch fk {
	case logging.UpstreamAuth:
		msg = errBadKey
	case logging.UpstreamConfig:
		msg = errBadModel
	case logging.UpstreamRateLimit:
		status = http.StatusTooManyRequests
		msg = errQuota
	}

	h.store.Record(types.CheckRecord{
		ID:          id,
		Kind:        kind,
		Input:       input,
		Status:      "Error",
		Explanation: fk.String(),
		CreatedAt:   time.Now(),
	})

	body := gin.H{"error": msg}
	if !h.prod {
		body["details"] = details
	}
	c.JSON(status, body)
}
