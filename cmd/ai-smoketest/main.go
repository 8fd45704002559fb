// ai-smoketest runs one real fact check against each requested provider
// and prints the raw verdict. Useful for validating keys and model names
// before deploying.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	aicore "github.com/verilens/factcheck-api/src/ai/core"
	_ "github.com/verilens/factcheck-api/src/ai/providers"
	"github.com/verilens/factcheck-api/src/ai/prompt"
	"github.com/verilens/factcheck-api/src/api/config"
	"github.com/verilens/factcheck-api/src/api/types"
)

var (
	providersFlag = flag.String("providers", "gemini", "Comma-separated provider list or 'all'")
	modelFlag     = flag.String("model", "", "Override model name")
	urlFlag       = flag.String("url", "", "URL to check")
	titleFlag     = flag.String("title", "The moon landing happened in 1969", "Title to check when no URL is given")
	timeoutFlag   = flag.Duration("timeout", 45*time.Second, "Per-provider timeout")
)

var allProviders = []string{"gemini", "openai"}

func main() {
	log.SetFlags(0)
	flag.Parse()

	cfg := config.Load()

	var built string
	if *urlFlag != "" {
		built = prompt.ForURL(*urlFlag)
	} else {
		built = prompt.ForTitle(*titleFlag)
	}

	for _, provider := range resolveProviders(*providersFlag) {
		if err := runProvider(provider, cfg, built); err != nil {
			log.Printf("[%s] ERROR: %v", provider, err)
		}
	}
}

func runProvider(provider string, cfg config.Config, built string) error {
	client, err := aicore.NewClient(aicore.FactoryConfig{
		Provider:     provider,
		Model:        pickFirst(*modelFlag, cfg.Model),
		SystemPrompt: prompt.SystemInstruction,
		GeminiKey:    cfg.GeminiKey,
		OpenAIKey:    cfg.OpenAIKey,
	})
	if err != nil {
		return fmt.Errorf("client init: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	start := time.Now()
	raw, err := client.CheckFact(ctx, built, aicore.Options{})
	if err != nil {
		return err
	}

	var verdict types.Verdict
	if err := json.Unmarshal([]byte(raw), &verdict); err != nil {
		return fmt.Errorf("malformed verdict %q: %w", raw, err)
	}

	fmt.Printf("=== %s (%.1fs)\nstatus:      %s\nexplanation: %s\n",
		provider, time.Since(start).Seconds(), verdict.Status, verdict.Explanation)
	return nil
}

func resolveProviders(spec string) []string {
	if strings.EqualFold(strings.TrimSpace(spec), "all") {
		return allProviders
	}
	var out []string
	for _, p := range strings.Split(spec, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func pickFirst(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
