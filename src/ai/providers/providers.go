package providers

import (
	_ "github.com/verilens/factcheck-api/src/ai/gemini"
	_ "github.com/verilens/factcheck-api/src/ai/openai"
)
