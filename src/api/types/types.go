package types

import "time"

// CheckRequest is the body of POST /api/check-fact. At least one of the
// two fields must be non-empty; when both are set the URL wins.
type CheckRequest struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Verdict is the schema-constrained answer relayed from the model.
type Verdict struct {
	Status      string `json:"status"`
	Explanation string `json:"explanation"`
}

// Input kinds recorded with each check.
const (
	KindURL   = "url"
	KindTitle = "title"
)

// CheckRecord is the persisted trace of one completed check.
type CheckRecord struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Kind        string    `gorm:"size:8;index" json:"kind"`
	Input       string    `gorm:"size:2048" json:"input"`
	Status      string    `gorm:"size:16;index" json:"status"`
	Explanation string    `gorm:"type:text" json:"explanation"`
	LatencyMS   int64     `json:"latencyMs"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
}
