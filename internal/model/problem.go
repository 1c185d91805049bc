package model

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

type Problem struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	PlatformID  string          `json:"platform_id" gorm:"not null;uniqueIndex:idx_platform_problem"`
	Platform    string          `json:"platform" gorm:"not null;uniqueIndex:idx_platform_problem"` // "leetcode", "hackerrank", ...
	Title       string          `json:"title" gorm:"not null"`
	Difficulty  string          `json:"difficulty" gorm:"not null"`
	Description string          `json:"description" gorm:"type:text"`
	URL         string          `json:"url,omitempty"`
	Examples    json.RawMessage `json:"examples,omitempty" gorm:"type:jsonb"`
	Constraints json.RawMessage `json:"constraints,omitempty" gorm:"type:jsonb"`
	Hints       []Hint          `json:"hints,omitempty" gorm:"foreignKey:ProblemID"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

// ExampleList decodes the stored examples column. Entries may be objects
// with a "content" field or arbitrary values; decoding failures yield nil.
func (p *Problem) ExampleList() []any {
	if len(p.Examples) == 0 {
		return nil
	}
	var examples []any
	if err := json.Unmarshal(p.Examples, &examples); err != nil {
		return nil
	}
	return examples
}
