package model

import "time"

// Complexity is the three-level estimate used to pick a function comment template.
type Complexity string

const (
	// ComplexitySimple is the default level.
	ComplexitySimple Complexity = "simple"
	// ComplexityMedium marks bodies longer than two lines or containing a return.
	ComplexityMedium Complexity = "medium"
	// ComplexityComplex marks bodies longer than five lines or containing control flow.
	ComplexityComplex Complexity = "complex"
)

// Comment is a synthesized comment targeting one declaration line.
type Comment struct {
	Kind DeclarationKind `json:"type" yaml:"type"`
	Name string          `json:"name" yaml:"name"`
	Line int             `json:"line" yaml:"line"` // 1-based line in the original text
	Text string          `json:"comment" yaml:"comment"`
}

// Stats summarizes a processing run.
type Stats struct {
	Functions     int `json:"functions" yaml:"functions"`
	Classes       int `json:"classes" yaml:"classes"`
	Variables     int `json:"variables" yaml:"variables"`
	CommentsAdded int `json:"commentsAdded" yaml:"comments_added"`
}

// Add accumulates other into s.
func (s Stats) Add(other Stats) Stats {
	return Stats{
		Functions:     s.Functions + other.Functions,
		Classes:       s.Classes + other.Classes,
		Variables:     s.Variables + other.Variables,
		CommentsAdded: s.CommentsAdded + other.CommentsAdded,
	}
}

// ProcessingResult is the outcome of annotating one text. It is a plain value.
type ProcessingResult struct {
	OriginalCode  string    `json:"originalCode" yaml:"original_code"`
	CommentedCode string    `json:"commentedCode" yaml:"commented_code"`
	Structures    Inventory `json:"structures" yaml:"structures"`
	Comments      []Comment `json:"comments" yaml:"comments"`
	Stats         Stats     `json:"stats" yaml:"stats"`
}

// SavedFile describes an annotated file persisted by the file manager.
type SavedFile struct {
	Filename     string `json:"filename"`
	FilePath     Path   `json:"filePath"`
	RelativePath string `json:"relativePath"`
}

// FileReport is the per-file outcome of an annotate run.
type FileReport struct {
	Source    Source
	Stats     Stats
	Saved     *SavedFile
	Diff      string
	Skipped   bool   // unchanged since the last recorded run
	ErrorText string // processing or storage failure, empty on success
}

// HistoryRecord is what the history store keeps per annotated source.
type HistoryRecord struct {
	Path        Path      `json:"path"`
	Hash        string    `json:"hash"`
	Stats       Stats     `json:"stats"`
	Output      string    `json:"output,omitempty"`
	ProcessedAt time.Time `json:"processed_at"`
}

// InventoryEntry pairs a source path with the declarations found in it.
type InventoryEntry struct {
	Path       Path      `json:"path" yaml:"path"`
	Structures Inventory `json:"structures" yaml:"structures"`
}
