package models

type ArticleType string

const (
	ArticleGuide   ArticleType = "Guide"
	ArticleArticle ArticleType = "Article"
)

// Article is read-only reference content. Content uses a small markup
// subset: **bold**, *italic* and "*   " bullet lines.
type Article struct {
	ID          string      `json:"id" yaml:"id"`
	Title       string      `json:"title" yaml:"title"`
	Category    string      `json:"category" yaml:"category"`
	Type        ArticleType `json:"type" yaml:"type"`
	Description string      `json:"description" yaml:"description"`
	Image       string      `json:"image" yaml:"image"`
	Link        string      `json:"link" yaml:"link"`
	Content     string      `json:"content" yaml:"content"`
}
