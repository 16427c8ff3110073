package model

// Category supports a parent/child hierarchy through ParentID even though the
// dashboard renders the list flat.
type Category struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Image          string  `json:"image"`
	ProductCount   int     `json:"productCount"`
	DisplayOrder   int     `json:"displayOrder"`
	ParentID       *string `json:"parentId"`
	Level          int     `json:"level"`
	SeoTitle       string  `json:"seoTitle"`
	SeoDescription string  `json:"seoDescription"`
	SeoKeywords    string  `json:"seoKeywords"`
}

func (c Category) EntityID() string { return c.ID }
