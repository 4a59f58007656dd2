package category

import "github.com/carson-networks/finance-tracker/internal/service"

// Category is the API response model for a category.
type Category struct {
	ID       int64  `json:"id" doc:"Category ID"`
	UserID   int64  `json:"userId" doc:"Owning user ID"`
	Name     string `json:"name" doc:"Category name"`
	Type     string `json:"type" doc:"Either income or expense"`
	ParentID *int64 `json:"parentId,omitempty" doc:"Parent category ID, absent for root categories"`
	IsActive bool   `json:"isActive" doc:"Whether the category is active"`
}

func fromService(c service.Category) Category {
	return Category{
		ID:       c.ID,
		UserID:   c.UserID,
		Name:     c.Name,
		Type:     string(c.Type),
		ParentID: c.ParentID,
		IsActive: c.IsActive,
	}
}
