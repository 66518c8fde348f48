package model

import "time"

// StatusTemplate is a reusable labeled, colored category (e.g. "Gym") used to
// seed a new activity. OwnerID is empty for system defaults.
type StatusTemplate struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId,omitempty"`
	Label     string    `json:"label"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	IsDefault bool      `json:"isDefault"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultStatusTemplates returns the system default templates every account
// starts with. IDs and timestamps are assigned by the caller.
func DefaultStatusTemplates() []StatusTemplate {
	return []StatusTemplate{
		{Label: "Gym", Color: "#ef4444", Icon: "dumbbell", IsDefault: true},
		{Label: "Bored", Color: "#8b5cf6", Icon: "meh", IsDefault: true},
		{Label: "Food", Color: "#f59e0b", Icon: "utensils", IsDefault: true},
		{Label: "Beach", Color: "#06b6d4", Icon: "umbrella-beach", IsDefault: true},
		{Label: "Movie", Color: "#ec4899", Icon: "film", IsDefault: true},
		{Label: "Do Not Disturb", Color: "#6b7280", Icon: "moon", IsDefault: true},
		{Label: "Study", Color: "#22c55e", Icon: "book", IsDefault: true},
	}
}
