package model

type Category struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description,omitempty"`
	Icon        string `db:"icon" json:"icon,omitempty"`
	ImageURL    string `db:"image_url" json:"imageUrl,omitempty"`
}
