package entity

import "time"

// NewsPost représente une actualité éditée depuis la console d'administration
// (annonces, menus du jour, événements).
type NewsPost struct {
	ID        string
	Title     string
	Body      string
	Published bool
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
