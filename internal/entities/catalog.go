package entities

import "time"

// User is a registered account. Only the bcrypt hash of the password is
// stored; the hash never appears in JSON responses.
type User struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	Username     string   `gorm:"uniqueIndex;size:80" json:"username"`
	PasswordHash string   `gorm:"size:200" json:"-"`
	Reviews      []Review `gorm:"foreignKey:UserID" json:"-"`
}

// Book is a catalog entry. PublishedDate is stored as an opaque string and
// is not validated as a calendar date.
type Book struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	Title         string   `gorm:"index;size:200" json:"title"`
	Author        string   `gorm:"index;size:100" json:"author"`
	PublishedDate string   `gorm:"size:20" json:"published_date"`
	Reviews       []Review `gorm:"foreignKey:BookID" json:"-"`
}

// Review is a user's rating of a book. Rating is constrained to [1,5] at the
// handler boundary, not by the schema.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text" json:"content"`
	Rating    int       `json:"rating"`
	UserID    uint      `gorm:"index" json:"user_id"`
	BookID    uint      `gorm:"index" json:"book_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Book      Book      `gorm:"foreignKey:BookID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
