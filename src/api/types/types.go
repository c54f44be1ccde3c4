package types

import "time"

// Registered users
type User struct {
	ID        uint64 `gorm:"primaryKey" json:"-"`
	Name      string `gorm:"size:128;not null" json:"name"`
	Email     string `gorm:"size:256;uniqueIndex;not null" json:"email"`
	Password  string `gorm:"size:128;not null" json:"-"` // bcrypt hash
	CreatedAt time.Time
	Scans     []Scan `gorm:"foreignKey:UserID" json:"-"`
}

// Scan history, one row per verdict issued
type Scan struct {
	ID          uint64    `gorm:"primaryKey" json:"-"`
	PublicID    string    `gorm:"size:36;uniqueIndex;not null" json:"id"`
	UserID      uint64    `gorm:"index;not null" json:"-"`
	Kind        string    `gorm:"size:8;not null" json:"kind"` // news | image
	Verdict     string    `gorm:"size:16;not null" json:"verdict"`
	Confidence  float64   `json:"confidence"`
	Similarity  float64   `json:"similarity"`
	InputHash   string    `gorm:"size:16;index" json:"-"`
	URL         string    `gorm:"size:512" json:"url,omitempty"`
	Explanation string    `gorm:"size:255" json:"explanation,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
}
