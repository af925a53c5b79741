package models

// User is a credential record carried over from the original storage schema.
// No reachable feature reads or writes it; it is migrated so the schema stays
// compatible with a future auth feature. The password is stored as opaque
// text because nothing ever authenticates against it.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Password string `gorm:"size:255;not null" json:"-"`
}
