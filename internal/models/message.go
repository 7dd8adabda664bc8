package models

// Message is a room chat entry. Username and ProfilePicture are snapshots of
// the sender at send time and are not updated when the sender changes them.
type Message struct {
	BaseModel

	Content        string `gorm:"not null" json:"content"`
	RoomID         uint   `gorm:"not null;index" json:"roomId"`
	UserID         uint   `gorm:"not null;index" json:"userId"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
	Pinned         bool   `gorm:"default:false" json:"pinned"`

	// Relationships
	Room Room `gorm:"foreignKey:RoomID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	User User `gorm:"foreignKey:UserID" json:"-"`
}
