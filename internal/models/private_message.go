package models

// PrivateMessage is a one-to-one chat entry. Username and ProfilePicture are
// snapshots of the sender at send time.
type PrivateMessage struct {
	BaseModel

	Content        string `gorm:"not null" json:"content"`
	SenderID       uint   `gorm:"not null;index" json:"senderId"`
	ReceiverID     uint   `gorm:"not null;index" json:"receiverId"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
	Pinned         bool   `gorm:"default:false" json:"pinned"`

	// Relationships
	Sender   User `gorm:"foreignKey:SenderID" json:"-"`
	Receiver User `gorm:"foreignKey:ReceiverID" json:"-"`
}
