package models

type User struct {
	BaseModel

	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash   string `gorm:"not null" json:"-"`
	Username       string `gorm:"not null" json:"username"`
	ProfilePicture string `json:"profilePicture"`
	Role           string `gorm:"index" json:"role,omitempty"`         // "manager", "member" or unset
	ReferralCode   string `gorm:"index" json:"referralCode,omitempty"` // managers only
	ManagerID      *uint  `gorm:"index" json:"managerId,omitempty"`    // members only

	// Relationships
	Manager *User  `gorm:"foreignKey:ManagerID" json:"-"`
	Rooms   []Room `gorm:"foreignKey:ManagerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
