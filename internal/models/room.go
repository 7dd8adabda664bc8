package models

type Room struct {
	BaseModel

	Name      string `gorm:"not null" json:"name"`
	ManagerID uint   `gorm:"not null;index" json:"managerId"`

	// Relationships
	Manager  User      `gorm:"foreignKey:ManagerID" json:"-"`
	Tasks    []Task    `gorm:"foreignKey:RoomID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Messages []Message `gorm:"foreignKey:RoomID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
