package models

type Task struct {
	BaseModel

	Name      string `gorm:"not null" json:"name"`
	RoomID    uint   `gorm:"not null;index" json:"roomId"`
	Completed bool   `gorm:"default:false" json:"completed"`

	// Relationships
	Room Room `gorm:"foreignKey:RoomID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
