package models

type UserAccount struct {
	JsonModel
	Username string `json:"username" gorm:"unique"`
	Password string `json:"-"`
	Banned   bool   `gorm:"default:false" json:"-"`
	LastIp   string `json:"-"`

	Items []ClothingItem `gorm:"foreignKey:OwnerID" json:"-"`
}
