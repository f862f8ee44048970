package serial

// Serial menyimpan nomor terakhir yang sudah dibagikan untuk satu ref.
type Serial struct {
	ID         int    `gorm:"primaryKey"`
	Ref        string `gorm:"size:64;not null;uniqueIndex"`
	LastNumber int64  `gorm:"not null;default:0"`
}

func (Serial) TableName() string { return "serials" }
