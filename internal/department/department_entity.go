package department

type Department struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"size:100;not null"`
}

func (Department) TableName() string { return "departments" }
