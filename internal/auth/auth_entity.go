package auth

// Credential adalah proyeksi tabel employees yang hanya dipakai untuk autentikasi.
type Credential struct {
	ID       string `gorm:"primaryKey"`
	Password string
	Active   string
}

func (Credential) TableName() string { return "employees" }
