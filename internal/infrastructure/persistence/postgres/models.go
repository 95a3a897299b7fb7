package postgres

// UserModel é o model GORM para usuários.
// Usado para criar a tabela e como destino de Scan das consultas SQL.
type UserModel struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	Name   string `gorm:"type:text;not null"`
	Email  string `gorm:"type:text;not null"`
	Active bool   `gorm:"not null;default:true"`
}

func (UserModel) TableName() string {
	return "users"
}
