package domain

// User email 唯一索引由库强制，冲突在 repo 层转成 ErrConflict
type User struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"size:64;not null" json:"name"`
	Email  string `gorm:"uniqueIndex;size:191;not null" json:"email"`
	RoleID *uint  `gorm:"index" json:"role_id,omitempty"`
}

func (User) TableName() string { return "users" }

type Role struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:64;not null" json:"name"`
}

func (Role) TableName() string { return "role" }

type UserView struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Role  *string `json:"role"`
}
