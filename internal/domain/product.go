package domain

// Product 商品表，category_id 允许悬空（分类被删后仍可展示）
type Product struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Name       string  `gorm:"size:128;not null" json:"name"`
	Price      float64 `gorm:"type:numeric(12,2);not null" json:"price"`
	CategoryID *uint   `gorm:"index" json:"category_id,omitempty"`
}

func (Product) TableName() string { return "products" }

type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:128;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
}

// 线上库沿用单数表名
func (Category) TableName() string { return "category" }

// ProductView 列表/详情的对外投影：分类 id 换成名称，悬空引用输出 null
type ProductView struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category *string `json:"category"`
}
