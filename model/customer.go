package model

type Customer struct {
	DTO
	Name  string `gorm:"not null" json:"name"`
	Phone string `gorm:"size:20;index" json:"phone"`
	Email string `json:"email,omitempty"`
}

type Customers []Customer

type FilterCustomerInput struct {
	Pagination
	SearchKey string `json:"searchKey"`
	Phone     string `json:"phone"`
}
