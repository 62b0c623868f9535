package models

// Request bodies. Required fields are enforced through gin's binding tags.

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ProfileInput carries the only user fields mutable after registration.
// Email and role are immutable through the public API.
type ProfileInput struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type ProductInput struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Price       float64         `json:"price" binding:"min=0"`
	Sizes       []string        `json:"sizes" binding:"required"`
	Colors      []string        `json:"colors" binding:"required"`
	Stock       *int            `json:"stock"`
	Images      []ImageMetadata `json:"images"`
}

// StockOrDefault returns the submitted stock, or 100 when omitted.
func (in ProductInput) StockOrDefault() int {
	if in.Stock != nil {
		return *in.Stock
	}
	return 100
}

type OrderInput struct {
	Items           []OrderItem `json:"items" binding:"required,dive"`
	ShippingAddress string      `json:"shipping_address" binding:"required"`
	TotalAmount     float64     `json:"total_amount" binding:"required"`
}

type CartUpdateInput struct {
	Items []CartItem `json:"items" binding:"required,dive"`
}

type WishlistAddInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

// UserView is the public shape of a user record, without the password hash.
type UserView struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Role    string `json:"role"`
}

type TokenResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

func NewUserView(u *User) UserView {
	return UserView{
		ID:      u.ID,
		Email:   u.Email,
		Name:    u.Name,
		Phone:   u.Phone,
		Address: u.Address,
		Role:    u.Role,
	}
}
