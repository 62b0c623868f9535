package models

import "time"

// All records are addressed by the application-level "id" field (a UUID
// string), never by Mongo's own _id.

type User struct {
	ID        string    `bson:"id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"`
	Name      string    `bson:"name" json:"name"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address   string    `bson:"address,omitempty" json:"address,omitempty"`
	Role      string    `bson:"role" json:"role"` // user or admin
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

type ImageMetadata struct {
	URL      string `bson:"url" json:"url"`
	Filename string `bson:"filename" json:"filename"`
	Size     int64  `bson:"size" json:"size"` // bytes
	Width    int    `bson:"width" json:"width"`
	Height   int    `bson:"height" json:"height"`
}

type Product struct {
	ID          string          `bson:"id" json:"id"`
	Name        string          `bson:"name" json:"name"`
	Description string          `bson:"description" json:"description"`
	Category    string          `bson:"category" json:"category"` // men or women
	Price       float64         `bson:"price" json:"price"`
	Sizes       []string        `bson:"sizes" json:"sizes"`
	Colors      []string        `bson:"colors" json:"colors"`
	Stock       int             `bson:"stock" json:"stock"`
	Images      []ImageMetadata `bson:"images" json:"images"`
	CreatedAt   time.Time       `bson:"created_at" json:"created_at"`
}

type CartItem struct {
	ProductID string  `bson:"product_id" json:"product_id" binding:"required"`
	Quantity  int     `bson:"quantity" json:"quantity" binding:"required"`
	Size      string  `bson:"size" json:"size" binding:"required"`
	Color     string  `bson:"color" json:"color" binding:"required"`
	Price     float64 `bson:"price" json:"price"` // snapshot at add time
}

type Cart struct {
	ID        string     `bson:"id" json:"id"`
	UserID    string     `bson:"user_id" json:"user_id"`
	Items     []CartItem `bson:"items" json:"items"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
}

type OrderItem struct {
	ProductID   string  `bson:"product_id" json:"product_id" binding:"required"`
	ProductName string  `bson:"product_name" json:"product_name"`
	Quantity    int     `bson:"quantity" json:"quantity" binding:"required"`
	Size        string  `bson:"size" json:"size"`
	Color       string  `bson:"color" json:"color"`
	Price       float64 `bson:"price" json:"price"`
}

type Order struct {
	ID              string      `bson:"id" json:"id"`
	UserID          string      `bson:"user_id" json:"user_id"`
	Items           []OrderItem `bson:"items" json:"items"`
	TotalAmount     float64     `bson:"total_amount" json:"total_amount"`
	ShippingAddress string      `bson:"shipping_address" json:"shipping_address"`
	Status          string      `bson:"status" json:"status"`                 // pending, processing, shipped, delivered
	PaymentStatus   string      `bson:"payment_status" json:"payment_status"` // pending, completed
	CreatedAt       time.Time   `bson:"created_at" json:"created_at"`
}

type Category struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
	Type string `bson:"type" json:"type"` // men or women
}

type Wishlist struct {
	ID         string   `bson:"id" json:"id"`
	UserID     string   `bson:"user_id" json:"user_id"`
	ProductIDs []string `bson:"product_ids" json:"product_ids"`
}
