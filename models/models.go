package models

// Collection names understood by this backend. One collection per record type,
// singular, matching the /api/schema contract.
const (
	CollectionUser     = "user"
	CollectionCategory = "category"
	CollectionProduct  = "product"
	CollectionOrder    = "order"
	CollectionWishlist = "wishlist"
)

// CollectionNames returns the fixed set of collections in schema order.
func CollectionNames() []string {
	return []string{
		CollectionUser,
		CollectionCategory,
		CollectionProduct,
		CollectionOrder,
		CollectionWishlist,
	}
}

type User struct {
	Name     string  `json:"name" bson:"name" binding:"required"`
	Email    string  `json:"email" bson:"email" binding:"required"`
	Address  *string `json:"address,omitempty" bson:"address,omitempty"`
	Age      *int    `json:"age,omitempty" bson:"age,omitempty" binding:"omitempty,gte=0,lte=120"`
	IsActive *bool   `json:"is_active" bson:"is_active"`
}

// ApplyDefaults fills fields the client may omit. is_active defaults to true.
func (u *User) ApplyDefaults() {
	if u.IsActive == nil {
		active := true
		u.IsActive = &active
	}
}

type Category struct {
	Name string `json:"name" bson:"name" binding:"required"`
	Slug string `json:"slug" bson:"slug" binding:"required"`
}

// Product price is a pointer so a present 0 passes the required check.
type Product struct {
	Title       string   `json:"title" bson:"title" binding:"required"`
	Description *string  `json:"description,omitempty" bson:"description,omitempty"`
	Price       *float64 `json:"price" bson:"price" binding:"required,gte=0"`
	Category    string   `json:"category" bson:"category" binding:"required"`
	Brand       *string  `json:"brand,omitempty" bson:"brand,omitempty"`
	Image       *string  `json:"image,omitempty" bson:"image,omitempty"`
	InStock     *bool    `json:"in_stock" bson:"in_stock"`
}

func (p *Product) ApplyDefaults() {
	if p.InStock == nil {
		inStock := true
		p.InStock = &inStock
	}
}

// OrderItem is a price/title snapshot taken at order time; product_id is not
// checked against the product collection.
type OrderItem struct {
	ProductID string   `json:"product_id" bson:"product_id" binding:"required"`
	Title     string   `json:"title" bson:"title" binding:"required"`
	Price     *float64 `json:"price" bson:"price" binding:"required,gte=0"`
	Quantity  int      `json:"quantity" bson:"quantity" binding:"required,gte=1"`
}

// Order total is taken as-is from the client; it is not checked against the
// sum of item subtotals.
type Order struct {
	UserEmail       string      `json:"user_email" bson:"user_email" binding:"required"`
	ShippingAddress string      `json:"shipping_address" bson:"shipping_address" binding:"required"`
	PaymentMethod   string      `json:"payment_method" bson:"payment_method" binding:"required,oneof=online cod"`
	Status          string      `json:"status" bson:"status"`
	Items           []OrderItem `json:"items" bson:"items" binding:"required,min=1,dive"`
	Total           *float64    `json:"total" bson:"total" binding:"required,gte=0"`
}

func (o *Order) ApplyDefaults() {
	if o.Status == "" {
		o.Status = "pending"
	}
}

// WishlistItem duplicates are permitted; product_id is not checked against the
// product collection.
type WishlistItem struct {
	UserEmail string `json:"user_email" bson:"user_email" binding:"required"`
	ProductID string `json:"product_id" bson:"product_id" binding:"required"`
}
