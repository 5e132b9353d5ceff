// Package models defines the core data structures shared by the seller
// client and the storefront backend.
package models

// UserProfile holds the denormalized display fields for the logged-in seller.
// Absent fields are empty strings, never nil, so a profile is always
// well-formed at the top level.
type UserProfile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	// Optional bank fields.
	HolderName    string `json:"holderName,omitempty"`
	BankName      string `json:"bankName,omitempty"`
	BranchName    string `json:"branchName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
}

// ProfileUpdate is a partial profile change. Nil fields are left untouched
// when merged onto an existing profile.
type ProfileUpdate struct {
	FirstName     *string `json:"firstName,omitempty"`
	LastName      *string `json:"lastName,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	HolderName    *string `json:"holderName,omitempty"`
	BankName      *string `json:"bankName,omitempty"`
	BranchName    *string `json:"branchName,omitempty"`
	AccountNumber *string `json:"accountNumber,omitempty"`
}

// Merge applies the non-nil fields of u on top of p and returns the result.
// Fields absent from u are retained.
func (u ProfileUpdate) Merge(p UserProfile) UserProfile {
	if u.FirstName != nil {
		p.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		p.LastName = *u.LastName
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
	if u.HolderName != nil {
		p.HolderName = *u.HolderName
	}
	if u.BankName != nil {
		p.BankName = *u.BankName
	}
	if u.BranchName != nil {
		p.BranchName = *u.BranchName
	}
	if u.AccountNumber != nil {
		p.AccountNumber = *u.AccountNumber
	}
	return p
}

// Seller is the backend-side seller record.
type Seller struct {
	// ID is the unique identifier for the seller.
	ID string `json:"id"`
	// Email is the login identifier.
	Email string `json:"email"`
	// PasswordHash is the bcrypt hash of the seller's password. Never serialized.
	PasswordHash []byte `json:"-"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone"`

	HolderName    string `json:"holderName,omitempty"`
	BankName      string `json:"bankName,omitempty"`
	BranchName    string `json:"branchName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`

	ShopName        string `json:"shopName,omitempty"`
	ShopDescription string `json:"shopDescription,omitempty"`
}

// Profile projects the seller record onto the client-side profile shape.
func (s Seller) Profile() UserProfile {
	return UserProfile{
		FirstName:     s.FirstName,
		LastName:      s.LastName,
		Email:         s.Email,
		Phone:         s.Phone,
		HolderName:    s.HolderName,
		BankName:      s.BankName,
		BranchName:    s.BranchName,
		AccountNumber: s.AccountNumber,
	}
}

// Product is a storefront catalog entry.
type Product struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	// PriceCents is the unit price in minor currency units.
	PriceCents int64  `json:"priceCents"`
	Stock      int    `json:"stock"`
	CategoryID string `json:"categoryId"`
	ImageURL   string `json:"imageUrl,omitempty"`
	// Deleted marks a soft-deleted product kept for retention cleanup.
	Deleted bool `json:"deleted,omitempty"`
	// UpdatedAt is a unix timestamp bumped on every mutation.
	UpdatedAt int64 `json:"updatedAt"`
}

// OrderStatus defines the set of valid order states.
type OrderStatus string

const (
	// OrderPending is a newly placed order awaiting confirmation.
	OrderPending OrderStatus = "pending"
	// OrderProcessing is a confirmed order being prepared.
	OrderProcessing OrderStatus = "processing"
	// OrderShipped is an order handed to the carrier.
	OrderShipped OrderStatus = "shipped"
	// OrderDelivered is a completed order.
	OrderDelivered OrderStatus = "delivered"
	// OrderCancelled is an order voided by either party.
	OrderCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known order states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Order is a customer order as seen by the seller.
type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customerName"`
	Status       OrderStatus `json:"status"`
	// TotalCents is the order total in minor currency units.
	TotalCents int64 `json:"totalCents"`
	// CreatedAt is a unix timestamp.
	CreatedAt int64 `json:"createdAt"`
}

// Message is a single chat message attached to an order.
type Message struct {
	ID      string `json:"id"`
	OrderID string `json:"orderId"`
	// Sender is "seller" or "customer".
	Sender string `json:"sender"`
	Body   string `json:"body"`
	// SentAt is a unix timestamp.
	SentAt int64 `json:"sentAt"`
}

// ShippingCategory is a named shipping option with a flat fee.
type ShippingCategory struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	FeeCents int64  `json:"feeCents"`
}

// DashboardStats aggregates the numbers shown on the seller dashboard.
type DashboardStats struct {
	ProductCount  int   `json:"productCount"`
	PendingOrders int   `json:"pendingOrders"`
	ShippedOrders int   `json:"shippedOrders"`
	TotalOrders   int   `json:"totalOrders"`
	RevenueCents  int64 `json:"revenueCents"`
}
