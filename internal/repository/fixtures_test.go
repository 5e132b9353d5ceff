package repository

import "github.com/abdullahbaig-27688/yemi-seller/internal/models"

func sellerFixture() *models.Seller {
	return &models.Seller{
		ID:           "s1",
		Email:        "jane@shop.com",
		PasswordHash: []byte("hash"),
		FirstName:    "Jane",
		LastName:     "Doe",
		Phone:        "555",
	}
}

func productFixture() *models.Product {
	return &models.Product{
		ID:          "p1",
		Title:       "Mug",
		Description: "Ceramic mug",
		PriceCents:  1250,
		Stock:       40,
		CategoryID:  "c1",
		ImageURL:    "https://cdn.example.com/mug.png",
		UpdatedAt:   1700000000,
	}
}
