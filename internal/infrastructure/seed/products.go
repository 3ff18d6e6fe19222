// Package seed holds the sample catalogue loaded by the seed command and by
// the in-memory server.
package seed

import (
	"github.com/shopspring/decimal"
	"github.com/wichananm65/ecommerce-backend/internal/domain/entity"
)

type sample struct {
	name, image, description, brand string
	price, rating                   string
	countInStock, numReviews        int
}

var samples = []sample{
	{
		name:         "Airpods Wireless Bluetooth Headphones",
		image:        "/images/airpods.jpg",
		description:  "Bluetooth technology lets you connect it with compatible devices wirelessly High-quality AAC audio offers immersive listening experience Built-in microphone allows you to take calls while working",
		brand:        "Apple",
		price:        "89.99",
		countInStock: 10,
		rating:       "4.5",
		numReviews:   12,
	},
	{
		name:         "iPhone 11 Pro 256GB Memory",
		image:        "/images/phone.jpg",
		description:  "Introducing the iPhone 11 Pro. A transformative triple-camera system that adds tons of capability without complexity. An unprecedented leap in battery life",
		brand:        "Apple",
		price:        "599.99",
		countInStock: 7,
		rating:       "4.0",
		numReviews:   8,
	},
	{
		name:         "Cannon EOS 80D DSLR Camera",
		image:        "/images/camera.jpg",
		description:  "Characterized by versatile imaging specs, the Canon EOS 80D further clarifies itself using a pair of robust focusing systems and an intuitive design",
		brand:        "Cannon",
		price:        "929.99",
		countInStock: 5,
		rating:       "3",
		numReviews:   12,
	},
	{
		name:         "Sony Playstation 4 Pro White Version",
		image:        "/images/playstation.jpg",
		description:  "The ultimate home entertainment center starts with PlayStation. Whether you are into gaming, HD movies, television, music",
		brand:        "Sony",
		price:        "399.99",
		countInStock: 11,
		rating:       "5",
		numReviews:   12,
	},
	{
		name:         "Logitech G-Series Gaming Mouse",
		image:        "/images/mouse.jpg",
		description:  "Get a better handle on your games with this Logitech LIGHTSYNC gaming mouse. The six programmable buttons allow customization for a smooth playing experience",
		brand:        "Logitech",
		price:        "49.99",
		countInStock: 7,
		rating:       "3.5",
		numReviews:   10,
	},
	{
		name:         "Amazon Echo Dot 3rd Generation",
		image:        "/images/alexa.jpg",
		description:  "Meet Echo Dot - Our most popular smart speaker with a fabric design. It is our most compact smart speaker that fits perfectly into small space",
		brand:        "Amazon",
		price:        "29.99",
		countInStock: 0,
		rating:       "4",
		numReviews:   12,
	},
}

// Products returns fresh copies of the sample catalogue owned by ownerID,
// which may be nil.
func Products(ownerID *int64) []*entity.Product {
	out := make([]*entity.Product, 0, len(samples))
	for _, s := range samples {
		p := entity.NewProduct(ownerID, s.name)
		p.Image = s.image
		p.Description = s.description
		p.Brand = s.brand
		p.Category = "Electronics"
		p.Price = decimal.RequireFromString(s.price)
		p.Rating = decimal.RequireFromString(s.rating)
		p.CountInStock = s.countInStock
		p.NumReviews = s.numReviews
		out = append(out, p)
	}
	return out
}
