package storefront

import (
	"context"
	"fmt"

	"Elegante/internal/account"
	"Elegante/internal/catalog"
	"Elegante/internal/leads"
)

// Seed loads the fixed demo data: the demo user, four categories, five
// products (four featured) and three testimonials. It is not idempotent;
// callers invoke it exactly once per store.
func Seed(ctx context.Context, st Stores) error {
	if _, err := st.Accounts.CreateUser(ctx, account.NewUser{
		Username: "demo",
		Password: "demo",
	}); err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}

	categoryIDs := map[string]int{}
	for _, nc := range seedCategories {
		c, err := st.Catalog.CreateCategory(ctx, nc)
		if err != nil {
			return fmt.Errorf("seed category %q: %w", nc.Slug, err)
		}
		categoryIDs[c.Slug] = c.ID
	}

	for _, sp := range seedProducts {
		np := sp.product
		np.CategoryID = categoryIDs[sp.categorySlug]
		if _, err := st.Catalog.CreateProduct(ctx, np); err != nil {
			return fmt.Errorf("seed product %q: %w", np.Slug, err)
		}
	}

	for _, nt := range seedTestimonials {
		if _, err := st.Leads.CreateTestimonial(ctx, nt); err != nil {
			return fmt.Errorf("seed testimonial %q: %w", nt.Name, err)
		}
	}

	return nil
}

var seedCategories = []catalog.NewCategory{
	{
		Name:     "Rings",
		Slug:     "rings",
		ImageURL: "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?auto=format&fit=crop&w=600&h=600&q=80",
	},
	{
		Name:     "Necklaces",
		Slug:     "necklaces",
		ImageURL: "https://images.unsplash.com/photo-1611652022419-a9419f74613c?auto=format&fit=crop&w=600&h=600&q=80",
	},
	{
		Name:     "Earrings",
		Slug:     "earrings",
		ImageURL: "https://images.unsplash.com/photo-1589128777073-53586befb9f8?auto=format&fit=crop&w=600&h=600&q=80",
	},
	{
		Name:     "Bracelets",
		Slug:     "bracelets",
		ImageURL: "https://images.unsplash.com/photo-1588891825655-aa240a492fe0?auto=format&fit=crop&w=600&h=600&q=80",
	},
}

type seedProduct struct {
	categorySlug string
	product      catalog.NewProduct
}

var seedProducts = []seedProduct{
	{
		categorySlug: "rings",
		product: catalog.NewProduct{
			Name:        "Celestial Diamond Ring",
			Slug:        "celestial-diamond-ring",
			Description: "This exquisite ring features a brilliant-cut diamond surrounded by a halo of smaller diamonds, all set in 18k white gold. The celestial design is inspired by the night sky, creating a timeless piece that captures light from every angle.",
			Price:       "1250.00",
			ImageURL:    "https://images.unsplash.com/photo-1605100804763-247f67b3557e?auto=format&fit=crop&w=600&h=600&q=80",
			Featured:    true,
			Rating:      "4.5",
			Stock:       10,
		},
	},
	{
		categorySlug: "necklaces",
		product: catalog.NewProduct{
			Name:        "Sapphire Cascade Necklace",
			Slug:        "sapphire-cascade-necklace",
			Description: "An elegant cascade of blue sapphires set in white gold, this necklace embodies sophistication and grace. The graduated design creates a waterfall effect that beautifully catches the light.",
			Price:       "2450.00",
			ImageURL:    "https://images.unsplash.com/photo-1602173574767-37ac01994b2a?auto=format&fit=crop&w=600&h=600&q=80",
			Featured:    true,
			Rating:      "5.0",
			Stock:       5,
		},
	},
	{
		categorySlug: "earrings",
		product: catalog.NewProduct{
			Name:        "Emerald Halo Earrings",
			Slug:        "emerald-halo-earrings",
			Description: "These stunning earrings feature vibrant emeralds surrounded by a halo of diamonds, creating a perfect balance of color and sparkle. The secure post backs ensure comfortable wear all day long.",
			Price:       "1850.00",
			ImageURL:    "https://images.unsplash.com/photo-1633810273562-3f0c4895bc7c?auto=format&fit=crop&w=600&h=600&q=80",
			Featured:    true,
			Rating:      "4.0",
			Stock:       8,
		},
	},
	{
		categorySlug: "bracelets",
		product: catalog.NewProduct{
			Name:        "Pearl Infinity Bracelet",
			Slug:        "pearl-infinity-bracelet",
			Description: "This delicate bracelet features lustrous freshwater pearls connected by an infinity symbol crafted in 18k gold. A timeless piece that represents endless elegance and can be worn for any occasion.",
			Price:       "890.00",
			ImageURL:    "https://images.unsplash.com/photo-1561828995-aa79a2db86dd?auto=format&fit=crop&w=600&h=600&q=80",
			Featured:    true,
			Rating:      "4.5",
			Stock:       15,
		},
	},
	{
		categorySlug: "rings",
		product: catalog.NewProduct{
			Name:        "Diamond Eternity Band",
			Slug:        "diamond-eternity-band",
			Description: "A classic eternity band featuring a continuous circle of round brilliant diamonds set in platinum. This ring symbolizes never-ending love and makes a perfect anniversary gift.",
			Price:       "1750.00",
			ImageURL:    "https://images.unsplash.com/photo-1605101479435-005f9c563944?auto=format&fit=crop&w=600&h=600&q=80",
			Featured:    false,
			Rating:      "4.8",
			Stock:       7,
		},
	},
}

var seedTestimonials = []leads.NewTestimonial{
	{
		Name:      "Rebecca Thompson",
		Location:  "New York, NY",
		Content:   "The engagement ring I purchased exceeded all expectations. The craftsmanship is exquisite and the diamonds catch light in a way I've never seen before. The personal service made the experience even more special.",
		Rating:    5,
		AvatarURL: strPtr("https://randomuser.me/api/portraits/women/44.jpg"),
	},
	{
		Name:      "Michael Chen",
		Location:  "Los Angeles, CA",
		Content:   "Working with the custom design team was a dream. They took my vague ideas and created a necklace that perfectly captures my style. The attention to detail and quality is unmatched. Worth every penny.",
		Rating:    5,
		AvatarURL: strPtr("https://randomuser.me/api/portraits/men/32.jpg"),
	},
	{
		Name:      "Sophia Martinez",
		Location:  "Chicago, IL",
		Content:   "I've purchased several pieces from Elegante over the years and have always been impressed. Their anniversary collection is stunning and the compliments I receive when wearing their pieces are endless.",
		Rating:    4,
		AvatarURL: strPtr("https://randomuser.me/api/portraits/women/68.jpg"),
	},
}

func strPtr(s string) *string { return &s }
