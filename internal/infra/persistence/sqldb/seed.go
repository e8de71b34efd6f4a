package sqldb

import (
	"context"

	"marketplace/internal/domain/service"
	"marketplace/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type sampleProduct struct {
	title       string
	price       float64
	currency    string
	description string
	categoryID  uint
	sellerID    uint
	imageURL    string
}

var sampleUsers = []struct {
	username string
	password string
}{
	{"testuser1", "password1"},
	{"testuser2", "password2"},
	{"testuser3", "password3"},
}

var sampleProducts = []sampleProduct{
	{
		title:       "Dell Inspiron 15 - Used Laptop, Great Condition",
		price:       450.00,
		currency:    "EUR",
		description: "Pre-owned Dell Inspiron 15 in excellent working condition, perfect for students and professionals. Well maintained with minimal signs of wear, a budget-friendly alternative to a brand-new device.",
		categoryID:  1,
		sellerID:    2,
		imageURL:    "/static/images/samples/laptop.webp",
	},
	{
		title:       "Apple iPhone 11 - Gently Used, Unlocked",
		price:       350.00,
		currency:    "EUR",
		description: "Gently used iPhone 11, fully functional and unlocked for any carrier. Vibrant Liquid Retina HD display, A13 Bionic chip and excellent battery life at a fraction of the cost of a new one.",
		categoryID:  1,
		sellerID:    3,
		imageURL:    "/static/images/samples/iphone.webp",
	},
	{
		title:       "Bose QuietComfort 35 - Wireless Noise-Canceling Headphones",
		price:       120.00,
		currency:    "EUR",
		description: "Pre-owned Bose QC35 wireless headphones with world-class noise cancellation, soft ear cushions and long battery life. Premium sound quality at an affordable price.",
		categoryID:  2,
		sellerID:    2,
		imageURL:    "/static/images/samples/headphone.webp",
	},
	{
		title:       "Fitbit Versa - Smart Fitness Watch with Heart Rate Monitor",
		price:       80.00,
		currency:    "EUR",
		description: "Used Fitbit Versa smartwatch with activity tracking, heart rate and sleep monitoring, and smartphone notifications. Great condition with a responsive touchscreen and long battery life.",
		categoryID:  2,
		sellerID:    3,
		imageURL:    "/static/images/samples/watch.webp",
	},
	{
		title:       "Men's Genuine Leather Jacket - Pre-Owned, Stylish & Durable",
		price:       60.00,
		currency:    "EUR",
		description: "Classic men's leather jacket crafted from genuine leather. Well kept, warm and durable, with a comfortable fit and timeless design.",
		categoryID:  3,
		sellerID:    2,
		imageURL:    "/static/images/samples/jacket.webp",
	},
	{
		title:       "Graphic Print Cotton T-Shirt - Casual Wear, Used",
		price:       10.00,
		currency:    "EUR",
		description: "Breathable cotton t-shirt with a modern graphic print. Pre-owned but in good condition, pairs well with jeans, shorts or joggers.",
		categoryID:  3,
		sellerID:    3,
		imageURL:    "/static/images/samples/tshirt.webp",
	},
	{
		title:       "Philips High-Speed Blender - Pre-Owned, Works Perfectly",
		price:       25.00,
		currency:    "EUR",
		description: "Used Philips blender in excellent working condition with durable stainless steel blades and multiple speed settings. Compact and easy to clean.",
		categoryID:  4,
		sellerID:    2,
		imageURL:    "/static/images/samples/blender.webp",
	},
	{
		title:       "Nespresso Espresso Coffee Maker - Used, Fully Functional",
		price:       50.00,
		currency:    "EUR",
		description: "Pre-owned Nespresso espresso machine, fully functional, delivering rich and aromatic coffee with the press of a button. Compact, stylish and easy to use.",
		categoryID:  4,
		sellerID:    3,
		imageURL:    "/static/images/samples/coffee_maker.webp",
	},
	{
		title:       "Python Programming for Beginners - Used Book",
		price:       15.00,
		currency:    "EUR",
		description: "Well-maintained introduction to Python programming covering fundamental concepts, hands-on exercises and real-world examples.",
		categoryID:  5,
		sellerID:    2,
		imageURL:    "/static/images/samples/python_book.webp",
	},
	{
		title:       "Data Science Essentials - Second-Hand Book, Like New",
		price:       20.00,
		currency:    "EUR",
		description: "Second-hand book on data science basics covering machine learning, data analysis and visualization. Excellent condition with no missing pages.",
		categoryID:  5,
		sellerID:    3,
		imageURL:    "/static/images/samples/data_science_book.webp",
	},
	{
		title:       "Classic Ceramic Coffee Mug - Durable & Stylish",
		price:       12.00,
		currency:    "EUR",
		description: "Classic ceramic coffee mug with a comfortable handle. Gently used but still in great condition and ideal for everyday use.",
		categoryID:  4,
		sellerID:    1,
		imageURL:    "/static/images/samples/coffee_mug.webp",
	},
}

// SeedSamples inserts the test users and sample products used in development.
// Existing rows are left untouched, so the seeder can run repeatedly.
func SeedSamples(ctx context.Context, db *gorm.DB, hasher service.PasswordHasher) error {
	if err := seedSampleUsers(ctx, db, hasher); err != nil {
		return err
	}

	return seedSampleProducts(ctx, db)
}

func seedSampleUsers(ctx context.Context, db *gorm.DB, hasher service.PasswordHasher) error {
	for _, user := range sampleUsers {
		var count int64
		if err := db.WithContext(ctx).
			Model(&model.UserModel{}).
			Where("username = ?", user.username).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check sample user")
		}
		if count > 0 {
			continue
		}

		hash, err := hasher.Hash(user.password)
		if err != nil {
			return errors.Wrap(err, "failed to hash sample password")
		}

		userM := model.UserModel{Username: user.username, PasswordHash: hash}
		if err := db.WithContext(ctx).Create(&userM).Error; err != nil {
			return errors.Wrap(err, "failed to insert sample user")
		}
	}

	return nil
}

func seedSampleProducts(ctx context.Context, db *gorm.DB) error {
	for _, product := range sampleProducts {
		var count int64
		if err := db.WithContext(ctx).
			Model(&model.ProductModel{}).
			Where("title = ?", product.title).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check sample product")
		}
		if count > 0 {
			continue
		}

		productM := model.ProductModel{
			Title:       product.title,
			Price:       product.price,
			Currency:    product.currency,
			Description: product.description,
			ImageURL:    product.imageURL,
			CategoryID:  product.categoryID,
			SellerID:    product.sellerID,
		}
		if err := db.WithContext(ctx).Create(&productM).Error; err != nil {
			return errors.Wrap(err, "failed to insert sample product")
		}
	}

	return nil
}
