package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Zayed4321/FoodHouse-Backend/internal/auth"
	"github.com/Zayed4321/FoodHouse-Backend/internal/config"
	"github.com/Zayed4321/FoodHouse-Backend/internal/db"
	"github.com/Zayed4321/FoodHouse-Backend/internal/model"
	"github.com/Zayed4321/FoodHouse-Backend/internal/repository"
)

type seedProduct struct {
	name        string
	description string
	price       string
	category    string
	quantity    int
}

var seedCategories = []string{"Pizza", "Burgers", "Drinks", "Desserts"}

var seedProducts = []seedProduct{
	{"Margherita Pizza", "Classic pizza with tomato, mozzarella and basil.", "9.50", "Pizza", 40},
	{"Pepperoni Pizza", "Pepperoni, mozzarella and tomato sauce.", "11.00", "Pizza", 40},
	{"Cheese Burger", "Beef patty, cheddar, lettuce and house sauce.", "7.25", "Burgers", 60},
	{"Lemonade", "Fresh-squeezed lemonade.", "2.50", "Drinks", 120},
	{"Chocolate Cake", "Rich chocolate layer cake slice.", "4.75", "Desserts", 30},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)

	if err := seedAdmin(ctx, userRepo); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	created, err := seedCatalog(ctx, categoryRepo, productRepo)
	if err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	log.Printf("Seed completed successfully, %d catalog items created", created)
}

// seedAdmin upserts the administrator account. Credentials default to local
// development values and can be overridden through the environment.
func seedAdmin(ctx context.Context, users repository.UserRepository) error {
	email := getEnv("ADMIN_EMAIL", "admin@foodhouse.local")
	password := getEnv("ADMIN_PASSWORD", "admin-password")

	existing, err := users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		log.Printf("Admin account %s already exists", email)
		return nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &model.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: hashed,
		Answer:       "n/a",
		Role:         model.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("Admin account %s created", email)
	return nil
}

// seedCatalog creates the starter categories and products, skipping any that
// already exist.
func seedCatalog(ctx context.Context, categories repository.CategoryRepository, products repository.ProductRepository) (int, error) {
	created := 0
	byName := make(map[string]*model.Category, len(seedCategories))

	for _, name := range seedCategories {
		existing, err := categories.FindByName(ctx, name)
		if err == nil && existing != nil {
			byName[name] = existing
			continue
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}

		category := &model.Category{Name: name, Slug: slug.Make(name)}
		if err := categories.Create(ctx, category); err != nil {
			return created, err
		}
		byName[name] = category
		created++
	}

	for _, item := range seedProducts {
		if _, err := products.FindBySlug(ctx, slug.Make(item.name)); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}

		price, err := decimal.NewFromString(item.price)
		if err != nil {
			return created, err
		}

		product := &model.Product{
			Name:        item.name,
			Slug:        slug.Make(item.name),
			Description: item.description,
			Price:       price,
			CategoryID:  byName[item.category].ID,
			Quantity:    item.quantity,
		}
		if err := products.Create(ctx, product); err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
