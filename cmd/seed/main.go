package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/GameStore-Ecommerce/gamestore-backend/config"
	"github.com/GameStore-Ecommerce/gamestore-backend/models"
	"github.com/GameStore-Ecommerce/gamestore-backend/services"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main creates an admin account and a starter game catalog
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("GAMESTORE - Admin & Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	seedAdmin()
	seedProducts()

	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/v1/auth/login with email and password")
}

func seedAdmin() {
	email, password, name := getAdminCredentials()

	var existing models.User
	if err := config.Gorm.Where("email = ?", email).First(&existing).Error; err == nil {
		fmt.Printf("❌ User with email '%s' already exists\n", email)
		os.Exit(1)
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}
	log.Printf("✓ Email '%s' is available", email)

	passwordHash, err := services.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	log.Println("✓ Password hashed securely")

	admin := models.User{
		ID:            uuid.Must(uuid.NewV7()),
		Email:         email,
		DisplayName:   name,
		PasswordHash:  passwordHash,
		Provider:      "password",
		IsAdmin:       true,
		EmailVerified: true,
	}

	if err := config.Gorm.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	fmt.Println()
	fmt.Println("✅ Admin Created Successfully!")
	fmt.Printf("ID:    %s\n", admin.ID)
	fmt.Printf("Email: %s\n", admin.Email)
	fmt.Printf("Name:  %s\n", admin.DisplayName)
	fmt.Println()
}

func seedProducts() {
	var count int64
	if err := config.Gorm.Model(&models.Product{}).Count(&count).Error; err != nil {
		log.Fatalf("Database error: %v", err)
	}
	if count > 0 {
		log.Printf("✓ Catalog already has %d products, skipping seed", count)
		return
	}

	originalPrice := func(v float64) *float64 { return &v }

	products := []models.Product{
		{
			Title:         "Horizon Velocity",
			Description:   "Open-world racing across a storm-swept archipelago.",
			Price:         249.90,
			OriginalPrice: originalPrice(299.90),
			Platform:      models.PlatformPS5,
			Category:      models.CategoryRacing,
			Features:      models.StringList{"4K 60fps", "Online multiplayer", "Dynamic weather"},
			Rating:        4.8,
			ReviewCount:   214,
			InStock:       true,
			StockQuantity: 35,
			ReleaseDate:   time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:         "Shadow of the Ancients",
			Description:   "Action RPG set in a crumbling empire of forgotten gods.",
			Price:         299.90,
			Platform:      models.PlatformPS5,
			Category:      models.CategoryRPG,
			Features:      models.StringList{"100+ hour campaign", "New Game+"},
			Rating:        4.9,
			ReviewCount:   531,
			InStock:       true,
			StockQuantity: 18,
			ReleaseDate:   time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:         "Striker League 26",
			Description:   "The definitive football sim with revamped career mode.",
			Price:         199.90,
			OriginalPrice: originalPrice(279.90),
			Platform:      models.PlatformXboxSeries,
			Category:      models.CategorySports,
			Features:      models.StringList{"Cross-play", "Ultimate team"},
			Rating:        4.2,
			ReviewCount:   1020,
			InStock:       true,
			StockQuantity: 60,
			ReleaseDate:   time.Date(2025, 8, 22, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:         "Iron Vanguard",
			Description:   "Squad-based tactical shooter with destructible arenas.",
			Price:         149.90,
			Platform:      models.PlatformXboxOne,
			Category:      models.CategoryShooter,
			Rating:        4.0,
			ReviewCount:   87,
			InStock:       false,
			StockQuantity: 0,
			ReleaseDate:   time.Date(2023, 6, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:         "Mystic Realms",
			Description:   "Cozy adventure through hand-painted floating islands.",
			Price:         89.90,
			Platform:      models.PlatformPS4,
			Category:      models.CategoryAdventure,
			Rating:        4.6,
			ReviewCount:   342,
			InStock:       true,
			StockQuantity: 120,
			ReleaseDate:   time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
	}

	for i := range products {
		if err := config.Gorm.Create(&products[i]).Error; err != nil {
			log.Fatalf("Failed to seed product %q: %v", products[i].Title, err)
		}
	}

	log.Printf("✓ Seeded %d products", len(products))
}

func getAdminCredentials() (email, password, name string) {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Admin email: ")
	email, _ = reader.ReadString('\n')
	email = strings.TrimSpace(email)

	fmt.Print("Admin password (min 8 chars): ")
	password, _ = reader.ReadString('\n')
	password = strings.TrimSpace(password)

	fmt.Print("Admin display name: ")
	name, _ = reader.ReadString('\n')
	name = strings.TrimSpace(name)

	if email == "" || len(password) < 8 || name == "" {
		fmt.Println("❌ Invalid input: email, name and a password of at least 8 characters are required")
		os.Exit(1)
	}

	return email, password, name
}
