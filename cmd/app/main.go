package main

import (
	"database/sql"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"food-order-backend/internal/cart"
	"food-order-backend/internal/config"
	"food-order-backend/internal/dashboard"
	"food-order-backend/internal/feed"
	"food-order-backend/internal/menu"
	"food-order-backend/internal/order"
	"food-order-backend/internal/restaurant"
	"food-order-backend/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()
	ensureSchema(db)

	hub := feed.NewHub()

	userService := user.NewService(user.NewPostgresRepository(db))
	userHandler := user.NewHandler(userService)

	menuService := menu.NewService(menu.NewPostgresRepository(db), hub)
	menuHandler := menu.NewHandler(menuService, userService)

	restaurantHandler := restaurant.NewHandler(
		restaurant.NewService(restaurant.NewPostgresRepository(db), userService, menuService))

	cartService := cart.NewService(newCartRepository(cfg.RedisAddr))
	cartHandler := cart.NewHandler(cartService)

	orderRepo := order.NewPostgresRepository(db)
	orderService := order.NewService(orderRepo, hub)
	orderHandler := order.NewHandler(orderService, cartService, userService)

	dashboardHandler := dashboard.NewHandler(dashboard.NewService(orderRepo, menuService))

	// public surface: auth, restaurant directory, live feeds
	userHandler.RegisterPublicRoutes(app)
	restaurantHandler.RegisterPublicRoutes(app)
	feed.NewHandler(hub).RegisterRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	userHandler.RegisterProtectedRoutes(app)
	cartHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	menuHandler.RegisterProtectedRoutes(app)
	restaurantHandler.RegisterProtectedRoutes(app)
	dashboardHandler.RegisterProtectedRoutes(app)

	log.Fatal(app.Listen(cfg.Addr))
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

// newCartRepository prefers Redis so carts survive restarts; without a
// configured Redis the in-memory store keeps local development working.
func newCartRepository(redisAddr string) cart.Repository {
	if redisAddr == "" {
		log.Println("REDIS_ADDR not set, using in-memory cart store")
		return cart.NewInMemoryRepository()
	}
	client := redis.NewClient(&redis.Options{Addr: redisAddr})
	return cart.NewRedisRepository(client)
}

func ensureSchema(db *sql.DB) {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS users (
		user_id SERIAL PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		full_name TEXT,
		phone TEXT,
		role TEXT NOT NULL DEFAULT 'customer',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TEXT,
		updated_at TEXT
	)`); err != nil {
		panic(err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS menu_items (
		item_id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		price NUMERIC NOT NULL DEFAULT 0,
		category TEXT NOT NULL,
		is_available BOOLEAN NOT NULL DEFAULT TRUE,
		image TEXT,
		hotel_owner_id INT NOT NULL,
		hotel_name TEXT,
		created_at TEXT
	)`); err != nil {
		panic(err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS orders (
		order_id SERIAL PRIMARY KEY,
		order_ref TEXT NOT NULL,
		customer_id INT NOT NULL,
		customer_name TEXT,
		customer_email TEXT,
		customer_phone TEXT,
		hotel_owner_id INT NOT NULL,
		restaurant_name TEXT,
		items JSONB NOT NULL DEFAULT '[]',
		total NUMERIC NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'pending',
		order_time TEXT,
		estimated_time INT NOT NULL DEFAULT 30,
		delivery_address TEXT,
		payment_method TEXT,
		special_instructions TEXT
	)`); err != nil {
		panic(err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS restaurant_profiles (
		hotel_owner_id INT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		address TEXT,
		phone TEXT,
		cuisine_type TEXT,
		opening_hours TEXT
	)`); err != nil {
		panic(err)
	}
}
