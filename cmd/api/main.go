package main

import (
	"context"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/talentbridge/hr-suite/visitor-management-service/internal/adapters/handler"
	"github.com/talentbridge/hr-suite/visitor-management-service/internal/adapters/middleware"
	"github.com/talentbridge/hr-suite/visitor-management-service/internal/adapters/repository"
	"github.com/talentbridge/hr-suite/visitor-management-service/internal/config"
	"github.com/talentbridge/hr-suite/visitor-management-service/internal/core/domain"
	"github.com/talentbridge/hr-suite/visitor-management-service/internal/core/services"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}
	db := client.Database(cfg.MongoDatabase)

	visitorRepo := repository.NewMongoVisitorRepository(db)
	employeeRepo := repository.NewMongoEmployeeRepository(db)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	log.Println("Authenticated with Redis successfully")

	visitorService := services.NewVisitorService(visitorRepo)
	authService := services.NewAuthService(employeeRepo, cfg.JWTPrivateKey, redisClient)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTPublicKey, redisClient)

	visitorHandler := handler.NewVisitorHandler(visitorService)
	authHandler := handler.NewAuthHandler(authService)
	healthHandler := handler.NewHealthHandler(client, redisClient)

	mux := http.NewServeMux()

	// Health endpoints (OpenShift compatible)
	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/health/ready", healthHandler.Ready)
	mux.HandleFunc("/health/live", healthHandler.Live)

	// Metrics
	mux.Handle("/metrics", promhttp.Handler())

	// Visitor endpoints
	mux.Handle("POST /create",
		middleware.Metrics("/create", http.HandlerFunc(visitorHandler.Create)),
	)
	mux.Handle("GET /getAllVisitor",
		middleware.Metrics("/getAllVisitor", http.HandlerFunc(visitorHandler.List)),
	)
	mux.Handle("GET /getVisitorById/{id}",
		middleware.Metrics("/getVisitorById/{id}", http.HandlerFunc(visitorHandler.GetByID)),
	)
	mux.Handle("PATCH /updateStatus/{id}/status",
		middleware.Metrics("/updateStatus/{id}/status", http.HandlerFunc(visitorHandler.UpdateStatus)),
	)

	// Auth endpoints
	mux.HandleFunc("POST /login", authHandler.Login)
	mux.Handle("POST /logout",
		authMiddleware.RequireRole([]string{domain.RoleHR}, http.HandlerFunc(authHandler.Logout)),
	)

	root := middleware.CORSMiddleware(cfg.AllowedOrigins)(mux)

	log.Printf("Starting server on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, root); err != nil {
		log.Fatalf("Could not start server: %s\n", err)
	}
}
