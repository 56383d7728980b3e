package main

import (
	"context"
	"log"
	"net/http"

	"github.com/rs/cors"

	"github.com/RitaM5/Learn-Lingo-server/internal/auth"
	"github.com/RitaM5/Learn-Lingo-server/internal/config"
	"github.com/RitaM5/Learn-Lingo-server/internal/database"
	"github.com/RitaM5/Learn-Lingo-server/internal/mailer"
	"github.com/RitaM5/Learn-Lingo-server/internal/payments"
	"github.com/RitaM5/Learn-Lingo-server/internal/routes"
	"github.com/RitaM5/Learn-Lingo-server/internal/store/mongostore"
)

func main() {
	cfg := config.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	client, err := database.ConnectMongoDB(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Fatal("Failed to disconnect from MongoDB:", err)
		}
	}()

	stores := mongostore.New(client, cfg.DatabaseName)

	router := routes.SetupRouter(routes.Deps{
		Users:      stores.Users,
		Courses:    stores.Courses,
		Selections: stores.Selections,
		Payments:   stores.Payments,
		Tokens:     auth.NewTokenService(cfg.AccessTokenSecret),
		Gateway:    payments.NewStripeGateway(cfg.PaymentSecretKey),
		Mailer:     mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	handler := c.Handler(router)

	log.Printf("Server running on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
