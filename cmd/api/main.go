package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sugar-studio/booking-api/internal/app"
	"github.com/sugar-studio/booking-api/internal/clock"
	"github.com/sugar-studio/booking-api/internal/mail"
	"github.com/sugar-studio/booking-api/internal/storage/mongodb"
	transporthttp "github.com/sugar-studio/booking-api/internal/transport/http"
)

const defaultMongoURI = "mongodb://localhost:27017"
const defaultDatabase = "sugar_studio"
const defaultPort = "5000"
const defaultCORSOrigins = "http://localhost:3000"
const defaultSMTPHost = "smtp.gmail.com"
const defaultSMTPPort = 587
const shutdownTimeout = 10 * time.Second

func main() {
	logger := log.Default()
	_ = godotenv.Load()

	port := env(logger, "PORT", defaultPort)
	mongoURI := env(logger, "MONGODB_URI", defaultMongoURI)
	dbName := env(logger, "MONGODB_DB", defaultDatabase)
	corsEnv := env(logger, "CORS_ORIGINS", defaultCORSOrigins)

	smtpHost := env(logger, "SMTP_HOST", defaultSMTPHost)
	smtpPort := defaultSMTPPort
	if v := os.Getenv("SMTP_PORT"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid SMTP_PORT %q: %v", v, err)
		}
		smtpPort = parsed
	}
	emailUser := os.Getenv("EMAIL_USER")
	emailPass := os.Getenv("EMAIL_PASS")
	if emailUser == "" {
		logger.Printf("WARN: EMAIL_USER not set, invitation sending will fail")
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(startupCtx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("connect to mongo: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := client.Ping(startupCtx, nil); err != nil {
		log.Fatalf("mongo ping: %v", err)
	}
	db := client.Database(dbName)
	if err := mongodb.EnsureIndexes(startupCtx, db); err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}

	mailer, err := mail.NewSMTP(mail.Config{
		Host:     smtpHost,
		Port:     smtpPort,
		Username: emailUser,
		Password: emailPass,
	})
	if err != nil {
		log.Fatalf("smtp setup: %v", err)
	}

	bookingSvc := app.NewBookingService(mongodb.NewBookingRepository(db))
	userSvc := app.NewUserService(mongodb.NewUserRepository(db))
	invitationSvc := app.NewInvitationService(mailer, clock.NewSystem())

	mux := http.NewServeMux()
	mux.HandleFunc("/health", transporthttp.HealthHandler)
	mux.Handle("/bookings", transporthttp.HandleBookings(bookingSvc))
	mux.Handle("/bookings/count/", transporthttp.HandleBookingCount(bookingSvc))
	mux.Handle("/bookings/send-invitation", transporthttp.HandleSendInvitation(invitationSvc, logger))
	mux.Handle("/bookings/", transporthttp.HandleBookingByID(bookingSvc))
	mux.Handle("/users", transporthttp.HandleUsers(userSvc))
	mux.Handle("/users/login", transporthttp.HandleLogin(userSvc))
	mux.Handle("/users/username/", transporthttp.HandleUserByUsername(userSvc))
	mux.Handle("/users/", transporthttp.HandleUserByID(userSvc))
	mux.Handle("/", transporthttp.NotFoundHandler())

	corsOrigins := parseCSV(corsEnv)
	handler := transporthttp.RequestLogger(transporthttp.CORS(corsOrigins, mux), logger)

	server := &http.Server{
		Addr:    ":" + port,
		Handler: handler,
	}

	log.Printf("api listening on :%s", port)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("server error: %v", err)
		}
	case <-stopCtx.Done():
		log.Printf("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("server shutdown error: %v", err)
	}
	log.Printf("server stopped")
}

func env(logger *log.Logger, key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	logger.Printf("WARN: %s not set, using default %s", key, fallback)
	return fallback
}

func parseCSV(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
