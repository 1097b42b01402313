package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/hirelink/hirelink/assistant"
	"github.com/hirelink/hirelink/assistant/assistantapi"
	"github.com/hirelink/hirelink/assistant/assistantinfra"
	"github.com/hirelink/hirelink/assistant/assistantsrv"
	"github.com/hirelink/hirelink/pkg/fsx"
	"github.com/hirelink/hirelink/pkg/fsx/fsxs3"
	"github.com/hirelink/hirelink/pkg/logx"
	"github.com/hirelink/hirelink/recruitment/application/applicationapi"
	"github.com/hirelink/hirelink/recruitment/application/applicationinfra"
	"github.com/hirelink/hirelink/recruitment/application/applicationsrv"
	"github.com/hirelink/hirelink/recruitment/job/jobapi"
	"github.com/hirelink/hirelink/recruitment/job/jobinfra"
	"github.com/hirelink/hirelink/recruitment/job/jobsrv"
	"github.com/hirelink/hirelink/recruitment/seeker/seekerapi"
	"github.com/hirelink/hirelink/recruitment/seeker/seekerauth"
	"github.com/hirelink/hirelink/recruitment/seeker/seekerinfra"
	"github.com/hirelink/hirelink/recruitment/seeker/seekersrv"
)

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem
	S3Client   *s3.Client

	// Auth
	TokenService   *seekerauth.TokenService
	AuthService    *seekerauth.AuthService
	AuthMiddleware *seekerauth.Middleware

	// Domain Services
	SeekerService      *seekersrv.SeekerService
	JobService         *jobsrv.JobService
	ApplicationService *applicationsrv.ApplicationService
	AssistantService   *assistantsrv.Service

	// API Handlers
	AuthHandlers        *seekerauth.Handlers
	SeekerHandlers      *seekerapi.Handlers
	JobHandlers         *jobapi.Handlers
	ApplicationHandlers *applicationapi.Handlers
	AssistantHandlers   *assistantapi.Handlers
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPass := os.Getenv("REDIS_PASS")
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. AWS S3 Configuration
	awsRegion := os.Getenv("AWS_REGION")
	awsBucket := os.Getenv("AWS_BUCKET")
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(awsRegion))
	if err != nil {
		logx.Fatalf("unable to load SDK config, %v", err)
	}
	c.S3Client = s3.NewFromConfig(cfg)
	c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, awsBucket, "uploads", awsRegion)
}

func (c *Container) initServices() {
	// --- Repositories ---
	seekerRepo := seekerinfra.NewPostgresSeekerRepository(c.DB)
	jobRepo := jobinfra.NewPostgresJobRepository(c.DB)
	applicationRepo := applicationinfra.NewPostgresApplicationRepository(c.DB)
	turnRepo := assistantinfra.NewPostgresTurnRepository(c.DB)

	// --- Auth ---
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		jwtSecret = "super-secret-key-please-change-me-in-production"
	}
	c.TokenService = seekerauth.NewTokenService(jwtSecret, 24*time.Hour)
	c.AuthService = seekerauth.NewAuthService(seekerRepo, c.TokenService)
	c.AuthMiddleware = seekerauth.NewMiddleware(c.TokenService)

	// --- Assistant Infrastructure ---

	// Shared Redis cache when available, in-process cache otherwise
	var replyCache assistant.ReplyCache
	if c.Redis.Ping(context.Background()).Err() == nil {
		replyCache = assistantinfra.NewRedisReplyCache(c.Redis)
	} else {
		logx.Warn("Redis unavailable, using in-process reply cache")
		replyCache = assistantinfra.NewMemoryReplyCache()
	}

	// AI replies are optional, without a key the static responder
	// answers everything
	var generator assistant.TextGenerator
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		generator = assistantinfra.NewOpenAIGenerator(apiKey, os.Getenv("OPENAI_MODEL"))
	} else {
		logx.Warn("OPENAI_API_KEY is not set, assistant runs rule-based only")
	}

	// --- Domain Services ---
	c.SeekerService = seekersrv.NewSeekerService(seekerRepo, c.FileSystem)
	c.JobService = jobsrv.NewJobService(jobRepo, seekerRepo)
	c.ApplicationService = applicationsrv.NewApplicationService(applicationRepo, jobRepo, seekerRepo)
	c.AssistantService = assistantsrv.NewService(
		seekerRepo,
		jobRepo,
		applicationRepo,
		turnRepo,
		replyCache,
		generator,
	)

	// --- Handlers ---
	c.AuthHandlers = seekerauth.NewHandlers(c.AuthService)
	c.SeekerHandlers = seekerapi.NewHandlers(c.SeekerService)
	c.JobHandlers = jobapi.NewHandlers(c.JobService)
	c.ApplicationHandlers = applicationapi.NewHandlers(c.ApplicationService)
	c.AssistantHandlers = assistantapi.NewHandlers(c.AssistantService)
}
