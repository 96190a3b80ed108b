package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/driftwalk-api/api"
	api_i "github.com/beka-birhanu/driftwalk-api/api/i"
	"github.com/beka-birhanu/driftwalk-api/api/identity"
	"github.com/beka-birhanu/driftwalk-api/api/walkapi"
	"github.com/beka-birhanu/driftwalk-api/config"
	"github.com/beka-birhanu/driftwalk-api/infrastructure/repo"
	"github.com/beka-birhanu/driftwalk-api/infrastructure/sortedstorage"
	"github.com/beka-birhanu/driftwalk-api/infrastructure/token"
	"github.com/beka-birhanu/driftwalk-api/logging"
	"github.com/beka-birhanu/driftwalk-api/raster"
	"github.com/beka-birhanu/driftwalk-api/service"
	"github.com/beka-birhanu/driftwalk-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	userRepo       i.UserRepo
	walkRepo       i.WalkRepo
	runQueue       i.SortedQueue
	scheduler      i.WalkScheduler
	runner         i.WalkRunner
	jwtTokenizer   i.Tokenizer
	authService    i.Authenticator
	authController api_i.Controller
	walkController api_i.Controller
	router         *api.Router
	appLogger      i.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initRepos(client *mongo.Client) {
	userRepo = repo.NewUserRepo(client, config.Envs.DBName, "users")
	walkRepo = repo.NewWalkRepo(client, config.Envs.DBName, "walkRuns")
	appLogger.Info("Repositories initialized")
}

func initRunQueue() {
	var err error
	runQueue, err = sortedstorage.NewRedisSortedQueue(redisClient, config.Envs.QueueTTL)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating run queue: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Run queue initialized")
}

func initScheduler() {
	schedulerLogger, err := logging.New("SCHEDULER", config.ColorMagenta, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating scheduler logger: %v", err))
		os.Exit(1)
	}

	scheduler, err = service.NewScheduler(runQueue, schedulerLogger, &service.SchedulerOptions{
		BatchSize: int64(config.Envs.RunBatchSize),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating scheduler: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Scheduler initialized")
}

func initRunner() {
	runnerLogger, err := logging.New("RUNNER", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating runner logger: %v", err))
		os.Exit(1)
	}

	runner, err = service.NewRunner(&service.RunnerConfig{
		WalkRepo:  walkRepo,
		Scheduler: scheduler,
		GridFactory: func(rows, cols int) (i.Raster, error) {
			return raster.NewDense(rows, cols)
		},
		Logger: runnerLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating runner: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Runner initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuth(userRepo, jwtTokenizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initControllers() {
	authController = identity.NewIdentityServer(authService)
	walkController = walkapi.NewWalkServer(walkapi.Config{
		Runner:   runner,
		WalkRepo: walkRepo,
		Defaults: walkapi.Defaults{
			Rows:       config.Envs.RegionRows,
			Cols:       config.Envs.RegionCols,
			Steps:      config.Envs.WalkSteps,
			Directions: 4,
		},
	})
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, walkController},
		AuthorizationMiddleware: identity.Authorize(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	gin.SetMode(config.Envs.GinMode)

	// Initialize dependencies
	appLogger, _ = logging.New("APP", config.ColorGreen, os.Stdout)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initRepos(mongoClient)
	initRunQueue()
	initScheduler()
	initRunner()
	initJWTTokenizer()
	initAuthService()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
