package main

import (
	"context"
	"errors"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/classroom-ai/assessment-api/internal/config"
	"github.com/classroom-ai/assessment-api/internal/domain/fiber/handler"
	"github.com/classroom-ai/assessment-api/internal/middleware"
	"github.com/classroom-ai/assessment-api/internal/repository"
	"github.com/classroom-ai/assessment-api/internal/service"
	"github.com/classroom-ai/assessment-api/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	store := connectFirestore(ctx)
	defer store.Close()

	activityRepo := repository.NewActivityRepository(store)
	courseRepo := repository.NewCourseRepository(store)
	studentRepo := repository.NewStudentRepository(store)
	assessmentRepo := repository.NewAssessmentRepository(store)

	var modelSvc service.ModelService
	switch appConfig.ModelProvider {
	case "gemini":
		gemini, err := service.NewGeminiService(ctx)
		if err != nil {
			log.Fatal(err)
		}
		modelSvc = gemini
	default:
		modelSvc = service.NewOpenRouterService()
	}

	assessmentUC := usecase.NewAssessmentUsecase(activityRepo, courseRepo, studentRepo, assessmentRepo, modelSvc)
	activityUC := usecase.NewActivityUsecase(activityRepo)
	courseUC := usecase.NewCourseUsecase(courseRepo)
	studentUC := usecase.NewStudentUsecase(courseRepo, studentRepo)

	handler.NewAssessmentHandler(assessmentUC).RegisterRoutes(app)
	handler.NewActivityHandler(activityUC).RegisterRoutes(app)
	handler.NewCourseHandler(courseUC).RegisterRoutes(app)
	handler.NewStudentHandler(studentUC).RegisterRoutes(app)

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func connectFirestore(ctx context.Context) *firestore.Client {
	cfg := config.LoadFirestoreConfig()

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		log.Fatalf("Could not connect to Firestore: %v", err)
	}
	return client
}
