package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/uni-registrar-api/api/swagger"
	"github.com/noah-isme/uni-registrar-api/internal/handler"
	"github.com/noah-isme/uni-registrar-api/internal/middleware"
	"github.com/noah-isme/uni-registrar-api/internal/models"
	"github.com/noah-isme/uni-registrar-api/internal/repository"
	"github.com/noah-isme/uni-registrar-api/internal/seed"
	"github.com/noah-isme/uni-registrar-api/internal/service"
	"github.com/noah-isme/uni-registrar-api/pkg/config"
	"github.com/noah-isme/uni-registrar-api/pkg/jobs"
	"github.com/noah-isme/uni-registrar-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/uni-registrar-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/uni-registrar-api/pkg/middleware/requestid"
	"github.com/noah-isme/uni-registrar-api/pkg/storage"
)

// @title University Registrar API
// @version 0.1.0
// @description Course registration and graduation progress service
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	curriculum, err := buildCurriculum(cfg.Curriculum)
	if err != nil {
		logr.Sugar().Fatalw("invalid curriculum config", "error", err)
	}

	courseRepo := repository.NewCourseRepository()
	offeringRepo := repository.NewOfferingRepository()
	studentRepo := repository.NewStudentRepository()

	if cfg.Seed.Enabled {
		if err := seed.Load(courseRepo, offeringRepo, studentRepo, logr); err != nil {
			logr.Sugar().Fatalw("failed to load sample data", "error", err)
		}
	}

	validate := validator.New()

	registrationSvc := service.NewRegistrationService(studentRepo, offeringRepo, curriculum, logr)
	graduationSvc := service.NewGraduationService(studentRepo, courseRepo, curriculum, logr)
	courseSvc := service.NewCourseService(courseRepo, validate, logr)
	offeringSvc := service.NewOfferingService(offeringRepo, courseRepo, validate, logr)
	studentSvc := service.NewStudentService(studentRepo, validate, logr)
	metricsSvc := service.NewMetricsService(offeringRepo)

	registrationHandler := handler.NewRegistrationHandler(registrationSvc, studentRepo, metricsSvc)
	graduationHandler := handler.NewGraduationHandler(graduationSvc)
	courseHandler := handler.NewCourseHandler(courseSvc)
	offeringHandler := handler.NewOfferingHandler(offeringSvc)
	studentHandler := handler.NewStudentHandler(studentSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/stats", metricsHandler.Stats)

		api.GET("/courses", courseHandler.List)
		api.POST("/courses", courseHandler.Create)
		api.GET("/courses/:code", courseHandler.Get)
		api.PATCH("/courses/:code", courseHandler.Update)
		api.DELETE("/courses/:code", courseHandler.Delete)

		api.GET("/offerings", offeringHandler.List)
		api.POST("/offerings", offeringHandler.Create)
		api.GET("/offerings/:key", offeringHandler.Get)
		api.PATCH("/offerings/:key", offeringHandler.Update)

		api.GET("/students", studentHandler.List)
		api.POST("/students", studentHandler.Create)
		api.GET("/students/:id", studentHandler.Get)
		api.PATCH("/students/:id", studentHandler.Update)
		api.POST("/students/:id/completions", studentHandler.CompleteCourse)
		api.GET("/students/:id/schedule", registrationHandler.Schedule)
		api.GET("/students/:id/progress", graduationHandler.Progress)
		api.GET("/students/:id/graduation-risk", graduationHandler.RiskSummary)

		api.POST("/registrations", registrationHandler.Register)
		api.POST("/registrations/withdraw", registrationHandler.Withdraw)

		if cfg.Reports.Enabled {
			reportHandler, queue, reportErr := buildReports(ctx, cfg, studentRepo, courseRepo, offeringRepo, graduationSvc, logr)
			if reportErr != nil {
				logr.Sugar().Fatalw("failed to init reports", "error", reportErr)
			}
			queue.Start(ctx)
			defer queue.Stop()

			api.POST("/reports", reportHandler.Create)
			api.GET("/reports/:id", reportHandler.Status)
			api.GET("/reports/download/:token", reportHandler.Download)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Sugar().Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Warnw("shutdown error", "error", err)
	}
}

// buildCurriculum materializes the configured degree policy. Unknown track
// names in the electives map fail startup rather than being silently skipped.
func buildCurriculum(cfg config.CurriculumConfig) (*models.Curriculum, error) {
	curriculum, err := models.NewCurriculum(cfg.TotalCredits, cfg.MinTrackElectives)
	if err != nil {
		return nil, err
	}
	for _, code := range cfg.RequiredCourses {
		curriculum.AddRequired(code)
	}
	for name, codes := range cfg.TrackElectives {
		track := models.ParseTrack(name)
		if track == nil {
			return nil, fmt.Errorf("unknown track %q in curriculum config", name)
		}
		for _, code := range codes {
			curriculum.AddTrackElective(*track, code)
		}
	}
	return curriculum, nil
}

func buildReports(ctx context.Context, cfg *config.Config, students *repository.StudentRepository, courses *repository.CourseRepository, offerings *repository.OfferingRepository, graduation *service.GraduationService, logr *zap.Logger) (*handler.ReportHandler, *jobs.Queue, error) {
	store, err := storage.NewLocalStorage(cfg.Reports.StorageDir)
	if err != nil {
		return nil, nil, err
	}
	signer := storage.NewSignedURLSigner(cfg.Reports.SignedURLSecret, cfg.Reports.SignedURLTTL)

	exportSvc := service.NewExportService(students, courses, offerings, graduation, store, signer, service.ExportConfig{
		APIPrefix: cfg.APIPrefix,
		ResultTTL: cfg.Reports.SignedURLTTL,
	}, logr, nil, nil)

	jobRepo := repository.NewReportJobRepository()
	worker := service.NewReportWorker(jobRepo, exportSvc, cfg.Reports.WorkerRetries, logr)
	queue := jobs.NewQueue("reports", worker.Handle, jobs.QueueConfig{
		Workers:    cfg.Reports.WorkerConcurrency,
		MaxRetries: cfg.Reports.WorkerRetries,
		Logger:     logr,
	})

	reportSvc := service.NewReportService(jobRepo, students, offerings, queue, exportSvc, logr, service.ReportServiceConfig{
		ResultTTL:       cfg.Reports.SignedURLTTL,
		CleanupInterval: cfg.Reports.CleanupInterval,
		MaxRetries:      cfg.Reports.WorkerRetries,
	})
	reportSvc.StartCleanup(ctx)

	return handler.NewReportHandler(reportSvc), queue, nil
}
