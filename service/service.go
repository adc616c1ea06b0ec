package service

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"schedsim/api"
	"schedsim/clients"
	"schedsim/domain"
	"schedsim/helpers"
	"schedsim/repositories"

	"github.com/caarlos0/env/v11"
	graphite "github.com/cyberdelia/go-metrics-graphite"
	"github.com/dgraph-io/ristretto"
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/joho/godotenv"
	"github.com/rcrowley/go-metrics"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
)

// Service describes the structure used for starting the web service
type Service struct {
}

// NewService returns a new service object
func NewService() *Service {
	return &Service{}
}

// StartWebService initializes logger, restful and swagger api, task repo,
// local cache, s3 reports client + metrics for graphite
func (s *Service) StartWebService() {

	log, _ := zap.NewDevelopment()
	defer log.Sync()

	ws := new(restful.WebService)

	ctx := context.Background()

	err := godotenv.Load(".env")
	if err != nil && !os.IsNotExist(err) {
		log.Fatal("Error loading environment variables file", zap.Error(err))
		return
	}

	config := domain.Config{}
	err = env.Parse(&config)
	if err != nil {
		log.Fatal("Error parsing environment variables", zap.Error(err))
		return
	}

	log.Debug("Env variables are loaded")

	// initialize local cache for get info endpoints
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e6,     // Num keys to track frequency of (10k).
		MaxCost:     1 << 19, // Maximum cost of cache (50Mb).
		BufferItems: 64,      // Number of keys per Get buffer.
	})
	if err != nil {
		log.Fatal("Error intializing ristretto Cache", zap.Error(err))
		return
	}

	log.Debug("Local Ristretto Cache initalized")

	taskRepo := repositories.NewTaskRepo(log)
	log.Debug("Task Repo initialized")

	if config.SeedSampleData {
		sampleTasks, err := helpers.GenerateSampleTasks()
		if err != nil {
			log.Fatal("Error generating sample tasks", zap.Error(err))
			return
		}
		for _, task := range sampleTasks {
			taskRepo.AddTask(task)
		}
		log.Debug("Sample tasks seeded", zap.Int("count", len(sampleTasks)))
	}

	var profilerRepo *repositories.ProfilingService
	if config.EnableCPUProfiler {
		profilerRepo = repositories.NewProfileService("profile_cpu.prof", log)
		profilerRepo.StartProfiling()
		defer profilerRepo.StopProfiling()
		log.Debug("Profiling Repo initialized")
	}

	var reportsClient *clients.ReportsClient
	if config.EnableS3 {
		reportsClient, err = clients.NewReportsClient(ctx, config.AccessKey, config.SecretKey,
			config.Bucket, config.Region, log)
		if err != nil {
			log.Fatal("Error in creating s3 reports client", zap.Error(err))
			return
		}
		log.Debug("S3 reports client initialized")
	}

	if config.GraphiteHost != "" {
		graphiteAddr, err := net.ResolveTCPAddr("tcp", config.GraphiteHost)
		if err != nil {
			log.Fatal("Failed to resolve tcp address for graphite", zap.Error(err))
			return
		}
		go graphite.Graphite(metrics.DefaultRegistry, 10*time.Second, "schedsim", graphiteAddr)
		log.Debug("Initialize graphite for metrics")
	}

	requestCount := make(map[string]int)

	// initialize api
	apiManager := api.NewAPI(ctx, taskRepo, cache, log, reportsClient, requestCount, config.MaxRequestPerMinute)
	apiManager.RegisterRoutes(ws)

	restful.DefaultContainer.Add(ws)

	swaggerConfig := restfulspec.Config{
		WebServices:                   restful.RegisteredWebServices(),
		APIPath:                       "/apidocs.json",
		PostBuildSwaggerObjectHandler: enrichSwaggerObject}
	restfulspec.BuildSwagger(swaggerConfig)
	restful.DefaultContainer.Add(restfulspec.NewOpenAPIService(swaggerConfig))

	// Optionally, you may need to enable CORS for the UI to work.
	cors := restful.CrossOriginResourceSharing{
		AllowedHeaders: []string{"Content-Type", "Accept"},
		AllowedDomains: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE"},
		CookiesAllowed: false,
		Container:      restful.DefaultContainer}
	restful.DefaultContainer.Filter(cors.Filter)

	addr := config.Host + ":" + strconv.Itoa(config.Port)
	server := &http.Server{
		Addr:           addr,
		ReadTimeout:    time.Minute,
		WriteTimeout:   time.Minute,
		IdleTimeout:    time.Minute,
		MaxHeaderBytes: 1 << 20,
	}

	useTLS := config.CertFile != "" && config.CertKeyFile != ""
	if useTLS {
		server.TLSConfig = &tls.Config{
			MinVersion:               tls.VersionTLS12,
			CurvePreferences:         []tls.CurveID{tls.CurveP521, tls.CurveP384, tls.CurveP256},
			PreferServerCipherSuites: true,
		}
		server.TLSNextProto = make(map[string]func(*http.Server, *tls.Conn, http.Handler), 0)
		err = http2.ConfigureServer(server, &http2.Server{})
		if err != nil {
			log.Fatal("http2 Configure server", zap.Error(err))
			return
		}
	}

	log.Info("Started api service", zap.String("addr", addr))

	go func() {
		if useTLS {
			err = server.ListenAndServeTLS(config.CertFile, config.CertKeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", zap.Error(err))
		}
		for _, metric := range helpers.MetricsName {
			metrics.Unregister(metric)
		}

		log.Debug("Stopped serving new connections.")
	}()

	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	shutdownCtx, shutdownRelease := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownRelease()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP shutdown error: %v", zap.Error(err))
	}

	log.Debug("Graceful shutdown complete.")
}

// enrichSwaggerObject describes swagger specs
func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "SchedSim API",
			Description: "API which simulates cpu scheduling algorithms over task sets",
			Version:     "1.0.0",
		},
	}
	swo.Tags = []spec.Tag{{TagProps: spec.TagProps{
		Name:        "tasks",
		Description: "Managing tasks"}},
		{TagProps: spec.TagProps{
			Name:        "schedule",
			Description: "Simulating schedules",
		}}}
}
