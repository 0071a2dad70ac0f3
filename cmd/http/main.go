package main

import (
	"context"
	"medicore-service/internal/app/config"
	"medicore-service/internal/app/delivery/http/middlewares"
	"medicore-service/internal/app/delivery/http/routers"
	"medicore-service/internal/app/drivers/database"
	"medicore-service/internal/app/drivers/logger"
	"medicore-service/internal/app/drivers/messaging"
	"medicore-service/internal/app/drivers/storage"
	"medicore-service/internal/app/services/core/access"
	"medicore-service/internal/app/services/core/accounts"
	"medicore-service/internal/app/services/core/appointments"
	"medicore-service/internal/app/services/core/auth"
	"medicore-service/internal/app/services/core/dashboard"
	"medicore-service/internal/app/services/core/doctors"
	"medicore-service/internal/app/services/core/medicines"
	"medicore-service/internal/app/services/core/patients"
	"medicore-service/internal/app/services/core/payments"
	"medicore-service/internal/app/services/core/prescriptions"
	"medicore-service/internal/app/services/shared/events"
	"medicore-service/internal/app/services/shared/ratelimiter"
	sharedredis "medicore-service/internal/app/services/shared/redis"
	"medicore-service/internal/app/services/shared/session"
	sharedstorage "medicore-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogrus(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConnection,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		logrus.Printf("Server listening on %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared infrastructure
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository)
	eventPublisher := events.NewEventPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.EventQueue, bootstrap.Logger)
	receiptStorage := sharedstorage.NewMinioReceiptStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)
	loginLimiter := ratelimiter.NewLoginLimiter(
		redisRepository,
		bootstrap.InternalConfig.App.MaxLoginAttempts,
		bootstrap.InternalConfig.App.LoginAttemptWindowSecs,
		bootstrap.Logger,
	)

	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Repositories
	accountRepository := accounts.NewAccountMongoRepository(bootstrap.MongoClient, dbName)
	patientRepository := patients.NewPatientMongoRepository(bootstrap.MongoClient, dbName)
	doctorRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoClient, dbName)
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoClient, dbName)
	medicineRepository := medicines.NewMedicineMongoRepository(bootstrap.MongoClient, dbName)
	prescriptionRepository := prescriptions.NewPrescriptionMongoRepository(bootstrap.MongoClient, dbName)
	paymentRepository := payments.NewPaymentMongoRepository(bootstrap.MongoClient, dbName)

	// Access
	patientLinker := access.NewPatientLinker(patientRepository, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.New(bootstrap.Logger, sessionService, patientLinker, bootstrap.InternalConfig)

	// Auth
	authUsecase := auth.NewAuthUsecase(accountRepository, sessionService, patientLinker, loginLimiter, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(authUsecase, bootstrap.Logger)

	// Patients
	patientUsecase := patients.NewPatientUsecase(patientRepository, eventPublisher, bootstrap.Logger)
	patientController := patients.NewPatientController(patientUsecase, bootstrap.Logger)

	// Doctors
	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository, eventPublisher, bootstrap.Logger)
	doctorController := doctors.NewDoctorController(doctorUsecase, bootstrap.Logger)

	// Appointments
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentRepository, patientRepository, doctorRepository, eventPublisher, bootstrap.Logger)
	appointmentController := appointments.NewAppointmentController(appointmentUsecase, bootstrap.Logger)

	// Medicines
	medicineUsecase := medicines.NewMedicineUsecase(medicineRepository, eventPublisher, bootstrap.Logger)
	medicineController := medicines.NewMedicineController(medicineUsecase, bootstrap.Logger)

	// Prescriptions
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(prescriptionRepository, patientRepository, doctorRepository, medicineRepository, eventPublisher, bootstrap.Logger)
	prescriptionController := prescriptions.NewPrescriptionController(prescriptionUsecase, bootstrap.Logger)

	// Payments
	paymentUsecase := payments.NewPaymentUsecase(paymentRepository, patientRepository, appointmentRepository, receiptStorage, eventPublisher, bootstrap.InternalConfig, bootstrap.Logger)
	paymentController := payments.NewPaymentController(paymentUsecase, bootstrap.Logger)

	// Dashboard
	dashboardUsecase := dashboard.NewDashboardUsecase(patientRepository, doctorRepository, appointmentRepository, medicineRepository, prescriptionRepository, paymentRepository, bootstrap.InternalConfig, bootstrap.Logger)
	dashboardController := dashboard.NewDashboardController(dashboardUsecase, bootstrap.Logger)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		patientController,
		doctorController,
		appointmentController,
		medicineController,
		prescriptionController,
		paymentController,
		dashboardController,
	)
}
