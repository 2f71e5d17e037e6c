package server

import (
	"context"

	"MediConnect/config"
	"MediConnect/config/db"
	"MediConnect/config/jwt"
	"MediConnect/config/redis"
	"MediConnect/mailer"
	"MediConnect/models"
	"MediConnect/payment"
	"MediConnect/services"
	"MediConnect/storage"
	"MediConnect/util"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

// App holds the connected clients and the services built on them.
type App struct {
	Config   *config.Config
	Mongo    *mongo.Client
	Database *mongo.Database
	Cache    redis.Cache
	Signer   *jwt.Signer
	Services *services.Services
}

/*
* Connect mongo, and redis when a url is set
* Pick the mailer and payment gateway from what is configured
* Build the services over the mongo collections
 */
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	app := &App{Config: cfg, Cache: redis.NoopCache{}}

	client, err := db.Connect(ctx, cfg.MongoURL)
	if err != nil {
		return nil, err
	}
	app.Mongo = client
	app.Database = client.Database(cfg.MongoDatabase)

	if cfg.RedisURL != "" {
		cache, err := redis.Connect(ctx, cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			app.Close(ctx)
			return nil, err
		}
		app.Cache = cache
	} else {
		log.Warn().Msg("REDIS_URL not set, cache disabled")
	}

	app.Signer, err = jwt.NewSigner(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		app.Close(ctx)
		return nil, err
	}
	records, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		app.Close(ctx)
		return nil, err
	}
	app.Services = services.New(Dependencies(cfg, app.Database, app.Cache, app.Signer, records))
	return app, nil
}

// Dependencies wires the mongo collections and the configured clients.
func Dependencies(cfg *config.Config, database *mongo.Database, cache redis.Cache, signer *jwt.Signer, records *storage.RecordStore) services.Dependencies {
	deps := services.Dependencies{
		Patients:     db.NewMongoCollection[models.Patient](database, util.PatientCollection),
		Doctors:      db.NewMongoCollection[models.Doctor](database, util.DoctorCollection),
		Hospitals:    db.NewMongoCollection[models.Hospital](database, util.HospitalCollection),
		Requests:     db.NewMongoCollection[models.AffiliationRequest](database, util.RequestCollection),
		Appointments: db.NewMongoCollection[models.Appointment](database, util.AppointmentCollection),
		Cache:        cache,
		Signer:       signer,
		Records:      records,
		Mailer:       mailer.LogMailer{},
		Payments:     payment.Disabled{},
		OTPTTL:       cfg.OTPTTL,
	}
	if cfg.SMTPEnabled() {
		deps.Mailer = mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	} else {
		log.Warn().Msg("SMTP_HOST not set, OTP mails are only logged")
	}
	if cfg.PaymentsEnabled() {
		deps.Payments = payment.NewRazorpay(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	}
	return deps
}

func (a *App) Close(ctx context.Context) {
	if c, ok := a.Cache.(*redis.RedisCache); ok {
		if err := c.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing redis")
		}
	}
	if a.Mongo != nil {
		if err := a.Mongo.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("Error disconnecting mongo")
		}
	}
}
