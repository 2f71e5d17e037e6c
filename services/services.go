package services

import (
	"context"
	"time"

	"MediConnect/config/db"
	"MediConnect/config/jwt"
	"MediConnect/config/redis"
	"MediConnect/mailer"
	"MediConnect/models"
	"MediConnect/payment"
	"MediConnect/storage"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultBcryptCost = 12
	DefaultOTPTTL     = 10 * time.Minute
)

// Dependencies are the stores and clients the services run against.
type Dependencies struct {
	Patients     db.Collection[models.Patient]
	Doctors      db.Collection[models.Doctor]
	Hospitals    db.Collection[models.Hospital]
	Requests     db.Collection[models.AffiliationRequest]
	Appointments db.Collection[models.Appointment]

	Cache    redis.Cache
	Signer   *jwt.Signer
	Mailer   mailer.Mailer
	Records  *storage.RecordStore
	Payments payment.Gateway

	OTPTTL     time.Duration
	BcryptCost int
	Now        func() time.Time
}

type Services struct {
	Dependencies

	PatientAuth  *Credentials[models.Patient, *models.Patient]
	DoctorAuth   *Credentials[models.Doctor, *models.Doctor]
	HospitalAuth *Credentials[models.Hospital, *models.Hospital]
}

func New(deps Dependencies) *Services {
	if deps.Cache == nil {
		deps.Cache = redis.NoopCache{}
	}
	if deps.Mailer == nil {
		deps.Mailer = mailer.LogMailer{}
	}
	if deps.Payments == nil {
		deps.Payments = payment.Disabled{}
	}
	if deps.OTPTTL <= 0 {
		deps.OTPTTL = DefaultOTPTTL
	}
	if deps.BcryptCost < bcrypt.MinCost {
		deps.BcryptCost = DefaultBcryptCost
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	s := &Services{Dependencies: deps}
	s.PatientAuth = newCredentials(PatientVariant, deps.Patients, &s.Dependencies)
	s.DoctorAuth = newCredentials(DoctorVariant, deps.Doctors, &s.Dependencies)
	s.HospitalAuth = newCredentials(HospitalVariant, deps.Hospitals, &s.Dependencies)
	return s
}

// ClearExpiredOTPs sweeps stale one-time passwords from every account variant.
func (s *Services) ClearExpiredOTPs(ctx context.Context) (int64, error) {
	var total int64
	for _, sweep := range []func(context.Context) (int64, error){
		s.PatientAuth.ClearExpiredOTPs,
		s.DoctorAuth.ClearExpiredOTPs,
		s.HospitalAuth.ClearExpiredOTPs,
	} {
		n, err := sweep(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Error from ClearExpiredOTPs")
			return total, err
		}
		total += n
	}
	return total, nil
}

/*
* Cache-aside read of a single document
* Cache failures are logged and fall through to the store
 */
func cachedFind[T any](ctx context.Context, cache redis.Cache, key string, load func() (*T, error)) (*T, error) {
	var cached T
	found, err := cache.GetCache(ctx, key, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Error from GetCache")
	}
	if found {
		return &cached, nil
	}
	doc, err := load()
	if err != nil {
		return nil, err
	}
	if err := cache.SetCache(ctx, key, doc); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Error from SetCache")
	}
	return doc, nil
}

func invalidate(ctx context.Context, cache redis.Cache, keys ...string) {
	if err := cache.DeleteCache(ctx, keys...); err != nil {
		log.Warn().Err(err).Strs("keys", keys).Msg("Error from DeleteCache")
	}
}
