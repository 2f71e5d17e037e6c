package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"MediConnect/config/db"
	"MediConnect/models"
	"MediConnect/util"

	"github.com/KanapuramVaishnavi/Core/coreServices"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// Variant names one account collection: its role tag and cache key prefix.
type Variant struct {
	Role     string
	CacheKey string
}

var (
	PatientVariant  = Variant{Role: util.PatientRole, CacheKey: util.PatientKey}
	DoctorVariant   = Variant{Role: util.DoctorRole, CacheKey: util.DoctorKey}
	HospitalVariant = Variant{Role: util.HospitalRole, CacheKey: util.HospitalKey}
)

type account[T any] interface {
	*T
	models.Account
}

// Credentials runs signup, login and OTP checks for one account variant.
type Credentials[T any, PT account[T]] struct {
	variant Variant
	store   db.Collection[T]
	deps    *Dependencies
}

func newCredentials[T any, PT account[T]](variant Variant, store db.Collection[T], deps *Dependencies) *Credentials[T, PT] {
	return &Credentials[T, PT]{variant: variant, store: store, deps: deps}
}

func (a *Credentials[T, PT]) Role() string { return a.variant.Role }

func normalizeEmail(email string) string {
	return coreServices.NormalizeEmail(strings.TrimSpace(email))
}

/*
* Normalize the email and check it is not taken in this collection
* Hash the password and stamp role and timestamps
* Save to db, a duplicate key from the store is also a conflict
 */
func (a *Credentials[T, PT]) Signup(ctx context.Context, doc *T) (*T, error) {
	base := PT(doc).Base()
	base.Email = normalizeEmail(base.Email)

	_, err := a.store.FindOne(ctx, db.Filter{"email": base.Email})
	if err == nil {
		return nil, util.Conflict(util.EMAIL_ALREADY_EXISTS)
	}
	if !errors.Is(err, db.ErrNotFound) {
		log.Error().Err(err).Msg("Error from FindOne")
		return nil, util.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(base.Password), a.deps.BcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, util.Validation(err.Error())
	}
	if err != nil {
		log.Error().Err(err).Msg("Error from GenerateFromPassword")
		return nil, util.Internal(err)
	}
	now := a.deps.Now().UTC()
	base.Password = string(hash)
	base.Role = a.variant.Role
	base.OTP = ""
	base.OTPExpiry = nil
	base.CreatedAt = now
	base.UpdatedAt = now

	id, err := a.store.Insert(ctx, doc)
	if errors.Is(err, db.ErrDuplicate) {
		return nil, util.Conflict(util.EMAIL_ALREADY_EXISTS)
	}
	if err != nil {
		log.Error().Err(err).Msg("Error from Insert")
		return nil, util.Internal(err)
	}
	base.ID = id
	log.Info().Str("role", base.Role).Str("id", id.Hex()).Msg("account created")
	return doc, nil
}

/*
* Find the account by email
* Compare the password with the stored hash
* Issue a token carrying email, id and role
 */
func (a *Credentials[T, PT]) Login(ctx context.Context, email, password string) (*models.LoginResult[T], error) {
	doc, err := a.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	base := PT(doc).Base()
	if err := bcrypt.CompareHashAndPassword([]byte(base.Password), []byte(password)); err != nil {
		return nil, util.Unauthorized(util.PASSWORD_INCORRECT)
	}
	token, err := a.deps.Signer.GenerateJWT(base.ID.Hex(), base.Email, a.variant.Role)
	if err != nil {
		log.Error().Err(err).Msg("Error from GenerateJWT")
		return nil, util.Internal(err)
	}
	return &models.LoginResult[T]{Token: token, Role: a.variant.Role, Account: doc}, nil
}

/*
* Generate a six digit otp and store only its hash with an expiry
* Mail the plain otp to the account email
 */
func (a *Credentials[T, PT]) SendOTP(ctx context.Context, email string) error {
	doc, err := a.findByEmail(ctx, email)
	if err != nil {
		return err
	}
	base := PT(doc).Base()

	otp, err := generateOTP()
	if err != nil {
		log.Error().Err(err).Msg("Error from generateOTP")
		return util.Internal(err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(otp), a.deps.BcryptCost)
	if err != nil {
		log.Error().Err(err).Msg("Error from GenerateFromPassword")
		return util.Internal(err)
	}
	now := a.deps.Now().UTC()
	id := base.ID.Hex()
	if _, err := a.store.Patch(ctx, id, bson.M{
		"otp":       string(hash),
		"otpExpiry": now.Add(a.deps.OTPTTL),
		"updatedAt": now,
	}); err != nil {
		log.Error().Err(err).Msg("Error from Patch")
		return util.Internal(err)
	}
	invalidate(ctx, a.deps.Cache, a.variant.CacheKey+id)

	subject := "Your MediConnect verification code"
	body := fmt.Sprintf("Hello %s,\n\nYour OTP is: %s\nIt expires in %s.\n\nThank you!", base.Name, otp, a.deps.OTPTTL)
	if err := a.deps.Mailer.SendMail(ctx, base.Email, subject, body); err != nil {
		log.Error().Err(err).Msg("OTP email failed")
		return util.Internal(fmt.Errorf("%s: %w", util.FAILED_TO_SEND_OTP, err))
	}
	return nil
}

/*
* The otp must be pending, unexpired and match the stored hash
* A verified otp is cleared so it cannot be used twice
 */
func (a *Credentials[T, PT]) VerifyOTP(ctx context.Context, email, otp string) error {
	doc, err := a.findByEmail(ctx, email)
	if err != nil {
		return err
	}
	base := PT(doc).Base()
	if base.OTP == "" || base.OTPExpiry == nil {
		return util.Unauthorized(util.OTP_NOT_REQUESTED)
	}
	if a.deps.Now().After(*base.OTPExpiry) {
		return util.Unauthorized(util.OTP_EXPIRED)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(base.OTP), []byte(otp)); err != nil {
		return util.Unauthorized(util.OTP_INVALID)
	}
	if _, err := a.store.Unset(ctx, db.Filter{"_id": base.ID}, "otp", "otpExpiry"); err != nil {
		log.Error().Err(err).Msg("Error from Unset")
		return util.Internal(err)
	}
	return nil
}

func (a *Credentials[T, PT]) ClearExpiredOTPs(ctx context.Context) (int64, error) {
	return a.store.Unset(ctx, db.Filter{"otpExpiry": bson.M{"$lt": a.deps.Now().UTC()}}, "otp", "otpExpiry")
}

func (a *Credentials[T, PT]) findByEmail(ctx context.Context, email string) (*T, error) {
	doc, err := a.store.FindOne(ctx, db.Filter{"email": normalizeEmail(email)})
	if errors.Is(err, db.ErrNotFound) {
		return nil, util.NotFound(util.NO_RECORD_EXISTS)
	}
	if err != nil {
		log.Error().Err(err).Msg("Error from FindOne")
		return nil, util.Internal(err)
	}
	return doc, nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
