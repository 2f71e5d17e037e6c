package controllers

import (
	"context"
	"net/http"

	"MediConnect/models"
	"MediConnect/util"

	"github.com/gin-gonic/gin"
)

type credentialService[T any] interface {
	Role() string
	Signup(ctx context.Context, doc *T) (*T, error)
	Login(ctx context.Context, email, password string) (*models.LoginResult[T], error)
	SendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, otp string) error
}

// Auth registers the public account routes of every role.
func (h *Handler) Auth(api *gin.RouterGroup) {
	accountRoutes[models.PatientSignup, models.Patient](api.Group("/patient"), h.svc.PatientAuth, models.PatientSignup.Patient)
	accountRoutes[models.DoctorSignup, models.Doctor](api.Group("/doctor"), h.svc.DoctorAuth, models.DoctorSignup.Doctor)
	accountRoutes[models.HospitalSignup, models.Hospital](api.Group("/hospital"), h.svc.HospitalAuth, models.HospitalSignup.Hospital)
}

func accountRoutes[S any, T any](group *gin.RouterGroup, creds credentialService[T], build func(S) *T) {
	group.POST("/signup", signup(creds, build))
	group.POST("/login", login(creds))
	group.POST("/otp/send", sendOTP(creds))
	group.POST("/otp/verify", verifyOTP(creds))
}

/*
* Bind the signup fields of the role
* Build the account and pass it to the services
 */
func signup[S any, T any](creds credentialService[T], build func(S) *T) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body S
		if !bindJSON(c, &body) {
			return
		}
		created, err := creds.Signup(c.Request.Context(), build(body))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, created)
	}
}

func login[T any](creds credentialService[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body models.Login
		if !bindJSON(c, &body) {
			return
		}
		res, err := creds.Login(c.Request.Context(), body.Email, body.Password)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":     "Success",
			"token":      res.Token,
			creds.Role(): res.Account,
			"role":       res.Role,
		})
	}
}

func sendOTP[T any](creds credentialService[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body models.OTPRequest
		if !bindJSON(c, &body) {
			return
		}
		if err := creds.SendOTP(c.Request.Context(), body.Email); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, util.MessageResponse("OTP sent"))
	}
}

func verifyOTP[T any](creds credentialService[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body models.OTPVerify
		if !bindJSON(c, &body) {
			return
		}
		if err := creds.VerifyOTP(c.Request.Context(), body.Email, body.OTP); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, util.MessageResponse("OTP verified"))
	}
}
