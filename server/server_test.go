package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"MediConnect/config"
	"MediConnect/config/redis"
	"MediConnect/mailer"
	"MediConnect/payment"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestCORSConfig(t *testing.T) {
	all := CORSConfig([]string{"*"})
	assert.True(t, all.AllowAllOrigins)
	assert.False(t, all.AllowCredentials)
	assert.NoError(t, all.Validate())

	listed := CORSConfig([]string{"http://localhost:3000"})
	assert.False(t, listed.AllowAllOrigins)
	assert.True(t, listed.AllowCredentials)
	assert.Equal(t, []string{"http://localhost:3000"}, listed.AllowOrigins)
	assert.NoError(t, listed.Validate())

	assert.True(t, CORSConfig(nil).AllowAllOrigins)
}

func TestNewEngine(t *testing.T) {
	cfg := &config.Config{Env: "development", CORSOrigins: []string{"http://localhost:3000"}}
	called := false
	r := NewEngine(cfg, &App{Config: cfg}, func(r *gin.Engine, app *App) {
		called = true
		r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	})
	require.True(t, called)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestGetDefaultOptions(t *testing.T) {
	opts := GetDefaultOptions(&config.Config{JobsEnabled: true})
	assert.True(t, opts.JobsEnabled)
	assert.True(t, opts.WebServerEnabled)
	assert.False(t, opts.MigrationEnabled)
}

func TestBootstrap_RequiresConfig(t *testing.T) {
	_, err := Bootstrap(context.Background(), &config.Config{})
	assert.ErrorContains(t, err, "MONGODB_URL is required")
	assert.ErrorContains(t, err, "JWT_SECRET is required")
}

func TestDependencies_PicksClients(t *testing.T) {
	// Connect is lazy, nothing is dialled until the first operation.
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	require.NoError(t, err)
	defer client.Disconnect(context.Background())
	database := client.Database("mediconnect_test")

	deps := Dependencies(&config.Config{}, database, redis.NoopCache{}, nil, nil)
	assert.IsType(t, mailer.LogMailer{}, deps.Mailer)
	assert.IsType(t, payment.Disabled{}, deps.Payments)
	assert.NotNil(t, deps.Patients)
	assert.NotNil(t, deps.Appointments)

	cfg := &config.Config{SMTPHost: "smtp.example.com", SMTPPort: 587, RazorpayKeyID: "k", RazorpayKeySecret: "s"}
	deps = Dependencies(cfg, database, redis.NoopCache{}, nil, nil)
	assert.IsType(t, &mailer.SMTPMailer{}, deps.Mailer)
	assert.IsType(t, &payment.Razorpay{}, deps.Payments)
}
