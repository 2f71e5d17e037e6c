package services

import (
	"context"
	"testing"
	"time"

	"MediConnect/config/db"
	"MediConnect/config/jwt"
	"MediConnect/models"
	"MediConnect/storage"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "Aa1!aaaa"

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendMail(_ context.Context, to, subject, body string) error {
	return m.Called(to, subject, body).Error(0)
}

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

type fixture struct {
	svc    *Services
	mailer *mockMailer
	clock  *testClock
	signer *jwt.Signer
	fs     afero.Fs
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	signer, err := jwt.NewSigner("test-secret", time.Hour)
	require.NoError(t, err)

	f := &fixture{
		mailer: new(mockMailer),
		clock:  &testClock{now: time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)},
		signer: signer,
		fs:     afero.NewMemMapFs(),
	}
	f.svc = New(Dependencies{
		Patients:     db.NewMemoryCollection[models.Patient]("email"),
		Doctors:      db.NewMemoryCollection[models.Doctor]("email"),
		Hospitals:    db.NewMemoryCollection[models.Hospital]("email"),
		Requests:     db.NewMemoryCollection[models.AffiliationRequest](),
		Appointments: db.NewMemoryCollection[models.Appointment](),
		Signer:       signer,
		Mailer:       f.mailer,
		Records:      storage.NewRecordStore(f.fs),
		BcryptCost:   bcrypt.MinCost,
		Now:          f.clock.Now,
	})
	return f
}

func (f *fixture) patient(t *testing.T, email string) *models.Patient {
	t.Helper()
	p, err := f.svc.PatientAuth.Signup(context.Background(), models.PatientSignup{
		Name: "Pat", Mobile: "9876543210", Email: email, Password: testPassword, Gender: "female",
	}.Patient())
	require.NoError(t, err)
	return p
}

func (f *fixture) doctor(t *testing.T, email string) *models.Doctor {
	t.Helper()
	d, err := f.svc.DoctorAuth.Signup(context.Background(), models.DoctorSignup{
		Name: "Dr Who", Mobile: "9876543211", Email: email, Password: testPassword,
		Specialization: []string{"cardiology"}, Experience: 7,
	}.Doctor())
	require.NoError(t, err)
	return d
}

func (f *fixture) hospital(t *testing.T, email string) *models.Hospital {
	t.Helper()
	h, err := f.svc.HospitalAuth.Signup(context.Background(), models.HospitalSignup{
		Name: "City Care", Mobile: "9876543212", Email: email, Password: testPassword, Location: "Pune",
	}.Hospital())
	require.NoError(t, err)
	return h
}
