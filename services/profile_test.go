package services

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"MediConnect/config/redis"
	"MediConnect/models"
	"MediConnect/util"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestUpdatePatient_PartialPatch(t *testing.T) {
	f := newFixture(t)
	p := f.patient(t, "pat@example.com")

	updated, err := f.svc.UpdatePatient(context.Background(), p.ID.Hex(), models.PatientUpdate{Address: ptr("12 Hill Road")})
	require.NoError(t, err)
	assert.Equal(t, "12 Hill Road", updated.Address)
	assert.Equal(t, "Pat", updated.Name)
	assert.Equal(t, "female", updated.Gender)
	assert.Equal(t, p.Password, updated.Password)
}

func TestUpdatePatient_EmailConflict(t *testing.T) {
	f := newFixture(t)
	p := f.patient(t, "pat@example.com")
	f.patient(t, "taken@example.com")

	_, err := f.svc.UpdatePatient(context.Background(), p.ID.Hex(), models.PatientUpdate{Email: ptr(" Taken@Example.com")})
	assert.True(t, util.IsKind(err, util.KindConflict))

	same, err := f.svc.UpdatePatient(context.Background(), p.ID.Hex(), models.PatientUpdate{Email: ptr("PAT@example.com")})
	require.NoError(t, err)
	assert.Equal(t, "pat@example.com", same.Email)
}

func TestUpdatePatient_Unknown(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.UpdatePatient(context.Background(), "bogus", models.PatientUpdate{Name: ptr("x")})
	assert.True(t, util.IsKind(err, util.KindNotFound))
}

func TestUpdateDoctor_HospitalsArePushedToHospitals(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	d := f.doctor(t, "doc@example.com")
	h := f.hospital(t, "care@example.com")

	updated, err := f.svc.UpdateDoctor(ctx, d.ID.Hex(), models.DoctorUpdate{
		Hospitals: &[]string{h.ID.Hex()},
		Status:    ptr(util.DoctorActive),
	})
	require.NoError(t, err)
	assert.Equal(t, util.DoctorActive, updated.Status)
	assert.Equal(t, []string{h.ID.Hex()}, updated.Hospitals)

	hospital, err := f.svc.GetHospital(ctx, h.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, []string{d.ID.Hex()}, hospital.Doctors)
}

func TestListDoctors_CarryPendingHospitals(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	d := f.doctor(t, "doc@example.com")
	h := f.hospital(t, "care@example.com")
	_, err := f.svc.ApplyToHospital(ctx, h.ID.Hex(), models.ApplyRequest{DoctorID: d.ID.Hex()})
	require.NoError(t, err)

	doctors, err := f.svc.ListDoctors(ctx)
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, []string{h.ID.Hex()}, doctors[0].PendingHospitals)

	hospitals, err := f.svc.ListHospitals(ctx)
	require.NoError(t, err)
	assert.Len(t, hospitals, 1)
}

func TestUpdateHospital(t *testing.T) {
	f := newFixture(t)
	h := f.hospital(t, "care@example.com")

	updated, err := f.svc.UpdateHospital(context.Background(), h.ID.Hex(), models.HospitalUpdate{Rating: ptr(4.5)})
	require.NoError(t, err)
	assert.Equal(t, 4.5, updated.Rating)
	assert.Equal(t, "Pune", updated.Location)
}

func TestUploadAndOpenRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.patient(t, "pat@example.com")

	_, err := f.svc.UploadRecord(ctx, p.ID.Hex(), "scan-1.pdf", strings.NewReader("first"))
	require.NoError(t, err)
	updated, err := f.svc.UploadRecord(ctx, p.ID.Hex(), "../../scan-2.pdf", strings.NewReader("second"))
	require.NoError(t, err)
	require.Len(t, updated.Record, 2)
	assert.True(t, strings.HasPrefix(updated.Record[1], p.ID.Hex()+"/"))

	file, name, err := f.svc.OpenRecord(ctx, p.ID.Hex())
	require.NoError(t, err)
	defer file.Close()
	body, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, "second", string(body))
	assert.Equal(t, "scan-2.pdf", name)
}

func TestOpenRecord_Missing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.patient(t, "pat@example.com")

	_, _, err := f.svc.OpenRecord(ctx, p.ID.Hex())
	assert.EqualError(t, err, util.RECORD_NOT_FOUND)

	require.NoError(t, f.svc.Patients.AddToSet(ctx, p.ID.Hex(), "record", "gone/file.pdf"))
	_, _, err = f.svc.OpenRecord(ctx, p.ID.Hex())
	assert.EqualError(t, err, util.FILE_NOT_FOUND_ON_SERVER)

	_, err = f.svc.UploadRecord(ctx, "64b000000000000000000000", "x.pdf", strings.NewReader("x"))
	assert.True(t, util.IsKind(err, util.KindNotFound))
}

func TestGetPatient_CacheAside(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	mr := miniredis.RunT(t)
	cache := redis.NewRedisCache(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}), time.Minute)
	f.svc.Cache = cache
	p := f.patient(t, "pat@example.com")
	key := util.PatientKey + p.ID.Hex()

	got, err := f.svc.GetPatient(ctx, p.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Pat", got.Name)
	assert.True(t, mr.Exists(key))

	_, err = f.svc.UpdatePatient(ctx, p.ID.Hex(), models.PatientUpdate{Name: ptr("Patricia")})
	require.NoError(t, err)
	assert.False(t, mr.Exists(key))

	got, err = f.svc.GetPatient(ctx, p.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Patricia", got.Name)
}
