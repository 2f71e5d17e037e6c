package services

import (
	"context"
	"testing"

	"MediConnect/config/db"
	"MediConnect/models"
	"MediConnect/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func book(t *testing.T, f *fixture) (*models.Appointment, *models.Patient, *models.Doctor) {
	t.Helper()
	p := f.patient(t, "pat@example.com")
	d := f.doctor(t, "doc@example.com")
	appt, err := f.svc.BookAppointment(context.Background(), models.BookAppointment{
		DoctorID: d.ID.Hex(), PatientID: p.ID.Hex(), Date: "2026-10-20", Time: "10:30",
	})
	require.NoError(t, err)
	return appt, p, d
}

func TestBookAppointment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	appt, p, d := book(t, f)

	assert.Equal(t, util.AppointmentNotCompleted, appt.Status)
	assert.Equal(t, "Pat", appt.PatientName)
	assert.Equal(t, "pat@example.com", appt.PatientEmail)
	assert.Equal(t, "Dr Who", appt.DoctorName)

	all, err := f.svc.Appointments.Find(ctx, db.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)

	patient, err := f.svc.Patients.FindByID(ctx, p.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, []string{d.ID.Hex()}, patient.Doctors)
	doctor, err := f.svc.Doctors.FindByID(ctx, d.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, []string{p.ID.Hex()}, doctor.Patients)
}

func TestBookAppointment_TodayIsAllowed(t *testing.T) {
	f := newFixture(t)
	p := f.patient(t, "pat@example.com")
	d := f.doctor(t, "doc@example.com")
	_, err := f.svc.BookAppointment(context.Background(), models.BookAppointment{
		DoctorID: d.ID.Hex(), PatientID: p.ID.Hex(), Date: "2026-10-17", Time: "08:00",
	})
	assert.NoError(t, err)
}

func TestBookAppointment_Rejects(t *testing.T) {
	f := newFixture(t)
	p := f.patient(t, "pat@example.com")
	d := f.doctor(t, "doc@example.com")

	tests := []struct {
		name string
		in   models.BookAppointment
		kind util.Kind
	}{
		{"missing ids", models.BookAppointment{Date: "2026-10-20", Time: "10:00"}, util.KindValidation},
		{"past date", models.BookAppointment{DoctorID: d.ID.Hex(), PatientID: p.ID.Hex(), Date: "2026-10-16", Time: "10:00"}, util.KindValidation},
		{"bad date", models.BookAppointment{DoctorID: d.ID.Hex(), PatientID: p.ID.Hex(), Date: "20/10/2026", Time: "10:00"}, util.KindValidation},
		{"bad time", models.BookAppointment{DoctorID: d.ID.Hex(), PatientID: p.ID.Hex(), Date: "2026-10-20", Time: "10am"}, util.KindValidation},
		{"unknown doctor", models.BookAppointment{DoctorID: p.ID.Hex(), PatientID: p.ID.Hex(), Date: "2026-10-20", Time: "10:00"}, util.KindNotFound},
		{"unknown patient", models.BookAppointment{DoctorID: d.ID.Hex(), PatientID: d.ID.Hex(), Date: "2026-10-20", Time: "10:00"}, util.KindNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.BookAppointment(context.Background(), tt.in)
			assert.True(t, util.IsKind(err, tt.kind), "got %v", err)
		})
	}

	all, err := f.svc.Appointments.Find(context.Background(), db.Filter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCancelAppointment_Twice(t *testing.T) {
	f := newFixture(t)
	appt, _, _ := book(t, f)

	first, err := f.svc.CancelAppointment(context.Background(), appt.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, util.AppointmentCancelled, first.Status)

	second, err := f.svc.CancelAppointment(context.Background(), appt.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, util.AppointmentCancelled, second.Status)
}

func TestUpdateAppointmentStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	appt, _, _ := book(t, f)

	_, err := f.svc.UpdateAppointmentStatus(ctx, appt.ID.Hex(), "Done")
	assert.True(t, util.IsKind(err, util.KindValidation))

	done, err := f.svc.UpdateAppointmentStatus(ctx, appt.ID.Hex(), util.AppointmentCompleted)
	require.NoError(t, err)
	assert.Equal(t, util.AppointmentCompleted, done.Status)

	_, err = f.svc.CancelAppointment(ctx, appt.ID.Hex())
	assert.True(t, util.IsKind(err, util.KindConflict))

	_, err = f.svc.UpdateAppointmentStatus(ctx, "64b000000000000000000000", util.AppointmentCompleted)
	assert.True(t, util.IsKind(err, util.KindNotFound))
}

func TestListAppointments_Filters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, p, d := book(t, f)
	other := f.patient(t, "other@example.com")
	_, err := f.svc.BookAppointment(ctx, models.BookAppointment{
		DoctorID: d.ID.Hex(), PatientID: other.ID.Hex(), Date: "2026-10-21", Time: "11:00",
	})
	require.NoError(t, err)

	all, err := f.svc.ListAppointments(ctx, models.AppointmentFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := f.svc.ListAppointments(ctx, models.AppointmentFilter{PatientID: p.ID.Hex()})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, p.ID.Hex(), mine[0].PatientID)

	theirs, err := f.svc.ListAppointments(ctx, models.AppointmentFilter{DoctorID: d.ID.Hex()})
	require.NoError(t, err)
	assert.Len(t, theirs, 2)
}
