package services

import (
	"context"
	"time"

	"MediConnect/config/db"
	"MediConnect/models"
	"MediConnect/util"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

/*
* Validate the ids, date and time from request
* Doctor and patient must exist, missing names are copied from them
* Save with status Not Completed
* Link doctor and patient, failures there are only logged
 */
func (s *Services) BookAppointment(ctx context.Context, in models.BookAppointment) (*models.Appointment, error) {
	if in.DoctorID == "" || in.PatientID == "" {
		return nil, util.Validation(util.DOCTOR_AND_PATIENT_REQUIRED)
	}
	if err := s.validateSlot(in.Date, in.Time); err != nil {
		return nil, err
	}
	doctor, err := s.Doctors.FindByID(ctx, in.DoctorID)
	if err != nil {
		return nil, storeError(err, util.DOCTOR_NOT_FOUND)
	}
	patient, err := s.Patients.FindByID(ctx, in.PatientID)
	if err != nil {
		return nil, storeError(err, util.PATIENT_NOT_FOUND)
	}

	now := s.Now().UTC()
	appt := &models.Appointment{
		DoctorID:     in.DoctorID,
		DoctorName:   firstNonEmpty(in.DoctorName, doctor.Name),
		PatientID:    in.PatientID,
		PatientName:  firstNonEmpty(in.PatientName, patient.Name),
		PatientEmail: firstNonEmpty(in.PatientEmail, patient.Email),
		Date:         in.Date,
		Time:         in.Time,
		Status:       util.AppointmentNotCompleted,
		HospitalName: in.HospitalName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	id, err := s.Appointments.Insert(ctx, appt)
	if err != nil {
		log.Error().Err(err).Msg("Error from Insert")
		return nil, util.Internal(err)
	}
	appt.ID = id

	if err := s.Patients.AddToSet(ctx, in.PatientID, "doctors", in.DoctorID); err != nil {
		log.Warn().Err(err).Str("appointmentId", id.Hex()).Msg("Error linking doctor to patient")
	}
	if err := s.Doctors.AddToSet(ctx, in.DoctorID, "patients", in.PatientID); err != nil {
		log.Warn().Err(err).Str("appointmentId", id.Hex()).Msg("Error linking patient to doctor")
	}
	invalidate(ctx, s.Cache, util.PatientKey+in.PatientID, util.DoctorKey+in.DoctorID)
	return appt, nil
}

func (s *Services) validateSlot(date, clock string) error {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return util.Validation(util.INVALID_DATE)
	}
	if _, err := time.Parse(timeLayout, clock); err != nil || len(clock) != len(timeLayout) {
		return util.Validation(util.INVALID_TIME)
	}
	now := s.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(today) {
		return util.Validation(util.DATE_IN_PAST)
	}
	return nil
}

func (s *Services) ListAppointments(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error) {
	f := db.Filter{}
	if filter.PatientID != "" {
		f["patientId"] = filter.PatientID
	}
	if filter.DoctorID != "" {
		f["doctorId"] = filter.DoctorID
	}
	appts, err := s.Appointments.Find(ctx, f)
	if err != nil {
		log.Error().Err(err).Msg("Error from Find")
		return nil, util.Internal(err)
	}
	return appts, nil
}

func (s *Services) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.Appointments.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, util.APPOINTMENT_NOT_FOUND)
	}
	return appt, nil
}

/*
* Status must be one of the three known values
* Writing the current status again changes nothing
* Completed and Cancelled are final
 */
func (s *Services) UpdateAppointmentStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	switch status {
	case util.AppointmentNotCompleted, util.AppointmentCompleted, util.AppointmentCancelled:
	default:
		return nil, util.Validation(util.INVALID_APPOINTMENT_STATUS)
	}
	appt, err := s.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt.Status == status {
		return appt, nil
	}
	if appt.Status != util.AppointmentNotCompleted {
		return nil, util.Conflict(util.APPOINTMENT_ALREADY_CLOSED)
	}
	updated, err := s.Appointments.Patch(ctx, id, bson.M{"status": status, "updatedAt": s.Now().UTC()})
	if err != nil {
		return nil, storeError(err, util.APPOINTMENT_NOT_FOUND)
	}
	log.Info().Str("appointmentId", id).Str("status", status).Msg("appointment updated")
	return updated, nil
}

func (s *Services) CancelAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	return s.UpdateAppointmentStatus(ctx, id, util.AppointmentCancelled)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
