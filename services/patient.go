package services

import (
	"context"
	"errors"
	"io"

	"MediConnect/models"
	"MediConnect/storage"
	"MediConnect/util"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func (s *Services) GetPatient(ctx context.Context, id string) (*models.Patient, error) {
	return getAccount(ctx, s, s.Patients, util.PatientKey, id, util.PATIENT_NOT_FOUND)
}

func (s *Services) UpdatePatient(ctx context.Context, id string, update models.PatientUpdate) (*models.Patient, error) {
	return patchAccount(ctx, s, s.Patients, util.PatientKey, id, util.PATIENT_NOT_FOUND, update, update.Email)
}

/*
* Check the patient exists before storing anything
* Store the file under the patient's directory
* Append the stored path to the patient's record list
 */
func (s *Services) UploadRecord(ctx context.Context, patientID, filename string, content io.Reader) (*models.Patient, error) {
	if _, err := s.Patients.FindByID(ctx, patientID); err != nil {
		return nil, storeError(err, util.PATIENT_NOT_FOUND)
	}
	stored, err := s.Records.Save(ctx, patientID, filename, content)
	if errors.Is(err, storage.ErrRecordTooLarge) {
		return nil, util.Validation(err.Error())
	}
	if err != nil {
		log.Error().Err(err).Msg("Error from Save")
		return nil, util.Internal(err)
	}
	if err := s.Patients.AddToSet(ctx, patientID, "record", stored); err != nil {
		return nil, storeError(err, util.PATIENT_NOT_FOUND)
	}
	invalidate(ctx, s.Cache, util.PatientKey+patientID)
	log.Info().Str("patientId", patientID).Str("record", stored).Msg("record uploaded")
	return s.GetPatient(ctx, patientID)
}

/*
* Take the most recent record reference of the patient
* Open it from storage, the caller closes the file
 */
func (s *Services) OpenRecord(ctx context.Context, patientID string) (afero.File, string, error) {
	patient, err := s.Patients.FindByID(ctx, patientID)
	if err != nil {
		return nil, "", storeError(err, util.PATIENT_NOT_FOUND)
	}
	if len(patient.Record) == 0 {
		return nil, "", util.NotFound(util.RECORD_NOT_FOUND)
	}
	stored := patient.Record[len(patient.Record)-1]
	f, err := s.Records.Open(stored)
	if errors.Is(err, storage.ErrRecordNotFound) {
		return nil, "", util.NotFound(util.FILE_NOT_FOUND_ON_SERVER)
	}
	if err != nil {
		log.Error().Err(err).Msg("Error from Open")
		return nil, "", util.Internal(err)
	}
	return f, storage.DisplayName(stored), nil
}
