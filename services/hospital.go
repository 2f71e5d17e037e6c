package services

import (
	"context"

	"MediConnect/config/db"
	"MediConnect/models"
	"MediConnect/util"

	"github.com/rs/zerolog/log"
)

func (s *Services) GetHospital(ctx context.Context, id string) (*models.Hospital, error) {
	return getAccount(ctx, s, s.Hospitals, util.HospitalKey, id, util.HOSPITAL_NOT_FOUND)
}

func (s *Services) ListHospitals(ctx context.Context) ([]models.Hospital, error) {
	hospitals, err := s.Hospitals.Find(ctx, db.Filter{})
	if err != nil {
		log.Error().Err(err).Msg("Error from Find")
		return nil, util.Internal(err)
	}
	return hospitals, nil
}

func (s *Services) UpdateHospital(ctx context.Context, id string, update models.HospitalUpdate) (*models.Hospital, error) {
	return patchAccount(ctx, s, s.Hospitals, util.HospitalKey, id, util.HOSPITAL_NOT_FOUND, update, update.Email)
}
