package services

import (
	"context"

	"MediConnect/config/db"
	"MediConnect/models"
	"MediConnect/util"

	"github.com/rs/zerolog/log"
)

// GetDoctor returns the doctor with the hospitals still deciding on them.
func (s *Services) GetDoctor(ctx context.Context, id string) (*models.Doctor, error) {
	doctor, err := getAccount(ctx, s, s.Doctors, util.DoctorKey, id, util.DOCTOR_NOT_FOUND)
	if err != nil {
		return nil, err
	}
	if doctor.PendingHospitals, err = s.PendingHospitals(ctx, id); err != nil {
		return nil, err
	}
	return doctor, nil
}

func (s *Services) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	doctors, err := s.Doctors.Find(ctx, db.Filter{})
	if err != nil {
		log.Error().Err(err).Msg("Error from Find")
		return nil, util.Internal(err)
	}
	pending, err := s.Requests.Find(ctx, db.Filter{"status": util.RequestNotApplied})
	if err != nil {
		log.Error().Err(err).Msg("Error from Find")
		return nil, util.Internal(err)
	}
	byDoctor := map[string][]string{}
	for _, r := range pending {
		byDoctor[r.DoctorID] = append(byDoctor[r.DoctorID], r.HospitalID)
	}
	for i := range doctors {
		doctors[i].PendingHospitals = byDoctor[doctors[i].ID.Hex()]
		if doctors[i].PendingHospitals == nil {
			doctors[i].PendingHospitals = []string{}
		}
	}
	return doctors, nil
}

/*
* Patch the doctor
* When hospitals are given also put the doctor on each hospital's roster
 */
func (s *Services) UpdateDoctor(ctx context.Context, id string, update models.DoctorUpdate) (*models.Doctor, error) {
	doctor, err := patchAccount(ctx, s, s.Doctors, util.DoctorKey, id, util.DOCTOR_NOT_FOUND, update, update.Email)
	if err != nil {
		return nil, err
	}
	if update.Hospitals != nil {
		for _, hospitalID := range *update.Hospitals {
			if err := s.Hospitals.AddToSet(ctx, hospitalID, "doctors", id); err != nil {
				log.Warn().Err(err).Str("hospitalId", hospitalID).Msg("Error adding doctor to hospital")
				continue
			}
			invalidate(ctx, s.Cache, util.HospitalKey+hospitalID)
		}
	}
	if doctor.PendingHospitals, err = s.PendingHospitals(ctx, id); err != nil {
		return nil, err
	}
	return doctor, nil
}
