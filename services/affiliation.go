package services

import (
	"context"
	"errors"
	"time"

	"MediConnect/config/db"
	"MediConnect/models"
	"MediConnect/util"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

const linkRetries = 4

/*
* The hospital must exist
* Missing doctor details are copied from the doctor record when there is one
* Every call creates a new request in Not Applied state
 */
func (s *Services) ApplyToHospital(ctx context.Context, hospitalID string, in models.ApplyRequest) (*models.AffiliationRequest, error) {
	if _, err := s.Hospitals.FindByID(ctx, hospitalID); err != nil {
		return nil, storeError(err, util.HOSPITAL_NOT_FOUND)
	}

	req := &models.AffiliationRequest{
		HospitalID:     hospitalID,
		DoctorID:       in.DoctorID,
		DoctorName:     in.DoctorName,
		Specialization: in.Specialization,
		Experience:     in.Experience,
		Status:         util.RequestNotApplied,
	}
	if req.DoctorName == "" || len(req.Specialization) == 0 || req.Experience == 0 {
		doctor, err := s.Doctors.FindByID(ctx, in.DoctorID)
		switch {
		case err == nil:
			if req.DoctorName == "" {
				req.DoctorName = doctor.Name
			}
			if len(req.Specialization) == 0 {
				req.Specialization = doctor.Specialization
			}
			if req.Experience == 0 {
				req.Experience = doctor.Experience
			}
		case !errors.Is(err, db.ErrNotFound):
			log.Error().Err(err).Msg("Error from FindByID")
			return nil, util.Internal(err)
		}
	}
	if req.Specialization == nil {
		req.Specialization = []string{}
	}

	now := s.Now().UTC()
	req.CreatedAt = now
	req.UpdatedAt = now
	id, err := s.Requests.Insert(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("Error from Insert")
		return nil, util.Internal(err)
	}
	req.ID = id
	log.Info().Str("hospitalId", hospitalID).Str("doctorId", in.DoctorID).Msg("affiliation requested")
	return req, nil
}

func (s *Services) ListRequests(ctx context.Context, hospitalID string) ([]models.AffiliationRequest, error) {
	requests, err := s.Requests.Find(ctx, db.Filter{"hospitalId": hospitalID})
	if err != nil {
		log.Error().Err(err).Msg("Error from Find")
		return nil, util.Internal(err)
	}
	return requests, nil
}

/*
* Only accepted or rejected can be written
* The request must belong to the hospital
* A decided request can only be decided the same way again
* On accept link both rosters first and drop their cached copies, then record the status
 */
func (s *Services) DecideRequest(ctx context.Context, hospitalID, requestID, status string) (*models.AffiliationRequest, error) {
	if status != util.RequestAccepted && status != util.RequestRejected {
		return nil, util.Validation(util.INVALID_REQUEST_STATUS)
	}
	req, err := s.Requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, storeError(err, util.REQUEST_NOT_FOUND)
	}
	if req.HospitalID != hospitalID {
		return nil, util.NotFound(util.REQUEST_NOT_FOUND)
	}
	if req.Status != util.RequestNotApplied && req.Status != status {
		return nil, util.Conflict(util.REQUEST_ALREADY_DECIDED)
	}

	if status == util.RequestAccepted {
		if err := s.linkAffiliation(ctx, req.HospitalID, req.DoctorID); err != nil {
			log.Error().Err(err).Str("requestId", requestID).Msg("Error from linkAffiliation")
			return nil, storeError(err, util.DOCTOR_NOT_FOUND)
		}
		invalidate(ctx, s.Cache, util.HospitalKey+req.HospitalID, util.DoctorKey+req.DoctorID)
	}

	updated, err := s.Requests.Patch(ctx, requestID, bson.M{"status": status, "updatedAt": s.Now().UTC()})
	if err != nil {
		log.Error().Err(err).Msg("Error from Patch")
		return nil, util.Internal(err)
	}
	invalidate(ctx, s.Cache, util.HospitalKey+req.HospitalID, util.DoctorKey+req.DoctorID)
	log.Info().Str("requestId", requestID).Str("status", status).Msg("affiliation decided")
	return updated, nil
}

// PendingHospitals lists the hospitals a doctor is still waiting on.
func (s *Services) PendingHospitals(ctx context.Context, doctorID string) ([]string, error) {
	requests, err := s.Requests.Find(ctx, db.Filter{"doctorId": doctorID, "status": util.RequestNotApplied})
	if err != nil {
		log.Error().Err(err).Msg("Error from Find")
		return nil, util.Internal(err)
	}
	ids := make([]string, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.HospitalID)
	}
	return ids, nil
}

/*
* Re-apply both roster writes for every accepted request
* Requests whose hospital or doctor is gone are skipped
 */
func (s *Services) Reconcile(ctx context.Context) (int, error) {
	requests, err := s.Requests.Find(ctx, db.Filter{"status": util.RequestAccepted})
	if err != nil {
		log.Error().Err(err).Msg("Error from Find")
		return 0, err
	}
	processed := 0
	for _, r := range requests {
		if err := ctx.Err(); err != nil {
			return processed, err
		}
		if err := s.linkAffiliation(ctx, r.HospitalID, r.DoctorID); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				log.Warn().Str("requestId", r.ID.Hex()).Msg("skipping request with missing hospital or doctor")
				continue
			}
			return processed, err
		}
		invalidate(ctx, s.Cache, util.HospitalKey+r.HospitalID, util.DoctorKey+r.DoctorID)
		processed++
	}
	log.Info().Int("processed", processed).Msg("affiliations reconciled")
	return processed, nil
}

/*
* Both writes are add-to-set so repeating them is harmless
* Transient store errors are retried with exponential backoff
* A missing document is not retried
 */
func (s *Services) linkAffiliation(ctx context.Context, hospitalID, doctorID string) error {
	op := func() error {
		if err := s.Hospitals.AddToSet(ctx, hospitalID, "doctors", doctorID); err != nil {
			return permanentIfMissing(err)
		}
		if err := s.Doctors.AddToSet(ctx, doctorID, "hospitals", hospitalID); err != nil {
			return permanentIfMissing(err)
		}
		return nil
	}
	policy := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(50*time.Millisecond),
		backoff.WithMaxElapsedTime(5*time.Second),
	)
	return backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(policy, linkRetries), ctx))
}

func permanentIfMissing(err error) error {
	if errors.Is(err, db.ErrNotFound) {
		return backoff.Permanent(err)
	}
	return err
}

// storeError turns a store lookup failure into NotFound or Internal.
func storeError(err error, notFound string) error {
	if errors.Is(err, db.ErrNotFound) {
		return util.NotFound(notFound)
	}
	log.Error().Err(err).Msg("store error")
	return util.Internal(err)
}
