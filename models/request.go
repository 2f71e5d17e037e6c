package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AffiliationRequest is a doctor's application to join a hospital.
type AffiliationRequest struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	HospitalID     string             `json:"hospitalId" bson:"hospitalId"`
	DoctorID       string             `json:"doctorId" bson:"doctorId"`
	DoctorName     string             `json:"doctorName" bson:"doctorName"`
	Specialization []string           `json:"specialization" bson:"specialization"`
	Experience     int                `json:"experience" bson:"experience"`
	Status         string             `json:"status" bson:"status"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type ApplyRequest struct {
	DoctorID       string   `json:"doctorId"`
	DoctorName     string   `json:"doctorName"`
	Specialization []string `json:"specialization"`
	Experience     int      `json:"experience" binding:"omitempty,min=0"`
}

type DecisionRequest struct {
	Status string `json:"status" binding:"required"`
}
