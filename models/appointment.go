package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Appointment struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	DoctorID     string             `json:"doctorId" bson:"doctorId"`
	DoctorName   string             `json:"doctorName" bson:"doctorName"`
	PatientID    string             `json:"patientId" bson:"patientId"`
	PatientName  string             `json:"patientName" bson:"patientName"`
	PatientEmail string             `json:"patientEmail" bson:"patientEmail"`
	Date         string             `json:"date" bson:"date"`
	Time         string             `json:"time" bson:"time"`
	Status       string             `json:"status" bson:"status"`
	HospitalName string             `json:"hospitalName,omitempty" bson:"hospitalName,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type BookAppointment struct {
	DoctorID     string `json:"doctorId"`
	PatientID    string `json:"patientId"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	DoctorName   string `json:"doctorName"`
	PatientName  string `json:"patientName"`
	PatientEmail string `json:"patientEmail" binding:"omitempty,email"`
	HospitalName string `json:"hospitalName"`
}

type AppointmentStatus struct {
	Status string `json:"status" binding:"required"`
}

type AppointmentFilter struct {
	PatientID string `form:"patientId"`
	DoctorID  string `form:"doctorId"`
}
