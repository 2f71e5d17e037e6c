package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AccountBase holds the fields every account variant shares. It is stored
// inline in the patient, doctor and hospital documents.
type AccountBase struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Mobile    string             `json:"mobile" bson:"mobile"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password"`
	Role      string             `json:"role" bson:"role"`
	OTP       string             `json:"-" bson:"otp,omitempty"`
	OTPExpiry *time.Time         `json:"-" bson:"otpExpiry,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (a *AccountBase) Base() *AccountBase { return a }

// Account is implemented by *Patient, *Doctor and *Hospital.
type Account interface {
	Base() *AccountBase
}
