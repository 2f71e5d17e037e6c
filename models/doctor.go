package models

type Doctor struct {
	AccountBase    `bson:",inline"`
	Age            int      `json:"age,omitempty" bson:"age,omitempty"`
	Gender         string   `json:"gender,omitempty" bson:"gender,omitempty"`
	Specialization []string `json:"specialization" bson:"specialization"`
	Experience     int      `json:"experience" bson:"experience"`
	Status         string   `json:"status" bson:"status"`
	Hospitals      []string `json:"hospitals" bson:"hospitals"`
	Patients       []string `json:"patients" bson:"patients"`

	// Derived from affiliation requests on read.
	PendingHospitals []string `json:"pendingHospitals" bson:"-"`
}

type DoctorSignup struct {
	Name           string   `json:"name" binding:"required"`
	Mobile         string   `json:"mobile" binding:"required,mobile"`
	Email          string   `json:"email" binding:"required,email"`
	Password       string   `json:"password" binding:"required,strongpassword"`
	Specialization []string `json:"specialization" binding:"required,min=1"`
	Experience     int      `json:"experience" binding:"omitempty,min=0"`
	Gender         string   `json:"gender"`
	Age            int      `json:"age" binding:"omitempty,min=0,max=150"`
}

type DoctorUpdate struct {
	Name           *string   `json:"name" bson:"name,omitempty"`
	Mobile         *string   `json:"mobile" bson:"mobile,omitempty" binding:"omitempty,mobile"`
	Email          *string   `json:"email" bson:"email,omitempty" binding:"omitempty,email"`
	Age            *int      `json:"age" bson:"age,omitempty" binding:"omitempty,min=0,max=150"`
	Gender         *string   `json:"gender" bson:"gender,omitempty"`
	Specialization *[]string `json:"specialization" bson:"specialization,omitempty"`
	Experience     *int      `json:"experience" bson:"experience,omitempty" binding:"omitempty,min=0"`
	Status         *string   `json:"status" bson:"status,omitempty" binding:"omitempty,oneof=Active 'On Leave'"`
	Hospitals      *[]string `json:"hospitals" bson:"hospitals,omitempty"`
	Patients       *[]string `json:"patients" bson:"patients,omitempty"`
}

// Doctor starts every new account On Leave with no affiliations.
func (s DoctorSignup) Doctor() *Doctor {
	return &Doctor{
		AccountBase:    AccountBase{Name: s.Name, Mobile: s.Mobile, Email: s.Email, Password: s.Password},
		Age:            s.Age,
		Gender:         s.Gender,
		Specialization: s.Specialization,
		Experience:     s.Experience,
		Status:         "On Leave",
		Hospitals:      []string{},
		Patients:       []string{},
	}
}
