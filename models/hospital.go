package models

type Hospital struct {
	AccountBase `bson:",inline"`
	Location    string   `json:"location" bson:"location"`
	Rating      float64  `json:"rating" bson:"rating"`
	Doctors     []string `json:"doctors" bson:"doctors"`
	Patients    []string `json:"patients" bson:"patients"`
}

type HospitalSignup struct {
	Name     string `json:"name" binding:"required"`
	Mobile   string `json:"mobile" binding:"required,mobile"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,strongpassword"`
	Location string `json:"location" binding:"required"`
}

type HospitalUpdate struct {
	Name     *string   `json:"name" bson:"name,omitempty"`
	Mobile   *string   `json:"mobile" bson:"mobile,omitempty" binding:"omitempty,mobile"`
	Email    *string   `json:"email" bson:"email,omitempty" binding:"omitempty,email"`
	Location *string   `json:"location" bson:"location,omitempty"`
	Rating   *float64  `json:"rating" bson:"rating,omitempty" binding:"omitempty,min=0,max=5"`
	Patients *[]string `json:"patients" bson:"patients,omitempty"`
}

func (s HospitalSignup) Hospital() *Hospital {
	return &Hospital{
		AccountBase: AccountBase{Name: s.Name, Mobile: s.Mobile, Email: s.Email, Password: s.Password},
		Location:    s.Location,
		Doctors:     []string{},
		Patients:    []string{},
	}
}
