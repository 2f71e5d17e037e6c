package models

type Patient struct {
	AccountBase `bson:",inline"`
	Age         int      `json:"age,omitempty" bson:"age,omitempty"`
	Gender      string   `json:"gender" bson:"gender"`
	Address     string   `json:"address,omitempty" bson:"address,omitempty"`
	Record      []string `json:"record" bson:"record"`
	Doctors     []string `json:"doctors" bson:"doctors"`
}

type PatientSignup struct {
	Name     string `json:"name" binding:"required"`
	Mobile   string `json:"mobile" binding:"required,mobile"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,strongpassword"`
	Gender   string `json:"gender" binding:"required"`
	Age      int    `json:"age" binding:"omitempty,min=0,max=150"`
	Address  string `json:"address"`
}

// PatientUpdate only writes the fields that are present in the request.
type PatientUpdate struct {
	Name    *string   `json:"name" bson:"name,omitempty"`
	Mobile  *string   `json:"mobile" bson:"mobile,omitempty" binding:"omitempty,mobile"`
	Email   *string   `json:"email" bson:"email,omitempty" binding:"omitempty,email"`
	Age     *int      `json:"age" bson:"age,omitempty" binding:"omitempty,min=0,max=150"`
	Gender  *string   `json:"gender" bson:"gender,omitempty"`
	Address *string   `json:"address" bson:"address,omitempty"`
	Record  *[]string `json:"record" bson:"record,omitempty"`
	Doctors *[]string `json:"doctors" bson:"doctors,omitempty"`
}

func (s PatientSignup) Patient() *Patient {
	return &Patient{
		AccountBase: AccountBase{Name: s.Name, Mobile: s.Mobile, Email: s.Email, Password: s.Password},
		Age:         s.Age,
		Gender:      s.Gender,
		Address:     s.Address,
		Record:      []string{},
		Doctors:     []string{},
	}
}
