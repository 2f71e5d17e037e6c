package util

const (
	PatientCollection     = "patient"
	DoctorCollection      = "doctor"
	HospitalCollection    = "hospital"
	RequestCollection     = "requests"
	AppointmentCollection = "appointment"
)

const (
	PatientRole  = "patient"
	DoctorRole   = "doctor"
	HospitalRole = "hospital"
)

// Cache keys are prefix + document id.
const (
	PatientKey  = "PATIENT:"
	DoctorKey   = "DOCTOR:"
	HospitalKey = "HOSPITAL:"
)

const (
	RequestNotApplied = "Not Applied"
	RequestAccepted   = "accepted"
	RequestRejected   = "rejected"
)

const (
	AppointmentNotCompleted = "Not Completed"
	AppointmentCompleted    = "Completed"
	AppointmentCancelled    = "Cancelled"
)

const (
	DoctorActive  = "Active"
	DoctorOnLeave = "On Leave"
)

const (
	NO_RECORD_EXISTS             = "No record exists"
	PASSWORD_INCORRECT           = "The password is incorrect"
	EMAIL_ALREADY_EXISTS         = "Email already exists"
	NO_DATA                      = "No data"
	PATIENT_NOT_FOUND            = "Patient not found"
	DOCTOR_NOT_FOUND             = "Doctor not found"
	HOSPITAL_NOT_FOUND           = "Hospital not found"
	REQUEST_NOT_FOUND            = "Request not found"
	APPOINTMENT_NOT_FOUND        = "Appointment not found"
	RECORD_NOT_FOUND             = "Record not found"
	FILE_NOT_FOUND_ON_SERVER     = "File not found on server"
	NO_FILE_UPLOADED             = "No file uploaded"
	INVALID_REQUEST_STATUS       = "status must be accepted or rejected"
	REQUEST_ALREADY_DECIDED      = "Request has already been decided"
	INVALID_APPOINTMENT_STATUS   = "status must be Not Completed, Completed or Cancelled"
	APPOINTMENT_ALREADY_CLOSED   = "Appointment is already closed"
	INVALID_DATE                 = "date must be in YYYY-MM-DD format"
	DATE_IN_PAST                 = "date must not be in the past"
	INVALID_TIME                 = "time must be in HH:MM format"
	DOCTOR_AND_PATIENT_REQUIRED  = "doctorId and patientId are required"
	OTP_NOT_REQUESTED            = "No OTP pending. Please request a new OTP"
	OTP_EXPIRED                  = "OTP expired. Please request a new OTP"
	OTP_INVALID                  = "Invalid OTP"
	FAILED_TO_SEND_OTP           = "Failed to send OTP email"
	AMOUNT_AND_CURRENCY_REQUIRED = "Amount and currency are required."
	MISSING_AUTHORIZATION_HEADER = "missing authorization header"
	INVALID_AUTHORIZATION_FORMAT = "invalid authorization format"
	INVALID_OR_EXPIRED_TOKEN     = "invalid or expired token"
	ROLE_DOES_NOT_HAVE_ACCESS    = "This role does not have access"
	USER_DOES_NOT_HAVE_ACCESS    = "This user does not have access to this resource"
	INTERNAL_SERVER_ERROR        = "Internal Server Error"
)
