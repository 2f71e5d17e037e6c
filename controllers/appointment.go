package controllers

import (
	"net/http"

	"MediConnect/config/authorization"
	"MediConnect/models"
	"MediConnect/util"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Appointment(private *gin.RouterGroup) {
	appointment := private.Group("/appointment")
	{
		appointment.GET("", h.ListAppointments)
		appointment.POST("", authorization.Authorize(util.PatientRole), h.BookAppointment)
		appointment.GET("/:id", h.GetAppointment)
		appointment.PUT("/:id", authorization.Authorize(util.PatientRole, util.DoctorRole), h.UpdateAppointment)
	}
}

func (h *Handler) ListAppointments(c *gin.Context) {
	var filter models.AppointmentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		fail(c, util.Validation(err.Error()))
		return
	}
	appts, err := h.svc.ListAppointments(c.Request.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

/*
* A patient books for themselves
* The patient id defaults to the caller
 */
func (h *Handler) BookAppointment(c *gin.Context) {
	var body models.BookAppointment
	if !bindJSON(c, &body) || !ownID(c, &body.PatientID) {
		return
	}
	appt, err := h.svc.BookAppointment(c.Request.Context(), body)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (h *Handler) GetAppointment(c *gin.Context) {
	appt, err := h.svc.GetAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

/*
* Only the booked patient or doctor can change the status
 */
func (h *Handler) UpdateAppointment(c *gin.Context) {
	var body models.AppointmentStatus
	if !bindJSON(c, &body) {
		return
	}
	current, err := h.svc.GetAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	if self := c.GetString(authorization.UserIDKey); self != current.PatientID && self != current.DoctorID {
		fail(c, util.Forbidden(util.USER_DOES_NOT_HAVE_ACCESS))
		return
	}
	appt, err := h.svc.UpdateAppointmentStatus(c.Request.Context(), c.Param("id"), body.Status)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}
