package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joycybakery/fournil/app/services"
	"github.com/joycybakery/fournil/pkg/bind"
	"github.com/joycybakery/fournil/pkg/response"
)

type VacationController struct {
	service *services.VacationService
}

func NewVacationController() *VacationController {
	return &VacationController{service: services.NewVacationService()}
}

// Index lists vacations ascending by start date, with derived state and
// duration.
func (c *VacationController) Index(w http.ResponseWriter, r *http.Request) {
	vacations, err := c.service.List(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, vacations)
}

type vacationRequest struct {
	StartDate string `json:"startDate" validate:"required,date"`
	EndDate   string `json:"endDate" validate:"required,date"`
	Reason    string `json:"reason" validate:"nullable,max=500"`
}

// Store creates a vacation. The end date must be on or after the start
// date; nothing is written otherwise.
func (c *VacationController) Store(w http.ResponseWriter, r *http.Request) {
	var body vacationRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	vacation, err := c.service.Create(r.Context(), body.StartDate, body.EndDate, body.Reason)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, vacation)
}

// Destroy deletes a vacation.
func (c *VacationController) Destroy(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		fail(w, r, err)
		return
	}
	response.Message(w, "Vacation deleted")
}
