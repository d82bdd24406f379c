package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joycybakery/fournil/app/services"
	"github.com/joycybakery/fournil/pkg/bind"
	"github.com/joycybakery/fournil/pkg/response"
)

type TeamController struct {
	service *services.TeamService
}

func NewTeamController() *TeamController {
	return &TeamController{service: services.NewTeamService()}
}

// Index lists every team member.
func (c *TeamController) Index(w http.ResponseWriter, r *http.Request) {
	members, err := c.service.List(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, members)
}

type teamMemberRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Role  string `json:"role" validate:"required,max=255"`
	Email string `json:"email" validate:"nullable,email"`
	Phone string `json:"phone" validate:"nullable,max=50"`
}

// Store creates a team member.
func (c *TeamController) Store(w http.ResponseWriter, r *http.Request) {
	var body teamMemberRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	member, err := c.service.Create(r.Context(), body.Name, body.Role, body.Email, body.Phone)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, member)
}

// Destroy deletes a team member.
func (c *TeamController) Destroy(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		fail(w, r, err)
		return
	}
	response.Message(w, "Team member deleted")
}
