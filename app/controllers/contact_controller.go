package controllers

import (
	"net/http"

	"github.com/joycybakery/fournil/app/services"
	"github.com/joycybakery/fournil/pkg/bind"
	"github.com/joycybakery/fournil/pkg/response"
)

type ContactController struct {
	service *services.ContactService
}

func NewContactController() *ContactController {
	return &ContactController{service: services.NewContactService()}
}

// Send relays a contact-form submission to the bakery's inbox.
func (c *ContactController) Send(w http.ResponseWriter, r *http.Request) {
	var body services.ContactForm
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := c.service.Relay(body); err != nil {
		fail(w, r, err)
		return
	}
	response.Message(w, "Email sent successfully")
}
