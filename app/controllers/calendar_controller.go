package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/joycybakery/fournil/app/services"
	"github.com/joycybakery/fournil/pkg/response"
)

type CalendarController struct {
	service *services.CalendarService
}

func NewCalendarController() *CalendarController {
	return &CalendarController{service: services.NewCalendarService()}
}

// Month returns the overlap view for ?year=&month= (defaults to the current
// month). ?tz= names the viewer's IANA time zone; creation timestamps are
// bucketed into days in that zone.
func (c *CalendarController) Month(w http.ResponseWriter, r *http.Request) {
	loc := time.Local
	if tz := r.URL.Query().Get("tz"); tz != "" {
		parsed, err := time.LoadLocation(tz)
		if err != nil {
			response.Error(w, http.StatusUnprocessableEntity, "Unknown time zone")
			return
		}
		loc = parsed
	}

	year, month := services.Today(loc)
	if y := r.URL.Query().Get("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			response.Error(w, http.StatusUnprocessableEntity, "Invalid year")
			return
		}
		year = parsed
	}
	if m := r.URL.Query().Get("month"); m != "" {
		parsed, err := strconv.Atoi(m)
		if err != nil || parsed < 1 || parsed > 12 {
			response.Error(w, http.StatusUnprocessableEntity, "Invalid month")
			return
		}
		month = parsed
	}

	view, err := c.service.Month(r.Context(), year, month, loc)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, view)
}
