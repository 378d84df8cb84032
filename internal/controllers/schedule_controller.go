package controllers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/cmaclennan/aquivis-sub000/internal/dtos"
	"github.com/cmaclennan/aquivis-sub000/internal/services"
	"github.com/cmaclennan/aquivis-sub000/internal/utils"
)

var validate = validator.New()

type ScheduleController struct {
	scheduleService *services.ScheduleService
}

func NewScheduleController(ss *services.ScheduleService) *ScheduleController {
	return &ScheduleController{scheduleService: ss}
}

// ----------------------------------------------------------------
// GET /api/v1/schedule/daily?date=YYYY-MM-DD&property_id=...&property_id=...
// ----------------------------------------------------------------
func (c *ScheduleController) DailyScheduleHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q, err := parseDailyScheduleQuery(r)
	if err != nil {
		utils.RespondErrorWithCode(
			w,
			http.StatusBadRequest,
			utils.ErrCodeInvalidPayload,
			err.Error(),
			nil,
			nil,
		)
		return
	}
	if err := validate.Struct(q); err != nil {
		utils.RespondErrorWithCode(
			w,
			http.StatusBadRequest,
			utils.ErrCodeValidation,
			"Invalid schedule query",
			nil,
			err,
		)
		return
	}

	date := time.Now()
	if q.Date != "" {
		date, _ = time.Parse("2006-01-02", q.Date)
	}

	resp, svcErr := c.scheduleService.GenerateDailySchedule(ctx, date, q.PropertyIDs)
	if svcErr != nil {
		utils.Logger.WithError(svcErr).Error("Failed to generate daily schedule")
		utils.RespondErrorWithCode(
			w,
			http.StatusInternalServerError,
			utils.ErrCodeInternal,
			"Failed to generate schedule",
			nil,
			svcErr,
		)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func parseDailyScheduleQuery(r *http.Request) (*dtos.DailyScheduleQuery, error) {
	q := &dtos.DailyScheduleQuery{
		Date: r.URL.Query().Get("date"),
	}
	for _, raw := range r.URL.Query()["property_id"] {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		q.PropertyIDs = append(q.PropertyIDs, id)
	}
	return q, nil
}
