package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"

	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/models"
)

type FailureRequest struct {
	InterventionID uint   `json:"intervention_id"`
	FailureType    string `json:"failure_type"`
	Status         string `json:"status"`
}

type InterventionRequest struct {
	DeviceSerialNumber int              `json:"device_serial_number"`
	Type               string           `json:"type"`
	Date               string           `json:"date"`
	Note               *string          `json:"note"`
	Status             string           `json:"status"`
	EstimatedDuration  *string          `json:"estimated_duration"`
	Failures           []FailureRequest `json:"failures"`
}

var interventionRequestSchema = z.Struct(z.Shape{
	"DeviceSerialNumber": z.Int().GT(0).Required(),
	"Type":               z.String().Required(),
	"Status":             z.String().Required(),
})

var failureRequestSchema = z.Struct(z.Shape{
	"FailureType": z.String().Required(),
	"Status":      z.String().Required(),
})

func (req *FailureRequest) toFailure() (*models.Failure, error) {
	status, err := models.ParseFailureStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}
	return &models.Failure{
		InterventionID: req.InterventionID,
		FailureType:    req.FailureType,
		Status:         status,
	}, nil
}

func (req *InterventionRequest) toIntervention() (*models.Intervention, error) {
	intervention := &models.Intervention{
		DeviceSerialNumber: req.DeviceSerialNumber,
		Note:               req.Note,
		EstimatedDuration:  req.EstimatedDuration,
	}

	var err error
	if intervention.Type, err = models.ParseInterventionType(req.Type); err != nil {
		return nil, fmt.Errorf("type: %w", err)
	}
	if intervention.Status, err = models.ParseInterventionStatus(req.Status); err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}
	if req.Date != "" {
		if intervention.Date, err = time.Parse(time.DateOnly, req.Date); err != nil {
			return nil, fmt.Errorf("date: %w", err)
		}
	}

	for idx := range req.Failures {
		if req.Failures[idx].FailureType == "" {
			return nil, fmt.Errorf("failures[%d].failure_type is required", idx)
		}
		failure, err := req.Failures[idx].toFailure()
		if err != nil {
			return nil, fmt.Errorf("failures[%d].%w", idx, err)
		}
		intervention.Failures = append(intervention.Failures, *failure)
	}

	return intervention, nil
}

func bindIntervention(c *gin.Context) (*models.Intervention, bool) {
	var req InterventionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return nil, false
	}
	if errs := interventionRequestSchema.Validate(&req); errs != nil {
		badRequest(c, errs)
		return nil, false
	}

	intervention, err := req.toIntervention()
	if err != nil {
		badRequest(c, err)
		return nil, false
	}
	return intervention, true
}

func bindFailure(c *gin.Context) (*models.Failure, bool) {
	var req FailureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return nil, false
	}
	if errs := failureRequestSchema.Validate(&req); errs != nil {
		badRequest(c, errs)
		return nil, false
	}

	failure, err := req.toFailure()
	if err != nil {
		badRequest(c, err)
		return nil, false
	}
	return failure, true
}

func (rs *RestfulServer) CreateIntervention(c *gin.Context) {
	intervention, ok := bindIntervention(c)
	if !ok {
		return
	}

	if err := rs.Iot.Maintenance.CreateIntervention(c.Request.Context(), intervention); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, intervention)
}

func (rs *RestfulServer) ListInterventions(c *gin.Context) {
	interventions, err := rs.Iot.Maintenance.ListInterventions(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, nonNil(interventions))
}

func (rs *RestfulServer) GetIntervention(c *gin.Context) {
	id, ok := idParam(c, "intervention_id")
	if !ok {
		return
	}

	intervention, err := rs.Iot.Maintenance.GetIntervention(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, intervention)
}

func (rs *RestfulServer) UpdateIntervention(c *gin.Context) {
	id, ok := idParam(c, "intervention_id")
	if !ok {
		return
	}

	input, ok := bindIntervention(c)
	if !ok {
		return
	}

	intervention, err := rs.Iot.Maintenance.UpdateIntervention(c.Request.Context(), id, input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, intervention)
}

func (rs *RestfulServer) DeleteIntervention(c *gin.Context) {
	id, ok := idParam(c, "intervention_id")
	if !ok {
		return
	}

	intervention, err := rs.Iot.Maintenance.DeleteIntervention(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, intervention)
}

func (rs *RestfulServer) CreateFailure(c *gin.Context) {
	failure, ok := bindFailure(c)
	if !ok {
		return
	}
	if failure.InterventionID == 0 {
		badRequest(c, "intervention_id is required")
		return
	}

	if err := rs.Iot.Maintenance.CreateFailure(c.Request.Context(), failure); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, failure)
}

func (rs *RestfulServer) ListFailures(c *gin.Context) {
	failures, err := rs.Iot.Maintenance.ListFailures(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, nonNil(failures))
}

func (rs *RestfulServer) GetFailure(c *gin.Context) {
	id, ok := idParam(c, "failure_id")
	if !ok {
		return
	}

	failure, err := rs.Iot.Maintenance.GetFailure(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, failure)
}

func (rs *RestfulServer) UpdateFailure(c *gin.Context) {
	id, ok := idParam(c, "failure_id")
	if !ok {
		return
	}

	input, ok := bindFailure(c)
	if !ok {
		return
	}

	failure, err := rs.Iot.Maintenance.UpdateFailure(c.Request.Context(), id, input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, failure)
}

func (rs *RestfulServer) DeleteFailure(c *gin.Context) {
	id, ok := idParam(c, "failure_id")
	if !ok {
		return
	}

	failure, err := rs.Iot.Maintenance.DeleteFailure(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, failure)
}
