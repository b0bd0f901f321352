package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/models"
)

type ListAlertsQuery struct {
	Limit     int    `zog:"limit"`
	Offset    int    `zog:"offset"`
	AlertType string `zog:"alert_type"`
}

var listAlertsQuerySchema = z.Struct(z.Shape{
	"Limit":     z.Int().GTE(1).Default(models.DefaultPageLimit),
	"Offset":    z.Int().GTE(0).Default(0),
	"AlertType": z.String(),
})

func (rs *RestfulServer) ListAlerts(c *gin.Context) {
	var query ListAlertsQuery
	if errs := listAlertsQuerySchema.Parse(zhttp.Request(c.Request), &query); errs != nil {
		badRequest(c, errs)
		return
	}

	filter := models.AlertFilter{Limit: query.Limit, Offset: query.Offset}
	if query.AlertType != "" {
		alertType, err := models.ParseAlertType(query.AlertType)
		if err != nil {
			badRequest(c, err)
			return
		}
		filter.Type = alertType
	}

	alerts, err := rs.Iot.Alert.ListAlerts(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, nonNil(alerts))
}

func (rs *RestfulServer) GetDeviceAlerts(c *gin.Context) {
	alerts, err := rs.Iot.Alert.GetDeviceAlerts(c.Request.Context(), c.GetInt("serial_number"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, nonNil(alerts))
}

type AlertRequest struct {
	DeviceSerialNumber int       `json:"device_serial_number" zog:"device_serial_number"`
	Message            string    `json:"message" zog:"message"`
	Type               string    `json:"type" zog:"type"`
	Date               time.Time `json:"date" zog:"date"`
}

var alertRequestSchema = z.Struct(z.Shape{
	"DeviceSerialNumber": z.Int().GT(0).Required(),
	"Message":            z.String().Required(),
	"Type":               z.String().Required(),
	"Date":               z.Time(),
})

func (rs *RestfulServer) CreateAlert(c *gin.Context) {
	var req AlertRequest
	if errs := alertRequestSchema.Parse(zhttp.Request(c.Request), &req); errs != nil {
		badRequest(c, errs)
		return
	}

	alertType, err := models.ParseAlertType(req.Type)
	if err != nil {
		badRequest(c, err)
		return
	}

	alert := &models.Alert{
		DeviceSerialNumber: req.DeviceSerialNumber,
		Message:            req.Message,
		Type:               alertType,
		Date:               req.Date,
	}
	if err := rs.Iot.Alert.CreateAlert(c.Request.Context(), alert); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, alert)
}

func (rs *RestfulServer) DeleteAlert(c *gin.Context) {
	id, ok := idParam(c, "alert_id")
	if !ok {
		return
	}

	if err := rs.Iot.Alert.DeleteAlert(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Alert with ID %d has been deleted successfully", id)})
}
