package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/iot"
	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/models"
)

func (rs *RestfulServer) Root(c *gin.Context) {
	c.JSON(http.StatusOK, "Server is running")
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (rs *RestfulServer) PostStatus(c *gin.Context) {
	update := models.NewStatusUpdate()
	if err := c.ShouldBindJSON(update); err != nil {
		badRequest(c, err)
		return
	}

	snapshot, err := iot.ParseStatusUpdate(update)
	if err != nil {
		writeError(c, err)
		return
	}

	if !rs.CheckDeviceLimiter(snapshot.SerialNumber) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	alertsCreated, err := rs.Iot.Status.IngestStatus(c.Request.Context(), snapshot)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Device status updated", "alerts_created": alertsCreated})
}

type LimiterRequest struct {
	Rate  float64 `json:"rate" zog:"rate"`
	Burst int     `json:"burst" zog:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"Rate":  z.Float64().Required().GT(0),
	"Burst": z.Int().Required().GT(0),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	serialNumber, ok := serialNumberParam(c)
	if !ok {
		return
	}

	var req LimiterRequest
	if errs := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); errs != nil {
		badRequest(c, errs)
		return
	}

	rs.SetLimiter(serialNumber, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}
