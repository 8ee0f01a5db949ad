package handlers

import (
	"errors"
	"net/http"

	"tobacco_drying/internal/chamber"
	"tobacco_drying/internal/models"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK            = "ok"
	statusToggled       = "toggled"
	statusSettingsSaved = "settings_saved"
	statusStarted       = "started"
	statusReset         = "reset"

	errListChambers    = "failed to load chambers"
	errGetChamber      = "failed to load chamber"
	errToggleDevice    = "failed to toggle device"
	errUpdateSettings  = "failed to update settings"
	errStartDrying     = "failed to start drying"
	errResetDrying     = "failed to reset drying"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// respondChamberError maps chamber errors to 400/404/409 with their details;
// anything else is logged and answered with 500 and userMsg.
func (h *Handler) respondChamberError(c *gin.Context, userMsg, logKey string, err error, kv ...interface{}) {
	kind := chamber.KindOf(err)
	if kind == "" {
		h.logAndJSONError(c, http.StatusInternalServerError, userMsg, logKey, err, kv...)
		return
	}

	body := gin.H{"error": err.Error(), "kind": kind}
	code := http.StatusInternalServerError

	var (
		invalid   *chamber.InvalidActuatorError
		bounds    *chamber.OutOfBoundsError
		notFound  *chamber.ChamberNotFoundError
		active    *chamber.SessionActiveError
		running   *chamber.AlreadyActiveError
		completed *chamber.SessionCompletedError
	)
	switch {
	case errors.As(err, &invalid):
		code = http.StatusBadRequest
		body["actuator"] = invalid.Name
	case errors.As(err, &bounds):
		// Value is non-finite here and cannot be encoded as JSON.
		code = http.StatusBadRequest
		body["field"] = bounds.Field
		body["min"] = bounds.Min
		body["max"] = bounds.Max
	case errors.As(err, &notFound):
		code = http.StatusNotFound
		body["chamber_id"] = notFound.ID
	case errors.As(err, &active):
		code = http.StatusConflict
		body["chamber_id"] = active.ChamberID
	case errors.As(err, &running):
		code = http.StatusConflict
		body["chamber_id"] = running.ChamberID
	case errors.As(err, &completed):
		code = http.StatusConflict
		body["chamber_id"] = completed.ChamberID
	}

	if h.log != nil {
		fields := append([]interface{}{"err", err, "kind", kind}, kv...)
		h.log.Infow(logKey, fields...)
	}
	c.JSON(code, body)
}

// Respond with a status and include the current chamber snapshot if available (best-effort).
func (h *Handler) respondWithStatusAndChamber(c *gin.Context, chamberID, status string, extra gin.H) {
	ctx := c.Request.Context()
	resp := gin.H{"status": status}
	for k, v := range extra {
		resp[k] = v
	}
	snap, err := h.services.Monitoring.GetChamber(ctx, chamberID)
	if err == nil {
		resp["chamber"] = snap
	}
	c.JSON(http.StatusOK, resp)
}

// Request DTO for a partial settings update.
type settingsRequest struct {
	DesiredTemperature *float64 `json:"desired_temperature"`
	DesiredHumidity    *float64 `json:"desired_humidity"`
	DryingTime         *int     `json:"drying_time"`
}

func (r settingsRequest) patch() models.SettingsPatch {
	return models.SettingsPatch{
		DesiredTemperature: r.DesiredTemperature,
		DesiredHumidity:    r.DesiredHumidity,
		DryingTime:         r.DryingTime,
	}
}

// UpdateSettingsRequest is an exported model for Swagger docs of the updateSettings payload.
// Omitted fields keep their value; out-of-range values are clamped.
type UpdateSettingsRequest struct {
	// Desired temperature in Celsius, 15..40
	DesiredTemperature float64 `json:"desired_temperature,omitempty" example:"32"`
	// Desired relative humidity in percent, 30..80
	DesiredHumidity float64 `json:"desired_humidity,omitempty" example:"45"`
	// Drying time in whole minutes, 30..480
	DryingTime int `json:"drying_time,omitempty" example:"90"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      List chambers
// @Tags         chambers
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, chambers"
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/chambers [get]
func (h *Handler) listChambers(c *gin.Context) {
	list, err := h.services.Monitoring.ListChambers(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListChambers, "chambers_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(list),
		"chambers": list,
	})
}

// @Summary      Get chamber
// @Description  Sensors, devices, settings, drying session and neighbour ids of one chamber
// @Tags         chambers
// @Produce      json
// @Param        id   path      string  true  "Chamber id"  example(1)
// @Success      200  {object}  models.ChamberSnapshot
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/chambers/{id} [get]
func (h *Handler) getChamber(c *gin.Context) {
	id := c.Param("id")
	snap, err := h.services.Monitoring.GetChamber(c.Request.Context(), id)
	if err != nil {
		h.respondChamberError(c, errGetChamber, "chamber_get_failed", err, "chamber", id)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// @Summary      Toggle device
// @Description  Flips one actuator. Allowed while automatic drying runs.
// @Tags         chambers
// @Produce      json
// @Param        id    path      string  true  "Chamber id"  example(1)
// @Param        name  path      string  true  "Actuator"    Enums(heater1,heater2,dryer,fan1,fan2)
// @Success      200   {object}  map[string]interface{}  "status, actuator, on, chamber"
// @Failure      400   {object}  map[string]interface{}
// @Failure      404   {object}  map[string]interface{}
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/chambers/{id}/devices/{name}/toggle [post]
func (h *Handler) toggleDevice(c *gin.Context) {
	id, name := c.Param("id"), models.Actuator(c.Param("name"))
	on, err := h.services.Control.ToggleDevice(c.Request.Context(), id, name)
	if err != nil {
		h.respondChamberError(c, errToggleDevice, "device_toggle_failed", err, "chamber", id, "actuator", name)
		return
	}
	h.respondWithStatusAndChamber(c, id, statusToggled, gin.H{"actuator": name, "on": on})
}

// @Summary      Update drying settings
// @Description  Partial update; out-of-range values are clamped. Rejected while drying is active.
// @Tags         chambers
// @Accept       json
// @Produce      json
// @Param        id    path   string                 true  "Chamber id"  example(1)
// @Param        body  body   UpdateSettingsRequest  true  "Settings payload"
// @Success      200   {object}  map[string]interface{}  "status, settings, chamber"
// @Failure      400   {object}  map[string]interface{}
// @Failure      404   {object}  map[string]interface{}
// @Failure      409   {object}  map[string]interface{}
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/chambers/{id}/settings [patch]
func (h *Handler) updateSettings(c *gin.Context) {
	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	id := c.Param("id")
	settings, err := h.services.Control.UpdateSettings(c.Request.Context(), id, req.patch())
	if err != nil {
		h.respondChamberError(c, errUpdateSettings, "settings_update_failed", err, "chamber", id)
		return
	}
	h.respondWithStatusAndChamber(c, id, statusSettingsSaved, gin.H{"settings": settings})
}

// @Summary      Start automatic drying
// @Description  Counts down drying_time minutes. A completed session must be reset first.
// @Tags         chambers
// @Produce      json
// @Param        id   path      string  true  "Chamber id"  example(1)
// @Success      200  {object}  map[string]interface{}  "status, session, chamber"
// @Failure      404  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/chambers/{id}/drying/start [post]
func (h *Handler) startDrying(c *gin.Context) {
	id := c.Param("id")
	session, err := h.services.Control.StartDrying(c.Request.Context(), id)
	if err != nil {
		h.respondChamberError(c, errStartDrying, "drying_start_failed", err, "chamber", id)
		return
	}
	h.respondWithStatusAndChamber(c, id, statusStarted, gin.H{"session": session})
}

// @Summary      Reset drying session
// @Description  Cancels any countdown and returns the session to IDLE.
// @Tags         chambers
// @Produce      json
// @Param        id   path      string  true  "Chamber id"  example(1)
// @Success      200  {object}  map[string]interface{}  "status, session, chamber"
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/chambers/{id}/drying/reset [post]
func (h *Handler) resetDrying(c *gin.Context) {
	id := c.Param("id")
	session, err := h.services.Control.ResetDrying(c.Request.Context(), id)
	if err != nil {
		h.respondChamberError(c, errResetDrying, "drying_reset_failed", err, "chamber", id)
		return
	}
	h.respondWithStatusAndChamber(c, id, statusReset, gin.H{"session": session})
}
