package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fuelquote/fuel-quote-api/internal/core/ports"
)

// ProfileHandler handles HTTP requests for the delivery profile.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Get returns the session account's delivery profile.
//
// @Summary      Get the delivery profile
// @Tags         profile
// @Produce      json
// @Security     SessionToken
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	profile, err := h.service.Get(c.Request().Context(), accountID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{
		FullName: profile.FullName,
		Address1: profile.Address1,
		Address2: profile.Address2,
		City:     profile.City,
		State:    profile.State,
		Zipcode:  profile.Zipcode,
	})
}

// Update replaces every field of the session account's profile. Partial
// updates are not supported; omitting the optional address2 stores it empty.
//
// @Summary      Replace the delivery profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     SessionToken
// @Param        body  body      updateProfileRequest  true  "Full profile field set"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err = h.service.Update(c.Request().Context(), accountID, ports.UpdateProfileInput{
		FullName: req.FullName,
		Address1: req.Address1,
		Address2: req.Address2,
		City:     req.City,
		State:    req.State,
		Zipcode:  req.Zipcode,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
