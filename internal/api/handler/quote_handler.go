package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fuelquote/fuel-quote-api/internal/api/metrics"
	"github.com/fuelquote/fuel-quote-api/internal/core/ports"
)

// QuoteHandler handles HTTP requests for fuel quote history.
type QuoteHandler struct {
	service ports.QuoteService
}

func NewQuoteHandler(service ports.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// Create appends an already-computed fuel quote to the session account's
// history.
//
// @Summary      Record a fuel quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Security     SessionToken
// @Param        body  body      appendQuoteRequest  true  "Quote details"
// @Success      201   {object}  appendQuoteResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/quotes [post]
func (h *QuoteHandler) Create(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	var req appendQuoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.service.Append(c.Request().Context(), accountID, ports.AppendQuoteInput{
		GallonsRequested: req.GallonsRequested,
		DeliveryAddress:  req.DeliveryAddress,
		DeliveryDate:     req.DeliveryDate,
		SuggestedPrice:   req.SuggestedPrice,
		TotalAmountDue:   req.TotalAmountDue,
	})
	if err != nil {
		return err
	}
	metrics.QuotesRecordedTotal.Inc()

	return c.JSON(http.StatusCreated, appendQuoteResponse{ID: id})
}

// List returns the session account's quotes in the order they were recorded.
//
// @Summary      List fuel quote history
// @Tags         quotes
// @Produce      json
// @Security     SessionToken
// @Success      200  {object}  listQuotesResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/quotes [get]
func (h *QuoteHandler) List(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	quotes, err := h.service.List(c.Request().Context(), accountID)
	if err != nil {
		return err
	}

	resp := listQuotesResponse{Quotes: make([]quoteResponse, 0, len(quotes))}
	for _, q := range quotes {
		resp.Quotes = append(resp.Quotes, quoteResponse{
			ID:               q.ID,
			GallonsRequested: q.GallonsRequested,
			DeliveryAddress:  q.DeliveryAddress,
			DeliveryDate:     q.DeliveryDate,
			SuggestedPrice:   q.SuggestedPrice,
			TotalAmountDue:   q.TotalAmountDue,
			CreatedAt:        q.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, resp)
}
