package http

import (
	"time"

	"campusfood/internal/core/application/usecases/queries"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(c.Param(name))
}

// listParams holds the filters shared by the order list endpoints.
type listParams struct {
	status   *order.Status
	dateFrom *time.Time
	dateTo   *time.Time
	limit    int
	offset   int
}

// bindListParams reads limit, offset, status, date_from and date_to. An
// absent limit is DefaultPageSize; an explicit one is validated as given.
func bindListParams(c echo.Context) (listParams, error) {
	var (
		p                        = listParams{limit: queries.DefaultPageSize}
		status, dateFrom, dateTo string
	)
	if err := echo.QueryParamsBinder(c).
		Int("limit", &p.limit).
		Int("offset", &p.offset).
		String("status", &status).
		String("date_from", &dateFrom).
		String("date_to", &dateTo).
		BindError(); err != nil {
		return listParams{}, err
	}

	if status != "" {
		s, err := order.ParseStatus(status)
		if err != nil {
			return listParams{}, err
		}
		p.status = &s
	}

	var err error
	if p.dateFrom, err = parseRangeBound("date_from", dateFrom, false); err != nil {
		return listParams{}, err
	}
	if p.dateTo, err = parseRangeBound("date_to", dateTo, true); err != nil {
		return listParams{}, err
	}
	return p, nil
}

func parseRangeBound(paramName, s string, upper bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := kernel.ParseRangeBound(paramName, s, upper)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
