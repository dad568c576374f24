package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const maxListLimit = 50

// resource names an entity in envelopes and messages.
type resource struct {
	single string
	plural string
	label  string
}

var (
	books           = resource{single: "book", plural: "books", label: "book"}
	bookCopies      = resource{single: "bookCopy", plural: "bookCopies", label: "book copy"}
	customers       = resource{single: "customer", plural: "customers", label: "customer"}
	members         = resource{single: "member", plural: "members", label: "member"}
	memberships     = resource{single: "membership", plural: "memberships", label: "membership"}
	membershipTypes = resource{single: "membershipType", plural: "membershipTypes", label: "membership type"}
	users           = resource{single: "user", plural: "users", label: "user"}
)

func getOne[E any](h *Handler, r resource, get func(ctx context.Context, id int64) (*E, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return err
		}
		ent, err := get(c.Request().Context(), id)
		if err != nil {
			return err
		}
		return h.respond(c, http.StatusOK, r.label+" retrieved", r.single, ent)
	}
}

func listOf[E any](h *Handler, r resource, list func(ctx context.Context, limit int) ([]*E, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		limit, err := listLimit(c)
		if err != nil {
			return err
		}
		items, err := list(c.Request().Context(), limit)
		if err != nil {
			return err
		}
		return h.respond(c, http.StatusOK, r.plural+" retrieved", r.plural, items)
	}
}

// fullUpdate binds the body and then lets query parameters override single fields.
func fullUpdate[E any](h *Handler, r resource, update func(ctx context.Context, id int64, ent *E) (*E, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return err
		}
		ent := new(E)
		if err := bindBody(c, ent); err != nil {
			return err
		}
		if err := (&echo.DefaultBinder{}).BindQueryParams(c, ent); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid query parameters: %v", err))
		}
		out, err := update(c.Request().Context(), id, ent)
		if err != nil {
			return err
		}
		return h.respond(c, http.StatusOK, r.label+" updated", r.single, out)
	}
}

func remove(h *Handler, r resource, del func(ctx context.Context, id int64) (bool, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return err
		}
		ok, err := del(c.Request().Context(), id)
		if err != nil {
			return err
		}
		return h.respond(c, http.StatusOK, r.label+" deleted", "delete", ok)
	}
}

func bindBody(c echo.Context, i interface{}) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, i); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return err
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s is invalid", name))
	}
	return id, nil
}

func queryID(c echo.Context, name string) (*int64, error) {
	param := c.QueryParam(name)
	if param == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil || id <= 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s is invalid", name))
	}
	return &id, nil
}

// listLimit reads ?limit=, capped at maxListLimit.
func listLimit(c echo.Context) (int, error) {
	param := c.QueryParam("limit")
	if param == "" {
		return maxListLimit, nil
	}
	limit, err := strconv.Atoi(param)
	if err != nil || limit <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "limit is invalid")
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return limit, nil
}
