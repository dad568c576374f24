package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-membership/library/internal/errs"
	"github.com/Astemirdum/library-membership/library/internal/model"
)

// AddMember godoc
// @Summary add a member
// @Tags members
// @Accept json
// @Produce json
// @Param membershipId query int false "membership id, wins over the body"
// @Param member body model.Member true "member"
// @Success 201 {object} Response
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Failure 422 {object} Response
// @Router /api/v1/members [post]
func (h *Handler) AddMember(c echo.Context) error {
	membershipID, err := queryID(c, "membershipId")
	if err != nil {
		return err
	}
	var member model.Member
	if err := bindBody(c, &member); err != nil {
		return err
	}
	out, err := h.svc.Members.Add(c.Request().Context(), &member, membershipID)
	if err != nil {
		return err
	}
	return h.respond(c, http.StatusCreated, "member created", members.single, out)
}

// PatchMember godoc
// @Summary apply a JSON patch to a member
// @Tags members
// @Accept application/json-patch+json
// @Produce json
// @Param id path int true "member id"
// @Param patch body []model.PatchOperation true "RFC 6902 operations"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/members/{id} [patch]
func (h *Handler) PatchMember(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var ops []model.PatchOperation
	if err := bindBody(c, &ops); err != nil {
		return err
	}
	for _, op := range ops {
		if err := c.Validate(op); err != nil {
			return errs.FromValidator(err)
		}
	}
	out, err := h.svc.Members.Patch(c.Request().Context(), id, ops)
	if err != nil {
		return err
	}
	return h.respond(c, http.StatusOK, "member updated", members.single, out)
}

// AddMembership godoc
// @Summary add a membership
// @Tags memberships
// @Accept json
// @Produce json
// @Param membershipTypeId query int true "membership type id"
// @Param membership body model.Membership true "membership"
// @Success 201 {object} Response
// @Failure 400 {object} Response
// @Failure 422 {object} Response
// @Router /api/v1/memberships [post]
func (h *Handler) AddMembership(c echo.Context) error {
	typeID, err := queryID(c, "membershipTypeId")
	if err != nil {
		return err
	}
	var membership model.Membership
	if err := bindBody(c, &membership); err != nil {
		return err
	}
	out, err := h.svc.Memberships.Add(c.Request().Context(), &membership, typeID)
	if err != nil {
		return err
	}
	return h.respond(c, http.StatusCreated, "membership created", memberships.single, out)
}

// ListMembershipMembers godoc
// @Summary live members holding a membership
// @Tags memberships
// @Produce json
// @Param id path int true "membership id"
// @Param limit query int false "at most 50"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/memberships/{id}/members [get]
func (h *Handler) ListMembershipMembers(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	limit, err := listLimit(c)
	if err != nil {
		return err
	}
	list, err := h.svc.Memberships.Members(c.Request().Context(), id, limit)
	if err != nil {
		return err
	}
	return h.respond(c, http.StatusOK, "members retrieved", members.plural, list)
}

// AddMembershipType godoc
// @Summary add a membership type
// @Tags membershipTypes
// @Accept json
// @Produce json
// @Param membershipType body model.MembershipType true "membership type"
// @Success 201 {object} Response
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /api/v1/membershipTypes [post]
func (h *Handler) AddMembershipType(c echo.Context) error {
	var membershipType model.MembershipType
	if err := bindBody(c, &membershipType); err != nil {
		return err
	}
	out, err := h.svc.MembershipTypes.Add(c.Request().Context(), &membershipType)
	if err != nil {
		return err
	}
	return h.respond(c, http.StatusCreated, "membership type created", membershipTypes.single, out)
}
