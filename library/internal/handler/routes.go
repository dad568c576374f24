package handler

import "github.com/labstack/echo/v4"

// Named handlers over the generic builders in resource.go, one per documented route.

// ListBooks godoc
// @Summary every book including deleted ones
// @Tags books
// @Produce json
// @Param limit query int false "at most 50"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /api/v1/books [get]
func (h *Handler) ListBooks(c echo.Context) error {
	return listOf(h, books, h.svc.Books.ListAll)(c)
}

// ListAvailableBooks godoc
// @Summary live books
// @Tags books
// @Produce json
// @Param limit query int false "at most 50"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /api/v1/books/listAvailable [get]
func (h *Handler) ListAvailableBooks(c echo.Context) error {
	return listOf(h, books, h.svc.Books.List)(c)
}

// GetBook godoc
// @Summary get a book
// @Tags books
// @Produce json
// @Param id path int true "book id"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/books/{id} [get]
func (h *Handler) GetBook(c echo.Context) error {
	return getOne(h, books, h.svc.Books.Get)(c)
}

// UpdateBook godoc
// @Summary replace a book; query parameters override body fields
// @Tags books
// @Accept json
// @Produce json
// @Param id path int true "book id"
// @Param book body model.Book true "book"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /api/v1/books/{id} [put]
func (h *Handler) UpdateBook(c echo.Context) error {
	return fullUpdate(h, books, h.svc.Books.FullUpdate)(c)
}

// DeleteBook godoc
// @Summary soft-delete a book
// @Tags books
// @Produce json
// @Param id path int true "book id"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /api/v1/books/{id} [delete]
func (h *Handler) DeleteBook(c echo.Context) error {
	return remove(h, books, h.svc.Books.Delete)(c)
}

// ListBookCopies godoc
// @Summary every book copy including deleted ones
// @Tags bookCopies
// @Produce json
// @Param limit query int false "at most 50"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /api/v1/bookCopies [get]
func (h *Handler) ListBookCopies(c echo.Context) error {
	return listOf(h, bookCopies, h.svc.BookCopies.ListAll)(c)
}

// ListAvailableBookCopies godoc
// @Summary live book copies
// @Tags bookCopies
// @Produce json
// @Param limit query int false "at most 50"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /api/v1/bookCopies/listAvailable [get]
func (h *Handler) ListAvailableBookCopies(c echo.Context) error {
	return listOf(h, bookCopies, h.svc.BookCopies.List)(c)
}

// GetBookCopy godoc
// @Summary get a book copy
// @Tags bookCopies
// @Produce json
// @Param id path int true "book copy id"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Failure 422 {object} Response
// @Router /api/v1/bookCopies/{id} [get]
func (h *Handler) GetBookCopy(c echo.Context) error {
	return getOne(h, bookCopies, h.svc.BookCopies.Get)(c)
}

// UpdateBookCopy godoc
// @Summary replace a book copy; query parameters override body fields
// @Tags bookCopies
// @Accept json
// @Produce json
// @Param id path int true "book copy id"
// @Param bookCopy body model.BookCopy true "book copy"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /api/v1/bookCopies/{id} [put]
func (h *Handler) UpdateBookCopy(c echo.Context) error {
	return fullUpdate(h, bookCopies, h.svc.BookCopies.FullUpdate)(c)
}

// DeleteBookCopy godoc
// @Summary soft-delete a book copy
// @Tags bookCopies
// @Produce json
// @Param id path int true "book copy id"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /api/v1/bookCopies/{id} [delete]
func (h *Handler) DeleteBookCopy(c echo.Context) error {
	return remove(h, bookCopies, h.svc.BookCopies.Delete)(c)
}

// ListCustomers godoc
// @Summary every customer including deleted ones
// @Tags customers
// @Produce json
// @Param limit query int false "at most 50"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /api/v1/customers [get]
func (h *Handler) ListCustomers(c echo.Context) error {
	return listOf(h, customers, h.svc.Customers.ListAll)(c)
}

// ListAvailableCustomers godoc
// @Summary live customers
// @Tags customers
// @Produce json
// @Param limit query int false "at most 50"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /api/v1/customers/listAvailable [get]
func (h *Handler) ListAvailableCustomers(c echo.Context) error {
	return listOf(h, customers, h.svc.Customers.List)(c)
}

// GetCustomer godoc
// @Summary get a customer
// @Tags customers
// @Produce json
// @Param id path int true "customer id"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/customers/{id} [get]
func (h *Handler) GetCustomer(c echo.Context) error {
	return getOne(h, customers, h.svc.Customers.Get)(c)
}

// UpdateCustomer godoc
// @Summary replace a customer; query parameters override body fields
// @Tags customers
// @Accept json
// @Produce json
// @Param id path int true "customer id"
// @Param customer body model.Customer true "customer"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /api/v1/customers/{id} [put]
func (h *Handler) UpdateCustomer(c echo.Context) error {
	return fullUpdate(h, customers, h.svc.Customers.FullUpdate)(c)
}

// DeleteCustomer godoc
// @Summary soft-delete a customer
// @Tags customers
// @Produce json
// @Param id path int true "customer id"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /api/v1/customers/{id} [delete]
func (h *Handler) DeleteCustomer(c echo.Context) error {
	return remove(h, customers, h.svc.Customers.Delete)(c)
}

// ListMembers godoc
// @Summary every member including deleted ones
// @Tags members
// @Produce json
// @Param limit query int false "at most 50"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /api/v1/members [get]
func (h *Handler) ListMembers(c echo.Context) error {
	return listOf(h, members, h.svc.Members.ListAll)(c)
}

// ListAvailableMembers godoc
// @Summary live members
// @Tags members
// @Produce json
// @Param limit query int false "at most 50"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /api/v1/members/listAvailable [get]
func (h *Handler) ListAvailableMembers(c echo.Context) error {
	return listOf(h, members, h.svc.Members.List)(c)
}

// GetMember godoc
// @Summary get a member
// @Tags members
// @Produce json
// @Param id path int true "member id"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/members/{id} [get]
func (h *Handler) GetMember(c echo.Context) error {
	return getOne(h, members, h.svc.Members.Get)(c)
}

// UpdateMember godoc
// @Summary replace a member; query parameters override body fields
// @Tags members
// @Accept json
// @Produce json
// @Param id path int true "member id"
// @Param member body model.Member true "member"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /api/v1/members/{id} [put]
func (h *Handler) UpdateMember(c echo.Context) error {
	return fullUpdate(h, members, h.svc.Members.FullUpdate)(c)
}

// DeleteMember godoc
// @Summary soft-delete a member
// @Tags members
// @Produce json
// @Param id path int true "member id"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /api/v1/members/{id} [delete]
func (h *Handler) DeleteMember(c echo.Context) error {
	return remove(h, members, h.svc.Members.Delete)(c)
}

// ListMemberships godoc
// @Summary every membership including deleted ones
// @Tags memberships
// @Produce json
// @Param limit query int false "at most 50"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /api/v1/memberships [get]
func (h *Handler) ListMemberships(c echo.Context) error {
	return listOf(h, memberships, h.svc.Memberships.ListAll)(c)
}

// ListAvailableMemberships godoc
// @Summary live memberships
// @Tags memberships
// @Produce json
// @Param limit query int false "at most 50"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /api/v1/memberships/listAvailable [get]
func (h *Handler) ListAvailableMemberships(c echo.Context) error {
	return listOf(h, memberships, h.svc.Memberships.List)(c)
}

// GetMembership godoc
// @Summary get a membership
// @Tags memberships
// @Produce json
// @Param id path int true "membership id"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/memberships/{id} [get]
func (h *Handler) GetMembership(c echo.Context) error {
	return getOne(h, memberships, h.svc.Memberships.Get)(c)
}

// UpdateMembership godoc
// @Summary replace a membership; query parameters override body fields
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path int true "membership id"
// @Param membership body model.Membership true "membership"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /api/v1/memberships/{id} [put]
func (h *Handler) UpdateMembership(c echo.Context) error {
	return fullUpdate(h, memberships, h.svc.Memberships.FullUpdate)(c)
}

// DeleteMembership godoc
// @Summary soft-delete a membership
// @Tags memberships
// @Produce json
// @Param id path int true "membership id"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /api/v1/memberships/{id} [delete]
func (h *Handler) DeleteMembership(c echo.Context) error {
	return remove(h, memberships, h.svc.Memberships.Delete)(c)
}

// ListMembershipTypes godoc
// @Summary every membership type including deleted ones
// @Tags membershipTypes
// @Produce json
// @Param limit query int false "at most 50"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /api/v1/membershipTypes [get]
func (h *Handler) ListMembershipTypes(c echo.Context) error {
	return listOf(h, membershipTypes, h.svc.MembershipTypes.ListAll)(c)
}

// ListAvailableMembershipTypes godoc
// @Summary live membership types
// @Tags membershipTypes
// @Produce json
// @Param limit query int false "at most 50"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /api/v1/membershipTypes/listAvailable [get]
func (h *Handler) ListAvailableMembershipTypes(c echo.Context) error {
	return listOf(h, membershipTypes, h.svc.MembershipTypes.List)(c)
}

// GetMembershipType godoc
// @Summary get a membership type
// @Tags membershipTypes
// @Produce json
// @Param id path int true "membership type id"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/membershipTypes/{id} [get]
func (h *Handler) GetMembershipType(c echo.Context) error {
	return getOne(h, membershipTypes, h.svc.MembershipTypes.Get)(c)
}

// UpdateMembershipType godoc
// @Summary replace a membership type; query parameters override body fields
// @Tags membershipTypes
// @Accept json
// @Produce json
// @Param id path int true "membership type id"
// @Param membershipType body model.MembershipType true "membership type"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /api/v1/membershipTypes/{id} [put]
func (h *Handler) UpdateMembershipType(c echo.Context) error {
	return fullUpdate(h, membershipTypes, h.svc.MembershipTypes.FullUpdate)(c)
}

// DeleteMembershipType godoc
// @Summary soft-delete a membership type
// @Tags membershipTypes
// @Produce json
// @Param id path int true "membership type id"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /api/v1/membershipTypes/{id} [delete]
func (h *Handler) DeleteMembershipType(c echo.Context) error {
	return remove(h, membershipTypes, h.svc.MembershipTypes.Delete)(c)
}
