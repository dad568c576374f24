package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-membership/library/internal/model"
)

// AddBook godoc
// @Summary add a book
// @Description Restores a deleted book with the same ISBN instead of inserting a new row.
// @Tags books
// @Accept json
// @Produce json
// @Param book body model.Book true "book"
// @Success 201 {object} Response
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /api/v1/books [post]
func (h *Handler) AddBook(c echo.Context) error {
	var book model.Book
	if err := bindBody(c, &book); err != nil {
		return err
	}
	out, err := h.svc.Books.Add(c.Request().Context(), &book)
	if err != nil {
		return err
	}
	return h.respond(c, http.StatusCreated, "book created", books.single, out)
}

// ListCopiesOfBook godoc
// @Summary live copies of a book
// @Tags books
// @Produce json
// @Param id path int true "book id"
// @Param limit query int false "at most 50"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/books/{id}/copies [get]
func (h *Handler) ListCopiesOfBook(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	limit, err := listLimit(c)
	if err != nil {
		return err
	}
	copies, err := h.svc.BookCopies.ListByBook(c.Request().Context(), id, limit)
	if err != nil {
		return err
	}
	return h.respond(c, http.StatusOK, "book copies retrieved", bookCopies.plural, copies)
}

// AddBookCopy godoc
// @Summary add a copy of a book
// @Tags bookCopies
// @Accept json
// @Produce json
// @Param bookId query int true "book id"
// @Param bookCopy body model.BookCopy true "book copy"
// @Success 201 {object} Response
// @Failure 400 {object} Response
// @Failure 422 {object} Response
// @Router /api/v1/bookCopies [post]
func (h *Handler) AddBookCopy(c echo.Context) error {
	bookID, err := queryID(c, "bookId")
	if err != nil {
		return err
	}
	var bookCopy model.BookCopy
	if err := bindBody(c, &bookCopy); err != nil {
		return err
	}
	out, err := h.svc.BookCopies.Add(c.Request().Context(), &bookCopy, bookID)
	if err != nil {
		return err
	}
	return h.respond(c, http.StatusCreated, "book copy created", bookCopies.single, out)
}

// AddCustomer godoc
// @Summary add a customer
// @Description Restores a deleted customer with the same email address instead of inserting a new row.
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body model.Customer true "customer"
// @Success 201 {object} Response
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /api/v1/customers [post]
func (h *Handler) AddCustomer(c echo.Context) error {
	var customer model.Customer
	if err := bindBody(c, &customer); err != nil {
		return err
	}
	out, err := h.svc.Customers.Add(c.Request().Context(), &customer)
	if err != nil {
		return err
	}
	return h.respond(c, http.StatusCreated, "customer created", customers.single, out)
}
