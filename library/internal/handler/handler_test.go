package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-membership/library/internal/errs"
	"github.com/Astemirdum/library-membership/library/internal/handler"
	"github.com/Astemirdum/library-membership/library/internal/model"
	"github.com/Astemirdum/library-membership/pkg/auth"

	service_mocks "github.com/Astemirdum/library-membership/library/internal/handler/mocks"
)

const ts = `"timestamp":"2024-01-02T03:04:05Z"`

type serviceMocks struct {
	books           *service_mocks.MockBookService
	bookCopies      *service_mocks.MockBookCopyService
	customers       *service_mocks.MockCustomerService
	members         *service_mocks.MockMemberService
	memberships     *service_mocks.MockMembershipService
	membershipTypes *service_mocks.MockMembershipTypeService
	users           *service_mocks.MockUserService
}

func newRouter(t *testing.T, opts ...handler.Option) (*echo.Echo, serviceMocks) {
	t.Helper()
	c := gomock.NewController(t)
	m := serviceMocks{
		books:           service_mocks.NewMockBookService(c),
		bookCopies:      service_mocks.NewMockBookCopyService(c),
		customers:       service_mocks.NewMockCustomerService(c),
		members:         service_mocks.NewMockMemberService(c),
		memberships:     service_mocks.NewMockMembershipService(c),
		membershipTypes: service_mocks.NewMockMembershipTypeService(c),
		users:           service_mocks.NewMockUserService(c),
	}
	clock := func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	opts = append([]handler.Option{handler.WithClock(clock)}, opts...)
	h := handler.New(handler.Services{
		Books:           m.books,
		BookCopies:      m.bookCopies,
		Customers:       m.customers,
		Members:         m.members,
		Memberships:     m.memberships,
		MembershipTypes: m.membershipTypes,
		Users:           m.users,
	}, zap.NewNop(), opts...)
	return h.NewRouter(), m
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, http.NoBody)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	return w
}

func TestHandler_Envelope(t *testing.T) {
	t.Parallel()
	year := 2001

	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m serviceMocks)

	tests := []struct {
		name         string
		method       string
		target       string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:   "get book",
			method: http.MethodGet,
			target: "/api/v1/books/1",
			mockBehavior: func(m serviceMocks) {
				m.books.EXPECT().Get(gomock.Any(), int64(1)).
					Return(&model.Book{ID: 1, ISBN: "978-0-1", Title: "Dune", Year: &year, Value: 10}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{` + ts + `,"data":{"book":{"id":1,"isbn":"978-0-1","title":"Dune","year":2001,"author":"","type":"","genre":"","value":10,"deleted":false}},"message":"book retrieved","status":"OK","statusCode":200}`,
			},
		},
		{
			name:   "get deleted book",
			method: http.MethodGet,
			target: "/api/v1/books/1",
			mockBehavior: func(m serviceMocks) {
				m.books.EXPECT().Get(gomock.Any(), int64(1)).
					Return(nil, errs.NotFound("book with id 1 does not exist"))
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{` + ts + `,"message":"book with id 1 does not exist","status":"NOT_FOUND","statusCode":404}`,
			},
		},
		{
			name:         "bad id",
			method:       http.MethodGet,
			target:       "/api/v1/books/abc",
			mockBehavior: func(m serviceMocks) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{` + ts + `,"message":"id is invalid","status":"BAD_REQUEST","statusCode":400}`,
			},
		},
		{
			name:   "add book conflict",
			method: http.MethodPost,
			target: "/api/v1/books",
			body:   `{"isbn":"978-0-1","title":"Dune"}`,
			mockBehavior: func(m serviceMocks) {
				m.books.EXPECT().Add(gomock.Any(), &model.Book{ISBN: "978-0-1", Title: "Dune"}).
					Return(nil, errs.Conflict("book with isbn 978-0-1 already exists"))
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{` + ts + `,"message":"book with isbn 978-0-1 already exists","status":"CONFLICT","statusCode":409}`,
			},
		},
		{
			name:   "add copy without book",
			method: http.MethodPost,
			target: "/api/v1/bookCopies",
			body:   `{"location":{"floor":1,"bookcase":1,"shelve":1}}`,
			mockBehavior: func(m serviceMocks) {
				m.bookCopies.EXPECT().Add(gomock.Any(), gomock.Any(), (*int64)(nil)).
					Return(nil, errs.InvalidArgument("cannot add book copy without specifying a book ID"))
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{` + ts + `,"message":"cannot add book copy without specifying a book ID","status":"BAD_REQUEST","statusCode":400}`,
			},
		},
		{
			name:   "copy of a deleted book",
			method: http.MethodGet,
			target: "/api/v1/bookCopies/4",
			mockBehavior: func(m serviceMocks) {
				m.bookCopies.EXPECT().Get(gomock.Any(), int64(4)).
					Return(nil, errs.DeletedDependency("book with id 2 has been deleted"))
			},
			response: response{
				expectedCode: http.StatusUnprocessableEntity,
				expectedBody: `{` + ts + `,"message":"book with id 2 has been deleted","status":"UNPROCESSABLE_ENTITY","statusCode":422}`,
			},
		},
		{
			name:   "validation failure",
			method: http.MethodPost,
			target: "/api/v1/customers",
			body:   `{"name":"Ann","emailAddress":"nope"}`,
			mockBehavior: func(m serviceMocks) {
				m.customers.EXPECT().Add(gomock.Any(), gomock.Any()).
					Return(nil, &errs.ValidationError{Violations: []errs.Violation{
						{Field: "emailAddress", Rule: "email", Message: "emailAddress must be a valid email address"},
					}})
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{` + ts + `,"data":{"violations":[{"field":"emailAddress","rule":"email","message":"emailAddress must be a valid email address"}]},"message":"emailAddress must be a valid email address","status":"BAD_REQUEST","statusCode":400}`,
			},
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/api/v1/members/3",
			mockBehavior: func(m serviceMocks) {
				m.members.EXPECT().Delete(gomock.Any(), int64(3)).Return(true, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{` + ts + `,"data":{"delete":true},"message":"member deleted","status":"OK","statusCode":200}`,
			},
		},
		{
			name:   "internal",
			method: http.MethodGet,
			target: "/api/v1/membershipTypes/listAvailable",
			mockBehavior: func(m serviceMocks) {
				m.membershipTypes.EXPECT().List(gomock.Any(), 50).Return(nil, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{` + ts + `,"message":"Internal Server Error","status":"INTERNAL_SERVER_ERROR","statusCode":500}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m := newRouter(t)
			tt.mockBehavior(m)

			w := do(e, tt.method, tt.target, tt.body)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ListLimit(t *testing.T) {
	t.Parallel()
	e, m := newRouter(t)

	m.books.EXPECT().ListAll(gomock.Any(), 50).Return([]*model.Book{{ID: 1}, {ID: 2}}, nil)
	m.customers.EXPECT().List(gomock.Any(), 7).Return([]*model.Customer{}, nil)

	w := do(e, http.MethodGet, "/api/v1/books?limit=500", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"books":[{"id":1`)

	w = do(e, http.MethodGet, "/api/v1/customers/listAvailable?limit=7", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"customers":[]`)

	w = do(e, http.MethodGet, "/api/v1/customers/listAvailable?limit=-1", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_FullUpdateQueryOverrides(t *testing.T) {
	t.Parallel()
	e, m := newRouter(t)

	m.books.EXPECT().FullUpdate(gomock.Any(), int64(3), gomock.Any()).DoAndReturn(
		func(_ context.Context, id int64, b *model.Book) (*model.Book, error) {
			require.Equal(t, "978-0-1", b.ISBN)
			require.Equal(t, "Override", b.Title)
			require.Equal(t, 12, b.Value)
			b.ID = id
			return b, nil
		})

	w := do(e, http.MethodPut, "/api/v1/books/3?title=Override&value=12", `{"isbn":"978-0-1","title":"Body","value":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"title":"Override"`)
	require.Contains(t, w.Body.String(), `"message":"book updated"`)
}

func TestHandler_AddWithRelationQuery(t *testing.T) {
	t.Parallel()
	e, m := newRouter(t)

	m.memberships.EXPECT().Add(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ms *model.Membership, typeID *int64) (*model.Membership, error) {
			require.NotNil(t, typeID)
			require.Equal(t, int64(2), *typeID)
			require.Equal(t, "2020-01-01", ms.StartDate.Format(time.DateOnly))
			ms.ID = 9
			ms.MembershipTypeID = *typeID
			return ms, nil
		})

	w := do(e, http.MethodPost, "/api/v1/memberships?membershipTypeId=2", `{"startDate":"2020-01-01","endDate":"2021-01-01"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"status":"CREATED"`)
	require.Contains(t, w.Body.String(), `"membershipTypeId":2`)

	w = do(e, http.MethodPost, "/api/v1/members?membershipId=x", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_PatchMember(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		e, m := newRouter(t)
		ops := []model.PatchOperation{{Op: model.PatchReplace, Path: "/name", Value: []byte(`"Bea"`)}}
		m.members.EXPECT().Patch(gomock.Any(), int64(5), ops).
			Return(&model.Member{ID: 5, Name: "Bea", EmailAddress: "bea@example.com"}, nil)

		r := httptest.NewRequest(http.MethodPatch, "/api/v1/members/5", strings.NewReader(`[{"op":"replace","path":"/name","value":"Bea"}]`))
		r.Header.Set(echo.HeaderContentType, "application/json-patch+json")
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"name":"Bea"`)
	})

	t.Run("unknown op never reaches the service", func(t *testing.T) {
		t.Parallel()
		e, _ := newRouter(t)

		w := do(e, http.MethodPatch, "/api/v1/members/5", `[{"op":"merge","path":"/name","value":"Bea"}]`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), `"violations"`)
	})
}

func TestHandler_Auth(t *testing.T) {
	t.Parallel()
	issuer := auth.NewIssuer(auth.Config{Secret: "test", TokenTTL: time.Hour})
	e, m := newRouter(t, handler.WithAuth(issuer))

	w := do(e, http.MethodPost, "/api/v1/books", `{"isbn":"1","title":"t"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, `{`+ts+`,"message":"No Authorization Header","status":"UNAUTHORIZED","statusCode":401}`, strings.Trim(w.Body.String(), "\n"))

	// reads stay open
	m.books.EXPECT().List(gomock.Any(), 50).Return(nil, nil)
	w = do(e, http.MethodGet, "/api/v1/books/listAvailable", "")
	require.Equal(t, http.StatusOK, w.Code)

	token, _, err := issuer.NewToken("alice")
	require.NoError(t, err)
	m.books.EXPECT().Add(gomock.Any(), gomock.Any()).Return(&model.Book{ID: 1, ISBN: "1", Title: "t"}, nil)
	r := httptest.NewRequest(http.MethodPost, "/api/v1/books", strings.NewReader(`{"isbn":"1","title":"t"}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	r.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, r)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandler_UsersRequireAuth(t *testing.T) {
	t.Parallel()
	issuer := auth.NewIssuer(auth.Config{Secret: "test", TokenTTL: time.Hour})
	e, m := newRouter(t, handler.WithAuth(issuer))

	for _, target := range []string{"/api/v1/users", "/api/v1/users/1"} {
		w := do(e, http.MethodGet, target, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, target)
	}

	token, _, err := issuer.NewToken("alice")
	require.NoError(t, err)
	m.users.EXPECT().List(gomock.Any(), 50).Return([]*model.User{{ID: 1, Username: "alice"}}, nil)
	m.users.EXPECT().Get(gomock.Any(), int64(1)).Return(&model.User{ID: 1, Username: "alice"}, nil)

	for _, target := range []string{"/api/v1/users", "/api/v1/users/1"} {
		r := httptest.NewRequest(http.MethodGet, target, http.NoBody)
		r.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, r)
		require.Equal(t, http.StatusOK, rec.Code, target)
		require.Contains(t, rec.Body.String(), `"username":"alice"`)
	}
}

func TestHandler_Authorize(t *testing.T) {
	t.Parallel()
	e, m := newRouter(t)

	m.users.EXPECT().Authorize(gomock.Any(), model.AuthRequest{Username: "alice", Password: "wrong"}).
		Return(nil, errs.Unauthorized("invalid username or password"))

	w := do(e, http.MethodPost, "/api/v1/authorize", `{"username":"alice","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), `"message":"invalid username or password"`)
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	e, _ := newRouter(t)

	w := do(e, http.MethodGet, "/manage/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}
