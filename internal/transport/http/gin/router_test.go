package httpgin

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	authstore "github.com/atelierdahl/atelier-go/internal/auth"
	"github.com/atelierdahl/atelier-go/internal/domain"
	"github.com/atelierdahl/atelier-go/internal/repository/memory"
	"github.com/atelierdahl/atelier-go/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixture struct {
	router *gin.Engine
	store  *memory.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memory.NewSeededStore()

	hash, err := bcrypt.GenerateFromPassword([]byte("workbench"), bcrypt.MinCost)
	require.NoError(t, err)

	svcs := service.NewServices(
		store,
		nil, nil, nil,
		authstore.NewMemoryTokenStore(time.Hour),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		service.Config{
			AdminUsername: "maren",
			AdminPassHash: string(hash),
		},
	)

	router := NewRouter(svcs, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return &fixture{router: router, store: store}
}

func (f *fixture) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))

	return out
}

func (f *fixture) login(t *testing.T) map[string]string {
	t.Helper()

	w := f.do(t, http.MethodPost, "/api/admin/login", LoginRequest{
		Username: "maren",
		Password: "workbench",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[LoginResponse](t, w)
	require.NotEmpty(t, resp.Token)

	return map[string]string{"Authorization": "Bearer " + resp.Token}
}

func (f *fixture) firstCourse(t *testing.T) domain.CourseWithType {
	t.Helper()

	w := f.do(t, http.MethodGet, "/api/courses", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	courses := decode[[]domain.CourseWithType](t, w)
	require.NotEmpty(t, courses)

	return courses[0]
}

func TestHealthz(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListCourses_PublicShape(t *testing.T) {
	f := newFixture(t)

	course := f.firstCourse(t)

	assert.Equal(t, domain.CourseScheduled, course.Status)
	assert.NotZero(t, course.CourseType.ID, "template must be embedded")
	assert.True(t, course.CourseType.Price.IsPositive())
}

func TestGetCourse_ETag(t *testing.T) {
	f := newFixture(t)

	course := f.firstCourse(t)
	path := "/api/courses/" + itoa(course.ID)

	w := f.do(t, http.MethodGet, path, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	etag := w.Header().Get("ETag")
	require.NotEmpty(t, etag)

	w = f.do(t, http.MethodGet, path, nil, map[string]string{"If-None-Match": etag})
	assert.Equal(t, http.StatusNotModified, w.Code)
}

func TestGetCourse_NotFound(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/api/courses/9999", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	resp := decode[ErrorResponse](t, w)
	assert.Equal(t, "course_not_found", resp.Kind)
}

func TestCreateBooking_Success(t *testing.T) {
	f := newFixture(t)

	course := f.firstCourse(t)

	w := f.do(t, http.MethodPost, "/api/course-bookings", CreateBookingRequest{
		CourseID:      course.ID,
		CustomerName:  "Alice",
		CustomerEmail: "alice@example.com",
		Participants:  2,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	b := decode[domain.CourseBooking](t, w)
	assert.True(t, b.TotalPrice.Equal(course.CourseType.Price.Mul(two())),
		"total must be price x participants, got %s", b.TotalPrice)

	spots, err := f.store.CourseSpots(course.ID)
	require.NoError(t, err)
	assert.Equal(t, course.AvailableSpots-2, spots)
}

func TestCreateBooking_ValidationAndCapacity(t *testing.T) {
	f := newFixture(t)

	course := f.firstCourse(t)

	tests := []struct {
		name         string
		participants int
		wantKind     string
	}{
		{"zero participants", 0, "non_positive_count"},
		{"too many participants", course.AvailableSpots + 1, "exceeds_capacity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(t, http.MethodPost, "/api/course-bookings", CreateBookingRequest{
				CourseID:      course.ID,
				CustomerName:  "Alice",
				CustomerEmail: "alice@example.com",
				Participants:  tt.participants,
			}, nil)
			require.Equal(t, http.StatusBadRequest, w.Code)

			resp := decode[ErrorResponse](t, w)
			assert.Equal(t, tt.wantKind, resp.Kind)
		})
	}
}

func TestCreateBooking_UnknownCourse(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/api/course-bookings", CreateBookingRequest{
		CourseID:      9999,
		CustomerName:  "Alice",
		CustomerEmail: "alice@example.com",
		Participants:  1,
	}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateBooking_CancelledCourse(t *testing.T) {
	f := newFixture(t)

	course := f.firstCourse(t)
	cancelled := domain.CourseCancelled
	_, err := f.store.UpdateCourse(context.Background(), course.ID, domain.CourseUpdate{Status: &cancelled})
	require.NoError(t, err)

	w := f.do(t, http.MethodPost, "/api/course-bookings", CreateBookingRequest{
		CourseID:      course.ID,
		CustomerName:  "Alice",
		CustomerEmail: "alice@example.com",
		Participants:  1,
	}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decode[ErrorResponse](t, w)
	assert.Equal(t, "course_not_bookable", resp.Kind)
}

func TestAdmin_RequiresToken(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/api/admin/courses", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do(t, http.MethodGet, "/api/admin/courses", nil, map[string]string{
		"Authorization": "Bearer forged-token",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/api/admin/login", LoginRequest{
		Username: "maren",
		Password: "anvil",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdmin_CourseLifecycle(t *testing.T) {
	f := newFixture(t)
	headers := f.login(t)

	// pick a template from the seed
	w := f.do(t, http.MethodGet, "/api/course-types", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	types := decode[[]domain.CourseType](t, w)
	require.NotEmpty(t, types)

	// create
	w = f.do(t, http.MethodPost, "/api/admin/courses", CreateCourseRequest{
		CourseTypeID:    types[0].ID,
		Date:            "2026-10-12",
		StartTime:       "10:00",
		EndTime:         "14:00",
		MaxParticipants: 5,
	}, headers)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decode[domain.Course](t, w)
	assert.Equal(t, types[0].Name, created.Title)
	assert.Equal(t, 5, created.AvailableSpots)

	// update: cancel it
	status := "cancelled"
	w = f.do(t, http.MethodPut, "/api/admin/courses/"+itoa(created.ID),
		UpdateCourseRequest{Status: &status}, headers)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// terminal: cancelling again to scheduled conflicts
	back := "scheduled"
	w = f.do(t, http.MethodPut, "/api/admin/courses/"+itoa(created.ID),
		UpdateCourseRequest{Status: &back}, headers)
	require.Equal(t, http.StatusConflict, w.Code)

	resp := decode[ErrorResponse](t, w)
	assert.Equal(t, "status_locked", resp.Kind)

	// delete
	w = f.do(t, http.MethodDelete, "/api/admin/courses/"+itoa(created.ID), nil, headers)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAdmin_DeleteCourseWithBookingsNeedsForce(t *testing.T) {
	f := newFixture(t)
	headers := f.login(t)

	course := f.firstCourse(t)

	w := f.do(t, http.MethodPost, "/api/course-bookings", CreateBookingRequest{
		CourseID:      course.ID,
		CustomerName:  "Alice",
		CustomerEmail: "alice@example.com",
		Participants:  1,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = f.do(t, http.MethodDelete, "/api/admin/courses/"+itoa(course.ID), nil, headers)
	require.Equal(t, http.StatusConflict, w.Code)

	resp := decode[ErrorResponse](t, w)
	assert.Equal(t, "course_has_bookings", resp.Kind)
	assert.Equal(t, int64(1), resp.Bookings)

	w = f.do(t, http.MethodDelete, "/api/admin/courses/"+itoa(course.ID)+"?force=true", nil, headers)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAdmin_BookingCountAndList(t *testing.T) {
	f := newFixture(t)
	headers := f.login(t)

	course := f.firstCourse(t)

	for i := 0; i < 2; i++ {
		w := f.do(t, http.MethodPost, "/api/course-bookings", CreateBookingRequest{
			CourseID:      course.ID,
			CustomerName:  "Alice",
			CustomerEmail: "alice@example.com",
			Participants:  1,
		}, nil)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := f.do(t, http.MethodGet, "/api/admin/courses/"+itoa(course.ID)+"/bookings/count", nil, headers)
	require.Equal(t, http.StatusOK, w.Code)
	count := decode[map[string]int64](t, w)
	assert.Equal(t, int64(2), count["count"])

	w = f.do(t, http.MethodGet, "/api/admin/course-bookings?courseId="+itoa(course.ID), nil, headers)
	require.Equal(t, http.StatusOK, w.Code)
	bookings := decode[[]domain.CourseBooking](t, w)
	assert.Len(t, bookings, 2)
}

func TestLogout_RevokesToken(t *testing.T) {
	f := newFixture(t)
	headers := f.login(t)

	w := f.do(t, http.MethodPost, "/api/admin/logout", nil, headers)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = f.do(t, http.MethodGet, "/api/admin/courses", nil, headers)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCommissionRequestFlow(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/api/commission-requests", CreateCommissionRequest{
		CustomerName:  "Frank",
		CustomerEmail: "frank@example.com",
		Description:   "Signet ring with family crest.",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decode[domain.CommissionRequest](t, w)
	assert.Equal(t, domain.CommissionNew, created.Status)

	headers := f.login(t)

	w = f.do(t, http.MethodGet, "/api/admin/commission-requests", nil, headers)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]domain.CommissionRequest](t, w)
	require.Len(t, list, 1)

	w = f.do(t, http.MethodPut,
		"/api/admin/commission-requests/"+created.ID.String()+"/status",
		CommissionStatusRequest{Status: "reviewed"}, headers)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestProductsAndGallery(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/api/products", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	products := decode[[]domain.Product](t, w)
	assert.NotEmpty(t, products)

	w = f.do(t, http.MethodGet, "/api/gallery", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	images := decode[[]domain.GalleryImage](t, w)
	assert.NotEmpty(t, images)

	w = f.do(t, http.MethodGet, "/api/products/9999", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

func two() decimal.Decimal {
	return decimal.NewFromInt(2)
}
