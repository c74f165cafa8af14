package httpgin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/atelierdahl/atelier-go/internal/domain"
	"github.com/atelierdahl/atelier-go/internal/pricing"
	redisrepo "github.com/atelierdahl/atelier-go/internal/repository/redis"
	"github.com/atelierdahl/atelier-go/internal/service"
	"github.com/atelierdahl/atelier-go/internal/service/admin"
	"github.com/atelierdahl/atelier-go/internal/service/auth"
	"github.com/atelierdahl/atelier-go/internal/service/booking"
	"github.com/atelierdahl/atelier-go/internal/service/catalog"
)

func NewRouter(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), LoggingMiddleware(logger), RequestIDMiddleware(), CORS())
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Public API
	api.GET("/course-types", handleListCourseTypes(svcs))
	api.GET("/courses", handleListCourses(svcs))
	api.GET("/courses/:id", handleGetCourse(svcs))
	api.POST("/course-bookings", handleCreateBooking(svcs, idem))

	api.GET("/products", handleListProducts(svcs))
	api.GET("/products/:id", handleGetProduct(svcs))
	api.GET("/gallery", handleListGallery(svcs))
	api.POST("/commission-requests", handleCreateCommission(svcs))

	api.POST("/admin/login", handleLogin(svcs))

	// Admin API
	adm := api.Group("/admin", AdminAuth(svcs.Auth))
	{
		adm.POST("/logout", handleLogout(svcs))

		adm.GET("/courses", handleAdminListCourses(svcs))
		adm.POST("/courses", handleCreateCourse(svcs))
		adm.PUT("/courses/:id", handleUpdateCourse(svcs))
		adm.DELETE("/courses/:id", handleDeleteCourse(svcs))
		adm.GET("/courses/:id/bookings/count", handleBookingCount(svcs))
		adm.GET("/course-bookings", handleListBookings(svcs))
		adm.POST("/course-types", handleCreateCourseType(svcs))

		adm.POST("/products", handleCreateProduct(svcs))
		adm.PUT("/products/:id", handleUpdateProduct(svcs))
		adm.DELETE("/products/:id", handleDeleteProduct(svcs))

		adm.POST("/gallery", handleCreateGalleryImage(svcs))
		adm.DELETE("/gallery/:id", handleDeleteGalleryImage(svcs))

		adm.GET("/commission-requests", handleListCommissions(svcs))
		adm.PUT("/commission-requests/:id/status", handleUpdateCommissionStatus(svcs))
	}

	return r
}

// --- Public handlers ---

// @Summary  List course templates
// @Success  200  {array}  domain.CourseType
// @Router   /api/course-types [get]
func handleListCourseTypes(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svcs.Catalog.ListCourseTypes(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, out, "public, max-age=300", true)
	}
}

// @Summary  List bookable courses with their template
// @Success  200  {array}  domain.CourseWithType
// @Router   /api/courses [get]
func handleListCourses(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svcs.Catalog.ListCourses(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		// availability changes with every booking, keep it short
		writeJSONWithCache(c, http.StatusOK, out, "public, max-age=15", true)
	}
}

// @Summary  Get one course with its template
// @Param    id  path  int  true  "Course ID"
// @Success  200  {object}  domain.CourseWithType
// @Failure  404  {object}  ErrorResponse
// @Router   /api/courses/{id} [get]
func handleGetCourse(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		out, err := svcs.Catalog.GetCourse(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, out, "public, max-age=15", true)
	}
}

// @Summary  Create a course booking (idempotent)
// @Param    req body  CreateBookingRequest true "payload"
// @Success  201 {object} domain.CourseBooking
// @Failure  400 {object} ErrorResponse "validation / capacity / not bookable"
// @Failure  404 {object} ErrorResponse "course not found"
// @Failure  429 {object} ErrorResponse "rate limited"
// @Router   /api/course-bookings [post]
func handleCreateBooking(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		idemKey := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
		var idemStorageKey string
		if idem != nil && idemKey != "" {
			idemStorageKey = redisrepo.KeyIdemBooking(req.CourseID, idemKey)

			if payload, ok, _ := idem.GetResult(
				c.Request.Context(),
				idemStorageKey,
			); ok {
				c.Header("Idempotency-Key", idemKey)
				c.Data(
					http.StatusCreated,
					"application/json; charset=utf-8",
					[]byte(payload),
				)
				return
			}

			locked, err := idem.AcquireLock(
				c.Request.Context(),
				idemStorageKey,
				60*time.Second,
			)
			if err != nil {
				respondErr(c, err)
				return
			}
			if !locked {
				if payload, ok, _ := idem.GetResult(
					c.Request.Context(),
					idemStorageKey,
				); ok {
					c.Header("Idempotency-Key", idemKey)
					c.Data(
						http.StatusCreated,
						"application/json; charset=utf-8",
						[]byte(payload),
					)
					return
				}
				c.Header("Retry-After", "1")
				c.JSON(
					http.StatusConflict,
					ErrorResponse{Error: "idempotency key in progress"},
				)
				return
			}
		}

		b, err := svcs.Booking.Create(c.Request.Context(), booking.CreateParams{
			CourseID:      req.CourseID,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			Message:       req.Message,
			Participants:  req.Participants,
			RateKey:       "ip:" + c.ClientIP(),
		})
		if err != nil {
			if idemStorageKey != "" && idem != nil {
				_ = idem.Release(c.Request.Context(), idemStorageKey)
			}
			respondErr(c, err)
			return
		}

		if idemStorageKey != "" && idem != nil {
			payload, _ := json.Marshal(b)
			_ = idem.SaveResult(c.Request.Context(), idemStorageKey, string(payload))
			c.Header("Idempotency-Key", idemKey)
		}

		c.JSON(http.StatusCreated, b)
	}
}

// @Summary  List products
// @Success  200  {array}  domain.Product
// @Router   /api/products [get]
func handleListProducts(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svcs.Catalog.ListProducts(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, out, "public, max-age=60", true)
	}
}

// @Summary  Get one product
// @Param    id  path  int  true  "Product ID"
// @Success  200  {object}  domain.Product
// @Failure  404  {object}  ErrorResponse
// @Router   /api/products/{id} [get]
func handleGetProduct(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		out, err := svcs.Catalog.GetProduct(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, out, "public, max-age=60", true)
	}
}

// @Summary  List gallery images
// @Success  200  {array}  domain.GalleryImage
// @Router   /api/gallery [get]
func handleListGallery(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svcs.Catalog.ListGallery(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, out, "public, max-age=300", true)
	}
}

// @Summary  Submit a commission request
// @Param    req body  CreateCommissionRequest true "payload"
// @Success  201 {object} domain.CommissionRequest
// @Failure  400 {object} ErrorResponse
// @Router   /api/commission-requests [post]
func handleCreateCommission(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateCommissionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		cr := &domain.CommissionRequest{
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			Description:   req.Description,
			Budget:        req.Budget,
		}
		if err := svcs.Admin.CreateCommissionRequest(c.Request.Context(), cr); err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusCreated, cr)
	}
}

// @Summary  Admin login
// @Param    req body  LoginRequest true "payload"
// @Success  200 {object} LoginResponse
// @Failure  401 {object} ErrorResponse
// @Router   /api/admin/login [post]
func handleLogin(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		token, err := svcs.Auth.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, LoginResponse{Token: token})
	}
}

// --- Admin handlers ---

// @Summary  Admin logout
// @Success  204
// @Router   /api/admin/logout [post]
func handleLogout(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetString(ctxKeyToken)
		if err := svcs.Auth.Logout(c.Request.Context(), token); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary  List all courses for the back-office
// @Success  200  {array}  domain.CourseWithType
// @Router   /api/admin/courses [get]
func handleAdminListCourses(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svcs.Catalog.ListAllCourses(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Create a course instance
// @Param    req body  CreateCourseRequest true "payload"
// @Success  201 {object} domain.Course
// @Failure  400 {object} ErrorResponse
// @Router   /api/admin/courses [post]
func handleCreateCourse(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateCourseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		date, err := parseDate(req.Date)
		if err != nil {
			badRequest(c, "invalid date (YYYY-MM-DD)")
			return
		}
		startTime, err := parseTimeOfDay(req.StartTime)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		endTime, err := parseTimeOfDay(req.EndTime)
		if err != nil {
			badRequest(c, err.Error())
			return
		}

		course, err := svcs.Admin.CreateCourse(c.Request.Context(), admin.CreateCourseParams{
			CourseTypeID:    req.CourseTypeID,
			Title:           req.Title,
			Date:            date,
			StartTime:       startTime,
			EndTime:         endTime,
			MaxParticipants: req.MaxParticipants,
			Location:        req.Location,
			Instructor:      req.Instructor,
			Notes:           req.Notes,
		})
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusCreated, course)
	}
}

// @Summary  Update a course instance
// @Param    id  path  int  true  "Course ID"
// @Param    req body  UpdateCourseRequest true "payload"
// @Success  200 {object} domain.Course
// @Failure  404 {object} ErrorResponse
// @Failure  409 {object} ErrorResponse "terminal status"
// @Router   /api/admin/courses/{id} [put]
func handleUpdateCourse(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		var req UpdateCourseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		upd := domain.CourseUpdate{
			Title:          req.Title,
			AvailableSpots: req.AvailableSpots,
			Location:       req.Location,
			Instructor:     req.Instructor,
			Notes:          req.Notes,
		}

		if req.Date != nil {
			date, err := parseDate(*req.Date)
			if err != nil {
				badRequest(c, "invalid date (YYYY-MM-DD)")
				return
			}
			upd.Date = &date
		}
		if req.StartTime != nil {
			st, err := parseTimeOfDay(*req.StartTime)
			if err != nil {
				badRequest(c, err.Error())
				return
			}
			upd.StartTime = &st
		}
		if req.EndTime != nil {
			et, err := parseTimeOfDay(*req.EndTime)
			if err != nil {
				badRequest(c, err.Error())
				return
			}
			upd.EndTime = &et
		}
		if req.Status != nil {
			st, err := courseStatus(*req.Status)
			if err != nil {
				badRequest(c, err.Error())
				return
			}
			upd.Status = &st
		}

		course, err := svcs.Admin.UpdateCourse(c.Request.Context(), id, upd)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, course)
	}
}

// @Summary  Delete a course instance
// @Param    id     path   int     true  "Course ID"
// @Param    force  query  bool    false "confirm deletion despite bookings"
// @Success  204
// @Failure  404 {object} ErrorResponse
// @Failure  409 {object} ErrorResponse "bookings exist, force required"
// @Router   /api/admin/courses/{id} [delete]
func handleDeleteCourse(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		force := c.Query("force") == "true"

		if err := svcs.Admin.DeleteCourse(c.Request.Context(), id, force); err != nil {
			respondErr(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// @Summary  Count bookings referencing a course
// @Param    id  path  int  true  "Course ID"
// @Success  200 {object} map[string]int64
// @Router   /api/admin/courses/{id}/bookings/count [get]
func handleBookingCount(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		n, err := svcs.Booking.CountForCourse(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"count": n})
	}
}

// @Summary  List bookings
// @Param    courseId  query  int  false  "filter by course"
// @Success  200  {array}  domain.CourseBooking
// @Router   /api/admin/course-bookings [get]
func handleListBookings(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var courseID int64
		if q := c.Query("courseId"); q != "" {
			v, err := strconv.ParseInt(q, 10, 64)
			if err != nil {
				badRequest(c, "invalid courseId")
				return
			}
			courseID = v
		}

		out, err := svcs.Booking.ListForCourse(c.Request.Context(), courseID)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Create a course template
// @Param    req body  CreateCourseTypeRequest true "payload"
// @Success  201 {object} domain.CourseType
// @Router   /api/admin/course-types [post]
func handleCreateCourseType(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateCourseTypeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		if !req.Price.IsPositive() {
			badRequest(c, "price must be positive")
			return
		}

		ct, err := svcs.Admin.CreateCourseType(c.Request.Context(), &domain.CourseType{
			Name:            req.Name,
			Description:     req.Description,
			Price:           req.Price,
			Duration:        req.Duration,
			MaxParticipants: req.MaxParticipants,
			MinAge:          req.MinAge,
			Materials:       req.Materials,
			Requirements:    req.Requirements,
			ImageURL:        req.ImageURL,
		})
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusCreated, ct)
	}
}

// @Summary  Create a product
// @Param    req body  ProductRequest true "payload"
// @Success  201 {object} domain.Product
// @Router   /api/admin/products [post]
func handleCreateProduct(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		if !req.Price.IsPositive() {
			badRequest(c, "price must be positive")
			return
		}

		p, err := svcs.Admin.CreateProduct(c.Request.Context(), &domain.Product{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Category:    req.Category,
			ImageURL:    req.ImageURL,
			Available:   req.Available,
		})
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusCreated, p)
	}
}

// @Summary  Update a product
// @Param    id  path  int  true  "Product ID"
// @Param    req body  ProductRequest true "payload"
// @Success  200 {object} domain.Product
// @Failure  404 {object} ErrorResponse
// @Router   /api/admin/products/{id} [put]
func handleUpdateProduct(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		p, err := svcs.Admin.UpdateProduct(c.Request.Context(), &domain.Product{
			ID:          id,
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Category:    req.Category,
			ImageURL:    req.ImageURL,
			Available:   req.Available,
		})
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, p)
	}
}

// @Summary  Delete a product
// @Param    id  path  int  true  "Product ID"
// @Success  204
// @Failure  404 {object} ErrorResponse
// @Router   /api/admin/products/{id} [delete]
func handleDeleteProduct(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		if err := svcs.Admin.DeleteProduct(c.Request.Context(), id); err != nil {
			respondErr(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// @Summary  Add a gallery image
// @Param    req body  GalleryImageRequest true "payload"
// @Success  201 {object} domain.GalleryImage
// @Router   /api/admin/gallery [post]
func handleCreateGalleryImage(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GalleryImageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		img, err := svcs.Admin.CreateGalleryImage(c.Request.Context(), &domain.GalleryImage{
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Category,
			ImageURL:    req.ImageURL,
		})
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusCreated, img)
	}
}

// @Summary  Remove a gallery image
// @Param    id  path  int  true  "Image ID"
// @Success  204
// @Failure  404 {object} ErrorResponse
// @Router   /api/admin/gallery/{id} [delete]
func handleDeleteGalleryImage(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		if err := svcs.Admin.DeleteGalleryImage(c.Request.Context(), id); err != nil {
			respondErr(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// @Summary  List commission requests
// @Success  200  {array}  domain.CommissionRequest
// @Router   /api/admin/commission-requests [get]
func handleListCommissions(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svcs.Admin.ListCommissionRequests(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Update a commission request's status
// @Param    id  path  string  true  "Request ID (uuid)"
// @Param    req body  CommissionStatusRequest true "payload"
// @Success  204
// @Failure  404 {object} ErrorResponse
// @Router   /api/admin/commission-requests/{id}/status [put]
func handleUpdateCommissionStatus(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			badRequest(c, "invalid id")
			return
		}

		var req CommissionStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		if err := svcs.Admin.UpdateCommissionStatus(
			c.Request.Context(),
			id,
			domain.CommissionStatus(req.Status),
		); err != nil {
			respondErr(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// --- Helpers ---

func parseInt64Param(c *gin.Context, name string) (int64, bool) {
	s := c.Param(name)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return v, true
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg, Kind: "validation_error"})
}

func respondErr(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	var capErr *pricing.CapacityError
	var hasBookings *admin.CourseHasBookingsError
	var statusLocked *admin.StatusLockedError
	var rateLimited *booking.RateLimitedError

	switch {
	// booking service
	case errors.Is(err, booking.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "course not found", Kind: "course_not_found"})
		return
	case errors.Is(err, booking.ErrCourseNotBookable):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "course is not open for booking", Kind: "course_not_bookable"})
		return
	case errors.As(err, &capErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: capErr.Error(), Kind: string(capErr.Kind)})
		return
	case errors.As(err, &rateLimited):
		c.Header("Retry-After", strconv.Itoa(int(rateLimited.RetryAfter.Seconds())+1))
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: rateLimited.Error(), Kind: "rate_limited"})
		return
	// catalog service
	case errors.Is(err, catalog.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "course not found", Kind: "course_not_found"})
		return
	case errors.Is(err, catalog.ErrProductNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "product not found", Kind: "product_not_found"})
		return
	// admin service
	case errors.As(err, &hasBookings):
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:    hasBookings.Error(),
			Kind:     "course_has_bookings",
			Bookings: hasBookings.Count,
		})
		return
	case errors.As(err, &statusLocked):
		c.JSON(http.StatusConflict, ErrorResponse{Error: statusLocked.Error(), Kind: "status_locked"})
		return
	case errors.Is(err, admin.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "course not found", Kind: "course_not_found"})
		return
	case errors.Is(err, admin.ErrCourseTypeNotFound):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "course type not found", Kind: "course_type_not_found"})
		return
	case errors.Is(err, admin.ErrProductNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "product not found", Kind: "product_not_found"})
		return
	case errors.Is(err, admin.ErrImageNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "gallery image not found", Kind: "image_not_found"})
		return
	case errors.Is(err, admin.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "commission request not found", Kind: "request_not_found"})
		return
	case errors.Is(err, admin.ErrInvalidStatus), errors.Is(err, admin.ErrInvalidSpots):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: "validation_error"})
		return
	// auth service
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials", Kind: "invalid_credentials"})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error", Kind: "internal"})
}
