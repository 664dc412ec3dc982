package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/codeassess/api/internal/dto"
	"github.com/codeassess/api/internal/service"
	"github.com/codeassess/api/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	testSvc       service.TestService
	attemptSvc    service.AttemptService
	submissionSvc service.SubmissionService
	diagSvc       service.DiagService
}

func NewController(tSvc service.TestService, aSvc service.AttemptService, sSvc service.SubmissionService, dSvc service.DiagService) *Controller {
	return &Controller{
		testSvc:       tSvc,
		attemptSvc:    aSvc,
		submissionSvc: sSvc,
		diagSvc:       dSvc,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/", ctrl.RootHandler)
	router.GET("/landing", ctrl.LandingHandler)
	router.GET("/health", ctrl.HealthHandler)
	router.GET("/test", ctrl.DiagHandler)
	router.GET("/schema", ctrl.SchemaHandler)

	api := router.Group("/api")
	{
		tests := api.Group("/tests")
		tests.POST("", ctrl.CreateTestHandler)
		tests.GET("", ctrl.ListTestsHandler)
		tests.GET("/:id", ctrl.GetTestHandler)

		attempts := api.Group("/attempts")
		attempts.POST("", ctrl.StartAttemptHandler)
		attempts.GET("", ctrl.ListAttemptsHandler)

		submissions := api.Group("/submissions")
		submissions.POST("", ctrl.AddSubmissionHandler)
		submissions.GET("", ctrl.ListSubmissionsHandler)
	}
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags diagnostics
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (ctrl *Controller) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Message: "CodeAssess Backend Running"})
}

// DiagHandler godoc
// @Summary Store connectivity diagnostic
// @Description Reports backend and database status. Store failures are folded into the status object, never into an error response.
// @Tags diagnostics
// @Produce json
// @Success 200 {object} dto.DiagResponse
// @Router /test [get]
func (ctrl *Controller) DiagHandler(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.diagSvc.Diagnose(c.Request.Context()))
}

// SchemaHandler godoc
// @Summary Enumerate known collection names
// @Tags diagnostics
// @Produce json
// @Success 200 {object} dto.SchemaResponse
// @Router /schema [get]
func (ctrl *Controller) SchemaHandler(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SchemaResponse{Collections: store.CollectionNames()})
}

// CreateTestHandler godoc
// @Summary Create a test
// @Description Store a new test with its embedded questions. Validation is structural only.
// @Tags tests
// @Accept json
// @Produce json
// @Param test body dto.CreateTestRequest true "Test document"
// @Success 200 {object} dto.CreateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Store error"
// @Router /api/tests [post]
func (ctrl *Controller) CreateTestHandler(c *gin.Context) {
	var req dto.CreateTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateTestRequest")
		c.JSON(http.StatusBadRequest, bindingErrorResponse(err))
		return
	}
	resp, err := ctrl.testSvc.CreateTest(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListTestsHandler godoc
// @Summary List tests
// @Tags tests
// @Produce json
// @Param limit query int false "Maximum number of tests returned" default(50)
// @Success 200 {array} dto.TestResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid limit"
// @Failure 500 {object} dto.ErrorResponse "Store error"
// @Router /api/tests [get]
func (ctrl *Controller) ListTestsHandler(c *gin.Context) {
	var limit int64
	if limitStr := c.Query("limit"); limitStr != "" {
		val, err := strconv.ParseInt(limitStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid limit format"})
			return
		}
		limit = val
	}
	tests, err := ctrl.testSvc.ListTests(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tests)
}

// GetTestHandler godoc
// @Summary Fetch one test
// @Tags tests
// @Produce json
// @Param id path string true "Test ID"
// @Success 200 {object} dto.TestResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed id"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Store error"
// @Router /api/tests/{id} [get]
func (ctrl *Controller) GetTestHandler(c *gin.Context) {
	test, err := ctrl.testSvc.GetTest(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, test)
}

// StartAttemptHandler godoc
// @Summary Start an attempt
// @Description Record the start of a candidate's run through a test. The referenced test_id is stored as given, not resolved.
// @Tags attempts
// @Accept json
// @Produce json
// @Param attempt body dto.CreateAttemptRequest true "Attempt document"
// @Success 200 {object} dto.CreateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Store error"
// @Router /api/attempts [post]
func (ctrl *Controller) StartAttemptHandler(c *gin.Context) {
	var req dto.CreateAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateAttemptRequest")
		c.JSON(http.StatusBadRequest, bindingErrorResponse(err))
		return
	}
	resp, err := ctrl.attemptSvc.StartAttempt(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListAttemptsHandler godoc
// @Summary List attempts
// @Description List attempts, optionally narrowed by test_id and/or user_email. Filters are an exact-match conjunction.
// @Tags attempts
// @Produce json
// @Param test_id query string false "Filter by test id"
// @Param user_email query string false "Filter by candidate email"
// @Success 200 {array} dto.AttemptResponse
// @Failure 500 {object} dto.ErrorResponse "Store error"
// @Router /api/attempts [get]
func (ctrl *Controller) ListAttemptsHandler(c *gin.Context) {
	attempts, err := ctrl.attemptSvc.ListAttempts(c.Request.Context(), c.Query("test_id"), c.Query("user_email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, attempts)
}

// AddSubmissionHandler godoc
// @Summary Record a submission
// @Description Store one answer to one question within an attempt. Submissions are append-only.
// @Tags submissions
// @Accept json
// @Produce json
// @Param submission body dto.CreateSubmissionRequest true "Submission document"
// @Success 200 {object} dto.CreateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Store error"
// @Router /api/submissions [post]
func (ctrl *Controller) AddSubmissionHandler(c *gin.Context) {
	var req dto.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateSubmissionRequest")
		c.JSON(http.StatusBadRequest, bindingErrorResponse(err))
		return
	}
	resp, err := ctrl.submissionSvc.AddSubmission(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListSubmissionsHandler godoc
// @Summary List submissions
// @Tags submissions
// @Produce json
// @Param attempt_id query string false "Filter by attempt id"
// @Success 200 {array} dto.SubmissionResponse
// @Failure 500 {object} dto.ErrorResponse "Store error"
// @Router /api/submissions [get]
func (ctrl *Controller) ListSubmissionsHandler(c *gin.Context) {
	subs, err := ctrl.submissionSvc.ListSubmissions(c.Request.Context(), c.Query("attempt_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

// respondError translates store sentinels into status codes. Anything
// unrecognized becomes a 500 with a truncated message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid id"})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Not found"})
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: truncate(err.Error(), 80)})
	}
}

// bindingErrorResponse turns a ShouldBindJSON failure into a response that
// names each offending field.
func bindingErrorResponse(err error) dto.ErrorResponse {
	resp := dto.ErrorResponse{Message: "Invalid request body"}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			resp.Details = append(resp.Details, fieldError(fe))
		}
		return resp
	}
	resp.Details = []string{err.Error()}
	return resp
}

func fieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	default:
		return fe.Field() + " failed validation: " + fe.Tag()
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
