package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	v1 "github.com/emrgen/glossary/apis/v1"
	"github.com/emrgen/glossary/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const totalCountHeader = "X-Total-Count"

// restGateway serves the glossary over JSON/HTTP by calling the gRPC service
// implementation in process, the way a generated gateway would.
type restGateway struct {
	glossary v1.GlossaryServiceServer
}

// NewRestHandler returns the REST facade wrapped with CORS.
func NewRestHandler(glossary v1.GlossaryServiceServer) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // All origins are allowed
		AllowedMethods:   []string{"GET", "POST", "DELETE", "PUT"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{totalCountHeader, "X-Request-ID"},
		AllowCredentials: true,
	})

	return c.Handler(NewRouter(glossary))
}

// NewRouter builds the gin engine with every REST route.
func NewRouter(glossary v1.GlossaryServiceServer) *gin.Engine {
	gw := &restGateway{glossary: glossary}

	router := gin.New()
	router.Use(requestIDMiddleware(), loggerMiddleware(), metricsMiddleware(), gin.CustomRecovery(func(c *gin.Context, p any) {
		logrus.Errorf("panic while handling %s %s: %v", c.Request.Method, c.Request.URL.Path, p)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	terms := router.Group("/terms")
	{
		terms.GET("/", gw.listTerms)
		terms.GET("/:keyword", gw.getTerm)
		terms.POST("/", gw.createTerm)
		terms.PUT("/:keyword", gw.updateTerm)
		terms.DELETE("/:keyword", gw.deleteTerm)
	}

	graph := router.Group("/graph")
	{
		graph.POST("/relations/", gw.createRelation)
		graph.GET("/relations/", gw.listRelations)
		graph.GET("/relations/:keyword", gw.listTermRelations)
		graph.DELETE("/relations/:id", gw.deleteRelation)
		graph.GET("/graph", gw.getGraph)
	}

	return router
}

func (gw *restGateway) listTerms(c *gin.Context) {
	req := &v1.ListTermsRequest{}
	for name, target := range map[string]*int32{"limit": &req.Limit, "offset": &req.Offset} {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			writeError(c, service.ValidationStatus(&v1.ValidationError{Violations: []v1.FieldViolation{{Field: name, Description: "must be an integer"}}}))
			return
		}
		*target = int32(value)
	}

	res, err := gw.glossary.ListTerms(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header(totalCountHeader, strconv.FormatInt(res.Total, 10))
	c.JSON(http.StatusOK, res.Terms)
}

func (gw *restGateway) getTerm(c *gin.Context) {
	req := &v1.GetTermRequest{Keyword: c.Param("keyword")}
	if !validRequest(c, req) {
		return
	}

	res, err := gw.glossary.GetTerm(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res.Term)
}

func (gw *restGateway) createTerm(c *gin.Context) {
	req := &v1.CreateTermRequest{}
	if !bindRequest(c, req) {
		return
	}

	res, err := gw.glossary.CreateTerm(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res.Term)
}

// updateTermBody is the REST update payload; "keyword" renames the term.
type updateTermBody struct {
	Keyword     *string `json:"keyword"`
	Description *string `json:"description"`
	Source      *string `json:"source"`
}

func (gw *restGateway) updateTerm(c *gin.Context) {
	body := &updateTermBody{}
	if err := c.ShouldBindJSON(body); err != nil {
		writeError(c, status.Error(codes.InvalidArgument, "malformed request body: "+err.Error()))
		return
	}

	req := &v1.UpdateTermRequest{
		Keyword:     c.Param("keyword"),
		NewKeyword:  body.Keyword,
		Description: body.Description,
		Source:      body.Source,
	}
	if err := req.Validate(); err != nil {
		writeError(c, validationStatus(renameField(err, "new_keyword", "keyword")))
		return
	}

	res, err := gw.glossary.UpdateTerm(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res.Term)
}

func (gw *restGateway) deleteTerm(c *gin.Context) {
	req := &v1.DeleteTermRequest{Keyword: c.Param("keyword")}
	if !validRequest(c, req) {
		return
	}

	if _, err := gw.glossary.DeleteTerm(c.Request.Context(), req); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (gw *restGateway) createRelation(c *gin.Context) {
	req := &v1.CreateRelationRequest{}
	if !bindRequest(c, req) {
		return
	}

	res, err := gw.glossary.CreateRelation(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res.Relation)
}

func (gw *restGateway) listRelations(c *gin.Context) {
	res, err := gw.glossary.ListRelations(c.Request.Context(), &v1.ListRelationsRequest{})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res.Relations)
}

func (gw *restGateway) listTermRelations(c *gin.Context) {
	req := &v1.ListTermRelationsRequest{Keyword: c.Param("keyword")}
	if !validRequest(c, req) {
		return
	}

	res, err := gw.glossary.ListTermRelations(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res.Relations)
}

func (gw *restGateway) deleteRelation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, service.ValidationStatus(&v1.ValidationError{Violations: []v1.FieldViolation{{Field: "id", Description: "must be an integer"}}}))
		return
	}

	req := &v1.DeleteRelationRequest{Id: id}
	if !validRequest(c, req) {
		return
	}

	if _, err := gw.glossary.DeleteRelation(c.Request.Context(), req); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (gw *restGateway) getGraph(c *gin.Context) {
	res, err := gw.glossary.GetGraph(c.Request.Context(), &v1.GetGraphRequest{})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res.Graph)
}

// bindRequest decodes the JSON body into req and validates it.
func bindRequest(c *gin.Context, req validator) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		writeError(c, status.Error(codes.InvalidArgument, "malformed request body: "+err.Error()))
		return false
	}

	return validRequest(c, req)
}

func validRequest(c *gin.Context, req validator) bool {
	if err := validationStatus(req.Validate()); err != nil {
		writeError(c, err)
		return false
	}

	return true
}

// renameField reports violations of the from field under the REST body name to.
func renameField(err error, from, to string) error {
	var invalid *v1.ValidationError
	if !errors.As(err, &invalid) {
		return err
	}

	renamed := &v1.ValidationError{Violations: make([]v1.FieldViolation, 0, len(invalid.Violations))}
	for _, v := range invalid.Violations {
		if v.Field == from {
			v.Field = to
		}
		renamed.Violations = append(renamed.Violations, v)
	}
	return renamed
}

type fieldError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// writeError maps a gRPC status onto the matching HTTP status code.
func writeError(c *gin.Context, err error) {
	st := status.Convert(err)

	body := gin.H{"error": st.Message()}
	for _, detail := range st.Details() {
		if badRequest, ok := detail.(*errdetails.BadRequest); ok {
			fields := make([]fieldError, 0, len(badRequest.GetFieldViolations()))
			for _, v := range badRequest.GetFieldViolations() {
				fields = append(fields, fieldError{Field: v.GetField(), Description: v.GetDescription()})
			}
			body["fields"] = fields
		}
	}

	c.AbortWithStatusJSON(runtime.HTTPStatusFromCode(st.Code()), body)
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

func loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logrus.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start),
			"request_id": c.GetString("request_id"),
		}).Info("rest request")
	}
}

func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestDuration.WithLabelValues(transportRest, route).Observe(time.Since(start).Seconds())
		requestsTotal.WithLabelValues(transportRest, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
