package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/safiyu/ranthal/internal/auth"
	"github.com/safiyu/ranthal/internal/identity"
	"github.com/safiyu/ranthal/internal/transform"
)

// MaxUploadSize caps multipart uploads.
const MaxUploadSize = 10 << 20

// RegisterRoutes wires the HTTP handlers to the Gin router.
func RegisterRoutes(router *gin.Engine, authSvc *auth.Service, orch *transform.Orchestrator) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "model_loaded": orch.ModelReady()})
	})

	router.POST("/auth/register", handleRegister(authSvc))
	router.POST("/auth/login", handleLogin(authSvc))

	protected := router.Group("", auth.BearerMiddleware(authSvc))
	protected.GET("/auth/me", handleMe(authSvc))
	protected.POST("/ocr", handleOCR(orch))
	protected.POST("/remove-bg", handleRemoveBackground(orch))
	if orch.HistoryEnabled() {
		protected.GET("/history/:id", handleHistory(orch))
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// bindCredentials accepts a JSON body and falls back to query parameters,
// which is how the original clients sent these fields.
func bindCredentials(c *gin.Context) credentialsRequest {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err == nil && req.Email != "" {
		return req
	}
	return credentialsRequest{
		Email:    c.Query("email"),
		Password: c.Query("password"),
		Name:     c.Query("name"),
	}
}

func handleRegister(authSvc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := bindCredentials(c)
		if req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "email and password are required"})
			return
		}

		token, userID, err := authSvc.Register(req.Email, req.Password, req.Name)
		if err != nil {
			if errors.Is(err, identity.ErrAlreadyExists) {
				c.JSON(http.StatusBadRequest, gin.H{"detail": "User already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User created", "token": token, "user_id": userID})
	}
}

func handleLogin(authSvc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := bindCredentials(c)

		token, userID, name, err := authSvc.Login(req.Email, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid credentials"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "user_id": userID, "name": nullable(name)})
	}
}

func handleMe(authSvc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := auth.GetClaims(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
			return
		}

		profile := authSvc.WhoAmI(claims)
		c.JSON(http.StatusOK, gin.H{"id": profile.ID, "email": profile.Email, "name": nullable(profile.Name)})
	}
}

func handleOCR(orch *transform.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, ok := readUpload(c)
		if !ok {
			return
		}

		text, err := orch.ExtractText(c.Request.Context(), callerID(c), data)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"text": text})
	}
}

func handleRemoveBackground(orch *transform.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, ok := readUpload(c)
		if !ok {
			return
		}

		result, err := orch.RemoveBackground(c.Request.Context(), callerID(c), data)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}

		c.Data(http.StatusOK, "image/png", result)
	}
}

func handleHistory(orch *transform.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		log, err := orch.GetHistory(c.Request.Context(), callerID(c), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"detail": "result not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"request_id":  log.RequestID,
			"user_id":     log.UserID,
			"operation":   log.Operation,
			"success":     log.Success,
			"duration_ms": log.DurationMs,
			"detail":      log.Detail,
			"created_at":  log.CreatedAt,
		})
	}
}

// readUpload pulls the multipart image field out of the request, applying
// the gateway-level size and media-type guards.
func readUpload(c *gin.Context) ([]byte, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "image file is required"})
		return nil, false
	}
	if file.Size > MaxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"detail": "image exceeds the upload size limit"})
		return nil, false
	}
	if ct := file.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") && ct != "application/octet-stream" {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"detail": "unsupported media type"})
		return nil, false
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "unable to open image"})
		return nil, false
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to read image"})
		return nil, false
	}
	return data, true
}

func callerID(c *gin.Context) string {
	if claims, ok := auth.GetClaims(c.Request.Context()); ok {
		return claims.Subject
	}
	return ""
}

// nullable maps an unset name to JSON null instead of an empty string.
func nullable(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}
