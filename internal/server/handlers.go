package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"survival/internal/features"
	"survival/internal/inference"
)

type predictReq struct {
	Features []float64 `json:"features" binding:"required"`
}

type predictResp struct {
	Prediction int    `json:"prediction"`
	Result     string `json:"result"`
}

type errorResp struct {
	Error string `json:"error"`
}

// GET /
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": HealthMessage})
}

// POST /predict
//
// Every failure is a 400 carrying the error text; the kind is only logged.
func (s *Server) handlePredict(c *gin.Context) {
	var req predictReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.reject(c, "bind", err)
		return
	}

	p, err := s.svc.Predict(c.Request.Context(), req.Features)
	if err != nil {
		kind := "other"
		var ve *features.ValidationError
		var ie *inference.InferenceError
		switch {
		case errors.As(err, &ve):
			kind = "validation"
		case errors.As(err, &ie):
			kind = "inference"
		}
		s.reject(c, kind, err)
		return
	}
	c.JSON(http.StatusOK, predictResp{Prediction: p.Class, Result: p.Label})
}

func (s *Server) reject(c *gin.Context, kind string, err error) {
	s.logger.Warn("Prediction rejected",
		zap.String("kind", kind),
		zap.String("model", s.svc.ModelName()),
		zap.Error(err),
	)
	c.JSON(http.StatusBadRequest, errorResp{Error: err.Error()})
}
