// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pensive/backend/internal/application/usecase/advisor"
	domainerror "github.com/pensive/backend/internal/domain/error"
	"github.com/pensive/backend/internal/integration/entrypoint/dto"
)

// doneEvent is the terminal sentinel of the advisory event stream.
const doneEvent = "data: [DONE]\n\n"

// AdvisorController handles the streaming advisory endpoint.
type AdvisorController struct {
	streamAdviceUseCase *advisor.StreamAdviceUseCase
}

// NewAdvisorController creates a new advisor controller instance.
func NewAdvisorController(streamAdviceUseCase *advisor.StreamAdviceUseCase) *AdvisorController {
	return &AdvisorController{
		streamAdviceUseCase: streamAdviceUseCase,
	}
}

// Stream handles POST /api/stocks/advisor requests. Each upstream token is
// re-emitted as a server-sent event wrapping a small JSON envelope; the
// stream ends with a [DONE] sentinel. A client disconnect cancels the
// request context, which stops the upstream relay promptly.
func (c *AdvisorController) Stream(ctx *gin.Context) {
	var req dto.AdvisorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "Invalid request body"})
		return
	}

	deltas, err := c.streamAdviceUseCase.Execute(ctx.Request.Context(), req.ToStreamAdviceInput())
	if err != nil {
		if errors.Is(err, domainerror.ErrAdvisorNotConfigured) {
			ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Detail: err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Detail: "Failed to contact the advisory provider",
		})
		return
	}

	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")

	ctx.Stream(func(w io.Writer) bool {
		delta, ok := <-deltas
		if !ok || delta.Err != nil {
			io.WriteString(w, doneEvent)
			return false
		}

		payload, err := json.Marshal([]dto.StreamEventPart{{
			Type:      "text-delta",
			TextDelta: delta.Text,
		}})
		if err != nil {
			io.WriteString(w, doneEvent)
			return false
		}

		fmt.Fprintf(w, "data: %s\n\n", payload)
		return true
	})
}
