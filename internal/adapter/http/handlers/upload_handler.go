package handlers

import (
	"net/http"

	response "fieldservice/internal/adapter/http/dto/response"
	"fieldservice/internal/usecase"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	usecase usecase.IUploadUseCase
}

func NewUploadHandler(uc usecase.IUploadUseCase) *UploadHandler {
	return &UploadHandler{usecase: uc}
}

// GetUploadURL godoc
// @Summary      Signed upload URL for an inspection photo
// @Description  Returns a PUT URL for {requestId}/{ROLE}-{REMARK}/{woId}.jpg, content type application/octet-stream.
// @Tags         uploads
// @Produce      json
// @Param        requestId  query     string  true  "Request id"
// @Param        role       query     string  true  "U, P or T"
// @Param        remark     query     string  true  "good or replace"
// @Param        woId       query     string  true  "Work order id"
// @Success      200        {object}  response.SignedURLResponse
// @Failure      400        {object}  pkg.HTTPError
// @Router       /upload-url [get]
func (h *UploadHandler) GetUploadURL(c *gin.Context) {
	url, err := h.usecase.CreateUploadURL(c.Request.Context(), usecase.UploadURLInput{
		RequestID:   c.Query("requestId"),
		Role:        c.Query("role"),
		Remark:      c.Query("remark"),
		WorkOrderID: c.Query("woId"),
	})
	if err != nil {
		appErr := mapUploadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.SignedURLResponse{SignedURL: url})
}
