package handlers

import (
	"net/http"
	"testing"

	"fieldservice/internal/adapter/http/handlers/mocks"
	"fieldservice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestUploadHandler_GetUploadURL(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IUploadUseCase) *gin.Engine {
		r := gin.New()
		r.GET("/upload-url", NewUploadHandler(uc).GetUploadURL)
		return r
	}

	t.Run("signed url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUploadUseCase(ctrl)

		uc.EXPECT().CreateUploadURL(gomock.Any(), usecase.UploadURLInput{RequestID: "SN-1", Role: "U", Remark: "good", WorkOrderID: "WO-1"}).
			Return("https://bucket.example/SN-1/U-GOOD/WO-1.jpg?sig", nil)

		w := perform(newRouter(uc), http.MethodGet, "/upload-url?requestId=SN-1&role=U&remark=good&woId=WO-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := decodeBody(t, w)["signed_url"]; got != "https://bucket.example/SN-1/U-GOOD/WO-1.jpg?sig" {
			t.Fatalf("unexpected signed url %v", got)
		}
	})

	t.Run("error mapping", func(t *testing.T) {
		cases := []struct {
			err    error
			status int
			code   string
		}{
			{usecase.ErrMissingUploadParams, http.StatusBadRequest, "MISSING_PARAMETERS"},
			{usecase.ErrInvalidTechnicianRole, http.StatusBadRequest, "INVALID_ROLE"},
			{usecase.ErrInvalidRemark, http.StatusBadRequest, "INVALID_REMARK"},
			{usecase.ErrUploadSignerNotConfigured, http.StatusServiceUnavailable, "UPLOADS_NOT_CONFIGURED"},
			{usecase.ErrStorage, http.StatusInternalServerError, "INTERNAL_ERROR"},
		}
		for _, tc := range cases {
			t.Run(tc.code, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockIUploadUseCase(ctrl)
				uc.EXPECT().CreateUploadURL(gomock.Any(), gomock.Any()).Return("", tc.err)

				w := perform(newRouter(uc), http.MethodGet, "/upload-url?requestId=SN-1", "")
				expectError(t, w, tc.status, tc.code)
			})
		}
	})
}
