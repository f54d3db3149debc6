package requests

import (
	"errors"
	"io"
	"log"
	"net/http"

	domain "design-request-app/internal/domain/requests"
	"design-request-app/internal/infra/trello"
	"design-request-app/internal/service"

	"github.com/gin-gonic/gin"
)

const referenceImagesField = "reference_images"

type Handler struct {
	svc *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// ------------------------------
// POST /requests  (multipart form)
// ------------------------------
func (h *Handler) Submit(c *gin.Context) {
	var form SubmitRequestForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in, err := form.ToNewRequest()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	files, err := readAttachments(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read attachments"})
		return
	}

	id, err := h.svc.SubmitRequest(c.Request.Context(), in, files)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit request"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// readAttachments pulls the uploaded files out of the multipart form,
// preserving their order on the form.
func readAttachments(c *gin.Context) ([]service.Attachment, error) {
	mf, err := c.MultipartForm()
	if err != nil {
		// no multipart body at all means no attachments
		return nil, nil
	}

	headers := mf.File[referenceImagesField]
	files := make([]service.Attachment, 0, len(headers))

	for _, fh := range headers {
		src, err := fh.Open()
		if err != nil {
			return nil, err
		}

		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return nil, err
		}

		files = append(files, service.Attachment{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	return files, nil
}

// ------------------------------
// GET /requests?status=
// ------------------------------
func (h *Handler) List(c *gin.Context) {
	status := domain.Status(c.Query("status"))
	if status != "" && !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
		return
	}

	records, err := h.svc.ListRequests(c.Request.Context(), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load requests"})
		return
	}

	out := make([]RequestResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toResponse(r))
	}

	c.JSON(http.StatusOK, gin.H{"requests": out})
}

// ------------------------------
// GET /requests/:id
// ------------------------------
func (h *Handler) Get(c *gin.Context) {
	record, err := h.svc.GetRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(*record))
}

// ------------------------------
// PATCH /requests/:id/status
// ------------------------------
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := domain.Status(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	if err := h.svc.SetStatus(c.Request.Context(), c.Param("id"), status); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": status})
}

// ------------------------------
// DELETE /requests/:id
// ------------------------------
func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.DeleteRequest(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ------------------------------
// POST /requests/:id/sync
// ------------------------------
// Manual re-trigger after a failed synchronization. Re-running after a prior
// success creates a duplicate card; reviewers trigger this knowingly.
func (h *Handler) Resync(c *gin.Context) {
	id := c.Param("id")

	if err := h.svc.SyncCard(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	record, err := h.svc.GetRequest(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"card_id":  record.TrelloCardID,
		"card_url": record.TrelloCardURL,
	})
}

func respondError(c *gin.Context, err error) {
	var apiErr *trello.APIError

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
	case errors.Is(err, domain.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "Store rejected the operation. Check your permissions."})
	case errors.Is(err, domain.ErrPreconditionFailed):
		c.JSON(http.StatusConflict, gin.H{"error": "Only completed requests can be deleted"})
	case errors.Is(err, trello.ErrNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Trello configuration missing"})
	case errors.As(err, &apiErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create Trello card", "details": apiErr.Body})
	default:
		log.Printf("❌ Unhandled request error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
