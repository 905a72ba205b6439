package ticket

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/infrastructure/storage"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

const maxScreenshotsPerTicket = 5

type TicketHandler struct {
	submitTicketUC usecases.SubmitTicketExecutor
	getTicketUC    usecases.GetTicketExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	updateTicketUC usecases.UpdateTicketExecutor
	attachments    storage.AttachmentStore
	logger         logger.Interface
}

func NewTicketHandler(
	submitTicketUC usecases.SubmitTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	attachments storage.AttachmentStore,
) *TicketHandler {
	return &TicketHandler{
		submitTicketUC: submitTicketUC,
		getTicketUC:    getTicketUC,
		listTicketsUC:  listTicketsUC,
		updateTicketUC: updateTicketUC,
		attachments:    attachments,
		logger:         logger.NewLogger(),
	}
}

// SubmitTicket handles POST /tickets.
// The public submission form posts multipart/form-data with optional
// video and screenshot attachments.
func (h *TicketHandler) SubmitTicket(c *gin.Context) {
	var form SubmitTicketForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Warnw("invalid ticket submission form", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid submission form: "+err.Error())
		return
	}

	videoURL, err := h.storeVideo(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	screenshotURLs, err := h.storeScreenshots(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.SubmitTicketCommand{
		ClientName:     form.ClientName,
		ClientEmail:    form.ClientEmail,
		ClientPhone:    form.ClientPhone,
		Category:       form.Category,
		Message:        form.Message,
		VideoURL:       videoURL,
		ScreenshotURLs: screenshotURLs,
	}

	result, err := h.submitTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket submitted successfully")
}

// GetTicket handles GET /tickets/:id.
// The id segment accepts either a numeric id or a T-... reference.
func (h *TicketHandler) GetTicket(c *gin.Context) {
	query := usecases.GetTicketQuery{
		UserEmail: c.GetString("user_email"),
		UserRole:  c.GetString("user_role"),
	}

	raw := c.Param("id")
	if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
		query.TicketID = uint(id)
	} else if strings.HasPrefix(raw, "T-") {
		query.Reference = raw
	} else {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid ticket identifier"))
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	req, err := parseListTicketsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := req.ToQuery(c.GetString("user_email"), c.GetString("user_role"))

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Tickets)
}

// UpdateTicket handles PATCH /tickets.
// The board posts the ticket id in the body together with the fields to change.
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

func (h *TicketHandler) storeVideo(c *gin.Context) (*string, error) {
	file, header, err := c.Request.FormFile("video")
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		// no multipart body at all also means no attachment
		if strings.Contains(err.Error(), "no multipart") {
			return nil, nil
		}
		return nil, errors.NewValidationError("invalid video attachment")
	}
	defer file.Close()

	url, err := h.attachments.Save(storage.KindVideo, file, header.Size)
	if err != nil {
		h.logger.Warnw("rejected video attachment", "filename", header.Filename, "error", err)
		return nil, err
	}

	return &url, nil
}

func (h *TicketHandler) storeScreenshots(c *gin.Context) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}

	files := form.File["screenshots"]
	if len(files) > maxScreenshotsPerTicket {
		return nil, errors.NewValidationError("too many screenshots")
	}

	urls := make([]string, 0, len(files))
	for _, header := range files {
		url, err := h.storeScreenshot(header)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}

	return urls, nil
}

func (h *TicketHandler) storeScreenshot(header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", errors.NewValidationError("invalid screenshot attachment")
	}
	defer file.Close()

	url, err := h.attachments.Save(storage.KindScreenshot, file, header.Size)
	if err != nil {
		h.logger.Warnw("rejected screenshot attachment", "filename", header.Filename, "error", err)
		return "", err
	}

	return url, nil
}
