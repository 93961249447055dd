package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tjcichra/tira-backend/internal/application/ticket/usecases"
	"github.com/tjcichra/tira-backend/internal/domain/ticket"
	"github.com/tjcichra/tira-backend/internal/interfaces/http/middleware"
	"github.com/tjcichra/tira-backend/internal/shared/logger"
	"github.com/tjcichra/tira-backend/internal/shared/utils"
)

type TicketHandler struct {
	createUseCase             *usecases.CreateTicketUseCase
	getUseCase                *usecases.GetTicketUseCase
	listUseCase               *usecases.ListTicketsUseCase
	updateUseCase             *usecases.UpdateTicketUseCase
	addCommentUseCase         *usecases.AddCommentUseCase
	updateCommentUseCase      *usecases.UpdateCommentUseCase
	listCommentsUseCase       *usecases.ListCommentsUseCase
	assignUseCase             *usecases.AssignTicketUseCase
	replaceAssignmentsUseCase *usecases.ReplaceAssignmentsUseCase
	listAssignmentsUseCase    *usecases.ListAssignmentsUseCase
	logger                    logger.Interface
}

func NewTicketHandler(
	createUseCase *usecases.CreateTicketUseCase,
	getUseCase *usecases.GetTicketUseCase,
	listUseCase *usecases.ListTicketsUseCase,
	updateUseCase *usecases.UpdateTicketUseCase,
	addCommentUseCase *usecases.AddCommentUseCase,
	updateCommentUseCase *usecases.UpdateCommentUseCase,
	listCommentsUseCase *usecases.ListCommentsUseCase,
	assignUseCase *usecases.AssignTicketUseCase,
	replaceAssignmentsUseCase *usecases.ReplaceAssignmentsUseCase,
	listAssignmentsUseCase *usecases.ListAssignmentsUseCase,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createUseCase:             createUseCase,
		getUseCase:                getUseCase,
		listUseCase:               listUseCase,
		updateUseCase:             updateUseCase,
		addCommentUseCase:         addCommentUseCase,
		updateCommentUseCase:      updateCommentUseCase,
		listCommentsUseCase:       listCommentsUseCase,
		assignUseCase:             assignUseCase,
		replaceAssignmentsUseCase: replaceAssignmentsUseCase,
		listAssignmentsUseCase:    listAssignmentsUseCase,
		logger:                    logger,
	}
}

type CreateTicketRequest struct {
	Subject     string  `json:"subject" binding:"required"`
	Description *string `json:"description"`
	CategoryID  *int64  `json:"category_id"`
	Priority    string  `json:"priority" binding:"required"`
	Status      string  `json:"status" binding:"required"`
	AssigneeIDs []int64 `json:"assignee_ids"`
}

type UpdateTicketRequest struct {
	Subject     *string `json:"subject"`
	Description *string `json:"description"`
	CategoryID  *int64  `json:"category_id"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type CreateAssignmentRequest struct {
	AssigneeID int64 `json:"assignee_id" binding:"required"`
}

type ReplaceAssignmentsRequest struct {
	AssigneeIDs []int64 `json:"assignee_ids"`
}

type TicketResponse struct {
	ID          int64        `json:"id"`
	Subject     string       `json:"subject"`
	Description *string      `json:"description"`
	CategoryID  *int64       `json:"category_id"`
	Priority    string       `json:"priority"`
	Status      string       `json:"status"`
	Created     time.Time    `json:"created"`
	Reporter    UserResponse `json:"reporter"`
}

type CommentResponse struct {
	ID        int64        `json:"id"`
	Commenter UserResponse `json:"commenter"`
	Content   string       `json:"content"`
	Commented time.Time    `json:"commented"`
}

type AssignmentResponse struct {
	ID         int64     `json:"id"`
	TicketID   int64     `json:"ticket_id"`
	AssigneeID int64     `json:"assignee_id"`
	AssignerID int64     `json:"assigner_id"`
	Assigned   time.Time `json:"assigned"`
}

// AlteredResourceResponse reports the id of a freshly created resource.
type AlteredResourceResponse struct {
	ID int64 `json:"id"`
}

func toTicketResponse(t *usecases.TicketWithReporter) TicketResponse {
	return TicketResponse{
		ID:          t.Ticket.ID,
		Subject:     t.Ticket.Subject,
		Description: t.Ticket.Description,
		CategoryID:  t.Ticket.CategoryID,
		Priority:    string(t.Ticket.Priority),
		Status:      string(t.Ticket.Status),
		Created:     t.Ticket.CreatedAt,
		Reporter:    toUserResponse(t.Reporter),
	}
}

func toAssignmentResponse(a *ticket.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:         a.ID,
		TicketID:   a.TicketID,
		AssigneeID: a.AssigneeID,
		AssignerID: a.AssignerID,
		Assigned:   a.AssignedAt,
	}
}

func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Subject:     req.Subject,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Priority:    req.Priority,
		Status:      req.Status,
		AssigneeIDs: req.AssigneeIDs,
		ReporterID:  middleware.CurrentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, AlteredResourceResponse{ID: result.Ticket.ID}, "ticket created successfully")
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, toTicketResponse(&usecases.TicketWithReporter{Ticket: result.Ticket, Reporter: result.Reporter}))
}

func (h *TicketHandler) ListTickets(c *gin.Context) {
	reporterID, err := utils.ParseOptionalIntQuery(c, "reporter")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	open, err := utils.ParseOptionalBoolQuery(c, "open")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	tickets, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListTicketsCommand{
		ReporterID: reporterID,
		Open:       open,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]TicketResponse, 0, len(tickets))
	for i := range tickets {
		responses = append(responses, toTicketResponse(&tickets[i]))
	}
	utils.OKResponse(c, responses)
}

func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, err.Error())
		return
	}

	_, err = h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		Subject:     req.Subject,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Priority:    req.Priority,
		Status:      req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, AlteredResourceResponse{ID: ticketID}, "ticket updated successfully")
}

func (h *TicketHandler) CreateComment(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, err.Error())
		return
	}

	comment, err := h.addCommentUseCase.Execute(c.Request.Context(), usecases.AddCommentCommand{
		TicketID:    ticketID,
		CommenterID: middleware.CurrentUserID(c),
		Content:     req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, AlteredResourceResponse{ID: comment.ID}, "comment created successfully")
}

func (h *TicketHandler) UpdateComment(c *gin.Context) {
	commentID, err := utils.ParseIDParam(c, "id", "comment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, err.Error())
		return
	}

	err = h.updateCommentUseCase.Execute(c.Request.Context(), usecases.UpdateCommentCommand{
		CommentID: commentID,
		Content:   req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, AlteredResourceResponse{ID: commentID}, "comment updated successfully")
}

func (h *TicketHandler) ListComments(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	comments, err := h.listCommentsUseCase.Execute(c.Request.Context(), ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]CommentResponse, 0, len(comments))
	for _, item := range comments {
		responses = append(responses, CommentResponse{
			ID:        item.Comment.ID,
			Commenter: toUserResponse(item.Commenter),
			Content:   item.Comment.Content,
			Commented: item.Comment.CreatedAt,
		})
	}
	utils.OKResponse(c, responses)
}

func (h *TicketHandler) CreateAssignment(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, err.Error())
		return
	}

	assignment, err := h.assignUseCase.Execute(c.Request.Context(), usecases.AssignTicketCommand{
		TicketID:   ticketID,
		AssigneeID: req.AssigneeID,
		AssignerID: middleware.CurrentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, AlteredResourceResponse{ID: assignment.ID}, "assignment created successfully")
}

func (h *TicketHandler) ReplaceAssignments(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReplaceAssignmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, err.Error())
		return
	}

	err = h.replaceAssignmentsUseCase.Execute(c.Request.Context(), usecases.ReplaceAssignmentsCommand{
		TicketID:    ticketID,
		AssigneeIDs: req.AssigneeIDs,
		AssignerID:  middleware.CurrentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, AlteredResourceResponse{ID: ticketID}, "assignments replaced successfully")
}

func (h *TicketHandler) ListTicketAssignments(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	assignments, err := h.listAssignmentsUseCase.Execute(c.Request.Context(), usecases.ListAssignmentsCommand{TicketID: &ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, toAssignmentResponse(a))
	}
	utils.OKResponse(c, responses)
}

func (h *TicketHandler) ListAssignments(c *gin.Context) {
	assigneeID, err := utils.ParseOptionalIntQuery(c, "assignee")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	ticketID, err := utils.ParseOptionalIntQuery(c, "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	assignments, err := h.listAssignmentsUseCase.Execute(c.Request.Context(), usecases.ListAssignmentsCommand{
		AssigneeID: assigneeID,
		TicketID:   ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, toAssignmentResponse(a))
	}
	utils.OKResponse(c, responses)
}
