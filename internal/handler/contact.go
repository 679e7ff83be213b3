package handler

import (
	"net/http"

	"github.com/akhilkushwaha/portfolio-backend/internal/service"
	"github.com/akhilkushwaha/portfolio-backend/pkg/response"
	"github.com/gin-gonic/gin"
)

const contactThanksMessage = "Thank you! Your message has been sent successfully."

type ContactHandler struct {
	svc service.ContactService
}

func NewContactHandler(svc service.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

func (h *ContactHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/contact")
	{
		g.POST("", h.submit)
		g.GET("/admin", h.listRecent)
	}
}

// submittedContact is the slice of the stored document echoed back to the
// form.
type submittedContact struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *ContactHandler) submit(c *gin.Context) {
	var in service.ContactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.WriteFailure(c, http.StatusBadRequest, "invalid request body")
		return
	}

	// Request metadata is recorded alongside the submission.
	in.IPAddress = c.ClientIP()
	in.UserAgent = c.GetHeader("User-Agent")
	in.Referrer = c.GetHeader("Referer")

	// Validation and persistence failures alike come back as 400 with the
	// underlying message; there is no retry on this path.
	contact, err := h.svc.Submit(c.Request.Context(), in)
	if err != nil {
		response.WriteFailure(c, http.StatusBadRequest, err.Error())
		return
	}

	response.WriteSuccess(c, http.StatusCreated, contactThanksMessage, submittedContact{
		ID:    contact.ID.Hex(),
		Name:  contact.Name,
		Email: contact.Email,
	})
}

func (h *ContactHandler) listRecent(c *gin.Context) {
	contacts, err := h.svc.ListRecent(c.Request.Context())
	if err != nil {
		response.WriteFailure(c, response.MapError(err), err.Error())
		return
	}
	response.WriteSuccess(c, http.StatusOK, "", contacts)
}
