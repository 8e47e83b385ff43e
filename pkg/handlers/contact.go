package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JACK-Producer/endtime-loud-cry/cmd/config"
	"github.com/JACK-Producer/endtime-loud-cry/pkg/contact"
)

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func ContactPage(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{})
}

func SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if _, err := contactSvc.Submit(req.Name, req.Email, req.Message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Message submitted successfully"})
}

func ContactMessagesPage(c *gin.Context) {
	c.HTML(http.StatusOK, "contact_messages.html", gin.H{"admin": currentAdmin(c)})
}

func ContactMessagesData(c *gin.Context) {
	msgs, err := contactSvc.ListNewestFirst()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load messages"})
		return
	}
	c.JSON(http.StatusOK, msgs)
}

func DeleteContactMessage(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message id"})
		return
	}
	if err := contactSvc.Delete(id); err != nil {
		if err == contact.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Message deleted successfully"})
}

// ReplyContactMessage queues the outbound mail and acknowledges
// immediately. Delivery failures never reach this response; the mailer
// logs them.
func ReplyContactMessage(c *gin.Context) {
	email := c.PostForm("email")
	body := c.PostForm("message")
	if email == "" || body == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and message are required"})
		return
	}
	mail.SendAsync(email, config.ReplySubject, body)
	c.JSON(http.StatusOK, gin.H{"detail": "Reply sent successfully"})
}
