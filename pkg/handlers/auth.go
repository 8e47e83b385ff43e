package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JACK-Producer/endtime-loud-cry/cmd/config"
	"github.com/JACK-Producer/endtime-loud-cry/pkg/auth"
)

func LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login authenticates the submitted form and plants the auth cookie.
// Failures re-render the form with an inline error rather than
// revealing whether the username or the password was wrong.
func Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	token, err := auth.Login(db, username, password, config.AuthSecret, config.TokenTTL)
	if err != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{"error": "Invalid credentials"})
		return
	}

	c.SetCookie(cookieName, "Bearer "+token, 0, "/", "", false, true)
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func Logout(c *gin.Context) {
	c.SetCookie(cookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/admin/login")
}

func Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", gin.H{"admin": currentAdmin(c)})
}

func ChangePasswordForm(c *gin.Context) {
	c.HTML(http.StatusOK, "change_password.html", gin.H{"admin": currentAdmin(c)})
}

func ChangePassword(c *gin.Context) {
	admin := currentAdmin(c)
	current := c.PostForm("current_password")
	newPassword := c.PostForm("new_password")
	confirm := c.PostForm("confirm_password")

	err := auth.ChangePassword(db, admin, current, newPassword, confirm)
	switch err {
	case nil:
		c.HTML(http.StatusOK, "change_password.html", gin.H{
			"admin":   admin,
			"success": "Password updated successfully!",
		})
	case auth.ErrWrongPassword:
		c.HTML(http.StatusOK, "change_password.html", gin.H{
			"admin": admin,
			"error": "Current password is incorrect",
		})
	case auth.ErrPasswordMismatch:
		c.HTML(http.StatusOK, "change_password.html", gin.H{
			"admin": admin,
			"error": "New passwords do not match",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
	}
}
