package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"github.com/JACK-Producer/endtime-loud-cry/pkg/contact"
	"github.com/JACK-Producer/endtime-loud-cry/pkg/mailer"
	"github.com/JACK-Producer/endtime-loud-cry/pkg/videos"
)

var (
	db         *gorm.DB
	videoSvc   *videos.Service
	contactSvc *contact.Service
	mail       mailer.Sender
)

// NewRouter wires the services into the handler package and registers
// every route. Templates are loaded by the caller so tests can swap in
// their own set.
func NewRouter(database *gorm.DB, sender mailer.Sender) *gin.Engine {
	db = database
	videoSvc = videos.NewService(database)
	contactSvc = contact.NewService(database)
	mail = sender

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger())

	// Public pages
	r.GET("/", Home)
	r.GET("/watch", WatchLatest)
	r.GET("/watch/:id", Watch)
	r.GET("/about", About)
	r.GET("/donate", Donate)
	r.GET("/contact", ContactPage)
	r.Static("/static", "./static")

	// Public API
	r.GET("/videos", PublicVideos)
	r.POST("/contact", SubmitContact)

	// Admin auth
	r.GET("/admin/login", LoginForm)
	r.POST("/admin/login", Login)

	admin := r.Group("/admin", RequireAdmin())
	{
		admin.GET("/dashboard", Dashboard)
		admin.GET("/logout", Logout)
		admin.GET("/change-password", ChangePasswordForm)
		admin.POST("/change-password", ChangePassword)

		admin.POST("/video", CreateVideo)
		admin.GET("/videos/all", AllVideos)
		admin.PUT("/video/:id", UpdateVideo)
		admin.DELETE("/video/:id", DeleteVideo)

		admin.GET("/contact-messages", ContactMessagesPage)
		admin.GET("/contact-messages-data", ContactMessagesData)
		admin.DELETE("/contact-messages/:id", DeleteContactMessage)
		admin.POST("/contact-messages/reply", ReplyContactMessage)
	}

	return r
}
