package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JACK-Producer/endtime-loud-cry/pkg/videos"
)

type VideoRequest struct {
	Title       string `json:"title" binding:"required"`
	YoutubeLink string `json:"youtube_link" binding:"required"`
}

func paramID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}

func Home(c *gin.Context) {
	list, err := videoSvc.ListNewestFirst()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load videos"})
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{"videos": list})
}

// WatchLatest redirects to the most recently published video, or back
// home when no videos exist.
func WatchLatest(c *gin.Context) {
	latest, err := videoSvc.Latest()
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/watch/%d", latest.ID))
}

func Watch(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
		return
	}
	video, err := videoSvc.ByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
		return
	}
	c.HTML(http.StatusOK, "watch.html", gin.H{"video": video})
}

func PublicVideos(c *gin.Context) {
	list, err := videoSvc.ListNewestFirst()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load videos"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func AllVideos(c *gin.Context) {
	list, err := videoSvc.ListNewestFirst()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load videos"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func CreateVideo(c *gin.Context) {
	var req VideoRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	video, err := videoSvc.Create(req.Title, req.YoutubeLink)
	if err != nil {
		if err == videos.ErrInvalidLink {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid YouTube link"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save video"})
		return
	}
	c.JSON(http.StatusCreated, video)
}

func UpdateVideo(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video id"})
		return
	}
	var req VideoRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	video, err := videoSvc.Update(id, req.Title, req.YoutubeLink)
	if err != nil {
		if err == videos.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update video"})
		return
	}
	c.JSON(http.StatusOK, video)
}

func DeleteVideo(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video id"})
		return
	}
	if err := videoSvc.Delete(id); err != nil {
		if err == videos.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete video"})
		return
	}
	c.Status(http.StatusNoContent)
}
