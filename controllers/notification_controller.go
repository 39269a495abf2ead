package controllers

import (
	"strconv"

	"github.com/jculp24/thrsty/pkg/resp"
	"github.com/jculp24/thrsty/services"
	"github.com/jculp24/thrsty/utils"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	Service *services.NotificationService
}

func NewNotificationController(s *services.NotificationService) *NotificationController {
	return &NotificationController{Service: s}
}

// GET /api/notifications
func (nc *NotificationController) List(c *gin.Context) {
	items, err := nc.Service.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OKList(c, len(items), items)
}

// POST /api/notifications
func (nc *NotificationController) Create(c *gin.Context) {
	var in services.CreateNotificationIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	n, err := nc.Service.Create(&in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, n)
}

// PUT /api/notifications/:id/read
func (nc *NotificationController) MarkRead(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := nc.Service.MarkRead(utils.CurrentUserID(c), uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OKMessage(c, "Notification marked as read")
}

// GET /api/vendors/:id/notifications
func (nc *NotificationController) ListForVendor(c *gin.Context) {
	items, err := nc.Service.ListForVendor(c.GetUint("vendorId"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OKList(c, len(items), items)
}

// PUT /api/vendors/:id/notifications/:nid/read
func (nc *NotificationController) MarkReadForVendor(c *gin.Context) {
	nid, _ := strconv.Atoi(c.Param("nid"))
	if err := nc.Service.MarkReadForVendor(c.GetUint("vendorId"), uint(nid)); err != nil {
		fail(c, err)
		return
	}
	resp.OKMessage(c, "Notification marked as read")
}

// DELETE /api/notifications/:id
func (nc *NotificationController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := nc.Service.Delete(utils.CurrentUserID(c), uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OKMessage(c, "Notification deleted successfully")
}
