package controllers

import (
	"strconv"

	"github.com/jculp24/thrsty/entity"
	"github.com/jculp24/thrsty/pkg/resp"
	"github.com/jculp24/thrsty/services"
	"github.com/jculp24/thrsty/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Service: s}
}

// POST /api/orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.PlaceOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.Service.Place(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /api/orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	items, err := oc.Service.ListForUser(utils.CurrentUserID(c), limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OKList(c, len(items), items)
}

// GET /api/orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	out, err := oc.Service.DetailForUser(utils.CurrentUserID(c), uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

type UpdateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PUT /api/orders/:id/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Service.UpdateStatus(utils.CurrentUserID(c), uint(id), entity.OrderStatus(req.Status))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /api/orders/vendor/:vendorId
func (oc *OrderController) ListForVendor(c *gin.Context) {
	vendorID, _ := strconv.Atoi(c.Param("vendorId"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, err := oc.Service.ListForVendor(utils.CurrentUserID(c), uint(vendorID), limit)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OKList(c, len(items), items)
}
