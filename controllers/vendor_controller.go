package controllers

import (
	"strconv"

	"github.com/jculp24/thrsty/pkg/resp"
	"github.com/jculp24/thrsty/services"
	"github.com/jculp24/thrsty/utils"

	"github.com/gin-gonic/gin"
)

type VendorController struct {
	Service *services.VendorService
}

func NewVendorController(s *services.VendorService) *VendorController {
	return &VendorController{Service: s}
}

// GET /api/vendors
func (vc *VendorController) List(c *gin.Context) {
	vendors, err := vc.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OKList(c, len(vendors), vendors)
}

// GET /api/vendors/:id
func (vc *VendorController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	v, err := vc.Service.Get(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, v)
}

// GET /api/vendors/:id/menu
func (vc *VendorController) Menu(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	menu, err := vc.Service.Menu(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OKList(c, len(menu.Menu), menu)
}

// POST /api/vendors
func (vc *VendorController) Create(c *gin.Context) {
	var in services.VendorIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	v, err := vc.Service.Create(&in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, v)
}

// PUT /api/vendors/:id
func (vc *VendorController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var in services.VendorIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	v, err := vc.Service.Update(utils.CurrentUserID(c), uint(id), &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, v)
}

// DELETE /api/vendors/:id
func (vc *VendorController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := vc.Service.Delete(utils.CurrentUserID(c), uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OKMessage(c, "Vendor deleted successfully")
}
