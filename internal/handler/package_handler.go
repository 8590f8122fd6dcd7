package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"parceldesk/internal/dto"
	"parceldesk/internal/middleware"
	"parceldesk/internal/model"
	"parceldesk/internal/service"
)

type PackageHandler struct {
	svc *service.PackageService
}

func NewPackageHandler(svc *service.PackageService) *PackageHandler {
	return &PackageHandler{svc: svc}
}

func (h *PackageHandler) Register(c *gin.Context) {
	var req dto.RegisterPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	pkg, err := h.svc.Register(c.Request.Context(), middleware.SessionID(c), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, dto.PackageIDResponse{ID: pkg.ID})
}

func (h *PackageHandler) List(c *gin.Context) {
	params := dto.ParsePagination(c)

	pkgs, total, err := h.svc.List(c.Request.Context(), middleware.SessionID(c), params)
	if err != nil {
		status, resp := middleware.MapDBError(err)
		c.JSON(status, dto.ErrorResponse{Error: resp.Error})
		return
	}

	items := make([]dto.PackageResponse, len(pkgs))
	for i, pkg := range pkgs {
		items[i] = toPackageResponse(pkg)
	}

	c.JSON(http.StatusOK, dto.PackageListResponse{
		Items:      items,
		Pagination: dto.NewPagination(params.Page, params.PageSize, total),
	})
}

func (h *PackageHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid package id"})
		return
	}

	pkg, err := h.svc.Get(c.Request.Context(), id, middleware.SessionID(c))
	if err != nil {
		status, resp := middleware.MapDBError(err)
		c.JSON(status, dto.ErrorResponse{Error: resp.Error})
		return
	}

	c.JSON(http.StatusOK, toPackageResponse(*pkg))
}

func (h *PackageHandler) Types(c *gin.Context) {
	types, err := h.svc.Types(c.Request.Context())
	if err != nil {
		status, resp := middleware.MapDBError(err)
		c.JSON(status, dto.ErrorResponse{Error: resp.Error})
		return
	}

	resp := make([]dto.PackageTypeResponse, len(types))
	for i, t := range types {
		resp[i] = dto.PackageTypeResponse{ID: t.ID, Name: t.Name}
	}
	c.JSON(http.StatusOK, resp)
}

func toPackageResponse(pkg model.Package) dto.PackageResponse {
	return dto.PackageResponse{
		ID:              pkg.ID,
		Name:            pkg.Name,
		Weight:          pkg.Weight,
		TypeID:          pkg.TypeID,
		Type:            pkg.TypeName,
		ContentValueUSD: pkg.ContentValueUSD,
		DeliveryCost:    pkg.DeliveryCost,
		CreatedAt:       pkg.CreatedAt,
	}
}
