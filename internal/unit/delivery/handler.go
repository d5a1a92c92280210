package delivery

import (
	"net/http"

	unitdomain "crockpot-backend/internal/unit/domain"
	"crockpot-backend/internal/unit/repository"
	"crockpot-backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// UnitHandler handles unit catalog requests.
type UnitHandler struct {
	unitRepo repository.UnitRepository
}

func NewUnitHandler(unitRepo repository.UnitRepository) *UnitHandler {
	return &UnitHandler{unitRepo: unitRepo}
}

type createUnitRequest struct {
	Name         string                 `json:"name" binding:"required"`
	Abbreviation string                 `json:"abbreviation" binding:"required"`
	Type         string                 `json:"type" binding:"required,oneof=weight volume count custom"`
	Conversion   *unitdomain.Conversion `json:"conversions"`
}

// GetUnits lists all units.
// GET /units
func (h *UnitHandler) GetUnits(c *gin.Context) {
	units, err := h.unitRepo.FindAll()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, units)
}

// CreateUnit creates a unit, validating any conversion against its
// standard unit.
// POST /units (admin)
func (h *UnitHandler) CreateUnit(c *gin.Context) {
	var req createUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperrors.NewBadRequest(err.Error()))
		return
	}

	if req.Conversion != nil {
		standard, err := h.unitRepo.FindByID(req.Conversion.StandardUnitID)
		if err != nil {
			abortWithError(c, err)
			return
		}
		if standard == nil {
			abortWithError(c, apperrors.NewBadRequest("Referenced standard unit does not exist"))
			return
		}
		if standard.Type != req.Type {
			abortWithError(c, apperrors.NewBadRequest("Standard unit must be of the same type"))
			return
		}
	}

	unit := &unitdomain.Unit{
		Name:         req.Name,
		Abbreviation: req.Abbreviation,
		Type:         req.Type,
		Conversion:   req.Conversion,
	}

	if err := h.unitRepo.Create(unit); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, unit)
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
