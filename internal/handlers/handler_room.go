package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/ports/services"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/dto"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/middleware"
)

// roomHandler handles HTTP requests related to rooms and rent schedules.
type roomHandler struct {
	roomService portssvc.RoomSvcFacade
}

func newRoomHandler(rs portssvc.RoomSvcFacade) *roomHandler {
	return &roomHandler{roomService: rs}
}

// registerRoomRoutes registers room and rent-schedule routes.
func registerRoomRoutes(rg *gin.RouterGroup, roomService portssvc.RoomSvcFacade) {
	h := newRoomHandler(roomService)

	rooms := rg.Group("/rooms")
	{
		rooms.POST("", h.createRoom)
		rooms.GET("", h.listRooms)
		rooms.GET("/:roomID", h.getRoom)
		rooms.POST("/:roomID/rent", h.updateRent)
		rooms.GET("/:roomID/rent-history", h.rentHistory)
	}
}

// createRoom godoc
// @Summary Create a new room
// @Description Registers a rentable room with its base rent.
// @Tags rooms
// @Accept json
// @Produce json
// @Param room body dto.CreateRoomRequest true "Room details"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Room code already exists"
// @Security BearerAuth
// @Router /rooms [post]
func (h *roomHandler) createRoom(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createRoom", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}
	creatorID, ok := mustOperatorID(c)
	if !ok {
		return
	}

	room, err := h.roomService.CreateRoom(c.Request.Context(), req, creatorID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Room created", slog.String("room_id", room.RoomID))
	c.JSON(http.StatusCreated, gin.H{
		"roomID":   room.RoomID,
		"code":     room.Code,
		"baseRent": room.BaseRent,
	})
}

// listRooms godoc
// @Summary List rooms
// @Description Lists all rooms with current effective rent and occupancy.
// @Tags rooms
// @Produce json
// @Success 200 {array} dto.RoomResponse
// @Security BearerAuth
// @Router /rooms [get]
func (h *roomHandler) listRooms(c *gin.Context) {
	rooms, err := h.roomService.ListRooms(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// getRoom godoc
// @Summary Get a room
// @Description Retrieves a room by ID.
// @Tags rooms
// @Produce json
// @Param roomID path string true "Room ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /rooms/{roomID} [get]
func (h *roomHandler) getRoom(c *gin.Context) {
	room, err := h.roomService.GetRoomByID(c.Request.Context(), c.Param("roomID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"roomID":    room.RoomID,
		"code":      room.Code,
		"baseRent":  room.BaseRent,
		"createdAt": room.CreatedAt,
	})
}

// updateRent godoc
// @Summary Schedule a rent change
// @Description Records a rent change for a room effective from the month containing the given date. Past charges keep their historical rents; future periods resolve to the new amount.
// @Tags rooms
// @Accept json
// @Produce json
// @Param roomID path string true "Room ID"
// @Param update body dto.UpdateRoomRentRequest true "Rent change"
// @Success 201 {object} dto.RentUpdateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "A change for that month already exists"
// @Security BearerAuth
// @Router /rooms/{roomID}/rent [post]
func (h *roomHandler) updateRent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	roomID := c.Param("roomID")

	var req dto.UpdateRoomRentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateRent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}
	creatorID, ok := mustOperatorID(c)
	if !ok {
		return
	}

	update, err := h.roomService.UpdateRoomRent(c.Request.Context(), roomID, req, creatorID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Rent change scheduled",
		slog.String("room_id", roomID),
		slog.String("effective_from", update.EffectiveFrom.Format(dto.DateLayout)))
	c.JSON(http.StatusCreated, dto.ToRentUpdateResponse(update))
}

// rentHistory godoc
// @Summary Room rent history
// @Description Lists a room's rent changes, oldest first.
// @Tags rooms
// @Produce json
// @Param roomID path string true "Room ID"
// @Success 200 {array} dto.RentUpdateResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /rooms/{roomID}/rent-history [get]
func (h *roomHandler) rentHistory(c *gin.Context) {
	updates, err := h.roomService.RentHistory(c.Request.Context(), c.Param("roomID"))
	if err != nil {
		respondError(c, err)
		return
	}
	responses := make([]dto.RentUpdateResponse, len(updates))
	for i := range updates {
		responses[i] = dto.ToRentUpdateResponse(&updates[i])
	}
	c.JSON(http.StatusOK, responses)
}
