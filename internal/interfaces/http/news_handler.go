package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdelort/cafe-manager-api/internal/application/dto"
	"github.com/jdelort/cafe-manager-api/internal/application/news"
	"github.com/jdelort/cafe-manager-api/internal/domain"
)

// NewsHandler gère les requêtes HTTP des actualités.
type NewsHandler struct {
	uc *news.UseCase
}

// NewNewsHandler construit le handler.
func NewNewsHandler(uc *news.UseCase) *NewsHandler {
	return &NewsHandler{uc: uc}
}

// Create godoc
// @Summary      Créer une actualité
// @Tags         news
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNewsRequest  true  "Titre, corps, publication"
// @Success      201   {object}  dto.NewsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/news [post]
func (h *NewsHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateNewsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "le titre est requis"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtenir une actualité par ID
// @Tags         news
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de l'actualité"
// @Success      200  {object}  dto.NewsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/news/{id} [get]
func (h *NewsHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "actualité introuvable"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Lister les actualités
// @Tags         news
// @Security     Bearer
// @Produce      json
// @Param        published  query  bool  false  "Uniquement les publiées"
// @Param        limit      query  int   false  "Limite"  default(20)
// @Param        offset     query  int   false  "Offset"  default(0)
// @Success      200        {object}  dto.NewsListResponse
// @Router       /api/news [get]
func (h *NewsHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.List(c.Context(), c.QueryBool("published", false), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Mettre à jour une actualité
// @Tags         news
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de l'actualité"
// @Param        body  body  dto.UpdateNewsRequest  true  "Champs à modifier"
// @Success      200   {object}  dto.NewsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/news/{id} [put]
func (h *NewsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateNewsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "le titre ne peut pas être vide"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "actualité introuvable"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Supprimer une actualité
// @Tags         news
// @Security     Bearer
// @Param        id  path  string  true  "ID de l'actualité"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/news/{id} [delete]
func (h *NewsHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "actualité introuvable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
