package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdelort/cafe-manager-api/internal/application/dto"
	"github.com/jdelort/cafe-manager-api/internal/application/shoppinglist"
	"github.com/jdelort/cafe-manager-api/internal/domain"
)

// ShoppingListHandler gère les requêtes HTTP de la liste de courses (protégé).
type ShoppingListHandler struct {
	uc     *shoppinglist.UseCase
	pdfGen shoppinglist.PDFGenerator
}

// NewShoppingListHandler construit le handler.
func NewShoppingListHandler(uc *shoppinglist.UseCase, pdfGen shoppinglist.PDFGenerator) *ShoppingListHandler {
	return &ShoppingListHandler{uc: uc, pdfGen: pdfGen}
}

// List godoc
// @Summary      Lister les entrées de la liste de courses
// @Tags         shopping-list
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "pending | ordered | received (vide = actives)"
// @Success      200     {object}  dto.EntryListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/shopping-list [get]
func (h *ShoppingListHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("status"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "statut inconnu"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Ajouter un article à la liste de courses
// @Tags         shopping-list
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddEntryRequest  true  "item_id requis; quantité/priorité calculées si omises"
// @Success      201   {object}  dto.EntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/shopping-list/add [post]
func (h *ShoppingListHandler) Add(c *fiber.Ctx) error {
	var in dto.AddEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Add(c.Context(), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "item_id requis, quantité ou priorité invalide"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "article introuvable"})
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "cet article a déjà une entrée active"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Modifier une entrée
// @Tags         shopping-list
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de l'entrée"
// @Param        body  body  dto.UpdateEntryRequest  true  "Champs à modifier"
// @Success      200   {object}  dto.EntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/shopping-list/{id} [put]
func (h *ShoppingListHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantité ou priorité invalide"})
		case domain.ErrAlreadyReceived:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "une entrée reçue n'est plus modifiable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entrée introuvable"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Retirer une entrée de la liste
// @Tags         shopping-list
// @Security     Bearer
// @Param        id  path  string  true  "ID de l'entrée"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shopping-list/{id} [delete]
func (h *ShoppingListHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entrée introuvable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MarkOrdered godoc
// @Summary      Marquer une entrée comme commandée
// @Tags         shopping-list
// @Security     Bearer
// @Param        id  path  string  true  "ID de l'entrée"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/shopping-list/{id}/mark-ordered [post]
func (h *ShoppingListHandler) MarkOrdered(c *fiber.Ctx) error {
	if err := h.uc.MarkOrdered(c.Context(), c.Params("id")); err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entrée introuvable"})
		case domain.ErrConflict:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "seule une entrée en attente peut être commandée"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MarkReceived godoc
// @Summary      Marquer une entrée comme reçue (incrémente le stock)
// @Tags         shopping-list
// @Security     Bearer
// @Param        id  path  string  true  "ID de l'entrée"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/shopping-list/{id}/mark-received [post]
func (h *ShoppingListHandler) MarkReceived(c *fiber.Ctx) error {
	if err := h.uc.MarkReceived(c.Context(), c.Params("id")); err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entrée introuvable"})
		case domain.ErrAlreadyReceived:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "entrée déjà reçue"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AutoAddLowStock godoc
// @Summary      Promouvoir les articles sous le seuil vers la liste (idempotent)
// @Tags         shopping-list
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AutoAddResponse
// @Router       /api/shopping-list/auto-add-low-stock [post]
func (h *ShoppingListHandler) AutoAddLowStock(c *fiber.Ctx) error {
	added, err := h.uc.AutoAddLowStock(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.AutoAddResponse{Added: added})
}

// Export godoc
// @Summary      Exporter les articles commandés (csv, txt ou pdf)
// @Tags         shopping-list
// @Security     Bearer
// @Param        format  query  string  false  "csv | txt | pdf"  default(csv)
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/shopping-list/export [get]
func (h *ShoppingListHandler) Export(c *fiber.Ctx) error {
	format := c.Query("format", "csv")
	var (
		out         []byte
		err         error
		contentType string
		filename    string
	)
	switch format {
	case "csv":
		out, err = h.uc.ExportCSV(c.Context())
		contentType, filename = "text/csv; charset=utf-8", "liste-de-courses.csv"
	case "txt":
		out, err = h.uc.ExportTXT(c.Context())
		contentType, filename = "text/plain; charset=utf-8", "liste-de-courses.txt"
	case "pdf":
		out, err = h.uc.ExportPDF(c.Context(), h.pdfGen)
		contentType, filename = "application/pdf", "bon-de-commande.pdf"
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "format inconnu: csv, txt ou pdf"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(out)
}
