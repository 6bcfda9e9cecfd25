package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jdelort/cafe-manager-api/internal/application/analytics"
	"github.com/jdelort/cafe-manager-api/internal/application/dto"
)

// DashboardHandler gère les endpoints du tableau de bord.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construit le handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary renvoie le résumé financier du jour et du mois en cours.
// GET /api/dashboard/summary
//
// Réponse: DashboardSummaryDTO (CA TTC/HT et commandes du jour et du mois,
// top_products[5], date_label). Aucun paramètre; les dates sont calculées côté serveur.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(summary)
}
