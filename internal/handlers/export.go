package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cpalomino/wedding-api/internal/auth"
	"github.com/cpalomino/wedding-api/internal/models"
)

// csvBOM makes spreadsheet applications detect UTF-8.
const csvBOM = "\uFEFF"

// ExportHandler streams the guest list as CSV. It sits outside the typed
// API layer because the response is not JSON.
type ExportHandler struct {
	db          *gorm.DB
	logger      *zap.Logger
	authHandler *auth.AuthHandler
}

func NewExportHandler(db *gorm.DB, logger *zap.Logger, authHandler *auth.AuthHandler) *ExportHandler {
	return &ExportHandler{db: db, logger: logger, authHandler: authHandler}
}

func (h *ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !h.authHandler.IsAuthenticated(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Unauthorized"}`))
		return
	}

	var guests []models.Guest
	if err := h.db.Order("name ASC").Find(&guests).Error; err != nil {
		h.logger.Error("Failed to load guests for export", zap.Error(err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Failed to export"}`))
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="invitados-boda.csv"`)
	w.Write([]byte(RenderCSV(guests)))
}

// RenderCSV builds the spreadsheet the couple works with. The column set,
// Spanish headers and dd/mm/yyyy dates are part of the export contract.
// Every data field is quoted with embedded quotes doubled, so encoding/csv
// (which quotes conditionally) would change the output bytes.
func RenderCSV(guests []models.Guest) string {
	headers := []string{
		"Nombre",
		"Código",
		"Personas",
		"Teléfono",
		"Confirmado",
		"Asistirá",
		"Fecha Confirmación",
		"Mensaje",
	}

	lines := []string{strings.Join(headers, ",")}
	for _, g := range guests {
		row := []string{
			g.Name,
			g.Code,
			strconv.Itoa(g.NumberOfGuests),
			stringOrEmpty(g.Phone),
			yesNo(g.Confirmed),
			attendance(g.WillAttend),
			confirmationDate(g),
			stringOrEmpty(g.Message),
		}
		for i, field := range row {
			row[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
		}
		lines = append(lines, strings.Join(row, ","))
	}

	return csvBOM + strings.Join(lines, "\n")
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func yesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}

func attendance(willAttend *bool) string {
	switch {
	case willAttend == nil:
		return "Pendiente"
	case *willAttend:
		return "Sí"
	default:
		return "No"
	}
}

func confirmationDate(g models.Guest) string {
	if g.ConfirmedAt == nil {
		return ""
	}
	return g.ConfirmedAt.Format("2/1/2006")
}
