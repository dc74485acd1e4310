package controllers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"

	"fiber-ims/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(DB *gorm.DB) *ReportController {
	return &ReportController{DB: DB}
}

// report is a rendered result set: the header row is the query's
// column names, the body the raw result rows, in query order.
type report struct {
	Headers []string        `json:"headers"`
	Rows    [][]interface{} `json:"rows"`
}

func (c *ReportController) buildInventoryReport() (report, error) {
	inventoryRepo := repositories.NewInventoryRepository(c.DB)
	summary, err := inventoryRepo.GetInventorySummary()
	if err != nil {
		return report{}, err
	}

	r := report{
		Headers: []string{"Inventory ID", "Product ID", "Product", "Quantity", "Status", "Warehouse", "Zone", "Aisle", "Bin"},
		Rows:    [][]interface{}{},
	}
	for _, row := range summary {
		r.Rows = append(r.Rows, []interface{}{
			row.InventoryID, row.ProductID, row.ProductName, row.Quantity,
			row.Status, row.Warehouse, row.Zone, row.Aisle, row.Bin,
		})
	}
	return r, nil
}

func (c *ReportController) buildExpiryReport() (report, error) {
	alertRepo := repositories.NewAlertRepository(c.DB)
	alerts, err := alertRepo.CheckExpiryAlerts()
	if err != nil {
		return report{}, err
	}

	r := report{
		Headers: []string{"Product ID", "Batch Number", "Days to Expiry", "Horizon"},
		Rows:    [][]interface{}{},
	}
	for _, alert := range alerts {
		r.Rows = append(r.Rows, []interface{}{alert.ProductID, alert.BatchNumber, alert.DaysToExpiry, alert.Horizon})
	}
	return r, nil
}

func (c *ReportController) buildReorderReport() (report, error) {
	alertRepo := repositories.NewAlertRepository(c.DB)
	alerts, err := alertRepo.CheckReorderAlerts()
	if err != nil {
		return report{}, err
	}

	r := report{
		Headers: []string{"Product ID", "Quantity", "Min Threshold", "Reorder Point"},
		Rows:    [][]interface{}{},
	}
	for _, alert := range alerts {
		r.Rows = append(r.Rows, []interface{}{alert.ProductID, alert.Quantity, alert.MinThreshold, alert.ReorderPoint})
	}
	return r, nil
}

func (c *ReportController) buildAuditReport() (report, error) {
	auditRepo := repositories.NewAuditRepository(c.DB)
	logs, err := auditRepo.GetAuditLogs()
	if err != nil {
		return report{}, err
	}

	r := report{
		Headers: []string{"Audit ID", "Inventory ID", "Action", "Reason", "Changed By", "Timestamp"},
		Rows:    [][]interface{}{},
	}
	for _, entry := range logs {
		r.Rows = append(r.Rows, []interface{}{
			int64(entry.ID), entry.InventoryID, entry.Action, entry.Reason,
			entry.ChangedBy, entry.Timestamp.Format("2006-01-02 15:04:05"),
		})
	}
	return r, nil
}

func (c *ReportController) serveReport(ctx *fiber.Ctx, name string, build func() (report, error)) error {
	r, err := build()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	switch ctx.Query("format") {
	case "csv":
		return sendCSV(ctx, name, r)
	case "excel":
		return sendExcel(ctx, name, r)
	default:
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": r})
	}
}

func (c *ReportController) InventorySummaryReport(ctx *fiber.Ctx) error {
	return c.serveReport(ctx, "inventory_summary", c.buildInventoryReport)
}

func (c *ReportController) ExpiryAlertsReport(ctx *fiber.Ctx) error {
	return c.serveReport(ctx, "expiry_alerts", c.buildExpiryReport)
}

func (c *ReportController) ReorderAlertsReport(ctx *fiber.Ctx) error {
	return c.serveReport(ctx, "reorder_alerts", c.buildReorderReport)
}

func (c *ReportController) AuditLogsReport(ctx *fiber.Ctx) error {
	return c.serveReport(ctx, "audit_logs", c.buildAuditReport)
}

func sendCSV(ctx *fiber.Ctx, name string, r report) error {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(r.Headers); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	for _, row := range r.Rows {
		record := make([]string, len(row))
		for i, value := range row {
			record[i] = fmt.Sprint(value)
		}
		if err := writer.Write(record); err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Set("Content-Type", "text/csv")
	ctx.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.csv"`, name))
	return ctx.Send(buf.Bytes())
}

func sendExcel(ctx *fiber.Ctx, name string, r report) error {
	f := excelize.NewFile()
	sheet := "Sheet1"

	for col, header := range r.Headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}
	for i, row := range r.Rows {
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.xlsx"`, name))

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Failed to generate Excel")
	}

	return nil
}
