// Package report выгружает отчёты по выездам в XLSX.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/shenikar/ambulance_dispatch/internal/models"
)

const attendanceSheet = "Attendances"

var AttendanceHeader = []string{
	"Attendance ID",
	"Occurrence ID",
	"Area",
	"Severity",
	"Plate",
	"Ambulance Type",
	"Dispatched At",
	"Arrived At",
	"Distance",
	"Estimated Minutes",
	"Actual Minutes",
	"Outside SLA",
}

// WriteAttendances пишет строки выездов в книгу с одним листом
func WriteAttendances(w io.Writer, rows []models.AttendanceReportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(attendanceSheet)
	if err != nil {
		return fmt.Errorf("report: could not create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("report: could not delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("report: could not create header style: %w", err)
	}

	header := make([]interface{}, len(AttendanceHeader))
	for i, h := range AttendanceHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(attendanceSheet, "A1", &header); err != nil {
		return fmt.Errorf("report: could not write header: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(AttendanceHeader), 1)
	if err := f.SetCellStyle(attendanceSheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("report: could not style header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("report: could not convert coordinates: %w", err)
		}
		values := []interface{}{
			r.AttendanceID.String(),
			r.OccurrenceID.String(),
			r.AreaID,
			string(r.Severity),
			r.Plate,
			string(r.AmbulanceType),
			r.DispatchedAt.Format(time.RFC3339),
			optionalTime(r.ArrivedAt),
			r.Distance,
			r.EstimatedMinutes,
			optionalFloat(r.ActualMinutes),
			optionalBool(r.OutsideSLA),
		}
		if err := f.SetSheetRow(attendanceSheet, cell, &values); err != nil {
			return fmt.Errorf("report: could not write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(attendanceSheet, "A", "B", 38); err != nil {
		return fmt.Errorf("report: could not set column width: %w", err)
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("report: could not write workbook: %w", err)
	}
	return nil
}

func optionalTime(t *time.Time) interface{} {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func optionalFloat(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func optionalBool(v *bool) interface{} {
	if v == nil {
		return ""
	}
	if *v {
		return "yes"
	}
	return "no"
}
