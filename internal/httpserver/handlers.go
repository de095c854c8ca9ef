package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/alexanderramin/cps/internal/domain"
	"github.com/alexanderramin/cps/internal/export"
)

type entryResponse struct {
	Name       string `json:"name"`
	OffsetDays int    `json:"offset_days"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

type scheduleResponse struct {
	ID               string          `json:"id"`
	BaseDate         string          `json:"base_date"`
	BusinessDaysOnly bool            `json:"business_days_only"`
	Counting         string          `json:"counting"`
	Entries          []entryResponse `json:"entries"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	plan, err := s.planFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.schedules.Build(r.Context(), plan)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := scheduleResponse{
		ID:               res.ID,
		BaseDate:         domain.FormatDate(res.Schedule.BaseDate),
		BusinessDaysOnly: res.Schedule.BusinessDaysOnly,
		Counting:         res.Schedule.DayCount().Label(),
		Entries:          make([]entryResponse, 0, len(res.Schedule.Entries)),
	}
	for _, e := range res.Schedule.Entries {
		resp.Entries = append(resp.Entries, entryResponse{
			Name:       e.Name,
			OffsetDays: e.OffsetDays,
			StartDate:  domain.FormatDate(e.StartDate),
			EndDate:    domain.FormatDate(e.EndDate),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleScheduleCSV(w http.ResponseWriter, r *http.Request) {
	plan, err := s.planFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.schedules.Build(r.Context(), plan)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := export.Export(res.Schedule)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "csv export failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to export schedule")
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", result.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Data)
}

// planFromQuery reads base, repeated m=Name=Offset and business from the
// query. Without any m the default milestones are used.
func (s *Server) planFromQuery(q url.Values) (*domain.Plan, error) {
	plan := &domain.Plan{BaseDate: s.today()}

	if v := q.Get("base"); v != "" {
		d, err := domain.ParseDate(v)
		if err != nil {
			return nil, fmt.Errorf("base: %w", err)
		}
		plan.BaseDate = d
	}

	if v := q.Get("business"); v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("business must be true or false, got %q", v)
		}
		plan.BusinessDaysOnly = b
	}

	raw := q["m"]
	if len(raw) == 0 {
		plan.Milestones = domain.DefaultMilestones(domain.DefaultMilestoneCount)
		return plan, nil
	}
	if len(raw) > domain.MaxMilestones {
		return nil, fmt.Errorf("at most %d milestones are supported, got %d", domain.MaxMilestones, len(raw))
	}
	for _, item := range raw {
		m, err := domain.ParseMilestone(item)
		if err != nil {
			return nil, err
		}
		plan.Milestones = append(plan.Milestones, m)
	}
	return plan, nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
