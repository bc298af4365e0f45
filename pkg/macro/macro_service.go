package macro

import (
	"Meal-Planner-Backend/domain"
	"Meal-Planner-Backend/pkg/backend"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	MacroService interface {
		SaveMacros(ctx context.Context, entry map[string]any) (any, error)
		GetUserMacros(ctx context.Context, username, date string) (any, error)
		GetUserWeeklyMacros(ctx context.Context, req domain.WeeklyMacrosRequest) (any, error)
	}

	macroService struct {
		client  backend.Client
		degrade bool
		now     func() time.Time
	}
)

// NewMacroService answers with placeholders when the AI backend fails and
// degrade is set; otherwise the failure is returned wrapped in
// domain.ErrBackendUnavailable.
func NewMacroService(client backend.Client, degrade bool) MacroService {
	return &macroService{
		client:  client,
		degrade: degrade,
		now:     time.Now,
	}
}

// RoundHalfUp rounds halves toward positive infinity.
func RoundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// SanitizeMacros copies entry with each macro field rounded to an integer.
// Numeric strings are accepted; absent fields stay absent.
func SanitizeMacros(entry map[string]any) (map[string]any, error) {
	username, _ := entry["username"].(string)
	if strings.TrimSpace(username) == "" {
		return nil, domain.ErrUsernameRequired
	}

	sanitized := make(map[string]any, len(entry))
	for k, v := range entry {
		sanitized[k] = v
	}

	for _, field := range domain.MacroFields {
		raw, ok := entry[field]
		if !ok {
			continue
		}
		value, err := toNumber(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidNumber, field)
		}
		sanitized[field] = int64(RoundHalfUp(value))
	}
	return sanitized, nil
}

func toNumber(v any) (float64, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, domain.ErrInvalidNumber
		}
		return f, nil
	default:
		return 0, domain.ErrInvalidNumber
	}
}

func (s *macroService) SaveMacros(ctx context.Context, entry map[string]any) (any, error) {
	sanitized, err := SanitizeMacros(entry)
	if err != nil {
		return nil, err
	}

	log.Infof("saving macros for user %v, meal %v, food %v", sanitized["username"], sanitized["meal_name"], sanitized["food_name"])

	body, err := s.client.SaveMacros(ctx, sanitized)
	if err != nil {
		log.Errorf("save-macros upstream: %v", err)
		if !s.degrade {
			return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
		}
		return fiber.Map{
			"success": true,
			"message": domain.MessageSuccessSaveMacrosSimulated,
		}, nil
	}

	if !json.Valid(body) {
		return fiber.Map{
			"success": true,
			"message": domain.MessageSuccessSaveMacrosUnparsed,
		}, nil
	}
	return json.RawMessage(body), nil
}

func (s *macroService) GetUserMacros(ctx context.Context, username, date string) (any, error) {
	if username == "" {
		return nil, domain.ErrUsernameRequired
	}

	res, err := s.client.GetUserMacros(ctx, username, date)
	if err != nil {
		log.Errorf("get-user-macros upstream for %s: %v", username, err)
		if !s.degrade {
			return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
		}
		return domain.DailyMacrosResponse{Success: true, Macros: []any{}}, nil
	}
	return res, nil
}

// WeeklyRange returns the seven days ending on now's UTC date.
func WeeklyRange(now time.Time) domain.DateRange {
	end := now.UTC()
	start := end.AddDate(0, 0, -6)
	return domain.DateRange{
		StartDate: start.Format(domain.DateLayout),
		EndDate:   end.Format(domain.DateLayout),
	}
}

func (s *macroService) GetUserWeeklyMacros(ctx context.Context, req domain.WeeklyMacrosRequest) (any, error) {
	if req.Username == "" {
		return nil, domain.ErrUsernameRequired
	}

	dateRange := WeeklyRange(s.now())
	if req.StartDate != "" {
		if _, err := time.Parse(domain.DateLayout, req.StartDate); err != nil {
			return nil, domain.ErrInvalidDate
		}
		dateRange.StartDate = req.StartDate
	}
	if req.EndDate != "" {
		if _, err := time.Parse(domain.DateLayout, req.EndDate); err != nil {
			return nil, domain.ErrInvalidDate
		}
		dateRange.EndDate = req.EndDate
	}

	log.Infof("fetching weekly macros for user %s from %s to %s", req.Username, dateRange.StartDate, dateRange.EndDate)

	res, err := s.client.GetUserWeeklyMacros(ctx, req.Username, dateRange.StartDate, dateRange.EndDate)
	if err != nil {
		log.Errorf("get-user-weekly-macros upstream for %s: %v", req.Username, err)
		if !s.degrade {
			return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
		}
		return EmptyWeeklyMacros(dateRange), nil
	}
	return res, nil
}

func EmptyWeeklyMacros(dateRange domain.DateRange) domain.WeeklyMacrosResponse {
	return domain.WeeklyMacrosResponse{
		Success:      true,
		DailySummary: map[string]any{},
		DateRange:    dateRange,
	}
}
