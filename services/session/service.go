package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"inspectra/config"
	"inspectra/models"
	"inspectra/services/assignment"
	"inspectra/services/scheduling"
	"inspectra/utils"
)

const dateLayout = "2006-01-02"

// InitiateSession fetches availability for the requested date and opens a new
// cached session around it.
func (s *DefaultService) InitiateSession(ctx context.Context, date string) (*models.SchedulingSession, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}

	availability, err := s.fetchSelectableAvailability(ctx, date)
	if err != nil {
		return nil, err
	}

	sess := &models.SchedulingSession{
		SessionID:    uuid.New().String(),
		Date:         date,
		Availability: availability,
		CreatedAt:    s.now(),
	}
	if err := s.saveSession(ctx, sess); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("scheduling session initiated",
		zap.String("sessionId", sess.SessionID), zap.String("date", date))
	return sess, nil
}

// GetSession returns the current cached session state.
func (s *DefaultService) GetSession(ctx context.Context, sessionID string) (*models.SchedulingSession, error) {
	return s.loadSession(ctx, sessionID)
}

// UpdateSession applies the user's changes. Changing the date refetches
// availability for the new date and drops every selection made against the
// old one; whatever availability was cached before is discarded wholesale, so
// a superseded fetch can never leak into the new view.
func (s *DefaultService) UpdateSession(ctx context.Context, sessionID string, update Update) (*models.SchedulingSession, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if update.Date != nil && *update.Date != sess.Date {
		if _, err := time.Parse(dateLayout, *update.Date); err != nil {
			return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", *update.Date)
		}
		availability, err := s.fetchSelectableAvailability(ctx, *update.Date)
		if err != nil {
			return nil, err
		}
		sess.Date = *update.Date
		sess.Availability = availability
		sess.SelectedInspectorEmail = ""
		sess.SelectedSlot = nil
		sess.Start = ""
		sess.End = ""
	}

	if update.InspectorEmail != nil {
		if _, ok := findInspector(sess.Availability, *update.InspectorEmail); !ok {
			return nil, fmt.Errorf("inspector %s has no availability for %s", *update.InspectorEmail, sess.Date)
		}
		if sess.SelectedInspectorEmail != *update.InspectorEmail {
			sess.SelectedInspectorEmail = *update.InspectorEmail
			sess.SelectedSlot = nil
			sess.Start = ""
			sess.End = ""
		}
	}

	if update.Slot != nil {
		sess.SelectedSlot = update.Slot
		sess.Start = scheduling.DefaultStartTime(sess.Date, s.now(), update.Slot)
		startMin, err := utils.ToMinutes(sess.Start)
		if err != nil {
			return nil, err
		}
		sess.End = scheduling.DefaultEndTime(startMin, update.Slot)
	}

	if err := s.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// ValidateSelection runs the validator against the session's context. It is
// cheap and side-effect free, meant to be called on every field change; the
// candidate times are also stored so the session mirrors what the user sees.
func (s *DefaultService) ValidateSelection(ctx context.Context, sessionID, start, end string) (scheduling.ValidationResult, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return scheduling.ValidationResult{}, err
	}

	result := scheduling.Validate(start, end, s.validationContext(sess))

	sess.Start = start
	sess.End = end
	if err := s.saveSession(ctx, sess); err != nil {
		return scheduling.ValidationResult{}, err
	}
	return result, nil
}

// ConfirmAssignment re-validates the selection authoritatively, enforces the
// business-close confirmation gate, and hands the request to the saga. The
// session is discarded only after a fully successful execution so a failed
// saga can be resumed against the same context.
func (s *DefaultService) ConfirmAssignment(ctx context.Context, sessionID string, input ConfirmInput) (*assignment.Result, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.SelectedInspectorEmail == "" {
		return nil, fmt.Errorf("no inspector selected for session %s", sessionID)
	}
	if !input.Priority.IsValid() {
		return nil, fmt.Errorf("invalid priority %q: expected Low, Medium or High", input.Priority)
	}

	result := scheduling.Validate(input.Start, input.End, s.validationContext(sess))
	if !result.Valid {
		return nil, &ValidationRejectedError{Result: result}
	}
	if result.Severity == scheduling.SeverityWarning && !input.AcknowledgeAfterHours {
		return nil, &AfterHoursConfirmationError{Message: result.Message}
	}

	startMin, err := utils.ToMinutes(input.Start)
	if err != nil {
		return nil, err
	}
	endMin, err := utils.ToMinutes(input.End)
	if err != nil {
		return nil, err
	}

	sagaResult, err := s.Saga.Execute(ctx, assignment.Request{
		LeadID:         input.LeadID,
		Lead:           input.Lead,
		InspectorEmail: sess.SelectedInspectorEmail,
		Date:           sess.Date,
		Start:          startMin,
		End:            endMin,
		Priority:       input.Priority,
		Description:    input.Description,
	})
	if err != nil {
		return nil, err
	}

	if err := s.CancelSession(ctx, sessionID); err != nil {
		utils.GetLogger().Warn("failed to discard confirmed session",
			zap.String("sessionId", sessionID), zap.Error(err))
	}
	return sagaResult, nil
}

// CancelSession discards all session state. It has no remote effect.
func (s *DefaultService) CancelSession(ctx context.Context, sessionID string) error {
	return utils.GetSessionCacheClient().Del(ctx, sessionID).Err()
}

// fetchSelectableAvailability loads per-inspector availability and, when the
// date is today, narrows each inspector's free slots to those still
// selectable at the current time.
func (s *DefaultService) fetchSelectableAvailability(ctx context.Context, date string) ([]models.InspectorAvailability, error) {
	availability, err := s.Availability.ForDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to compute availability for %s: %w", date, err)
	}

	nowIfToday := s.nowMinuteIfToday(date)
	for i := range availability {
		availability[i].FreeSlots = scheduling.FilterSelectableSlots(availability[i].FreeSlots, nowIfToday)
	}
	return availability, nil
}

func (s *DefaultService) validationContext(sess *models.SchedulingSession) scheduling.ValidationContext {
	vctx := scheduling.ValidationContext{
		Date:       sess.Date,
		Now:        s.nowMinuteIfToday(sess.Date),
		ChosenSlot: sess.SelectedSlot,
	}
	if sess.SelectedInspectorEmail != "" {
		if inspector, ok := findInspector(sess.Availability, sess.SelectedInspectorEmail); ok {
			vctx.FreeSlots = inspector.FreeSlots
		}
	}
	return vctx
}

// nowMinuteIfToday returns the current minute of day when date is today, nil
// otherwise.
func (s *DefaultService) nowMinuteIfToday(date string) *int {
	now := s.now()
	if date != now.Format(dateLayout) {
		return nil
	}
	minute := now.Hour()*60 + now.Minute()
	return &minute
}

func (s *DefaultService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func findInspector(availability []models.InspectorAvailability, email string) (models.InspectorAvailability, bool) {
	for _, inspector := range availability {
		if inspector.Email == email {
			return inspector, true
		}
	}
	return models.InspectorAvailability{}, false
}

func (s *DefaultService) loadSession(ctx context.Context, sessionID string) (*models.SchedulingSession, error) {
	data, err := utils.GetSessionCacheClient().Get(ctx, sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}

	var sess models.SchedulingSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to parse session %s: %w", sessionID, err)
	}
	return &sess, nil
}

func (s *DefaultService) saveSession(ctx context.Context, sess *models.SchedulingSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", sess.SessionID, err)
	}
	ttl := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if err := utils.GetSessionCacheClient().Set(ctx, sess.SessionID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session %s: %w", sess.SessionID, err)
	}
	return nil
}
