package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/saadistik/Bashir.inc/internal/models"
	"github.com/saadistik/Bashir.inc/internal/storage"
	"github.com/saadistik/Bashir.inc/pkg/api"
)

// CalendarService implements the CalendarService RPC interface.
type CalendarService struct {
	store storage.Store
}

// NewCalendarService creates a new CalendarService.
func NewCalendarService(store storage.Store) *CalendarService {
	return &CalendarService{store: store}
}

// GetMonth returns the days of a month that carry an event or a tussle
// deadline. Deadlines are merged in at read time; they are never stored as
// events.
func (s *CalendarService) GetMonth(ctx context.Context, req *connect.Request[api.GetMonthRequest]) (*connect.Response[api.GetMonthResponse], error) {
	slog.Info("GetMonth request received", "year", req.Msg.Year, "month", req.Msg.Month)

	if req.Msg.Month < 1 || req.Msg.Month > 12 {
		return nil, invalid("month must be between 1 and 12")
	}
	if req.Msg.Year < 1 || req.Msg.Year > 9999 {
		return nil, invalid("year out of range")
	}
	first := time.Date(req.Msg.Year, time.Month(req.Msg.Month), 1, 0, 0, 0, 0, time.UTC)
	from := first.Format(models.DateLayout)
	to := first.AddDate(0, 1, -1).Format(models.DateLayout)

	events, err := s.store.ListEvents(ctx, from, to)
	if err != nil {
		return nil, storeError("GetMonth", err)
	}
	tussles, err := s.store.ListTussles(ctx, storage.TussleQuery{
		WithDueDate: true,
		OrderBy:     storage.OrderByDueDate,
		WithCompany: true,
	})
	if err != nil {
		return nil, storeError("GetMonth", err)
	}

	days := make(map[string]*api.CalendarDay)
	day := func(date string) *api.CalendarDay {
		d, ok := days[date]
		if !ok {
			d = &api.CalendarDay{Date: date, Events: []api.CalendarEvent{}, Deadlines: []api.Tussle{}}
			days[date] = d
		}
		return d
	}
	for i := range events {
		d := day(events[i].Date)
		d.Events = append(d.Events, toAPIEvent(&events[i]))
	}
	for i := range tussles {
		due := tussles[i].DueDate
		if due < from || due > to {
			continue
		}
		d := day(due)
		d.Deadlines = append(d.Deadlines, toAPITussle(&tussles[i]))
	}

	resp := &api.GetMonthResponse{Days: make([]api.CalendarDay, 0, len(days))}
	for _, d := range days {
		resp.Days = append(resp.Days, *d)
	}
	sort.Slice(resp.Days, func(i, j int) bool { return resp.Days[i].Date < resp.Days[j].Date })

	return connect.NewResponse(resp), nil
}

// CreateEvent adds an event to the calendar.
func (s *CalendarService) CreateEvent(ctx context.Context, req *connect.Request[api.CreateEventRequest]) (*connect.Response[api.CreateEventResponse], error) {
	slog.Info("CreateEvent request received", "date", req.Msg.Date, "title", req.Msg.Title)

	title, err := required("title", req.Msg.Title)
	if err != nil {
		return nil, err
	}
	date, err := optionalDate("date", req.Msg.Date)
	if err != nil {
		return nil, err
	}
	if date == "" {
		return nil, invalid("date is required")
	}

	event := &models.CalendarEvent{Date: date, Title: title, Type: strings.TrimSpace(req.Msg.Type)}
	if err := s.store.CreateEvent(ctx, event); err != nil {
		return nil, storeError("CreateEvent", err)
	}
	return connect.NewResponse(&api.CreateEventResponse{Event: toAPIEvent(event)}), nil
}
